// Package subset runs the dataset subsetting pipeline: read, filter,
// sparsify, clip, correct, measure and re-encode.
package subset

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path"

	yaml "gopkg.in/yaml.v2"
)

// Config drives one subsetting run. The datasets section is the
// column-mapping table: which input naming conventions exist and how
// their attributes map onto output columns. It is data, not code.
type Config struct {
	// Subset window: west, south, east, north, in degrees.
	Window []float64 `yaml:"window"`

	// Minimum adjacent-vertex distance, per axis, in degrees.
	Sparsify float64 `yaml:"sparsify"`

	// Projection sidecar syntax: OGC WKT when true, legacy grid
	// key-value form when false.
	WKT bool `yaml:"wkt"`

	// Also write a GeoJSON preview of the subset.
	GeoJSON bool `yaml:"geojson"`

	// Lambert Conformal Conic parameters for the .prj sidecar; omit
	// for geographic WGS84.
	Lambert *LambertConfig `yaml:"lambert"`

	Datasets []*Dataset `yaml:"datasets"`
}

type LambertConfig struct {
	Lat1 float64 `yaml:"lat1"`
	Lat2 float64 `yaml:"lat2"`
	Lat0 float64 `yaml:"lat0"`
	Lon0 float64 `yaml:"lon0"`
}

// Dataset describes one input file naming convention and its output
// column layout.
type Dataset struct {
	// Glob matched against the input file name.
	Pattern string `yaml:"pattern"`

	// polygon, polyline or point.
	Type string `yaml:"type"`

	Columns []*ColumnSpec `yaml:"columns"`

	// Flow-network columns, set on polyline datasets that support
	// upstream selection.
	FromNode string `yaml:"from_node"`
	ToNode   string `yaml:"to_node"`

	// Coordinate columns for point datasets. Elevation is optional.
	Longitude string `yaml:"longitude"`
	Latitude  string `yaml:"latitude"`
	Elevation string `yaml:"elevation"`
}

// ColumnSpec maps one input attribute column to an output column,
// optionally rescaled (unit conversion) on numeric values.
type ColumnSpec struct {
	Input  string  `yaml:"input"`
	Output string  `yaml:"output"`
	Scale  float64 `yaml:"scale"`
}

func LoadConfig(configPath string) (*Config, error) {
	fp, err := os.Open(configPath)
	if err != nil {
		return nil, err
	}
	defer fp.Close()
	return ParseConfig(fp)
}

func ParseConfig(r io.Reader) (*Config, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	config := &Config{}
	err = yaml.Unmarshal(data, config)
	if err != nil {
		return nil, err
	}

	if len(config.Window) != 4 {
		return nil, errors.New("window must have four values: west, south, east, north")
	}
	if config.Window[0] > config.Window[2] || config.Window[1] > config.Window[3] {
		return nil, errors.New("window is inverted")
	}
	if config.Sparsify < 0 {
		return nil, errors.New("sparsify threshold must be >= 0")
	}
	if len(config.Datasets) == 0 {
		return nil, errors.New("no datasets defined")
	}

	for _, ds := range config.Datasets {
		if ds.Pattern == "" {
			return nil, errors.New("dataset without pattern")
		}
		switch ds.Type {
		case "polygon", "polyline":
		case "point":
			if ds.Longitude == "" || ds.Latitude == "" {
				return nil, fmt.Errorf("point dataset %q needs longitude and latitude columns", ds.Pattern)
			}
		default:
			return nil, fmt.Errorf("dataset %q has unknown type %q", ds.Pattern, ds.Type)
		}
		for _, c := range ds.Columns {
			if c.Input == "" {
				return nil, fmt.Errorf("dataset %q has a column without input name", ds.Pattern)
			}
			if c.Output == "" {
				c.Output = c.Input
			}
			if c.Scale == 0 {
				c.Scale = 1
			}
		}
	}
	return config, nil
}

// DatasetFor returns the first dataset whose pattern matches the file
// name, or nil.
func (c *Config) DatasetFor(filename string) *Dataset {
	for _, ds := range c.Datasets {
		ok, err := path.Match(ds.Pattern, filename)
		if err == nil && ok {
			return ds
		}
	}
	return nil
}
