package subset

import (
	"strings"
	"testing"

	"github.com/cheekybits/is"
)

func TestParseConfig(t *testing.T) {
	is := is.New(t)

	in := `
window: [-126, 24, -66, 50]
sparsify: 0.0001
wkt: true
geojson: true
lambert:
    lat1: 33
    lat2: 45
    lat0: 40
    lon0: -97

datasets:
    - pattern: "huc*.shp"
      type: polygon
      columns:
          - input: HUC_CODE
            output: HUC
          - input: AREA_SQKM
    - pattern: "flowline*.shp"
      type: polyline
      from_node: FROM_NODE
      to_node: TO_NODE
    - pattern: "gauge*.shp"
      type: point
      longitude: LON
      latitude: LAT
      elevation: ELEV
`

	cfg, err := ParseConfig(strings.NewReader(in))
	is.NoErr(err)
	is.NotNil(cfg)
	is.Equal(cfg.Window, []float64{-126, 24, -66, 50})
	is.Equal(cfg.Sparsify, 0.0001)
	is.True(cfg.WKT)
	is.NotNil(cfg.Lambert)
	is.Equal(cfg.Lambert.Lon0, -97.0)

	is.Equal(len(cfg.Datasets), 3)
	ds := cfg.Datasets[0]
	is.Equal(ds.Type, "polygon")
	is.Equal(ds.Columns[0].Output, "HUC")

	// Defaults fill in.
	is.Equal(ds.Columns[1].Output, "AREA_SQKM")
	is.Equal(ds.Columns[1].Scale, 1.0)

	is.Equal(cfg.DatasetFor("huc8.shp"), ds)
	is.Equal(cfg.DatasetFor("flowline_ca.shp"), cfg.Datasets[1])
	is.Nil(cfg.DatasetFor("unknown.shp"))
}

func TestParseConfigRejectsBadInput(t *testing.T) {
	is := is.New(t)

	bad := []string{
		// No datasets.
		"window: [0, 0, 1, 1]",
		// Inverted window.
		"window: [1, 0, 0, 1]\ndatasets:\n    - pattern: a\n      type: polygon",
		// Short window.
		"window: [0, 0, 1]\ndatasets:\n    - pattern: a\n      type: polygon",
		// Unknown type.
		"window: [0, 0, 1, 1]\ndatasets:\n    - pattern: a\n      type: raster",
		// Point dataset without coordinates.
		"window: [0, 0, 1, 1]\ndatasets:\n    - pattern: a\n      type: point",
		// Missing pattern.
		"window: [0, 0, 1, 1]\ndatasets:\n    - type: polygon",
	}
	for _, in := range bad {
		_, err := ParseConfig(strings.NewReader(in))
		is.Err(err)
	}
}
