package subset

import (
	"encoding/csv"
	"fmt"
	"log"
	"os"
	"path"
	"path/filepath"
	"strconv"

	goshp "github.com/jonas-p/go-shp"

	"github.com/USEPA/rsigserver-sub000/flownet"
	"github.com/USEPA/rsigserver-sub000/geom"
	"github.com/USEPA/rsigserver-sub000/proj"
	"github.com/USEPA/rsigserver-sub000/shp"
	"github.com/USEPA/rsigserver-sub000/table"
)

// Subsetter runs the pipeline for one configuration: every input file
// is matched against the dataset table, filtered against the window
// and re-encoded under the output path.
type Subsetter struct {
	config  *Config
	outPath string
	albers  *proj.Albers
}

func NewSubsetter(config *Config, outPath string) *Subsetter {
	return &Subsetter{
		config:  config,
		outPath: outPath,
		albers:  proj.NewConus(),
	}
}

func (s *Subsetter) window() geom.Bounds {
	w := s.config.Window
	return geom.NewBounds(w[0], w[1], w[2], w[3])
}

func (s *Subsetter) lambert() *shp.Lambert {
	if s.config.Lambert == nil {
		return nil
	}
	l := s.config.Lambert
	return &shp.Lambert{Lat1: l.Lat1, Lat2: l.Lat2, Lat0: l.Lat0, Lon0: l.Lon0}
}

// Run subsets a single input shapefile.
func (s *Subsetter) Run(inputPath string) error {
	name := filepath.Base(inputPath)
	ds := s.config.DatasetFor(name)
	if ds == nil {
		return fmt.Errorf("no dataset configuration matches %q", name)
	}

	err := os.MkdirAll(s.outPath, 0755)
	if err != nil {
		return err
	}

	reader, err := goshp.Open(inputPath)
	if err != nil {
		return err
	}
	defer reader.Close()

	store, err := table.FromShapefile(reader)
	if err != nil {
		return err
	}

	base := path.Join(s.outPath, trimExt(name))
	switch ds.Type {
	case "polygon":
		err = s.runPolygons(reader, store, ds, base)
	case "polyline":
		err = s.runPolylines(reader, store, ds, base)
	case "point":
		err = s.runPoints(store, ds, base)
	}
	if err != nil {
		return err
	}

	return shp.WritePrj(base, s.lambert(), s.config.WKT)
}

func trimExt(name string) string {
	return name[:len(name)-len(filepath.Ext(name))]
}

func (s *Subsetter) runPolygons(reader *goshp.Reader, store *table.Store, ds *Dataset, base string) error {
	shapes, err := readShapes(reader, true)
	if err != nil {
		return err
	}
	if len(shapes) != store.NumRows() {
		return fmt.Errorf("%d shapes but %d attribute rows", len(shapes), store.NumRows())
	}

	window := s.window()
	mask := table.NewMask(len(shapes), true)
	kept := make([]*geom.PolygonShape, 0, len(shapes))

	_, err = store.AddColumn(table.Column{Name: "AREA_SQKM", Kind: table.KindDouble})
	if err != nil {
		return err
	}
	_, err = store.AddColumn(table.Column{Name: "PERIM_KM", Kind: table.KindDouble})
	if err != nil {
		return err
	}

	for i, raw := range shapes {
		if !window.Intersects(raw.Bounds()) {
			mask[i] = false
			continue
		}

		sparse := sparsifyShape(raw, s.config.Sparsify, true)
		if sparse == nil || !geom.CorrectWinding(sparse) {
			mask[i] = false
			continue
		}

		clipped, err := geom.ClipPolygon(sparse, window)
		if err != nil {
			return err
		}
		if clipped == nil {
			mask[i] = false
			continue
		}

		triangles, err := geom.Triangulate(clipped)
		if err != nil {
			return err
		}

		ps := geom.NewPolygonShape(i, clipped)
		ps.Triangles = triangles
		kept = append(kept, ps)

		store.SetValue(i, "AREA_SQKM", table.DoubleValue(proj.PolygonArea(s.albers, clipped)/1e6))
		store.SetValue(i, "PERIM_KM", table.DoubleValue(proj.PolygonPerimeter(s.albers, clipped)/1e3))
	}
	log.Printf("Kept %d of %d polygons", mask.Count(), len(shapes))

	geometries := make([]*geom.Shape, len(kept))
	for i, ps := range kept {
		geometries[i] = ps.Geometry
	}
	err = shp.WritePolygons(base, geometries)
	if err != nil {
		return err
	}

	if s.config.GeoJSON {
		err = writeGeoJSON(base+".geojson", kept, false)
		if err != nil {
			return err
		}
	}
	return s.writeAttributes(base+".csv", store, mask, ds)
}

func (s *Subsetter) runPolylines(reader *goshp.Reader, store *table.Store, ds *Dataset, base string) error {
	shapes, err := readShapes(reader, false)
	if err != nil {
		return err
	}
	if len(shapes) != store.NumRows() {
		return fmt.Errorf("%d shapes but %d attribute rows", len(shapes), store.NumRows())
	}

	window := s.window()
	mask := table.NewMask(len(shapes), true)
	kept := make([]*geom.PolygonShape, 0, len(shapes))

	for i, raw := range shapes {
		if !window.Intersects(raw.Bounds()) {
			mask[i] = false
			continue
		}

		sparse := sparsifyShape(raw, s.config.Sparsify, false)
		if sparse == nil {
			mask[i] = false
			continue
		}

		clipped := geom.ClipPolyline(sparse, window)
		if clipped == nil {
			mask[i] = false
			continue
		}
		kept = append(kept, geom.NewPolygonShape(i, clipped))
	}
	log.Printf("Kept %d of %d polylines", mask.Count(), len(shapes))

	geometries := make([]*geom.Shape, len(kept))
	for i, ps := range kept {
		geometries[i] = ps.Geometry
	}
	err = shp.WritePolylines(base, geometries)
	if err != nil {
		return err
	}

	if s.config.GeoJSON {
		err = writeGeoJSON(base+".geojson", kept, true)
		if err != nil {
			return err
		}
	}
	return s.writeAttributes(base+".csv", store, mask, ds)
}

func (s *Subsetter) runPoints(store *table.Store, ds *Dataset, base string) error {
	window := s.window()
	mask := table.NewMask(store.NumRows(), true)
	points := make([]shp.PointZ, 0, store.NumRows())

	for i := 0; i < store.NumRows(); i++ {
		lon, ok := store.Value(i, ds.Longitude)
		if !ok {
			return fmt.Errorf("no column %q", ds.Longitude)
		}
		lat, ok := store.Value(i, ds.Latitude)
		if !ok {
			return fmt.Errorf("no column %q", ds.Latitude)
		}

		x, y := numeric(lon), numeric(lat)
		if !window.Contains(x, y) {
			mask[i] = false
			continue
		}

		p := shp.PointZ{X: x, Y: y}
		if ds.Elevation != "" {
			if v, ok := store.Value(i, ds.Elevation); ok {
				p.Z = numeric(v)
			}
		}
		points = append(points, p)
	}
	log.Printf("Kept %d of %d points", mask.Count(), store.NumRows())

	err := shp.WritePointsZ(base, points)
	if err != nil {
		return err
	}
	return s.writeAttributes(base+".csv", store, mask, ds)
}

// Upstream flags every row of a flow-network table that drains into
// toNode and writes the selected rows as CSV.
func (s *Subsetter) Upstream(inputPath string, toNode int64) error {
	name := filepath.Base(inputPath)
	ds := s.config.DatasetFor(name)
	if ds == nil {
		return fmt.Errorf("no dataset configuration matches %q", name)
	}
	if ds.FromNode == "" || ds.ToNode == "" {
		return fmt.Errorf("dataset %q has no flow-network columns", ds.Pattern)
	}

	err := os.MkdirAll(s.outPath, 0755)
	if err != nil {
		return err
	}

	reader, err := goshp.Open(inputPath)
	if err != nil {
		return err
	}
	defer reader.Close()

	store, err := table.FromShapefile(reader)
	if err != nil {
		return err
	}

	visited := make([]bool, store.NumRows())
	count, err := flownet.FlagUpstream(store, ds.FromNode, ds.ToNode, toNode, visited)
	if err != nil {
		return err
	}
	log.Printf("Flagged %d upstream rows of node %d", count, toNode)

	out := path.Join(s.outPath, trimExt(name)+"-upstream.csv")
	return s.writeAttributes(out, store, table.Mask(visited), ds)
}

func readShapes(reader *goshp.Reader, polygon bool) ([]*geom.Shape, error) {
	var shapes []*geom.Shape
	for reader.Next() {
		n, raw := reader.Shape()
		switch v := raw.(type) {
		case *goshp.Polygon:
			shapes = append(shapes, shapeFromParts(v.Parts, v.Points, polygon))
		case *goshp.PolyLine:
			shapes = append(shapes, shapeFromParts(v.Parts, v.Points, polygon))
		default:
			return nil, fmt.Errorf("record %d: unsupported shape type %T", n, raw)
		}
	}
	return shapes, nil
}

func shapeFromParts(parts []int32, points []goshp.Point, polygon bool) *geom.Shape {
	rings := make([]*geom.Ring, 0, len(parts))
	for i, start := range parts {
		end := len(points)
		if i+1 < len(parts) {
			end = int(parts[i+1])
		}
		ring := make([]geom.Point, 0, end-int(start))
		for _, p := range points[start:end] {
			ring = append(ring, geom.Point{X: p.X, Y: p.Y})
		}
		r := &geom.Ring{Points: ring}
		if polygon {
			// Counter-clockwise input rings are holes per the ESRI
			// convention.
			r.Hole = geom.SignedArea(ring) > 0
		}
		rings = append(rings, r)
	}
	return geom.NewShape(rings)
}

func sparsifyShape(s *geom.Shape, eps float64, closed bool) *geom.Shape {
	rings := make([]*geom.Ring, 0, len(s.Rings))
	for _, r := range s.Rings {
		points := geom.Sparsify(r.Points, eps, closed)
		if points == nil {
			continue
		}
		rings = append(rings, &geom.Ring{Points: points, Hole: r.Hole})
	}
	if len(rings) == 0 {
		return nil
	}
	return geom.NewShape(rings)
}

// writeAttributes emits the masked rows with the dataset's output
// column layout, numeric values rescaled per the column spec.
func (s *Subsetter) writeAttributes(outPath string, store *table.Store, mask table.Mask, ds *Dataset) error {
	specs := ds.Columns
	if len(specs) == 0 {
		// No mapping: pass every column through unchanged.
		for _, c := range store.Columns() {
			specs = append(specs, &ColumnSpec{Input: c.Name, Output: c.Name, Scale: 1})
		}
	}

	fp, err := os.Create(outPath)
	if err != nil {
		return err
	}

	w := csv.NewWriter(fp)
	header := make([]string, len(specs))
	for i, spec := range specs {
		header[i] = spec.Output
	}
	err = w.Write(header)

	record := make([]string, len(specs))
	for row := 0; row < store.NumRows() && err == nil; row++ {
		if !mask[row] {
			continue
		}
		for i, spec := range specs {
			v, ok := store.Value(row, spec.Input)
			if !ok {
				err = fmt.Errorf("no column %q", spec.Input)
				break
			}
			record[i] = formatValue(v, spec.Scale)
		}
		if err == nil {
			err = w.Write(record)
		}
	}
	if err == nil {
		w.Flush()
		err = w.Error()
	}

	if err != nil {
		fp.Close()
		os.Remove(outPath)
		return err
	}
	err = fp.Close()
	if err != nil {
		os.Remove(outPath)
	}
	return err
}

func numeric(v table.Value) float64 {
	switch v.Kind {
	case table.KindInt:
		return float64(v.Int)
	case table.KindDouble:
		return v.Dbl
	default:
		return 0
	}
}

func formatValue(v table.Value, scale float64) string {
	switch v.Kind {
	case table.KindInt:
		if scale != 1 {
			return strconv.FormatFloat(float64(v.Int)*scale, 'g', -1, 64)
		}
		return strconv.FormatInt(v.Int, 10)
	case table.KindDouble:
		return strconv.FormatFloat(v.Dbl*scale, 'g', -1, 64)
	default:
		return v.Str
	}
}
