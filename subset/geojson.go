package subset

import (
	"encoding/json"
	"os"

	geojson "github.com/paulmach/go.geojson"

	"github.com/USEPA/rsigserver-sub000/geom"
)

func ringCoordinates(r *geom.Ring) [][]float64 {
	coords := make([][]float64, 0, len(r.Points))
	for _, p := range r.Points {
		coords = append(coords, []float64{p.X, p.Y})
	}
	return coords
}

// writeGeoJSON emits the kept shapes as a FeatureCollection for
// preview clients, each feature tagged with its source record index.
func writeGeoJSON(outPath string, shapes []*geom.PolygonShape, polyline bool) error {
	fc := geojson.NewFeatureCollection()
	for _, ps := range shapes {
		var f *geojson.Feature
		if polyline {
			lines := make([][][]float64, 0, len(ps.Geometry.Rings))
			for _, r := range ps.Geometry.Rings {
				lines = append(lines, ringCoordinates(r))
			}
			f = geojson.NewMultiLineStringFeature(lines...)
		} else {
			rings := make([][][]float64, 0, len(ps.Geometry.Rings))
			for _, r := range ps.Geometry.Rings {
				rings = append(rings, ringCoordinates(r))
			}
			f = geojson.NewPolygonFeature(rings)
		}
		f.SetProperty("id", ps.ID)
		fc.AddFeature(f)
	}

	data, err := json.Marshal(fc)
	if err != nil {
		return err
	}
	return os.WriteFile(outPath, data, 0644)
}
