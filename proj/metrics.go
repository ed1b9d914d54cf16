package proj

import (
	"math"

	"github.com/USEPA/rsigserver-sub000/geom"
)

func projectShape(p *Albers, s *geom.Shape) *geom.Shape {
	rings := make([]*geom.Ring, 0, len(s.Rings))
	for _, r := range s.Rings {
		points := make([]geom.Point, len(r.Points))
		for i, pt := range r.Points {
			x, y := p.Project(pt.X, pt.Y)
			points[i] = geom.Point{X: x, Y: y}
		}
		rings = append(rings, &geom.Ring{Points: points, Hole: r.Hole})
	}
	return geom.NewShape(rings)
}

// PolygonArea returns the true enclosed area of a polygon in square
// meters: every ring is projected, winding-corrected, then summed with
// holes subtracting naturally through their opposite sign. Degenerate
// shapes yield 0.
func PolygonArea(p *Albers, s *geom.Shape) float64 {
	if s.Empty() {
		return 0
	}
	projected := projectShape(p, s)
	if !geom.CorrectWinding(projected) {
		return 0
	}
	total := 0.0
	for _, r := range projected.Rings {
		total += geom.SignedArea(r.Points)
	}
	return -total
}

// PolygonPerimeter returns the summed projected segment lengths of
// every ring in meters. Hole boundaries still contribute length.
func PolygonPerimeter(p *Albers, s *geom.Shape) float64 {
	if s.Empty() {
		return 0
	}
	total := 0.0
	for _, r := range s.Rings {
		var lastX, lastY float64
		for i, pt := range r.Points {
			x, y := p.Project(pt.X, pt.Y)
			if i > 0 {
				total += math.Hypot(x-lastX, y-lastY)
			}
			lastX, lastY = x, y
		}
	}
	return total
}
