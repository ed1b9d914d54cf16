package geom

import "math"

// QueryTolerance is the acceptance distance for nearest-feature
// lookups, in coordinate units.
const QueryTolerance = 1e-3

// FindPolygon returns the index of the first shape whose triangles
// contain (x, y), or -1. Shapes are scanned in input record order, so
// a point exactly on a shared edge resolves to the earlier shape.
func FindPolygon(shapes []*PolygonShape, x, y float64) int {
	for i, s := range shapes {
		if !s.Bounds.Contains(x, y) {
			continue
		}
		for _, t := range s.Triangles {
			if pointInTriangle(x, y, t) {
				return i
			}
		}
	}
	return -1
}

func edgeSign(x, y float64, a, b Point) float64 {
	return (x-b.X)*(a.Y-b.Y) - (a.X-b.X)*(y-b.Y)
}

func pointInTriangle(x, y float64, t Triangle) bool {
	d1 := edgeSign(x, y, t[0], t[1])
	d2 := edgeSign(x, y, t[1], t[2])
	d3 := edgeSign(x, y, t[2], t[0])
	hasNeg := d1 < 0 || d2 < 0 || d3 < 0
	hasPos := d1 > 0 || d2 > 0 || d3 > 0
	return !(hasNeg && hasPos)
}

// NearestPolyline returns the index of the polyline closest to (x, y),
// or -1 when no segment comes within QueryTolerance. A full scan with
// bounding-box pruning, no spatial index: acceptable at the dataset
// sizes involved.
func NearestPolyline(lines []*PolygonShape, x, y float64) int {
	best := -1
	bestDist := math.Inf(1)
	for i, l := range lines {
		if !l.Bounds.Expand(QueryTolerance).Contains(x, y) {
			continue
		}
		for _, r := range l.Geometry.Rings {
			for j := 0; j+1 < len(r.Points); j++ {
				a := r.Points[j]
				b := r.Points[j+1]
				seg := NewBounds(a.X, a.Y, b.X, b.Y).Expand(QueryTolerance)
				if !seg.Contains(x, y) {
					continue
				}
				if d := pointSegmentDistance(x, y, a, b); d < bestDist {
					bestDist = d
					best = i
				}
			}
		}
	}
	if bestDist > QueryTolerance {
		return -1
	}
	return best
}

func pointSegmentDistance(x, y float64, a, b Point) float64 {
	dx := b.X - a.X
	dy := b.Y - a.Y
	lenSq := dx*dx + dy*dy
	t := 0.0
	if lenSq > 0 {
		t = ((x-a.X)*dx + (y-a.Y)*dy) / lenSq
		if t < 0 {
			t = 0
		} else if t > 1 {
			t = 1
		}
	}
	px := a.X + t*dx
	py := a.Y + t*dy
	return math.Hypot(x-px, y-py)
}

// NearestPoint returns the index of the point closest to (x, y) by
// Manhattan distance, or -1 when the minimum exceeds QueryTolerance.
func NearestPoint(points []Point, x, y float64) int {
	best := -1
	bestDist := math.Inf(1)
	for i, p := range points {
		d := math.Abs(p.X-x) + math.Abs(p.Y-y)
		if d < bestDist {
			bestDist = d
			best = i
		}
	}
	if bestDist > QueryTolerance {
		return -1
	}
	return best
}
