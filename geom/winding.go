package geom

// SignedArea computes the shoelace area of a vertex chain, closing it
// cyclically when the last vertex does not repeat the first. Negative
// for clockwise rings.
func SignedArea(points []Point) float64 {
	n := len(points)
	if n < 3 {
		return 0
	}
	sum := 0.0
	for i := 0; i < n-1; i++ {
		sum += points[i].X*points[i+1].Y - points[i+1].X*points[i].Y
	}
	if points[0] != points[n-1] {
		sum += points[n-1].X*points[0].Y - points[0].X*points[n-1].Y
	}
	return sum / 2
}

func reverse(points []Point) {
	for i, j := 0, len(points)-1; i < j; i, j = i+1, j-1 {
		points[i], points[j] = points[j], points[i]
	}
}

// CorrectWinding enforces the shapefile ring convention: outer rings
// clockwise (signed area <= 0), holes counter-clockwise (signed area
// >= 0). Rings that violate it are reversed in place, the only vertex
// mutation in the pipeline. Returns false when the net enclosed area
// is not strictly positive, such shapes must be discarded.
func CorrectWinding(s *Shape) bool {
	if s.Empty() {
		return false
	}
	total := 0.0
	for _, r := range s.Rings {
		a := SignedArea(r.Points)
		if (r.Hole && a < 0) || (!r.Hole && a > 0) {
			reverse(r.Points)
			a = -a
		}
		total += a
	}
	return -total > 0
}
