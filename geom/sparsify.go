package geom

import "math"

// Minimum stored vertex counts after sparsification. A closed ring
// needs three distinct vertices plus the closing duplicate.
const (
	minClosedVertices = 4
	minOpenVertices   = 2
)

// Sparsify merges near-coincident adjacent vertices. A vertex is
// dropped only when BOTH its axis deltas against the last retained
// vertex are below eps; the comparison is per-axis, not Euclidean.
// The first vertex is always retained. Closed chains are re-closed by
// replicating the first vertex when needed. Returns nil when the
// result falls below the per-shape-type minimum.
func Sparsify(points []Point, eps float64, closed bool) []Point {
	if len(points) == 0 {
		return nil
	}

	out := make([]Point, 0, len(points))
	out = append(out, points[0])
	last := points[0]
	for _, p := range points[1:] {
		if math.Abs(p.X-last.X) < eps && math.Abs(p.Y-last.Y) < eps {
			continue
		}
		out = append(out, p)
		last = p
	}

	if closed {
		if out[len(out)-1] != out[0] {
			out = append(out, out[0])
		}
		if len(out) < minClosedVertices {
			return nil
		}
	} else if len(out) < minOpenVertices {
		return nil
	}
	return out
}
