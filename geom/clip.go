package geom

import (
	"errors"
	"math"

	clipper "github.com/ctessum/go.clipper"
)

// clipScale converts degree coordinates to the clipper's integer grid,
// about a centimeter of resolution at the equator.
const clipScale = 1e7

func toClipperPath(points []Point) clipper.Path {
	n := len(points)
	if n > 1 && points[0] == points[n-1] {
		n-- // clipper paths are implicitly closed
	}
	path := make(clipper.Path, 0, n)
	for _, p := range points[:n] {
		path = append(path, &clipper.IntPoint{
			X: clipper.CInt(math.Round(p.X * clipScale)),
			Y: clipper.CInt(math.Round(p.Y * clipScale)),
		})
	}
	return path
}

func fromClipperPath(path clipper.Path) []Point {
	points := make([]Point, 0, len(path)+1)
	for _, ip := range path {
		points = append(points, Point{
			X: float64(ip.X) / clipScale,
			Y: float64(ip.Y) / clipScale,
		})
	}
	points = append(points, points[0])
	return points
}

func windowPath(window Bounds) clipper.Path {
	ring := []Point{
		{window.MinX, window.MinY},
		{window.MaxX, window.MinY},
		{window.MaxX, window.MaxY},
		{window.MinX, window.MaxY},
		{window.MinX, window.MinY},
	}
	return toClipperPath(ring)
}

// ClipPolygon intersects a winding-corrected polygon with a
// rectangular window. An empty intersection is not an error: it
// returns a nil shape and the caller clears the owning mask bit. The
// clipped output is re-closed, re-flagged for holes from the clipper's
// ring orientation and must re-pass winding correction, with at least
// one non-hole contour, or it is treated as empty.
func ClipPolygon(s *Shape, window Bounds) (*Shape, error) {
	if s.Empty() {
		return nil, nil
	}

	subject := make(clipper.Paths, 0, len(s.Rings))
	for _, r := range s.Rings {
		if len(r.Points) < 3 {
			return nil, errors.New("clip: degenerate input ring")
		}
		subject = append(subject, toClipperPath(r.Points))
	}

	c := clipper.NewClipper(clipper.IoNone)
	if !c.AddPaths(subject, clipper.PtSubject, true) {
		return nil, errors.New("clip: invalid subject polygon")
	}
	if !c.AddPath(windowPath(window), clipper.PtClip, true) {
		return nil, errors.New("clip: invalid window rectangle")
	}

	solution, ok := c.Execute1(clipper.CtIntersection, clipper.PftEvenOdd, clipper.PftEvenOdd)
	if !ok {
		return nil, errors.New("clip: intersection failed")
	}

	out := &Shape{}
	outers := 0
	for _, path := range solution {
		if len(path) < 3 {
			continue
		}
		points := fromClipperPath(path)
		// Clipper emits outer rings with positive orientation and
		// holes reversed.
		hole := SignedArea(points) < 0
		if !hole {
			outers++
		}
		out.Rings = append(out.Rings, &Ring{Points: points, Hole: hole})
	}

	if out.Empty() || outers == 0 || !CorrectWinding(out) {
		return nil, nil
	}
	return out, nil
}

// ClipPolyline clips every chain of a polyline against the window by
// walking its segments and emitting maximal in-bounds vertex runs.
// Inclusion is decided per vertex, boundary crossings are not
// interpolated. Emitted chains never carry hole flags. Returns nil
// when nothing is left inside the window.
func ClipPolyline(s *Shape, window Bounds) *Shape {
	if s.Empty() {
		return nil
	}

	out := &Shape{}
	for _, r := range s.Rings {
		var run []Point
		for _, p := range r.Points {
			if window.Contains(p.X, p.Y) {
				run = append(run, p)
				continue
			}
			if len(run) >= minOpenVertices {
				out.Rings = append(out.Rings, &Ring{Points: run})
			}
			run = nil
		}
		if len(run) >= minOpenVertices {
			out.Rings = append(out.Rings, &Ring{Points: run})
		}
	}

	if out.Empty() {
		return nil
	}
	return out
}
