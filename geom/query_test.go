package geom

import (
	"testing"

	"github.com/cheekybits/is"
)

func triangulated(t *testing.T, id int, rings []*Ring) *PolygonShape {
	is := is.New(t)

	s := NewShape(rings)
	is.True(CorrectWinding(s))

	ps := NewPolygonShape(id, s)
	tris, err := Triangulate(s)
	is.NoErr(err)
	is.True(len(tris) > 0)
	ps.Triangles = tris
	return ps
}

func TestFindPolygon(t *testing.T) {
	is := is.New(t)

	shapes := []*PolygonShape{
		triangulated(t, 0, []*Ring{{Points: cwSquare(0, 0, 1)}}),
		triangulated(t, 1, []*Ring{
			{Points: cwSquare(10, 10, 4)},
			{Points: ccwSquare(11, 11, 2), Hole: true},
		}),
	}

	is.Equal(FindPolygon(shapes, 0.5, 0.5), 0)
	is.Equal(FindPolygon(shapes, 10.5, 10.5), 1)

	// Inside the second shape's hole.
	is.Equal(FindPolygon(shapes, 12, 12), -1)

	// Inside nothing at all.
	is.Equal(FindPolygon(shapes, 5, 5), -1)
}

func TestNearestPolyline(t *testing.T) {
	is := is.New(t)

	line := NewShape([]*Ring{{Points: []Point{{0, 0}, {1, 0}}}})
	far := NewShape([]*Ring{{Points: []Point{{50, 50}, {51, 50}}}})
	lines := []*PolygonShape{
		NewPolygonShape(7, far),
		NewPolygonShape(8, line),
	}

	// Exactly at tolerance: accepted. Just past it: rejected.
	is.Equal(NearestPolyline(lines, 0.5, 0.001), 1)
	is.Equal(NearestPolyline(lines, 0.5, 0.0011), -1)

	// Beyond the segment end the distance is to the endpoint.
	is.Equal(NearestPolyline(lines, 1.001, 0), 1)
	is.Equal(NearestPolyline(lines, 1.002, 0), -1)
}

func TestNearestPointToleranceBoundary(t *testing.T) {
	is := is.New(t)

	points := []Point{{10, 10}, {0, 0}}

	is.Equal(NearestPoint(points, 0.001, 0), 1)
	is.Equal(NearestPoint(points, 0.0005, 0.0005), 1)
	is.Equal(NearestPoint(points, 0.0011, 0), -1)
	is.Equal(NearestPoint(points, 0, 0), 1)
}
