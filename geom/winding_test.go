package geom

import (
	"testing"

	"github.com/cheekybits/is"
)

func ccwSquare(x, y, size float64) []Point {
	return []Point{
		{x, y},
		{x + size, y},
		{x + size, y + size},
		{x, y + size},
		{x, y},
	}
}

func cwSquare(x, y, size float64) []Point {
	p := ccwSquare(x, y, size)
	reverse(p)
	return p
}

func TestSignedArea(t *testing.T) {
	is := is.New(t)

	is.Equal(SignedArea(ccwSquare(0, 0, 2)), 4.0)
	is.Equal(SignedArea(cwSquare(0, 0, 2)), -4.0)

	// Open chains close cyclically.
	open := []Point{{0, 0}, {2, 0}, {2, 2}, {0, 2}}
	is.Equal(SignedArea(open), 4.0)

	is.Equal(SignedArea([]Point{{0, 0}, {1, 1}}), 0.0)
}

func TestCorrectWindingReversesViolators(t *testing.T) {
	is := is.New(t)

	// Outer ring wound counter-clockwise, hole wound clockwise: both
	// violate the convention and must be reversed.
	outer := &Ring{Points: ccwSquare(0, 0, 4)}
	hole := &Ring{Points: cwSquare(1, 1, 1), Hole: true}
	s := NewShape([]*Ring{outer, hole})

	is.True(CorrectWinding(s))
	is.True(SignedArea(outer.Points) <= 0)
	is.True(SignedArea(hole.Points) >= 0)

	net := -(SignedArea(outer.Points) + SignedArea(hole.Points))
	is.Equal(net, 15.0)
}

func TestCorrectWindingKeepsValidRings(t *testing.T) {
	is := is.New(t)

	outer := &Ring{Points: cwSquare(0, 0, 2)}
	before := append([]Point(nil), outer.Points...)
	s := NewShape([]*Ring{outer})

	is.True(CorrectWinding(s))
	is.Equal(outer.Points, before)
}

func TestCorrectWindingRejectsNonPositiveArea(t *testing.T) {
	is := is.New(t)

	// All-hole shape encloses nothing.
	hole := &Ring{Points: ccwSquare(0, 0, 1), Hole: true}
	is.False(CorrectWinding(NewShape([]*Ring{hole})))

	// Degenerate sliver with zero area.
	flat := &Ring{Points: []Point{{0, 0}, {1, 0}, {2, 0}, {0, 0}}}
	is.False(CorrectWinding(NewShape([]*Ring{flat})))

	is.False(CorrectWinding(&Shape{}))
}
