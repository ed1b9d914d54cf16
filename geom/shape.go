package geom

// Ring is an ordered vertex chain. Polygon rings are closed (first and
// last vertex identical, at least 4 stored entries), polyline chains
// are open with at least 2 vertices and never carry a hole flag.
type Ring struct {
	Points []Point
	Hole   bool
}

func (r *Ring) Closed() bool {
	n := len(r.Points)
	return n > 1 && r.Points[0] == r.Points[n-1]
}

// Shape is a multi-contour polygon or polyline with a lazily cached
// bounding box. Mutating rings after the first Bounds call invalidates
// the cache, callers must not do that.
type Shape struct {
	Rings []*Ring

	bounds    Bounds
	hasBounds bool
}

func NewShape(rings []*Ring) *Shape {
	return &Shape{Rings: rings}
}

func (s *Shape) Empty() bool {
	return s == nil || len(s.Rings) == 0
}

func (s *Shape) Bounds() Bounds {
	if s.hasBounds {
		return s.bounds
	}
	for i, r := range s.Rings {
		b := BoundsFromPoints(r.Points)
		if i == 0 {
			s.bounds = b
		} else {
			s.bounds = s.bounds.Union(b)
		}
	}
	s.hasBounds = true
	return s.bounds
}

// Triangle is a single containment-test triangle.
type Triangle [3]Point

// PolygonShape ties a processed shape back to the attribute row it was
// derived from. ID is the source record index and is the only
// cross-reference, there is never a live pointer into the row store.
type PolygonShape struct {
	ID        int
	Bounds    Bounds
	Geometry  *Shape
	Triangles []Triangle
}

func NewPolygonShape(id int, geometry *Shape) *PolygonShape {
	return &PolygonShape{
		ID:       id,
		Bounds:   geometry.Bounds(),
		Geometry: geometry,
	}
}
