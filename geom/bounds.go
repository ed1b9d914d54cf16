package geom

// Point is a single coordinate pair, x east, y north.
type Point struct {
	X float64
	Y float64
}

// Bounds is an axis-aligned rectangle. Min is always <= Max on both
// axes, constructors normalize swapped input.
type Bounds struct {
	MinX float64
	MinY float64
	MaxX float64
	MaxY float64
}

func NewBounds(minX, minY, maxX, maxY float64) Bounds {
	if minX > maxX {
		minX, maxX = maxX, minX
	}
	if minY > maxY {
		minY, maxY = maxY, minY
	}
	return Bounds{MinX: minX, MinY: minY, MaxX: maxX, MaxY: maxY}
}

func BoundsFromPoints(points []Point) Bounds {
	if len(points) == 0 {
		return Bounds{}
	}
	b := Bounds{
		MinX: points[0].X,
		MinY: points[0].Y,
		MaxX: points[0].X,
		MaxY: points[0].Y,
	}
	for _, p := range points[1:] {
		if p.X < b.MinX {
			b.MinX = p.X
		}
		if p.X > b.MaxX {
			b.MaxX = p.X
		}
		if p.Y < b.MinY {
			b.MinY = p.Y
		}
		if p.Y > b.MaxY {
			b.MaxY = p.Y
		}
	}
	return b
}

func (b Bounds) Contains(x, y float64) bool {
	return x >= b.MinX && x <= b.MaxX && y >= b.MinY && y <= b.MaxY
}

func (b Bounds) Intersects(o Bounds) bool {
	return b.MinX <= o.MaxX && b.MaxX >= o.MinX &&
		b.MinY <= o.MaxY && b.MaxY >= o.MinY
}

func (b Bounds) ContainsBounds(o Bounds) bool {
	return o.MinX >= b.MinX && o.MaxX <= b.MaxX &&
		o.MinY >= b.MinY && o.MaxY <= b.MaxY
}

func (b Bounds) Expand(margin float64) Bounds {
	return Bounds{
		MinX: b.MinX - margin,
		MinY: b.MinY - margin,
		MaxX: b.MaxX + margin,
		MaxY: b.MaxY + margin,
	}
}

func (b Bounds) Union(o Bounds) Bounds {
	out := b
	if o.MinX < out.MinX {
		out.MinX = o.MinX
	}
	if o.MinY < out.MinY {
		out.MinY = o.MinY
	}
	if o.MaxX > out.MaxX {
		out.MaxX = o.MaxX
	}
	if o.MaxY > out.MaxY {
		out.MaxY = o.MaxY
	}
	return out
}
