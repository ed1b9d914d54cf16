package geom

import (
	libtess2 "github.com/hajimehoshi/go-libtess2"
)

// Triangulate converts a winding-corrected polygon into containment
// triangles. Holes are handled by the odd winding rule, every ring is
// passed as a contour and the tessellator keeps only the interior.
func Triangulate(s *Shape) ([]Triangle, error) {
	contours := make([]libtess2.Contour, 0, len(s.Rings))
	for _, r := range s.Rings {
		points := r.Points
		if n := len(points); n > 1 && points[0] == points[n-1] {
			points = points[:n-1]
		}
		contour := make(libtess2.Contour, 0, len(points))
		for _, p := range points {
			contour = append(contour, libtess2.Vertex{
				X: float32(p.X),
				Y: float32(p.Y),
			})
		}
		contours = append(contours, contour)
	}

	elements, vertices, err := libtess2.Tesselate(contours, libtess2.WindingRuleOdd)
	if err != nil {
		return nil, err
	}

	triangles := make([]Triangle, 0, len(elements)/3)
	for i := 0; i+2 < len(elements); i += 3 {
		a := vertices[elements[i]]
		b := vertices[elements[i+1]]
		c := vertices[elements[i+2]]
		triangles = append(triangles, Triangle{
			{X: float64(a.X), Y: float64(a.Y)},
			{X: float64(b.X), Y: float64(b.Y)},
			{X: float64(c.X), Y: float64(c.Y)},
		})
	}
	return triangles, nil
}
