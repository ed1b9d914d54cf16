package shp

import (
	"errors"

	"github.com/USEPA/rsigserver-sub000/geom"
)

// GridCells builds one closed clockwise quadrilateral per included
// cell of a regular grid anchored at its south-west corner. A nil
// include mask selects every cell; otherwise it must hold cols*rows
// entries in row-major order, south row first.
func GridCells(west, south, cellSize float64, cols, rows int, include []bool) ([]*geom.Shape, error) {
	if cols <= 0 || rows <= 0 {
		return nil, errors.New("shp: grid dimensions must be positive")
	}
	if cellSize <= 0 {
		return nil, errors.New("shp: grid cell size must be positive")
	}
	if include != nil && len(include) != cols*rows {
		return nil, errors.New("shp: include mask does not match grid size")
	}

	shapes := make([]*geom.Shape, 0, cols*rows)
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			if include != nil && !include[row*cols+col] {
				continue
			}
			x0 := west + float64(col)*cellSize
			y0 := south + float64(row)*cellSize
			x1 := x0 + cellSize
			y1 := y0 + cellSize
			shapes = append(shapes, geom.NewShape([]*geom.Ring{{
				Points: []geom.Point{
					{X: x0, Y: y0},
					{X: x0, Y: y1},
					{X: x1, Y: y1},
					{X: x1, Y: y0},
					{X: x0, Y: y0},
				},
			}}))
		}
	}
	return shapes, nil
}

// WriteGrid emits the included cells of a regular grid as a type 5
// polygon shapefile pair.
func WriteGrid(base string, west, south, cellSize float64, cols, rows int, include []bool) error {
	shapes, err := GridCells(west, south, cellSize, cols, rows, include)
	if err != nil {
		return err
	}
	return WritePolygons(base, shapes)
}
