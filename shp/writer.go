// Package shp encodes ESRI Shapefile main (.shp), index (.shx) and
// projection (.prj) files from scratch. Encoders are pure: byte-exact
// output per the ESRI specification, mixed big- and little-endian
// fields, no retained state.
package shp

import (
	"bufio"
	"encoding/binary"
	"errors"
	"math"
	"os"

	"github.com/USEPA/rsigserver-sub000/geom"
)

// Shape type codes from the ESRI specification.
const (
	TypePolyline = 3
	TypePolygon  = 5
	TypePointZ   = 11
)

const (
	headerSize  = 100
	magicNumber = 9994
	fileVersion = 1000
)

// PointZ is a single 3D measured point record.
type PointZ struct {
	X float64
	Y float64
	Z float64
	M float64
}

func putLEFloat(b []byte, v float64) {
	binary.LittleEndian.PutUint64(b, math.Float64bits(v))
}

// fileHeader encodes the 100-byte header shared by .shp and .shx:
// magic number big-endian at offset 0, file length in 16-bit words
// big-endian at offset 24, version and shape type little-endian, then
// the bounding box as little-endian doubles. Z and M ranges stay zero.
func fileHeader(shapeType int32, totalBytes int, box geom.Bounds) []byte {
	h := make([]byte, headerSize)
	binary.BigEndian.PutUint32(h[0:], magicNumber)
	binary.BigEndian.PutUint32(h[24:], uint32(totalBytes/2))
	binary.LittleEndian.PutUint32(h[28:], fileVersion)
	binary.LittleEndian.PutUint32(h[32:], uint32(shapeType))
	putLEFloat(h[36:], box.MinX)
	putLEFloat(h[44:], box.MinY)
	putLEFloat(h[52:], box.MaxX)
	putLEFloat(h[60:], box.MaxY)
	return h
}

// multipartContent encodes the record payload shared by polygons and
// polylines: shape type, bounding box, part and point counts, part
// start offsets, then interleaved (x, y) doubles, all little-endian.
func multipartContent(shapeType int32, s *geom.Shape) []byte {
	numParts := len(s.Rings)
	numPoints := 0
	for _, r := range s.Rings {
		numPoints += len(r.Points)
	}

	b := make([]byte, 44+4*numParts+16*numPoints)
	binary.LittleEndian.PutUint32(b[0:], uint32(shapeType))
	box := s.Bounds()
	putLEFloat(b[4:], box.MinX)
	putLEFloat(b[12:], box.MinY)
	putLEFloat(b[20:], box.MaxX)
	putLEFloat(b[28:], box.MaxY)
	binary.LittleEndian.PutUint32(b[36:], uint32(numParts))
	binary.LittleEndian.PutUint32(b[40:], uint32(numPoints))

	off := 44
	start := 0
	for _, r := range s.Rings {
		binary.LittleEndian.PutUint32(b[off:], uint32(start))
		off += 4
		start += len(r.Points)
	}
	for _, r := range s.Rings {
		for _, p := range r.Points {
			putLEFloat(b[off:], p.X)
			putLEFloat(b[off+8:], p.Y)
			off += 16
		}
	}
	return b
}

func pointZContent(p PointZ) []byte {
	b := make([]byte, 36)
	binary.LittleEndian.PutUint32(b[0:], TypePointZ)
	putLEFloat(b[4:], p.X)
	putLEFloat(b[12:], p.Y)
	putLEFloat(b[20:], p.Z)
	putLEFloat(b[28:], p.M)
	return b
}

// writeFile fills path through a buffered writer and never leaves a
// partial file behind: any failed write removes the output so callers
// see complete files or none.
func writeFile(path string, fill func(*bufio.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	w := bufio.NewWriter(f)
	err = fill(w)
	if err == nil {
		err = w.Flush()
	}
	if err != nil {
		f.Close()
		os.Remove(path)
		return err
	}

	err = f.Close()
	if err != nil {
		os.Remove(path)
		return err
	}
	return nil
}

// writePair emits base.shp and base.shx for the given record contents.
func writePair(base string, shapeType int32, box geom.Bounds, contents [][]byte) error {
	shpBytes := headerSize
	for _, c := range contents {
		shpBytes += 8 + len(c)
	}

	err := writeFile(base+".shp", func(w *bufio.Writer) error {
		if _, err := w.Write(fileHeader(shapeType, shpBytes, box)); err != nil {
			return err
		}
		var rec [8]byte
		for i, c := range contents {
			binary.BigEndian.PutUint32(rec[0:], uint32(i+1))
			binary.BigEndian.PutUint32(rec[4:], uint32(len(c)/2))
			if _, err := w.Write(rec[:]); err != nil {
				return err
			}
			if _, err := w.Write(c); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	shxBytes := headerSize + 8*len(contents)
	err = writeFile(base+".shx", func(w *bufio.Writer) error {
		if _, err := w.Write(fileHeader(shapeType, shxBytes, box)); err != nil {
			return err
		}
		var rec [8]byte
		offset := headerSize / 2
		for _, c := range contents {
			binary.BigEndian.PutUint32(rec[0:], uint32(offset))
			binary.BigEndian.PutUint32(rec[4:], uint32(len(c)/2))
			if _, err := w.Write(rec[:]); err != nil {
				return err
			}
			offset += (8 + len(c)) / 2
		}
		return nil
	})
	if err != nil {
		// The pair is only valid as a whole.
		os.Remove(base + ".shp")
		return err
	}
	return nil
}

func shapesBox(shapes []*geom.Shape) geom.Bounds {
	var box geom.Bounds
	for i, s := range shapes {
		if i == 0 {
			box = s.Bounds()
		} else {
			box = box.Union(s.Bounds())
		}
	}
	return box
}

// WritePolygons emits base.shp/base.shx with one type 5 record per
// shape. Rings must already be closed and winding-corrected.
func WritePolygons(base string, shapes []*geom.Shape) error {
	return writeMultipart(base, TypePolygon, shapes)
}

// WritePolylines emits base.shp/base.shx with one type 3 record per
// shape.
func WritePolylines(base string, shapes []*geom.Shape) error {
	return writeMultipart(base, TypePolyline, shapes)
}

func writeMultipart(base string, shapeType int32, shapes []*geom.Shape) error {
	contents := make([][]byte, 0, len(shapes))
	for _, s := range shapes {
		if s.Empty() {
			return errors.New("shp: empty shape")
		}
		contents = append(contents, multipartContent(shapeType, s))
	}
	return writePair(base, shapeType, shapesBox(shapes), contents)
}

// WritePointsZ emits base.shp/base.shx with one type 11 (PointZ)
// record per point.
func WritePointsZ(base string, points []PointZ) error {
	contents := make([][]byte, 0, len(points))
	var box geom.Bounds
	for i, p := range points {
		contents = append(contents, pointZContent(p))
		b := geom.Bounds{MinX: p.X, MinY: p.Y, MaxX: p.X, MaxY: p.Y}
		if i == 0 {
			box = b
		} else {
			box = box.Union(b)
		}
	}
	return writePair(base, TypePointZ, box, contents)
}
