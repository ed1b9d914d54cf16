package table

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Stamp is the leading CSV timestamp at year, month or day
// granularity. Month and Day are zero when absent.
type Stamp struct {
	Year  int
	Month int
	Day   int
}

// ParseStamp accepts YYYY, YYYY-MM and YYYY-MM-DD, optionally quoted
// and optionally followed by a T and trailing time text.
func ParseStamp(field string) (Stamp, error) {
	s := strings.TrimSpace(field)
	s = strings.Trim(s, `"`)
	if i := strings.IndexByte(s, 'T'); i >= 0 {
		s = s[:i]
	}

	parts := strings.Split(s, "-")
	if len(parts) > 3 {
		return Stamp{}, fmt.Errorf("invalid timestamp %q", field)
	}

	var st Stamp
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil {
			return Stamp{}, fmt.Errorf("invalid timestamp %q", field)
		}
		switch i {
		case 0:
			if len(p) != 4 || n <= 0 {
				return Stamp{}, fmt.Errorf("invalid year in %q", field)
			}
			st.Year = n
		case 1:
			if len(p) != 2 || n < 1 || n > 12 {
				return Stamp{}, fmt.Errorf("invalid month in %q", field)
			}
			st.Month = n
		case 2:
			if len(p) != 2 || n < 1 || n > 31 {
				return Stamp{}, fmt.Errorf("invalid day in %q", field)
			}
			st.Day = n
		}
	}
	return st, nil
}

// first and last widen missing fields to the edges of the period the
// stamp covers, as comparable yyyymmdd keys.
func (s Stamp) first() int {
	m, d := s.Month, s.Day
	if m == 0 {
		m = 1
	}
	if d == 0 {
		d = 1
	}
	return s.Year*10000 + m*100 + d
}

func (s Stamp) last() int {
	m, d := s.Month, s.Day
	if m == 0 {
		m = 12
	}
	if d == 0 {
		d = 31
	}
	return s.Year*10000 + m*100 + d
}

// Overlaps reports whether the period covered by s intersects the
// period covered by [from, to], at whatever granularity each side has.
func (s Stamp) Overlaps(from, to Stamp) bool {
	return s.first() <= to.last() && s.last() >= from.first()
}

// filterBufferSize is deliberately large: input CSVs arrive as single
// multi-gigabyte files and the filter is a straight stream copy.
const filterBufferSize = 10 * 1024 * 1024

// FilterCSV copies the header line plus every data row whose leading
// timestamp overlaps [from, to] from inPath to outPath. Any failure
// removes the partial output; both files are released on all paths.
func FilterCSV(inPath, outPath string, from, to Stamp) error {
	in, err := os.Open(inPath)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(outPath)
	if err != nil {
		return err
	}

	err = filterLines(bufio.NewReaderSize(in, filterBufferSize), out, from, to)
	if err != nil {
		out.Close()
		os.Remove(outPath)
		return err
	}

	err = out.Close()
	if err != nil {
		os.Remove(outPath)
		return err
	}
	return nil
}

func filterLines(r *bufio.Reader, out io.Writer, from, to Stamp) error {
	w := bufio.NewWriter(out)

	header, err := r.ReadString('\n')
	if err != nil && err != io.EOF {
		return err
	}
	if header != "" {
		if _, werr := w.WriteString(header); werr != nil {
			return werr
		}
	}

	for err != io.EOF {
		var line string
		line, err = r.ReadString('\n')
		if err != nil && err != io.EOF {
			return err
		}
		if line == "" {
			continue
		}
		if strings.TrimSpace(line) == "" {
			continue
		}

		field := line
		if i := strings.IndexByte(line, ','); i >= 0 {
			field = line[:i]
		}
		st, perr := ParseStamp(field)
		if perr != nil {
			return perr
		}
		if !st.Overlaps(from, to) {
			continue
		}
		if _, werr := w.WriteString(line); werr != nil {
			return werr
		}
	}
	return w.Flush()
}
