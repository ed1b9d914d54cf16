package table

import (
	"os"
	"path"
	"testing"

	"github.com/cheekybits/is"
)

func TestParseStamp(t *testing.T) {
	is := is.New(t)

	st, err := ParseStamp("2004")
	is.NoErr(err)
	is.Equal(st, Stamp{Year: 2004})

	st, err = ParseStamp("2004-06")
	is.NoErr(err)
	is.Equal(st, Stamp{Year: 2004, Month: 6})

	st, err = ParseStamp(`"2004-06-15"`)
	is.NoErr(err)
	is.Equal(st, Stamp{Year: 2004, Month: 6, Day: 15})

	st, err = ParseStamp("2004-06-15T00:00:00-0000")
	is.NoErr(err)
	is.Equal(st, Stamp{Year: 2004, Month: 6, Day: 15})

	for _, bad := range []string{"", "04", "2004-13", "2004-00", "2004-06-32", "2004-6", "abcd", "2004-06-15-01"} {
		_, err = ParseStamp(bad)
		is.Err(err)
	}
}

func TestStampOverlaps(t *testing.T) {
	is := is.New(t)

	from := Stamp{Year: 2004, Month: 6, Day: 10}
	to := Stamp{Year: 2004, Month: 6, Day: 20}

	// A year-granular stamp covers the whole year.
	is.True(Stamp{Year: 2004}.Overlaps(from, to))
	is.False(Stamp{Year: 2003}.Overlaps(from, to))

	is.True(Stamp{Year: 2004, Month: 6}.Overlaps(from, to))
	is.False(Stamp{Year: 2004, Month: 5}.Overlaps(from, to))

	is.True(Stamp{Year: 2004, Month: 6, Day: 10}.Overlaps(from, to))
	is.True(Stamp{Year: 2004, Month: 6, Day: 20}.Overlaps(from, to))
	is.False(Stamp{Year: 2004, Month: 6, Day: 21}.Overlaps(from, to))

	// Coarse range bounds widen the same way.
	is.True(Stamp{Year: 2004, Month: 1, Day: 1}.Overlaps(Stamp{Year: 2004}, Stamp{Year: 2004}))
}

func TestFilterCSV(t *testing.T) {
	is := is.New(t)

	dir := t.TempDir()
	in := path.Join(dir, "in.csv")
	out := path.Join(dir, "out.csv")

	data := "timestamp,site,flow\n" +
		"2004-06-09,A,1.0\n" +
		"\"2004-06-15\",B,2.0\n" +
		"2004-06-15T12:00:00-0000,C,3.0\n" +
		"2004-07,D,4.0\n" +
		"2005,E,5.0\n"
	is.NoErr(os.WriteFile(in, []byte(data), 0644))

	err := FilterCSV(in, out, Stamp{Year: 2004, Month: 6, Day: 10}, Stamp{Year: 2004, Month: 6, Day: 30})
	is.NoErr(err)

	got, err := os.ReadFile(out)
	is.NoErr(err)
	is.Equal(string(got), "timestamp,site,flow\n"+
		"\"2004-06-15\",B,2.0\n"+
		"2004-06-15T12:00:00-0000,C,3.0\n")
}

func TestFilterCSVRejectsBadStamp(t *testing.T) {
	is := is.New(t)

	dir := t.TempDir()
	in := path.Join(dir, "in.csv")
	out := path.Join(dir, "out.csv")
	is.NoErr(os.WriteFile(in, []byte("timestamp,v\nnot-a-date,1\n"), 0644))

	is.Err(FilterCSV(in, out, Stamp{Year: 2000}, Stamp{Year: 2010}))

	// No partial output is left behind.
	_, err := os.Stat(out)
	is.True(os.IsNotExist(err))
}
