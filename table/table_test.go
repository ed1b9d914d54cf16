package table

import (
	"testing"

	"github.com/cheekybits/is"
)

func testStore(t *testing.T) *Store {
	is := is.New(t)
	s, err := NewStore([]Column{
		{Name: "SITE", Kind: KindString},
		{Name: "FROM_NODE", Kind: KindInt},
		{Name: "FLOW", Kind: KindDouble},
	})
	is.NoErr(err)
	return s
}

func TestStoreAppendAndRead(t *testing.T) {
	is := is.New(t)
	s := testStore(t)

	is.NoErr(s.AppendRow([]Value{StringValue("upper"), IntValue(4), DoubleValue(1.5)}))
	is.NoErr(s.AppendRow([]Value{StringValue("lower"), IntValue(7), DoubleValue(0)}))
	is.Equal(s.NumRows(), 2)

	v, ok := s.Value(1, "FROM_NODE")
	is.True(ok)
	is.Equal(v.Int, int64(7))

	_, ok = s.Value(0, "MISSING")
	is.False(ok)
	_, ok = s.Value(5, "SITE")
	is.False(ok)

	i, ok := s.Column("FLOW")
	is.True(ok)
	is.Equal(s.ValueAt(0, i).Dbl, 1.5)
}

func TestStoreSchemaEnforcement(t *testing.T) {
	is := is.New(t)
	s := testStore(t)

	is.Err(s.AppendRow([]Value{StringValue("short")}))
	is.Err(s.AppendRow([]Value{IntValue(1), IntValue(2), DoubleValue(3)}))

	_, err := NewStore([]Column{{Name: "A"}, {Name: "A"}})
	is.Err(err)
}

func TestStoreInternsStrings(t *testing.T) {
	is := is.New(t)
	s := testStore(t)

	// Same text through different backing allocations.
	a := string([]byte{'g', 'a', 'g', 'e'})
	b := string([]byte{'g', 'a', 'g', 'e'})
	is.NoErr(s.AppendRow([]Value{StringValue(a), IntValue(1), DoubleValue(0)}))
	is.NoErr(s.AppendRow([]Value{StringValue(b), IntValue(2), DoubleValue(0)}))

	is.Equal(len(s.interns), 1)
	va, _ := s.Value(0, "SITE")
	vb, _ := s.Value(1, "SITE")
	is.Equal(va.Str, vb.Str)
}

func TestStoreAddColumn(t *testing.T) {
	is := is.New(t)
	s := testStore(t)
	is.NoErr(s.AppendRow([]Value{StringValue("x"), IntValue(1), DoubleValue(2)}))

	i, err := s.AddColumn(Column{Name: "AREA_SQKM", Kind: KindDouble})
	is.NoErr(err)
	is.Equal(s.ValueAt(0, i).Dbl, 0.0)

	is.True(s.SetValue(0, "AREA_SQKM", DoubleValue(12.25)))
	v, ok := s.Value(0, "AREA_SQKM")
	is.True(ok)
	is.Equal(v.Dbl, 12.25)

	// Kind mismatches are refused.
	is.False(s.SetValue(0, "AREA_SQKM", IntValue(3)))

	_, err = s.AddColumn(Column{Name: "SITE", Kind: KindString})
	is.Err(err)
}

func TestMask(t *testing.T) {
	is := is.New(t)

	m := NewMask(4, true)
	is.Equal(m.Count(), 4)
	m[1] = false
	m[3] = false
	is.Equal(m.Count(), 2)

	is.Equal(NewMask(3, false).Count(), 0)
}
