// Package table holds the in-memory attribute table: typed columns of
// string, integer or double values with a fixed schema, plus the row
// masks the filtering pipeline accumulates its decisions in.
package table

import "fmt"

type Kind int

const (
	KindString Kind = iota
	KindInt
	KindDouble
)

type Column struct {
	Name string
	Kind Kind
}

// Value is a tagged union. Only the field matching Kind is meaningful.
type Value struct {
	Kind Kind
	Str  string
	Int  int64
	Dbl  float64
}

func StringValue(s string) Value { return Value{Kind: KindString, Str: s} }
func IntValue(i int64) Value     { return Value{Kind: KindInt, Int: i} }
func DoubleValue(d float64) Value {
	return Value{Kind: KindDouble, Dbl: d}
}

// Store is a read-mostly row store with insertion-ordered columns.
// Repeated string values are deduplicated through an intern table so
// equal strings share one backing allocation.
type Store struct {
	columns []Column
	index   map[string]int
	rows    [][]Value
	interns map[string]string
}

func NewStore(columns []Column) (*Store, error) {
	index := make(map[string]int, len(columns))
	for i, c := range columns {
		if _, ok := index[c.Name]; ok {
			return nil, fmt.Errorf("table: duplicate column %q", c.Name)
		}
		index[c.Name] = i
	}
	return &Store{
		columns: columns,
		index:   index,
		interns: make(map[string]string),
	}, nil
}

func (s *Store) Columns() []Column { return s.columns }
func (s *Store) NumRows() int      { return len(s.rows) }

// Column returns the index of a named column.
func (s *Store) Column(name string) (int, bool) {
	i, ok := s.index[name]
	return i, ok
}

func (s *Store) intern(str string) string {
	if v, ok := s.interns[str]; ok {
		return v
	}
	s.interns[str] = str
	return str
}

// AppendRow adds a row matching the column schema. String values are
// interned.
func (s *Store) AppendRow(values []Value) error {
	if len(values) != len(s.columns) {
		return fmt.Errorf("table: row has %d values, schema has %d columns", len(values), len(s.columns))
	}
	row := make([]Value, len(values))
	for i, v := range values {
		if v.Kind != s.columns[i].Kind {
			return fmt.Errorf("table: value kind mismatch in column %q", s.columns[i].Name)
		}
		if v.Kind == KindString {
			v.Str = s.intern(v.Str)
		}
		row[i] = v
	}
	s.rows = append(s.rows, row)
	return nil
}

// AddColumn appends a column to the schema, zero-filled on existing
// rows, and returns its index.
func (s *Store) AddColumn(c Column) (int, error) {
	if _, ok := s.index[c.Name]; ok {
		return 0, fmt.Errorf("table: duplicate column %q", c.Name)
	}
	s.columns = append(s.columns, c)
	i := len(s.columns) - 1
	s.index[c.Name] = i
	for r := range s.rows {
		s.rows[r] = append(s.rows[r], Value{Kind: c.Kind})
	}
	return i, nil
}

// Value reads by column name.
func (s *Store) Value(row int, column string) (Value, bool) {
	i, ok := s.index[column]
	if !ok || row < 0 || row >= len(s.rows) {
		return Value{}, false
	}
	return s.rows[row][i], true
}

// ValueAt reads by column index, which the caller has validated.
func (s *Store) ValueAt(row, column int) Value {
	return s.rows[row][column]
}

// SetValue writes a cell, keeping the column's kind.
func (s *Store) SetValue(row int, column string, v Value) bool {
	i, ok := s.index[column]
	if !ok || row < 0 || row >= len(s.rows) || v.Kind != s.columns[i].Kind {
		return false
	}
	if v.Kind == KindString {
		v.Str = s.intern(v.Str)
	}
	s.rows[row][i] = v
	return true
}
