package table

import (
	"fmt"
	"strconv"
	"strings"

	goshp "github.com/jonas-p/go-shp"
)

// FromShapefile bulk-loads the attribute table of an opened shapefile
// reader. DBF numeric fields become integer columns when they carry no
// decimals, double columns otherwise; everything else is a string
// column. The store is read-only after this.
func FromShapefile(r *goshp.Reader) (*Store, error) {
	fields := r.Fields()
	columns := make([]Column, len(fields))
	for i, f := range fields {
		columns[i] = Column{Name: f.String(), Kind: columnKind(f)}
	}

	store, err := NewStore(columns)
	if err != nil {
		return nil, err
	}

	rows := r.AttributeCount()
	values := make([]Value, len(columns))
	for row := 0; row < rows; row++ {
		for col := range columns {
			raw := strings.TrimSpace(r.ReadAttribute(row, col))
			v, err := parseValue(columns[col].Kind, raw)
			if err != nil {
				return nil, fmt.Errorf("attribute row %d column %q: %s", row, columns[col].Name, err)
			}
			values[col] = v
		}
		if err := store.AppendRow(values); err != nil {
			return nil, err
		}
	}
	return store, nil
}

func columnKind(f goshp.Field) Kind {
	switch f.Fieldtype {
	case 'N':
		if f.Precision == 0 {
			return KindInt
		}
		return KindDouble
	case 'F':
		return KindDouble
	default:
		return KindString
	}
}

func parseValue(kind Kind, raw string) (Value, error) {
	switch kind {
	case KindInt:
		if raw == "" {
			return IntValue(0), nil
		}
		i, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return Value{}, err
		}
		return IntValue(i), nil
	case KindDouble:
		if raw == "" {
			return DoubleValue(0), nil
		}
		d, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return Value{}, err
		}
		return DoubleValue(d), nil
	default:
		return StringValue(raw), nil
	}
}
