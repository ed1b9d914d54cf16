package table

// Mask is a boolean array aligned 1:1 with rows or shapes. Each
// filtering stage clears the entries it rejects; entries are never
// re-set once cleared.
type Mask []bool

func NewMask(n int, initial bool) Mask {
	m := make(Mask, n)
	if initial {
		for i := range m {
			m[i] = true
		}
	}
	return m
}

func (m Mask) Count() int {
	n := 0
	for _, v := range m {
		if v {
			n++
		}
	}
	return n
}
