// Package flownet selects rows of a flow-network table by walking the
// directed graph its FROM_NODE/TO_NODE columns encode.
package flownet

import (
	"fmt"

	"github.com/USEPA/rsigserver-sub000/table"
)

// frame is one suspended scan: the node value being searched for in
// the TO_NODE column and the row index at which the scan resumes once
// the deeper branch completes.
type frame struct {
	token  int64
	resume int
}

// FlagUpstream marks every unvisited row whose flow eventually drains
// into toNode. The traversal is depth-first, implemented with an
// explicit frame stack instead of native recursion so memory stays
// bounded on pathological networks, and the visited mask makes it
// terminate on cyclic graphs: a row reached through one path is never
// reprocessed through another. Returns the number of newly marked
// rows.
func FlagUpstream(rows *table.Store, fromColumn, toColumn string, toNode int64, visited []bool) (int, error) {
	from, ok := rows.Column(fromColumn)
	if !ok {
		return 0, fmt.Errorf("flownet: no column %q", fromColumn)
	}
	to, ok := rows.Column(toColumn)
	if !ok {
		return 0, fmt.Errorf("flownet: no column %q", toColumn)
	}
	columns := rows.Columns()
	if columns[from].Kind != table.KindInt || columns[to].Kind != table.KindInt {
		return 0, fmt.Errorf("flownet: %q and %q must be integer columns", fromColumn, toColumn)
	}
	if len(visited) != rows.NumRows() {
		return 0, fmt.Errorf("flownet: visited mask has %d entries for %d rows", len(visited), rows.NumRows())
	}

	count := 0
	stack := []frame{{token: toNode}}
	for len(stack) > 0 {
		top := &stack[len(stack)-1]

		matched := -1
		for i := top.resume; i < rows.NumRows(); i++ {
			if visited[i] || rows.ValueAt(i, to).Int != top.token {
				continue
			}
			matched = i
			break
		}
		if matched < 0 {
			stack = stack[:len(stack)-1]
			continue
		}

		visited[matched] = true
		count++
		top.resume = matched + 1
		stack = append(stack, frame{token: rows.ValueAt(matched, from).Int})
	}
	return count, nil
}
