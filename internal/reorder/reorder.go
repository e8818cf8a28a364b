// Package reorder moves a selected block of list items one step up or down.
package reorder

import (
	"sort"

	"reseq/pkg/types"
)

// Normalize de-duplicates and sorts selected, dropping indices outside [0, n)
func Normalize(selected []int, n int) []int {
	seen := make(map[int]bool, len(selected))
	out := make([]int, 0, len(selected))
	for _, i := range selected {
		if i < 0 || i >= n || seen[i] {
			continue
		}
		seen[i] = true
		out = append(out, i)
	}
	sort.Ints(out)
	return out
}

// Move lifts the selected items out of items, keeping their relative order,
// and reinserts them as one contiguous block one step in dir.
//
// Moving up inserts the block at min-1. Moving down inserts it at max-k+2
// (k is the block size), the slot just after the item that followed the
// last selected one. A move from the top or bottom edge, or with an empty
// selection, returns an unchanged copy and false.
//
// items is never modified. The returned Span is where the block now sits.
func Move[T any](items []T, selected []int, dir types.Direction) ([]T, types.Span, bool) {
	out := make([]T, len(items))
	copy(out, items)

	sel := Normalize(selected, len(items))
	if len(sel) == 0 {
		return out, types.Span{}, false
	}
	lo, hi := sel[0], sel[len(sel)-1]
	if (dir == types.Up && lo == 0) || (dir == types.Down && hi == len(items)-1) {
		return out, types.Span{}, false
	}

	picked := make(map[int]bool, len(sel))
	block := make([]T, 0, len(sel))
	for _, i := range sel {
		picked[i] = true
		block = append(block, items[i])
	}
	rest := make([]T, 0, len(items)-len(block))
	for i, item := range items {
		if !picked[i] {
			rest = append(rest, item)
		}
	}

	var at int
	if dir == types.Up {
		at = lo - 1
	} else {
		at = hi - len(block) + 2
		if at > len(rest) {
			at = len(rest)
		}
	}

	out = out[:0]
	out = append(out, rest[:at]...)
	out = append(out, block...)
	out = append(out, rest[at:]...)
	return out, types.Span{Start: at, End: at + len(block)}, true
}

// Indices returns the positions covered by s
func Indices(s types.Span) []int {
	out := make([]int, 0, s.Len())
	for i := s.Start; i < s.End; i++ {
		out = append(out, i)
	}
	return out
}
