package glyphcurve

import (
	"math"
	"sort"
	"strconv"
)

// SearchStatus describes the outcome of [Search].
type SearchStatus int

const (
	// Found means the query lies within the table's range.
	Found SearchStatus = iota
	// Before means the query is smaller than the first entry. The returned
	// interval is the first one, for extrapolation.
	Before
	// After means the query is larger than the last entry. The returned
	// interval is the last one, for extrapolation.
	After
	// Empty means the table has fewer than two entries and contains no
	// interval.
	Empty
	// Degenerate means all entries are equal, so every interval has zero
	// width.
	Degenerate
	// Unbracketed means the query is NaN and cannot be located.
	Unbracketed
)

func (s SearchStatus) String() string {
	switch s {
	case Found:
		return "found"
	case Before:
		return "before"
	case After:
		return "after"
	case Empty:
		return "empty"
	case Degenerate:
		return "degenerate"
	case Unbracketed:
		return "unbracketed"
	default:
		return "SearchStatus(" + strconv.Itoa(int(s)) + ")"
	}
}

// OK reports whether the search produced a usable interval, including one
// for extrapolation.
func (s SearchStatus) OK() bool {
	return s == Found || s == Before || s == After
}

// Search locates x in a non-decreasing table. It returns the index i of the
// interval [table[i], table[i+1]) that contains x.
//
// Intervals of zero width are never returned. When several consecutive
// entries equal x, the result is the interval that starts at the last of
// them, which is the only interval of non-zero width that contains x. An x
// equal to the final entry belongs to the last interval of non-zero width.
//
// For x outside the table's range, Search returns the first or last interval
// of non-zero width together with [Before] or [After]. If no interval can be
// returned, the index is -1 and the status says why.
func Search(table []float64, x float64) (int, SearchStatus) {
	n := len(table)
	if n < 2 {
		return -1, Empty
	}
	if math.IsNaN(x) {
		return -1, Unbracketed
	}
	if table[0] == table[n-1] {
		return -1, Degenerate
	}
	if x < table[0] {
		return firstInterval(table), Before
	}
	if x > table[n-1] {
		return lastInterval(table), After
	}
	// Index of the first entry greater than x; the entry before it is the
	// last one that is <= x.
	i := sort.Search(n, func(j int) bool { return table[j] > x }) - 1
	if i == n-1 {
		return lastInterval(table), Found
	}
	return i, Found
}

func firstInterval(table []float64) int {
	for i := 0; i < len(table)-1; i++ {
		if table[i] < table[i+1] {
			return i
		}
	}
	return -1
}

func lastInterval(table []float64) int {
	for i := len(table) - 2; i >= 0; i-- {
		if table[i] < table[i+1] {
			return i
		}
	}
	return -1
}
