package table

import (
	"cmp"
	"encoding/json"
	"slices"
	"strings"
)

// Direction is the order of an active sort.
type Direction int

const (
	Ascending Direction = iota
	Descending
)

// String returns the direction name used in header indicators.
func (d Direction) String() string {
	if d == Descending {
		return "descending"
	}
	return "ascending"
}

// Flip returns the opposite direction.
func (d Direction) Flip() Direction {
	if d == Ascending {
		return Descending
	}
	return Ascending
}

// SortState is either no sort (the zero value) or a field and direction.
type SortState struct {
	Field     string
	Direction Direction
	active    bool
}

// NoSort is the unsorted state.
var NoSort = SortState{}

// SortBy returns an active sort on field.
func SortBy(field string, dir Direction) SortState {
	return SortState{Field: field, Direction: dir, active: true}
}

// Active reports whether a sort key is set.
func (s SortState) Active() bool {
	return s.active
}

// String renders the state for logs, e.g. "name ascending" or "none".
func (s SortState) String() string {
	if !s.active {
		return "none"
	}
	return s.Field + " " + s.Direction.String()
}

// Toggle returns the state after activating col's header. Non-sortable
// columns leave the state unchanged. Reactivating the sorted field flips
// the direction; any other field starts ascending.
func (s SortState) Toggle(col Column) SortState {
	if !col.Sortable {
		return s
	}
	if !s.active || s.Field != col.Field {
		return SortBy(col.Field, Ascending)
	}
	return SortBy(col.Field, s.Direction.Flip())
}

// SortedView returns the records ordered by sort. The input slice is never
// modified; with NoSort the result is a shallow copy in the original order.
// The sort is stable.
func SortedView(records []Record, sort SortState) []Record {
	return pick(records, sortedOrder(records, sort))
}

// sortedOrder returns the permutation of record indexes that SortedView
// would produce.
func sortedOrder(records []Record, sort SortState) []int {
	order := make([]int, len(records))
	for i := range order {
		order[i] = i
	}
	if !sort.active {
		return order
	}
	slices.SortStableFunc(order, func(i, j int) int {
		return CompareValues(records[i].Get(sort.Field), records[j].Get(sort.Field), sort.Direction)
	})
	return order
}

func pick(records []Record, order []int) []Record {
	view := make([]Record, len(order))
	for i, idx := range order {
		view[i] = records[idx]
	}
	return view
}

// CompareValues orders two field values. nil sorts before any other value
// in both directions. Two numbers compare numerically; anything else
// compares by its string form. Descending inverts only the non-nil result.
func CompareValues(a, b any, dir Direction) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return -1
	case b == nil:
		return 1
	}

	var c int
	an, aok := Numeric(a)
	bn, bok := Numeric(b)
	if aok && bok {
		c = cmp.Compare(an, bn)
	} else {
		c = strings.Compare(Stringify(a), Stringify(b))
	}
	if dir == Descending {
		return -c
	}
	return c
}

// Numeric reports the float value of v when v is a number.
func Numeric(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		return n, true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	}
	return 0, false
}
