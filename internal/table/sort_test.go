package table

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func names(recs []Record) []any {
	out := make([]any, len(recs))
	for i, r := range recs {
		out[i] = r.Get("name")
	}
	return out
}

func TestSortedViewNoSortCopies(t *testing.T) {
	data := []Record{{"name": "B"}, {"name": "A"}}

	view := SortedView(data, NoSort)
	require.Len(t, view, 2)
	assert.Equal(t, []any{"B", "A"}, names(view))

	view[0] = Record{"name": "Z"}
	assert.Equal(t, "B", data[0]["name"], "caller slice must not be touched")
}

func TestSortedViewDoesNotMutateInput(t *testing.T) {
	data := []Record{{"name": "C"}, {"name": "A"}, {"name": "B"}}

	_ = SortedView(data, SortBy("name", Ascending))
	assert.Equal(t, []any{"C", "A", "B"}, names(data))
}

func TestSortedViewEmpty(t *testing.T) {
	assert.Empty(t, SortedView(nil, SortBy("name", Ascending)))
	assert.Empty(t, SortedView([]Record{}, NoSort))
}

func TestSortedViewStrings(t *testing.T) {
	data := []Record{{"name": "bob"}, {"name": "Alice"}, {"name": "alice"}, {"name": "Bob"}}

	asc := SortedView(data, SortBy("name", Ascending))
	assert.Equal(t, []any{"Alice", "Bob", "alice", "bob"}, names(asc), "comparison is case sensitive")

	desc := SortedView(data, SortBy("name", Descending))
	assert.Equal(t, []any{"bob", "alice", "Bob", "Alice"}, names(desc))
}

func TestSortedViewNumbers(t *testing.T) {
	data := []Record{{"age": 30}, {"age": 4.5}, {"age": int64(100)}, {"age": uint8(7)}}

	asc := SortedView(data, SortBy("age", Ascending))
	var got []any
	for _, r := range asc {
		got = append(got, r["age"])
	}
	assert.Equal(t, []any{4.5, uint8(7), 30, int64(100)}, got, "numbers compare numerically, not as text")
}

func TestSortedViewJSONNumbers(t *testing.T) {
	data := []Record{{"n": json.Number("10")}, {"n": json.Number("9")}, {"n": json.Number("-1.5")}}

	asc := SortedView(data, SortBy("n", Ascending))
	assert.Equal(t, json.Number("-1.5"), asc[0]["n"])
	assert.Equal(t, json.Number("9"), asc[1]["n"])
	assert.Equal(t, json.Number("10"), asc[2]["n"])
}

func TestSortedViewNullsFirstBothDirections(t *testing.T) {
	first := Record{"id": 1, "age": nil}
	five := Record{"id": 2, "age": 5}
	second := Record{"id": 3, "age": nil}
	data := []Record{first, five, second}

	for _, dir := range []Direction{Ascending, Descending} {
		t.Run(dir.String(), func(t *testing.T) {
			view := SortedView(data, SortBy("age", dir))
			require.Len(t, view, 3)
			assert.Equal(t, 1, view[0]["id"])
			assert.Equal(t, 3, view[1]["id"])
			assert.Equal(t, 2, view[2]["id"])
		})
	}
}

func TestSortedViewMissingFieldSortsAsNil(t *testing.T) {
	data := []Record{{"name": "x", "age": 2}, {"name": "y"}, {"name": "z", "age": 1}}

	view := SortedView(data, SortBy("age", Descending))
	assert.Equal(t, []any{"y", "x", "z"}, names(view))
}

func TestSortedViewStable(t *testing.T) {
	data := []Record{
		{"name": "a", "group": 1},
		{"name": "b", "group": 0},
		{"name": "c", "group": 1},
		{"name": "d", "group": 0},
	}

	assert.Equal(t, []any{"b", "d", "a", "c"}, names(SortedView(data, SortBy("group", Ascending))))
	assert.Equal(t, []any{"a", "c", "b", "d"}, names(SortedView(data, SortBy("group", Descending))))
}

func TestSortedViewIdempotent(t *testing.T) {
	data := []Record{{"name": "C"}, {"name": "A"}, {"name": nil}, {"name": "B"}, {"name": "A"}}

	for _, sort := range []SortState{SortBy("name", Ascending), SortBy("name", Descending)} {
		once := SortedView(data, sort)
		twice := SortedView(once, sort)
		assert.Equal(t, once, twice, sort.String())
	}
}

func TestCompareValues(t *testing.T) {
	tests := []struct {
		name string
		a, b any
		dir  Direction
		want int
	}{
		{"both nil", nil, nil, Ascending, 0},
		{"nil first ascending", nil, "a", Ascending, -1},
		{"nil first descending", nil, "a", Descending, -1},
		{"value after nil descending", 3, nil, Descending, 1},
		{"numeric", 2, 10, Ascending, -1},
		{"numeric descending", 2, 10, Descending, 1},
		{"mixed types compare as text", 5, "a", Ascending, -1},
		{"equal strings", "x", "x", Descending, 0},
		{"bool as text", false, true, Ascending, -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CompareValues(tt.a, tt.b, tt.dir))
		})
	}
}

func TestToggleLaw(t *testing.T) {
	col := Column{Key: "name", Title: "Name", Field: "name", Sortable: true}

	s := NoSort.Toggle(col)
	assert.Equal(t, SortBy("name", Ascending), s)

	s = s.Toggle(col)
	assert.Equal(t, SortBy("name", Descending), s)

	s = s.Toggle(col)
	assert.Equal(t, SortBy("name", Ascending), s, "only two states cycle")
}

func TestToggleDifferentColumnStartsAscending(t *testing.T) {
	name := Column{Key: "name", Field: "name", Sortable: true}
	age := Column{Key: "age", Field: "age", Sortable: true}

	s := NoSort.Toggle(name).Toggle(name)
	require.Equal(t, Descending, s.Direction)

	s = s.Toggle(age)
	assert.Equal(t, SortBy("age", Ascending), s)
}

func TestToggleNonSortableIgnored(t *testing.T) {
	email := Column{Key: "email", Field: "email"}

	assert.Equal(t, NoSort, NoSort.Toggle(email))
	assert.False(t, NoSort.Toggle(email).Active())

	s := SortBy("name", Descending)
	assert.Equal(t, s, s.Toggle(email))
}

func TestSortStateString(t *testing.T) {
	assert.Equal(t, "none", NoSort.String())
	assert.Equal(t, "age descending", SortBy("age", Descending).String())
}
