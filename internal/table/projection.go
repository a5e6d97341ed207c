package table

// HeaderSort is a header's sort indicator, spelled like aria-sort.
type HeaderSort string

const (
	HeaderUnsorted   HeaderSort = "none"
	HeaderAscending  HeaderSort = "ascending"
	HeaderDescending HeaderSort = "descending"
)

// Header is one rendered column header.
type Header struct {
	Key      string
	Title    string
	Sortable bool
	Sort     HeaderSort
}

// Row is one rendered data row.
type Row struct {
	// Position is the row's index in the sorted view.
	Position int
	Selected bool
	Cells    []string
}

// Projection is a render-ready snapshot of a table. While Loading, Rows is
// empty and SkeletonRows placeholders should be drawn instead. Empty is set
// only when not loading and the view has no rows.
type Projection struct {
	Headers      []Header
	Rows         []Row
	Selectable   bool
	Loading      bool
	SkeletonRows int
	Empty        bool
	EmptyText    string
}

// Project builds the current projection.
func (t *Table) Project() Projection {
	p := Projection{
		Headers:    make([]Header, len(t.columns)),
		Selectable: t.selectable,
		Loading:    t.loading,
		EmptyText:  t.emptyText,
	}
	for i, col := range t.columns {
		p.Headers[i] = Header{
			Key:      col.Key,
			Title:    col.Title,
			Sortable: col.Sortable,
			Sort:     t.headerSort(col),
		}
	}

	if t.loading {
		p.SkeletonRows = t.skeletonRows
		return p
	}
	if len(t.view) == 0 {
		p.Empty = true
		return p
	}

	p.Rows = make([]Row, len(t.view))
	for pos, rec := range t.view {
		cells := make([]string, len(t.columns))
		for i, col := range t.columns {
			cells[i] = Cell(col, rec)
		}
		p.Rows[pos] = Row{
			Position: pos,
			Selected: t.IsSelected(pos),
			Cells:    cells,
		}
	}
	return p
}

func (t *Table) headerSort(col Column) HeaderSort {
	if !t.sort.active || t.sort.Field != col.Field {
		return HeaderUnsorted
	}
	if t.sort.Direction == Descending {
		return HeaderDescending
	}
	return HeaderAscending
}
