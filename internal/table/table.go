package table

import (
	"slices"

	"github.com/henri123lemoine/tabula/internal/debug"
)

// Defaults used when no option overrides them.
const (
	DefaultEmptyText    = "No data"
	DefaultSkeletonRows = 3
)

// Table tracks sort and selection state over a borrowed dataset.
type Table struct {
	records []Record
	columns []Column

	sort      SortState
	order     []int
	view      []Record
	dataGen   int
	selection *Selection

	mode          SelectionMode
	identityField string

	selectable   bool
	loading      bool
	emptyText    string
	skeletonRows int

	onSelect func([]Record)
}

// Option configures a Table.
type Option func(*Table)

// WithSelectable enables the selection column in projections.
func WithSelectable(selectable bool) Option {
	return func(t *Table) { t.selectable = selectable }
}

// WithLoading starts the table in the loading state.
func WithLoading(loading bool) Option {
	return func(t *Table) { t.loading = loading }
}

// WithEmptyText sets the label shown when the view is empty.
func WithEmptyText(text string) Option {
	return func(t *Table) {
		if text != "" {
			t.emptyText = text
		}
	}
}

// WithSkeletonRows sets how many placeholder rows show while loading.
func WithSkeletonRows(n int) Option {
	return func(t *Table) {
		if n > 0 {
			t.skeletonRows = n
		}
	}
}

// WithSelectionMode picks position or identity keyed selection. The
// identity field is only read in SelectByIdentity mode.
func WithSelectionMode(mode SelectionMode, identityField string) Option {
	return func(t *Table) {
		t.mode = mode
		t.identityField = identityField
	}
}

// WithSort sets the initial sort.
func WithSort(sort SortState) Option {
	return func(t *Table) { t.sort = sort }
}

// WithOnSelect registers the selection callback.
func WithOnSelect(fn func([]Record)) Option {
	return func(t *Table) { t.onSelect = fn }
}

// New creates a table over records and columns. Construction does not
// invoke the selection callback.
func New(records []Record, columns []Column, opts ...Option) *Table {
	t := &Table{
		records:      records,
		columns:      slices.Clone(columns),
		selection:    NewSelection(),
		emptyText:    DefaultEmptyText,
		skeletonRows: DefaultSkeletonRows,
	}
	for _, opt := range opts {
		opt(t)
	}
	t.recompute()
	return t
}

// SetOnSelect replaces the selection callback.
func (t *Table) SetOnSelect(fn func([]Record)) {
	t.onSelect = fn
}

// SetData replaces the dataset. This always counts as a view change.
func (t *Table) SetData(records []Record) {
	t.apply(func() {
		t.records = records
		t.dataGen++
	})
}

// SetColumns replaces the column set. The view is unaffected.
func (t *Table) SetColumns(columns []Column) {
	t.columns = slices.Clone(columns)
}

// SetLoading toggles the loading placeholder.
func (t *Table) SetLoading(loading bool) {
	t.loading = loading
}

// Loading reports whether the table shows placeholders.
func (t *Table) Loading() bool {
	return t.loading
}

// Selectable reports whether selection UI is enabled.
func (t *Table) Selectable() bool {
	return t.selectable
}

// Mode returns the selection mode.
func (t *Table) Mode() SelectionMode {
	return t.mode
}

// Columns returns a copy of the column set.
func (t *Table) Columns() []Column {
	return slices.Clone(t.columns)
}

// Sort returns the current sort state.
func (t *Table) Sort() SortState {
	return t.sort
}

// SetSort replaces the sort state.
func (t *Table) SetSort(sort SortState) {
	t.apply(func() { t.sort = sort })
}

// ToggleSort activates col's header. It returns false when the column is
// not sortable and nothing changed.
func (t *Table) ToggleSort(col Column) bool {
	if !col.Sortable {
		return false
	}
	t.apply(func() { t.sort = t.sort.Toggle(col) })
	return true
}

// ToggleSortAt activates the header of the column at index i.
func (t *Table) ToggleSortAt(i int) bool {
	if i < 0 || i >= len(t.columns) {
		return false
	}
	return t.ToggleSort(t.columns[i])
}

// ToggleSelection flips the selection of the row at pos in the current
// view. In identity mode a position without a resolvable record is ignored.
func (t *Table) ToggleSelection(pos int) {
	k, ok := t.keyAt(pos)
	if !ok {
		debug.Log("table: ignoring selection toggle at %d", pos)
		return
	}
	t.apply(func() { t.selection.Toggle(k) })
}

// SelectAll selects every row of the current view.
func (t *Table) SelectAll() {
	keys := make([]SelectionKey, 0, len(t.view))
	for pos := range t.view {
		if k, ok := t.keyAt(pos); ok {
			keys = append(keys, k)
		}
	}
	t.apply(func() { t.selection.Replace(keys) })
}

// ClearSelection deselects everything.
func (t *Table) ClearSelection() {
	t.apply(t.selection.Clear)
}

// IsSelected reports whether the row at pos is selected.
func (t *Table) IsSelected(pos int) bool {
	k, ok := t.keyAt(pos)
	return ok && t.selection.Has(k)
}

// SelectionCount returns the number of selection keys, including
// positions that currently fall outside the view.
func (t *Table) SelectionCount() int {
	return t.selection.Len()
}

// SelectionKeys returns the raw selection in insertion order.
func (t *Table) SelectionKeys() []SelectionKey {
	return t.selection.Keys()
}

// SelectedRecords resolves the selection against the current view. The
// returned slice is newly allocated on every call.
func (t *Table) SelectedRecords() []Record {
	return t.selection.Resolve(t.view, t.identity)
}

// View returns a copy of the derived view.
func (t *Table) View() []Record {
	return slices.Clone(t.view)
}

// Len returns the number of rows in the view.
func (t *Table) Len() int {
	return len(t.view)
}

// Row returns the record at pos in the view.
func (t *Table) Row(pos int) (Record, bool) {
	if pos < 0 || pos >= len(t.view) {
		return nil, false
	}
	return t.view[pos], true
}

// apply runs mutate, recomputes the view and notifies the callback when
// the sort state, the view or the selection changed. A sort change counts
// even when it leaves the row order as it was.
func (t *Table) apply(mutate func()) {
	prevSort := t.sort
	prevOrder := t.order
	prevGen := t.dataGen
	prevKeys := t.selection.Keys()

	mutate()
	t.recompute()
	if t.mode == SelectByIdentity && t.dataGen != prevGen {
		t.pruneIdentities()
	}

	viewChanged := t.sort != prevSort || t.dataGen != prevGen || !slices.Equal(prevOrder, t.order)
	selChanged := !slices.Equal(prevKeys, t.selection.keys)
	if viewChanged || selChanged {
		t.notify()
	}
}

func (t *Table) recompute() {
	defer debug.Timed("table: sort " + t.sort.String())()
	t.order = sortedOrder(t.records, t.sort)
	t.view = pick(t.records, t.order)
}

func (t *Table) notify() {
	if t.onSelect == nil {
		return
	}
	t.onSelect(t.SelectedRecords())
}

// pruneIdentities drops identity keys whose record left the dataset.
func (t *Table) pruneIdentities() {
	present := indexByIdentity(t.view, t.identity)
	t.selection.Retain(func(k SelectionKey) bool {
		if !k.IsIdentity() {
			return true
		}
		_, ok := present[k.Identity]
		return ok
	})
}

// keyAt returns the selection key for the row at pos.
func (t *Table) keyAt(pos int) (SelectionKey, bool) {
	if t.mode != SelectByIdentity {
		return ByPosition(pos), true
	}
	rec, ok := t.Row(pos)
	if !ok {
		return SelectionKey{}, false
	}
	id, ok := t.identity(rec)
	if !ok {
		return SelectionKey{}, false
	}
	return ByIdentity(id), true
}

func (t *Table) identity(rec Record) (string, bool) {
	v := rec.Get(t.identityField)
	if v == nil {
		return "", false
	}
	return Stringify(v), true
}
