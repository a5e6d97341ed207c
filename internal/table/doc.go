// Package table holds the state behind a sortable, selectable data table.
//
// A Table owns a borrowed dataset, a column set, a single-column SortState
// and a Selection. Every mutating call recomputes the derived view, compares
// it with the previous one and notifies the selection callback
// synchronously. Rendering is left to the caller: Project returns a
// render-ready snapshot and Cell applies a column's renderer.
//
// Selection is position based by default. Positions index into the current
// sorted view, so re-sorting can make the same position point at a
// different Record. Construct the table with WithSelectionMode and
// SelectByIdentity to key the selection by a record field instead.
//
// A Table is not safe for concurrent use.
package table
