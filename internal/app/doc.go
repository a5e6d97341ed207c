// Package app provides the main Bubble Tea application model for tabula.
//
// It owns a table.Table and translates key presses into its sort and
// selection operations: moving the row and column cursors, toggling the
// sort of the focused column, selecting rows, filtering and exporting the
// current selection. Data arrives asynchronously through commands while
// the table shows its loading placeholder.
//
// The main type is Model, which implements the Bubble Tea interface
// (Init, Update, View) and manages all application state.
package app
