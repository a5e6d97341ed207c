// Package ui provides rendering functions for the tabula terminal UI.
//
// Render takes RenderParams, built from a table.Projection plus the
// surrounding application state, and produces the terminal output. The
// rendering is pure (no side effects) and separated from state management.
// Lipgloss style definitions for theming live in styles.go.
package ui
