package table

import "fmt"

// Record is one row of caller supplied data, keyed by field name.
type Record map[string]any

// Get returns the value stored under field, or nil when the field is absent.
func (r Record) Get(field string) any {
	if r == nil {
		return nil
	}
	return r[field]
}

// Renderer converts a field value into the text shown in a cell.
type Renderer func(value any, rec Record) string

// Column describes how to read, label, sort and render one column.
type Column struct {
	// Key identifies the column and must be unique within a column set.
	Key string

	// Title is the header label.
	Title string

	// Field names the Record field this column reads.
	Field string

	Sortable bool

	// Render overrides the default string conversion when set.
	Render Renderer
}

// Cell returns the display text for col in rec.
func Cell(col Column, rec Record) string {
	v := rec.Get(col.Field)
	if col.Render != nil {
		return col.Render(v, rec)
	}
	return Stringify(v)
}

// Stringify is the default conversion used for cells and string comparison.
// nil becomes the empty string.
func Stringify(v any) string {
	if v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}
