package app

import (
	"strconv"
	"strings"

	"github.com/henri123lemoine/tabula/internal/config"
	"github.com/henri123lemoine/tabula/internal/debug"
	"github.com/henri123lemoine/tabula/internal/table"
)

// formatters maps a config column format to its cell renderer.
var formatters = map[string]table.Renderer{
	"upper":    func(v any, _ table.Record) string { return strings.ToUpper(table.Stringify(v)) },
	"lower":    func(v any, _ table.Record) string { return strings.ToLower(table.Stringify(v)) },
	"percent":  renderPercent,
	"currency": renderCurrency,
	"yesno":    renderYesNo,
	"mailto":   renderMailto,
}

// columnsFromConfig builds table columns from the configured list. Keys
// must be unique, so a repeated key keeps its first column.
func columnsFromConfig(cols []config.ColumnConfig) []table.Column {
	out := make([]table.Column, 0, len(cols))
	seen := make(map[string]bool, len(cols))
	for _, c := range cols {
		if seen[c.Key] {
			debug.Log("columns: dropping duplicate key %q", c.Key)
			continue
		}
		seen[c.Key] = true
		title := c.Title
		if title == "" {
			title = c.Key
		}
		out = append(out, table.Column{
			Key:      c.Key,
			Title:    title,
			Field:    c.Field,
			Sortable: c.Sortable,
			Render:   formatters[c.Format],
		})
	}
	return out
}

// renderPercent treats the value as a fraction: 0.25 is "25%".
func renderPercent(v any, _ table.Record) string {
	n, ok := table.Numeric(v)
	if !ok {
		return table.Stringify(v)
	}
	return strconv.FormatFloat(n*100, 'f', -1, 64) + "%"
}

func renderCurrency(v any, _ table.Record) string {
	n, ok := table.Numeric(v)
	if !ok {
		return table.Stringify(v)
	}
	return "$" + strconv.FormatFloat(n, 'f', 2, 64)
}

func renderYesNo(v any, _ table.Record) string {
	switch b := v.(type) {
	case nil:
		return ""
	case bool:
		if b {
			return "Yes"
		}
		return "No"
	}
	if n, ok := table.Numeric(v); ok {
		if n != 0 {
			return "Yes"
		}
		return "No"
	}
	return table.Stringify(v)
}

func renderMailto(v any, _ table.Record) string {
	s := table.Stringify(v)
	if s == "" {
		return ""
	}
	return "<" + s + ">"
}
