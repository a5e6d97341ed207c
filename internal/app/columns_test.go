package app

import (
	"encoding/json"
	"testing"

	"github.com/henri123lemoine/tabula/internal/config"
	"github.com/henri123lemoine/tabula/internal/table"
)

func TestColumnsFromConfig(t *testing.T) {
	cols := columnsFromConfig([]config.ColumnConfig{
		{Key: "name", Field: "name", Sortable: true, Format: "upper"},
		{Key: "age", Title: "Age", Field: "age"},
	})

	if len(cols) != 2 {
		t.Fatalf("Expected 2 columns, got %d", len(cols))
	}
	if cols[0].Title != "name" {
		t.Errorf("Expected title to fall back to key, got %q", cols[0].Title)
	}
	if !cols[0].Sortable || cols[1].Sortable {
		t.Error("Sortable flags not carried over")
	}
	if cols[1].Render != nil {
		t.Error("Expected default rendering without a format")
	}
	if got := table.Cell(cols[0], table.Record{"name": "Ada"}); got != "ADA" {
		t.Errorf("Expected upper-cased cell, got %q", got)
	}
}

func TestColumnsFromConfigDropsDuplicateKeys(t *testing.T) {
	cols := columnsFromConfig([]config.ColumnConfig{
		{Key: "name", Title: "Name", Field: "name"},
		{Key: "age", Title: "Age", Field: "age"},
		{Key: "name", Title: "Full name", Field: "full_name"},
	})

	if len(cols) != 2 {
		t.Fatalf("Expected 2 columns, got %d", len(cols))
	}
	if cols[0].Title != "Name" || cols[0].Field != "name" {
		t.Errorf("Expected first name column to win, got %+v", cols[0])
	}
	if cols[1].Key != "age" {
		t.Errorf("Expected age column second, got %q", cols[1].Key)
	}
}

func TestFormatters(t *testing.T) {
	tests := []struct {
		format string
		value  any
		want   string
	}{
		{"upper", "ada", "ADA"},
		{"lower", "ADA", "ada"},
		{"upper", nil, ""},
		{"percent", 0.25, "25%"},
		{"percent", json.Number("0.5"), "50%"},
		{"percent", "n/a", "n/a"},
		{"currency", 3, "$3.00"},
		{"currency", 9.999, "$10.00"},
		{"yesno", true, "Yes"},
		{"yesno", false, "No"},
		{"yesno", 0, "No"},
		{"yesno", nil, ""},
		{"mailto", "a@b.c", "<a@b.c>"},
		{"mailto", nil, ""},
	}

	for _, tt := range tests {
		render := formatters[tt.format]
		if render == nil {
			t.Fatalf("No formatter for %q", tt.format)
		}
		if got := render(tt.value, nil); got != tt.want {
			t.Errorf("%s(%v) = %q, want %q", tt.format, tt.value, got, tt.want)
		}
	}
}

func TestFormattersCoverConfig(t *testing.T) {
	for _, f := range config.Formats {
		if f == "" {
			continue
		}
		if _, ok := formatters[f]; !ok {
			t.Errorf("Config format %q has no formatter", f)
		}
	}
}
