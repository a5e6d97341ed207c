package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/henri123lemoine/tabula/internal/table"
)

// State constants (matching app.State)
const (
	StateTable = iota
	StateFilter
	StateHelp
)

// HelpBinding represents a keybinding for help display.
type HelpBinding struct {
	Keys string
	Desc string
}

// HelpSection represents a section of help bindings.
type HelpSection struct {
	Title    string
	Bindings []HelpBinding
}

// RenderParams contains all parameters needed for rendering.
type RenderParams struct {
	State           int
	Title           string
	Projection      table.Projection
	HeaderCursor    int
	RowCursor       int
	ViewOffset      int
	VisibleCount    int
	Width           int
	Height          int
	Striped         bool
	SpinnerFrame    string
	Err             error
	Status          string
	FilterInput     string
	FilterValue     string
	SelectedSummary string
	SelectedCount   int
	ShortHelp       []HelpBinding
	HelpSections    []HelpSection
}

// MinWidth is the absolute minimum terminal width we try to support.
const MinWidth = 30

// MinHeight is the absolute minimum terminal height we try to support.
const MinHeight = 8

// maxColumnWidth caps a single column so one long value cannot push the
// rest off screen.
const maxColumnWidth = 40

// Render renders the full UI.
func Render(p RenderParams) string {
	if p.Width < MinWidth {
		p.Width = MinWidth
	}
	if p.Height < MinHeight {
		p.Height = MinHeight
	}

	switch p.State {
	case StateHelp:
		return renderHelp(p)
	default:
		return renderTable(p)
	}
}

// renderTable renders the table screen, with the filter bar in StateFilter.
func renderTable(p RenderParams) string {
	var b strings.Builder
	contentWidth := p.Width - 4

	header := TitleStyle.Render(strings.ToUpper(p.Title))
	if p.Projection.Loading {
		header += "  " + MutedStyle.Render(p.SpinnerFrame+" Loading...")
	} else if p.FilterValue != "" && p.State != StateFilter {
		header += "  " + MutedStyle.Render("filter: "+p.FilterValue)
	}
	b.WriteString(header + "\n")

	if p.State == StateFilter {
		b.WriteString(p.FilterInput + "\n")
	}
	b.WriteString(DividerStyle.Render(strings.Repeat(SymbolDivider, contentWidth)) + "\n")

	if p.Err != nil {
		b.WriteString(ErrorStyle.Render("Error: "+p.Err.Error()) + "\n\n")
	}

	b.WriteString(renderGrid(p))

	b.WriteString("\n" + DividerStyle.Render(strings.Repeat(SymbolDivider, contentWidth)) + "\n")
	if p.Status != "" {
		b.WriteString(StatusStyle.Render(p.Status) + "\n")
	}
	if p.SelectedCount > 0 {
		b.WriteString(SelectedRowStyle.Render("Selected: "+p.SelectedSummary) + "\n")
	}

	full, compact := footerHelp(p.ShortHelp)
	helpText := compactHelp(full, compact, p.Width)
	b.WriteString(HelpStyle.Render(helpText))

	return wrapInBox(b.String(), p.Width, p.Height)
}

// renderGrid renders headers and the body: skeleton rows while loading,
// the empty label when there are no rows, data rows otherwise.
func renderGrid(p RenderParams) string {
	proj := p.Projection
	widths := columnWidths(proj)

	var b strings.Builder
	b.WriteString(renderHeaderRow(proj, widths, p.HeaderCursor) + "\n")

	switch {
	case proj.Loading:
		for r := 0; r < proj.SkeletonRows; r++ {
			b.WriteString(renderSkeletonRow(proj, widths))
			if r < proj.SkeletonRows-1 {
				b.WriteString("\n")
			}
		}
		return b.String()

	case proj.Empty:
		b.WriteString("\n" + MutedStyle.Render("  "+proj.EmptyText) + "\n")
		return b.String()
	}

	startIdx, endIdx := visibleRange(len(proj.Rows), p.ViewOffset, p.VisibleCount)

	if startIdx > 0 {
		b.WriteString(MutedStyle.Render(fmt.Sprintf("  ↑ %d more above", startIdx)) + "\n")
	}

	for i := startIdx; i < endIdx; i++ {
		b.WriteString(renderDataRow(proj.Rows[i], proj.Selectable, widths, i == p.RowCursor, p.Striped && i%2 == 1))
		if i < endIdx-1 {
			b.WriteString("\n")
		}
	}

	if endIdx < len(proj.Rows) {
		b.WriteString("\n" + MutedStyle.Render(fmt.Sprintf("  ↓ %d more below", len(proj.Rows)-endIdx)))
	}

	return b.String()
}

func renderHeaderRow(proj table.Projection, widths []int, cursor int) string {
	cells := make([]string, len(proj.Headers))
	for i, h := range proj.Headers {
		text := fit(headerLabel(h), widths[i])
		switch {
		case i == cursor:
			cells[i] = HeaderCursorStyle.Render(text)
		case h.Sort != table.HeaderUnsorted:
			cells[i] = SortedHeaderStyle.Render(text)
		default:
			cells[i] = HeaderStyle.Render(text)
		}
	}
	return rowPrefix(proj.Selectable, "  ", "   ") + strings.Join(cells, "  ")
}

// headerLabel is the title followed by the sort indicator for sortable
// columns.
func headerLabel(h table.Header) string {
	if !h.Sortable {
		return h.Title
	}
	switch h.Sort {
	case table.HeaderAscending:
		return h.Title + " " + SymbolAsc
	case table.HeaderDescending:
		return h.Title + " " + SymbolDesc
	default:
		return h.Title + " " + SymbolUnsorted
	}
}

func renderSkeletonRow(proj table.Projection, widths []int) string {
	cells := make([]string, len(widths))
	for i, w := range widths {
		cells[i] = strings.Repeat(SymbolSkeleton, min(w, 12)) + strings.Repeat(" ", w-min(w, 12))
	}
	box := "   "
	if proj.Selectable {
		box = strings.Repeat(SymbolSkeleton, 3)
	}
	return SkeletonStyle.Render(rowPrefix(proj.Selectable, "  ", box) + strings.Join(cells, "  "))
}

func renderDataRow(row table.Row, selectable bool, widths []int, isCursor, striped bool) string {
	cells := make([]string, len(row.Cells))
	for i, c := range row.Cells {
		cells[i] = fit(c, widths[i])
	}

	cursor := "  "
	if isCursor {
		cursor = SymbolCursor + " "
	}
	box := SymbolUnchecked
	if row.Selected {
		box = SymbolChecked
	}
	line := rowPrefix(selectable, cursor, box) + strings.Join(cells, "  ")

	switch {
	case isCursor:
		return CursorRowStyle.Render(line)
	case row.Selected:
		return SelectedRowStyle.Render(line)
	case striped:
		return StripeStyle.Render(line)
	default:
		return NormalStyle.Render(line)
	}
}

// rowPrefix builds the cursor gutter and, when selectable, the checkbox
// column.
func rowPrefix(selectable bool, cursor, box string) string {
	if !selectable {
		return cursor
	}
	return cursor + box + " "
}

// columnWidths sizes each column to its widest header or cell.
func columnWidths(proj table.Projection) []int {
	widths := make([]int, len(proj.Headers))
	for i, h := range proj.Headers {
		widths[i] = lipgloss.Width(headerLabel(h))
	}
	for _, row := range proj.Rows {
		for i, c := range row.Cells {
			if i < len(widths) {
				widths[i] = max(widths[i], lipgloss.Width(c))
			}
		}
	}
	for i := range widths {
		widths[i] = min(max(widths[i], 3), maxColumnWidth)
	}
	return widths
}

// fit pads or truncates s to exactly w cells.
func fit(s string, w int) string {
	if lipgloss.Width(s) <= w {
		return s + strings.Repeat(" ", w-lipgloss.Width(s))
	}
	runes := []rune(s)
	for len(runes) > 0 && lipgloss.Width(string(runes))+1 > w {
		runes = runes[:len(runes)-1]
	}
	out := string(runes) + "…"
	return out + strings.Repeat(" ", max(0, w-lipgloss.Width(out)))
}

// visibleRange clamps the scroll window to n rows. A non-positive count
// shows everything.
func visibleRange(n, offset, count int) (int, int) {
	if count <= 0 {
		return 0, n
	}
	start := offset
	if start >= n || start < 0 {
		start = 0
	}
	end := start + count
	if end > n {
		end = n
	}
	return start, end
}

// renderHelp renders the help screen.
func renderHelp(p RenderParams) string {
	var b strings.Builder
	contentWidth := p.Width - 4

	b.WriteString(HeaderStyle.Render("HELP") + "\n")
	b.WriteString(DividerStyle.Render(strings.Repeat(SymbolDivider, contentWidth)) + "\n\n")

	for i, section := range p.HelpSections {
		b.WriteString(NormalStyle.Render(section.Title) + "\n")
		b.WriteString(DividerStyle.Render(strings.Repeat(SymbolDivider, 40)) + "\n")
		for _, binding := range section.Bindings {
			keys := binding.Keys
			if len(keys) < 12 {
				keys = keys + strings.Repeat(" ", 12-len(keys))
			}
			b.WriteString(MutedStyle.Render("  "+keys) + " " + binding.Desc + "\n")
		}
		if i < len(p.HelpSections)-1 {
			b.WriteString("\n")
		}
	}

	b.WriteString("\n" + DividerStyle.Render(strings.Repeat(SymbolDivider, contentWidth)) + "\n")
	b.WriteString(HelpStyle.Render("Press any key to close"))

	return wrapInBox(b.String(), p.Width, p.Height)
}

// wrapInBox wraps content in a box.
func wrapInBox(content string, width, height int) string {
	boxWidth := width - 2
	if boxWidth < MinWidth-2 {
		boxWidth = MinWidth - 2
	}

	style := BoxStyle.Width(boxWidth)

	return style.Render(content)
}

// footerHelp joins bindings into the full "key desc" line and the
// compact keys-only line.
func footerHelp(bindings []HelpBinding) (string, string) {
	full := make([]string, len(bindings))
	keys := make([]string, len(bindings))
	for i, b := range bindings {
		full[i] = b.Keys + " " + b.Desc
		keys[i] = b.Keys
	}
	return strings.Join(full, " • "), strings.Join(keys, "•")
}

// compactHelp returns a shortened help string for small terminals.
func compactHelp(full, compact string, width int) string {
	if width >= 100 {
		return full
	}
	return compact
}
