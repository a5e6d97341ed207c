package inputfield

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/henri123lemoine/tabula/internal/ui"
)

// View renders label, input, affordance and helper or error line.
func (m Model) View() string {
	var b strings.Builder

	if m.opts.Label != "" {
		b.WriteString(ui.LabelStyle.Render(m.opts.Label) + "\n")
	}

	line := m.input.View()
	if affordance := m.affordance(); affordance != "" {
		line += " " + affordance
	}
	b.WriteString(m.frameStyle().Render(line))

	switch {
	case m.ShowsError():
		b.WriteString("\n" + ui.ErrorStyle.Render(m.opts.ErrorMessage))
	case m.opts.HelperText != "":
		b.WriteString("\n" + ui.HelpStyle.Render(m.opts.HelperText))
	}

	return b.String()
}

// affordance is the right-hand control: spinner, clear or reveal toggle.
func (m Model) affordance() string {
	switch {
	case m.opts.Loading:
		return m.spinner.View()
	case m.ShowsClear():
		return ui.MutedStyle.Render(ui.SymbolClear)
	case m.ShowsToggle():
		if m.revealed {
			return ui.MutedStyle.Render("Hide")
		}
		return ui.MutedStyle.Render("Show")
	}
	return ""
}

func (m Model) frameStyle() lipgloss.Style {
	var style lipgloss.Style
	switch m.opts.Variant {
	case VariantFilled:
		style = ui.InputFilledStyle
	case VariantGhost:
		style = ui.InputGhostStyle
	default:
		style = ui.InputOutlinedStyle
	}

	switch m.opts.Size {
	case SizeSmall:
		style = style.Padding(0, 0)
	case SizeLarge:
		style = style.Padding(1, 2)
	default:
		style = style.Padding(0, 1)
	}

	switch {
	case m.opts.Invalid:
		style = style.BorderForeground(ui.ColorDanger)
	case m.input.Focused():
		style = style.BorderForeground(ui.ColorPrimary)
	}
	if m.opts.Disabled {
		style = style.Faint(true)
	}
	return style
}
