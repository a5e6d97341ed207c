package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// Colors - using more subtle, balanced palette
var (
	ColorPrimary   = lipgloss.Color("4")   // Blue
	ColorSecondary = lipgloss.Color("8")   // Gray
	ColorSuccess   = lipgloss.Color("2")   // Green (dimmer)
	ColorWarning   = lipgloss.Color("3")   // Yellow (dimmer)
	ColorDanger    = lipgloss.Color("1")   // Red (dimmer)
	ColorMuted     = lipgloss.Color("245") // Light gray
	ColorHighlight = lipgloss.Color("6")   // Cyan
	ColorText      = lipgloss.Color("252") // Light text
	ColorStripe    = lipgloss.Color("236") // Alternate row background
	ColorSkeleton  = lipgloss.Color("238")
)

// Styles
var (
	BoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorSecondary).
			Padding(1, 2)

	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)

	// Column header styles
	HeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorMuted)

	SortedHeaderStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(ColorPrimary)

	HeaderCursorStyle = lipgloss.NewStyle().
				Bold(true).
				Underline(true).
				Foreground(ColorHighlight)

	// Row styles
	CursorRowStyle = lipgloss.NewStyle().
			Foreground(ColorHighlight).
			Bold(true)

	SelectedRowStyle = lipgloss.NewStyle().
				Foreground(ColorSuccess)

	NormalStyle = lipgloss.NewStyle().
			Foreground(ColorText)

	StripeStyle = lipgloss.NewStyle().
			Foreground(ColorText).
			Background(ColorStripe)

	SkeletonStyle = lipgloss.NewStyle().
			Foreground(ColorSkeleton)

	MutedStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	HelpStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ColorDanger)

	StatusStyle = lipgloss.NewStyle().
			Foreground(ColorWarning)

	DividerStyle = lipgloss.NewStyle().
			Foreground(ColorSecondary)

	// Input field styles
	LabelStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorText)

	InputOutlinedStyle = lipgloss.NewStyle().
				BorderStyle(lipgloss.RoundedBorder()).
				BorderForeground(ColorSecondary)

	InputFilledStyle = lipgloss.NewStyle().
				Background(ColorStripe)

	InputGhostStyle = lipgloss.NewStyle()
)

// Symbols
const (
	SymbolCursor    = "›"
	SymbolChecked   = "[x]"
	SymbolUnchecked = "[ ]"
	SymbolAsc       = "▲"
	SymbolDesc      = "▼"
	SymbolUnsorted  = "↕"
	SymbolSkeleton  = "░"
	SymbolClear     = "×"
	SymbolDivider   = "─"
)

// ApplyTheme adjusts the text colors for a "light" or "dark" terminal.
// "auto" and unknown names keep the dark defaults.
func ApplyTheme(theme string) {
	text, stripe := lipgloss.Color("252"), lipgloss.Color("236")
	if theme == "light" {
		text, stripe = lipgloss.Color("235"), lipgloss.Color("254")
	}
	ColorText, ColorStripe = text, stripe

	NormalStyle = NormalStyle.Foreground(ColorText)
	StripeStyle = StripeStyle.Foreground(ColorText).Background(ColorStripe)
	LabelStyle = LabelStyle.Foreground(ColorText)
	InputFilledStyle = InputFilledStyle.Background(ColorStripe)
}
