// Package inputfield provides a labelled text input with helper and error
// text, visual variants and sizes, an optional clear button, a password
// reveal toggle and a loading spinner.
package inputfield

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// Variant selects the field's frame style.
type Variant string

const (
	VariantFilled   Variant = "filled"
	VariantOutlined Variant = "outlined"
	VariantGhost    Variant = "ghost"
)

// Size selects the field's padding.
type Size string

const (
	SizeSmall  Size = "sm"
	SizeMedium Size = "md"
	SizeLarge  Size = "lg"
)

// InputType is the kind of value being edited.
type InputType string

const (
	TypeText     InputType = "text"
	TypePassword InputType = "password"
)

// Options configures a Model. Zero values fall back to an outlined,
// medium, text field.
type Options struct {
	ID           string
	Label        string
	Placeholder  string
	HelperText   string
	ErrorMessage string
	Invalid      bool
	Disabled     bool
	Loading      bool
	Variant      Variant
	Size         Size
	Type         InputType

	// Clearable shows a clear affordance while the field has a value.
	Clearable bool

	// PasswordToggle lets a password field be revealed.
	PasswordToggle bool

	CharLimit int
	Width     int
}

// ChangedMsg reports a new value, typed or cleared.
type ChangedMsg struct {
	ID    string
	Value string
}

// KeyMap holds the field's own bindings; editing keys belong to textinput.
type KeyMap struct {
	Clear          key.Binding
	TogglePassword key.Binding
}

// DefaultKeyMap returns the default bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Clear: key.NewBinding(
			key.WithKeys("ctrl+u"),
			key.WithHelp("ctrl+u", "clear"),
		),
		TogglePassword: key.NewBinding(
			key.WithKeys("ctrl+r"),
			key.WithHelp("ctrl+r", "show/hide"),
		),
	}
}

// Model is a Bubble Tea text input component.
type Model struct {
	opts     Options
	input    textinput.Model
	spinner  spinner.Model
	revealed bool
	keys     KeyMap
}

// New creates a Model from opts.
func New(opts Options) Model {
	if opts.Variant == "" {
		opts.Variant = VariantOutlined
	}
	if opts.Size == "" {
		opts.Size = SizeMedium
	}
	if opts.Type == "" {
		opts.Type = TypeText
	}

	input := textinput.New()
	input.Placeholder = opts.Placeholder
	input.Prompt = ""
	if opts.CharLimit > 0 {
		input.CharLimit = opts.CharLimit
	}
	if opts.Width > 0 {
		input.Width = opts.Width
	}

	m := Model{
		opts:    opts,
		input:   input,
		spinner: spinner.New(spinner.WithSpinner(spinner.Dot)),
		keys:    DefaultKeyMap(),
	}
	m.syncEcho()
	return m
}

// Init starts the spinner when the field is loading.
func (m Model) Init() tea.Cmd {
	if m.opts.Loading {
		return m.spinner.Tick
	}
	return nil
}

// Update handles key input and spinner ticks.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		if !m.opts.Loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		if m.opts.Disabled || m.opts.Loading {
			return m, nil
		}
		switch {
		case key.Matches(msg, m.keys.Clear) && m.ShowsClear():
			m.input.SetValue("")
			return m, m.changed()
		case key.Matches(msg, m.keys.TogglePassword) && m.ShowsToggle():
			m.revealed = !m.revealed
			m.syncEcho()
			return m, nil
		}

		before := m.input.Value()
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		if m.input.Value() != before {
			return m, tea.Batch(cmd, m.changed())
		}
		return m, cmd
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// Focus focuses the input unless it is disabled.
func (m *Model) Focus() tea.Cmd {
	if m.opts.Disabled {
		return nil
	}
	return m.input.Focus()
}

// Blur removes focus.
func (m *Model) Blur() {
	m.input.Blur()
}

// Focused reports whether the input has focus.
func (m Model) Focused() bool {
	return m.input.Focused()
}

// Value returns the current text.
func (m Model) Value() string {
	return m.input.Value()
}

// SetValue replaces the text without emitting ChangedMsg.
func (m *Model) SetValue(v string) {
	m.input.SetValue(v)
}

// Reset clears the text without emitting ChangedMsg.
func (m *Model) Reset() {
	m.input.Reset()
}

// SetInvalid marks the field invalid with msg, or valid when invalid is
// false.
func (m *Model) SetInvalid(invalid bool, msg string) {
	m.opts.Invalid = invalid
	m.opts.ErrorMessage = msg
}

// SetHelperText replaces the helper text.
func (m *Model) SetHelperText(text string) {
	m.opts.HelperText = text
}

// SetDisabled enables or disables input.
func (m *Model) SetDisabled(disabled bool) {
	m.opts.Disabled = disabled
	if disabled {
		m.input.Blur()
	}
}

// SetLoading toggles the spinner. The returned command starts it.
func (m *Model) SetLoading(loading bool) tea.Cmd {
	m.opts.Loading = loading
	if loading {
		return m.spinner.Tick
	}
	return nil
}

// Options returns the current options.
func (m Model) Options() Options {
	return m.opts
}

// Revealed reports whether a password field currently shows its text.
func (m Model) Revealed() bool {
	return m.revealed
}

// ShowsError reports whether the error message replaces the helper text.
func (m Model) ShowsError() bool {
	return m.opts.Invalid && m.opts.ErrorMessage != ""
}

// ShowsClear reports whether the clear affordance is active.
func (m Model) ShowsClear() bool {
	return m.opts.Clearable && !m.opts.Loading && m.input.Value() != ""
}

// ShowsToggle reports whether the reveal toggle is active.
func (m Model) ShowsToggle() bool {
	return m.opts.PasswordToggle && m.opts.Type == TypePassword && !m.opts.Loading
}

func (m *Model) syncEcho() {
	if m.opts.Type == TypePassword && !(m.opts.PasswordToggle && m.revealed) {
		m.input.EchoMode = textinput.EchoPassword
		m.input.EchoCharacter = '•'
		return
	}
	m.input.EchoMode = textinput.EchoNormal
}

func (m Model) changed() tea.Cmd {
	msg := ChangedMsg{ID: m.opts.ID, Value: m.input.Value()}
	return func() tea.Msg { return msg }
}
