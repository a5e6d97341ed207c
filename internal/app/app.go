package app

import (
	"fmt"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sahilm/fuzzy"

	"github.com/henri123lemoine/tabula/internal/config"
	"github.com/henri123lemoine/tabula/internal/dataset"
	"github.com/henri123lemoine/tabula/internal/debug"
	"github.com/henri123lemoine/tabula/internal/inputfield"
	"github.com/henri123lemoine/tabula/internal/table"
	"github.com/henri123lemoine/tabula/internal/ui"
)

// State represents the current UI state.
type State int

const (
	StateTable State = iota
	StateFilter
	StateHelp
)

// DefaultSampleSize is the number of demo users shown without a data file.
const DefaultSampleSize = 3

// sampleSeed keeps the demo dataset stable between runs.
const sampleSeed = 1

const filterID = "filter"

// chromeHeight is the number of lines around the rows: box border and
// padding, title, dividers, header, footer and help.
const chromeHeight = 14

// selectionSink receives selection callbacks. The table holds a pointer to
// it so the payload survives Model copies.
type selectionSink struct {
	rows    []table.Record
	changes int
}

func (s *selectionSink) store(rows []table.Record) {
	s.rows = rows
	s.changes++
	debug.Log("app: selection changed (%d rows)", len(rows))
}

// Model is the main application model.
type Model struct {
	// Configuration
	config     *config.Config
	sampleSize int

	// Data
	table     *table.Table
	records   []table.Record
	picked    *selectionSink
	cursor    int
	colCursor int

	// State
	state  State
	err    error
	status string

	// Filter
	filter inputfield.Model

	// UI
	spinner spinner.Model
	width   int
	height  int
	keys    KeyMap
}

// New creates a new Model. Without a data file, sampleSize demo users are
// generated.
func New(cfg *config.Config, sampleSize int) Model {
	if sampleSize <= 0 {
		sampleSize = DefaultSampleSize
	}

	picked := &selectionSink{}
	opts := []table.Option{
		table.WithLoading(true),
		table.WithSelectable(cfg.Table.Selectable),
		table.WithEmptyText(cfg.Table.EmptyText),
		table.WithSkeletonRows(cfg.Table.SkeletonRows),
		table.WithOnSelect(picked.store),
	}
	if cfg.Table.SelectionMode == table.SelectByIdentity.String() {
		opts = append(opts, table.WithSelectionMode(table.SelectByIdentity, cfg.Table.IdentityField))
	}
	if field, desc := config.ParseSort(cfg.Table.DefaultSort); field != "" {
		dir := table.Ascending
		if desc {
			dir = table.Descending
		}
		opts = append(opts, table.WithSort(table.SortBy(field, dir)))
	}

	filter := inputfield.New(inputfield.Options{
		ID:          filterID,
		Label:       "Filter",
		Placeholder: "filter...",
		Clearable:   true,
		CharLimit:   50,
		Variant:     inputfield.VariantGhost,
		Size:        inputfield.SizeSmall,
	})

	return Model{
		config:     cfg,
		sampleSize: sampleSize,
		table:      table.New(nil, columnsFromConfig(cfg.Columns), opts...),
		picked:     picked,
		filter:     filter,
		spinner:    spinner.New(spinner.WithSpinner(spinner.Dot)),
		keys:       KeyMapFromConfig(&cfg.Keys),
		state:      StateTable,
	}
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.spinner.Tick,
		loadData(m.config, m.sampleSize),
	)
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case spinner.TickMsg:
		if !m.table.Loading() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		// ctrl+c quits from anywhere; plain quit keys only from the table
		if msg.Type == tea.KeyCtrlC || (key.Matches(msg, m.keys.Quit) && m.state == StateTable) {
			return m, tea.Quit
		}
		return m.handleKeyPress(msg)

	case inputfield.ChangedMsg:
		if msg.ID == filterID {
			m.applyFilter()
		}
		return m, nil

	case DataLoadedMsg:
		m.table.SetLoading(false)
		if msg.Err != nil {
			m.err = fmt.Errorf("load data: %w", msg.Err)
			return m, nil
		}
		m.records = msg.Records
		m.applyFilter()
		m.status = fmt.Sprintf("Loaded %d records", len(msg.Records))
		return m, nil

	case CopiedMsg:
		if msg.Err != nil {
			m.err = fmt.Errorf("copy selection: %w", msg.Err)
			return m, nil
		}
		m.err = nil
		m.status = fmt.Sprintf("Copied %d rows to clipboard", msg.Count)
		return m, nil

	case ExportedMsg:
		if msg.Err != nil {
			m.err = fmt.Errorf("export selection: %w", msg.Err)
			return m, nil
		}
		m.err = nil
		m.status = fmt.Sprintf("Exported %d rows to %s", msg.Count, msg.Path)
		return m, nil
	}

	if m.state == StateFilter {
		var cmd tea.Cmd
		m.filter, cmd = m.filter.Update(msg)
		return m, cmd
	}
	return m, nil
}

// handleKeyPress handles key presses based on current state.
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.state {
	case StateTable:
		return m.handleTableKeys(msg)
	case StateFilter:
		return m.handleFilterKeys(msg)
	case StateHelp:
		return m.handleHelpKeys(msg)
	}
	return m, nil
}

// handleTableKeys handles key presses in the table view.
func (m Model) handleTableKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Help) {
		m.state = StateHelp
		return m, nil
	}
	switch {
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < m.table.Len()-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.Left):
		if m.colCursor > 0 {
			m.colCursor--
		}
	case key.Matches(msg, m.keys.Right):
		if m.colCursor < len(m.table.Columns())-1 {
			m.colCursor++
		}
	case key.Matches(msg, m.keys.Sort):
		if !m.table.ToggleSortAt(m.colCursor) {
			if cols := m.table.Columns(); m.colCursor < len(cols) {
				m.status = fmt.Sprintf("%s is not sortable", cols[m.colCursor].Title)
			}
			return m, nil
		}
		m.status = "Sorted by " + m.table.Sort().String()
	case key.Matches(msg, m.keys.Select):
		if m.table.Selectable() && m.table.Len() > 0 {
			m.table.ToggleSelection(m.cursor)
		}
	case key.Matches(msg, m.keys.SelectAll):
		if m.table.Selectable() {
			m.table.SelectAll()
		}
	case key.Matches(msg, m.keys.Clear):
		m.table.ClearSelection()
	case key.Matches(msg, m.keys.Filter):
		m.state = StateFilter
		return m, m.filter.Focus()
	case key.Matches(msg, m.keys.Export):
		return m, exportSelection(m.config.General.ExportFile, m.picked.rows)
	case key.Matches(msg, m.keys.Copy):
		return m, copySelection(m.picked.rows)
	}
	return m, nil
}

// handleHelpKeys handles key presses in the help view.
func (m Model) handleHelpKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Any key closes help
	m.state = StateTable
	return m, nil
}

// handleFilterKeys handles key presses in filter mode.
func (m Model) handleFilterKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Cancel):
		m.state = StateTable
		m.filter.Reset()
		m.filter.Blur()
		m.applyFilter()
		return m, nil
	case msg.Type == tea.KeyEnter:
		m.state = StateTable
		m.filter.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.filter, cmd = m.filter.Update(msg)
	return m, cmd
}

// recordSource implements fuzzy.Source over the rendered cells of each
// record.
type recordSource struct {
	records []table.Record
	columns []table.Column
}

func (s recordSource) String(i int) string {
	cells := make([]string, len(s.columns))
	for j, col := range s.columns {
		cells[j] = table.Cell(col, s.records[i])
	}
	return strings.Join(cells, " ")
}

func (s recordSource) Len() int {
	return len(s.records)
}

// applyFilter hands the records matching the filter input to the table.
func (m *Model) applyFilter() {
	filter := m.filter.Value()
	if filter == "" {
		m.table.SetData(m.records)
	} else {
		matches := fuzzy.FindFrom(filter, recordSource{records: m.records, columns: m.table.Columns()})
		filtered := make([]table.Record, 0, len(matches))
		for _, match := range matches {
			filtered = append(filtered, m.records[match.Index])
		}
		m.table.SetData(filtered)
	}

	// Ensure cursor is in bounds
	if m.cursor >= m.table.Len() {
		m.cursor = m.table.Len() - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// Selected returns the latest selection payload.
func (m Model) Selected() []table.Record {
	return m.picked.rows
}

// selectedSummary lists the summary field of every selected record.
func (m Model) selectedSummary() string {
	parts := make([]string, 0, len(m.picked.rows))
	for _, rec := range m.picked.rows {
		parts = append(parts, table.Stringify(rec.Get(m.config.Table.SummaryField)))
	}
	return strings.Join(parts, ", ")
}

// View renders the UI.
func (m Model) View() string {
	visible := 0
	if m.height > 0 {
		visible = max(1, m.height-chromeHeight)
	}
	offset := 0
	if visible > 0 && m.cursor >= visible {
		offset = m.cursor - visible + 1
	}

	return ui.Render(ui.RenderParams{
		State:           int(m.state),
		Title:           "tabula",
		Projection:      m.table.Project(),
		HeaderCursor:    m.colCursor,
		RowCursor:       m.cursor,
		ViewOffset:      offset,
		VisibleCount:    visible,
		Width:           m.width,
		Height:          m.height,
		Striped:         m.config.UI.Striped,
		SpinnerFrame:    m.spinner.View(),
		Err:             m.err,
		Status:          m.status,
		FilterInput:     m.filter.View(),
		FilterValue:     m.filter.Value(),
		SelectedSummary: m.selectedSummary(),
		SelectedCount:   len(m.picked.rows),
		ShortHelp:       m.shortHelp(),
		HelpSections:    m.helpSections(),
	})
}

func helpBindings(bindings ...key.Binding) []ui.HelpBinding {
	out := make([]ui.HelpBinding, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		out = append(out, ui.HelpBinding{Keys: h.Key, Desc: h.Desc})
	}
	return out
}

// shortHelp is the footer line for the current state.
func (m Model) shortHelp() []ui.HelpBinding {
	if m.state == StateFilter {
		return []ui.HelpBinding{
			{Keys: "enter", Desc: "apply"},
			{Keys: m.keys.Cancel.Help().Key, Desc: "clear"},
			{Keys: "ctrl+u", Desc: "clear text"},
		}
	}
	return helpBindings(m.keys.Sort, m.keys.Select, m.keys.SelectAll, m.keys.Clear,
		m.keys.Filter, m.keys.Export, m.keys.Copy, m.keys.Help, m.keys.Quit)
}

func (m Model) helpSections() []ui.HelpSection {
	section := func(title string, bindings ...key.Binding) ui.HelpSection {
		return ui.HelpSection{Title: title, Bindings: helpBindings(bindings...)}
	}
	return []ui.HelpSection{
		section("Navigation", m.keys.Up, m.keys.Down, m.keys.Left, m.keys.Right),
		section("Table", m.keys.Sort, m.keys.Select, m.keys.SelectAll, m.keys.Clear, m.keys.Filter, m.keys.Export, m.keys.Copy),
		section("General", m.keys.Help, m.keys.Quit),
	}
}

// Commands

func loadData(cfg *config.Config, sampleSize int) tea.Cmd {
	load := func() tea.Msg {
		if cfg.General.DataFile == "" {
			return DataLoadedMsg{Records: dataset.Sample(sampleSize, sampleSeed)}
		}
		records, err := dataset.Load(cfg.General.DataFile)
		return DataLoadedMsg{Records: records, Err: err}
	}
	if delay := cfg.LoadDelayDuration(); delay > 0 {
		return tea.Tick(delay, func(time.Time) tea.Msg { return load() })
	}
	return load
}

func copySelection(rows []table.Record) tea.Cmd {
	return func() tea.Msg {
		data, err := dataset.Encode(rows)
		if err == nil {
			err = clipboard.WriteAll(string(data))
		}
		return CopiedMsg{Count: len(rows), Err: err}
	}
}

func exportSelection(path string, rows []table.Record) tea.Cmd {
	return func() tea.Msg {
		err := dataset.Export(path, rows)
		return ExportedMsg{Path: path, Count: len(rows), Err: err}
	}
}
