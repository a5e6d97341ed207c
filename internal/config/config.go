// Package config handles tabula configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
)

// Config represents tabula configuration.
type Config struct {
	General GeneralConfig  `toml:"general"`
	Table   TableConfig    `toml:"table"`
	UI      UIConfig       `toml:"ui"`
	Keys    KeysConfig     `toml:"keys"`
	Columns []ColumnConfig `toml:"columns"`
}

// GeneralConfig contains general settings.
type GeneralConfig struct {
	// JSON file with an array of records (empty = built-in sample data)
	DataFile string `toml:"data_file"`

	// Where the export key writes the current selection
	ExportFile string `toml:"export_file"`

	// Artificial delay before the dataset is shown, e.g. "600ms"
	LoadDelay string `toml:"load_delay"`
}

// TableConfig contains table behavior settings.
type TableConfig struct {
	// Label shown when there are no rows
	EmptyText string `toml:"empty_text"`

	// Placeholder rows drawn while loading
	SkeletonRows int `toml:"skeleton_rows"`

	// Show the selection column
	Selectable bool `toml:"selectable"`

	// "position" keeps selections on row positions, "identity" follows records
	SelectionMode string `toml:"selection_mode"`

	// Record field used as identity in "identity" mode
	IdentityField string `toml:"identity_field"`

	// Record field listed in the "Selected:" footer
	SummaryField string `toml:"summary_field"`

	// Initial sort: "" for none, "<field>" or "<field>-desc"
	DefaultSort string `toml:"default_sort"`
}

// UIConfig contains UI settings.
type UIConfig struct {
	// Color theme: auto, dark, light
	Theme string `toml:"theme"`

	// Alternate row shading
	Striped bool `toml:"striped"`
}

// KeysConfig contains keybinding settings.
type KeysConfig struct {
	Up        string `toml:"up"`
	Down      string `toml:"down"`
	Left      string `toml:"left"`
	Right     string `toml:"right"`
	Sort      string `toml:"sort"`
	Select    string `toml:"select"`
	SelectAll string `toml:"select_all"`
	Clear     string `toml:"clear"`
	Filter    string `toml:"filter"`
	Export    string `toml:"export"`
	Copy      string `toml:"copy"`
	Help      string `toml:"help"`
	Quit      string `toml:"quit"`
}

// ColumnConfig describes one table column.
type ColumnConfig struct {
	Key      string `toml:"key"`
	Title    string `toml:"title"`
	Field    string `toml:"field"`
	Sortable bool   `toml:"sortable"`

	// Cell format: "", "upper", "lower", "percent", "currency", "yesno", "mailto"
	Format string `toml:"format"`
}

// Formats lists the accepted column formats.
var Formats = []string{"", "upper", "lower", "percent", "currency", "yesno", "mailto"}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		General: GeneralConfig{
			DataFile:   "",
			ExportFile: "selection.json",
			LoadDelay:  "600ms",
		},
		Table: TableConfig{
			EmptyText:     "No data",
			SkeletonRows:  3,
			Selectable:    true,
			SelectionMode: "position",
			IdentityField: "id",
			SummaryField:  "name",
			DefaultSort:   "",
		},
		UI: UIConfig{
			Theme:   "auto",
			Striped: true,
		},
		Keys: KeysConfig{
			Up:        "up,k",
			Down:      "down,j",
			Left:      "left,h",
			Right:     "right,l",
			Sort:      "s,enter",
			Select:    "space",
			SelectAll: "a",
			Clear:     "x",
			Filter:    "/",
			Export:    "e",
			Copy:      "y",
			Help:      "?",
			Quit:      "q,ctrl+c",
		},
		Columns: DefaultColumns(),
	}
}

// DefaultColumns matches the built-in sample dataset.
func DefaultColumns() []ColumnConfig {
	return []ColumnConfig{
		{Key: "name", Title: "Name", Field: "name", Sortable: true},
		{Key: "age", Title: "Age", Field: "age", Sortable: true},
		{Key: "email", Title: "Email", Field: "email"},
	}
}

// LoadDelayDuration parses general.load_delay. Invalid or empty values
// mean no delay.
func (c *Config) LoadDelayDuration() time.Duration {
	d, err := time.ParseDuration(c.General.LoadDelay)
	if err != nil || d < 0 {
		return 0
	}
	return d
}

// ParseSort splits a default_sort value into field and descending flag.
// An empty value returns an empty field.
func ParseSort(s string) (field string, descending bool) {
	s = strings.TrimSpace(s)
	if f, ok := strings.CutSuffix(s, "-desc"); ok {
		return f, true
	}
	if f, ok := strings.CutSuffix(s, "-asc"); ok {
		return f, false
	}
	return s, false
}

// ConfigPath returns the path to the config file.
// Uses ~/.config/tabula/config.toml (XDG style) on all Unix systems.
func ConfigPath() string {
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return filepath.Join(xdgConfig, "tabula", "config.toml")
	}
	home := os.Getenv("HOME")
	if home != "" {
		return filepath.Join(home, ".config", "tabula", "config.toml")
	}
	configDir, err := os.UserConfigDir()
	if err != nil {
		return filepath.Join(".", "tabula", "config.toml")
	}
	return filepath.Join(configDir, "tabula", "config.toml")
}

// Load loads configuration from the config file.
func Load() (*Config, error) {
	return LoadFromPath(ConfigPath())
}

// LoadFromPath loads configuration from a specific path. A missing file
// yields the defaults.
func LoadFromPath(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	// go-toml/v2 only overwrites fields present in the file. Columns are
	// replaced as a whole, so start from none and fall back afterwards.
	cfg.Columns = nil
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if len(cfg.Columns) == 0 {
		cfg.Columns = DefaultColumns()
	}

	return cfg, nil
}

// SaveToPath writes cfg as TOML, creating parent directories.
func SaveToPath(cfg *Config, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	data, err := toml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}

	return os.WriteFile(path, data, 0644)
}

// CreateDefaultConfigFile creates a default config file with comments.
func CreateDefaultConfigFile() error {
	path := ConfigPath()

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	return os.WriteFile(path, []byte(generateDefaultConfigContent()), 0644)
}

// generateDefaultConfigContent generates a commented config file.
func generateDefaultConfigContent() string {
	var b strings.Builder
	cfg := DefaultConfig()

	b.WriteString("# tabula configuration\n\n")

	b.WriteString("[general]\n")
	b.WriteString("# JSON file holding an array of records (sample data if unset)\n")
	b.WriteString("# data_file = \"people.json\"\n")
	b.WriteString("# Where 'export' writes the selected records\n")
	fmt.Fprintf(&b, "export_file = %q\n", cfg.General.ExportFile)
	b.WriteString("# Artificial delay before rows appear\n")
	fmt.Fprintf(&b, "load_delay = %q\n\n", cfg.General.LoadDelay)

	b.WriteString("[table]\n")
	fmt.Fprintf(&b, "empty_text = %q\n", cfg.Table.EmptyText)
	fmt.Fprintf(&b, "skeleton_rows = %d\n", cfg.Table.SkeletonRows)
	fmt.Fprintf(&b, "selectable = %v\n", cfg.Table.Selectable)
	b.WriteString("# \"position\": selection stays on row positions when re-sorting\n")
	b.WriteString("# \"identity\": selection follows records by identity_field\n")
	fmt.Fprintf(&b, "selection_mode = %q\n", cfg.Table.SelectionMode)
	fmt.Fprintf(&b, "identity_field = %q\n", cfg.Table.IdentityField)
	fmt.Fprintf(&b, "summary_field = %q\n", cfg.Table.SummaryField)
	b.WriteString("# Initial sort: \"name\", \"age-desc\", ... (unsorted if empty)\n")
	fmt.Fprintf(&b, "default_sort = %q\n\n", cfg.Table.DefaultSort)

	b.WriteString("[ui]\n")
	b.WriteString("# Color theme: \"auto\", \"dark\", or \"light\"\n")
	fmt.Fprintf(&b, "theme = %q\n", cfg.UI.Theme)
	fmt.Fprintf(&b, "striped = %v\n\n", cfg.UI.Striped)

	b.WriteString("[keys]\n")
	b.WriteString("# Keybindings (comma-separated for multiple keys)\n")
	fmt.Fprintf(&b, "# up = %q\n", cfg.Keys.Up)
	fmt.Fprintf(&b, "# down = %q\n", cfg.Keys.Down)
	fmt.Fprintf(&b, "# sort = %q\n", cfg.Keys.Sort)
	fmt.Fprintf(&b, "# select = %q\n", cfg.Keys.Select)
	fmt.Fprintf(&b, "# filter = %q\n", cfg.Keys.Filter)
	fmt.Fprintf(&b, "# quit = %q\n\n", cfg.Keys.Quit)

	b.WriteString("# Columns (format: upper, lower, percent, currency, yesno, mailto)\n")
	for _, col := range cfg.Columns {
		b.WriteString("[[columns]]\n")
		fmt.Fprintf(&b, "key = %q\n", col.Key)
		fmt.Fprintf(&b, "title = %q\n", col.Title)
		fmt.Fprintf(&b, "field = %q\n", col.Field)
		fmt.Fprintf(&b, "sortable = %v\n\n", col.Sortable)
	}

	return b.String()
}

// Validate validates the configuration and returns warnings.
func (c *Config) Validate() []string {
	var warnings []string

	if c.General.LoadDelay != "" {
		if d, err := time.ParseDuration(c.General.LoadDelay); err != nil || d < 0 {
			warnings = append(warnings, fmt.Sprintf("Invalid value for general.load_delay: %s (expected a duration like 600ms)", c.General.LoadDelay))
		}
	}

	if c.Table.SkeletonRows < 0 {
		warnings = append(warnings, fmt.Sprintf("table.skeleton_rows must not be negative, got %d", c.Table.SkeletonRows))
	}

	if c.Table.SelectionMode != "" &&
		c.Table.SelectionMode != "position" &&
		c.Table.SelectionMode != "identity" {
		warnings = append(warnings, fmt.Sprintf("Invalid value for table.selection_mode: %s (expected position or identity)", c.Table.SelectionMode))
	}

	if c.Table.SelectionMode == "identity" && c.Table.IdentityField == "" {
		warnings = append(warnings, "table.selection_mode is identity but table.identity_field is empty")
	}

	if c.UI.Theme != "" &&
		c.UI.Theme != "auto" &&
		c.UI.Theme != "dark" &&
		c.UI.Theme != "light" {
		warnings = append(warnings, fmt.Sprintf("Invalid value for ui.theme: %s (expected auto, dark, or light)", c.UI.Theme))
	}

	keys := make(map[string]bool)
	fields := make(map[string]bool)
	for i, col := range c.Columns {
		if col.Key == "" {
			warnings = append(warnings, fmt.Sprintf("Column %d has empty key", i))
		} else if keys[col.Key] {
			warnings = append(warnings, fmt.Sprintf("Duplicate column key: %s (later columns with this key are ignored)", col.Key))
		}
		keys[col.Key] = true
		fields[col.Field] = true

		if col.Field == "" {
			warnings = append(warnings, fmt.Sprintf("Column %s has empty field", col.Key))
		}
		if !validFormat(col.Format) {
			warnings = append(warnings, fmt.Sprintf("Column %s: unknown format %q", col.Key, col.Format))
		}
	}

	if field, _ := ParseSort(c.Table.DefaultSort); field != "" && !fields[field] {
		warnings = append(warnings, fmt.Sprintf("table.default_sort refers to unknown field: %s", field))
	}

	return warnings
}

func validFormat(f string) bool {
	for _, valid := range Formats {
		if f == valid {
			return true
		}
	}
	return false
}
