package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/henri123lemoine/tabula/internal/app"
	"github.com/henri123lemoine/tabula/internal/config"
	"github.com/henri123lemoine/tabula/internal/debug"
	"github.com/henri123lemoine/tabula/internal/ui"
)

// options holds the root command flags.
type options struct {
	configPath string
	dataFile   string
	exportFile string
	sample     int
	debug      bool
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// newRootCmd creates the root command. Running it launches the TUI.
func newRootCmd() *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:   "tabula",
		Short: "Browse, sort and select JSON records in a terminal table.",
		Long: `tabula shows an array of JSON objects as a table.

Sort by any sortable column, select rows, filter them and export the
selection back to JSON. Without --data it shows generated sample users.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(opts, cmd.ErrOrStderr())
		},
	}

	cmd.Flags().StringVar(&opts.configPath, "config", "", "config file (default is "+config.ConfigPath()+")")
	cmd.Flags().StringVar(&opts.dataFile, "data", "", "JSON file with an array of records")
	cmd.Flags().StringVar(&opts.exportFile, "export", "", "file the export key writes the selection to")
	cmd.Flags().IntVar(&opts.sample, "sample", app.DefaultSampleSize, "number of sample users when no data file is set")
	cmd.Flags().BoolVar(&opts.debug, "debug", false, "write a debug log to "+debug.DefaultPath())

	cmd.AddCommand(newInitConfigCmd())
	return cmd
}

func newInitConfigCmd() *cobra.Command {
	var force bool
	cmd := &cobra.Command{
		Use:   "init-config",
		Short: "Write a commented default config file.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := config.ConfigPath()
			if _, err := os.Stat(path); err == nil && !force {
				return fmt.Errorf("%s already exists (use --force to overwrite)", path)
			}
			if err := config.CreateDefaultConfigFile(); err != nil {
				return fmt.Errorf("write config: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	}
	cmd.Flags().BoolVar(&force, "force", false, "overwrite an existing config file")
	return cmd
}

// loadConfig reads the config file and applies flag overrides.
func loadConfig(opts options, warn io.Writer) (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	if opts.configPath != "" {
		if _, statErr := os.Stat(opts.configPath); errors.Is(statErr, os.ErrNotExist) {
			return nil, fmt.Errorf("config file %s not found", opts.configPath)
		}
		cfg, err = config.LoadFromPath(opts.configPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	if opts.dataFile != "" {
		cfg.General.DataFile = opts.dataFile
	}
	if opts.exportFile != "" {
		cfg.General.ExportFile = opts.exportFile
	}

	for _, w := range cfg.Validate() {
		fmt.Fprintf(warn, "Warning: %s\n", w)
	}
	return cfg, nil
}

func run(opts options, stderr io.Writer) error {
	if opts.debug {
		if err := debug.Enable(debug.DefaultPath()); err != nil {
			return fmt.Errorf("enable debug log: %w", err)
		}
		defer debug.Close()
	}

	cfg, err := loadConfig(opts, stderr)
	if err != nil {
		return err
	}
	ui.ApplyTheme(cfg.UI.Theme)

	model := app.New(cfg, opts.sample)
	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}
