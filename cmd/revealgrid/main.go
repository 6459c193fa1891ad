// Command revealgrid opens a record file as a progressively revealed,
// editable table in the terminal.
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/iw2rmb/revealgrid"
	"github.com/iw2rmb/revealgrid/internal/config"
	"github.com/iw2rmb/revealgrid/record"
	"github.com/iw2rmb/revealgrid/table"
)

type options struct {
	format     string
	sheet      string
	configPath string
	cellWidth  int
	logPath    string
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var opts options
	cmd := &cobra.Command{
		Use:   "revealgrid [file]",
		Short: "Reveal and edit a record set one cell at a time",
		Long: `revealgrid shows records from a JSON, YAML, CSV or XLSX file as a table
whose cells are revealed in reading order as you move forward.

Without a file a small built-in sample is shown.`,
		Args:         cobra.MaximumNArgs(1),
		Version:      revealgrid.Version(),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.format, "format", "f", "", "Input format: json, yaml, csv, xlsx (default: from extension)")
	cmd.Flags().StringVar(&opts.sheet, "sheet", "", "XLSX worksheet name (default: first sheet)")
	cmd.Flags().StringVarP(&opts.configPath, "config", "c", defaultConfigPath(), "Settings file (TOML)")
	cmd.Flags().IntVarP(&opts.cellWidth, "cell-width", "w", 0, "Cell width in columns (overrides settings)")
	cmd.Flags().StringVar(&opts.logPath, "log", "", "Write debug log to this file")
	return cmd
}

func run(cmd *cobra.Command, args []string, opts options) error {
	logger := log.New(io.Discard)
	if opts.logPath != "" {
		f, err := tea.LogToFile(opts.logPath, "revealgrid")
		if err != nil {
			return fmt.Errorf("opening log file: %w", err)
		}
		defer func() { _ = f.Close() }()
		logger = log.NewWithOptions(f, log.Options{Level: log.DebugLevel, ReportTimestamp: true, Prefix: "revealgrid"})
	}

	settings, err := config.Load(opts.configPath)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("cell-width") {
		if opts.cellWidth < table.MinCellWidth {
			return fmt.Errorf("--cell-width must be at least %d, got %d", table.MinCellWidth, opts.cellWidth)
		}
		settings.CellWidth = opts.cellWidth
	}

	records, source, err := loadRecords(args, opts)
	if err != nil {
		return err
	}
	logger.Info("loaded records", "source", source, "count", len(records))

	p := tea.NewProgram(newApp(records, source, settings, logger), tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running program: %w", err)
	}
	return nil
}

func loadRecords(args []string, opts options) ([]record.Record, string, error) {
	if len(args) == 0 {
		return sampleRecords(), "sample", nil
	}

	var format record.Format
	if opts.format != "" {
		f, err := record.ParseFormat(opts.format)
		if err != nil {
			return nil, "", err
		}
		format = f
	}
	recs, err := record.LoadFile(args[0], format, record.Options{Sheet: opts.sheet})
	if err != nil {
		return nil, "", err
	}
	return recs, filepath.Base(args[0]), nil
}

func defaultConfigPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "revealgrid.toml"
	}
	return filepath.Join(dir, "revealgrid", "config.toml")
}
