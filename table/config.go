package table

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/iw2rmb/revealgrid/record"
)

// DefaultCellWidth is the cell width used when Config.CellWidth is unset.
const DefaultCellWidth = 12

// MinCellWidth fits one character plus the caret of the active cell.
const MinCellWidth = 2

// Config configures the table Model.
type Config struct {
	// Initial records. The column set is derived from their keys.
	Records []record.Record

	// Rendering options.
	Style Style
	// CellWidth is the width of every cell in terminal cells, at least
	// MinCellWidth.
	CellWidth int
	// Ellipsis is appended to text cut to fit a cell. Default "…".
	Ellipsis string

	// KeyMap defaults to DefaultKeyMap when left zero.
	KeyMap KeyMap

	// Clipboard backs the copy/paste bindings. Nil disables copying; paste
	// then falls through to the text input's own handling.
	Clipboard Clipboard

	// OnChange is called after each update that changed grid state.
	OnChange func(ChangeEvent)

	// Logger receives debug records for dropped focus requests and rejected
	// writes. Nil discards.
	Logger *log.Logger
}

func (cfg Config) withDefaults() Config {
	if cfg.CellWidth <= 0 {
		cfg.CellWidth = DefaultCellWidth
	}
	cfg.CellWidth = max(cfg.CellWidth, MinCellWidth)
	if cfg.Ellipsis == "" {
		cfg.Ellipsis = "…"
	}
	if isZeroKeyMap(cfg.KeyMap) {
		cfg.KeyMap = DefaultKeyMap()
	}
	if cfg.Logger == nil {
		cfg.Logger = log.New(io.Discard)
	}
	return cfg
}
