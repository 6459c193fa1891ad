// Package config loads revealgrid settings from a TOML file.
//
// A missing file is not an error; defaults apply. Command-line flags are
// layered on top by the caller.
package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
	"github.com/pelletier/go-toml/v2"

	"github.com/iw2rmb/revealgrid/table"
)

// Settings is the on-disk configuration.
type Settings struct {
	CellWidth int    `toml:"cell_width"`
	Ellipsis  string `toml:"ellipsis"`

	Style StyleSettings `toml:"style"`
	Keys  KeySettings   `toml:"keys"`
}

// StyleSettings holds lipgloss colors ("240", "#ff8800", ...). Empty keeps
// the default.
type StyleSettings struct {
	Header      string `toml:"header"`
	ID          string `toml:"id"`
	Active      string `toml:"active"`
	Placeholder string `toml:"placeholder"`
	Separator   string `toml:"separator"`
}

// KeySettings overrides key bindings. Each entry is a list of key names as
// Bubble Tea reports them ("right", "ctrl+n", "l").
type KeySettings struct {
	Advance    []string `toml:"advance"`
	AdvanceRow []string `toml:"advance_row"`
	Retreat    []string `toml:"retreat"`
	RetreatRow []string `toml:"retreat_row"`
	Copy       []string `toml:"copy"`
	Paste      []string `toml:"paste"`
}

// ParseError reports a malformed settings file.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error in %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// ErrInvalidValue indicates a setting outside its allowed range.
var ErrInvalidValue = errors.New("invalid setting value")

// Default returns the built-in settings.
func Default() Settings {
	return Settings{CellWidth: table.DefaultCellWidth, Ellipsis: "…"}
}

// Load reads settings from path. A missing file yields Default().
func Load(path string) (Settings, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Default(), nil
		}
		return Settings{}, fmt.Errorf("reading config file %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()
	return Parse(path, f)
}

// Parse decodes settings from r on top of Default(). source names r in
// errors.
func Parse(source string, r io.Reader) (Settings, error) {
	s := Default()
	dec := toml.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&s); err != nil {
		return Settings{}, &ParseError{Path: source, Err: err}
	}
	if err := s.Validate(); err != nil {
		return Settings{}, &ParseError{Path: source, Err: err}
	}
	return s, nil
}

func (s Settings) Validate() error {
	if s.CellWidth < table.MinCellWidth {
		return fmt.Errorf("cell_width %d: %w", s.CellWidth, ErrInvalidValue)
	}
	for _, nk := range s.Keys.byName() {
		name, keys := nk.name, nk.keys
		for _, k := range keys {
			if strings.TrimSpace(k) == "" {
				return fmt.Errorf("keys.%s: empty key name: %w", name, ErrInvalidValue)
			}
		}
	}
	return nil
}

type namedKeys struct {
	name string
	keys []string
}

// byName lists the key settings in file order.
func (k KeySettings) byName() []namedKeys {
	return []namedKeys{
		{"advance", k.Advance},
		{"advance_row", k.AdvanceRow},
		{"retreat", k.Retreat},
		{"retreat_row", k.RetreatRow},
		{"copy", k.Copy},
		{"paste", k.Paste},
	}
}

// Apply layers the settings onto a table configuration.
func (s Settings) Apply(cfg table.Config) table.Config {
	if s.CellWidth > 0 {
		cfg.CellWidth = s.CellWidth
	}
	if s.Ellipsis != "" {
		cfg.Ellipsis = s.Ellipsis
	}
	cfg.Style = s.Style.apply(cfg.Style)
	cfg.KeyMap = s.Keys.apply(cfg.KeyMap)
	return cfg
}

func (s StyleSettings) apply(st table.Style) table.Style {
	if s.Header != "" {
		st.Header = st.Header.Foreground(lipgloss.Color(s.Header))
	}
	if s.ID != "" {
		st.IDCell = st.IDCell.Foreground(lipgloss.Color(s.ID))
	}
	if s.Active != "" {
		st.Active = st.Active.Background(lipgloss.Color(s.Active))
	}
	if s.Placeholder != "" {
		st.Placeholder = st.Placeholder.Background(lipgloss.Color(s.Placeholder))
	}
	if s.Separator != "" {
		st.Separator = st.Separator.Foreground(lipgloss.Color(s.Separator))
	}
	return st
}

func (k KeySettings) apply(km table.KeyMap) table.KeyMap {
	rebind(&km.Advance, k.Advance)
	rebind(&km.AdvanceRow, k.AdvanceRow)
	rebind(&km.Retreat, k.Retreat)
	rebind(&km.RetreatRow, k.RetreatRow)
	rebind(&km.CopyCell, k.Copy)
	rebind(&km.PasteCell, k.Paste)
	return km
}

func rebind(b *key.Binding, keys []string) {
	if len(keys) == 0 {
		return
	}
	b.SetKeys(keys...)
	b.SetHelp(strings.Join(keys, "/"), b.Help().Desc)
}
