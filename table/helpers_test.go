package table

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"

	"github.com/iw2rmb/revealgrid/grid"
	"github.com/iw2rmb/revealgrid/record"
)

type memClipboard struct {
	s   string
	err error
}

func (c *memClipboard) ReadText() (string, error) { return c.s, c.err }
func (c *memClipboard) WriteText(s string) error  { c.s = s; return c.err }

func people() []record.Record {
	return []record.Record{
		record.New(record.F("name", "Jimmy"), record.F("city", "Stavanger"), record.F("age", 25)),
		record.New(record.F("name", "Sara"), record.F("city", "Oslo"), record.F("age", 23)),
		record.New(record.F("name", "Jon"), record.F("city", "Bergen")),
	}
}

func newTestModel(t *testing.T, cfg Config) Model {
	t.Helper()
	if cfg.CellWidth == 0 {
		cfg.CellWidth = 6
	}
	m := New(cfg)
	return deliverFocus(t, m, m.Init())
}

// deliverFocus runs a focus command and feeds its message back, the way the
// Bubble Tea runtime does after rendering.
func deliverFocus(t *testing.T, m Model, cmd tea.Cmd) Model {
	t.Helper()
	if cmd == nil {
		t.Fatalf("expected a focus command")
	}
	raw := cmd()
	msg, ok := raw.(focusMsg)
	if !ok {
		t.Fatalf("expected focusMsg, got %T", raw)
	}
	m, _ = m.Update(msg)
	return m
}

func press(t *testing.T, m Model, k tea.KeyType) Model {
	t.Helper()
	m, cmd := m.Update(tea.KeyMsg{Type: k})
	if cmd != nil {
		if _, ok := cmd().(focusMsg); ok {
			return deliverFocus(t, m, cmd)
		}
	}
	return m
}

func typeText(m Model, s string) Model {
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)})
	return m
}

func viewLines(m Model) []string {
	lines := strings.Split(m.View(), "\n")
	for i := range lines {
		lines[i] = strings.TrimRight(ansi.Strip(lines[i]), " ")
	}
	return lines
}

func focusedPos(m Model) (grid.Pos, bool) {
	for r, row := range m.reg.cells {
		for c, w := range row {
			if w != nil && w.Focused() {
				return grid.Pos{Row: r, Col: c}, true
			}
		}
	}
	return grid.Pos{}, false
}
