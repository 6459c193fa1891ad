package table

import (
	"sync/atomic"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/revealgrid/grid"
)

var lastID int64

func nextID() int {
	return int(atomic.AddInt64(&lastID, 1))
}

// focusMsg asks the table to move widget focus to the grid cursor. It is
// delivered after the update that produced it has been rendered, so widgets
// for just-revealed cells already exist.
type focusMsg struct {
	id  int
	seq uint64
}

// requestFocus schedules a focus transfer. A later request supersedes any
// earlier one still in flight.
func (m *Model) requestFocus() tea.Cmd {
	m.focusSeq++
	return m.focusCmd()
}

func (m Model) focusCmd() tea.Cmd {
	id, seq := m.id, m.focusSeq
	return func() tea.Msg { return focusMsg{id: id, seq: seq} }
}

// applyFocus resolves a focus request against the live cursor. Requests for
// cells without a widget, and requests superseded by newer ones, are dropped.
func (m *Model) applyFocus(msg focusMsg) tea.Cmd {
	if msg.seq != m.focusSeq {
		m.cfg.Logger.Debug("focus request superseded", "seq", msg.seq, "latest", m.focusSeq)
		return nil
	}
	if !m.focused {
		return nil
	}

	target := m.grid.Cursor()
	w := m.reg.get(target)
	if w == nil {
		m.cfg.Logger.Debug("focus target not rendered", "row", target.Row, "col", target.Col)
		return nil
	}

	if prev := m.reg.get(m.focusAt); prev != nil && m.focusAt != target {
		prev.Blur()
	}
	m.focusAt = target
	m.hasFocus = true
	cmd := w.Focus()
	w.CursorEnd()
	return cmd
}

// focusedInput returns the widget that currently holds focus, if it is the
// one under the cursor.
func (m Model) focusedInput() (*textinput.Model, grid.Pos, bool) {
	p := m.grid.Cursor()
	if !m.hasFocus || m.focusAt != p {
		return nil, p, false
	}
	w := m.reg.get(p)
	if w == nil || !w.Focused() {
		return nil, p, false
	}
	return w, p, true
}
