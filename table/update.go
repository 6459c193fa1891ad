package table

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/revealgrid/grid"
)

func (m Model) updateKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if !m.focused || m.grid.IsEmpty() {
		return m, nil
	}

	km := m.cfg.KeyMap
	switch {
	case key.Matches(msg, km.Advance):
		return m.navigate(grid.CmdAdvance)
	case key.Matches(msg, km.AdvanceRow):
		return m.navigate(grid.CmdAdvanceRow)
	case key.Matches(msg, km.Retreat):
		return m.navigate(grid.CmdRetreat)
	case key.Matches(msg, km.RetreatRow):
		return m.navigate(grid.CmdRetreatRow)
	case key.Matches(msg, km.CopyCell) && m.cfg.Clipboard != nil:
		m.copyCell()
		return m, nil
	case key.Matches(msg, km.PasteCell) && m.cfg.Clipboard != nil:
		m.pasteCell()
		return m, nil
	}

	return m.editCell(msg)
}

// navigate applies a directional command and, when the cursor moved,
// commits the new frame and schedules focus on the destination.
func (m Model) navigate(cmd grid.Command) (Model, tea.Cmd) {
	if !m.grid.Apply(cmd) {
		return m, nil
	}
	m.commit()
	return m, m.requestFocus()
}

// editCell forwards a key to the focused cell input and writes the resulting
// text back to the grid. ID cells have no edit handler.
func (m Model) editCell(msg tea.KeyMsg) (Model, tea.Cmd) {
	w, p, ok := m.focusedInput()
	if !ok || !m.grid.IsEditable(p.Row, p.Col) {
		return m, nil
	}

	var cmd tea.Cmd
	*w, cmd = w.Update(msg)
	m.writeBack(p, w.Value())
	return m, cmd
}

func (m Model) writeBack(p grid.Pos, text string) {
	if text == m.grid.Value(p.Row, p.Col) {
		return
	}
	if !m.grid.SetText(p.Row, p.Col, text) {
		m.cfg.Logger.Debug("write rejected", "row", p.Row, "col", p.Col)
		if w := m.reg.get(p); w != nil {
			w.SetValue(m.grid.Value(p.Row, p.Col))
		}
	}
}

func (m Model) copyCell() {
	p := m.grid.Cursor()
	if !m.grid.IsRevealed(p.Row, p.Col) {
		return
	}
	if err := m.cfg.Clipboard.WriteText(m.grid.Value(p.Row, p.Col)); err != nil {
		m.cfg.Logger.Debug("clipboard write failed", "err", err)
	}
}

// pasteCell replaces the active cell's text with the first clipboard line.
func (m Model) pasteCell() {
	p := m.grid.Cursor()
	if !m.grid.IsRevealed(p.Row, p.Col) || !m.grid.IsEditable(p.Row, p.Col) {
		return
	}
	s, err := m.cfg.Clipboard.ReadText()
	if err != nil {
		m.cfg.Logger.Debug("clipboard read failed", "err", err)
		return
	}
	if i := strings.IndexAny(s, "\r\n"); i >= 0 {
		s = s[:i]
	}
	m.writeBack(p, s)
	if w := m.reg.get(p); w != nil {
		w.SetValue(m.grid.Value(p.Row, p.Col))
		w.CursorEnd()
	}
}
