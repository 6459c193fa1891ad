package table

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/iw2rmb/revealgrid/grid"
	graphemeutil "github.com/iw2rmb/revealgrid/internal/grapheme"
)

// renderContent draws every displayed row. A row is displayed once its first
// cell is revealed; within it, hidden cells render as blank placeholders of
// the cell width. Only the ID column and the current column window are
// drawn.
func (m *Model) renderContent() string {
	g := m.grid
	if g == nil || g.IsEmpty() {
		return ""
	}

	cursor := g.Cursor()
	cols := m.drawnColumns()
	sep := m.cfg.Style.Separator.Render("│")
	out := make([]string, 0, g.TotalRows())
	for row := 0; row < g.TotalRows(); row++ {
		if !g.IsRevealed(row, 0) {
			break
		}
		var sb strings.Builder
		for i, col := range cols {
			if i > 0 {
				sb.WriteString(sep)
			}
			p := grid.Pos{Row: row, Col: col}
			if !g.IsRevealed(row, col) {
				sb.WriteString(m.renderPlaceholder())
				continue
			}
			sb.WriteString(m.renderCell(p, p == cursor))
		}
		out = append(out, sb.String())
	}
	return strings.Join(out, "\n")
}

// drawnColumns lists the ID column followed by the column window.
func (m *Model) drawnColumns() []int {
	n := m.visibleDataCols()
	cols := make([]int, 0, n+1)
	cols = append(cols, 0)
	start := max(m.colOffset, 1)
	for c := start; c < start+n && c < m.grid.TotalCols(); c++ {
		cols = append(cols, c)
	}
	return cols
}

func (m *Model) renderPlaceholder() string {
	return m.cfg.Style.Placeholder.Render(strings.Repeat(" ", m.cfg.CellWidth))
}

func (m *Model) renderCell(p grid.Pos, active bool) string {
	st := m.cellStyle(p)
	if active && m.focused {
		st = m.cfg.Style.Active.Inherit(st)
	}

	// The focused editable cell shows its input with the caret; everything
	// else shows fitted text.
	if active && m.focused && m.grid.IsEditable(p.Row, p.Col) {
		if w := m.reg.get(p); w != nil && w.Focused() && m.hasFocus && m.focusAt == p {
			v := w.View()
			if pad := m.cfg.CellWidth - lipgloss.Width(v); pad > 0 {
				v += st.Render(strings.Repeat(" ", pad))
			}
			return st.Render(v)
		}
	}

	text := graphemeutil.Fit(m.grid.Value(p.Row, p.Col), m.cfg.CellWidth, m.cfg.Ellipsis)
	return st.Render(text)
}

func (m *Model) cellStyle(p grid.Pos) lipgloss.Style {
	switch {
	case m.grid.IsIDColumn(p.Col):
		return m.cfg.Style.IDCell
	case p.Row == 0:
		return m.cfg.Style.Header
	default:
		return m.cfg.Style.Cell
	}
}
