package table

import (
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/revealgrid/grid"
	"github.com/iw2rmb/revealgrid/record"
)

// Model is a Bubble Tea component that renders and edits a grid.Grid.
type Model struct {
	id   int
	cfg  Config
	grid *grid.Grid
	reg  *registry

	focused  bool
	focusSeq uint64
	focusAt  grid.Pos
	hasFocus bool

	viewport viewport.Model
	// colOffset is the first data column drawn after the pinned ID column.
	colOffset int

	lastVersion uint64
}

func New(cfg Config) Model {
	m := Model{
		id:       nextID(),
		cfg:      cfg.withDefaults(),
		grid:     grid.New(cfg.Records),
		reg:      &registry{},
		focused:  true,
		viewport: viewport.New(0, 0),
	}
	m.lastVersion = m.grid.Version()
	m.commit()
	return m
}

// Grid exposes the underlying state. Hosts that mutate it directly see the
// change reflected on the next Update.
func (m Model) Grid() *grid.Grid { return m.grid }

func (m Model) KeyMap() KeyMap { return m.cfg.KeyMap }

// Init requests focus on the first cell.
func (m Model) Init() tea.Cmd {
	if m.grid.IsEmpty() {
		return nil
	}
	return m.focusCmd()
}

// SetRecords replaces the data set. Columns and values are rederived, the
// frontier collapses to the first cell and the cursor returns to (0,0).
func (m Model) SetRecords(records []record.Record) (Model, tea.Cmd) {
	m.grid.Reset(records)
	m.reg.clear()
	m.colOffset = 0
	m.hasFocus = false
	m.focusAt = grid.Pos{}
	m.commit()
	m.notifyChange(true)
	if m.grid.IsEmpty() {
		return m, nil
	}
	return m, m.requestFocus()
}

func (m Model) SetSize(width, height int) Model {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	m.viewport.Width = width
	m.viewport.Height = height

	m.followColumn()
	m.rebuildContent()
	m.followCursor()
	return m
}

func (m Model) Focus() Model {
	if !m.focused {
		m.focused = true
		if w := m.reg.get(m.grid.Cursor()); w != nil {
			_ = w.Focus()
			m.focusAt = m.grid.Cursor()
			m.hasFocus = true
		}
		m.rebuildContent()
	}
	return m
}

func (m Model) Blur() Model {
	if m.focused {
		m.focused = false
		if w := m.reg.get(m.focusAt); w != nil {
			w.Blur()
		}
		m.hasFocus = false
		m.rebuildContent()
	}
	return m
}

func (m Model) Focused() bool { return m.focused }

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.SetSize(msg.Width, msg.Height), nil
	case tea.MouseMsg:
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	case focusMsg:
		if msg.id != m.id {
			return m, nil
		}
		cmd = m.applyFocus(msg)
	case tea.KeyMsg:
		m, cmd = m.updateKey(msg)
	default:
		// Cursor blinks and paste results from the input itself.
		if w, p, ok := m.focusedInput(); ok && m.grid.IsEditable(p.Row, p.Col) {
			*w, cmd = w.Update(msg)
			m.writeBack(p, w.Value())
		}
	}

	m.commit()
	m.notifyChange(false)
	return m, cmd
}

func (m Model) View() string {
	if m.viewport.Height <= 0 {
		return m.renderContent()
	}
	return m.viewport.View()
}

// commit brings the widget registry and the rendered content in line with
// grid state. It runs at the end of every update, before the frame is drawn.
func (m *Model) commit() {
	m.reg.sync(m.grid, m.cfg.CellWidth)
	if m.hasFocus && m.reg.get(m.focusAt) == nil {
		m.hasFocus = false
	}
	m.followColumn()
	m.rebuildContent()
	m.followCursor()
}

func (m *Model) notifyChange(reset bool) {
	v := m.grid.Version()
	if v == m.lastVersion {
		return
	}
	m.lastVersion = v
	if m.cfg.OnChange != nil {
		m.cfg.OnChange(buildChangeEvent(m.grid, reset))
	}
}

func (m *Model) rebuildContent() {
	m.viewport.SetContent(m.renderContent())
}

// followCursor scrolls so the cursor row is visible. Displayed rows map 1:1
// to grid rows because only a trailing run of rows is ever suppressed.
func (m *Model) followCursor() {
	h := m.viewport.Height - m.viewport.Style.GetVerticalFrameSize()
	if h <= 0 {
		return
	}
	row := m.grid.Cursor().Row
	y := m.viewport.YOffset
	if row < y {
		m.viewport.SetYOffset(row)
		return
	}
	if row >= y+h {
		m.viewport.SetYOffset(row - h + 1)
	}
}

// visibleDataCols is how many data columns fit beside the ID column. Zero
// width means unbounded.
func (m *Model) visibleDataCols() int {
	data := m.grid.TotalCols() - 1
	w := m.viewport.Width - m.viewport.Style.GetHorizontalFrameSize()
	if m.viewport.Width <= 0 || data <= 0 {
		return max(data, 0)
	}
	n := (w - m.cfg.CellWidth) / (m.cfg.CellWidth + 1)
	return clamp(n, 1, data)
}

// followColumn scrolls the column window so the cursor column is drawn. The
// ID column is always drawn and never moves the window.
func (m *Model) followColumn() {
	n := m.visibleDataCols()
	if n == 0 {
		m.colOffset = 1
		return
	}
	off := max(m.colOffset, 1)
	if c := m.grid.Cursor().Col; c > 0 {
		if c < off {
			off = c
		}
		if c >= off+n {
			off = c - n + 1
		}
	}
	m.colOffset = clamp(off, 1, m.grid.TotalCols()-n)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
