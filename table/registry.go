package table

import (
	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/textinput"

	"github.com/iw2rmb/revealgrid/grid"
)

// registry is the row/column table of live cell widgets. It always has
// TotalRows x TotalCols slots; a slot is nil until its cell is revealed and
// committed.
type registry struct {
	cells [][]*textinput.Model
	rows  int
	cols  int
}

func (r *registry) size() (rows, cols int) { return r.rows, r.cols }

// resize reshapes the table, keeping widgets that still fall inside the new
// bounds and dropping the rest.
func (r *registry) resize(rows, cols int) {
	if rows == r.rows && cols == r.cols {
		return
	}
	next := make([][]*textinput.Model, rows)
	for i := range next {
		next[i] = make([]*textinput.Model, cols)
		if i >= len(r.cells) {
			continue
		}
		copy(next[i], r.cells[i])
	}
	r.cells = next
	r.rows, r.cols = rows, cols
}

// clear drops every widget but keeps the shape.
func (r *registry) clear() {
	for _, row := range r.cells {
		for c := range row {
			row[c] = nil
		}
	}
}

// get returns the widget at p, or nil when p is out of range or the cell has
// no widget yet.
func (r *registry) get(p grid.Pos) *textinput.Model {
	if p.Row < 0 || p.Row >= r.rows || p.Col < 0 || p.Col >= r.cols {
		return nil
	}
	return r.cells[p.Row][p.Col]
}

func (r *registry) count() int {
	n := 0
	for _, row := range r.cells {
		for _, w := range row {
			if w != nil {
				n++
			}
		}
	}
	return n
}

// sync commits grid state to the registry: it matches the grid shape,
// creates widgets for revealed cells, drops widgets of hidden cells and
// refreshes widget text that was changed outside the widget.
func (r *registry) sync(g *grid.Grid, width int) {
	r.resize(g.TotalRows(), g.TotalCols())
	for row := 0; row < r.rows; row++ {
		for col := 0; col < r.cols; col++ {
			if !g.IsRevealed(row, col) {
				r.cells[row][col] = nil
				continue
			}
			text := g.Value(row, col)
			w := r.cells[row][col]
			if w == nil {
				r.cells[row][col] = newCellInput(text, width)
				continue
			}
			if w.Value() != text {
				w.SetValue(text)
			}
		}
	}
}

func newCellInput(text string, width int) *textinput.Model {
	ti := textinput.New()
	ti.Prompt = ""
	ti.Width = max(width-1, 1)
	ti.Cursor.SetMode(cursor.CursorStatic)
	ti.SetValue(text)
	return &ti
}
