package grid

import "github.com/iw2rmb/revealgrid/record"

// Grid owns header labels, body values, the reveal frontier and the cursor.
//
// The zero Grid has no columns and no cells; every navigation command on it
// is a no-op.
type Grid struct {
	columns []string
	headers []string
	values  [][]string

	revealed int
	cursor   Pos

	version uint64
}

// New derives the column set from records and returns a grid with only the
// first header cell revealed.
func New(records []record.Record) *Grid {
	g := &Grid{}
	g.reset(DeriveColumns(records), records)
	return g
}

// Reset rederives columns and values from records. It is a structural change.
func (g *Grid) Reset(records []record.Record) {
	g.reset(DeriveColumns(records), records)
	g.version++
}

// ResetForNewShape replaces headers and values wholesale from an explicit
// column list, resets the frontier to the first cell and the cursor to (0,0).
// IDColumn is prepended to columns when missing.
func (g *Grid) ResetForNewShape(columns []string, records []record.Record) {
	g.reset(normalizeColumns(columns), records)
	g.version++
}

func (g *Grid) reset(columns []string, records []record.Record) {
	g.columns = columns
	g.headers = make([]string, len(columns))
	copy(g.headers, columns)
	g.values = DeriveValues(columns, records)
	g.cursor = Pos{}
	g.revealed = 0
	if g.TotalCells() > 0 {
		g.revealed = 1
	}
}

func (g *Grid) Version() uint64 { return g.version }

// Columns returns the original column keys. Header labels may differ after
// edits; values stay bound to these keys.
func (g *Grid) Columns() []string { return cloneStrings(g.columns) }

func (g *Grid) Headers() []string { return cloneStrings(g.headers) }

// Values returns a copy of the body matrix, indexed by body row.
func (g *Grid) Values() [][]string {
	if len(g.values) == 0 {
		return nil
	}
	out := make([][]string, len(g.values))
	for i, row := range g.values {
		out[i] = cloneStrings(row)
	}
	return out
}

func (g *Grid) Header(col int) string {
	if col < 0 || col >= len(g.headers) {
		return ""
	}
	return g.headers[col]
}

// Value returns the text at a grid position: the header label for row 0, the
// body value otherwise. Out-of-range positions yield "".
func (g *Grid) Value(row, col int) string {
	if row == 0 {
		return g.Header(col)
	}
	if row < 1 || row > len(g.values) || col < 0 || col >= g.ColCount() {
		return ""
	}
	return g.values[row-1][col]
}

func (g *Grid) RowCount() int { return len(g.values) }

func (g *Grid) ColCount() int { return len(g.headers) }

// TotalRows counts the header row plus body rows. It is 0 only for a grid
// without columns.
func (g *Grid) TotalRows() int {
	if g.ColCount() == 0 {
		return 0
	}
	return g.RowCount() + 1
}

func (g *Grid) TotalCols() int { return g.ColCount() }

func (g *Grid) TotalCells() int { return g.TotalRows() * g.TotalCols() }

func (g *Grid) IsEmpty() bool { return g.TotalCells() == 0 }

func (g *Grid) Revealed() int { return g.revealed }

func (g *Grid) Cursor() Pos { return g.cursor }

// Index returns the row-major linear index of (row, col).
func (g *Grid) Index(row, col int) int { return row*g.TotalCols() + col }

// PosAt converts a linear index back to a clamped position.
func (g *Grid) PosAt(index int) Pos {
	cols := g.TotalCols()
	if cols == 0 {
		return Pos{}
	}
	return g.clamp(Pos{Row: index / cols, Col: index % cols})
}

func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.TotalRows() && col >= 0 && col < g.TotalCols()
}

func (g *Grid) IsRevealed(row, col int) bool {
	return g.InBounds(row, col) && g.Index(row, col) < g.revealed
}

func (g *Grid) IsIDColumn(col int) bool { return col == 0 }

// IsEditable reports whether the cell accepts writes: any in-bounds cell
// outside the ID column.
func (g *Grid) IsEditable(row, col int) bool {
	return g.InBounds(row, col) && !g.IsIDColumn(col)
}

// SetHeaderLabel replaces a column label. It reports false, changing nothing,
// for the ID column or an out-of-range col.
func (g *Grid) SetHeaderLabel(col int, text string) bool {
	if g.IsIDColumn(col) || col < 0 || col >= len(g.headers) {
		return false
	}
	if g.headers[col] != text {
		g.headers[col] = text
		g.version++
	}
	return true
}

// SetCellValue replaces a body value at a grid row (>= 1). It reports false,
// changing nothing, for the header row, the ID column or out-of-range cells.
func (g *Grid) SetCellValue(gridRow, col int, text string) bool {
	if gridRow == 0 || g.IsIDColumn(col) || !g.InBounds(gridRow, col) {
		return false
	}
	row := g.values[gridRow-1]
	if row[col] != text {
		row[col] = text
		g.version++
	}
	return true
}

// SetText writes a header label for row 0 and a body value otherwise.
func (g *Grid) SetText(row, col int, text string) bool {
	if row == 0 {
		return g.SetHeaderLabel(col, text)
	}
	return g.SetCellValue(row, col, text)
}

func (g *Grid) clamp(p Pos) Pos {
	return Pos{
		Row: clampInt(p.Row, 0, g.TotalRows()-1),
		Col: clampInt(p.Col, 0, g.TotalCols()-1),
	}
}

func cloneStrings(in []string) []string {
	if len(in) == 0 {
		return nil
	}
	out := make([]string, len(in))
	copy(out, in)
	return out
}
