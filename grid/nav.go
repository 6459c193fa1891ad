package grid

// Navigation never hides a revealed cell: advancing commands may grow the
// frontier, retreating commands only move inside it. Each command reports
// whether the cursor moved to a (possibly identical) destination that the
// host should focus.

// Apply dispatches a directional command.
func (g *Grid) Apply(cmd Command) bool {
	switch cmd {
	case CmdAdvance:
		return g.Advance()
	case CmdAdvanceRow:
		return g.AdvanceRow()
	case CmdRetreat:
		return g.Retreat()
	case CmdRetreatRow:
		return g.RetreatRow()
	default:
		return false
	}
}

// Advance moves to the next cell in row-major order, revealing it. At the
// last cell it saturates and still reports a move.
func (g *Grid) Advance() bool {
	if g.IsEmpty() {
		return false
	}
	target := min(g.Index(g.cursor.Row, g.cursor.Col)+1, g.TotalCells()-1)
	g.revealThrough(target)
	g.moveTo(g.PosAt(target))
	return true
}

// AdvanceRow reveals the entire next row and moves to its first column. At
// the last row it stays on that row.
func (g *Grid) AdvanceRow() bool {
	if g.IsEmpty() {
		return false
	}
	nextRow := min(g.cursor.Row+1, g.TotalRows()-1)
	g.revealThrough(g.Index(nextRow, g.TotalCols()-1))
	g.moveTo(Pos{Row: nextRow, Col: 0})
	return true
}

// Retreat moves to the previous cell in row-major order when it is revealed.
// At the first cell there is nowhere to go and it reports false.
func (g *Grid) Retreat() bool {
	if g.IsEmpty() {
		return false
	}
	prev := max(g.Index(g.cursor.Row, g.cursor.Col)-1, 0)
	return g.retreatTo(prev, g.PosAt(prev))
}

// RetreatRow moves one row up, keeping the column, when that cell is
// revealed. On the header row it reports false.
func (g *Grid) RetreatRow() bool {
	if g.IsEmpty() {
		return false
	}
	dst := Pos{Row: max(g.cursor.Row-1, 0), Col: g.cursor.Col}
	return g.retreatTo(g.Index(dst.Row, dst.Col), dst)
}

func (g *Grid) retreatTo(index int, dst Pos) bool {
	if index >= g.revealed || dst == g.cursor {
		return false
	}
	g.moveTo(dst)
	return true
}

// revealThrough grows the frontier to include index, clamped to the cell
// count. It never shrinks.
func (g *Grid) revealThrough(index int) {
	next := min(max(g.revealed, index+1), g.TotalCells())
	if next != g.revealed {
		g.revealed = next
		g.version++
	}
}

func (g *Grid) moveTo(p Pos) {
	p = g.clamp(p)
	if p != g.cursor {
		g.cursor = p
		g.version++
	}
}
