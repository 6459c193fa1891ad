package grid

// Pos addresses a grid cell. Row 0 is the header row.
type Pos struct {
	Row int
	Col int
}

// Command is a directional navigation input.
type Command uint8

const (
	// CmdAdvance reveals and moves to the next cell in row-major order.
	CmdAdvance Command = iota
	// CmdAdvanceRow reveals the whole next row and moves to its first cell.
	CmdAdvanceRow
	// CmdRetreat moves to the previous cell if it is revealed.
	CmdRetreat
	// CmdRetreatRow moves one row up in the same column if that cell is revealed.
	CmdRetreatRow
)

func (c Command) String() string {
	switch c {
	case CmdAdvance:
		return "advance"
	case CmdAdvanceRow:
		return "advance-row"
	case CmdRetreat:
		return "retreat"
	case CmdRetreatRow:
		return "retreat-row"
	default:
		return "unknown"
	}
}

func clampInt(v, min, max int) int {
	if max < min {
		return min
	}
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
