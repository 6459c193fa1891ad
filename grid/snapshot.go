package grid

// Snapshot is an immutable copy of grid state for hosts that observe changes.
type Snapshot struct {
	Version  uint64
	Columns  []string
	Headers  []string
	Values   [][]string
	Revealed int
	Cursor   Pos
}

func (g *Grid) Snapshot() Snapshot {
	return Snapshot{
		Version:  g.version,
		Columns:  g.Columns(),
		Headers:  g.Headers(),
		Values:   g.Values(),
		Revealed: g.revealed,
		Cursor:   g.cursor,
	}
}
