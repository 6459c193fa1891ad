package table

import "github.com/iw2rmb/revealgrid/grid"

// ChangeEvent reports grid state after an update that changed it: an edit,
// frontier growth, a cursor move or a structural reset.
type ChangeEvent struct {
	grid.Snapshot

	// Reset is true when the change came from SetRecords.
	Reset bool
}

func buildChangeEvent(g *grid.Grid, reset bool) ChangeEvent {
	return ChangeEvent{Snapshot: g.Snapshot(), Reset: reset}
}
