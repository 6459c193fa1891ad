package table

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the navigation and clipboard bindings. Keys not bound here
// are forwarded to the active cell's text input.
type KeyMap struct {
	Advance, AdvanceRow key.Binding
	Retreat, RetreatRow key.Binding
	CopyCell, PasteCell key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Advance:    key.NewBinding(key.WithKeys("right", "tab"), key.WithHelp("→", "reveal next cell")),
		AdvanceRow: key.NewBinding(key.WithKeys("down", "enter"), key.WithHelp("↓", "reveal next row")),
		Retreat:    key.NewBinding(key.WithKeys("left", "shift+tab"), key.WithHelp("←", "previous cell")),
		RetreatRow: key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "row above")),

		CopyCell:  key.NewBinding(key.WithKeys("ctrl+y"), key.WithHelp("ctrl+y", "copy cell")),
		PasteCell: key.NewBinding(key.WithKeys("ctrl+v"), key.WithHelp("ctrl+v", "paste into cell")),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Advance, k.AdvanceRow, k.Retreat, k.RetreatRow}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Advance, k.AdvanceRow, k.Retreat, k.RetreatRow},
		{k.CopyCell, k.PasteCell},
	}
}

func isZeroKeyMap(k KeyMap) bool {
	for _, b := range []key.Binding{k.Advance, k.AdvanceRow, k.Retreat, k.RetreatRow, k.CopyCell, k.PasteCell} {
		if len(b.Keys()) > 0 {
			return false
		}
	}
	return true
}
