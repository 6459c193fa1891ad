package table

import "github.com/charmbracelet/lipgloss"

// Style controls the table's rendering. Styles are applied to text already
// fitted to the cell width, so they should not add padding or borders.
type Style struct {
	Header      lipgloss.Style
	Cell        lipgloss.Style
	IDCell      lipgloss.Style
	Active      lipgloss.Style
	Placeholder lipgloss.Style
	Separator   lipgloss.Style
}

func DefaultStyle() Style {
	return Style{
		Header:      lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15")),
		Cell:        lipgloss.NewStyle(),
		IDCell:      lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Italic(true),
		Active:      lipgloss.NewStyle().Background(lipgloss.Color("237")),
		Placeholder: lipgloss.NewStyle().Faint(true),
		Separator:   lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
	}
}
