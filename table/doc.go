// Package table provides a Bubble Tea component that renders records as an
// editable grid revealed progressively as the user navigates.
//
// State lives in a grid.Grid. The component owns the render side: a registry
// of textinput widgets for revealed cells, deferred focus transfer, key
// handling and layout. Cells beyond the reveal frontier render as blank
// placeholders; rows whose first cell is hidden are left out entirely.
package table
