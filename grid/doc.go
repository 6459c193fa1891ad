// Package grid implements the pure state model behind a progressively
// revealed table: column derivation, header/body values, the reveal frontier
// and the cursor.
//
// Coordinates are 0-based (Row, Col). Row 0 is the header row; rows 1..N are
// body rows. Cells are totally ordered by their row-major linear index
// Row*TotalCols+Col, and a cell is revealed iff its index is below Revealed.
package grid
