package models

// Grid is the occupied area of a sheet, anchored at A1.
// Every row has the same width.
type Grid [][]Value

// Width returns the number of columns.
func (g Grid) Width() int {
	if len(g) == 0 {
		return 0
	}
	return len(g[0])
}

// At returns the value at a 1-based (col, row) coordinate,
// or Unknown when the coordinate lies outside the grid.
func (g Grid) At(col, row int) Value {
	if row < 1 || row > len(g) {
		return Unknown()
	}
	cells := g[row-1]
	if col < 1 || col > len(cells) {
		return Unknown()
	}
	return cells[col-1]
}
