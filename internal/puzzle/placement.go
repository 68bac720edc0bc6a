// internal/puzzle/placement.go
//
// Placement legality. CanPlace is the single gate in front of every grid
// mutation: a shape may be placed iff all of its cells land in bounds on
// currently empty cells.

package puzzle

// CanPlace reports whether shape s can be placed with its anchor at
// (row, col). Pure: the grid is never modified.
func CanPlace(g *Grid, s *Shape, row, col int) bool {
	if s.CellCount() == 0 {
		panic("puzzle: shape has no cells")
	}
	for _, off := range s.Cells {
		r, c := row+off.Row, col+off.Col
		if r < 0 || r >= GridSize || c < 0 || c >= GridSize {
			return false
		}
		if g.At(r, c) != ColorNone {
			return false
		}
	}
	return true
}
