// internal/puzzle/clear.go
//
// Line detection and combo scoring.
// After every successful placement the board is scanned once: all full rows
// and all full columns are collected from the same snapshot, so a cell at the
// intersection of a full row and a full column belongs to both lines. The
// union of their cells is the clear set shown to the renderer while the clear
// delay runs.

package puzzle

// clearScan is the result of scanning the board after a placement.
type clearScan struct {
	Rows  []int  // full rows, ascending
	Cols  []int  // full columns, ascending
	Cells []Cell // union of all cells in full rows/columns, row-major
}

// Count returns the number of cleared lines. A row and a column each count
// as one line even where they intersect.
func (c clearScan) Count() int { return len(c.Rows) + len(c.Cols) }

// scanFullLines collects every full row and column of g.
// Rows are evaluated before columns but both against the same board state.
func scanFullLines(g *Grid) clearScan {
	var out clearScan
	var marked [GridSize][GridSize]bool

	for row := 0; row < GridSize; row++ {
		if g.IsRowFull(row) {
			out.Rows = append(out.Rows, row)
			for col := 0; col < GridSize; col++ {
				marked[row][col] = true
			}
		}
	}
	for col := 0; col < GridSize; col++ {
		if g.IsColFull(col) {
			out.Cols = append(out.Cols, col)
			for row := 0; row < GridSize; row++ {
				marked[row][col] = true
			}
		}
	}

	for row := 0; row < GridSize; row++ {
		for col := 0; col < GridSize; col++ {
			if marked[row][col] {
				out.Cells = append(out.Cells, Cell{Row: row, Col: col})
			}
		}
	}
	return out
}

// lineBonus returns the score awarded for clearing count lines with the
// given post-increment streak: count * GridSize * 10, doubled/tripled/... by
// the streak once it exceeds 1.
func lineBonus(count, streak int) int {
	mult := streak
	if mult < 1 {
		mult = 1
	}
	return count * GridSize * 10 * mult
}
