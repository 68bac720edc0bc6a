// internal/puzzle/grid.go
//
// The 8×8 board. Cells are stored row-major in a fixed array; a cell is
// either empty (ColorNone) or holds the color of the shape that filled it.
// Out-of-range indices are a caller bug and panic immediately; placement
// legality is checked by CanPlace before any mutation.

package puzzle

import "fmt"

// GridSize is the board dimension. The board is always GridSize×GridSize.
const GridSize = 8

// Cell is an absolute board coordinate.
type Cell struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Grid is the fixed-size board. The zero value is an empty board.
type Grid struct {
	cells [GridSize * GridSize]Color
}

func (g *Grid) index(row, col int) int {
	if row < 0 || row >= GridSize || col < 0 || col >= GridSize {
		panic(fmt.Sprintf("puzzle: cell (%d,%d) out of range", row, col))
	}
	return row*GridSize + col
}

// At returns the color at (row, col); ColorNone means empty.
func (g *Grid) At(row, col int) Color {
	return g.cells[g.index(row, col)]
}

// SetColor fills the cell at (row, col).
func (g *Grid) SetColor(row, col int, c Color) {
	g.cells[g.index(row, col)] = c
}

// IsRowFull reports whether every cell in the row is filled.
func (g *Grid) IsRowFull(row int) bool {
	for col := 0; col < GridSize; col++ {
		if g.At(row, col) == ColorNone {
			return false
		}
	}
	return true
}

// IsColFull reports whether every cell in the column is filled.
func (g *Grid) IsColFull(col int) bool {
	for row := 0; row < GridSize; row++ {
		if g.At(row, col) == ColorNone {
			return false
		}
	}
	return true
}

// ClearCells empties every cell in the given set.
func (g *Grid) ClearCells(cells []Cell) {
	for _, c := range cells {
		g.cells[g.index(c.Row, c.Col)] = ColorNone
	}
}

// Rows returns a copy of the board as a 2D array, for snapshots.
func (g *Grid) Rows() [GridSize][GridSize]Color {
	var out [GridSize][GridSize]Color
	for row := 0; row < GridSize; row++ {
		for col := 0; col < GridSize; col++ {
			out[row][col] = g.cells[row*GridSize+col]
		}
	}
	return out
}
