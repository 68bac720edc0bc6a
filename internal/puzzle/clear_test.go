package puzzle

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func fillRow(g *Grid, row int) {
	for col := 0; col < GridSize; col++ {
		g.SetColor(row, col, ColorRed)
	}
}

func fillCol(g *Grid, col int) {
	for row := 0; row < GridSize; row++ {
		g.SetColor(row, col, ColorBlue)
	}
}

func TestScanFullLinesEmpty(t *testing.T) {
	var g Grid
	scan := scanFullLines(&g)
	assert.Equal(t, 0, scan.Count())
	assert.Empty(t, scan.Cells)
}

func TestScanFullLinesSingleRow(t *testing.T) {
	var g Grid
	fillRow(&g, 3)

	scan := scanFullLines(&g)
	assert.Equal(t, []int{3}, scan.Rows)
	assert.Empty(t, scan.Cols)
	assert.Equal(t, 1, scan.Count())
	assert.Len(t, scan.Cells, GridSize)
	for _, c := range scan.Cells {
		assert.Equal(t, 3, c.Row)
	}
}

func TestScanFullLinesRowAndColIntersect(t *testing.T) {
	var g Grid
	fillRow(&g, 2)
	fillCol(&g, 6)

	scan := scanFullLines(&g)
	assert.Equal(t, []int{2}, scan.Rows)
	assert.Equal(t, []int{6}, scan.Cols)
	// Two lines, but the shared cell (2,6) appears once in the union.
	assert.Equal(t, 2, scan.Count())
	assert.Len(t, scan.Cells, 2*GridSize-1)
}

func TestScanFullLinesMultipleRows(t *testing.T) {
	var g Grid
	fillRow(&g, 0)
	fillRow(&g, 7)

	scan := scanFullLines(&g)
	assert.Equal(t, []int{0, 7}, scan.Rows)
	assert.Equal(t, 2, scan.Count())
	assert.Len(t, scan.Cells, 2*GridSize)
}

func TestScanIgnoresAlmostFullLines(t *testing.T) {
	var g Grid
	fillRow(&g, 4)
	g.SetColor(4, 0, ColorNone)

	scan := scanFullLines(&g)
	assert.Equal(t, 0, scan.Count())
}

func TestLineBonus(t *testing.T) {
	tests := []struct {
		count, streak, want int
	}{
		{1, 1, 80},   // first clear: base per line, no multiplier
		{2, 1, 160},  // two lines at once
		{1, 2, 160},  // second consecutive clear doubles
		{1, 3, 240},  // third triples
		{2, 2, 320},  // two lines on a double streak
		{1, 0, 80},   // streak floor is 1
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, lineBonus(tt.count, tt.streak),
			"count=%d streak=%d", tt.count, tt.streak)
	}
}
