package puzzle

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGridSetAndAt(t *testing.T) {
	var g Grid
	assert.Equal(t, ColorNone, g.At(3, 4))

	g.SetColor(3, 4, ColorBlue)
	assert.Equal(t, ColorBlue, g.At(3, 4))
	assert.Equal(t, ColorNone, g.At(4, 3))
}

func TestGridOutOfRangePanics(t *testing.T) {
	var g Grid
	for _, c := range []Cell{
		{Row: -1, Col: 0},
		{Row: 0, Col: -1},
		{Row: GridSize, Col: 0},
		{Row: 0, Col: GridSize},
	} {
		c := c
		assert.Panics(t, func() { g.At(c.Row, c.Col) }, "At(%d,%d)", c.Row, c.Col)
		assert.Panics(t, func() { g.SetColor(c.Row, c.Col, ColorRed) }, "SetColor(%d,%d)", c.Row, c.Col)
	}
}

func TestGridRowAndColFull(t *testing.T) {
	var g Grid
	assert.False(t, g.IsRowFull(2))
	assert.False(t, g.IsColFull(5))

	for col := 0; col < GridSize; col++ {
		g.SetColor(2, col, ColorGreen)
	}
	assert.True(t, g.IsRowFull(2))
	assert.False(t, g.IsRowFull(1))

	for row := 0; row < GridSize; row++ {
		g.SetColor(row, 5, ColorTeal)
	}
	assert.True(t, g.IsColFull(5))
	assert.False(t, g.IsColFull(4))

	g.ClearCells([]Cell{{Row: 2, Col: 0}})
	assert.False(t, g.IsRowFull(2))
}

func TestGridClearCells(t *testing.T) {
	var g Grid
	g.SetColor(0, 0, ColorRed)
	g.SetColor(7, 7, ColorRed)

	g.ClearCells([]Cell{{0, 0}, {7, 7}})
	assert.Equal(t, ColorNone, g.At(0, 0))
	assert.Equal(t, ColorNone, g.At(7, 7))
}

func TestGridRowsIsACopy(t *testing.T) {
	var g Grid
	g.SetColor(1, 1, ColorPink)

	rows := g.Rows()
	assert.Equal(t, ColorPink, rows[1][1])

	rows[1][1] = ColorNone
	assert.Equal(t, ColorPink, g.At(1, 1))
}
