package puzzle

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanPlace(t *testing.T) {
	line5 := Catalog[catalogIndex(t, "line5-h")]
	square := Catalog[catalogIndex(t, "square3")]

	var g Grid

	tests := []struct {
		name     string
		shape    *Shape
		row, col int
		want     bool
	}{
		{"line5 fits on empty board", line5, 3, 0, true},
		{"line5 at right edge", line5, 3, 3, true},
		{"line5 past right edge", line5, 3, 4, false},
		{"square3 at bottom corner", square, 5, 5, true},
		{"square3 past bottom", square, 6, 5, false},
		{"negative anchor", line5, -1, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CanPlace(&g, tt.shape, tt.row, tt.col))
		})
	}
}

func TestCanPlaceRejectsOverlap(t *testing.T) {
	dot := Catalog[catalogIndex(t, "dot")]
	var g Grid
	g.SetColor(4, 4, ColorRed)

	assert.False(t, CanPlace(&g, dot, 4, 4))
	assert.True(t, CanPlace(&g, dot, 4, 5))

	// One occupied cell anywhere under the shape is enough.
	sq := Catalog[catalogIndex(t, "square2")]
	assert.False(t, CanPlace(&g, sq, 3, 3))
	assert.False(t, CanPlace(&g, sq, 4, 4))
	assert.True(t, CanPlace(&g, sq, 5, 5))
}

func TestCanPlaceDoesNotMutate(t *testing.T) {
	line3 := Catalog[catalogIndex(t, "line3-h")]
	var g Grid
	CanPlace(&g, line3, 0, 0)
	for row := 0; row < GridSize; row++ {
		for col := 0; col < GridSize; col++ {
			assert.Equal(t, ColorNone, g.At(row, col))
		}
	}
}
