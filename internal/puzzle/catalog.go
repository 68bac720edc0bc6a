// internal/puzzle/catalog.go
//
// Fixed piece catalog for the block puzzle.
// Defines:
//   - Color: the tag a filled cell carries (used only for display).
//   - Offset: a shape cell relative to the shape's anchor.
//   - Shape: a named, immutable arrangement of offsets plus a color.
//   - Catalog: the full set of 26 shapes built once at process start.
//
// Shapes are stateless and shared by reference; the tray and the grid only
// ever point into this table, no game instance owns or copies a shape.

package puzzle

import "fmt"

// Color tags a filled grid cell. The empty string means the cell is empty.
type Color string

const (
	ColorNone   Color = ""
	ColorRed    Color = "red"
	ColorOrange Color = "orange"
	ColorYellow Color = "yellow"
	ColorGreen  Color = "green"
	ColorTeal   Color = "teal"
	ColorBlue   Color = "blue"
	ColorPurple Color = "purple"
	ColorPink   Color = "pink"
)

// Offset is a shape cell position relative to the shape's anchor.
// The anchor is the top-left corner of the shape's bounding box, so offsets
// are always non-negative.
type Offset struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Shape is a named arrangement of cells drawn from the fixed catalog.
type Shape struct {
	Name  string   `json:"name"`
	Color Color    `json:"color"`
	Cells []Offset `json:"cells"`
}

// CellCount returns the number of cells the shape occupies.
func (s *Shape) CellCount() int { return len(s.Cells) }

// Catalog is the fixed, shared set of placeable shapes.
// Built once at init and never mutated afterwards.
var Catalog = buildCatalog()

// newShape validates and constructs a catalog entry.
// A shape with no cells is a defect in the table itself, not a runtime
// condition, so it panics.
func newShape(name string, color Color, cells ...Offset) *Shape {
	if len(cells) == 0 {
		panic(fmt.Sprintf("puzzle: shape %q has no cells", name))
	}
	return &Shape{Name: name, Color: color, Cells: cells}
}

// line builds a 1×n (or n×1 if vertical) shape.
func line(name string, color Color, n int, vertical bool) *Shape {
	cells := make([]Offset, n)
	for i := 0; i < n; i++ {
		if vertical {
			cells[i] = Offset{Row: i}
		} else {
			cells[i] = Offset{Col: i}
		}
	}
	return newShape(name, color, cells...)
}

// rect builds a solid rows×cols shape.
func rect(name string, color Color, rows, cols int) *Shape {
	cells := make([]Offset, 0, rows*cols)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			cells = append(cells, Offset{Row: r, Col: c})
		}
	}
	return newShape(name, color, cells...)
}

func buildCatalog() []*Shape {
	return []*Shape{
		newShape("dot", ColorYellow, Offset{0, 0}),

		line("line2-h", ColorOrange, 2, false),
		line("line2-v", ColorOrange, 2, true),
		line("line3-h", ColorRed, 3, false),
		line("line3-v", ColorRed, 3, true),
		line("line4-h", ColorTeal, 4, false),
		line("line4-v", ColorTeal, 4, true),
		line("line5-h", ColorBlue, 5, false),
		line("line5-v", ColorBlue, 5, true),

		rect("square2", ColorGreen, 2, 2),
		rect("square3", ColorPurple, 3, 3),
		rect("rect2x3", ColorPink, 2, 3),
		rect("rect3x2", ColorPink, 3, 2),

		// 3-cell corners, one per rotation.
		newShape("corner-nw", ColorGreen, Offset{0, 0}, Offset{0, 1}, Offset{1, 0}),
		newShape("corner-ne", ColorGreen, Offset{0, 0}, Offset{0, 1}, Offset{1, 1}),
		newShape("corner-sw", ColorGreen, Offset{0, 0}, Offset{1, 0}, Offset{1, 1}),
		newShape("corner-se", ColorGreen, Offset{0, 1}, Offset{1, 0}, Offset{1, 1}),

		// 5-cell big corners spanning a 3×3 box.
		newShape("bigcorner-nw", ColorBlue, Offset{0, 0}, Offset{0, 1}, Offset{0, 2}, Offset{1, 0}, Offset{2, 0}),
		newShape("bigcorner-ne", ColorBlue, Offset{0, 0}, Offset{0, 1}, Offset{0, 2}, Offset{1, 2}, Offset{2, 2}),
		newShape("bigcorner-sw", ColorBlue, Offset{0, 0}, Offset{1, 0}, Offset{2, 0}, Offset{2, 1}, Offset{2, 2}),
		newShape("bigcorner-se", ColorBlue, Offset{0, 2}, Offset{1, 2}, Offset{2, 0}, Offset{2, 1}, Offset{2, 2}),

		// T pieces, one per rotation.
		newShape("tee-up", ColorRed, Offset{0, 1}, Offset{1, 0}, Offset{1, 1}, Offset{1, 2}),
		newShape("tee-down", ColorRed, Offset{0, 0}, Offset{0, 1}, Offset{0, 2}, Offset{1, 1}),
		newShape("tee-left", ColorRed, Offset{0, 1}, Offset{1, 0}, Offset{1, 1}, Offset{2, 1}),
		newShape("tee-right", ColorRed, Offset{0, 0}, Offset{1, 0}, Offset{1, 1}, Offset{2, 0}),

		newShape("plus", ColorPurple, Offset{0, 1}, Offset{1, 0}, Offset{1, 1}, Offset{1, 2}, Offset{2, 1}),
	}
}
