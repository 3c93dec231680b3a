// Package core provides the small, dependency-free building blocks shared by
// the game logic and the terminal platform: the stopwatch, its clock,
// screen geometry for hit-testing and semantic input actions.
package core

// Rect is an axis-aligned area in terminal cells.
type Rect struct {
	X, Y int // Top-left corner
	W, H int // Width and height
}

// NewRect creates a rectangle with the given position and size.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate just past the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate just past the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Contains reports whether the cell (x, y) lies inside the rectangle.
// Right and bottom edges are exclusive.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// GridLayout places equally sized cells row-major from Origin.
type GridLayout struct {
	Origin       Rect
	Cols         int
	CellW, CellH int
	GapX, GapY   int
}

// Cell returns the rectangle of cell index.
func (g GridLayout) Cell(index int) Rect {
	cols := g.Cols
	if cols <= 0 {
		cols = 1
	}
	col := index % cols
	row := index / cols
	return Rect{
		X: g.Origin.X + col*(g.CellW+g.GapX),
		Y: g.Origin.Y + row*(g.CellH+g.GapY),
		W: g.CellW,
		H: g.CellH,
	}
}

// Size returns the width and height covered by n cells.
func (g GridLayout) Size(n int) (w, h int) {
	if n <= 0 {
		return 0, 0
	}
	cols := max(g.Cols, 1)
	rows := (n + cols - 1) / cols
	if n < cols {
		cols = n
	}
	return cols*g.CellW + (cols-1)*g.GapX, rows*g.CellH + (rows-1)*g.GapY
}

// IndexAt returns the index of the cell among the first n containing
// (x, y), or -1 when the point falls on a gap or outside the grid.
func (g GridLayout) IndexAt(x, y, n int) int {
	for i := 0; i < n; i++ {
		if g.Cell(i).Contains(x, y) {
			return i
		}
	}
	return -1
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}
