package types

import "time"

// Grid represents the game grid dimensions
type Grid struct {
	Width  int
	Height int
}

// NewSquareGrid returns a grid with the same number of cells on both axes.
func NewSquareGrid(extent int) Grid {
	return Grid{Width: extent, Height: extent}
}

// Wrap maps a position that stepped off one edge back onto the opposite edge.
func (g Grid) Wrap(p Point) Point {
	return Point{
		X: (p.X + g.Width) % g.Width,
		Y: (p.Y + g.Height) % g.Height,
	}
}

// Contains reports whether p lies on the grid.
func (g Grid) Contains(p Point) bool {
	return p.X >= 0 && p.X < g.Width && p.Y >= 0 && p.Y < g.Height
}

// IsInterior reports whether p lies on the grid but off the outermost ring of cells.
func (g Grid) IsInterior(p Point) bool {
	return p.X >= 1 && p.X <= g.Width-2 && p.Y >= 1 && p.Y <= g.Height-2
}

// InteriorCells is the number of cells food can be placed on.
func (g Grid) InteriorCells() int {
	if g.Width < 3 || g.Height < 3 {
		return 0
	}
	return (g.Width - 2) * (g.Height - 2)
}

type Point struct {
	X, Y int
}

// Add returns p moved by the offset d.
func (p Point) Add(d Point) Point {
	return Point{X: p.X + d.X, Y: p.Y + d.Y}
}

// Game constants
const (
	GridExtent         = 30                     // Cells per side
	CellPixels         = 20                     // Pixel size of one cell in the window
	SpecialGrowthExtra = 3                      // Extra tail segments appended after special food
	BaseTickInterval   = 150 * time.Millisecond // Time between ticks without acceleration
	InitialLength      = 3
)

// InitialHead is where every new game places the head; the body trails to the left.
var InitialHead = Point{X: 5, Y: 5}

// NoFood marks that no food is on the board. It lies off every grid.
var NoFood = Point{X: -1, Y: -1}
