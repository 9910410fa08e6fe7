package grid

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r2"
)

// Coord labels a grid cell: X is the column, Y the row. Y grows southwards.
type Coord struct {
	X, Y int
}

// String renders the coordinate as "(x, y)".
func (c Coord) String() string { return fmt.Sprintf("(%d, %d)", c.X, c.Y) }

// Vec returns the cell centre as a plane vector.
func (c Coord) Vec() r2.Vec { return r2.Vec{X: float64(c.X), Y: float64(c.Y)} }

// Add returns c shifted by d.
func (c Coord) Add(d Coord) Coord { return Coord{c.X + d.X, c.Y + d.Y} }

// Compass neighbours.
func (c Coord) N() Coord  { return Coord{c.X, c.Y - 1} }
func (c Coord) NE() Coord { return Coord{c.X + 1, c.Y - 1} }
func (c Coord) E() Coord  { return Coord{c.X + 1, c.Y} }
func (c Coord) SE() Coord { return Coord{c.X + 1, c.Y + 1} }
func (c Coord) S() Coord  { return Coord{c.X, c.Y + 1} }
func (c Coord) SW() Coord { return Coord{c.X - 1, c.Y + 1} }
func (c Coord) W() Coord  { return Coord{c.X - 1, c.Y} }
func (c Coord) NW() Coord { return Coord{c.X - 1, c.Y - 1} }

// Delta returns c - other.
func (c Coord) Delta(other Coord) Coord { return Coord{c.X - other.X, c.Y - other.Y} }

// IsDiagonalTo reports whether other is one step away on both axes.
func (c Coord) IsDiagonalTo(other Coord) bool {
	d := c.Delta(other)

	return d.X*d.X+d.Y*d.Y == 2
}

// IsStraightTo reports whether other is one orthogonal step away.
func (c Coord) IsStraightTo(other Coord) bool {
	d := c.Delta(other)

	return d.X*d.X+d.Y*d.Y == 1
}

// IsAdjacentTo reports whether other is a straight or diagonal neighbour.
func (c Coord) IsAdjacentTo(other Coord) bool {
	return c.IsStraightTo(other) || c.IsDiagonalTo(other)
}
