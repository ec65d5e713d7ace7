// Package core provides the puzzle logic for Blast: the shape catalog, the
// board, placement validation, line clearing and the piece queue.
// This package is UI-agnostic and deterministic given a RandomSource.
package core

import "fmt"

// Point is an unbounded grid position. Shape offsets and unclipped
// footprints use it; it may lie outside any board.
type Point struct {
	X int // Column
	Y int // Row
}

// P is a convenience constructor for Point.
func P(x, y int) Point {
	return Point{X: x, Y: y}
}

// Add returns the sum of two points.
func (p Point) Add(other Point) Point {
	return Point{X: p.X + other.X, Y: p.Y + other.Y}
}

// String returns a string representation of the point.
func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Coord is a cell position that is known to lie on a board.
// It can only be obtained from Board.Coord (or Session.Coord), so an
// out-of-range coordinate is unrepresentable.
type Coord struct {
	col int
	row int
}

// Col returns the column (x) of the coordinate.
func (c Coord) Col() int {
	return c.col
}

// Row returns the row (y) of the coordinate.
func (c Coord) Row() int {
	return c.row
}

// Point converts the coordinate to an unbounded Point.
func (c Coord) Point() Point {
	return Point{X: c.col, Y: c.row}
}

// String returns a string representation of the coordinate.
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.col, c.row)
}

// RandomSource supplies uniform random integers in [0, n).
// *math/rand.Rand satisfies it.
type RandomSource interface {
	Intn(n int) int
}
