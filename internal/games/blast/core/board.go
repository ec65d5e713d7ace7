package core

import (
	"fmt"
	"strings"
)

// Board is a square occupancy grid. Cells are stored in row-major order:
// index = row*size + col.
//
// Board exposes only read access outside this package; cells change through
// Session.CommitPlacement and the line clearing that follows it.
type Board struct {
	size  int
	cells []bool
}

// NewBoard creates an empty board of the given size.
func NewBoard(size int) Board {
	return Board{
		size:  size,
		cells: make([]bool, size*size),
	}
}

// Size returns the board dimension N.
func (b Board) Size() int {
	return b.size
}

// Coord returns the coordinate for (col, row) and whether it lies on the board.
func (b Board) Coord(col, row int) (Coord, bool) {
	if col < 0 || row < 0 || col >= b.size || row >= b.size {
		return Coord{}, false
	}
	return Coord{col: col, row: row}, true
}

// CoordAt converts a Point to a Coord if it lies on the board.
func (b Board) CoordAt(p Point) (Coord, bool) {
	return b.Coord(p.X, p.Y)
}

// index converts a coordinate to a flat array index.
// A Coord minted for a larger board is a caller bug.
func (b Board) index(c Coord) int {
	if c.col >= b.size || c.row >= b.size {
		panic(fmt.Sprintf("core: coordinate %v outside %dx%d board", c, b.size, b.size))
	}
	return c.row*b.size + c.col
}

// IsFilled reports whether the cell is occupied.
func (b Board) IsFilled(c Coord) bool {
	return b.cells[b.index(c)]
}

// occupy marks a cell filled. Legality must already have been checked.
func (b Board) occupy(c Coord) {
	b.cells[b.index(c)] = true
}

// clear marks a cell empty.
func (b Board) clear(c Coord) {
	b.cells[b.index(c)] = false
}

// RowFull reports whether every cell of the row is filled.
func (b Board) RowFull(row int) bool {
	start := row * b.size
	for _, filled := range b.cells[start : start+b.size] {
		if !filled {
			return false
		}
	}
	return true
}

// ColFull reports whether every cell of the column is filled.
func (b Board) ColFull(col int) bool {
	for row := 0; row < b.size; row++ {
		if !b.cells[row*b.size+col] {
			return false
		}
	}
	return true
}

// FilledCount returns the number of occupied cells.
func (b Board) FilledCount() int {
	count := 0
	for _, filled := range b.cells {
		if filled {
			count++
		}
	}
	return count
}

// Clone returns a deep copy of the board.
func (b Board) Clone() Board {
	cells := make([]bool, len(b.cells))
	copy(cells, b.cells)
	return Board{size: b.size, cells: cells}
}

// Equal returns true if two boards have the same size and contents.
func (b Board) Equal(other Board) bool {
	if b.size != other.size {
		return false
	}
	for i, filled := range b.cells {
		if filled != other.cells[i] {
			return false
		}
	}
	return true
}

// String renders the board as rows of '#' (filled) and '.' (empty).
func (b Board) String() string {
	var sb strings.Builder
	sb.Grow(b.size*b.size + b.size)
	for row := 0; row < b.size; row++ {
		if row > 0 {
			sb.WriteByte('\n')
		}
		for col := 0; col < b.size; col++ {
			if b.cells[row*b.size+col] {
				sb.WriteByte('#')
			} else {
				sb.WriteByte('.')
			}
		}
	}
	return sb.String()
}

// CanPlace checks whether the shape fits with its origin at anchor.
// On success it returns every absolute coordinate the shape would occupy,
// in catalog order. Off-board and overlapping placements both yield false.
func (b Board) CanPlace(id ShapeID, anchor Coord) ([]Coord, bool) {
	offs := offsets(id)
	cells := make([]Coord, 0, len(offs))
	for _, off := range offs {
		c, ok := b.Coord(anchor.col+off.X, anchor.row+off.Y)
		if !ok || b.IsFilled(c) {
			return nil, false
		}
		cells = append(cells, c)
	}
	return cells, true
}
