package core

import (
	"fmt"
	"strings"
)

// ShapeID identifies a shape in the catalog. The catalog is closed: every
// valid ShapeID is below ShapeCount.
type ShapeID uint8

const (
	ShapeSingle ShapeID = iota

	// Straight bars
	ShapeDominoH
	ShapeDominoV
	ShapeTrominoH
	ShapeTrominoV
	ShapeBar4H
	ShapeBar4V
	ShapeBar5H
	ShapeBar5V

	// Solid blocks
	ShapeSquare2
	ShapeRect3x2
	ShapeRect2x3
	ShapeSquare3

	// L and J
	ShapeLFlat
	ShapeJFlat
	ShapeLUp
	ShapeJUp

	// S and Z
	ShapeZFlat
	ShapeSFlat
	ShapeZUp
	ShapeSUp

	// T
	ShapeTUp
	ShapeTDown
	ShapeTRight
	ShapeTLeft

	ShapeCount // Number of shapes; not a valid ID
)

// shapeDef is the authored form of a shape. Patterns use '#' for a filled
// cell and '.' for an empty one, one row per line.
type shapeDef struct {
	name    string
	pattern string
}

var shapeDefs = [ShapeCount]shapeDef{
	ShapeSingle: {"single", `#`},

	ShapeDominoH:  {"domino-h", `##`},
	ShapeDominoV:  {"domino-v", "#\n#"},
	ShapeTrominoH: {"tromino-h", `###`},
	ShapeTrominoV: {"tromino-v", "#\n#\n#"},
	ShapeBar4H:    {"bar4-h", `####`},
	ShapeBar4V:    {"bar4-v", "#\n#\n#\n#"},
	ShapeBar5H:    {"bar5-h", `#####`},
	ShapeBar5V:    {"bar5-v", "#\n#\n#\n#\n#"},

	ShapeSquare2: {"square2", `
##
##`},
	ShapeRect3x2: {"rect3x2", `
###
###`},
	ShapeRect2x3: {"rect2x3", `
##
##
##`},
	ShapeSquare3: {"square3", `
###
###
###`},

	ShapeLFlat: {"l-flat", `
..#
###`},
	ShapeJFlat: {"j-flat", `
#..
###`},
	ShapeLUp: {"l-up", `
#.
#.
##`},
	ShapeJUp: {"j-up", `
##
#.
#.`},

	ShapeZFlat: {"z-flat", `
##.
.##`},
	ShapeSFlat: {"s-flat", `
.##
##.`},
	ShapeZUp: {"z-up", `
.#
##
#.`},
	ShapeSUp: {"s-up", `
#.
##
.#`},

	ShapeTUp: {"t-up", `
.#.
###`},
	ShapeTDown: {"t-down", `
###
.#.`},
	ShapeTRight: {"t-right", `
#.
##
#.`},
	ShapeTLeft: {"t-left", `
.#
##
.#`},
}

// catalog holds the resolved, normalized offsets for every shape.
// It is built once in init and never modified.
var catalog [ShapeCount][]Point

func init() {
	for id := ShapeID(0); id < ShapeCount; id++ {
		def := shapeDefs[id]
		if def.name == "" {
			panic(fmt.Sprintf("core: shape %d has no definition", id))
		}
		catalog[id] = mustParse(def.name, def.pattern)
	}
}

// mustParse resolves a pattern into offsets normalized so that the minimum
// column and minimum row are both zero. Offsets are ordered row by row.
func mustParse(name, pattern string) []Point {
	var points []Point
	lines := strings.Split(strings.Trim(pattern, "\n"), "\n")
	for y, line := range lines {
		for x, r := range strings.TrimRight(line, " \t") {
			switch r {
			case '#':
				points = append(points, P(x, y))
			case '.', ' ':
			default:
				panic(fmt.Sprintf("core: shape %s: unexpected %q in pattern", name, r))
			}
		}
	}
	if len(points) == 0 {
		panic(fmt.Sprintf("core: shape %s: empty pattern", name))
	}
	return normalize(points)
}

// normalize shifts points so that min X and min Y are zero.
func normalize(points []Point) []Point {
	minX, minY := points[0].X, points[0].Y
	for _, p := range points[1:] {
		minX = min(minX, p.X)
		minY = min(minY, p.Y)
	}
	out := make([]Point, len(points))
	for i, p := range points {
		out[i] = P(p.X-minX, p.Y-minY)
	}
	return out
}

// Valid reports whether the ID names a shape in the catalog.
func (id ShapeID) Valid() bool {
	return id < ShapeCount
}

// String returns the shape name.
func (id ShapeID) String() string {
	if !id.Valid() {
		return fmt.Sprintf("ShapeID(%d)", uint8(id))
	}
	return shapeDefs[id].name
}

// Offsets returns the shape's relative cell offsets.
// The returned slice is a copy; the catalog itself is immutable.
// Panics on an ID outside the catalog.
func Offsets(id ShapeID) []Point {
	out := make([]Point, len(offsets(id)))
	copy(out, offsets(id))
	return out
}

// offsets returns the catalog slice without copying. Callers must not modify it.
func offsets(id ShapeID) []Point {
	if !id.Valid() {
		panic(fmt.Sprintf("core: invalid shape %d", uint8(id)))
	}
	return catalog[id]
}

// CellCount returns the number of cells in the shape.
func CellCount(id ShapeID) int {
	return len(offsets(id))
}

// Bounds returns the width and height of the shape's bounding box.
func Bounds(id ShapeID) (w, h int) {
	for _, p := range offsets(id) {
		w = max(w, p.X+1)
		h = max(h, p.Y+1)
	}
	return w, h
}

// Footprint returns the points the shape would cover with its origin at
// anchor. Points are not clipped to any board.
func Footprint(id ShapeID, anchor Point) []Point {
	offs := offsets(id)
	out := make([]Point, len(offs))
	for i, off := range offs {
		out[i] = anchor.Add(off)
	}
	return out
}

// Shapes returns every shape ID in catalog order.
func Shapes() []ShapeID {
	ids := make([]ShapeID, ShapeCount)
	for i := range ids {
		ids[i] = ShapeID(i)
	}
	return ids
}

// Pattern renders the shape back to '#'/'.' rows, for display and debugging.
func Pattern(id ShapeID) string {
	w, h := Bounds(id)
	rows := make([][]byte, h)
	for y := range rows {
		rows[y] = []byte(strings.Repeat(".", w))
	}
	for _, p := range offsets(id) {
		rows[p.Y][p.X] = '#'
	}
	lines := make([]string, h)
	for y, row := range rows {
		lines[y] = string(row)
	}
	return strings.Join(lines, "\n")
}

// MaxShapeExtent returns the longest side of any shape in the catalog.
func MaxShapeExtent() int {
	extent := 0
	for id := ShapeID(0); id < ShapeCount; id++ {
		w, h := Bounds(id)
		extent = max(extent, w, h)
	}
	return extent
}
