package core

// LineClear describes the lines removed after one placement.
type LineClear struct {
	Rows []int // Indices of cleared rows, ascending
	Cols []int // Indices of cleared columns, ascending
}

// Lines returns the total number of cleared lines. A cell shared by a
// cleared row and a cleared column counts towards both.
func (lc LineClear) Lines() int {
	return len(lc.Rows) + len(lc.Cols)
}

// Score returns the points awarded on a board of the given size.
func (lc LineClear) Score(size int) int {
	return size * lc.Lines()
}

// Empty reports whether no line was cleared.
func (lc LineClear) Empty() bool {
	return lc.Lines() == 0
}

// FullLines finds every complete row and column without modifying the board.
func (b Board) FullLines() LineClear {
	var lc LineClear
	for row := 0; row < b.size; row++ {
		if b.RowFull(row) {
			lc.Rows = append(lc.Rows, row)
		}
	}
	for col := 0; col < b.size; col++ {
		if b.ColFull(col) {
			lc.Cols = append(lc.Cols, col)
		}
	}
	return lc
}

// clearLines detects all full lines against the current state first and
// only then empties them, so a cleared row never hides a full column that
// crosses it.
func (b Board) clearLines() LineClear {
	lc := b.FullLines()

	for _, row := range lc.Rows {
		for col := 0; col < b.size; col++ {
			b.clear(Coord{col: col, row: row})
		}
	}
	for _, col := range lc.Cols {
		for row := 0; row < b.size; row++ {
			b.clear(Coord{col: col, row: row})
		}
	}

	return lc
}
