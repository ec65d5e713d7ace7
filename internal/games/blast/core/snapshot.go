package core

// Snapshot captures the complete session state for determinism testing and replay.
type Snapshot struct {
	Size         int
	Board        string // Board.String() rendering
	Queue        Queue
	Score        int
	Moves        int
	LinesCleared int
	Refills      int
	LastClear    LineClear
}

// Snapshot returns the current session snapshot.
func (s *Session) Snapshot() Snapshot {
	return Snapshot{
		Size:         s.board.Size(),
		Board:        s.board.String(),
		Queue:        s.queue,
		Score:        s.score,
		Moves:        s.moves,
		LinesCleared: s.linesCleared,
		Refills:      s.refills,
		LastClear:    s.lastClear,
	}
}
