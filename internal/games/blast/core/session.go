package core

import (
	"errors"
	"fmt"
)

const (
	// DefaultBoardSize is the classic 8x8 board.
	DefaultBoardSize = 8

	// MinBoardSize is the smallest board that fits every catalog shape.
	MinBoardSize = 5

	// MaxBoardSize bounds the board so size*size cells stay small.
	MaxBoardSize = 32
)

// ErrBoardSize is returned when a session is created with a board too small
// for the catalog or larger than MaxBoardSize.
var ErrBoardSize = errors.New("board size out of range")

// ValidBoardSize reports whether NewSession accepts size.
func ValidBoardSize(size int) bool {
	return size >= MinBoardSize && size <= MaxBoardSize
}

// Session is one game: a board, the piece queue and the score.
// CommitPlacement is its only mutating operation.
//
// A Session is not safe for concurrent use; the host serializes calls.
type Session struct {
	board     Board
	queue     Queue
	score     int
	src       RandomSource
	lastClear LineClear

	moves        int // Successful commits
	linesCleared int // Total rows + columns cleared
	refills      int // Queue refills after the initial draw
}

// NewSession starts a game on an empty board of the given size with three
// random unused pieces and a score of zero.
func NewSession(size int, src RandomSource) (*Session, error) {
	if !ValidBoardSize(size) {
		return nil, fmt.Errorf("core: new session with size %d (want %d..%d): %w", size, MinBoardSize, MaxBoardSize, ErrBoardSize)
	}
	if src == nil {
		return nil, errors.New("core: new session: nil random source")
	}
	return &Session{
		board: NewBoard(size),
		queue: newQueue(src),
		src:   src,
	}, nil
}

// Size returns the board dimension.
func (s *Session) Size() int {
	return s.board.Size()
}

// Coord returns the board coordinate for (col, row) if it is on the board.
func (s *Session) Coord(col, row int) (Coord, bool) {
	return s.board.Coord(col, row)
}

// IsFilled reports whether a board cell is occupied.
func (s *Session) IsFilled(c Coord) bool {
	return s.board.IsFilled(c)
}

// Board returns a copy of the current board.
func (s *Session) Board() Board {
	return s.board.Clone()
}

// Queue returns the current piece queue.
func (s *Session) Queue() Queue {
	return s.queue
}

// Score returns the current score.
func (s *Session) Score() int {
	return s.score
}

// Moves returns the number of successful commits.
func (s *Session) Moves() int {
	return s.moves
}

// LinesCleared returns the total rows plus columns cleared so far.
func (s *Session) LinesCleared() int {
	return s.linesCleared
}

// LastClear returns the lines cleared by the most recent successful commit.
func (s *Session) LastClear() LineClear {
	return s.lastClear
}

// Preview returns the cells the piece in slot would occupy at anchor, or
// false if the slot is unavailable or the placement is illegal.
func (s *Session) Preview(slot int, anchor Coord) ([]Coord, bool) {
	if !s.queue.Available(slot) {
		return nil, false
	}
	return s.board.CanPlace(s.queue[slot].Shape, anchor)
}

// CommitPlacement places the piece in slot with its origin at anchor.
// It returns false, leaving the session untouched, if the slot is out of
// range or used, or if the piece does not fit. On success it fills the
// cells, marks the slot used, clears full lines, adds their score and
// refills the queue once all slots are used.
func (s *Session) CommitPlacement(slot int, anchor Coord) bool {
	if !s.queue.Available(slot) {
		return false
	}

	// Revalidate: a preview may have been taken against an older board.
	cells, ok := s.board.CanPlace(s.queue[slot].Shape, anchor)
	if !ok {
		return false
	}

	for _, c := range cells {
		s.board.occupy(c)
	}
	s.queue[slot].Used = true

	s.lastClear = s.board.clearLines()
	s.score += s.lastClear.Score(s.board.Size())
	s.linesCleared += s.lastClear.Lines()
	s.moves++

	if s.queue.AllUsed() {
		s.queue = newQueue(s.src)
		s.refills++
	}

	return true
}
