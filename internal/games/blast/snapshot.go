package blast

import "github.com/vovakirdan/gridblast/internal/games/blast/core"

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying     GameStateType = "playing"
	StatePaused      GameStateType = "paused"
	StatePausedSmall GameStateType = "paused_small_window"
)

// Snapshot captures the adapter and session state for determinism testing.
type Snapshot struct {
	Tick      uint64
	Variant   string
	CursorCol int
	CursorRow int
	Selected  int
	Notice    Notice
	State     GameStateType
	Session   core.Snapshot
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.tooSmall:
		state = StatePausedSmall
	case g.paused:
		state = StatePaused
	}

	return Snapshot{
		Tick:      g.tick,
		Variant:   string(g.variant),
		CursorCol: g.cursorCol,
		CursorRow: g.cursorRow,
		Selected:  g.selected,
		Notice:    g.notice,
		State:     state,
		Session:   g.session.Snapshot(),
	}
}
