// Package blast provides the grid-placement puzzle for the platform: pieces
// from a three-slot tray are dropped onto a square board, and full rows and
// columns vanish for points.
package blast

import (
	"math/rand"

	"github.com/vovakirdan/gridblast/internal/config"
	platformcore "github.com/vovakirdan/gridblast/internal/core"
	"github.com/vovakirdan/gridblast/internal/games/blast/core"
	"github.com/vovakirdan/gridblast/internal/registry"
)

// Variant identifies a registered board size.
type Variant string

const (
	VariantClassic Variant = "blast"
	VariantXL      Variant = "blast_xl"
)

// Notice is the one-line status shown under the board.
type Notice int

const (
	NoticeNone Notice = iota
	NoticeNoFit
	NoticeSlotUsed
	NoticeCleared
)

// Game implements registry.Game on top of a core.Session.
type Game struct {
	variant Variant
	rng     *rand.Rand
	session *core.Session
	cfg     config.BlastConfig
	palette config.Palette
	tick    uint64

	// Screen dimensions
	screenW int
	screenH int

	// Selection state
	cursorCol int
	cursorRow int
	selected  int // Tray slot, -1 when none

	paused   bool
	tooSmall bool
	notice   Notice

	// Calculated layout
	boardX int
	boardY int
}

// Package-level configuration shared by every new game.
var activeConfig = config.DefaultBlastConfig()

// SetConfig replaces the configuration used by games reset afterwards.
// Call it before starting any session.
func SetConfig(cfg config.BlastConfig) {
	activeConfig = cfg
}

// ActiveConfig returns the configuration new games will use.
func ActiveConfig() config.BlastConfig {
	return activeConfig
}

func init() {
	registry.Register(string(VariantClassic), func() registry.Game {
		return New()
	})
	registry.Register(string(VariantXL), func() registry.Game {
		return NewXL()
	})
}

// New creates the classic variant.
func New() *Game {
	return &Game{variant: VariantClassic, selected: -1}
}

// NewXL creates the large-board variant.
func NewXL() *Game {
	return &Game{variant: VariantXL, selected: -1}
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return string(g.variant)
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.variant == VariantXL {
		return "Grid Blast XL"
	}
	return "Grid Blast"
}

// boardSize returns the configured side length for this variant.
func (g *Game) boardSize() int {
	if g.variant == VariantXL {
		return g.cfg.Board.XLSize
	}
	return g.cfg.Board.Size
}

// Reset starts a new session.
func (g *Game) Reset(cfg platformcore.RuntimeConfig) {
	g.cfg = activeConfig
	g.palette = g.cfg.Theme.Palette()
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.tick = 0
	g.paused = false
	g.notice = NoticeNone

	size := g.boardSize()
	if !core.ValidBoardSize(size) {
		// SetConfig does not validate.
		size = core.DefaultBoardSize
	}
	session, err := core.NewSession(size, g.rng)
	if err != nil {
		panic(err) // size is in range and g.rng is set
	}
	g.session = session

	center := g.session.Size() / 2
	g.cursorCol = center - 1
	g.cursorRow = center - 1
	g.selected = g.session.Queue().NextAvailable(0)

	g.layout()
}

// Session exposes the underlying puzzle session (read-only use).
func (g *Game) Session() *core.Session {
	return g.session
}

// Resize adapts the layout to a new terminal size without resetting.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	if g.session != nil {
		g.layout()
	}
}

// Step applies one frame of input.
func (g *Game) Step(in platformcore.InputFrame) platformcore.StepResult {
	g.tick++

	if g.tooSmall {
		return platformcore.StepResult{State: g.State()}
	}

	if in.Has(platformcore.ActionPause) {
		g.paused = !g.paused
	}

	if g.paused {
		return platformcore.StepResult{State: g.State()}
	}

	// Restart, back and quit are handled by the platform.

	switch {
	case in.Has(platformcore.ActionSlot1):
		g.selectSlot(0)
	case in.Has(platformcore.ActionSlot2):
		g.selectSlot(1)
	case in.Has(platformcore.ActionSlot3):
		g.selectSlot(2)
	case in.Has(platformcore.ActionNextSlot):
		g.selected = g.session.Queue().NextAvailable(g.selected + 1)
		g.notice = NoticeNone
	}

	dCol, dRow := 0, 0
	if in.Has(platformcore.ActionLeft) {
		dCol--
	}
	if in.Has(platformcore.ActionRight) {
		dCol++
	}
	if in.Has(platformcore.ActionUp) {
		dRow--
	}
	if in.Has(platformcore.ActionDown) {
		dRow++
	}
	if dCol != 0 || dRow != 0 {
		g.moveCursor(dCol, dRow)
	}

	moved := false
	if in.Has(platformcore.ActionConfirm) {
		moved = g.commit()
	}

	return platformcore.StepResult{State: g.State(), Moved: moved}
}

// selectSlot picks a tray slot if its piece is still available.
func (g *Game) selectSlot(slot int) {
	if !g.session.Queue().Available(slot) {
		g.notice = NoticeSlotUsed
		return
	}
	g.selected = slot
	g.notice = NoticeNone
}

// moveCursor shifts the anchor, clamping or wrapping at the board edge.
func (g *Game) moveCursor(dCol, dRow int) {
	n := g.session.Size()
	if g.cfg.Controls.WrapCursor {
		g.cursorCol = platformcore.Wrap(g.cursorCol+dCol, n)
		g.cursorRow = platformcore.Wrap(g.cursorRow+dRow, n)
	} else {
		g.cursorCol = platformcore.Clamp(g.cursorCol+dCol, 0, n-1)
		g.cursorRow = platformcore.Clamp(g.cursorRow+dRow, 0, n-1)
	}
	if g.notice == NoticeNoFit {
		g.notice = NoticeNone
	}
}

// anchor returns the board coordinate under the cursor.
func (g *Game) anchor() core.Coord {
	c, _ := g.session.Coord(g.cursorCol, g.cursorRow)
	return c
}

// commit places the selected piece at the cursor.
func (g *Game) commit() bool {
	if !g.session.CommitPlacement(g.selected, g.anchor()) {
		g.notice = NoticeNoFit
		return false
	}

	q := g.session.Queue()
	if q.UsedCount() == 0 {
		g.selected = 0
	} else {
		g.selected = q.NextAvailable(g.selected + 1)
	}

	g.notice = NoticeNone
	if !g.session.LastClear().Empty() {
		g.notice = NoticeCleared
	}
	return true
}

// preview returns the cells to highlight for the selected piece and
// whether the placement is legal. Illegal previews are clipped to the board.
func (g *Game) preview() ([]core.Coord, bool) {
	if g.selected < 0 {
		return nil, false
	}
	anchor := g.anchor()
	if cells, ok := g.session.Preview(g.selected, anchor); ok {
		return cells, true
	}

	shape := g.session.Queue()[g.selected].Shape
	var clipped []core.Coord
	for _, p := range core.Footprint(shape, anchor.Point()) {
		if c, ok := g.session.Coord(p.X, p.Y); ok {
			clipped = append(clipped, c)
		}
	}
	return clipped, false
}

// State returns the current game state.
func (g *Game) State() platformcore.GameState {
	score := 0
	if g.session != nil {
		score = g.session.Score()
	}
	return platformcore.GameState{
		Score:  score,
		Paused: g.paused || g.tooSmall,
	}
}

// Stats reports per-session figures for score storage.
func (g *Game) Stats() registry.SessionStats {
	if g.session == nil {
		return registry.SessionStats{}
	}
	return registry.SessionStats{
		Moves: g.session.Moves(),
		Lines: g.session.LinesCleared(),
	}
}
