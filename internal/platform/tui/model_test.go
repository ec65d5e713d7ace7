package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/gridblast/internal/core"
	"github.com/vovakirdan/gridblast/internal/registry"
	"github.com/vovakirdan/gridblast/internal/storage"
)

// fakeGame is a scripted game: its score is whatever the test sets.
type fakeGame struct {
	score   int
	resets  int
	steps   int
	lastIn  core.InputFrame
	lastCfg core.RuntimeConfig
}

func (g *fakeGame) ID() string    { return "fake" }
func (g *fakeGame) Title() string { return "Fake" }

func (g *fakeGame) Reset(cfg core.RuntimeConfig) {
	g.resets++
	g.score = 0
	g.lastCfg = cfg
}

func (g *fakeGame) Step(in core.InputFrame) core.StepResult {
	g.steps++
	g.lastIn = in.Clone()
	return core.StepResult{State: g.State()}
}

func (g *fakeGame) Render(dst *core.Screen) {
	dst.DrawText(0, 0, "fake board")
}

func (g *fakeGame) State() core.GameState {
	return core.GameState{Score: g.score}
}

func (g *fakeGame) Stats() registry.SessionStats {
	return registry.SessionStats{Moves: 7, Lines: 2}
}

// resizableGame follows resizes instead of restarting.
type resizableGame struct {
	fakeGame
	w, h int
}

func (g *resizableGame) Resize(w, h int) {
	g.w, g.h = w, h
}

func testConfig() core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 30, Seed: 1}
}

func openTestStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	model, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, expected Model", next)
	}
	return model, cmd
}

func scoresOf(t *testing.T, store *storage.Store) []storage.ScoreEntry {
	t.Helper()
	entries, err := store.AllScores("fake")
	if err != nil {
		t.Fatalf("AllScores failed: %v", err)
	}
	return entries
}

func TestModelInitResetsGame(t *testing.T) {
	game := &fakeGame{}
	m := NewModel(game, nil, testConfig(), nil)

	if cmd := m.Init(); cmd == nil {
		t.Error("Init should start the tick loop")
	}
	if game.resets != 1 {
		t.Errorf("resets = %d, expected 1", game.resets)
	}
	if game.lastCfg.ScreenH != 23 {
		t.Errorf("game height = %d, expected 23 (one row for help)", game.lastCfg.ScreenH)
	}
}

func TestModelNewSeedsWhenZero(t *testing.T) {
	cfg := testConfig()
	cfg.Seed = 0
	m := NewModel(&fakeGame{}, nil, cfg, nil)

	if m.config.Seed == 0 {
		t.Error("zero seed should be replaced with a time-based one")
	}
}

func TestModelTickStepsWithInput(t *testing.T) {
	game := &fakeGame{}
	m := NewModel(game, nil, testConfig(), nil)
	m.Init()

	m, _ = update(t, m, runeKey("2"))
	m, cmd := update(t, m, TickMsg{})

	if cmd == nil {
		t.Error("tick should schedule the next tick")
	}
	if game.steps != 1 || !game.lastIn.Has(core.ActionSlot2) {
		t.Errorf("step %d with slot2=%v, expected one step with slot 2", game.steps, game.lastIn.Has(core.ActionSlot2))
	}

	update(t, m, TickMsg{})
	if game.lastIn.Has(core.ActionSlot2) {
		t.Error("input should be cleared after each tick")
	}
}

func TestModelQuitRecordsScore(t *testing.T) {
	store := openTestStore(t)
	game := &fakeGame{}
	m := NewModel(game, store, testConfig(), nil)
	m.Init()
	game.score = 40

	m, cmd := update(t, m, runeKey("q"))
	if cmd == nil || !m.IsQuitting() {
		t.Fatal("q should quit")
	}

	entries := scoresOf(t, store)
	if len(entries) != 1 {
		t.Fatalf("recorded %d scores, expected 1", len(entries))
	}
	if entries[0].Score != 40 || entries[0].Moves != 7 || entries[0].Lines != 2 {
		t.Errorf("recorded %+v, expected score 40 with 7 moves and 2 lines", entries[0])
	}
}

func TestModelZeroScoreNotRecorded(t *testing.T) {
	store := openTestStore(t)
	m := NewModel(&fakeGame{}, store, testConfig(), nil)
	m.Init()

	update(t, m, runeKey("q"))

	if entries := scoresOf(t, store); len(entries) != 0 {
		t.Errorf("recorded %d scores, expected none", len(entries))
	}
}

func TestModelRestartRecordsOnce(t *testing.T) {
	store := openTestStore(t)
	game := &fakeGame{}
	m := NewModel(game, store, testConfig(), nil)
	m.Init()
	game.score = 25

	m, _ = update(t, m, runeKey("r"))
	m, _ = update(t, m, TickMsg{})

	if game.resets != 2 {
		t.Errorf("resets = %d, expected 2", game.resets)
	}
	if game.steps != 0 {
		t.Errorf("restart tick should not step the game, got %d steps", game.steps)
	}

	// The new session scores again and is recorded separately.
	game.score = 10
	update(t, m, runeKey("q"))

	entries := scoresOf(t, store)
	if len(entries) != 2 {
		t.Fatalf("recorded %d scores, expected 2", len(entries))
	}
	if entries[0].Score != 25 || entries[1].Score != 10 {
		t.Errorf("scores = %d, %d; expected 25, 10", entries[0].Score, entries[1].Score)
	}
}

func TestModelRestartSeed(t *testing.T) {
	tests := []struct {
		name   string
		seed   int64
		pinned bool
	}{
		{"pinned seed replays", 42, true},
		{"zero seed draws a new one", 0, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := testConfig()
			cfg.Seed = tc.seed
			game := &fakeGame{}
			m := NewModel(game, nil, cfg, nil)
			m.Init()
			first := game.lastCfg.Seed

			m, _ = update(t, m, runeKey("r"))
			update(t, m, TickMsg{})

			if game.resets != 2 {
				t.Fatalf("resets = %d, expected 2", game.resets)
			}
			if m.seedPinned != tc.pinned {
				t.Errorf("seedPinned = %v, expected %v", m.seedPinned, tc.pinned)
			}
			if tc.pinned && game.lastCfg.Seed != tc.seed {
				t.Errorf("restart seed = %d, expected pinned %d", game.lastCfg.Seed, tc.seed)
			}
			if !tc.pinned && (first == 0 || game.lastCfg.Seed == 0) {
				t.Errorf("seeds = %d, %d; expected time-based seeds", first, game.lastCfg.Seed)
			}
		})
	}
}

func TestModelBack(t *testing.T) {
	tests := []struct {
		name     string
		embedded bool
		quitting bool
		back     bool
	}{
		{"standalone quits", false, true, false},
		{"embedded returns to menu", true, false, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			store := openTestStore(t)
			game := &fakeGame{}
			m := NewModel(game, store, testConfig(), nil)
			m.embedded = tc.embedded
			m.Init()
			game.score = 5

			m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})

			if m.IsQuitting() != tc.quitting || m.BackToMenu() != tc.back {
				t.Errorf("quitting=%v back=%v, expected %v %v", m.IsQuitting(), m.BackToMenu(), tc.quitting, tc.back)
			}
			if entries := scoresOf(t, store); len(entries) != 1 {
				t.Errorf("recorded %d scores, expected 1", len(entries))
			}
		})
	}
}

func TestModelResizeRestartsPlainGame(t *testing.T) {
	store := openTestStore(t)
	game := &fakeGame{}
	m := NewModel(game, store, testConfig(), nil)
	m.Init()
	game.score = 12

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})

	if game.resets != 2 {
		t.Errorf("resets = %d, expected 2", game.resets)
	}
	if game.lastCfg.ScreenW != 100 || game.lastCfg.ScreenH != 39 {
		t.Errorf("reset with %dx%d, expected 100x39", game.lastCfg.ScreenW, game.lastCfg.ScreenH)
	}
	if entries := scoresOf(t, store); len(entries) != 1 {
		t.Errorf("recorded %d scores, expected 1", len(entries))
	}
	if m.recorded {
		t.Error("new session should be recordable again")
	}
}

func TestModelResizeKeepsResizableGame(t *testing.T) {
	game := &resizableGame{}
	m := NewModel(game, nil, testConfig(), nil)
	m.Init()

	update(t, m, tea.WindowSizeMsg{Width: 120, Height: 50})

	if game.resets != 1 {
		t.Errorf("resets = %d, expected no restart", game.resets)
	}
	if game.w != 120 || game.h != 49 {
		t.Errorf("resized to %dx%d, expected 120x49", game.w, game.h)
	}
}

func TestModelView(t *testing.T) {
	m := NewModel(&fakeGame{}, nil, testConfig(), nil)
	m.Init()

	view := m.View()
	if !strings.Contains(view, "fake board") {
		t.Error("view should contain the game render")
	}
	if !strings.Contains(view, "quit") {
		t.Error("view should contain the help bar")
	}

	m, _ = update(t, m, runeKey("q"))
	if m.View() != "" {
		t.Error("view should be empty after quitting")
	}
}
