package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreReopenKeepsScores(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	if _, err := store.SaveScore("blast", 40); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}
	store.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("second Open() failed: %v", err)
	}
	defer store.Close()

	high, err := store.HighScore("blast")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 40 {
		t.Errorf("Expected high score 40 after reopen, got %d", high)
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	for _, score := range []int{16, 8, 32} {
		if _, err := store.SaveScore("blast", score); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}
	if _, err := store.SaveScore("blast_xl", 50); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	scores, err := store.TopScores("blast", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}

	// Should be sorted descending
	want := []int{32, 16, 8}
	for i, w := range want {
		if scores[i].Score != w {
			t.Errorf("scores[%d] = %d, expected %d", i, scores[i].Score, w)
		}
		if scores[i].GameID != "blast" {
			t.Errorf("scores[%d].GameID = %q, expected blast", i, scores[i].GameID)
		}
	}

	xlScores, err := store.TopScores("blast_xl", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(xlScores) != 1 {
		t.Errorf("Expected 1 blast_xl score, got %d", len(xlScores))
	}
}

func TestStoreSaveResult(t *testing.T) {
	store := openTestStore(t)

	id, err := store.SaveResult(Result{GameID: "blast", Score: 24, Moves: 11, Lines: 3})
	if err != nil {
		t.Fatalf("SaveResult() failed: %v", err)
	}
	if id <= 0 {
		t.Errorf("Expected positive id, got %d", id)
	}

	scores, err := store.TopScores("blast", 1)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 1 {
		t.Fatalf("Expected 1 score, got %d", len(scores))
	}
	e := scores[0]
	if e.ID != id || e.Score != 24 || e.Moves != 11 || e.Lines != 3 {
		t.Errorf("Unexpected entry: %+v", e)
	}
	if e.CreatedAt.IsZero() {
		t.Error("CreatedAt should be set")
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		store.SaveScore("blast", (i+1)*8) //nolint:errcheck
	}

	scores, err := store.TopScores("blast", 3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores with limit, got %d", len(scores))
	}

	if scores[0].Score != 40 || scores[1].Score != 32 || scores[2].Score != 24 {
		t.Errorf("Scores not in expected order: %v", scores)
	}

	// Non-positive limits fall back to 10.
	scores, err = store.TopScores("blast", 0)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 5 {
		t.Errorf("Expected 5 scores with default limit, got %d", len(scores))
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("blast")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty game, got %d", high)
	}

	store.SaveScore("blast", 16) //nolint:errcheck
	store.SaveScore("blast", 48) //nolint:errcheck
	store.SaveScore("blast", 24) //nolint:errcheck

	high, err = store.HighScore("blast")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 48 {
		t.Errorf("Expected high score of 48, got %d", high)
	}
}

func TestStoreStats(t *testing.T) {
	store := openTestStore(t)

	st, err := store.Stats("blast")
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if st != (Stats{}) {
		t.Errorf("Expected zero stats for empty game, got %+v", st)
	}

	store.SaveResult(Result{GameID: "blast", Score: 16, Moves: 10, Lines: 2})   //nolint:errcheck
	store.SaveResult(Result{GameID: "blast", Score: 40, Moves: 25, Lines: 5})   //nolint:errcheck
	store.SaveResult(Result{GameID: "blast_xl", Score: 99, Moves: 1, Lines: 9}) //nolint:errcheck

	st, err = store.Stats("blast")
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	expected := Stats{Games: 2, Best: 40, TotalLines: 7, TotalMoves: 35}
	if st != expected {
		t.Errorf("Stats() = %+v, expected %+v", st, expected)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("blast", 8)     //nolint:errcheck
	store.SaveScore("blast", 16)    //nolint:errcheck
	store.SaveScore("blast_xl", 30) //nolint:errcheck

	if err := store.ClearScores("blast"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	scores, _ := store.TopScores("blast", 10)
	if len(scores) != 0 {
		t.Errorf("Expected 0 blast scores after clear, got %d", len(scores))
	}

	xlScores, _ := store.TopScores("blast_xl", 10)
	if len(xlScores) != 1 {
		t.Errorf("blast_xl scores should not be affected by clearing blast")
	}
}

func TestStoreAllScores(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 20; i++ {
		store.SaveScore("blast", i*8) //nolint:errcheck
	}

	scores, err := store.AllScores("blast")
	if err != nil {
		t.Fatalf("AllScores() failed: %v", err)
	}

	if len(scores) != 20 {
		t.Errorf("Expected 20 scores, got %d", len(scores))
	}
}

func TestStoreNestedPath(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}
