package storage

import (
	"errors"
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

func entry(player string, score int) ScoreEntry {
	return ScoreEntry{
		Player:    player,
		Score:     score,
		Ticks:     uint64(score * 10),
		Collision: "border",
		Seed:      42,
		Width:     32,
		Height:    16,
	}
}

func TestStoreOpenClose(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "nested", "dir", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreOpenExpandsHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	store, err := Open("~/.snake/scores.db")
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(filepath.Join(home, ".snake", "scores.db")); err != nil {
		t.Errorf("database not created under home: %v", err)
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	for _, e := range []ScoreEntry{entry("alice", 7), entry("bob", 12), entry("alice", 5)} {
		if _, err := store.SaveScore(e); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}

	scores, err := store.TopScores(10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}

	expected := []int{12, 7, 5}
	for i, want := range expected {
		if scores[i].Score != want {
			t.Errorf("scores[%d].Score = %d, expected %d", i, scores[i].Score, want)
		}
	}

	top := scores[0]
	if top.Player != "bob" || top.Ticks != 120 || top.Collision != "border" ||
		top.Seed != 42 || top.Width != 32 || top.Height != 16 {
		t.Errorf("round-tripped entry = %+v", top)
	}
	if top.CreatedAt.IsZero() {
		t.Error("CreatedAt should be set")
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 15; i++ {
		if _, err := store.SaveScore(entry("p", 5+i)); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}

	scores, err := store.TopScores(5)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 5 {
		t.Errorf("Expected 5 scores, got %d", len(scores))
	}
	if scores[0].Score != 19 {
		t.Errorf("Expected top score 19, got %d", scores[0].Score)
	}

	// Non-positive limit falls back to 10
	scores, err = store.TopScores(0)
	if err != nil {
		t.Fatalf("TopScores(0) failed: %v", err)
	}
	if len(scores) != 10 {
		t.Errorf("Expected default limit 10, got %d", len(scores))
	}
}

func TestStorePlayerScores(t *testing.T) {
	store := openTestStore(t)

	for _, e := range []ScoreEntry{entry("alice", 7), entry("bob", 12), entry("alice", 9)} {
		if _, err := store.SaveScore(e); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}

	scores, err := store.PlayerScores("alice", 10)
	if err != nil {
		t.Fatalf("PlayerScores() failed: %v", err)
	}
	if len(scores) != 2 {
		t.Fatalf("Expected 2 scores for alice, got %d", len(scores))
	}
	// Most recent first
	if scores[0].Score != 9 || scores[1].Score != 7 {
		t.Errorf("PlayerScores order = [%d %d], expected [9 7]", scores[0].Score, scores[1].Score)
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore()
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected 0 for empty store, got %d", high)
	}

	store.SaveScore(entry("a", 8))
	store.SaveScore(entry("b", 11))

	high, err = store.HighScore()
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 11 {
		t.Errorf("Expected high score 11, got %d", high)
	}
}

func TestStoreStats(t *testing.T) {
	store := openTestStore(t)

	stats, err := store.GetStats()
	if err != nil {
		t.Fatalf("GetStats() failed: %v", err)
	}
	if stats.GamesPlayed != 0 || stats.HighScore != 0 {
		t.Errorf("empty stats = %+v", stats)
	}

	store.SaveScore(entry("a", 6))
	store.SaveScore(entry("a", 10))

	stats, err = store.GetStats()
	if err != nil {
		t.Fatalf("GetStats() failed: %v", err)
	}
	if stats.GamesPlayed != 2 {
		t.Errorf("GamesPlayed = %d, expected 2", stats.GamesPlayed)
	}
	if stats.HighScore != 10 {
		t.Errorf("HighScore = %d, expected 10", stats.HighScore)
	}
	if stats.AverageScore != 8 {
		t.Errorf("AverageScore = %f, expected 8", stats.AverageScore)
	}
	if stats.TotalTicks != 160 {
		t.Errorf("TotalTicks = %d, expected 160", stats.TotalTicks)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)
	store.SaveScore(entry("a", 6))

	if err := store.ClearScores(); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	scores, err := store.TopScores(10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 0 {
		t.Errorf("Expected no scores after clear, got %d", len(scores))
	}
}

func TestStoreRejectsInvalidEntry(t *testing.T) {
	store := openTestStore(t)

	bad := entry("a", 5)
	bad.Width = 0
	if _, err := store.SaveScore(bad); !errors.Is(err, ErrInvalidEntry) {
		t.Errorf("SaveScore() error = %v, expected ErrInvalidEntry", err)
	}

	bad = entry("a", -1)
	if _, err := store.SaveScore(bad); !errors.Is(err, ErrInvalidEntry) {
		t.Errorf("SaveScore() error = %v, expected ErrInvalidEntry", err)
	}
}
