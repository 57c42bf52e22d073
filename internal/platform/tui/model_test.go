package tui

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/term-snake/internal/board"
	"github.com/vovakirdan/term-snake/internal/snake"
	"github.com/vovakirdan/term-snake/internal/storage"
)

func newTestModel(t *testing.T, store *storage.Store) Model {
	t.Helper()
	m, err := NewModel(Options{
		Width:    10,
		Height:   10,
		Interval: time.Millisecond,
		Seed:     7,
		Player:   "tester",
		Store:    store,
	})
	if err != nil {
		t.Fatalf("NewModel() failed: %v", err)
	}
	return m
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, expected Model", next)
	}
	return nm, cmd
}

// tickUntilOver steps the current game until it ends.
func tickUntilOver(t *testing.T, m Model) Model {
	t.Helper()
	for i := 0; i < 100 && !m.Snapshot().Terminal(); i++ {
		m, _ = update(t, m, TickMsg{ID: m.gameID})
	}
	if !m.Snapshot().Terminal() {
		t.Fatal("game did not end")
	}
	return m
}

func TestNewModelRejectsSmallGrid(t *testing.T) {
	_, err := NewModel(Options{Width: 4, Height: 10})
	if err == nil {
		t.Fatal("NewModel() should fail for a 4x10 grid")
	}
}

func TestModelInitStartsTicking(t *testing.T) {
	m := newTestModel(t, nil)
	if m.Init() == nil {
		t.Fatal("Init() should return a tick command")
	}
	if m.Seed() != 7 {
		t.Errorf("Seed() = %d, expected 7", m.Seed())
	}
}

func TestModelTickAppliesLatchedDirection(t *testing.T) {
	m := newTestModel(t, nil)
	start := m.Snapshot().Head

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyUp})
	m, cmd := update(t, m, TickMsg{ID: m.gameID})
	if cmd == nil {
		t.Error("running game should schedule the next tick")
	}

	snap := m.Snapshot()
	if snap.Tick != 1 {
		t.Fatalf("Tick = %d, expected 1", snap.Tick)
	}
	if snap.Dir != snake.DirUp {
		t.Errorf("Dir = %v, expected up", snap.Dir)
	}
	if want := (snake.Position{X: start.X, Y: start.Y - 1}); snap.Head != want {
		t.Errorf("Head = %v, expected %v", snap.Head, want)
	}

	// The latch is consumed; the next tick keeps heading up.
	m, _ = update(t, m, TickMsg{ID: m.gameID})
	if got := m.Snapshot().Dir; got != snake.DirUp {
		t.Errorf("Dir after second tick = %v, expected up", got)
	}
}

func TestModelReversalIgnored(t *testing.T) {
	m := newTestModel(t, nil)
	m, _ = update(t, m, runeKey('a'))
	m, _ = update(t, m, TickMsg{ID: m.gameID})
	if got := m.Snapshot().Dir; got != snake.DirRight {
		t.Errorf("Dir = %v, expected right after reversal attempt", got)
	}
}

func TestModelStaleTickIgnored(t *testing.T) {
	m := newTestModel(t, nil)
	m, cmd := update(t, m, TickMsg{ID: m.gameID + 1})
	if cmd != nil {
		t.Error("stale tick should not schedule another tick")
	}
	if got := m.Snapshot().Tick; got != 0 {
		t.Errorf("Tick = %d, expected 0", got)
	}
}

func TestModelStopsTickingWhenOver(t *testing.T) {
	m := tickUntilOver(t, newTestModel(t, nil))
	final := m.Snapshot()
	if final.Collision != snake.CollisionBorder {
		t.Errorf("Collision = %v, expected border", final.Collision)
	}

	m, cmd := update(t, m, TickMsg{ID: m.gameID})
	if cmd != nil {
		t.Error("terminal game should not schedule ticks")
	}
	if !m.Snapshot().Equal(final) {
		t.Error("terminal game changed after a tick")
	}

	res := m.Result()
	if res.Score != final.Score || res.Ticks != final.Tick {
		t.Errorf("Result() = %+v, expected score %d ticks %d", res, final.Score, final.Tick)
	}
}

func TestModelSavesScoreOnce(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("storage.Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	m := tickUntilOver(t, newTestModel(t, store))
	m, _ = update(t, m, TickMsg{ID: m.gameID})
	_, _ = update(t, m, TickMsg{ID: m.gameID})

	scores, err := store.TopScores(10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 1 {
		t.Fatalf("saved %d scores, expected 1", len(scores))
	}
	got := scores[0]
	if got.Player != "tester" || got.Seed != 7 || got.Collision != "border" ||
		got.Width != 10 || got.Height != 10 || got.Score != m.Snapshot().Score {
		t.Errorf("saved entry = %+v", got)
	}
}

func TestModelRestart(t *testing.T) {
	m := newTestModel(t, nil)

	// Restart is ignored while running.
	m, cmd := update(t, m, runeKey('r'))
	if cmd != nil || m.gameID != 1 {
		t.Fatal("restart should be ignored while the game is running")
	}

	m = tickUntilOver(t, m)
	oldID := m.gameID

	m, cmd = update(t, m, runeKey('r'))
	if cmd == nil {
		t.Fatal("restart should start a new tick loop")
	}
	if m.gameID == oldID {
		t.Error("restart should change the game ID")
	}
	snap := m.Snapshot()
	if snap.Terminal() || snap.Tick != 0 || snap.Score != snake.InitialScore {
		t.Errorf("restarted game = %+v, expected a fresh game", snap)
	}

	// Ticks from the finished game no longer apply.
	m, _ = update(t, m, TickMsg{ID: oldID})
	if m.Snapshot().Tick != 0 {
		t.Error("old tick advanced the new game")
	}
}

func TestModelQuit(t *testing.T) {
	m := newTestModel(t, nil)
	m, cmd := update(t, m, runeKey('q'))
	if cmd == nil {
		t.Fatal("quit should return a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("quit command should produce tea.QuitMsg")
	}
	if m.View() != "" {
		t.Error("View() should be empty after quitting")
	}
}

func TestModelView(t *testing.T) {
	// Wide enough for the boxed game over message
	m, err := NewModel(Options{Width: 30, Height: 10, Interval: time.Millisecond, Seed: 3})
	if err != nil {
		t.Fatalf("NewModel() failed: %v", err)
	}

	view := m.View()
	if !strings.Contains(view, "Score: 5") {
		t.Errorf("View() missing HUD:\n%s", view)
	}

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 5, Height: 5})
	if view := m.View(); !strings.Contains(view, "Terminal too small") {
		t.Errorf("View() = %q, expected too-small notice", view)
	}

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 80, Height: 24})
	m = tickUntilOver(t, m)
	if view := m.View(); !strings.Contains(view, "Game Over!") {
		t.Errorf("View() missing game over overlay:\n%s", view)
	}
}

func TestModelViewNarrowGrids(t *testing.T) {
	tests := []struct {
		name          string
		width, height int
	}{
		{"minimum grid", snake.MinGridSize, snake.MinGridSize},
		{"narrow grid", 10, 10},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m, err := NewModel(Options{Width: tc.width, Height: tc.height, Interval: time.Millisecond, Seed: 11})
			if err != nil {
				t.Fatalf("NewModel() failed: %v", err)
			}
			m, _ = update(t, m, tea.WindowSizeMsg{Width: 80, Height: 24})

			if view := m.View(); !strings.Contains(view, "Score: 5  Length: 1") {
				t.Errorf("View() missing full HUD:\n%s", view)
			}

			m = tickUntilOver(t, m)
			want := board.GameOverText(m.Snapshot().Score)
			if view := m.View(); !strings.Contains(view, want) {
				t.Errorf("View() missing %q:\n%s", want, view)
			}
		})
	}
}
