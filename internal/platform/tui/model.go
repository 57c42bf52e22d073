package tui

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/term-snake/internal/board"
	"github.com/vovakirdan/term-snake/internal/core"
	"github.com/vovakirdan/term-snake/internal/loop"
	"github.com/vovakirdan/term-snake/internal/snake"
	"github.com/vovakirdan/term-snake/internal/storage"
)

// Options configures a game session.
type Options struct {
	Width    int
	Height   int
	Interval time.Duration
	Seed     int64  // 0 = random based on time
	Player   string // Recorded with saved scores
	Store    *storage.Store
	Logger   *log.Logger
	Renderer *lipgloss.Renderer // nil = process default
}

// Model is the Bubble Tea model for one snake session.
// Each game is driven by its own tick chain; restarting starts a new chain.
type Model struct {
	opts   Options
	game   *snake.Game
	seed   int64
	gameID int
	input  *loop.Latch
	screen *core.Screen
	styles Styles
	keys   KeyMap
	help   help.Model
	logger *log.Logger

	termW, termH int
	scoreSaved   bool // Whether score has been saved for current game over
	quitting     bool
}

// NewModel creates a model and its first game.
func NewModel(opts Options) (Model, error) {
	if opts.Interval <= 0 {
		opts.Interval = loop.DefaultInterval
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	m := Model{
		opts:   opts,
		input:  loop.NewLatch(),
		screen: core.NewScreen(0, 0),
		styles: NewStyles(opts.Renderer),
		keys:   DefaultKeyMap(),
		help:   help.New(),
		logger: logger,
	}
	if err := m.newGame(snake.ResolveSeed(opts.Seed)); err != nil {
		return Model{}, err
	}
	return m, nil
}

// newGame replaces the current game. Ticks from the previous game are ignored.
func (m *Model) newGame(seed int64) error {
	game, err := snake.New(m.opts.Width, m.opts.Height, snake.NewRand(seed))
	if err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	m.game = game
	m.seed = seed
	m.gameID++
	m.scoreSaved = false
	m.input.Reset()
	m.logger.Info("game started",
		"player", m.opts.Player,
		"width", m.opts.Width,
		"height", m.opts.Height,
		"seed", seed,
	)
	return nil
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.gameID, m.opts.Interval)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.termW = msg.Width
		m.termH = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick(msg)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	case key.Matches(msg, m.keys.Restart):
		if !m.game.Terminal() {
			return m, nil
		}
		if err := m.newGame(snake.ResolveSeed(0)); err != nil {
			m.logger.Error("cannot restart", "error", err)
			return m, nil
		}
		return m, tickCmd(m.gameID, m.opts.Interval)
	}

	if dir, ok := m.keys.Direction(msg); ok && !m.game.Terminal() {
		//nolint:errcheck // Direction keys always map to valid directions
		m.input.Press(dir)
	}
	return m, nil
}

// handleTick advances the game by one step. Ticking stops once the game is over.
func (m Model) handleTick(msg TickMsg) (tea.Model, tea.Cmd) {
	if msg.ID != m.gameID || m.game.Terminal() {
		return m, nil
	}

	dir, _ := m.input.Poll()
	res := m.game.Step(dir)
	if res.Ate {
		m.logger.Debug("food eaten", "tick", m.game.Tick(), "score", m.game.Score(), "food", m.game.Food())
	}
	if !res.Terminal {
		return m, tickCmd(m.gameID, m.opts.Interval)
	}

	m.logger.Info("game over",
		"player", m.opts.Player,
		"score", m.game.Score(),
		"ticks", m.game.Tick(),
		"collision", m.game.Collision(),
	)
	m.saveScore()
	return m, nil
}

// saveScore records the finished game once.
func (m *Model) saveScore() {
	if m.scoreSaved || m.opts.Store == nil {
		return
	}
	m.scoreSaved = true
	_, err := m.opts.Store.SaveScore(storage.ScoreEntry{
		Player:    m.opts.Player,
		Score:     m.game.Score(),
		Ticks:     m.game.Tick(),
		Collision: m.game.Collision().String(),
		Seed:      m.seed,
		Width:     m.game.Width(),
		Height:    m.game.Height(),
	})
	if err != nil {
		m.logger.Warn("could not save score", "error", err)
	}
}

// View renders the board, followed by the help line.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	snap := m.game.Snapshot()
	w, h := board.Size(snap)
	if m.termW > 0 && (m.termW < w || m.termH < h+1) {
		return m.styles.Notice.Render(fmt.Sprintf(
			"Terminal too small: need %dx%d, have %dx%d", w, h+1, m.termW, m.termH))
	}

	m.screen.Resize(w, h)
	board.Draw(m.screen, snap)

	var b strings.Builder
	b.WriteString(m.styles.RenderScreen(m.screen))
	b.WriteString("\n")
	if snap.Terminal() {
		b.WriteString(m.styles.Footer.Render(m.help.ShortHelpView([]key.Binding{m.keys.Restart, m.keys.Quit})))
	} else {
		b.WriteString(m.styles.Footer.Render(m.help.View(m.keys)))
	}
	return b.String()
}

// Snapshot returns the current game state.
func (m Model) Snapshot() snake.Snapshot {
	return m.game.Snapshot()
}

// Seed returns the seed of the current game.
func (m Model) Seed() int64 {
	return m.seed
}

// Result summarizes the current game.
func (m Model) Result() loop.Result {
	snap := m.game.Snapshot()
	return loop.Result{
		Score:     snap.Score,
		Ticks:     snap.Tick,
		Collision: snap.Collision,
		Final:     snap,
	}
}

// Run starts the Bubble Tea program and returns the last game's result.
func Run(opts Options) (loop.Result, error) {
	model, err := NewModel(opts)
	if err != nil {
		return loop.Result{}, err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	finalModel, err := p.Run()
	if err != nil {
		return loop.Result{}, err
	}

	m, ok := finalModel.(Model)
	if !ok {
		return model.Result(), nil
	}
	return m.Result(), nil
}
