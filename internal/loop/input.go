package loop

import (
	"fmt"
	"strings"
	"sync"

	"github.com/vovakirdan/term-snake/internal/snake"
)

// InputSource yields the most recent direction requested since the previous
// poll. Poll never blocks; ok is false when nothing is pending.
type InputSource interface {
	Poll() (dir snake.Direction, ok bool)
}

// Latch is a lossy InputSource fed by key events. Only the latest press
// between two polls survives; earlier ones are overwritten, never queued.
type Latch struct {
	mu      sync.Mutex
	pending snake.Direction
}

// NewLatch returns an empty latch.
func NewLatch() *Latch {
	return &Latch{}
}

// Press records a direction, replacing any unpolled one.
// Non-directions are rejected here so they never reach the game.
func (l *Latch) Press(d snake.Direction) error {
	if !d.Valid() {
		return fmt.Errorf("%w: %v", snake.ErrInvalidDirection, d)
	}
	l.mu.Lock()
	l.pending = d
	l.mu.Unlock()
	return nil
}

// Poll implements InputSource and clears the latch.
func (l *Latch) Poll() (snake.Direction, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	d := l.pending
	l.pending = snake.DirNone
	return d, d != snake.DirNone
}

// Reset drops any pending press.
func (l *Latch) Reset() {
	l.mu.Lock()
	l.pending = snake.DirNone
	l.mu.Unlock()
}

// Script is an InputSource that replays one entry per poll. Once exhausted
// it reports nothing pending.
type Script struct {
	moves []snake.Direction
	next  int
}

// NewScript returns a script over the given per-tick inputs.
func NewScript(moves ...snake.Direction) *Script {
	return &Script{moves: moves}
}

// ParseScript builds a Script from shorthand: one character per tick,
// u/d/l/r for directions and '.' for no input. Whitespace and commas are
// ignored. Unknown characters are rejected with snake.ErrInvalidDirection.
func ParseScript(s string) (*Script, error) {
	var moves []snake.Direction
	pos := -1 // rune index
	for _, r := range s {
		pos++
		if r == ',' || r == ' ' || r == '\t' || r == '\n' {
			continue
		}
		d, err := snake.ParseDirection(string(r))
		if err != nil {
			return nil, fmt.Errorf("loop: script position %d: %w", pos, err)
		}
		moves = append(moves, d)
	}
	return NewScript(moves...), nil
}

// Poll implements InputSource.
func (s *Script) Poll() (snake.Direction, bool) {
	if s.next >= len(s.moves) {
		return snake.DirNone, false
	}
	d := s.moves[s.next]
	s.next++
	return d, d != snake.DirNone
}

// Len returns the total number of scripted ticks.
func (s *Script) Len() int {
	return len(s.moves)
}

// String formats the script back into shorthand.
func (s *Script) String() string {
	var sb strings.Builder
	for _, d := range s.moves {
		switch d {
		case snake.DirUp:
			sb.WriteByte('u')
		case snake.DirDown:
			sb.WriteByte('d')
		case snake.DirLeft:
			sb.WriteByte('l')
		case snake.DirRight:
			sb.WriteByte('r')
		default:
			sb.WriteByte('.')
		}
	}
	return sb.String()
}
