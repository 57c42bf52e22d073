// Package snake implements the Snake game state machine: grid bounds, the
// snake's head and body, heading, food placement, score and collision.
// It has no terminal or timing dependencies; callers drive it one tick at a
// time and draw it from a Snapshot.
package snake

import (
	"errors"
	"fmt"

	"github.com/gammazero/deque"
)

const (
	// MinGridSize is the smallest width or height that leaves a border ring
	// and a playable interior around the starting cell.
	MinGridSize = 5

	// InitialScore is the starting score and therefore the starting body capacity.
	InitialScore = 5

	// DefaultWidth and DefaultHeight are the classic board dimensions.
	DefaultWidth  = 32
	DefaultHeight = 16
)

var (
	// ErrGridTooSmall is returned when either dimension is below MinGridSize.
	ErrGridTooSmall = errors.New("snake: grid too small")

	// ErrNilRand is returned when no random source is supplied.
	ErrNilRand = errors.New("snake: nil random source")
)

// Status is the lifecycle state of a game.
type Status int

const (
	StatusRunning Status = iota
	StatusTerminal
)

func (s Status) String() string {
	switch s {
	case StatusRunning:
		return "running"
	case StatusTerminal:
		return "terminal"
	default:
		return "unknown"
	}
}

// Collision records what ended the game.
type Collision int

const (
	CollisionNone Collision = iota
	CollisionBorder
	CollisionSelf
)

func (c Collision) String() string {
	switch c {
	case CollisionNone:
		return "none"
	case CollisionBorder:
		return "border"
	case CollisionSelf:
		return "self"
	default:
		return "unknown"
	}
}

// StepResult is returned by Game.Step after each tick.
type StepResult struct {
	Terminal  bool      // Game has ended (this tick or earlier)
	Ate       bool      // Head reached the food this tick
	Collision Collision // Set on the tick the game ended
}

// Game is a single Snake game. It is created once per game, mutated in place
// by Step until a collision makes it terminal, then discarded.
// A Game is not safe for concurrent use.
type Game struct {
	width  int
	height int
	rng    Rand

	head Position
	body deque.Deque[Position] // Oldest segment at the front
	dir  Direction
	food Position

	score     int
	tick      uint64
	status    Status
	collision Collision
}

// New creates a game on a width×height grid. The head starts at the grid
// center heading right, the body is empty and one food cell is spawned.
func New(width, height int, rng Rand) (*Game, error) {
	if width < MinGridSize || height < MinGridSize {
		return nil, fmt.Errorf("%w: %dx%d (minimum %dx%d)",
			ErrGridTooSmall, width, height, MinGridSize, MinGridSize)
	}
	if rng == nil {
		return nil, ErrNilRand
	}

	g := &Game{
		width:  width,
		height: height,
		rng:    rng,
		head:   Position{X: width / 2, Y: height / 2},
		dir:    DirRight,
		score:  InitialScore,
		status: StatusRunning,
	}
	g.spawnFood()
	return g, nil
}

// Step advances the game by one tick.
//
// The requested heading is applied unless it is DirNone, not a heading, or
// the exact reverse of the current heading. The pre-move head joins the body,
// the head moves one cell, the body is trimmed to the score at the start of
// the tick, food is consumed, and finally collisions are checked. Stepping a
// terminal game changes nothing.
func (g *Game) Step(requested Direction) StepResult {
	if g.status == StatusTerminal {
		return StepResult{Terminal: true}
	}
	g.tick++

	// Turn (at most one per tick, reversals dropped)
	if requested.Valid() && requested != g.dir.Opposite() {
		g.dir = requested
	}

	// Move: old head becomes the newest body segment
	g.body.PushBack(g.head)
	g.head = g.head.Move(g.dir)

	// Capacity trim uses the pre-increment score, so growth lags one tick
	for g.body.Len() > g.score {
		g.body.PopFront()
	}

	var result StepResult
	if g.head == g.food {
		g.score++
		g.spawnFood()
		result.Ate = true
	}

	if c := g.detectCollision(); c != CollisionNone {
		g.status = StatusTerminal
		g.collision = c
		result.Terminal = true
		result.Collision = c
	}

	return result
}

// spawnFood picks a cell strictly inside the border ring.
// The snake is not excluded: food may land under the body.
func (g *Game) spawnFood() {
	x := 1 + g.rng.Intn(g.width-2)
	y := 1 + g.rng.Intn(g.height-2)
	g.food = Position{X: x, Y: y}
}

// detectCollision checks the post-move head against the border ring and the
// trimmed body.
func (g *Game) detectCollision() Collision {
	if g.OnBorder(g.head) {
		return CollisionBorder
	}
	if g.bodyContains(g.head) {
		return CollisionSelf
	}
	return CollisionNone
}

// OnBorder reports whether p lies on or beyond the border ring.
func (g *Game) OnBorder(p Position) bool {
	return p.X <= 0 || p.X >= g.width-1 || p.Y <= 0 || p.Y >= g.height-1
}

func (g *Game) bodyContains(p Position) bool {
	for i := 0; i < g.body.Len(); i++ {
		if g.body.At(i) == p {
			return true
		}
	}
	return false
}

// Width returns the grid width.
func (g *Game) Width() int { return g.width }

// Height returns the grid height.
func (g *Game) Height() int { return g.height }

// Head returns the head position.
func (g *Game) Head() Position { return g.head }

// Direction returns the current heading.
func (g *Game) Direction() Direction { return g.dir }

// Food returns the food position.
func (g *Game) Food() Position { return g.food }

// Score returns the current score.
func (g *Game) Score() int { return g.score }

// BodyLen returns the number of body segments (head excluded).
func (g *Game) BodyLen() int { return g.body.Len() }

// Tick returns the number of ticks applied so far.
func (g *Game) Tick() uint64 { return g.tick }

// Status returns the lifecycle state.
func (g *Game) Status() Status { return g.status }

// Terminal reports whether the game has ended.
func (g *Game) Terminal() bool { return g.status == StatusTerminal }

// Collision returns what ended the game, or CollisionNone while running.
func (g *Game) Collision() Collision { return g.collision }
