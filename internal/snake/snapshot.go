package snake

import (
	"fmt"
	"strings"
)

// Snapshot is a read-only copy of the game state handed to renderers and
// used for determinism checks. Mutating it does not affect the game.
type Snapshot struct {
	Tick      uint64
	Width     int
	Height    int
	Head      Position
	Body      []Position // Oldest segment first
	Dir       Direction
	Food      Position
	Score     int
	Status    Status
	Collision Collision
}

// Snapshot returns a copy of the current state.
func (g *Game) Snapshot() Snapshot {
	body := make([]Position, g.body.Len())
	for i := range body {
		body[i] = g.body.At(i)
	}

	return Snapshot{
		Tick:      g.tick,
		Width:     g.width,
		Height:    g.height,
		Head:      g.head,
		Body:      body,
		Dir:       g.dir,
		Food:      g.food,
		Score:     g.score,
		Status:    g.status,
		Collision: g.collision,
	}
}

// Terminal reports whether the snapshot was taken after the game ended.
func (s Snapshot) Terminal() bool {
	return s.Status == StatusTerminal
}

// Equal reports whether two snapshots describe the same state.
func (s Snapshot) Equal(o Snapshot) bool {
	if s.Tick != o.Tick || s.Width != o.Width || s.Height != o.Height ||
		s.Head != o.Head || s.Dir != o.Dir || s.Food != o.Food ||
		s.Score != o.Score || s.Status != o.Status || s.Collision != o.Collision {
		return false
	}
	if len(s.Body) != len(o.Body) {
		return false
	}
	for i := range s.Body {
		if s.Body[i] != o.Body[i] {
			return false
		}
	}
	return true
}

// Dump renders the snapshot as ASCII: '#' border, 'H' head, 'o' body,
// '*' food. Body drawn over food, head drawn last.
func (s Snapshot) Dump() string {
	grid := make([][]byte, s.Height)
	for y := range grid {
		grid[y] = make([]byte, s.Width)
		for x := range grid[y] {
			if x == 0 || y == 0 || x == s.Width-1 || y == s.Height-1 {
				grid[y][x] = '#'
			} else {
				grid[y][x] = '.'
			}
		}
	}

	put := func(p Position, c byte) {
		if p.Y >= 0 && p.Y < s.Height && p.X >= 0 && p.X < s.Width {
			grid[p.Y][p.X] = c
		}
	}
	put(s.Food, '*')
	for _, p := range s.Body {
		put(p, 'o')
	}
	put(s.Head, 'H')

	var sb strings.Builder
	fmt.Fprintf(&sb, "tick=%d score=%d dir=%s status=%s\n", s.Tick, s.Score, s.Dir, s.Status)
	for _, row := range grid {
		sb.Write(row)
		sb.WriteByte('\n')
	}
	return sb.String()
}
