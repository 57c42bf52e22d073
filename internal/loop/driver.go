// Package loop drives a snake.Game in real time: poll input, step the game,
// render the snapshot, sleep a fixed interval, repeat until terminal.
package loop

import (
	"context"
	"errors"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/term-snake/internal/snake"
)

// DefaultInterval is the delay between ticks.
const DefaultInterval = 200 * time.Millisecond

// ErrNilGame is returned by Run when the driver has no game.
var ErrNilGame = errors.New("loop: nil game")

// Renderer draws a snapshot. It is called once per tick after the step
// and must not retain or modify the snapshot's slices.
type Renderer interface {
	Render(s snake.Snapshot)
}

// RendererFunc adapts a function to Renderer.
type RendererFunc func(s snake.Snapshot)

// Render calls f(s).
func (f RendererFunc) Render(s snake.Snapshot) { f(s) }

// Result summarizes a finished game.
type Result struct {
	Score     int
	Ticks     uint64
	Collision snake.Collision
	Final     snake.Snapshot
}

// Driver runs one game to completion on a single goroutine.
type Driver struct {
	Game     *snake.Game
	Input    InputSource
	Renderer Renderer
	Interval time.Duration // Zero means no delay (headless replay)
	Logger   *log.Logger

	// Sleep waits between ticks. Defaults to a context-aware timer.
	Sleep func(ctx context.Context, d time.Duration) error
}

// Run renders the initial state, then ticks until the game is terminal or
// ctx is done. On cancellation the partial result is returned with ctx.Err().
func (d *Driver) Run(ctx context.Context) (Result, error) {
	if d.Game == nil {
		return Result{}, ErrNilGame
	}
	logger := d.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	sleep := d.Sleep
	if sleep == nil {
		sleep = sleepCtx
	}

	g := d.Game
	logger.Info("game started", "width", g.Width(), "height", g.Height(), "interval", d.Interval)
	d.render(g.Snapshot())

	for !g.Terminal() {
		if err := ctx.Err(); err != nil {
			return d.result(), err
		}

		dir := snake.DirNone
		if d.Input != nil {
			if polled, ok := d.Input.Poll(); ok {
				dir = polled
			}
		}

		res := g.Step(dir)
		if res.Ate {
			logger.Debug("food eaten", "tick", g.Tick(), "score", g.Score(), "food", g.Food())
		}
		d.render(g.Snapshot())

		if res.Terminal {
			break
		}
		if d.Interval > 0 {
			if err := sleep(ctx, d.Interval); err != nil {
				return d.result(), err
			}
		}
	}

	r := d.result()
	logger.Info("game over", "score", r.Score, "ticks", r.Ticks, "collision", r.Collision)
	return r, nil
}

func (d *Driver) render(s snake.Snapshot) {
	if d.Renderer != nil {
		d.Renderer.Render(s)
	}
}

func (d *Driver) result() Result {
	snap := d.Game.Snapshot()
	return Result{
		Score:     snap.Score,
		Ticks:     snap.Tick,
		Collision: snap.Collision,
		Final:     snap,
	}
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
