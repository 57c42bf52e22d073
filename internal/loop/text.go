package loop

import (
	"fmt"
	"io"

	"github.com/vovakirdan/term-snake/internal/board"
	"github.com/vovakirdan/term-snake/internal/core"
	"github.com/vovakirdan/term-snake/internal/snake"
)

// TextRenderer writes each frame as plain text, separated by a blank line.
// Used by the headless sim command.
type TextRenderer struct {
	w      io.Writer
	screen *core.Screen
	err    error
}

// NewTextRenderer returns a renderer writing to w.
func NewTextRenderer(w io.Writer) *TextRenderer {
	return &TextRenderer{w: w, screen: core.NewScreen(0, 0)}
}

// Render implements Renderer. The first write error is kept and later
// frames are skipped.
func (r *TextRenderer) Render(s snake.Snapshot) {
	if r.err != nil {
		return
	}
	r.screen.Resize(board.Size(s))
	board.Draw(r.screen, s)
	_, r.err = fmt.Fprintf(r.w, "%s\n\n", r.screen.String())
}

// Err returns the first write error, if any.
func (r *TextRenderer) Err() error {
	return r.err
}
