// Package board draws a snake.Snapshot into a core.Screen: the border ring,
// the food, the snake and a one-line HUD. It only reads the snapshot.
package board

import (
	"fmt"
	"unicode/utf8"

	"github.com/vovakirdan/term-snake/internal/core"
	"github.com/vovakirdan/term-snake/internal/snake"
)

// HUDHeight is the number of rows above the grid.
const HUDHeight = 1

// FooterHeight is the number of rows below the grid. The game over
// message is drawn there so it never covers the board.
const FooterHeight = 1

// Glyphs and colors for board elements.
const (
	BorderRune = '■'
	FoodRune   = '●'
	HeadRune   = '■'
	BodyRune   = '■'

	BorderColor = core.ColorGray
	FoodColor   = core.ColorGreen
	HeadColor   = core.ColorRed
	BodyColor   = core.ColorYellow
	HUDColor    = core.ColorBrightWhite
)

// Size returns the screen area needed to draw a snapshot: wide enough for
// the grid, the HUD and the game over message.
func Size(s snake.Snapshot) (w, h int) {
	w = max(s.Width, runeLen(hudText(s)), runeLen(GameOverText(s.Score)))
	return w, HUDHeight + s.Height + FooterHeight
}

// Draw clears dst and renders the HUD, the grid and, once the game is over,
// the footer message. The grid's top-left corner is placed at (0, HUDHeight).
func Draw(dst *core.Screen, s snake.Snapshot) {
	dst.Clear()
	drawHUD(dst, s)

	grid := core.NewRect(0, HUDHeight, s.Width, s.Height)
	dst.DrawFrame(grid, BorderRune, BorderColor)

	at := func(p snake.Position, r rune, c core.Color) {
		dst.SetCell(grid.X+p.X, grid.Y+p.Y, r, c)
	}

	at(s.Food, FoodRune, FoodColor)
	for _, p := range s.Body {
		at(p, BodyRune, BodyColor)
	}
	// Head last so it stays visible on the border cell it crashed into
	at(s.Head, HeadRune, HeadColor)

	if s.Terminal() {
		drawGameOver(dst, grid, s)
	}
}

func hudText(s snake.Snapshot) string {
	return fmt.Sprintf(" Score: %d  Length: %d", s.Score, len(s.Body)+1)
}

func drawHUD(dst *core.Screen, s snake.Snapshot) {
	dst.DrawText(0, 0, hudText(s), HUDColor)
}

// GameOverText is the message shown when the game ends.
func GameOverText(score int) string {
	return fmt.Sprintf("Game Over! Score: %d", score)
}

// drawGameOver writes the message on the footer row, centered on the screen.
func drawGameOver(dst *core.Screen, grid core.Rect, s snake.Snapshot) {
	dst.DrawTextCentered(grid.Bottom(), GameOverText(s.Score), HUDColor)
}

func runeLen(s string) int {
	return utf8.RuneCountInString(s)
}
