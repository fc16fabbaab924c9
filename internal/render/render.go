// Package render draws a snake game onto a core.Screen.
//
// Board cells map to screen cells through a fixed affine transform, so the
// same game state always produces the same picture.
package render

import (
	"fmt"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/snake"
)

// hudHeight is the number of rows above the board border (score line + gap).
const hudHeight = 2

// Source is the read-only view of the game the renderer needs.
// *snake.Game satisfies it.
type Source interface {
	ApplePosition() snake.Position
	SnakePositions() []snake.Position
	Score() int
}

// Layout maps board cells to screen coordinates.
// (OriginX, OriginY) is the top-left screen cell of board cell (0,0); every
// board cell covers CellW x CellH screen cells.
type Layout struct {
	OriginX, OriginY int
	CellW, CellH     int
}

// Centered returns a layout that puts the board in the middle of a screen of
// the given size, below the HUD.
func Centered(screenW, screenH, cellW, cellH int) Layout {
	boardW := snake.BoardSize * cellW
	boardH := snake.BoardSize * cellH

	left := (screenW - boardW) / 2
	top := max((screenH-boardH)/2, hudHeight+1)

	return Layout{
		OriginX: left - snake.MinCoord*cellW,
		OriginY: top - snake.MinCoord*cellH,
		CellW:   cellW,
		CellH:   cellH,
	}
}

// Fits reports whether the board, its border, the HUD and the help line fit
// on a screen of the given size.
func Fits(screenW, screenH, cellW, cellH int) bool {
	return screenW >= snake.BoardSize*cellW+2 &&
		screenH >= snake.BoardSize*cellH+hudHeight+3
}

// CellOrigin returns the top-left screen cell of board cell p.
func (l Layout) CellOrigin(p snake.Position) (x, y int) {
	return l.OriginX + p.Col*l.CellW, l.OriginY + p.Row*l.CellH
}

// Board returns the screen area covered by the board, border excluded.
func (l Layout) Board() core.Rect {
	x, y := l.CellOrigin(snake.Position{Row: snake.MinCoord, Col: snake.MinCoord})
	return core.NewRect(x, y, snake.BoardSize*l.CellW, snake.BoardSize*l.CellH)
}

// Style holds the glyphs and colors used for each board element.
type Style struct {
	Snake       rune
	Head        rune
	Apple       rune
	SnakeColor  core.Color
	AppleColor  core.Color
	BorderColor core.Color
}

// DefaultStyle mirrors the classic look: yellow snake, red apple, white frame.
func DefaultStyle() Style {
	return Style{
		Snake:       '█',
		Head:        '█',
		Apple:       '●',
		SnakeColor:  core.ColorYellow,
		AppleColor:  core.ColorRed,
		BorderColor: core.ColorWhite,
	}
}

// Draw renders the HUD, the board frame, the apple and the snake.
// The snake is drawn last so it covers the apple when they share a cell.
func Draw(dst *core.Screen, l Layout, src Source, st Style) {
	drawHUD(dst, src.Score())
	dst.DrawBox(l.Board().Grow(1), st.BorderColor)

	drawSquare(dst, l, src.ApplePosition(), core.Cell{Rune: st.Apple, Color: st.AppleColor})

	positions := src.SnakePositions()
	for i, p := range positions {
		glyph := st.Snake
		if i == len(positions)-1 {
			glyph = st.Head
		}
		drawSquare(dst, l, p, core.Cell{Rune: glyph, Color: st.SnakeColor})
	}
}

func drawHUD(dst *core.Screen, score int) {
	dst.DrawText(1, 0, fmt.Sprintf("Snake — Score: %d", score), core.ColorDefault)
}

func drawSquare(dst *core.Screen, l Layout, p snake.Position, c core.Cell) {
	x, y := l.CellOrigin(p)
	dst.DrawRect(core.NewRect(x, y, l.CellW, l.CellH), c)
}

// Overlay draws a centered box with two lines of text.
func Overlay(dst *core.Screen, line1, line2 string) {
	maxLen := max(len([]rune(line1)), len([]rune(line2)))
	boxW := maxLen + 4
	boxH := 5
	box := core.NewRect((dst.Width()-boxW)/2, (dst.Height()-boxH)/2, boxW, boxH)

	dst.DrawRect(box, core.Cell{Rune: ' '})
	dst.DrawBox(box, core.ColorDefault)
	dst.DrawTextCentered(box.Y+1, line1, core.ColorDefault)
	dst.DrawTextCentered(box.Y+3, line2, core.ColorDefault)
}

// TooSmall draws the resize notice shown when the board does not fit.
func TooSmall(dst *core.Screen) {
	dst.DrawTextCentered(dst.Height()/2-1, "Window too small", core.ColorDefault)
	dst.DrawTextCentered(dst.Height()/2, "Resize to continue", core.ColorDefault)
}
