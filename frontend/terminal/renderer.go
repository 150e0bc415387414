// Package terminal runs a session in a tcell screen with beep audio. Each
// grid cell is two terminal columns wide.
package terminal

import (
	"github.com/gdamore/tcell/v2"
	"github.com/plus3/coinfall/coin"
	"github.com/plus3/coinfall/config"
)

const cellWidth = 2

var (
	borderStyle = tcell.StyleDefault.Foreground(tcell.ColorGray)
	bannerStyle = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlack).Bold(true)
	textStyle   = tcell.StyleDefault.Foreground(tcell.ColorWhite)
)

// Renderer draws a session frame inside a border at the top-left of the
// screen. It implements game.Renderer.
type Renderer struct {
	screen     tcell.Screen
	rows, cols int
	blockSize  float64
}

func NewRenderer(screen tcell.Screen, cfg config.Config) *Renderer {
	return &Renderer{
		screen:    screen,
		rows:      cfg.Rows,
		cols:      cfg.Cols,
		blockSize: float64(cfg.BlockSize),
	}
}

// Size returns the width and height of the bordered field in terminal cells.
func (r *Renderer) Size() (int, int) {
	return r.cols*cellWidth + 2, r.rows + 2
}

func (r *Renderer) Clear() {
	w, h := r.Size()
	for y := range h {
		for x := range w {
			ch := ' '
			switch {
			case (x == 0 || x == w-1) && (y == 0 || y == h-1):
				ch = '+'
			case x == 0 || x == w-1:
				ch = '|'
			case y == 0 || y == h-1:
				ch = '-'
			}
			r.screen.SetContent(x, y, ch, nil, borderStyle)
		}
	}
}

func (r *Renderer) DrawCell(c coin.Type, col, row int) {
	if col < 0 || col >= r.cols || row < 0 || row >= r.rows {
		return
	}
	style := tcell.StyleDefault.Background(color(c)).Foreground(tcell.ColorBlack)
	x, y := 1+col*cellWidth, 1+row
	r.screen.SetContent(x, y, c.Symbol(), nil, style)
	r.screen.SetContent(x+1, y, ' ', nil, style)
}

// DrawParticle maps pixel coordinates onto the cell grid. Particles that
// leave the field are not drawn.
func (r *Renderer) DrawParticle(c coin.Type, x, y, size, opacity float64) {
	if x < 0 || y < 0 {
		return
	}
	col := int(x / r.blockSize * cellWidth)
	row := int(y / r.blockSize)
	if col >= r.cols*cellWidth || row >= r.rows {
		return
	}

	ch := '.'
	if opacity > 0.5 {
		ch = '*'
	}
	r.screen.SetContent(1+col, 1+row, ch, nil, tcell.StyleDefault.Foreground(color(c)))
}

func (r *Renderer) DrawPaused()   { r.banner("PAUSED") }
func (r *Renderer) DrawGameOver() { r.banner("GAME OVER") }

func (r *Renderer) banner(text string) {
	w, h := r.Size()
	x := (w - len(text)) / 2
	drawText(r.screen, x, h/2, text, bannerStyle)
}

func drawText(screen tcell.Screen, x, y int, text string, style tcell.Style) {
	for i, ch := range []rune(text) {
		screen.SetContent(x+i, y, ch, nil, style)
	}
}

func color(c coin.Type) tcell.Color {
	rgb := c.RGB()
	return tcell.NewRGBColor(int32(rgb[0]), int32(rgb[1]), int32(rgb[2]))
}
