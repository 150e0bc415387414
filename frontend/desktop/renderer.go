// Package desktop runs a session in an ebiten window: a recorded display
// list drawn with the vector package, a text side panel, synthesized audio
// and keyboard input.
package desktop

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/plus3/coinfall/coin"
	"github.com/plus3/coinfall/config"
)

type opKind uint8

const (
	opCell opKind = iota
	opParticle
	opPaused
	opGameOver
)

type drawOp struct {
	kind    opKind
	coin    coin.Type
	x, y    float32
	size    float32
	opacity float32
}

var (
	fieldColor   = color.RGBA{17, 17, 17, 255}
	gridColor    = color.RGBA{34, 34, 34, 255}
	overlayColor = color.RGBA{0, 0, 0, 160}
	textColor    = color.RGBA{240, 240, 240, 255}
)

// Renderer records the session's draw calls during Update and replays them
// onto the screen in Draw, since ebiten only allows drawing from Draw.
type Renderer struct {
	blockSize  float32
	rows, cols int
	ops        []drawOp
}

func NewRenderer(cfg config.Config) *Renderer {
	return &Renderer{
		blockSize: float32(cfg.BlockSize),
		rows:      cfg.Rows,
		cols:      cfg.Cols,
	}
}

// FieldSize returns the playfield size in pixels.
func (r *Renderer) FieldSize() (int, int) {
	return r.cols * int(r.blockSize), r.rows * int(r.blockSize)
}

func (r *Renderer) Clear() {
	r.ops = r.ops[:0]
}

func (r *Renderer) DrawCell(c coin.Type, col, row int) {
	r.ops = append(r.ops, drawOp{
		kind: opCell,
		coin: c,
		x:    float32(col) * r.blockSize,
		y:    float32(row) * r.blockSize,
		size: r.blockSize,
	})
}

func (r *Renderer) DrawParticle(c coin.Type, x, y, size, opacity float64) {
	r.ops = append(r.ops, drawOp{
		kind:    opParticle,
		coin:    c,
		x:       float32(x),
		y:       float32(y),
		size:    float32(size),
		opacity: float32(opacity),
	})
}

func (r *Renderer) DrawPaused() {
	r.ops = append(r.ops, drawOp{kind: opPaused})
}

func (r *Renderer) DrawGameOver() {
	r.ops = append(r.ops, drawOp{kind: opGameOver})
}

// Present draws the recorded frame.
func (r *Renderer) Present(screen *ebiten.Image) {
	w, h := r.FieldSize()
	vector.DrawFilledRect(screen, 0, 0, float32(w), float32(h), fieldColor, false)
	for row := range r.rows {
		for col := range r.cols {
			x, y := float32(col)*r.blockSize, float32(row)*r.blockSize
			vector.StrokeRect(screen, x, y, r.blockSize, r.blockSize, 1, gridColor, false)
		}
	}

	for _, op := range r.ops {
		switch op.kind {
		case opCell:
			r.presentCell(screen, op)
		case opParticle:
			vector.DrawFilledCircle(screen, op.x, op.y, op.size/2, tint(op.coin, op.opacity), true)
		case opPaused:
			r.presentBanner(screen, "PAUSED")
		case opGameOver:
			r.presentBanner(screen, "GAME OVER")
		}
	}
}

func (r *Renderer) presentCell(screen *ebiten.Image, op drawOp) {
	vector.DrawFilledRect(screen, op.x+1, op.y+1, op.size-2, op.size-2, tint(op.coin, 1), false)
	ebitenutil.DebugPrintAt(screen, string(op.coin.Symbol()), int(op.x+op.size/2)-3, int(op.y+op.size/2)-8)
}

func (r *Renderer) presentBanner(screen *ebiten.Image, text string) {
	w, h := r.FieldSize()
	vector.DrawFilledRect(screen, 0, float32(h)/2-20, float32(w), 40, overlayColor, false)
	ebitenutil.DebugPrintAt(screen, text, w/2-len(text)*3, h/2-8)
}

func tint(c coin.Type, opacity float32) color.NRGBA {
	rgb := c.RGB()
	return color.NRGBA{R: rgb[0], G: rgb[1], B: rgb[2], A: uint8(opacity * 255)}
}
