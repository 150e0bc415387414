package desktop

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/plus3/coinfall/frontend/hud"
)

const lineHeight = 16

func drawPanel(screen *ebiten.Image, state *hud.State, x int) {
	for i, line := range state.Lines() {
		ebitenutil.DebugPrintAt(screen, line, x, 8+i*lineHeight)
	}
}
