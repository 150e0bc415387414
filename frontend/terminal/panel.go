package terminal

import (
	"github.com/gdamore/tcell/v2"
	"github.com/plus3/coinfall/frontend/hud"
)

const panelWidth = 24

func drawPanel(screen tcell.Screen, state *hud.State, x int) {
	_, height := screen.Size()
	lines := state.Lines()
	for y := range height {
		for i := range panelWidth {
			screen.SetContent(x+i, y, ' ', nil, tcell.StyleDefault)
		}
		if y < len(lines) {
			drawText(screen, x, y, lines[y], textStyle)
		}
	}
}
