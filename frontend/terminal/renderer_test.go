package terminal_test

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/plus3/coinfall/coin"
	"github.com/plus3/coinfall/config"
	"github.com/plus3/coinfall/frontend/terminal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newScreen(t *testing.T) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	screen.SetSize(80, 30)
	t.Cleanup(screen.Fini)
	return screen
}

func runeAt(screen tcell.Screen, x, y int) rune {
	ch, _, _, _ := screen.GetContent(x, y)
	return ch
}

func TestRendererBorderAndCells(t *testing.T) {
	screen := newScreen(t)
	r := terminal.NewRenderer(screen, config.Default())

	w, h := r.Size()
	assert.Equal(t, 22, w)
	assert.Equal(t, 22, h)

	r.Clear()
	assert.Equal(t, '+', runeAt(screen, 0, 0))
	assert.Equal(t, '|', runeAt(screen, 0, 5))
	assert.Equal(t, '-', runeAt(screen, 5, 21))

	r.DrawCell(coin.ETH, 0, 0)
	r.DrawCell(coin.XRP, 9, 19)
	r.DrawCell(coin.BTC, 10, 0)

	assert.Equal(t, 'E', runeAt(screen, 1, 1))
	assert.Equal(t, ' ', runeAt(screen, 2, 1))
	assert.Equal(t, 'X', runeAt(screen, 19, 20))
	assert.Equal(t, '|', runeAt(screen, 21, 1))
}

func TestRendererParticles(t *testing.T) {
	screen := newScreen(t)
	r := terminal.NewRenderer(screen, config.Default())
	r.Clear()

	r.DrawParticle(coin.DOGE, 36, 60, 6, 0.9)
	r.DrawParticle(coin.DOGE, 0, 0, 6, 0.2)
	r.DrawParticle(coin.DOGE, -5, 0, 6, 1)
	r.DrawParticle(coin.DOGE, 1000, 0, 6, 1)

	assert.Equal(t, '*', runeAt(screen, 1+3, 1+2))
	assert.Equal(t, '.', runeAt(screen, 1, 1))
}

func TestRendererBanners(t *testing.T) {
	screen := newScreen(t)
	r := terminal.NewRenderer(screen, config.Default())
	r.Clear()

	r.DrawPaused()
	assert.Equal(t, 'P', runeAt(screen, 8, 11))

	r.Clear()
	r.DrawGameOver()
	assert.Equal(t, 'G', runeAt(screen, 6, 11))
}
