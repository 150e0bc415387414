package terminal_test

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/plus3/coinfall/config"
	"github.com/plus3/coinfall/frontend/terminal"
	"github.com/plus3/coinfall/game"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func key(k tcell.Key, ch rune) *tcell.EventKey {
	return tcell.NewEventKey(k, ch, tcell.ModNone)
}

func TestHandleEvent(t *testing.T) {
	screen := newScreen(t)
	cfg := config.Default()
	cfg.Seed = 7

	app, err := terminal.NewApp(screen, cfg, zaptest.NewLogger(t), nil)
	require.NoError(t, err)
	session := app.Session()

	assert.True(t, app.HandleEvent(key(tcell.KeyLeft, 0)))
	assert.Equal(t, game.Idle, session.State())

	assert.True(t, app.HandleEvent(key(tcell.KeyEnter, 0)))
	assert.Equal(t, game.Running, session.State())
	assert.Equal(t, 1, session.Snapshot().Games)

	assert.True(t, app.HandleEvent(key(tcell.KeyEnter, 0)))
	assert.Equal(t, 1, session.Snapshot().Games, "enter is ignored while the start control is hidden")

	assert.True(t, app.HandleEvent(key(tcell.KeyRune, 'p')))
	assert.Equal(t, game.Paused, session.State())

	assert.True(t, app.HandleEvent(tcell.NewEventResize(80, 30)))
	assert.False(t, app.HandleEvent(key(tcell.KeyRune, 'q')))
}

func TestNewAppRejectsInvalidConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Rows = 1

	_, err := terminal.NewApp(newScreen(t), cfg, zaptest.NewLogger(t), nil)
	assert.Error(t, err)
}
