package terminal_test

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/plus3/coinfall/frontend/terminal"
	"github.com/plus3/coinfall/game"
	"github.com/stretchr/testify/assert"
)

func TestTranslate(t *testing.T) {
	tests := []struct {
		name    string
		ev      *tcell.EventKey
		command terminal.Command
		action  game.Action
	}{
		{"left", tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone), terminal.Play, game.MoveLeft},
		{"right", tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModNone), terminal.Play, game.MoveRight},
		{"down", tcell.NewEventKey(tcell.KeyDown, 0, tcell.ModNone), terminal.Play, game.SoftDrop},
		{"a", tcell.NewEventKey(tcell.KeyRune, 'a', tcell.ModNone), terminal.Play, game.Rotate},
		{"shift a", tcell.NewEventKey(tcell.KeyRune, 'A', tcell.ModShift), terminal.Play, game.Rotate},
		{"space", tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone), terminal.Play, game.Rotate},
		{"p", tcell.NewEventKey(tcell.KeyRune, 'p', tcell.ModNone), terminal.Play, game.TogglePause},
		{"enter", tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone), terminal.Start, 0},
		{"escape", tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), terminal.Quit, 0},
		{"ctrl-c", tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl), terminal.Quit, 0},
		{"q", tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone), terminal.Quit, 0},
		{"unbound", tcell.NewEventKey(tcell.KeyRune, 'z', tcell.ModNone), terminal.None, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			command, action := terminal.Translate(tt.ev)
			assert.Equal(t, tt.command, command)
			if command == terminal.Play {
				assert.Equal(t, tt.action, action)
			}
		})
	}
}
