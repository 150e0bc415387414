package terminal

import (
	"unicode"

	"github.com/gdamore/tcell/v2"
	"github.com/plus3/coinfall/game"
)

// Command is what a key press asks the app to do.
type Command int

const (
	None Command = iota
	Play
	Start
	Quit
)

// Translate maps a key event to a command and, for Play, the action.
func Translate(ev *tcell.EventKey) (Command, game.Action) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return Quit, 0
	case tcell.KeyEnter:
		return Start, 0
	case tcell.KeyLeft:
		return Play, game.MoveLeft
	case tcell.KeyRight:
		return Play, game.MoveRight
	case tcell.KeyDown:
		return Play, game.SoftDrop
	case tcell.KeyRune:
		switch unicode.ToLower(ev.Rune()) {
		case 'q':
			return Quit, 0
		case 'a', ' ':
			return Play, game.Rotate
		case 'p':
			return Play, game.TogglePause
		}
	}
	return None, 0
}
