package desktop

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/coinfall/game"
)

// Binding maps a key to a game action.
type Binding struct {
	Key    ebiten.Key
	Action game.Action
}

// DefaultBindings lists the controls in the order they are polled.
var DefaultBindings = []Binding{
	{ebiten.KeyArrowLeft, game.MoveLeft},
	{ebiten.KeyArrowRight, game.MoveRight},
	{ebiten.KeyArrowDown, game.SoftDrop},
	{ebiten.KeyA, game.Rotate},
	{ebiten.KeySpace, game.Rotate},
	{ebiten.KeyP, game.TogglePause},
}

// Actions returns the actions whose keys were pressed this tick.
func Actions(bindings []Binding, pressed func(ebiten.Key) bool) []game.Action {
	var actions []game.Action
	for _, b := range bindings {
		if pressed(b.Key) {
			actions = append(actions, b.Action)
		}
	}
	return actions
}
