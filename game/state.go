package game

import "fmt"

// State is the session lifecycle state.
type State uint8

const (
	Idle State = iota
	Running
	Paused
	GameOver
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Running:
		return "running"
	case Paused:
		return "paused"
	case GameOver:
		return "game over"
	default:
		return fmt.Sprintf("State(%d)", uint8(s))
	}
}

// Active reports whether a game is in progress.
func (s State) Active() bool {
	return s == Running || s == Paused
}

// Action is a discrete player input.
type Action uint8

const (
	MoveLeft Action = iota
	MoveRight
	SoftDrop
	Rotate
	TogglePause
)

func (a Action) String() string {
	switch a {
	case MoveLeft:
		return "left"
	case MoveRight:
		return "right"
	case SoftDrop:
		return "drop"
	case Rotate:
		return "rotate"
	case TogglePause:
		return "pause"
	default:
		return fmt.Sprintf("Action(%d)", uint8(a))
	}
}
