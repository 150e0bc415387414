package game

import "github.com/plus3/coinfall/coin"

// Renderer draws one frame. Cell coordinates are grid columns and rows;
// particle coordinates are pixels with BlockSize pixels per cell.
type Renderer interface {
	Clear()
	DrawCell(c coin.Type, col, row int)
	DrawParticle(c coin.Type, x, y, size, opacity float64)
	DrawPaused()
	DrawGameOver()
}

// Audio plays background music and sound cues. Implementations must not
// block; returned errors are logged and otherwise ignored.
//
// RestartBackground plays the music from the beginning and is used when a
// game starts. PlayBackground continues from where StopBackground left it.
type Audio interface {
	RestartBackground() error
	PlayBackground() error
	StopBackground()
	PlayMilestone() error
}

// UI is the surface around the playfield: the start control, the
// milestone visual, the scoreboard text and the game-over notice.
type UI interface {
	SetStartVisible(visible bool)
	SetMilestoneVisible(visible bool)
	SetScoreboard(text string)
	NotifyGameOver()
}

type nopAudio struct{}

func (nopAudio) RestartBackground() error { return nil }
func (nopAudio) PlayBackground() error    { return nil }
func (nopAudio) StopBackground()          {}
func (nopAudio) PlayMilestone() error     { return nil }

type nopUI struct{}

func (nopUI) SetStartVisible(bool)     {}
func (nopUI) SetMilestoneVisible(bool) {}
func (nopUI) SetScoreboard(string)     {}
func (nopUI) NotifyGameOver()          {}
