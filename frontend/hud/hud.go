// Package hud holds the state of the panel beside the playfield: the start
// control, the milestone visual, the game-over notice and the scoreboard.
// Front ends draw its Lines however their surface allows.
package hud

import "strings"

// StartPrompt is shown while the start control is visible.
const StartPrompt = "Press ENTER to start"

// MilestoneCaption is the last line of the milestone visual.
const MilestoneCaption = "MUCH COIN. WOW."

var milestoneArt = []string{
	"   / \\__",
	"  (    @\\___",
	"  /         O",
	" /   (_____/",
	"/_____/   U",
	MilestoneCaption,
}

var controls = []string{
	"<- -> move",
	"DOWN drop",
	"A/SPACE rotate",
	"P pause",
}

// State implements game.UI.
type State struct {
	startVisible     bool
	milestoneVisible bool
	gameOverNotice   bool
	scoreboard       string
}

func New() *State {
	return &State{startVisible: true}
}

// SetStartVisible shows or hides the start control. Hiding it dismisses
// the game-over notice.
func (s *State) SetStartVisible(visible bool) {
	s.startVisible = visible
	if !visible {
		s.gameOverNotice = false
	}
}

func (s *State) SetMilestoneVisible(visible bool) { s.milestoneVisible = visible }
func (s *State) SetScoreboard(text string)        { s.scoreboard = text }
func (s *State) NotifyGameOver()                  { s.gameOverNotice = true }

func (s *State) StartVisible() bool     { return s.startVisible }
func (s *State) MilestoneVisible() bool { return s.milestoneVisible }
func (s *State) Scoreboard() string     { return s.scoreboard }

// Lines returns the panel text top to bottom.
func (s *State) Lines() []string {
	lines := []string{"COINFALL", ""}

	if s.scoreboard != "" {
		lines = append(lines, strings.Split(s.scoreboard, "|")...)
		lines = append(lines, "")
	}

	if s.milestoneVisible {
		lines = append(lines, milestoneArt...)
		lines = append(lines, "")
	}

	if s.gameOverNotice {
		lines = append(lines, "Game Over", "")
	}

	if s.startVisible {
		return append(lines, StartPrompt)
	}
	return append(lines, controls...)
}
