package game

import (
	"github.com/plus3/coinfall/board"
	"github.com/plus3/coinfall/coin"
	"github.com/plus3/coinfall/config"
	"github.com/plus3/coinfall/ecs"
	"github.com/plus3/coinfall/loop"
	"github.com/plus3/coinfall/piece"
	"github.com/plus3/coinfall/score"
)

// Render draws the current state to r: settled cells, the active piece,
// particles, and the pause or game-over overlay.
func (s *Session) Render(r Renderer) {
	r.Clear()
	if s.state == Idle {
		return
	}

	s.grid.Each(func(row, col int, c coin.Type) {
		r.DrawCell(c, col, row)
	})

	if s.hasPiece {
		for _, cell := range s.current.Cells() {
			if cell.Coin.Empty() {
				continue
			}
			r.DrawCell(cell.Coin, cell.Col, cell.Row)
		}
	}

	// faded particles stay in storage until the frame's commands flush
	s.particles.Execute()
	for p := range s.particles.Values() {
		if p.Alpha > 0 {
			r.DrawParticle(p.Coin, p.Position.X, p.Position.Y, p.Size, p.Alpha)
		}
	}

	switch s.state {
	case Paused:
		r.DrawPaused()
	case GameOver:
		r.DrawGameOver()
	}
}

func (s *Session) State() State              { return s.state }
func (s *Session) Config() config.Config     { return s.cfg }
func (s *Session) Grid() *board.Grid         { return s.grid }
func (s *Session) Score() *score.Board       { return s.score }
func (s *Session) Stats() loop.SchedulerStats { return s.scheduler.Stats() }

// Entities exposes the particle storage for inspection. Callers must not
// mutate it while a frame runs.
func (s *Session) Entities() *ecs.Storage { return s.entities }

// Particles copies every live particle in storage order.
func (s *Session) Particles() []Particle {
	s.particles.Execute()
	out := make([]Particle, 0, s.particles.Len())
	for p := range s.particles.Values() {
		out = append(out, p.snapshot())
	}
	return out
}

// Current returns the active piece. The boolean is false when no piece is
// falling: before the first start and after game over.
func (s *Session) Current() (piece.Piece, bool) {
	return s.current, s.hasPiece
}

// Snapshot summarizes the session for overlays and reports.
type Snapshot struct {
	State        State
	Games        int
	Piece        piece.Piece
	HasPiece     bool
	Scoreboard   string
	Points       int
	LinesCleared int
	PiecesPlaced int
	Particles    int
	DropProgress float64
}

func (s *Session) Snapshot() Snapshot {
	return Snapshot{
		State:        s.state,
		Games:        s.games,
		Piece:        s.current,
		HasPiece:     s.hasPiece,
		Scoreboard:   s.score.String(),
		Points:       s.score.Total(),
		LinesCleared: s.linesCleared,
		PiecesPlaced: s.piecesPlaced,
		Particles:    s.entities.Len(),
		DropProgress: s.dropAccum / s.cfg.DropInterval.Seconds(),
	}
}
