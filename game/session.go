// Package game runs a coin-tagged falling-block session: the lifecycle
// state machine, drop timing, line clears with scoring and particles, and
// player input. Rendering, audio and the surrounding UI are injected.
package game

import (
	"context"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/plus3/coinfall/board"
	"github.com/plus3/coinfall/coin"
	"github.com/plus3/coinfall/config"
	"github.com/plus3/coinfall/ecs"
	"github.com/plus3/coinfall/loop"
	"github.com/plus3/coinfall/piece"
	"github.com/plus3/coinfall/score"
	"go.uber.org/zap"
)

// Session owns every piece of mutable game state. It is driven from a
// single goroutine: input through Handle and time through Frame.
type Session struct {
	cfg config.Config
	log *zap.Logger
	rng *rand.Rand

	renderer Renderer
	audio    Audio
	ui       UI

	factory   *piece.Factory
	grid      *board.Grid
	score     *score.Board
	current   piece.Piece
	hasPiece  bool
	state     State
	dropAccum float64

	linesCleared int
	piecesPlaced int
	games        int

	// entities holds the particle entities and the playfield singleton;
	// commands buffers effects raised by input outside a frame.
	entities  *ecs.Storage
	particles *ecs.Query[particleView]
	commands  *ecs.Commands
	scheduler *loop.Scheduler
}

// playfield is the singleton through which systems reach the session.
type playfield struct {
	session *Session
}

// Option configures a Session.
type Option func(*Session)

// WithRenderer draws every frame run by Frame to r.
func WithRenderer(r Renderer) Option {
	return func(s *Session) { s.renderer = r }
}

// WithAudio routes music and sound cues to a; sessions are silent by default.
func WithAudio(a Audio) Option {
	return func(s *Session) { s.audio = a }
}

// WithUI reports start, milestone, scoreboard and game-over changes to ui.
func WithUI(ui UI) Option {
	return func(s *Session) { s.ui = ui }
}

// WithLogger sets the logger; sessions log nothing by default.
func WithLogger(log *zap.Logger) Option {
	return func(s *Session) { s.log = log }
}

// WithRand replaces the random source used for pieces and particles.
func WithRand(rng *rand.Rand) Option {
	return func(s *Session) { s.rng = rng }
}

// NewSession creates an idle session. Call Start to begin a game.
func NewSession(cfg config.Config, opts ...Option) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("new session: %w", err)
	}

	s := &Session{
		cfg:   cfg,
		log:   zap.NewNop(),
		audio: nopAudio{},
		ui:    nopUI{},
		grid:  board.NewGrid(cfg.Rows, cfg.Cols),
		score: score.NewBoard(cfg.MilestoneThreshold),
	}
	for _, opt := range opts {
		opt(s)
	}

	if s.rng == nil {
		seed := cfg.Seed
		if seed == 0 {
			seed = rand.Uint64()
		}
		s.rng = rand.New(rand.NewPCG(seed, seed>>1|1))
	}
	s.factory = piece.NewFactory(s.rng, cfg.Pool(), cfg.MonoProbability, cfg.Cols)

	s.entities = ecs.NewStorage(newComponentRegistry())
	ecs.NewSingleton(s.entities, playfield{session: s})
	s.particles = ecs.NewQuery[particleView](s.entities)
	s.commands = ecs.NewCommands()

	s.scheduler = loop.NewScheduler(s.entities)
	s.scheduler.Register(&dropSystem{})
	s.scheduler.Register(&particleSystem{})
	s.scheduler.Register(&renderSystem{})

	return s, nil
}

// Start begins a new game, discarding any game in progress.
func (s *Session) Start() {
	s.grid.Reset()
	s.score.Reset()
	s.despawnParticles()
	s.dropAccum = 0
	s.linesCleared = 0
	s.piecesPlaced = 0
	s.games++

	s.current = s.factory.Spawn()
	s.hasPiece = true
	s.setState(Running)

	s.ui.SetMilestoneVisible(false)
	s.ui.SetStartVisible(false)
	s.ui.SetScoreboard(s.score.String())
	if err := s.audio.RestartBackground(); err != nil {
		s.log.Debug("background audio failed", zap.Error(err))
	}
}

// TogglePause switches between Running and Paused. It does nothing in
// any other state.
func (s *Session) TogglePause() {
	switch s.state {
	case Running:
		s.setState(Paused)
		s.audio.StopBackground()
	case Paused:
		s.setState(Running)
		if err := s.audio.PlayBackground(); err != nil {
			s.log.Debug("background audio failed", zap.Error(err))
		}
	}
}

// Handle applies one player action and reports whether it changed the
// game. Actions are ignored unless a game is running; while paused only
// TogglePause is honored.
func (s *Session) Handle(a Action) bool {
	switch s.state {
	case Running:
	case Paused:
		if a == TogglePause {
			s.TogglePause()
			return true
		}
		return false
	default:
		return false
	}

	switch a {
	case MoveLeft:
		return s.shift(-1)
	case MoveRight:
		return s.shift(1)
	case SoftDrop:
		s.drop(s.commands)
		s.commands.Flush(s.entities)
		return true
	case Rotate:
		return s.rotate()
	case TogglePause:
		s.TogglePause()
		return true
	}
	return false
}

// Frame advances the session by dt seconds and reports whether the game
// is still in progress. Nothing runs while idle or after game over.
func (s *Session) Frame(dt float64) bool {
	if !s.state.Active() {
		return false
	}
	s.scheduler.Once(dt)
	return s.state.Active()
}

// Run drives frames at the given interval until ctx ends or the game stops.
func (s *Session) Run(ctx context.Context, interval time.Duration) {
	if !s.state.Active() {
		return
	}
	s.scheduler.Run(ctx, interval, func() bool { return s.state.Active() })
}

func (s *Session) shift(dx int) bool {
	if s.grid.Collides(s.current, dx, 0) {
		return false
	}
	s.current.X += dx
	return true
}

func (s *Session) rotate() bool {
	rotated := s.current.Rotated()
	if s.grid.Collides(rotated, 0, 0) {
		return false
	}
	s.current = rotated
	return true
}

// drop moves the active piece down one row, or settles it and spawns the
// next one when it cannot move. Particles and UI and audio effects are
// queued on cmds.
func (s *Session) drop(cmds *ecs.Commands) {
	if !s.grid.Collides(s.current, 0, 1) {
		s.current.Y++
		return
	}

	s.grid.Merge(s.current)
	s.piecesPlaced++
	s.clearLines(cmds)

	next := s.factory.Spawn()
	if s.grid.Collides(next, 0, 0) {
		s.gameOver(cmds)
		return
	}
	s.current = next
}

func (s *Session) clearLines(cmds *ecs.Commands) {
	cleared := s.grid.ClearFull()
	for _, cell := range cleared {
		burst(cmds, s.rng, s.cfg.ParticlesPerCell, cell.Col, cell.Row, s.cfg.BlockSize, cell.Coin)
		s.score.RecordClear(cell.Coin)
	}
	if len(cleared) > 0 {
		s.linesCleared += len(cleared) / s.cfg.Cols
		s.log.Debug("lines cleared",
			zap.Int("cells", len(cleared)),
			zap.Stringer("score", s.score),
		)
	}

	if s.score.Milestone() {
		s.log.Info("milestone reached", zap.Int("doge", s.score.Count(coin.DOGE)))
		cmds.Defer(func() {
			s.ui.SetMilestoneVisible(true)
			if err := s.audio.PlayMilestone(); err != nil {
				s.log.Debug("milestone sound failed", zap.Error(err))
			}
		})
	}

	text := s.score.String()
	cmds.Defer(func() { s.ui.SetScoreboard(text) })
}

func (s *Session) gameOver(cmds *ecs.Commands) {
	s.setState(GameOver)
	s.hasPiece = false
	s.log.Info("game over",
		zap.Stringer("score", s.score),
		zap.Int("lines", s.linesCleared),
		zap.Int("pieces", s.piecesPlaced),
	)

	cmds.Defer(func() {
		s.ui.NotifyGameOver()
		s.ui.SetMilestoneVisible(false)
		s.audio.StopBackground()
		s.ui.SetStartVisible(true)
	})
}

func (s *Session) despawnParticles() {
	s.particles.Execute()
	for id := range s.particles.Iter() {
		s.entities.Delete(id)
	}
}

func (s *Session) setState(next State) {
	if s.state == next {
		return
	}
	s.log.Debug("state change", zap.Stringer("from", s.state), zap.Stringer("to", next))
	s.state = next
}
