package game_test

import (
	"fmt"
	"math/rand/v2"
	"testing"

	"github.com/plus3/coinfall/coin"
	"github.com/plus3/coinfall/config"
	"github.com/plus3/coinfall/game"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

// events is a shared, ordered log of collaborator calls.
type events struct {
	log []string
}

func (e *events) add(format string, args ...any) {
	e.log = append(e.log, fmt.Sprintf(format, args...))
}

type fakeRenderer struct {
	ev        *events
	cells     map[[2]int]coin.Type
	particles int
	paused    bool
	gameOver  bool
}

func (r *fakeRenderer) Clear() {
	r.cells = map[[2]int]coin.Type{}
	r.particles = 0
	r.paused = false
	r.gameOver = false
}

func (r *fakeRenderer) DrawCell(c coin.Type, col, row int) {
	r.cells[[2]int{row, col}] = c
}

func (r *fakeRenderer) DrawParticle(coin.Type, float64, float64, float64, float64) {
	r.particles++
}

func (r *fakeRenderer) DrawPaused() { r.paused = true }

func (r *fakeRenderer) DrawGameOver() {
	r.gameOver = true
	if r.ev != nil {
		r.ev.add("render game over")
	}
}

type fakeAudio struct {
	ev         *events
	playErr    error
	restarts   int
	resumes    int
	stops      int
	milestones int
	playing    bool
}

func (a *fakeAudio) RestartBackground() error {
	a.restarts++
	return a.play()
}

func (a *fakeAudio) PlayBackground() error {
	a.resumes++
	return a.play()
}

func (a *fakeAudio) play() error {
	if a.playErr != nil {
		return a.playErr
	}
	a.playing = true
	return nil
}

func (a *fakeAudio) StopBackground() {
	a.stops++
	a.playing = false
	if a.ev != nil {
		a.ev.add("stop background")
	}
}

func (a *fakeAudio) PlayMilestone() error {
	a.milestones++
	return a.playErr
}

type fakeUI struct {
	ev               *events
	startVisible     bool
	milestoneVisible bool
	milestoneShows   int
	scoreboard       string
	scoreboards      int
	gameOvers        int
}

func (u *fakeUI) SetStartVisible(v bool) {
	u.startVisible = v
	if u.ev != nil {
		u.ev.add("start visible %t", v)
	}
}

func (u *fakeUI) SetMilestoneVisible(v bool) {
	if v {
		u.milestoneShows++
	}
	u.milestoneVisible = v
}

func (u *fakeUI) SetScoreboard(text string) {
	u.scoreboard = text
	u.scoreboards++
}

func (u *fakeUI) NotifyGameOver() {
	u.gameOvers++
	if u.ev != nil {
		u.ev.add("notify game over")
	}
}

type harness struct {
	session  *game.Session
	renderer *fakeRenderer
	audio    *fakeAudio
	ui       *fakeUI
	events   *events
	logs     *observer.ObservedLogs
}

// newHarness builds a session that spawns only the given shapes as single-
// coin pieces, so every spawn lands at a known anchor.
func newHarness(t *testing.T, pool []string, mutate ...func(*config.Config)) *harness {
	t.Helper()

	cfg := config.Default()
	cfg.SpawnPool = pool
	cfg.MonoProbability = 1
	for _, m := range mutate {
		m(&cfg)
	}

	ev := &events{}
	h := &harness{
		renderer: &fakeRenderer{ev: ev, cells: map[[2]int]coin.Type{}},
		audio:    &fakeAudio{ev: ev},
		ui:       &fakeUI{ev: ev, startVisible: true},
		events:   ev,
	}

	core, logs := observer.New(zapcore.DebugLevel)
	h.logs = logs

	session, err := game.NewSession(cfg,
		game.WithRenderer(h.renderer),
		game.WithAudio(h.audio),
		game.WithUI(h.ui),
		game.WithLogger(zap.New(core)),
		game.WithRand(rand.New(rand.NewPCG(1, 2))),
	)
	require.NoError(t, err)
	h.session = session
	return h
}

// settle soft-drops the active piece until it merges and returns the
// number of drops it took.
func (h *harness) settle(t *testing.T) int {
	t.Helper()
	before := h.session.Snapshot().PiecesPlaced
	for i := 1; i <= h.session.Config().Rows+1; i++ {
		h.session.Handle(game.SoftDrop)
		if h.session.Snapshot().PiecesPlaced > before {
			return i
		}
	}
	t.Fatal("piece never settled")
	return 0
}

func (h *harness) pieceCoin(t *testing.T) coin.Type {
	t.Helper()
	p, ok := h.session.Current()
	require.True(t, ok)
	cells := p.Cells()
	require.NotEmpty(t, cells)
	return cells[0].Coin
}
