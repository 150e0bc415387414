package terminal

import (
	"context"
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/plus3/coinfall/config"
	"github.com/plus3/coinfall/frontend/hud"
	"github.com/plus3/coinfall/game"
	"github.com/plus3/coinfall/loop"
	"go.uber.org/zap"
)

// FrameInterval is the redraw period of the terminal loop.
const FrameInterval = 16 * time.Millisecond

// App drives a session from tcell events and a frame ticker.
type App struct {
	screen   tcell.Screen
	session  *game.Session
	renderer *Renderer
	hud      *hud.State
	log      *zap.Logger
}

// NewApp wires a session to screen. The screen must already be
// initialized. A nil audio runs the game silent.
func NewApp(screen tcell.Screen, cfg config.Config, log *zap.Logger, audio game.Audio) (*App, error) {
	a := &App{
		screen:   screen,
		renderer: NewRenderer(screen, cfg),
		hud:      hud.New(),
		log:      log,
	}

	opts := []game.Option{
		game.WithRenderer(a.renderer),
		game.WithUI(a.hud),
		game.WithLogger(log),
	}
	if audio != nil {
		opts = append(opts, game.WithAudio(audio))
	}

	session, err := game.NewSession(cfg, opts...)
	if err != nil {
		return nil, fmt.Errorf("terminal: %w", err)
	}
	a.session = session
	return a, nil
}

func (a *App) Session() *game.Session { return a.session }

// Run blocks until the player quits or ctx is cancelled.
func (a *App) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := a.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()

	ticker := time.NewTicker(FrameInterval)
	defer ticker.Stop()

	timer := loop.NewFrameTimer()
	a.draw(0)

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev := <-events:
			if !a.HandleEvent(ev) {
				a.log.Info("quit requested")
				return nil
			}

		case <-ticker.C:
			a.draw(timer.Delta())
		}
	}
}

// HandleEvent applies one terminal event and reports whether the app
// should keep running.
func (a *App) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		cmd, action := Translate(ev)
		switch cmd {
		case Quit:
			return false
		case Start:
			if a.hud.StartVisible() {
				a.session.Start()
			}
		case Play:
			a.session.Handle(action)
		}

	case *tcell.EventResize:
		a.screen.Sync()
	}

	return true
}

func (a *App) draw(dt float64) {
	if !a.session.Frame(dt) {
		a.session.Render(a.renderer)
	}

	w, _ := a.renderer.Size()
	drawPanel(a.screen, a.hud, w+2)
	a.screen.Show()
}
