package desktop

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/plus3/coinfall/config"
	"github.com/plus3/coinfall/debugui"
	debugui_ebiten "github.com/plus3/coinfall/debugui/ebiten"
	"github.com/plus3/coinfall/frontend/hud"
	"github.com/plus3/coinfall/game"
	"github.com/plus3/coinfall/loop"
	"go.uber.org/zap"
)

const (
	Title      = "Coinfall"
	panelWidth = 200
)

var backgroundColor = color.RGBA{8, 8, 12, 255}

// App implements ebiten.Game around a session.
type App struct {
	session  *game.Session
	renderer *Renderer
	hud      *hud.State
	timer    *loop.FrameTimer
	bindings []Binding
	log      *zap.Logger

	overlay *debugui.Overlay
	imgui   *debugui_ebiten.ImguiBackend
}

// NewApp builds the window, its collaborators and the session. With debug
// set, Dear ImGui panels are drawn over the game.
func NewApp(cfg config.Config, log *zap.Logger, debug bool) (*App, error) {
	a := &App{
		renderer: NewRenderer(cfg),
		hud:      hud.New(),
		timer:    loop.NewFrameTimer(),
		bindings: DefaultBindings,
		log:      log,
	}

	opts := []game.Option{
		game.WithRenderer(a.renderer),
		game.WithUI(a.hud),
		game.WithLogger(log),
	}
	if cfg.Audio.Enabled {
		opts = append(opts, game.WithAudio(NewAudio(cfg.Audio.Volume)))
	}

	session, err := game.NewSession(cfg, opts...)
	if err != nil {
		return nil, fmt.Errorf("desktop: %w", err)
	}
	a.session = session

	if debug {
		w, h := a.windowSize()
		a.imgui = debugui_ebiten.New(Title, w+600, h)
		a.overlay = debugui.NewOverlay(120)
	}

	return a, nil
}

func (a *App) windowSize() (int, int) {
	w, h := a.renderer.FieldSize()
	return w + panelWidth, h
}

// Run opens the window and blocks until it is closed.
func (a *App) Run() error {
	if a.imgui == nil {
		w, h := a.windowSize()
		ebiten.SetWindowSize(w, h)
		ebiten.SetWindowTitle(Title)
	}
	a.timer.Reset()
	return ebiten.RunGame(a)
}

func (a *App) Update() error {
	dt := a.timer.Delta()

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		a.log.Info("quit requested")
		return ebiten.Termination
	}

	if a.imgui != nil {
		a.imgui.BeginFrame()
		defer a.imgui.EndFrame()
	}

	if a.overlay == nil || !a.overlay.Input().WantCaptureKeyboard {
		a.handleInput()
	}

	if !a.session.Frame(dt) {
		a.session.Render(a.renderer)
	}

	if a.overlay != nil {
		a.overlay.Render(a.session, float32(dt))
	}

	return nil
}

func (a *App) handleInput() {
	if a.hud.StartVisible() && inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		a.session.Start()
		return
	}

	for _, action := range Actions(a.bindings, inpututil.IsKeyJustPressed) {
		a.session.Handle(action)
	}
}

func (a *App) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)
	a.renderer.Present(screen)

	w, _ := a.renderer.FieldSize()
	drawPanel(screen, a.hud, w+16)

	if a.imgui != nil {
		a.imgui.Draw(screen)
	}
}

func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	if a.imgui != nil {
		a.imgui.Layout(outsideWidth, outsideHeight)
		return outsideWidth, outsideHeight
	}
	return a.windowSize()
}
