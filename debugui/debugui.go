// Package debugui draws Dear ImGui panels over a running session: frame
// timing, per-system scheduler statistics, a live session inspector and
// browsers for the particle entities and their archetypes.
package debugui

import (
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/coinfall/game"
)

// InputState reports whether Dear ImGui is consuming mouse or keyboard
// input this frame.
type InputState struct {
	WantCaptureMouse    bool
	WantCaptureKeyboard bool
}

// Overlay groups the debug panels.
type Overlay struct {
	perf       *PerformanceStats
	inspector  *SessionInspector
	entities   *EntityBrowser
	archetypes *ArchetypeViewer
	input      InputState
}

func NewOverlay(historyFrames int) *Overlay {
	return &Overlay{
		perf:       NewPerformanceStats(historyFrames),
		inspector:  &SessionInspector{},
		entities:   NewEntityBrowser(50),
		archetypes: NewArchetypeViewer(),
	}
}

// Render draws every panel. It must run between the backend's BeginFrame
// and EndFrame.
func (o *Overlay) Render(session *game.Session, deltaTime float32) {
	o.input.WantCaptureMouse = imgui.CurrentIO().WantCaptureMouse()
	o.input.WantCaptureKeyboard = imgui.CurrentIO().WantCaptureKeyboard()

	stats := session.Stats()
	o.perf.Render(stats, deltaTime)
	o.inspector.Render(session.Snapshot(), stats)
	o.entities.Render(session.Entities())
	o.archetypes.Render(session.Entities())
}

// Input returns the capture state sampled by the last Render.
func (o *Overlay) Input() InputState {
	return o.input
}
