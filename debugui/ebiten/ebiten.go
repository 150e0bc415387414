// Package ebiten provides Dear ImGui backend integration for the Ebiten game engine.
package ebiten

import (
	ebitenbackend "github.com/AllenDang/cimgui-go/backend/ebiten-backend"
	"github.com/AllenDang/cimgui-go/imgui"
)

// ImguiBackend wraps the Ebiten-specific Dear ImGui backend implementation.
type ImguiBackend struct {
	*ebitenbackend.EbitenBackend
}

// New creates the backend and its window. The imgui.ini file is disabled so
// panel layout is not persisted between runs.
func New(title string, width, height int) *ImguiBackend {
	backend := ebitenbackend.NewEbitenBackend()
	backend.CreateWindow(title, width, height)
	imgui.CurrentIO().SetIniFilename("")
	return &ImguiBackend{EbitenBackend: backend}
}
