package debugui

import (
	"fmt"
	"strings"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/coinfall/game"
	"github.com/plus3/coinfall/loop"
)

// SessionInspector shows the live session state and the active piece.
type SessionInspector struct{}

func (si *SessionInspector) Render(snap game.Snapshot, stats loop.SchedulerStats) {
	imgui.SetNextWindowPosV(imgui.NewVec2(590, 10), imgui.CondOnce, imgui.NewVec2(0, 0))
	imgui.SetNextWindowSizeV(imgui.NewVec2(260, 360), imgui.CondOnce)
	if !imgui.BeginV("Session", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	imgui.Text(fmt.Sprintf("State: %s", snap.State))
	imgui.Text(fmt.Sprintf("Games: %d", snap.Games))
	imgui.Text(fmt.Sprintf("Score: %d", snap.Points))
	imgui.Text(fmt.Sprintf("Lines: %d  Pieces: %d", snap.LinesCleared, snap.PiecesPlaced))
	imgui.Text(fmt.Sprintf("Particles: %d", snap.Particles))
	imgui.Text(fmt.Sprintf("Drop: %3.0f%%", snap.DropProgress*100))
	imgui.Text(fmt.Sprintf("Frames: %d", stats.Frames))

	imgui.Separator()
	for _, entry := range strings.Split(snap.Scoreboard, "|") {
		imgui.BulletText(entry)
	}

	if snap.HasPiece && imgui.TreeNodeStr("Active Piece") {
		imgui.Text(fmt.Sprintf("%s at (%d, %d)", snap.Piece.Kind, snap.Piece.X, snap.Piece.Y))
		for _, line := range PieceLines(snap) {
			imgui.Text(line)
		}
		imgui.TreePop()
	}

	imgui.End()
}

// PieceLines renders the active piece as text, one string per row. Filled
// cells show the coin symbol and untagged filled cells show '#'.
func PieceLines(snap game.Snapshot) []string {
	if !snap.HasPiece {
		return nil
	}

	lines := make([]string, 0, snap.Piece.Rows())
	for r, row := range snap.Piece.Shape {
		var b strings.Builder
		for c, filled := range row {
			switch {
			case !filled:
				b.WriteByte('.')
			case snap.Piece.Coins[r][c].Empty():
				b.WriteByte('#')
			default:
				b.WriteRune(snap.Piece.Coins[r][c].Symbol())
			}
		}
		lines = append(lines, b.String())
	}
	return lines
}
