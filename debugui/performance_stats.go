package debugui

import (
	"fmt"
	"time"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/coinfall/loop"
)

// FrameHistory is a fixed-size ring of frame times in milliseconds.
type FrameHistory struct {
	samples []float32
	next    int
	filled  int
}

func NewFrameHistory(frames int) *FrameHistory {
	if frames < 1 {
		frames = 1
	}
	return &FrameHistory{samples: make([]float32, frames)}
}

// Push records a frame time given in seconds.
func (h *FrameHistory) Push(deltaSeconds float32) {
	h.samples[h.next] = deltaSeconds * 1000.0
	h.next = (h.next + 1) % len(h.samples)
	if h.filled < len(h.samples) {
		h.filled++
	}
}

// Average returns the mean of the recorded samples in milliseconds.
func (h *FrameHistory) Average() float32 {
	if h.filled == 0 {
		return 0
	}
	var sum float32
	for _, ft := range h.samples[:h.filled] {
		sum += ft
	}
	return sum / float32(h.filled)
}

// Samples returns the ring storage. Order follows insertion modulo the ring size.
func (h *FrameHistory) Samples() []float32 {
	return h.samples
}

type PerformanceStats struct {
	history *FrameHistory
}

func NewPerformanceStats(historyFrames int) *PerformanceStats {
	return &PerformanceStats{history: NewFrameHistory(historyFrames)}
}

func (ps *PerformanceStats) Render(stats loop.SchedulerStats, deltaTime float32) {
	ps.history.Push(deltaTime)

	imgui.SetNextWindowPosV(imgui.NewVec2(260, 10), imgui.CondOnce, imgui.NewVec2(0, 0))
	imgui.SetNextWindowSizeV(imgui.NewVec2(320, 300), imgui.CondOnce)
	if !imgui.BeginV("Performance Stats", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	imgui.Text(fmt.Sprintf("Frames: %d", stats.Frames))
	imgui.Text(fmt.Sprintf("Systems: %d", stats.SystemCount))

	avg := ps.history.Average()
	fps := float32(0)
	if avg > 0 {
		fps = 1000.0 / avg
	}
	imgui.Text(fmt.Sprintf("Avg Frame Time: %.2f ms (%.0f FPS)", avg, fps))

	imgui.Separator()
	imgui.Text("Frame Time Graph (ms)")
	samples := ps.history.Samples()
	imgui.PlotLinesFloatPtr("##frametime", &samples[0], int32(len(samples)))

	if imgui.TreeNodeStr("System Details") {
		const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
		if imgui.BeginTableV("SystemStatsTable", 5, tableFlags, imgui.NewVec2(0, 0), 0) {
			imgui.TableSetupColumn("System")
			imgui.TableSetupColumn("Runs")
			imgui.TableSetupColumn("Avg")
			imgui.TableSetupColumn("Min")
			imgui.TableSetupColumn("Max")
			imgui.TableHeadersRow()

			for _, sys := range stats.Systems {
				imgui.TableNextRow()
				imgui.TableNextColumn()
				imgui.Text(sys.Name)
				imgui.TableNextColumn()
				imgui.Text(fmt.Sprintf("%d", sys.ExecutionCount))
				imgui.TableNextColumn()
				imgui.Text(sys.AvgDuration.Round(time.Microsecond).String())
				imgui.TableNextColumn()
				imgui.Text(sys.MinDuration.Round(time.Microsecond).String())
				imgui.TableNextColumn()
				imgui.Text(sys.MaxDuration.Round(time.Microsecond).String())
			}

			imgui.EndTable()
		}
		imgui.TreePop()
	}

	imgui.End()
}
