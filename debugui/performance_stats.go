package debugui

import (
	"fmt"
	"time"

	"github.com/AllenDang/cimgui-go/imgui"

	"github.com/plus3/aftermath/ecs"
)

// PerformanceStats renders a frame-time history plot and the per-system
// execution statistics the world collects during Tick.
type PerformanceStats struct {
	historyFrames int
	frameHistory  []float32
	frameIndex    int
	lastFrame     time.Time
}

// NewPerformanceStats creates a stats window keeping historyFrames samples.
func NewPerformanceStats(historyFrames int) *PerformanceStats {
	return &PerformanceStats{
		historyFrames: historyFrames,
		frameHistory:  make([]float32, historyFrames),
		lastFrame:     time.Now(),
	}
}

// Render draws the Performance Stats window.
func (ps *PerformanceStats) Render(world *ecs.World) {
	now := time.Now()
	frameTime := float32(now.Sub(ps.lastFrame).Seconds() * 1000.0)
	ps.lastFrame = now

	if !imgui.BeginV("Performance Stats", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	ps.frameHistory[ps.frameIndex] = frameTime
	ps.frameIndex = (ps.frameIndex + 1) % ps.historyFrames

	stats := world.Stats()

	imgui.Text(fmt.Sprintf("Entities: %d (%d active)", stats.EntityCount, stats.ActiveEntityCount))
	imgui.Text(fmt.Sprintf("Component Types: %d", stats.ComponentTypeCount))
	imgui.Text(fmt.Sprintf("Tags: %d", stats.TagCount))
	imgui.Text(fmt.Sprintf("Ticks: %d", stats.TickCount))

	var avgFrameTime float32
	for _, ft := range ps.frameHistory {
		avgFrameTime += ft
	}
	avgFrameTime /= float32(ps.historyFrames)
	if avgFrameTime > 0 {
		imgui.Text(fmt.Sprintf("Avg Frame Time: %.2f ms (%.0f FPS)", avgFrameTime, 1000.0/avgFrameTime))
	}

	imgui.Separator()
	imgui.Text("Frame Time Graph (ms)")
	imgui.PlotLinesFloatPtr("##frametime", &ps.frameHistory[0], int32(len(ps.frameHistory)))

	imgui.Separator()
	imgui.Text(fmt.Sprintf("Systems: %d", stats.SystemCount))

	const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
	if imgui.BeginTableV("SystemStatsTable", 4, tableFlags, imgui.NewVec2(0, 0), 0) {
		imgui.TableSetupColumn("System")
		imgui.TableSetupColumn("Runs")
		imgui.TableSetupColumn("Avg")
		imgui.TableSetupColumn("Last")
		imgui.TableHeadersRow()

		for _, sys := range stats.Systems {
			imgui.TableNextRow()
			imgui.TableNextColumn()
			imgui.Text(sys.Name)
			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%d", sys.ExecutionCount))
			imgui.TableNextColumn()
			imgui.Text(sys.AvgDuration.String())
			imgui.TableNextColumn()
			imgui.Text(sys.LastDuration.String())
		}

		imgui.EndTable()
	}

	imgui.End()
}
