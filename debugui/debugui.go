// Package debugui provides an immediate-mode runtime inspector for a world
// using Dear ImGui: an entity browser and a performance window.
package debugui

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/plus3/aftermath/ecs"
	debugui_ebiten "github.com/plus3/aftermath/debugui/ebiten"
)

// Inspector owns the ImGui frame lifecycle and the inspector windows. Hook it
// into the host loop: BeginFrame before the world ticks, EndFrame after, Draw
// during the render phase. It satisfies the core package's Overlay interface.
type Inspector struct {
	backend debugui_ebiten.ImguiBackend
	world   *ecs.World

	browser *EntityBrowser
	perf    *PerformanceStats
}

// NewInspector creates an inspector over the given world.
func NewInspector(world *ecs.World, backend debugui_ebiten.ImguiBackend) *Inspector {
	return &Inspector{
		backend: backend,
		world:   world,
		browser: NewEntityBrowser(25),
		perf:    NewPerformanceStats(120),
	}
}

// BeginFrame starts the ImGui frame and renders the inspector windows. All
// widget calls happen here, between the backend's frame boundaries.
func (in *Inspector) BeginFrame() {
	in.backend.BeginFrame()
	in.browser.Render(in.world)
	in.perf.Render(in.world)
}

// EndFrame closes the ImGui frame.
func (in *Inspector) EndFrame() {
	in.backend.EndFrame()
}

// Draw renders the ImGui overlay on top of the screen.
func (in *Inspector) Draw(screen *ebiten.Image) {
	in.backend.Draw(screen)
}

// Layout forwards the window size to the backend.
func (in *Inspector) Layout(outsideWidth, outsideHeight int) {
	in.backend.Layout(outsideWidth, outsideHeight)
}
