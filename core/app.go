package core

import (
	"log/slog"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/plus3/aftermath/ecs"
	"github.com/plus3/aftermath/system"
)

// Overlay is drawn on top of the world each frame (debug UI, HUDs).
// BeginFrame runs before the world ticks and EndFrame after, so
// immediate-mode overlays can build their widgets around the tick.
type Overlay interface {
	BeginFrame()
	EndFrame()
	Draw(screen *ebiten.Image)
}

// overlayLayouter is implemented by overlays that track the window size.
type overlayLayouter interface {
	Layout(outsideWidth, outsideHeight int)
}

// App drives a world from ebiten's game loop: each Update measures dt and
// ticks the world, each Draw hands the screen to the render system and then
// to any overlay.
type App struct {
	cfg     *Config
	world   *ecs.World
	render  *system.RenderSystem
	clock   *Clock
	log     *slog.Logger
	overlay Overlay
}

// NewApp wires a configured application around the given world and render
// system. The caller is responsible for registering systems on the world,
// including the render system itself.
func NewApp(cfg *Config, world *ecs.World, render *system.RenderSystem) *App {
	level := slog.LevelInfo
	if cfg.DebugMode {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level}))

	return &App{
		cfg:    cfg,
		world:  world,
		render: render,
		clock:  NewClock(),
		log:    logger,
	}
}

// SetOverlay installs a draw overlay. Passing nil removes it.
func (a *App) SetOverlay(o Overlay) { a.overlay = o }

// World returns the application's world.
func (a *App) World() *ecs.World { return a.world }

// Logger returns the application logger.
func (a *App) Logger() *slog.Logger { return a.log }

// Update implements ebiten.Game.
func (a *App) Update() error {
	if a.cfg.EscapeQuits && ebiten.IsKeyPressed(ebiten.KeyEscape) {
		a.log.Info("escape pressed, quitting")
		return ebiten.Termination
	}

	dt := a.clock.Tick()
	if a.overlay != nil {
		a.overlay.BeginFrame()
	}
	a.world.Tick(dt)
	if a.overlay != nil {
		a.overlay.EndFrame()
	}
	return nil
}

// Draw implements ebiten.Game.
func (a *App) Draw(screen *ebiten.Image) {
	a.render.Draw(screen)
	if a.overlay != nil {
		a.overlay.Draw(screen)
	}
}

// Layout implements ebiten.Game.
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	if l, ok := a.overlay.(overlayLayouter); ok {
		l.Layout(outsideWidth, outsideHeight)
	}
	return a.cfg.WindowWidth, a.cfg.WindowHeight
}

// Run opens the window and blocks until the loop ends.
func (a *App) Run() error {
	ebiten.SetWindowTitle(a.cfg.WindowTitle)
	ebiten.SetWindowSize(a.cfg.WindowWidth, a.cfg.WindowHeight)
	ebiten.SetFullscreen(a.cfg.Fullscreen)
	ebiten.SetVsyncEnabled(a.cfg.VSync)
	if a.cfg.TargetFPS > 0 {
		ebiten.SetTPS(a.cfg.TargetFPS)
	}

	a.log.Info("starting main loop",
		"width", a.cfg.WindowWidth,
		"height", a.cfg.WindowHeight,
		"systems", a.world.SystemCount())
	defer a.log.Info("main loop ended")

	return ebiten.RunGame(a)
}
