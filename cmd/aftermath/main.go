// Command aftermath is a small top-down demo: a player entity drives around a
// field of crates, with optional runtime inspector.
package main

import (
	"flag"
	"image/color"
	"log"
	"reflect"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/plus3/aftermath/component"
	"github.com/plus3/aftermath/core"
	"github.com/plus3/aftermath/debugui"
	debugui_ebiten "github.com/plus3/aftermath/debugui/ebiten"
	"github.com/plus3/aftermath/ecs"
	"github.com/plus3/aftermath/input"
	"github.com/plus3/aftermath/system"
)

const (
	TagPlayer ecs.Tag = "player"
	TagCrate  ecs.Tag = "crate"
)

func main() {
	configPath := flag.String("config", "config.json", "Path to the JSON config file.")
	debug := flag.Bool("debug", false, "Show the runtime inspector overlay.")
	flag.Parse()

	cfg, err := core.LoadConfig(*configPath)
	if err != nil {
		log.Fatal(err)
	}
	if *debug {
		cfg.DebugMode = true
	}

	world := ecs.NewWorld()

	playerSystem := system.NewPlayerSystem(&input.Keyboard{})
	physicsSystem := system.NewPhysicsSystem()
	renderSystem := system.NewRenderSystem()

	world.RegisterSystem(playerSystem)
	world.RegisterSystem(physicsSystem)
	world.RegisterSystem(renderSystem)
	world.RegisterSystem(&cameraFollowSystem{world: world})

	app := core.NewApp(cfg, world, renderSystem)
	buildScene(world, app)

	physicsSystem.SetCollisionHandler(func(a, b *ecs.Entity) {
		app.Logger().Debug("overlap", "a", a.ID(), "b", b.ID())
	})

	if cfg.DebugMode {
		backend := debugui_ebiten.New(cfg.WindowTitle, cfg.WindowWidth, cfg.WindowHeight)
		app.SetOverlay(debugui.NewInspector(world, backend))
	}

	if err := app.Run(); err != nil {
		log.Fatal(err)
	}
}

func buildScene(world *ecs.World, app *core.App) {
	player := world.CreateEntity()
	must(player.AddComponent(component.NewTransform(0, 0)))
	must(player.AddComponent(component.NewSprite(solidImage(24, color.RGBA{90, 160, 255, 255}))))
	must(player.AddComponent(component.NewKinematicBody()))
	must(player.AddComponent(component.NewCollider(24, 24)))

	controller := component.NewPlayerController()
	controller.OnInteract = func() {
		app.Logger().Info("player interacted", "pos", ecs.Get[component.Transform](player).Position)
	}
	must(player.AddComponent(controller))
	player.AddTag(TagPlayer)

	camera := world.CreateEntity()
	must(camera.AddComponent(component.NewTransform(0, 0)))
	must(camera.AddComponent(component.NewCamera()))

	crateImg := solidImage(32, color.RGBA{180, 130, 70, 255})
	cratePositions := [][2]float64{
		{120, 80}, {-150, 40}, {60, -130}, {-90, -90}, {220, -30}, {0, 180},
	}
	for _, pos := range cratePositions {
		crate := world.CreateEntity()
		must(crate.AddComponent(component.NewTransform(pos[0], pos[1])))
		sprite := component.NewSprite(crateImg)
		sprite.Layer = -1
		must(crate.AddComponent(sprite))
		must(crate.AddComponent(component.NewRigidBody(5)))
		must(crate.AddComponent(component.NewCollider(32, 32)))
		crate.AddTag(TagCrate)
	}
}

// cameraFollowSystem eases every camera toward the tagged player entity.
type cameraFollowSystem struct {
	world    *ecs.World
	required []reflect.Type
}

func (s *cameraFollowSystem) RequiredComponents() []reflect.Type {
	if s.required == nil {
		s.required = []reflect.Type{
			ecs.TypeOf[component.Camera](),
			ecs.TypeOf[component.Transform](),
		}
	}
	return s.required
}

func (s *cameraFollowSystem) Update(dt float64, entities []*ecs.Entity) {
	players := s.world.QueryTag(TagPlayer)
	if len(players) == 0 {
		return
	}
	target := ecs.Get[component.Transform](players[0]).Position

	const followRate = 5.0
	blend := followRate * dt
	if blend > 1 {
		blend = 1
	}

	for _, e := range entities {
		transform := ecs.Get[component.Transform](e)
		delta := target.Sub(transform.Position)
		transform.Translate(delta.Scale(blend))
	}
}

func solidImage(size int, c color.Color) *ebiten.Image {
	img := ebiten.NewImage(size, size)
	img.Fill(c)
	return img
}

func must(err error) {
	if err != nil {
		log.Fatal(err)
	}
}
