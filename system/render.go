package system

import (
	"reflect"
	"slices"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/plus3/aftermath/component"
	"github.com/plus3/aftermath/ecs"
	"github.com/plus3/aftermath/vmath"
)

// RenderSystem is the adapter between the world and the screen. Update caches
// the tick's drawable entity list; Draw, called from the host loop's render
// phase, sorts it by layer and draws each sprite relative to the active
// camera. Rendering only reads component data.
type RenderSystem struct {
	world    *ecs.World
	required []reflect.Type
	drawable []*ecs.Entity
}

// NewRenderSystem creates an empty render adapter.
func NewRenderSystem() *RenderSystem {
	return &RenderSystem{
		required: []reflect.Type{
			ecs.TypeOf[component.Transform](),
			ecs.TypeOf[component.Sprite](),
		},
	}
}

// Init retains the world so Draw can look up the camera entity.
func (s *RenderSystem) Init(w *ecs.World) { s.world = w }

// RequiredComponents returns {Transform, Sprite}.
func (s *RenderSystem) RequiredComponents() []reflect.Type { return s.required }

// Update caches this tick's drawable entities for the next Draw call.
func (s *RenderSystem) Update(dt float64, entities []*ecs.Entity) {
	s.drawable = entities
}

// Draw renders the cached entities onto screen. Sprites draw in ascending
// layer order, ties broken by entity ID.
func (s *RenderSystem) Draw(screen *ebiten.Image) {
	camPos, zoom := s.cameraView()
	bounds := screen.Bounds()
	halfW := float64(bounds.Dx()) / 2
	halfH := float64(bounds.Dy()) / 2

	ordered := slices.Clone(s.drawable)
	slices.SortFunc(ordered, func(a, b *ecs.Entity) int {
		la := ecs.Get[component.Sprite](a).Layer
		lb := ecs.Get[component.Sprite](b).Layer
		if la != lb {
			return la - lb
		}
		return int(a.ID()) - int(b.ID())
	})

	for _, e := range ordered {
		sprite := ecs.Get[component.Sprite](e)
		if !sprite.Visible || sprite.Image == nil {
			continue
		}
		transform := ecs.Get[component.Transform](e)

		opts := &ebiten.DrawImageOptions{}
		w := float64(sprite.Image.Bounds().Dx())
		h := float64(sprite.Image.Bounds().Dy())
		opts.GeoM.Translate(-w/2, -h/2)
		opts.GeoM.Rotate(transform.Rotation)
		opts.GeoM.Scale(transform.Scale.X*zoom, transform.Scale.Y*zoom)

		pos := transform.Position.Add(sprite.Offset)
		opts.GeoM.Translate(
			(pos.X-camPos.X)*zoom+halfW,
			(pos.Y-camPos.Y)*zoom+halfH,
		)

		screen.DrawImage(sprite.Image, opts)
	}
}

// cameraView returns the active camera's position and zoom, defaulting to the
// origin at 1:1 when no camera entity exists.
func (s *RenderSystem) cameraView() (vmath.Vec2, float64) {
	if s.world == nil {
		return vmath.Vec2{}, 1
	}
	cams := s.world.Query(
		ecs.TypeOf[component.Camera](),
		ecs.TypeOf[component.Transform](),
	)
	if len(cams) == 0 {
		return vmath.Vec2{}, 1
	}

	cam := ecs.Get[component.Camera](cams[0])
	transform := ecs.Get[component.Transform](cams[0])
	zoom := cam.Zoom
	if zoom <= 0 {
		zoom = 1
	}
	return transform.Position, zoom
}
