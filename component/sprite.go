package component

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/plus3/aftermath/ecs"
	"github.com/plus3/aftermath/vmath"
)

// Sprite is the drawable payload for an entity. The render system draws
// sprites in ascending Layer order; the core never inspects the image.
type Sprite struct {
	ecs.BaseComponent

	Image   *ebiten.Image
	Offset  vmath.Vec2
	Layer   int
	Visible bool
}

// NewSprite creates a visible sprite on layer 0.
func NewSprite(img *ebiten.Image) *Sprite {
	return &Sprite{Image: img, Visible: true}
}
