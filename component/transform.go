// Package component holds the concrete components the game attaches to
// entities. All of them are plain data; systems provide the behavior.
package component

import (
	"github.com/plus3/aftermath/ecs"
	"github.com/plus3/aftermath/vmath"
)

// Transform places an entity in world space.
type Transform struct {
	ecs.BaseComponent

	Position vmath.Vec2
	Rotation float64
	Scale    vmath.Vec2
}

// NewTransform creates a transform at the given position with unit scale.
func NewTransform(x, y float64) *Transform {
	return &Transform{
		Position: vmath.Vec2{X: x, Y: y},
		Scale:    vmath.Vec2{X: 1, Y: 1},
	}
}

// Translate moves the transform by the given delta.
func (t *Transform) Translate(delta vmath.Vec2) {
	t.Position = t.Position.Add(delta)
}
