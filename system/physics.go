package system

import (
	"reflect"

	"github.com/plus3/aftermath/component"
	"github.com/plus3/aftermath/ecs"
)

// CollisionHandler receives each overlapping pair once per tick, ordered by
// entity ID (a.ID() < b.ID()).
type CollisionHandler func(a, b *ecs.Entity)

// PhysicsSystem advances every entity holding a Transform and a RigidBody:
// drag, then velocity integration, then AABB overlap detection between
// collider-bearing matches. Overlaps are reported, not resolved.
type PhysicsSystem struct {
	required []reflect.Type
	handler  CollisionHandler
}

// NewPhysicsSystem creates a physics system with no collision handler.
func NewPhysicsSystem() *PhysicsSystem {
	return &PhysicsSystem{
		required: []reflect.Type{
			ecs.TypeOf[component.Transform](),
			ecs.TypeOf[component.RigidBody](),
		},
	}
}

// SetCollisionHandler registers the callback invoked for each overlapping
// collider pair. Passing nil disables reporting.
func (s *PhysicsSystem) SetCollisionHandler(h CollisionHandler) {
	s.handler = h
}

// RequiredComponents returns {Transform, RigidBody}.
func (s *PhysicsSystem) RequiredComponents() []reflect.Type { return s.required }

// Update integrates motion and reports collider overlaps.
func (s *PhysicsSystem) Update(dt float64, entities []*ecs.Entity) {
	for _, e := range entities {
		transform := ecs.Get[component.Transform](e)
		rb := ecs.Get[component.RigidBody](e)

		// Kinematic bodies get their velocity from gameplay code each tick,
		// so drag only applies to dynamic bodies.
		if !rb.Kinematic && rb.Drag > 0 {
			rb.Velocity = rb.Velocity.Scale(1 / (1 + rb.Drag*dt))
		}

		transform.Translate(rb.Velocity.Scale(dt))
	}

	if s.handler != nil {
		s.reportOverlaps(entities)
	}
}

func (s *PhysicsSystem) reportOverlaps(entities []*ecs.Entity) {
	colliding := entities[:0:0]
	for _, e := range entities {
		if e.HasComponent(ecs.TypeOf[component.Collider]()) {
			colliding = append(colliding, e)
		}
	}

	for i := 0; i < len(colliding); i++ {
		for j := i + 1; j < len(colliding); j++ {
			if overlaps(colliding[i], colliding[j]) {
				s.handler(colliding[i], colliding[j])
			}
		}
	}
}

func overlaps(a, b *ecs.Entity) bool {
	ax, ay, aw, ah := bounds(a)
	bx, by, bw, bh := bounds(b)
	return ax < bx+bw && bx < ax+aw && ay < by+bh && by < ay+ah
}

// bounds returns the entity's AABB as top-left corner plus size. Colliders
// are centered on the transform position plus their offset.
func bounds(e *ecs.Entity) (x, y, w, h float64) {
	transform := ecs.Get[component.Transform](e)
	col := ecs.Get[component.Collider](e)
	center := transform.Position.Add(col.Offset)
	return center.X - col.Width/2, center.Y - col.Height/2, col.Width, col.Height
}
