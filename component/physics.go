package component

import (
	"github.com/plus3/aftermath/ecs"
	"github.com/plus3/aftermath/vmath"
)

// RigidBody carries an entity's motion state. Kinematic bodies are moved by
// gameplay code setting Velocity directly (the player system does this);
// non-kinematic bodies are only ever advanced by the physics system.
type RigidBody struct {
	ecs.BaseComponent

	Velocity  vmath.Vec2
	Mass      float64
	Drag      float64
	Kinematic bool
}

// NewRigidBody creates a dynamic body of the given mass.
func NewRigidBody(mass float64) *RigidBody {
	return &RigidBody{Mass: mass}
}

// NewKinematicBody creates a body whose velocity is owned by gameplay code.
func NewKinematicBody() *RigidBody {
	return &RigidBody{Mass: 1, Kinematic: true}
}

// Collider describes an entity's axis-aligned bounding box, centered on the
// transform position plus Offset. Trigger colliders report overlaps but are
// never resolved.
type Collider struct {
	ecs.BaseComponent

	Width   float64
	Height  float64
	Offset  vmath.Vec2
	Trigger bool
}

// NewCollider creates a solid collider of the given size.
func NewCollider(width, height float64) *Collider {
	return &Collider{Width: width, Height: height}
}
