// Package system holds the concrete systems the game registers on a world:
// player input, physics integration, and the render adapter.
package system

import (
	"reflect"

	"github.com/plus3/aftermath/component"
	"github.com/plus3/aftermath/ecs"
	"github.com/plus3/aftermath/input"
	"github.com/plus3/aftermath/vmath"
)

// PlayerSystem reads the keyboard once per tick and drives every entity
// holding a PlayerController and a Transform. Movement goes through a
// kinematic RigidBody's velocity when one is attached, otherwise straight to
// the transform. Interaction input is edge-triggered against the previous
// frame's snapshot.
type PlayerSystem struct {
	tracker  *input.Tracker
	required []reflect.Type
}

// NewPlayerSystem creates a player system reading from the given input source.
func NewPlayerSystem(source input.Source) *PlayerSystem {
	return &PlayerSystem{
		tracker: input.NewTracker(source),
		required: []reflect.Type{
			ecs.TypeOf[component.PlayerController](),
			ecs.TypeOf[component.Transform](),
		},
	}
}

// RequiredComponents returns {PlayerController, Transform}.
func (s *PlayerSystem) RequiredComponents() []reflect.Type { return s.required }

// Update captures this frame's input snapshot and processes each player
// entity against it.
func (s *PlayerSystem) Update(dt float64, entities []*ecs.Entity) {
	snap := s.tracker.Capture()
	for _, e := range entities {
		s.processEntity(dt, e, snap)
	}
}

func (s *PlayerSystem) processEntity(dt float64, e *ecs.Entity, snap *input.Snapshot) {
	pc := ecs.Get[component.PlayerController](e)
	transform := ecs.Get[component.Transform](e)

	move := deriveMovement(dt, pc, snap)

	if rb := ecs.Get[component.RigidBody](e); rb != nil && rb.Kinematic {
		// The physics system integrates this velocity into the transform.
		rb.Velocity = move.Scale(1 / dt)
	} else {
		transform.Translate(move)
	}

	if snap.JustPressed(pc.InteractKey) && pc.OnInteract != nil {
		pc.OnInteract()
	}
}

// deriveMovement turns the pressed-key state into this frame's displacement,
// updating the controller's movement state along the way. Diagonal input is
// normalized to unit length before speed scaling, so diagonal movement is no
// faster than axis-aligned movement.
func deriveMovement(dt float64, pc *component.PlayerController, snap *input.Snapshot) vmath.Vec2 {
	dir := vmath.Vec2{}

	if snap.Pressed(pc.MoveKeys.Up) {
		dir.Y -= 1
		pc.FacingDirection = vmath.Vec2{X: 0, Y: -1}
	}
	if snap.Pressed(pc.MoveKeys.Down) {
		dir.Y += 1
		pc.FacingDirection = vmath.Vec2{X: 0, Y: 1}
	}
	if snap.Pressed(pc.MoveKeys.Left) {
		dir.X -= 1
		pc.FacingDirection = vmath.Vec2{X: -1, Y: 0}
	}
	if snap.Pressed(pc.MoveKeys.Right) {
		dir.X += 1
		pc.FacingDirection = vmath.Vec2{X: 1, Y: 0}
	}

	if dir.X != 0 && dir.Y != 0 {
		dir = dir.Normalized()
	}
	pc.MoveDirection = dir

	pc.Sprinting = snap.Pressed(pc.SprintKey)
	speed := pc.MoveSpeed
	if pc.Sprinting {
		speed *= pc.SprintMultiplier
	}

	move := dir.Scale(speed * dt)
	pc.Moving = !move.IsZero()
	return move
}
