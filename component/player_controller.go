package component

import (
	"github.com/plus3/aftermath/ecs"
	"github.com/plus3/aftermath/input"
	"github.com/plus3/aftermath/vmath"
)

// MoveKeys binds the four movement directions to keys.
type MoveKeys struct {
	Up    input.Key
	Down  input.Key
	Left  input.Key
	Right input.Key
}

// PlayerController configures input-driven movement for a player entity and
// records the movement state the player system derives each frame.
type PlayerController struct {
	ecs.BaseComponent

	MoveSpeed        float64
	SprintMultiplier float64
	InteractionRange float64

	MoveKeys    MoveKeys
	SprintKey   input.Key
	InteractKey input.Key

	// Per-frame state written by the player system.
	Moving          bool
	Sprinting       bool
	MoveDirection   vmath.Vec2
	FacingDirection vmath.Vec2

	// OnInteract fires once per press edge of InteractKey.
	OnInteract func()
}

// NewPlayerController creates a controller with the default bindings
// (WASD, left shift to sprint, E to interact) and tuning.
func NewPlayerController() *PlayerController {
	return &PlayerController{
		MoveSpeed:        150,
		SprintMultiplier: 1.5,
		InteractionRange: 100,
		MoveKeys: MoveKeys{
			Up:    input.KeyW,
			Down:  input.KeyS,
			Left:  input.KeyA,
			Right: input.KeyD,
		},
		SprintKey:   input.KeyShiftLeft,
		InteractKey: input.KeyE,
		// Facing down by default.
		FacingDirection: vmath.Vec2{X: 0, Y: 1},
	}
}
