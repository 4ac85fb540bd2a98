package main

import (
	"math/rand"
	"reflect"

	"github.com/plus3/aftermath/component"
	"github.com/plus3/aftermath/ecs"
)

// driftSystem moves every body, bouncing it back into a fixed arena so
// positions stay bounded over long runs.
type driftSystem struct {
	required []reflect.Type
}

func newDriftSystem() *driftSystem {
	return &driftSystem{
		required: []reflect.Type{
			ecs.TypeOf[component.Transform](),
			ecs.TypeOf[component.RigidBody](),
		},
	}
}

func (s *driftSystem) RequiredComponents() []reflect.Type { return s.required }

func (s *driftSystem) Update(dt float64, entities []*ecs.Entity) {
	const arenaSize = 1000.0
	for _, e := range entities {
		transform := ecs.Get[component.Transform](e)
		rb := ecs.Get[component.RigidBody](e)

		transform.Translate(rb.Velocity.Scale(dt))

		if transform.Position.X < 0 || transform.Position.X > arenaSize {
			rb.Velocity.X = -rb.Velocity.X
		}
		if transform.Position.Y < 0 || transform.Position.Y > arenaSize {
			rb.Velocity.Y = -rb.Velocity.Y
		}
	}
}

// churnSystem stresses the indexes: each tick it destroys and respawns some
// matched entities, flips activation on others, and adds/removes components
// and tags on the rest.
type churnSystem struct {
	rng      *rand.Rand
	perTick  int
	required []reflect.Type
	world    *ecs.World
}

func newChurnSystem(rng *rand.Rand, perTick int) *churnSystem {
	return &churnSystem{
		rng:     rng,
		perTick: perTick,
		required: []reflect.Type{
			ecs.TypeOf[component.Transform](),
		},
	}
}

func (s *churnSystem) Init(w *ecs.World) { s.world = w }

func (s *churnSystem) RequiredComponents() []reflect.Type { return s.required }

func (s *churnSystem) Update(dt float64, entities []*ecs.Entity) {
	if len(entities) == 0 {
		return
	}

	for i := 0; i < s.perTick; i++ {
		e := entities[s.rng.Intn(len(entities))]
		if e.Destroyed() {
			continue
		}

		switch s.rng.Intn(5) {
		case 0:
			e.Destroy()
			spawnRandomEntity(s.world, s.rng)
		case 1:
			e.SetActive(!e.Active())
		case 2:
			colliderType := ecs.TypeOf[component.Collider]()
			if e.HasComponent(colliderType) {
				e.RemoveComponent(colliderType)
			} else {
				mustAdd(e, component.NewCollider(16, 16))
			}
		case 3:
			tag := stressTags[s.rng.Intn(len(stressTags))]
			if e.HasTag(tag) {
				e.RemoveTag(tag)
			} else {
				e.AddTag(tag)
			}
		case 4:
			bodyType := ecs.TypeOf[component.RigidBody]()
			if e.HasComponent(bodyType) {
				e.RemoveComponent(bodyType)
			} else {
				mustAdd(e, component.NewRigidBody(1))
			}
		}
	}
}
