package ecs_test

import "github.com/plus3/aftermath/ecs"

// Common test component types.
type Position struct {
	ecs.BaseComponent
	X, Y float64
}

type Velocity struct {
	ecs.BaseComponent
	DX, DY float64
}

type Health struct {
	ecs.BaseComponent
	Current int
	Max     int
}

type Name struct {
	ecs.BaseComponent
	Value string
}

// hookRecorder appends hook invocations to a shared event log and captures
// what the hooks could observe when they fired.
type hookRecorder struct {
	ecs.BaseComponent

	events         *[]string
	entityOnAdd    *ecs.Entity
	entityOnRemove *ecs.Entity
	indexedOnAdd   bool
}

func (h *hookRecorder) OnAdd() {
	*h.events = append(*h.events, "add")
	h.entityOnAdd = h.Entity()

	// The type index must already contain the entity when the hook fires.
	if h.Entity() != nil {
		for _, e := range h.Entity().World().Query(ecs.TypeOf[hookRecorder]()) {
			if e == h.Entity() {
				h.indexedOnAdd = true
			}
		}
	}
}

func (h *hookRecorder) OnRemove() {
	*h.events = append(*h.events, "remove")
	h.entityOnRemove = h.Entity()
}
