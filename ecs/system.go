package ecs

import "reflect"

// System is a behavior unit that processes all active entities matching its
// required component set, once per tick. Systems do not own entities; they may
// keep private bookkeeping between frames (for example a previous-frame input
// snapshot).
type System interface {
	// RequiredComponents returns the component types an entity must hold to be
	// handed to Update. The set is fixed for the lifetime of the system.
	RequiredComponents() []reflect.Type

	// Update applies the system's behavior to the entities matching the
	// required set this tick. Entities are sorted by ID; dt is in seconds.
	// Component, tag, and activation mutations made here are visible to the
	// systems that run later in the same tick.
	Update(dt float64, entities []*Entity)
}

// Initializer is implemented by systems that need a reference to the world at
// registration time.
type Initializer interface {
	Init(w *World)
}
