package ecs

import (
	"context"
	"reflect"
	"slices"
	"time"

	"github.com/kamstrup/intmap"
)

// World is the authoritative owner of all entities. It maintains a registry
// from ID to entity plus secondary indexes from component type and tag to the
// entities holding them, so per-frame queries never scan the full population.
// Every mutation path updates the affected indexes synchronously; no caller
// ever observes a partially updated index.
//
// A World is single-threaded: one tick runs all registered systems to
// completion in registration order before the next begins.
type World struct {
	nextID      EntityID
	entities    *intmap.Map[EntityID, *Entity]
	byType      map[reflect.Type]map[EntityID]*Entity
	byTag       map[Tag]map[EntityID]*Entity
	activeCount int

	systems []System
	timings []*systemTimings
	ticks   int64
}

// NewWorld creates an empty world.
func NewWorld() *World {
	return &World{
		nextID:   1,
		entities: intmap.New[EntityID, *Entity](256),
		byType:   make(map[reflect.Type]map[EntityID]*Entity),
		byTag:    make(map[Tag]map[EntityID]*Entity),
	}
}

// CreateEntity allocates a fresh ID and returns the new entity, registered in
// the world and active. Generated IDs are monotonic and never reused.
func (w *World) CreateEntity() *Entity {
	id := w.nextID
	w.nextID++
	return w.adopt(id)
}

// CreateEntityWithID registers a new entity under a caller-supplied ID. It
// fails with DuplicateIDError if the ID collides with a live entity. The
// internal generator is advanced past the supplied ID so generated IDs stay
// unique.
func (w *World) CreateEntityWithID(id EntityID) (*Entity, error) {
	if _, live := w.entities.Get(id); live {
		return nil, &DuplicateIDError{ID: id}
	}
	if id >= w.nextID {
		w.nextID = id + 1
	}
	return w.adopt(id), nil
}

func (w *World) adopt(id EntityID) *Entity {
	e := &Entity{
		id:         id,
		world:      w,
		components: make(map[reflect.Type]Component),
		tags:       make(map[Tag]struct{}),
		active:     true,
	}
	w.entities.Put(id, e)
	w.activeCount++
	return e
}

// Entity returns the live entity with the given ID.
func (w *World) Entity(id EntityID) (*Entity, bool) {
	return w.entities.Get(id)
}

// EntityCount returns the number of live entities.
func (w *World) EntityCount() int { return w.entities.Len() }

// ActiveCount returns the number of live, active entities.
func (w *World) ActiveCount() int { return w.activeCount }

// Entities returns all live entities sorted by ID.
func (w *World) Entities() []*Entity {
	out := make([]*Entity, 0, w.entities.Len())
	w.entities.ForEach(func(_ EntityID, e *Entity) bool {
		out = append(out, e)
		return true
	})
	sortByID(out)
	return out
}

// Entity-side notification hooks. Each touches exactly the indexes affected by
// the mutation, in O(1) amortized time.

func (w *World) componentAdded(e *Entity, t reflect.Type) {
	set := w.byType[t]
	if set == nil {
		set = make(map[EntityID]*Entity)
		w.byType[t] = set
	}
	set[e.id] = e
}

func (w *World) componentRemoved(e *Entity, t reflect.Type) {
	set := w.byType[t]
	if set == nil {
		return
	}
	delete(set, e.id)
	if len(set) == 0 {
		delete(w.byType, t)
	}
}

func (w *World) tagAdded(e *Entity, tag Tag) {
	set := w.byTag[tag]
	if set == nil {
		set = make(map[EntityID]*Entity)
		w.byTag[tag] = set
	}
	set[e.id] = e
}

func (w *World) tagRemoved(e *Entity, tag Tag) {
	set := w.byTag[tag]
	if set == nil {
		return
	}
	delete(set, e.id)
	if len(set) == 0 {
		delete(w.byTag, tag)
	}
}

func (w *World) activeChanged(e *Entity) {
	if e.active {
		w.activeCount++
	} else {
		w.activeCount--
	}
}

// removeEntity erases the entity from the registry and the tag index. The
// type index has already been cleared component by component during Destroy.
func (w *World) removeEntity(e *Entity) {
	for tag := range e.tags {
		w.tagRemoved(e, tag)
	}
	clear(e.tags)
	w.entities.Del(e.id)
	if e.active {
		w.activeCount--
	}
}

// Query returns the active entities whose component set is a superset of the
// given types, sorted by ID. The intersection starts from the smallest
// per-type index set, so the cost is bounded by the rarest requested type.
// An empty type list matches nothing.
func (w *World) Query(types ...reflect.Type) []*Entity {
	return w.query(types, false)
}

// QueryAll is Query without the activation filter: inactive entities holding
// the required components are included.
func (w *World) QueryAll(types ...reflect.Type) []*Entity {
	return w.query(types, true)
}

func (w *World) query(types []reflect.Type, includeInactive bool) []*Entity {
	if len(types) == 0 {
		return nil
	}

	smallest := w.byType[types[0]]
	for _, t := range types[1:] {
		set := w.byType[t]
		if len(set) < len(smallest) {
			smallest = set
		}
	}
	if len(smallest) == 0 {
		return nil
	}

	out := make([]*Entity, 0, len(smallest))
	for _, e := range smallest {
		if !includeInactive && !e.active {
			continue
		}
		if e.HasComponents(types...) {
			out = append(out, e)
		}
	}
	sortByID(out)
	return out
}

// QueryTag returns the active entities carrying the given tag, sorted by ID.
func (w *World) QueryTag(tag Tag) []*Entity {
	set := w.byTag[tag]
	if len(set) == 0 {
		return nil
	}
	out := make([]*Entity, 0, len(set))
	for _, e := range set {
		if e.active {
			out = append(out, e)
		}
	}
	sortByID(out)
	return out
}

// RegisterSystem appends a system to the tick order. Registration order is the
// processing order for the lifetime of the world. Systems implementing
// Initializer receive the world before their first tick.
func (w *World) RegisterSystem(s System) {
	if init, ok := s.(Initializer); ok {
		init.Init(w)
	}
	w.systems = append(w.systems, s)
	w.timings = append(w.timings, newSystemTimings(systemName(s)))
}

// SystemCount returns the number of registered systems.
func (w *World) SystemCount() int { return len(w.systems) }

// Tick runs every registered system once, in registration order. Each system
// receives the match list resolved against the indexes as they stand when its
// turn comes, so mutations made by earlier systems are already visible.
func (w *World) Tick(dt float64) {
	for i, sys := range w.systems {
		matched := w.Query(sys.RequiredComponents()...)

		start := time.Now()
		sys.Update(dt, matched)
		w.timings[i].record(time.Since(start))
	}
	w.ticks++
}

// Run ticks the world at the given interval until the context is cancelled,
// deriving dt from wall-clock time between ticks.
func (w *World) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	lastTime := time.Now()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			dt := now.Sub(lastTime).Seconds()
			lastTime = now
			w.Tick(dt)
		}
	}
}

func sortByID(entities []*Entity) {
	slices.SortFunc(entities, func(a, b *Entity) int {
		switch {
		case a.id < b.id:
			return -1
		case a.id > b.id:
			return 1
		default:
			return 0
		}
	})
}

func systemName(s System) string {
	t := reflect.TypeOf(s)
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t.Name()
}
