package ecs

import "reflect"

// EntityID uniquely identifies an entity within its world. IDs are never
// recycled: once an entity is destroyed its ID stays retired.
type EntityID uint64

// Tag is an opaque classification label attachable to entities, independent
// of components.
type Tag string

// Entity is an identity plus its attached components, tags, and active flag.
// Entities are created through World.CreateEntity so the world can assign the
// ID and register the entity in its indexes; all mutations notify the world
// synchronously, so the indexes never lag the entity state.
type Entity struct {
	id         EntityID
	world      *World
	components map[reflect.Type]Component
	tags       map[Tag]struct{}
	active     bool
	destroyed  bool
}

// ID returns the entity's immutable identifier.
func (e *Entity) ID() EntityID { return e.id }

// World returns the owning world.
func (e *Entity) World() *World { return e.world }

// Active reports whether the entity participates in system matching.
func (e *Entity) Active() bool { return e.active }

// Destroyed reports whether Destroy has been called on this entity.
func (e *Entity) Destroyed() bool { return e.destroyed }

// AddComponent attaches c to the entity. It fails with DuplicateComponentError
// if a component of the same type is already attached, and with
// AlreadyAttachedError if c is still attached to another entity; in both cases
// the entity and the world's indexes are left untouched. The component's OnAdd
// hook fires after the link and the type index update, so the hook can reach
// the entity and the world.
func (e *Entity) AddComponent(c Component) error {
	if e.destroyed {
		return ErrEntityDestroyed
	}
	t := componentTypeOf(c)
	if owner := c.Entity(); owner != nil {
		return &AlreadyAttachedError{Type: t, Owner: owner.id}
	}
	if _, exists := e.components[t]; exists {
		return &DuplicateComponentError{ID: e.id, Type: t}
	}

	c.attach(e)
	e.components[t] = c
	e.world.componentAdded(e, t)
	c.OnAdd()
	return nil
}

// RemoveComponent detaches the component of the given type and returns it,
// transferring ownership back to the caller. It returns nil when the entity
// holds no such component. The OnRemove hook fires before the link is broken.
func (e *Entity) RemoveComponent(t reflect.Type) Component {
	c, ok := e.components[t]
	if !ok {
		return nil
	}

	c.OnRemove()
	delete(e.components, t)
	e.world.componentRemoved(e, t)
	c.detach()
	return c
}

// Component returns the attached component of the given type, or nil.
func (e *Entity) Component(t reflect.Type) Component {
	return e.components[t]
}

// HasComponent reports whether a component of the given type is attached.
func (e *Entity) HasComponent(t reflect.Type) bool {
	_, ok := e.components[t]
	return ok
}

// HasComponents reports whether the entity holds every listed component type.
func (e *Entity) HasComponents(types ...reflect.Type) bool {
	for _, t := range types {
		if _, ok := e.components[t]; !ok {
			return false
		}
	}
	return true
}

// ComponentCount returns the number of attached components.
func (e *Entity) ComponentCount() int { return len(e.components) }

// ComponentTypes returns the type tags of all attached components, in no
// particular order.
func (e *Entity) ComponentTypes() []reflect.Type {
	types := make([]reflect.Type, 0, len(e.components))
	for t := range e.components {
		types = append(types, t)
	}
	return types
}

// AddTag adds a tag to the entity and returns the entity for chaining.
// Adding a tag the entity already has is a no-op.
func (e *Entity) AddTag(tag Tag) *Entity {
	if e.destroyed {
		return e
	}
	if _, ok := e.tags[tag]; ok {
		return e
	}
	e.tags[tag] = struct{}{}
	e.world.tagAdded(e, tag)
	return e
}

// RemoveTag removes a tag from the entity, reporting whether it was present.
func (e *Entity) RemoveTag(tag Tag) bool {
	if _, ok := e.tags[tag]; !ok {
		return false
	}
	delete(e.tags, tag)
	e.world.tagRemoved(e, tag)
	return true
}

// HasTag reports whether the entity carries the given tag.
func (e *Entity) HasTag(tag Tag) bool {
	_, ok := e.tags[tag]
	return ok
}

// Tags returns the entity's tags in no particular order.
func (e *Entity) Tags() []Tag {
	tags := make([]Tag, 0, len(e.tags))
	for tag := range e.tags {
		tags = append(tags, tag)
	}
	return tags
}

// SetActive toggles whether the entity is matched by system queries. Inactive
// entities keep their components and tags. Setting the current value is a
// no-op. Returns the entity for chaining.
func (e *Entity) SetActive(active bool) *Entity {
	if e.destroyed || e.active == active {
		return e
	}
	e.active = active
	e.world.activeChanged(e)
	return e
}

// Destroy detaches every component (running each OnRemove hook to completion)
// and then erases the entity from all world indexes. The entity must not be
// mutated afterwards; its ID is never reassigned by the world.
func (e *Entity) Destroy() {
	if e.destroyed {
		return
	}
	for t := range e.components {
		e.RemoveComponent(t)
	}
	e.world.removeEntity(e)
	e.destroyed = true
	e.active = false
}
