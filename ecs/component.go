package ecs

import "reflect"

// Component is implemented by every data record that can be attached to an
// entity. Components carry state, not behavior; the two hooks exist so a
// component can set itself up against its owning entity.
//
// Concrete components embed BaseComponent, which supplies the back-reference
// plumbing and no-op hooks, and are always attached as pointers.
type Component interface {
	// Entity returns the owning entity, or nil while detached.
	Entity() *Entity

	// OnAdd is called after the component has been linked to its entity and
	// registered in the world's type index. Entity() is valid inside the hook.
	OnAdd()

	// OnRemove is called before the component is unlinked from its entity.
	// Entity() is still valid inside the hook.
	OnRemove()

	attach(*Entity)
	detach()
}

// BaseComponent provides the owner back-reference and default hook
// implementations. Embed it in every concrete component.
type BaseComponent struct {
	owner *Entity
}

// Entity returns the entity this component is attached to, or nil.
func (b *BaseComponent) Entity() *Entity { return b.owner }

// OnAdd is a no-op; override on the concrete component when needed.
func (b *BaseComponent) OnAdd() {}

// OnRemove is a no-op; override on the concrete component when needed.
func (b *BaseComponent) OnRemove() {}

func (b *BaseComponent) attach(e *Entity) { b.owner = e }
func (b *BaseComponent) detach()          { b.owner = nil }

// TypeOf returns the component-type tag for T. Use it to build required
// component sets for systems and queries.
func TypeOf[T any]() reflect.Type {
	return reflect.TypeFor[T]()
}

// Get returns the entity's component of type T, or nil when absent.
func Get[T any](e *Entity) *T {
	c := e.Component(reflect.TypeFor[T]())
	if c == nil {
		return nil
	}
	v, ok := any(c).(*T)
	if !ok {
		return nil
	}
	return v
}

// componentTypeOf resolves the type tag for an attached component instance.
// Components are attached as pointers; the tag is the pointed-to type.
func componentTypeOf(c Component) reflect.Type {
	t := reflect.TypeOf(c)
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t
}
