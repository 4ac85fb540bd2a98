package ecs

import (
	"errors"
	"fmt"
	"reflect"
)

// ErrEntityDestroyed is returned by mutating entity operations after Destroy.
var ErrEntityDestroyed = errors.New("entity has been destroyed")

// DuplicateComponentError reports an attempt to attach a second component of a
// type the entity already holds. The entity is left unchanged.
type DuplicateComponentError struct {
	ID   EntityID
	Type reflect.Type
}

func (e *DuplicateComponentError) Error() string {
	return fmt.Sprintf("entity %d already has a component of type %s", e.ID, e.Type)
}

// DuplicateIDError reports an attempt to create an entity with an ID that is
// already live in the world.
type DuplicateIDError struct {
	ID EntityID
}

func (e *DuplicateIDError) Error() string {
	return fmt.Sprintf("entity id %d is already in use", e.ID)
}

// AlreadyAttachedError reports an attempt to attach a component instance that
// is still attached to another entity.
type AlreadyAttachedError struct {
	Type  reflect.Type
	Owner EntityID
}

func (e *AlreadyAttachedError) Error() string {
	return fmt.Sprintf("component %s is already attached to entity %d", e.Type, e.Owner)
}
