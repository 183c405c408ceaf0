package ecs

import (
	"errors"
	"fmt"
)

var (
	// ErrDuplicateSystem is returned by Scheduler.AddSystem when the same
	// system value is registered a second time.
	ErrDuplicateSystem = errors.New("system already registered")

	// ErrArchetypeNotFound signals an archetype migration against a layout
	// no archetype was ever created for. This is a contract violation: the
	// component store and the archetype registry have desynchronized.
	ErrArchetypeNotFound = errors.New("archetype not found")

	// ErrNotInArchetype signals an archetype migration for an entity that is
	// not a member of its supposed source archetype.
	ErrNotInArchetype = errors.New("entity not in archetype")
)

// NotFoundError reports a view read for a component type the entity does not
// carry.
type NotFoundError struct {
	Entity   Entity
	TypeName string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("entity %d has no %s component", e.Entity, e.TypeName)
}
