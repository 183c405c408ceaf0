package ecs

import "reflect"

// System pairs a fixed, ordered component query with a run function. Run is
// invoked once per matching entity with the entity's components resolved in
// Query order, plus the world for further reads or view access. Systems are
// registered by pointer; the same *System cannot be registered twice.
type System struct {
	// Name appears in scheduler statistics. Optional; unnamed systems are
	// reported by registration index.
	Name string

	// Query is the ordered tuple of component types an entity must carry.
	Query []reflect.Type

	// Run is called once per matching entity.
	Run func(w *World, e Entity, components []any)
}
