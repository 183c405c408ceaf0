package ecs

import (
	"fmt"
	"reflect"
)

// EntityView reads and mutates one entity's components while keeping its
// archetype placement consistent with the component store. Views hold a
// non-owning reference into their world and must not be shared across
// worlds.
type EntityView struct {
	entity Entity
	world  *World
	batch  *viewBatch // non-nil while inside Batch
}

// Entity returns the handle this view is bound to.
func (v *EntityView) Entity() Entity {
	return v.entity
}

// Get returns the requested components in request order. It fails with a
// *NotFoundError as soon as any requested type is absent for the entity; no
// partial results are returned.
func (v *EntityView) Get(types ...reflect.Type) ([]any, error) {
	components := make([]any, len(types))
	for i, t := range types {
		c, ok := v.world.store.Get(v.entity, indirectType(t))
		if !ok {
			return nil, &NotFoundError{Entity: v.entity, TypeName: indirectType(t).String()}
		}
		components[i] = c
	}
	return components, nil
}

// GetAll returns a defensive copy of the entity's type-to-component mapping.
func (v *EntityView) GetAll() map[TypeID]any {
	return v.world.store.GetAll(v.entity)
}

// Has is the non-failing presence check.
func (v *EntityView) Has(t reflect.Type) bool {
	return v.world.store.Has(v.entity, indirectType(t))
}

// GetComponentAs returns the entity's component of type T, or a
// *NotFoundError if the entity does not carry one.
func GetComponentAs[T any](v *EntityView) (*T, error) {
	components, err := v.Get(reflect.TypeFor[T]())
	if err != nil {
		return nil, err
	}
	return components[0].(*T), nil
}

// viewOp is one buffered mutation intent. Exactly one field is populated.
type viewOp struct {
	add       []any
	remove    []reflect.Type
	removeAll bool
}

type viewBatch struct {
	ops []viewOp
}

// AddComponents stores the components and immediately re-places the entity
// in the archetype matching its new component set. Inside a batch the
// mutation is buffered and applied on commit instead.
func (v *EntityView) AddComponents(components ...any) error {
	return v.mutate(viewOp{add: components})
}

// RemoveComponents deletes the components of the given types and re-places
// the entity. Removing an absent type is a no-op.
func (v *EntityView) RemoveComponents(types ...reflect.Type) error {
	return v.mutate(viewOp{remove: types})
}

// RemoveAllComponents deletes every component the entity has and removes it
// from its archetype.
func (v *EntityView) RemoveAllComponents() error {
	return v.mutate(viewOp{removeAll: true})
}

func (v *EntityView) mutate(op viewOp) error {
	if v.batch != nil {
		v.batch.ops = append(v.batch.ops, op)
		return nil
	}
	return v.apply([]viewOp{op})
}

// Batch runs fn with archetype re-placement suspended: every mutation issued
// through the view inside fn is buffered, then one consolidated store flush
// and at most one archetype migration happen when fn returns. The commit
// runs on every exit path, including error returns and panics. Reads inside
// the batch see the pre-batch state.
func (v *EntityView) Batch(fn func(*EntityView) error) (err error) {
	if v.batch != nil {
		// Already batching; intents land in the enclosing batch.
		return fn(v)
	}

	v.batch = &viewBatch{}
	defer func() {
		ops := v.batch.ops
		v.batch = nil
		if commitErr := v.apply(ops); commitErr != nil && err == nil {
			err = commitErr
		}
	}()

	return fn(v)
}

// apply flushes mutation intents to the store in order, then performs at
// most one archetype migration for the net layout change.
func (v *EntityView) apply(ops []viewOp) error {
	if len(ops) == 0 {
		return nil
	}

	w := v.world
	before := w.layoutFor(v.entity)

	for _, op := range ops {
		switch {
		case op.removeAll:
			w.store.Clear(v.entity)
		case op.add != nil:
			for _, c := range op.add {
				w.store.Add(v.entity, c)
			}
		default:
			for _, t := range op.remove {
				w.store.Remove(v.entity, indirectType(t))
			}
		}
	}

	return v.migrate(before, w.layoutFor(v.entity))
}

// migrate re-places the entity for its new layout. An entity outside any
// archetype (spawned bare) is added directly; an entity whose layout became
// empty is removed from its archetype; everything else goes through the
// registry migration.
func (v *EntityView) migrate(before, after *Layout) error {
	if before.Hash() == after.Hash() {
		return nil
	}

	switch {
	case before.ComponentCount() == 0:
		v.world.archetypes.GetOrInsert(after).Add(v.entity)
	case after.ComponentCount() == 0:
		arch := v.world.archetypes.Get(before.Hash())
		if arch == nil {
			return fmt.Errorf("%w: no archetype for layout %#x (entity %d)", ErrArchetypeNotFound, before.Hash(), v.entity)
		}
		if !arch.Remove(v.entity) {
			return fmt.Errorf("%w: entity %d is not in archetype %#x", ErrNotInArchetype, v.entity, arch.ID())
		}
	default:
		if _, err := v.world.archetypes.UpdateLayout(v.entity, before, after); err != nil {
			return err
		}
	}
	return nil
}
