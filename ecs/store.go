package ecs

import (
	"maps"
	"reflect"

	"github.com/kamstrup/intmap"
)

// Store is the source of truth for component data, keyed by entity and
// component type identifier. Archetype membership is a derived index over
// this data, never the other way around, so Store mutations deliberately
// leave archetypes alone; World and EntityView keep the two consistent.
type Store struct {
	registry   *TypeRegistry
	components *intmap.Map[Entity, map[TypeID]any]
}

// NewStore creates an empty component store bound to the given registry.
func NewStore(registry *TypeRegistry) *Store {
	return &Store{
		registry:   registry,
		components: intmap.New[Entity, map[TypeID]any](64),
	}
}

// Add stores the component under its runtime type, overwriting any previous
// component of the same type for that entity. Values are boxed behind a
// pointer so systems and views can mutate them in place; components passed
// as pointers are stored as-is, preserving instance identity.
func (s *Store) Add(e Entity, component any) {
	id := s.registry.IDOf(componentType(component))
	m, ok := s.components.Get(e)
	if !ok {
		m = make(map[TypeID]any, 4)
		s.components.Put(e, m)
	}
	m[id] = boxComponent(component)
}

// Get returns the stored component for the entity and type. An unknown
// entity or unattached type is not an error; it reports false.
func (s *Store) Get(e Entity, t reflect.Type) (any, bool) {
	m, ok := s.components.Get(e)
	if !ok {
		return nil, false
	}
	c, ok := m[s.registry.IDOf(t)]
	return c, ok
}

// Has reports whether the entity has a component of the given type.
func (s *Store) Has(e Entity, t reflect.Type) bool {
	_, ok := s.Get(e, t)
	return ok
}

// GetAll returns a copy of the entity's type-to-component mapping, or an
// empty mapping for an unknown entity. Mutating the returned map never
// affects stored state.
func (s *Store) GetAll(e Entity) map[TypeID]any {
	m, ok := s.components.Get(e)
	if !ok {
		return map[TypeID]any{}
	}
	return maps.Clone(m)
}

// Remove deletes the entity's component of the given type, if any.
func (s *Store) Remove(e Entity, t reflect.Type) {
	if m, ok := s.components.Get(e); ok {
		delete(m, s.registry.IDOf(t))
	}
}

// Clear deletes every component the entity has.
func (s *Store) Clear(e Entity) {
	s.components.Del(e)
}

// typeIDs returns the identifiers of the entity's stored components.
func (s *Store) typeIDs(e Entity) []TypeID {
	m, _ := s.components.Get(e)
	ids := make([]TypeID, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	return ids
}

// boxComponent normalizes a component to pointer form so that reads hand out
// a mutable instance.
func boxComponent(component any) any {
	v := reflect.ValueOf(component)
	if v.Kind() == reflect.Pointer {
		return component
	}
	p := reflect.New(v.Type())
	p.Elem().Set(v)
	return p.Interface()
}
