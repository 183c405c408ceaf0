package ecs

import "reflect"

// World orchestrates entity creation, component storage, archetype placement
// and queries. It exclusively owns its type registry, archetype registry and
// component store; those must only be mutated through World and EntityView.
// Everything runs synchronously on the caller's goroutine.
type World struct {
	registry   *TypeRegistry
	archetypes *Archetypes
	store      *Store
	nextEntity Entity
}

// NewWorld creates an empty world with its own type registry, so multiple
// worlds never share type or bit-position state.
func NewWorld() *World {
	registry := NewTypeRegistry()
	return &World{
		registry:   registry,
		archetypes: NewArchetypes(),
		store:      NewStore(registry),
	}
}

// Registry returns the world's type registry.
func (w *World) Registry() *TypeRegistry {
	return w.registry
}

// Archetypes returns the world's archetype registry.
func (w *World) Archetypes() *Archetypes {
	return w.archetypes
}

// Spawn allocates the next entity handle and attaches the given components.
// With no components the entity exists but belongs to no archetype until a
// view adds components later. Supplying two components of the same type
// stores only the last one.
func (w *World) Spawn(components ...any) Entity {
	w.nextEntity++
	e := w.nextEntity

	if len(components) == 0 {
		return e
	}

	layout := NewLayout(w.registry)
	for _, c := range components {
		layout.Register(componentType(c))
	}

	w.archetypes.GetOrInsert(layout).Add(e)
	for _, c := range components {
		w.store.Add(e, c)
	}
	return e
}

// Query visits every entity whose archetype carries at least the requested
// component types. fn receives each entity's components resolved in the same
// order as types; it may be nil when only the entity list is wanted. Visit
// order is archetype registration order, then per-archetype insertion order.
// The returned slice holds every visited entity.
func (w *World) Query(fn func(e Entity, components []any), types ...reflect.Type) []Entity {
	layout := NewLayout(w.registry)
	for _, t := range types {
		layout.Register(indirectType(t))
	}

	var visited []Entity
	for arch := range w.archetypes.All() {
		if !arch.layout.IsCompatible(layout) {
			continue
		}
		// Snapshot so systems may mutate membership mid-query.
		for _, e := range arch.Entities() {
			if fn != nil {
				components := make([]any, len(types))
				for i, t := range types {
					// Present by construction: archetype compatibility
					// implies the type is stored.
					components[i], _ = w.store.Get(e, indirectType(t))
				}
				fn(e, components)
			}
			visited = append(visited, e)
		}
	}
	return visited
}

// View returns a per-entity accessor bound to this world's store. Views are
// thin references, not copies, and must not outlive the world.
func (w *World) View(e Entity) *EntityView {
	return &EntityView{entity: e, world: w}
}

// layoutFor rebuilds an entity's layout from the store's contents.
func (w *World) layoutFor(e Entity) *Layout {
	layout := NewLayout(w.registry)
	for _, id := range w.store.typeIDs(e) {
		layout.registerID(id)
	}
	return layout
}

// WorldStats summarizes a world's population for debugging and tooling.
type WorldStats struct {
	TotalEntityCount int
	ArchetypeCount   int
	ComponentTypes   int
	Archetypes       []ArchetypeStats
}

// ArchetypeStats describes one archetype's layout and population.
type ArchetypeStats struct {
	ID          uint64
	TypeIDs     []TypeID
	EntityCount int
}

// CollectStats gathers population counts in archetype registration order.
// Entities spawned without components belong to no archetype and are not
// counted.
func (w *World) CollectStats() *WorldStats {
	stats := &WorldStats{
		ArchetypeCount: w.archetypes.Len(),
		ComponentTypes: len(w.registry.byBit),
		Archetypes:     make([]ArchetypeStats, 0, w.archetypes.Len()),
	}

	for arch := range w.archetypes.All() {
		stats.TotalEntityCount += arch.Len()
		stats.Archetypes = append(stats.Archetypes, ArchetypeStats{
			ID:          arch.ID(),
			TypeIDs:     arch.layout.TypeIDs(),
			EntityCount: arch.Len(),
		})
	}

	return stats
}
