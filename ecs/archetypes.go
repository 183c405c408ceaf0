package ecs

import (
	"fmt"
	"iter"
)

// Archetypes tracks every archetype in a World, keyed by layout hash.
// Iteration follows registration order. Archetypes are created lazily and
// never pruned, even when their entity set becomes empty: they are cheap and
// their identity is stable.
type Archetypes struct {
	byID  map[uint64]*Archetype
	order []*Archetype
}

// NewArchetypes creates an empty archetype registry.
func NewArchetypes() *Archetypes {
	return &Archetypes{
		byID: make(map[uint64]*Archetype),
	}
}

// GetOrInsert returns the archetype for the layout's hash, creating and
// registering it on first use. This is the only path that creates
// archetypes.
func (s *Archetypes) GetOrInsert(layout *Layout) *Archetype {
	if a, ok := s.byID[layout.Hash()]; ok {
		return a
	}
	a := newArchetype(layout)
	s.byID[a.id] = a
	s.order = append(s.order, a)
	return a
}

// Get returns the archetype with the given id, or nil. It never creates.
func (s *Archetypes) Get(id uint64) *Archetype {
	return s.byID[id]
}

// Len returns the number of registered archetypes.
func (s *Archetypes) Len() int {
	return len(s.order)
}

// All yields archetypes in registration order.
func (s *Archetypes) All() iter.Seq[*Archetype] {
	return func(yield func(*Archetype) bool) {
		for _, a := range s.order {
			if !yield(a) {
				return
			}
		}
	}
}

// UpdateLayout moves an entity from the archetype of its old layout to the
// archetype of the new one, creating the destination if needed, and returns
// the destination. Equal layout hashes are a no-op. A missing source
// archetype or a non-member entity means the component store and this
// registry have desynchronized; both are surfaced as errors rather than
// repaired.
func (s *Archetypes) UpdateLayout(e Entity, oldLayout, newLayout *Layout) (*Archetype, error) {
	old := s.Get(oldLayout.Hash())
	if old == nil {
		return nil, fmt.Errorf("%w: no archetype for layout %#x (entity %d)", ErrArchetypeNotFound, oldLayout.Hash(), e)
	}
	if !old.Has(e) {
		return nil, fmt.Errorf("%w: entity %d is not in archetype %#x", ErrNotInArchetype, e, old.ID())
	}
	if oldLayout.Hash() == newLayout.Hash() {
		return old, nil
	}

	next := s.GetOrInsert(newLayout)
	old.Remove(e)
	next.Add(e)
	return next, nil
}
