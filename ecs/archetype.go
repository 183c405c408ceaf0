package ecs

import (
	"iter"
	"slices"

	"github.com/kamstrup/intmap"
)

// Archetype groups the entities that currently carry exactly one layout's
// component set. Its identity is the layout hash. Membership keeps insertion
// order, which is what makes query iteration deterministic within a process
// run.
type Archetype struct {
	id       uint64
	layout   *Layout
	entities []Entity
	index    *intmap.Map[Entity, int]
}

func newArchetype(layout *Layout) *Archetype {
	return &Archetype{
		id:     layout.Hash(),
		layout: layout.Clone(),
		index:  intmap.New[Entity, int](16),
	}
}

// ID returns the archetype's identifier, the hash of its layout.
func (a *Archetype) ID() uint64 {
	return a.id
}

// Layout returns a copy of the archetype's layout.
func (a *Archetype) Layout() *Layout {
	return a.layout.Clone()
}

// Add appends the entity to the membership list. Adding a member twice is a
// no-op.
func (a *Archetype) Add(e Entity) {
	if _, ok := a.index.Get(e); ok {
		return
	}
	a.index.Put(e, len(a.entities))
	a.entities = append(a.entities, e)
}

// Remove deletes the entity from the membership list, preserving the
// insertion order of the remaining members. It reports whether the entity
// was a member.
func (a *Archetype) Remove(e Entity) bool {
	pos, ok := a.index.Get(e)
	if !ok {
		return false
	}
	a.index.Del(e)
	a.entities = slices.Delete(a.entities, pos, pos+1)
	for i := pos; i < len(a.entities); i++ {
		a.index.Put(a.entities[i], i)
	}
	return true
}

// Has reports whether the entity is currently a member.
func (a *Archetype) Has(e Entity) bool {
	_, ok := a.index.Get(e)
	return ok
}

// Len returns the current member count.
func (a *Archetype) Len() int {
	return len(a.entities)
}

// Entities returns a snapshot of the membership in insertion order. The
// returned slice is a fresh copy and does not track later changes.
func (a *Archetype) Entities() []Entity {
	return slices.Clone(a.entities)
}

// Iter yields members in insertion order.
func (a *Archetype) Iter() iter.Seq[Entity] {
	return func(yield func(Entity) bool) {
		for _, e := range a.entities {
			if !yield(e) {
				return
			}
		}
	}
}
