package ecs_test

import (
	"testing"

	"github.com/plus3/weft/ecs"
	"github.com/stretchr/testify/assert"
)

func TestStoreAddGet(t *testing.T) {
	registry := ecs.NewTypeRegistry()
	store := ecs.NewStore(registry)

	pos := &Position{X: 3, Y: 4}
	store.Add(1, pos)

	got, ok := store.Get(1, positionType)
	assert.True(t, ok)
	// The exact instance last stored is handed back.
	assert.Same(t, pos, got.(*Position))

	_, ok = store.Get(1, velocityType)
	assert.False(t, ok)

	_, ok = store.Get(99, positionType)
	assert.False(t, ok)
}

func TestStoreValueComponentsAreMutable(t *testing.T) {
	registry := ecs.NewTypeRegistry()
	store := ecs.NewStore(registry)

	// Components passed by value are boxed behind a pointer so systems can
	// mutate them in place.
	store.Add(1, Position{X: 1, Y: 2})

	got, ok := store.Get(1, positionType)
	assert.True(t, ok)
	got.(*Position).X = 10

	again, _ := store.Get(1, positionType)
	assert.Equal(t, float32(10), again.(*Position).X)
}

func TestStoreOverwriteSameType(t *testing.T) {
	registry := ecs.NewTypeRegistry()
	store := ecs.NewStore(registry)

	store.Add(1, &Position{X: 1})
	replacement := &Position{X: 2}
	store.Add(1, replacement)

	got, ok := store.Get(1, positionType)
	assert.True(t, ok)
	assert.Same(t, replacement, got.(*Position))
}

func TestStoreHas(t *testing.T) {
	registry := ecs.NewTypeRegistry()
	store := ecs.NewStore(registry)

	store.Add(1, &Position{})

	assert.True(t, store.Has(1, positionType))
	assert.False(t, store.Has(1, velocityType))
	assert.False(t, store.Has(2, positionType))
}

func TestStoreGetAllIsDefensiveCopy(t *testing.T) {
	registry := ecs.NewTypeRegistry()
	store := ecs.NewStore(registry)

	store.Add(1, &Position{X: 1})
	store.Add(1, &Velocity{DX: 2})

	all := store.GetAll(1)
	assert.Len(t, all, 2)

	for id := range all {
		delete(all, id)
	}

	assert.True(t, store.Has(1, positionType))
	assert.True(t, store.Has(1, velocityType))

	// Unknown entities get an empty mapping, not nil semantics.
	assert.Empty(t, store.GetAll(42))
}

func TestStoreRemoveAndClear(t *testing.T) {
	registry := ecs.NewTypeRegistry()
	store := ecs.NewStore(registry)

	store.Add(1, &Position{})
	store.Add(1, &Velocity{})

	store.Remove(1, positionType)
	assert.False(t, store.Has(1, positionType))
	assert.True(t, store.Has(1, velocityType))

	// Removing an absent type is a no-op.
	store.Remove(1, healthType)

	store.Clear(1)
	assert.False(t, store.Has(1, velocityType))
	assert.Empty(t, store.GetAll(1))
}

func TestStorePrimitiveComponents(t *testing.T) {
	registry := ecs.NewTypeRegistry()
	store := ecs.NewStore(registry)

	store.Add(1, Score(32))
	store.Add(1, Tag("enemy"))

	got, ok := store.Get(1, scoreType)
	assert.True(t, ok)
	assert.Equal(t, Score(32), *got.(*Score))

	tag, ok := store.Get(1, tagType)
	assert.True(t, ok)
	assert.Equal(t, Tag("enemy"), *tag.(*Tag))
}
