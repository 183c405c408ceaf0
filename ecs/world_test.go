package ecs_test

import (
	"testing"

	"github.com/plus3/weft/ecs"
	"github.com/stretchr/testify/assert"
)

func TestSpawnAllocatesUniqueIds(t *testing.T) {
	world := ecs.NewWorld()

	a := world.Spawn(&Position{})
	b := world.Spawn(&Position{})
	c := world.Spawn()

	assert.NotEqual(t, ecs.EntityNone, a)
	assert.Less(t, a, b)
	assert.Less(t, b, c)
}

func TestSpawnWithoutComponents(t *testing.T) {
	world := ecs.NewWorld()

	e := world.Spawn()
	assert.NotEqual(t, ecs.EntityNone, e)

	// The bare entity joins no archetype and matches no non-empty query.
	assert.Equal(t, 0, world.Archetypes().Len())
	assert.Empty(t, world.Query(nil, positionType))
	assert.Empty(t, world.View(e).GetAll())
}

func TestSpawnGroupsByComponentSet(t *testing.T) {
	world := ecs.NewWorld()

	world.Spawn(&Position{X: 1}, &Velocity{DX: 1})
	world.Spawn(&Velocity{DX: 2}, &Position{X: 2}) // same set, other order
	world.Spawn(&Position{X: 3})

	assert.Equal(t, 2, world.Archetypes().Len())

	stats := world.CollectStats()
	assert.Equal(t, 3, stats.TotalEntityCount)
}

func TestSpawnDuplicateTypeKeepsLast(t *testing.T) {
	world := ecs.NewWorld()

	e := world.Spawn(&Position{X: 1}, &Position{X: 2})

	got, err := ecs.GetComponentAs[Position](world.View(e))
	assert.NoError(t, err)
	assert.Equal(t, float32(2), got.X)

	// Only one archetype with a single-type layout exists.
	assert.Equal(t, 1, world.Archetypes().Len())
	for arch := range world.Archetypes().All() {
		assert.Equal(t, 1, arch.Layout().ComponentCount())
	}
}

func TestQueryMatchesSupersets(t *testing.T) {
	world := ecs.NewWorld()

	both1 := world.Spawn(&Position{X: 1}, &Velocity{DX: 1})
	both2 := world.Spawn(&Position{X: 2}, &Velocity{DX: 2})
	posOnly := world.Spawn(&Position{X: 3})
	world.Spawn(&Health{Current: 10})

	visited := world.Query(nil, velocityType, positionType)
	assert.ElementsMatch(t, []ecs.Entity{both1, both2}, visited)

	// Position alone also matches the {Position,Velocity} archetype.
	visited = world.Query(nil, positionType)
	assert.ElementsMatch(t, []ecs.Entity{both1, both2, posOnly}, visited)
}

func TestQueryResolvesComponentsInRequestOrder(t *testing.T) {
	world := ecs.NewWorld()

	world.Spawn(&Position{X: 5}, &Velocity{DX: 7})

	world.Query(func(e ecs.Entity, components []any) {
		vel := components[0].(*Velocity)
		pos := components[1].(*Position)
		assert.Equal(t, float32(7), vel.DX)
		assert.Equal(t, float32(5), pos.X)
	}, velocityType, positionType)
}

func TestQueryDeterministicOrder(t *testing.T) {
	world := ecs.NewWorld()

	a := world.Spawn(&Position{}, &Velocity{})
	b := world.Spawn(&Position{})
	c := world.Spawn(&Position{}, &Velocity{})
	d := world.Spawn(&Position{})

	// Archetype registration order ({Position,Velocity} first), then
	// per-archetype insertion order.
	assert.Equal(t, []ecs.Entity{a, c, b, d}, world.Query(nil, positionType))
}

func TestQueryCallbackMutatesComponents(t *testing.T) {
	world := ecs.NewWorld()

	e := world.Spawn(&Position{X: 1, Y: 1}, &Velocity{DX: 2, DY: 3})

	world.Query(func(_ ecs.Entity, components []any) {
		pos := components[0].(*Position)
		vel := components[1].(*Velocity)
		pos.X += vel.DX
		pos.Y += vel.DY
	}, positionType, velocityType)

	pos, err := ecs.GetComponentAs[Position](world.View(e))
	assert.NoError(t, err)
	assert.Equal(t, float32(3), pos.X)
	assert.Equal(t, float32(4), pos.Y)
}

func TestWorldsAreIndependent(t *testing.T) {
	w1 := ecs.NewWorld()
	w2 := ecs.NewWorld()

	e1 := w1.Spawn(&Position{})
	e2 := w2.Spawn(&Velocity{})

	// Entity counters and registries do not bleed between worlds.
	assert.Equal(t, e1, e2)
	assert.Empty(t, w1.Query(nil, velocityType))
	assert.Empty(t, w2.Query(nil, positionType))
}

func TestCollectStats(t *testing.T) {
	world := ecs.NewWorld()

	stats := world.CollectStats()
	assert.Equal(t, 0, stats.ArchetypeCount)
	assert.Equal(t, 0, stats.TotalEntityCount)

	world.Spawn(&Position{}, &Velocity{})
	world.Spawn(&Position{}, &Velocity{})
	world.Spawn(&Health{})
	world.Spawn() // bare entities are not counted

	stats = world.CollectStats()
	assert.Equal(t, 2, stats.ArchetypeCount)
	assert.Equal(t, 3, stats.TotalEntityCount)
	assert.Len(t, stats.Archetypes, 2)

	counts := []int{stats.Archetypes[0].EntityCount, stats.Archetypes[1].EntityCount}
	assert.ElementsMatch(t, []int{2, 1}, counts)
}
