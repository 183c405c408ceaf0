package ecs_test

import (
	"context"
	"reflect"
	"testing"
	"time"

	"github.com/plus3/weft/ecs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMovementSystem(executions *int) *ecs.System {
	return &ecs.System{
		Name:  "movement",
		Query: []reflect.Type{positionType, velocityType},
		Run: func(w *ecs.World, e ecs.Entity, components []any) {
			*executions++
			pos := components[0].(*Position)
			vel := components[1].(*Velocity)
			pos.X += vel.DX
			pos.Y += vel.DY
		},
	}
}

func TestSchedulerRunsSystemsInOrder(t *testing.T) {
	world := ecs.NewWorld()
	scheduler := ecs.NewScheduler()

	world.Spawn(&Position{}, &Velocity{})

	var order []string
	first := &ecs.System{
		Query: []reflect.Type{positionType},
		Run: func(*ecs.World, ecs.Entity, []any) {
			order = append(order, "first")
		},
	}
	second := &ecs.System{
		Query: []reflect.Type{positionType},
		Run: func(*ecs.World, ecs.Entity, []any) {
			order = append(order, "second")
		},
	}

	require.NoError(t, scheduler.AddSystem(first))
	require.NoError(t, scheduler.AddSystem(second))

	scheduler.Run(world)
	assert.Equal(t, []string{"first", "second"}, order)
}

func TestSchedulerRejectsDuplicateSystem(t *testing.T) {
	scheduler := ecs.NewScheduler()

	system := &ecs.System{Query: []reflect.Type{positionType}}
	require.NoError(t, scheduler.AddSystem(system))

	err := scheduler.AddSystem(system)
	assert.ErrorIs(t, err, ecs.ErrDuplicateSystem)

	// The registry is unchanged: one pass still runs the system once.
	assert.Equal(t, 1, scheduler.Stats().SystemCount)

	// A distinct system with the same shape is fine.
	other := &ecs.System{Query: []reflect.Type{positionType}}
	assert.NoError(t, scheduler.AddSystem(other))
}

func TestSchedulerInvokesOncePerMatchingEntity(t *testing.T) {
	world := ecs.NewWorld()
	scheduler := ecs.NewScheduler()

	moving1 := world.Spawn(&Position{}, &Velocity{})
	moving2 := world.Spawn(&Position{}, &Velocity{})
	world.Spawn(&Position{}) // not matching

	var visited []ecs.Entity
	system := &ecs.System{
		Query: []reflect.Type{positionType, velocityType},
		Run: func(_ *ecs.World, e ecs.Entity, _ []any) {
			visited = append(visited, e)
		},
	}
	require.NoError(t, scheduler.AddSystem(system))

	scheduler.Run(world)
	assert.Equal(t, []ecs.Entity{moving1, moving2}, visited)

	scheduler.Run(world)
	assert.Len(t, visited, 4)
}

func TestSchedulerMovementScenario(t *testing.T) {
	world := ecs.NewWorld()
	scheduler := ecs.NewScheduler()

	mover1 := world.Spawn(&Position{X: 0, Y: 0}, &Velocity{DX: 1, DY: 2})
	mover2 := world.Spawn(&Position{X: 10, Y: 10}, &Velocity{DX: -1, DY: 0})
	still := world.Spawn(&Position{X: 5, Y: 5})

	executions := 0
	require.NoError(t, scheduler.AddSystem(newMovementSystem(&executions)))

	scheduler.Run(world)

	assert.Equal(t, 2, executions)

	pos1, err := ecs.GetComponentAs[Position](world.View(mover1))
	require.NoError(t, err)
	assert.Equal(t, Position{X: 1, Y: 2}, *pos1)

	pos2, err := ecs.GetComponentAs[Position](world.View(mover2))
	require.NoError(t, err)
	assert.Equal(t, Position{X: 9, Y: 10}, *pos2)

	// The {Position}-only entity is untouched.
	pos3, err := ecs.GetComponentAs[Position](world.View(still))
	require.NoError(t, err)
	assert.Equal(t, Position{X: 5, Y: 5}, *pos3)
}

func TestSchedulerSystemCanUseWorld(t *testing.T) {
	world := ecs.NewWorld()
	scheduler := ecs.NewScheduler()

	e := world.Spawn(&Position{}, &Health{Current: 0, Max: 10})

	system := &ecs.System{
		Query: []reflect.Type{healthType},
		Run: func(w *ecs.World, e ecs.Entity, components []any) {
			health := components[0].(*Health)
			if health.Current <= 0 {
				_ = w.View(e).AddComponents(Tag("dead"))
			}
		},
	}

	require.NoError(t, scheduler.AddSystem(system))
	scheduler.Run(world)

	assert.True(t, world.View(e).Has(tagType))
}

func TestSchedulerStats(t *testing.T) {
	world := ecs.NewWorld()
	scheduler := ecs.NewScheduler()

	world.Spawn(&Position{}, &Velocity{})

	stats := scheduler.Stats()
	assert.Equal(t, 0, stats.SystemCount)
	assert.Equal(t, int64(0), stats.TotalExecutions)

	executions := 0
	require.NoError(t, scheduler.AddSystem(newMovementSystem(&executions)))
	require.NoError(t, scheduler.AddSystem(&ecs.System{
		Query: []reflect.Type{positionType},
		Run: func(*ecs.World, ecs.Entity, []any) {
			time.Sleep(time.Millisecond)
		},
	}))

	scheduler.Run(world)
	scheduler.Run(world)
	scheduler.Run(world)

	stats = scheduler.Stats()
	assert.Equal(t, 2, stats.SystemCount)
	assert.Equal(t, int64(6), stats.TotalExecutions)
	require.Len(t, stats.Systems, 2)

	assert.Equal(t, "movement", stats.Systems[0].Name)
	assert.Equal(t, "system-1", stats.Systems[1].Name)

	for _, sys := range stats.Systems {
		assert.Equal(t, int64(3), sys.ExecutionCount)
		assert.LessOrEqual(t, sys.MinDuration, sys.AvgDuration)
		assert.LessOrEqual(t, sys.AvgDuration, sys.MaxDuration)
		assert.LessOrEqual(t, sys.LastDuration, sys.TotalDuration)
	}
	assert.Greater(t, stats.Systems[1].MinDuration, time.Duration(0))
}

func TestSchedulerRunEvery(t *testing.T) {
	world := ecs.NewWorld()
	scheduler := ecs.NewScheduler()

	world.Spawn(&Position{}, &Velocity{DX: 1})

	executions := 0
	require.NoError(t, scheduler.AddSystem(newMovementSystem(&executions)))

	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		scheduler.RunEvery(ctx, world, time.Millisecond)
		close(done)
	}()

	time.Sleep(10 * time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(100 * time.Millisecond):
		t.Fatal("scheduler did not stop after context cancellation")
	}

	assert.Greater(t, executions, 0)
}
