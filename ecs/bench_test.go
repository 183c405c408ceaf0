package ecs_test

import (
	"testing"

	"github.com/plus3/weft/ecs"
)

func BenchmarkSpawn(b *testing.B) {
	world := ecs.NewWorld()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		world.Spawn(&Position{}, &Velocity{})
	}
}

func BenchmarkQuery(b *testing.B) {
	world := ecs.NewWorld()
	for i := 0; i < 1000; i++ {
		world.Spawn(&Position{}, &Velocity{})
		world.Spawn(&Position{})
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		world.Query(func(e ecs.Entity, components []any) {
			pos := components[0].(*Position)
			vel := components[1].(*Velocity)
			pos.X += vel.DX
			pos.Y += vel.DY
		}, positionType, velocityType)
	}
}

func BenchmarkViewGet(b *testing.B) {
	world := ecs.NewWorld()
	e := world.Spawn(&Position{}, &Velocity{}, &Health{})
	view := world.View(e)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := view.Get(positionType, healthType); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkBatchMigration(b *testing.B) {
	world := ecs.NewWorld()
	entities := make([]ecs.Entity, b.N)
	for i := range entities {
		entities[i] = world.Spawn(&Position{})
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		err := world.View(entities[i]).Batch(func(v *ecs.EntityView) error {
			if err := v.AddComponents(&Velocity{}); err != nil {
				return err
			}
			return v.AddComponents(&Health{})
		})
		if err != nil {
			b.Fatal(err)
		}
	}
}
