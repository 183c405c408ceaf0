package ecs_test

import (
	"fmt"
	"reflect"

	"github.com/plus3/weft/ecs"
)

// ExampleScheduler demonstrates registering systems and running them in
// order. Each Run call issues one query per system, in registration order.
func ExampleScheduler() {
	world := ecs.NewWorld()
	scheduler := ecs.NewScheduler()

	world.Spawn(&Position{X: 0, Y: 0}, &Velocity{DX: 1, DY: 2})
	world.Spawn(&Position{X: 5, Y: 5}, &Velocity{DX: -1, DY: 0})
	world.Spawn(&Position{X: 9, Y: 9})

	movement := &ecs.System{
		Name:  "movement",
		Query: []reflect.Type{positionType, velocityType},
		Run: func(w *ecs.World, e ecs.Entity, components []any) {
			pos := components[0].(*Position)
			vel := components[1].(*Velocity)
			pos.X += vel.DX
			pos.Y += vel.DY
		},
	}

	report := &ecs.System{
		Name:  "report",
		Query: []reflect.Type{positionType},
		Run: func(w *ecs.World, e ecs.Entity, components []any) {
			pos := components[0].(*Position)
			fmt.Printf("entity %d at (%.0f, %.0f)\n", e, pos.X, pos.Y)
		},
	}

	if err := scheduler.AddSystem(movement); err != nil {
		panic(err)
	}
	if err := scheduler.AddSystem(report); err != nil {
		panic(err)
	}

	scheduler.Run(world)

	// Output:
	// entity 1 at (1, 2)
	// entity 2 at (4, 5)
	// entity 3 at (9, 9)
}

// ExampleScheduler_duplicate shows that the same system value cannot be
// registered twice.
func ExampleScheduler_duplicate() {
	scheduler := ecs.NewScheduler()

	system := &ecs.System{
		Name:  "movement",
		Query: []reflect.Type{positionType, velocityType},
	}

	fmt.Println(scheduler.AddSystem(system))
	fmt.Println(scheduler.AddSystem(system))

	// Output:
	// <nil>
	// system already registered: movement
}
