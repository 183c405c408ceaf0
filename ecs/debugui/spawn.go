package debugui

import "github.com/plus3/weft/ecs"

// SpawnDebugUI spawns the standard debug widget entities into the world and
// wires them together: archetype clicks filter the browser, and the browser
// selection feeds the inspector. scheduler may be nil when no system stats
// are wanted. Pair this with NewImguiSystem on the frame scheduler.
func SpawnDebugUI(world *ecs.World, scheduler *ecs.Scheduler) {
	browser := NewEntityBrowserComponent(100)
	inspector := NewComponentInspectorComponent()
	viewer := NewArchetypeViewerComponent()
	stats := NewPerformanceStatsComponent(120)
	query := NewQueryDebuggerComponent()
	timer := NewFrameTimer()

	world.Spawn(browser, &ImguiItem{Render: func() {
		browser.Render(world)
	}})
	world.Spawn(viewer, &ImguiItem{Render: func() {
		if archID := viewer.Render(world); archID != nil {
			browser.FilterByArchetype(*archID)
		}
	}})
	world.Spawn(inspector, &ImguiItem{Render: func() {
		inspector.Render(world, browser.GetSelectedEntity())
	}})
	world.Spawn(stats, &ImguiItem{Render: func() {
		stats.Render(world, scheduler, timer.GetDeltaTime())
	}})
	world.Spawn(query, &ImguiItem{Render: func() {
		query.Render(world)
	}})
}
