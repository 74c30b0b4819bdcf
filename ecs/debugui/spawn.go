package debugui

import "github.com/plus3/yaecs/ecs"

// SpawnDebugUI adds the debug windows to the world, each as an entity holding
// its window state and an ImguiItem that renders it. The world must also run
// an ImguiSystem for the windows to be drawn.
func SpawnDebugUI(world *ecs.World) {
	browser := spawnWindow(world, "debugui.entity_browser", NewEntityBrowserComponent(100))
	inspector := spawnWindow(world, "debugui.component_inspector", NewComponentInspectorComponent())
	perf := spawnWindow(world, "debugui.performance_stats", NewPerformanceStatsComponent(120))
	query := spawnWindow(world, "debugui.query_debugger", NewQueryDebuggerComponent())

	attachRender(browser, func() { ecs.ReadComponent[EntityBrowserComponent](browser).Render(world) })
	attachRender(inspector, func() {
		selected := ecs.ReadComponent[EntityBrowserComponent](browser).GetSelectedEntity()
		ecs.ReadComponent[ComponentInspectorComponent](inspector).Render(world, selected)
	})
	attachRender(perf, func() { ecs.ReadComponent[PerformanceStatsComponent](perf).Render(world) })
	attachRender(query, func() { ecs.ReadComponent[QueryDebuggerComponent](query).Render(world) })
}

func spawnWindow(world *ecs.World, label string, state any) *ecs.Entity {
	e := ecs.Create(label).Add(state).Build()
	world.AddEntity(e)
	return e
}

func attachRender(e *ecs.Entity, render func()) {
	e.Insert(ImguiItem{Render: render})
}
