package debugui

import (
	"fmt"
	"reflect"
	"sort"
	"strings"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/yaecs/ecs"
)

type QueryDebuggerCache struct {
	componentTypes map[string]reflect.Type
	typeNames      []string
	lastTick       int64
}

func NewQueryDebuggerComponent() QueryDebuggerComponent {
	return QueryDebuggerComponent{
		selectedComponentTypes: make(map[string]bool),
		cache: &QueryDebuggerCache{
			lastTick: -1,
		},
	}
}

func (qd *QueryDebuggerComponent) Render(world *ecs.World) {
	if !imgui.BeginV("Query Debugger", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	qd.rebuildCacheIfNeeded(world)

	imgui.Text("Select Component Types:")
	imgui.Separator()

	if imgui.Button("Clear All") {
		qd.selectedComponentTypes = make(map[string]bool)
	}

	for _, typeName := range qd.cache.typeNames {
		selected := qd.selectedComponentTypes[typeName]
		if imgui.Checkbox(typeName, &selected) {
			if selected {
				qd.selectedComponentTypes[typeName] = true
			} else {
				delete(qd.selectedComponentTypes, typeName)
			}
		}
	}

	imgui.Separator()

	selectedTypes := qd.SelectedTypes()
	if len(selectedTypes) == 0 {
		imgui.Text("No component types selected")
		imgui.End()
		return
	}

	matching := world.Entities().WithTypes(selectedTypes...)
	imgui.Text(fmt.Sprintf("Matching Entities: %d", len(matching)))

	if imgui.TreeNodeStr("Entity Details") {
		const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
		if imgui.BeginTableV("QueryEntityTable", 3, tableFlags, imgui.NewVec2(0, 0), 0) {
			imgui.TableSetupColumn("Entity ID")
			imgui.TableSetupColumn("Label")
			imgui.TableSetupColumn("All Components")
			imgui.TableHeadersRow()

			for _, e := range matching {
				imgui.TableNextRow()

				imgui.TableSetColumnIndex(0)
				imgui.Text(fmt.Sprintf("%d", e.Id()))

				imgui.TableSetColumnIndex(1)
				imgui.Text(e.Label())

				imgui.TableSetColumnIndex(2)
				types := e.Components.Types()
				componentNames := make([]string, len(types))
				for i, t := range types {
					componentNames[i] = t.String()
				}
				imgui.Text(strings.Join(componentNames, ", "))
			}

			imgui.EndTable()
		}
		imgui.TreePop()
	}

	imgui.End()
}

// SelectedTypes returns the checked component types, sorted by name.
func (qd *QueryDebuggerComponent) SelectedTypes() []reflect.Type {
	names := make([]string, 0, len(qd.selectedComponentTypes))
	for typeName := range qd.selectedComponentTypes {
		if _, ok := qd.cache.componentTypes[typeName]; ok {
			names = append(names, typeName)
		}
	}
	sort.Strings(names)

	types := make([]reflect.Type, len(names))
	for i, name := range names {
		types[i] = qd.cache.componentTypes[name]
	}
	return types
}

func (qd *QueryDebuggerComponent) rebuildCacheIfNeeded(world *ecs.World) {
	if qd.cache.componentTypes != nil && qd.cache.lastTick == world.Ticks() {
		return
	}
	qd.rebuildCache(world)
	qd.cache.lastTick = world.Ticks()
}

func (qd *QueryDebuggerComponent) rebuildCache(world *ecs.World) {
	qd.cache.componentTypes = make(map[string]reflect.Type)

	for _, e := range world.Entities().All() {
		for _, t := range e.Components.Types() {
			qd.cache.componentTypes[t.String()] = t
		}
	}

	qd.cache.typeNames = make([]string, 0, len(qd.cache.componentTypes))
	for typeName := range qd.cache.componentTypes {
		qd.cache.typeNames = append(qd.cache.typeNames, typeName)
	}

	sort.Strings(qd.cache.typeNames)
}
