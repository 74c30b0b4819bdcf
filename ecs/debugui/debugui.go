// Package debugui provides immediate-mode GUI integration for ECS applications using Dear ImGui.
// It renders ImGui widgets through ECS components and systems.
package debugui

import (
	"reflect"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/yaecs/ecs"
)

// ImguiItem is a component that holds a Dear ImGui render function.
// Attach this to entities that should render ImGui widgets each frame.
type ImguiItem struct {
	Render func()
}

// ImguiInputState tracks Dear ImGui's input capture state as a world global.
// Use this to determine if ImGui is consuming mouse or keyboard input.
type ImguiInputState struct {
	WantCaptureMouse    bool
	WantCaptureKeyboard bool
}

// ImguiSystem defers the render function of every ImguiItem until the end of
// the tick and refreshes the ImguiInputState global.
type ImguiSystem struct{}

func (i *ImguiSystem) OperatesOn() []reflect.Type {
	return []reflect.Type{reflect.TypeFor[ImguiItem]()}
}

// Process updates input state and queues all ImGui render functions for execution.
func (i *ImguiSystem) Process(entities []*ecs.Entity, globals *ecs.Store) {
	state := ecs.GetMut[ImguiInputState](globals)
	if state == nil {
		ecs.Insert(globals, ImguiInputState{})
		state = ecs.GetMut[ImguiInputState](globals)
	}
	state.WantCaptureMouse = imgui.CurrentIO().WantCaptureMouse()
	state.WantCaptureKeyboard = imgui.CurrentIO().WantCaptureKeyboard()

	cmds := ecs.GetMut[ecs.Commands](globals)
	for _, e := range entities {
		if item := ecs.ReadComponent[ImguiItem](e); item.Render != nil {
			cmds.Defer(item.Render)
		}
	}
}
