// Package debugui provides immediate-mode GUI tooling for inspecting a live
// ECS world using Dear ImGui. Widgets are ordinary components; a single
// system collects them each frame and invokes their render functions.
package debugui

import (
	"reflect"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/weft/ecs"
)

// ImguiItem is a component that holds a Dear ImGui render function.
// Attach this to entities that should render ImGui widgets each frame.
type ImguiItem struct {
	Render func()
}

// NewImguiSystem returns a system that invokes every ImguiItem render
// function. Register it on the scheduler that drives the frame; the calls
// must happen between the backend's BeginFrame and EndFrame.
func NewImguiSystem() *ecs.System {
	return &ecs.System{
		Name:  "imgui",
		Query: []reflect.Type{reflect.TypeFor[ImguiItem]()},
		Run: func(_ *ecs.World, _ ecs.Entity, components []any) {
			item := components[0].(*ImguiItem)
			if item.Render != nil {
				item.Render()
			}
		},
	}
}

// WantCaptureMouse reports whether ImGui is consuming mouse input this
// frame. Game input handling should skip the mouse while this is true.
func WantCaptureMouse() bool {
	return imgui.CurrentIO().WantCaptureMouse()
}

// WantCaptureKeyboard reports whether ImGui is consuming keyboard input this
// frame.
func WantCaptureKeyboard() bool {
	return imgui.CurrentIO().WantCaptureKeyboard()
}
