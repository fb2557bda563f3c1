// Package debugui draws a Dear ImGui overlay on top of the window frontend.
// Each overlay window is a Panel entity in the overlay's own ECS world; the
// PanelSystem defers their render functions so they run after every system,
// between the backend's BeginFrame and EndFrame.
package debugui

import (
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/skyraid/ecs"
)

// Panel is a component that holds a Dear ImGui render function.
type Panel struct {
	Title  string
	Render func()
}

// InputState records whether ImGui wants the keyboard or mouse this frame.
type InputState struct {
	WantCaptureMouse    bool
	WantCaptureKeyboard bool
}

// PanelSystem updates InputState and queues every panel's render function.
type PanelSystem struct {
	Panels     ecs.Query[struct{ *Panel }]
	InputState ecs.Singleton[InputState]
}

func (p *PanelSystem) Execute(frame *ecs.UpdateFrame) {
	io := imgui.CurrentIO()
	state := p.InputState.Get()
	state.WantCaptureMouse = io.WantCaptureMouse()
	state.WantCaptureKeyboard = io.WantCaptureKeyboard()

	for item := range p.Panels.Values() {
		frame.Commands.Defer(item.Panel.Render)
	}
}
