package window

import (
	"slices"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/plus3/skyraid/internal/input"
)

var keymap = map[ebiten.Key]input.Action{
	ebiten.KeyW:          input.ActionUp,
	ebiten.KeyArrowUp:    input.ActionUp,
	ebiten.KeyS:          input.ActionDown,
	ebiten.KeyArrowDown:  input.ActionDown,
	ebiten.KeyA:          input.ActionLeft,
	ebiten.KeyArrowLeft:  input.ActionLeft,
	ebiten.KeyD:          input.ActionRight,
	ebiten.KeyArrowRight: input.ActionRight,
	ebiten.KeySpace:      input.ActionFire,
}

// Translate maps a key to its action, or input.ActionNone.
func Translate(key ebiten.Key) input.Action {
	return keymap[key]
}

// Events converts one frame's key edges into input events. Releases come
// first so that switching keys within a frame ends on the new key.
func Events(released, pressed []ebiten.Key) []input.Event {
	var out []input.Event
	for _, k := range released {
		if a := Translate(k); a != input.ActionNone {
			out = append(out, input.Release(a))
		}
	}
	for _, k := range pressed {
		if a := Translate(k); a != input.ActionNone {
			out = append(out, input.Press(a))
		}
	}
	return out
}

func quitRequested(pressed []ebiten.Key) bool {
	return slices.Contains(pressed, ebiten.KeyEscape)
}
