package terminal

import (
	"slices"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/plus3/skyraid/internal/input"
)

// Translate maps a key event to an action. quit is set for Escape and
// Ctrl-C.
func Translate(ev *tcell.EventKey) (action input.Action, quit bool) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return input.ActionNone, true
	case tcell.KeyUp:
		return input.ActionUp, false
	case tcell.KeyDown:
		return input.ActionDown, false
	case tcell.KeyLeft:
		return input.ActionLeft, false
	case tcell.KeyRight:
		return input.ActionRight, false
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'w', 'W':
			return input.ActionUp, false
		case 's', 'S':
			return input.ActionDown, false
		case 'a', 'A':
			return input.ActionLeft, false
		case 'd', 'D':
			return input.ActionRight, false
		case ' ':
			return input.ActionFire, false
		}
	}
	return input.ActionNone, false
}

// Holds synthesizes key releases. Terminals only report key presses (and
// their auto-repeats), so a movement action counts as held until no press
// for it has been seen for the release timeout. Fire is never held: every
// fire key event is a complete tap.
type Holds struct {
	after time.Duration
	held  map[input.Action]time.Time
}

func NewHolds(releaseAfter time.Duration) *Holds {
	return &Holds{
		after: releaseAfter,
		held:  make(map[input.Action]time.Time),
	}
}

// Press records a key press at now. It returns the press event the first
// time a movement action goes down; repeats while held only extend the hold.
func (h *Holds) Press(a input.Action, now time.Time) []input.Event {
	switch a {
	case input.ActionNone:
		return nil
	case input.ActionFire:
		return []input.Event{input.Press(a), input.Release(a)}
	}

	_, held := h.held[a]
	h.held[a] = now
	if held {
		return nil
	}
	return []input.Event{input.Press(a)}
}

// Expire releases every action whose last press is at least the timeout
// old, in action order.
func (h *Holds) Expire(now time.Time) []input.Event {
	var expired []input.Action
	for a, last := range h.held {
		if now.Sub(last) >= h.after {
			expired = append(expired, a)
		}
	}
	slices.Sort(expired)

	out := make([]input.Event, 0, len(expired))
	for _, a := range expired {
		delete(h.held, a)
		out = append(out, input.Release(a))
	}
	return out
}

func (h *Holds) down(a input.Action) bool {
	_, ok := h.held[a]
	return ok
}
