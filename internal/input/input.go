// Package input turns key events into the airplane's steering state.
//
// Frontends translate their native key codes into Actions and push Events
// onto a Queue. The game drains the queue once per tick and feeds every event
// to a Steering state machine, which decides the single active Direction.
package input

// Direction is the airplane's current movement intent.
type Direction uint8

const (
	DirectionNone Direction = iota
	DirectionUp
	DirectionDown
	DirectionLeft
	DirectionRight
)

func (d Direction) String() string {
	switch d {
	case DirectionNone:
		return "none"
	case DirectionUp:
		return "up"
	case DirectionDown:
		return "down"
	case DirectionLeft:
		return "left"
	case DirectionRight:
		return "right"
	default:
		return "unknown"
	}
}

// Action is a frontend-independent control.
type Action uint8

const (
	ActionNone Action = iota
	ActionUp
	ActionDown
	ActionLeft
	ActionRight
	ActionFire
)

func (a Action) String() string {
	switch a {
	case ActionNone:
		return "none"
	case ActionUp:
		return "up"
	case ActionDown:
		return "down"
	case ActionLeft:
		return "left"
	case ActionRight:
		return "right"
	case ActionFire:
		return "fire"
	default:
		return "unknown"
	}
}

// Direction returns the movement direction bound to a movement action.
func (a Action) Direction() (Direction, bool) {
	switch a {
	case ActionUp:
		return DirectionUp, true
	case ActionDown:
		return DirectionDown, true
	case ActionLeft:
		return DirectionLeft, true
	case ActionRight:
		return DirectionRight, true
	default:
		return DirectionNone, false
	}
}

// Event is a key going down (Pressed) or up.
type Event struct {
	Action  Action
	Pressed bool
}

// Press returns a key-down event for the action.
func Press(a Action) Event {
	return Event{Action: a, Pressed: true}
}

// Release returns a key-up event for the action.
func Release(a Action) Event {
	return Event{Action: a}
}
