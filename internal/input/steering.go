package input

// Steering reduces key events to a single active Direction.
//
// The most recent movement press always wins. Releasing the key of the active
// direction stops the airplane, even if another movement key is still held;
// releasing any other key changes nothing. Only one direction can be active,
// so diagonal movement is not possible.
type Steering struct {
	direction Direction
}

// Direction returns the active direction.
func (s *Steering) Direction() Direction {
	return s.direction
}

// Apply feeds one event to the state machine and reports whether it was a
// fire key press.
func (s *Steering) Apply(e Event) (fire bool) {
	if e.Action == ActionFire {
		return e.Pressed
	}

	dir, ok := e.Action.Direction()
	if !ok {
		return false
	}

	switch {
	case e.Pressed:
		s.direction = dir
	case s.direction == dir:
		s.direction = DirectionNone
	}
	return false
}

// Reset clears the active direction.
func (s *Steering) Reset() {
	s.direction = DirectionNone
}
