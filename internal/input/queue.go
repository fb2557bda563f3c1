package input

// Queue buffers events between frontend polling and the next game tick.
// It is not safe for concurrent use; frontends push from the loop goroutine.
type Queue struct {
	events []Event
}

// Push appends an event. Events with ActionNone are dropped.
func (q *Queue) Push(e Event) {
	if e.Action == ActionNone {
		return
	}
	q.events = append(q.events, e)
}

// Len returns the number of pending events.
func (q *Queue) Len() int {
	return len(q.events)
}

// Drain calls fn for every pending event in arrival order and empties the
// queue. Events pushed by fn are delivered on the next Drain.
func (q *Queue) Drain(fn func(Event)) {
	pending := q.events
	q.events = nil
	for _, e := range pending {
		fn(e)
	}
}
