package main

import (
	"fmt"

	"github.com/plus3/skyraid/internal/game"
	"github.com/plus3/skyraid/internal/input"
)

var turns = []input.Action{input.ActionUp, input.ActionRight, input.ActionDown, input.ActionLeft}

// Script replays a fixed input pattern: the airplane turns clockwise every
// TurnEvery ticks and fires every FireEvery ticks. Zero disables either.
type Script struct {
	TurnEvery int
	FireEvery int

	tick    int
	current input.Action
}

// Next returns the events to push before tick number s.tick.
func (s *Script) Next() []input.Event {
	defer func() { s.tick++ }()

	var out []input.Event
	if s.TurnEvery > 0 && s.tick%s.TurnEvery == 0 {
		next := turns[(s.tick/s.TurnEvery)%len(turns)]
		if s.current != input.ActionNone {
			out = append(out, input.Release(s.current))
		}
		out = append(out, input.Press(next))
		s.current = next
	}
	if s.FireEvery > 0 && s.tick%s.FireEvery == 0 {
		out = append(out, input.Press(input.ActionFire), input.Release(input.ActionFire))
	}
	return out
}

// Violation is a broken world invariant seen after a tick.
type Violation struct {
	Tick    uint64
	Message string
}

// Check inspects the world after a tick.
func Check(g *game.Game) []Violation {
	var out []Violation
	stats := g.Stats()
	bounds := g.Config().Bounds

	report := func(format string, args ...any) {
		out = append(out, Violation{Tick: stats.Tick, Message: fmt.Sprintf(format, args...)})
	}

	a := g.Airplane()
	if a.Left() < 0 || a.Right() > bounds.Width || a.Bottom() < 0 || a.Top() > bounds.Height {
		report("airplane out of bounds at (%.1f, %.1f)", a.Pos.X, a.Pos.Y)
	}

	projectiles := g.Projectiles()
	for _, p := range projectiles {
		if p.Left() > bounds.Width {
			report("offscreen projectile still live at x=%.1f", p.Pos.X)
		}
	}

	if live := uint64(len(projectiles)); stats.Fired-stats.Removed != live {
		report("fired %d - removed %d != live %d", stats.Fired, stats.Removed, live)
	}

	if want := len(projectiles) + 2; stats.Entities != want {
		report("entity count %d, want %d", stats.Entities, want)
	}
	return out
}
