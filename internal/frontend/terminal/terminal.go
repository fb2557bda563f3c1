// Package terminal runs the game inside a terminal through tcell.
//
// One goroutine blocks on PollEvent and forwards events to the loop
// goroutine, which owns the game and ticks it at the configured rate.
package terminal

import (
	"context"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/plus3/skyraid/internal/game"
)

// Frontend draws a game.Game on a tcell screen.
type Frontend struct {
	game   *game.Game
	screen tcell.Screen
	holds  *Holds
	now    func() time.Time
}

// New wraps an initialized screen. Run finalizes it.
func New(g *game.Game, screen tcell.Screen, releaseAfter time.Duration) *Frontend {
	return &Frontend{
		game:   g,
		screen: screen,
		holds:  NewHolds(releaseAfter),
		now:    time.Now,
	}
}

// Run ticks the game until ctx is done or the player quits.
func (f *Frontend) Run(ctx context.Context) error {
	defer f.screen.Fini()

	tps := f.game.Config().TPS
	if tps <= 0 {
		tps = 60
	}
	ticker := time.NewTicker(time.Second / time.Duration(tps))
	defer ticker.Stop()

	done := make(chan struct{})
	defer close(done)

	events := make(chan tcell.Event, 64)
	go func() {
		for {
			ev := f.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	render(f.screen, f.game)
	for {
		select {
		case <-ctx.Done():
			return nil

		case ev := <-events:
			if f.handle(ev) {
				return nil
			}

		case <-ticker.C:
			f.step()
		}
	}
}

// handle reacts to one terminal event and reports whether to quit.
func (f *Frontend) handle(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		action, quit := Translate(ev)
		if quit {
			return true
		}
		for _, e := range f.holds.Press(action, f.now()) {
			f.game.Push(e)
		}

	case *tcell.EventResize:
		f.screen.Sync()
	}
	return false
}

func (f *Frontend) step() {
	for _, e := range f.holds.Expire(f.now()) {
		f.game.Push(e)
	}
	f.game.Tick()
	render(f.screen, f.game)
}
