// Package game holds the airplane shooter's world: its components, the
// systems that advance them once per tick, and the display list the
// frontends draw.
package game

import (
	"github.com/plus3/skyraid/ecs"
	"github.com/plus3/skyraid/internal/input"
)

// Config holds the gameplay constants. DefaultConfig matches the shipped game.
type Config struct {
	Bounds Bounds
	TPS    int

	AirplaneStart Vec2
	AirplaneSpeed float64

	BackgroundStart Vec2
	BackgroundSpeed float64
	Scroll          ScrollMode

	ProjectileSpeed float64
}

// DefaultConfig returns the configuration of the shipped game.
func DefaultConfig() Config {
	return Config{
		Bounds:          Bounds{Width: 600, Height: 600},
		TPS:             60,
		AirplaneStart:   Vec2{X: 300, Y: 300},
		AirplaneSpeed:   3,
		BackgroundStart: Vec2{X: 300, Y: 300},
		BackgroundSpeed: 2,
		Scroll:          ScrollLegacy,
		ProjectileSpeed: 25,
	}
}

// Sizes are the dimensions of each sprite, taken from their images.
type Sizes struct {
	Airplane   Vec2
	Background Vec2
	Projectile Vec2
}

// Option configures a Game.
type Option func(*options)

type options struct {
	fire Player
}

// WithFireSound plays p every time a projectile is fired.
func WithFireSound(p Player) Option {
	return func(o *options) {
		o.fire = p
	}
}

// Drawable is one entry of the display list. Pos is the center in world
// coordinates. Tiled sprites repeat horizontally across the playfield.
type Drawable struct {
	Kind  SpriteKind
	Body  Body
	Tiled bool
}

// Stats is a snapshot of the running game.
type Stats struct {
	Tick        uint64
	Direction   input.Direction
	Projectiles int
	Fired       uint64
	Removed     uint64
	Entities    int
	Scheduler   *ecs.SchedulerStats
}

// Game owns the world and runs it one tick at a time. It is not safe for
// concurrent use.
type Game struct {
	cfg       Config
	storage   *ecs.Storage
	scheduler *ecs.Scheduler

	queue    *ecs.Singleton[input.Queue]
	steering *ecs.Singleton[input.Steering]
	session  *ecs.Singleton[Session]

	airplane   ecs.EntityId
	background ecs.EntityId

	projectiles *ecs.Query[struct {
		*Projectile
		*Body
	}]
	sprites *ecs.Query[struct {
		*Sprite
		*Body
		Background *Background `ecs:"optional"`
	}]
}

// New sets the world up: the background is spawned before the airplane so
// the scene layer draws it first.
func New(cfg Config, sizes Sizes, opts ...Option) *Game {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	registry := ecs.NewComponentRegistry()
	ecs.RegisterComponent[Airplane](registry)
	ecs.RegisterComponent[Background](registry)
	ecs.RegisterComponent[Projectile](registry)
	ecs.RegisterComponent[Body](registry)
	ecs.RegisterComponent[Mover](registry)
	ecs.RegisterComponent[Sprite](registry)

	storage := ecs.NewStorage(registry)

	ecs.NewSingleton[Bounds](storage, cfg.Bounds)
	ecs.NewSingleton[Arsenal](storage, Arsenal{
		Size:  sizes.Projectile,
		Speed: cfg.ProjectileSpeed,
	})
	ecs.NewSingleton[Effects](storage, Effects{Fire: o.fire})

	g := &Game{
		cfg:      cfg,
		storage:  storage,
		queue:    ecs.NewSingleton[input.Queue](storage),
		steering: ecs.NewSingleton[input.Steering](storage),
		session:  ecs.NewSingleton[Session](storage),
	}

	g.background = storage.Spawn(
		Background{Start: cfg.BackgroundStart, Mode: cfg.Scroll},
		Body{Pos: cfg.BackgroundStart, Size: sizes.Background},
		Mover{Speed: cfg.BackgroundSpeed},
		Sprite{Kind: SpriteBackground, Layer: LayerScene},
	)
	g.airplane = storage.Spawn(
		Airplane{},
		Body{Pos: cfg.AirplaneStart, Size: sizes.Airplane},
		Mover{Speed: cfg.AirplaneSpeed},
		Sprite{Kind: SpriteAirplane, Layer: LayerScene},
	)

	g.scheduler = ecs.NewScheduler(storage)
	g.scheduler.Register(&InputSystem{})
	g.scheduler.Register(&AirplaneSystem{})
	g.scheduler.Register(&BackgroundSystem{})
	g.scheduler.Register(&ProjectileSystem{})

	g.projectiles = ecs.NewQuery[struct {
		*Projectile
		*Body
	}](storage)
	g.sprites = ecs.NewQuery[struct {
		*Sprite
		*Body
		Background *Background `ecs:"optional"`
	}](storage)

	return g
}

// Config returns the configuration the game was built with.
func (g *Game) Config() Config {
	return g.cfg
}

// Push queues an input event for the next tick.
func (g *Game) Push(e input.Event) {
	g.queue.Get().Push(e)
}

// Halt stops the airplane and drops any queued input. Frontends call it when
// they stop receiving key events, such as when the window loses focus.
func (g *Game) Halt() {
	g.queue.Get().Drain(func(input.Event) {})
	g.steering.Get().Reset()
}

// Tick applies queued input and advances every entity by one step.
func (g *Game) Tick() {
	dt := 0.0
	if g.cfg.TPS > 0 {
		dt = 1 / float64(g.cfg.TPS)
	}
	g.scheduler.Once(dt)
}

// Direction returns the airplane's current steering direction.
func (g *Game) Direction() input.Direction {
	return g.steering.Get().Direction()
}

// Airplane returns the airplane's body.
func (g *Game) Airplane() Body {
	return *ecs.ReadComponent[Body](g.storage, g.airplane)
}

// Background returns the background's body.
func (g *Game) Background() Body {
	return *ecs.ReadComponent[Body](g.storage, g.background)
}

// Projectiles returns the live projectiles, oldest first.
func (g *Game) Projectiles() []Body {
	out := make([]Body, 0, ecs.Count[Projectile](g.storage))
	for item := range g.projectiles.Values() {
		out = append(out, *item.Body)
	}
	return out
}

// DisplayList returns everything to draw, back to front: the scene layer
// (background, then airplane) followed by the projectiles in firing order.
func (g *Game) DisplayList() []Drawable {
	out := make([]Drawable, 0, ecs.Count[Sprite](g.storage))
	for _, layer := range []Layer{LayerScene, LayerProjectiles} {
		for item := range g.sprites.Values() {
			if item.Sprite.Layer != layer {
				continue
			}
			out = append(out, Drawable{
				Kind:  item.Sprite.Kind,
				Body:  *item.Body,
				Tiled: item.Background != nil && item.Background.Mode == ScrollModulo,
			})
		}
	}
	return out
}

// Stats returns a snapshot of counters and scheduler timings.
func (g *Game) Stats() Stats {
	session := g.session.Get()
	return Stats{
		Tick:        g.scheduler.Ticks(),
		Direction:   g.Direction(),
		Projectiles: ecs.Count[Projectile](g.storage),
		Fired:       session.Fired,
		Removed:     session.Removed,
		Entities:    g.storage.Len(),
		Scheduler:   g.scheduler.GetStats(),
	}
}

// Storage exposes the underlying world, for debugging tools.
func (g *Game) Storage() *ecs.Storage {
	return g.storage
}
