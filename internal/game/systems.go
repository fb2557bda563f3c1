package game

import (
	"github.com/plus3/skyraid/ecs"
	"github.com/plus3/skyraid/internal/input"
)

// Player plays a sound without waiting for it to finish.
type Player interface {
	Play()
}

// Effects holds the sounds triggered by gameplay.
type Effects struct {
	Fire Player
}

// Arsenal describes the projectiles spawned on fire.
type Arsenal struct {
	Size  Vec2
	Speed float64
}

// InputSystem drains the input queue into the steering state and spawns a
// projectile for every fire press. It runs first so the rest of the tick
// sees the input already applied.
type InputSystem struct {
	Airplane ecs.Query[struct {
		*Airplane
		*Body
	}]
	Queue    ecs.Singleton[input.Queue]
	Steering ecs.Singleton[input.Steering]
	Arsenal  ecs.Singleton[Arsenal]
	Effects  ecs.Singleton[Effects]
	Session  ecs.Singleton[Session]
}

func (s *InputSystem) Execute(frame *ecs.UpdateFrame) {
	steering := s.Steering.Get()

	s.Queue.Get().Drain(func(e input.Event) {
		if !steering.Apply(e) {
			return
		}

		if from, ok := s.airplanePos(); ok {
			s.fire(frame, from)
		}
	})
}

func (s *InputSystem) airplanePos() (Vec2, bool) {
	for _, plane := range s.Airplane.Iter() {
		return plane.Body.Pos, true
	}
	return Vec2{}, false
}

// fire spawns straight into storage rather than through Commands: nothing is
// iterating projectiles yet, and the new projectile must advance this tick.
func (s *InputSystem) fire(frame *ecs.UpdateFrame, from Vec2) {
	arsenal := s.Arsenal.Get()
	frame.Storage.Spawn(
		Projectile{},
		Body{Pos: ProjectileSpawn(from, arsenal.Size), Size: arsenal.Size},
		Mover{Speed: arsenal.Speed},
		Sprite{Kind: SpriteProjectile, Layer: LayerProjectiles},
	)
	s.Session.Get().Fired++

	if fx := s.Effects.Get(); fx != nil && fx.Fire != nil {
		fx.Fire.Play()
	}
}

// AirplaneSystem moves the airplane one step in the steering direction.
type AirplaneSystem struct {
	Airplane ecs.Query[struct {
		*Airplane
		*Body
		*Mover
	}]
	Steering ecs.Singleton[input.Steering]
	Bounds   ecs.Singleton[Bounds]
}

func (s *AirplaneSystem) Execute(frame *ecs.UpdateFrame) {
	dir := s.Steering.Get().Direction()
	if dir == input.DirectionNone {
		return
	}

	bounds := *s.Bounds.Get()
	for _, plane := range s.Airplane.Iter() {
		plane.Body.Pos = MoveAirplane(*plane.Body, plane.Mover.Speed, dir, bounds)
	}
}

// BackgroundSystem scrolls the background.
type BackgroundSystem struct {
	Background ecs.Query[struct {
		*Background
		*Body
		*Mover
	}]
	Bounds ecs.Singleton[Bounds]
}

func (s *BackgroundSystem) Execute(frame *ecs.UpdateFrame) {
	bounds := *s.Bounds.Get()
	for _, bg := range s.Background.Iter() {
		bg.Body.Pos = ScrollBackground(*bg.Body, *bg.Background, bg.Mover.Speed, bounds)
	}
}

// ProjectileSystem advances every projectile and removes the ones that have
// left the playfield. Removal is deferred to the end of the tick.
type ProjectileSystem struct {
	Projectiles ecs.Query[struct {
		*Projectile
		*Body
		*Mover
	}]
	Bounds  ecs.Singleton[Bounds]
	Session ecs.Singleton[Session]
}

func (s *ProjectileSystem) Execute(frame *ecs.UpdateFrame) {
	bounds := *s.Bounds.Get()
	session := s.Session.Get()

	for id, p := range s.Projectiles.Iter() {
		pos, offscreen := AdvanceProjectile(*p.Body, p.Mover.Speed, bounds)
		p.Body.Pos = pos
		if offscreen {
			frame.Commands.Delete(id)
			session.Removed++
		}
	}
}
