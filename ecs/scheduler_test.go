package ecs_test

import (
	"testing"

	"github.com/plus3/skyraid/ecs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type MovementSystem struct {
	Entities ecs.Query[struct {
		*Position
		*Velocity
	}]
	ExecuteCount int
}

func (s *MovementSystem) Execute(frame *ecs.UpdateFrame) {
	s.ExecuteCount++
	for _, item := range s.Entities.Iter() {
		item.Position.X += item.Velocity.DX * float32(frame.DeltaTime)
		item.Position.Y += item.Velocity.DY * float32(frame.DeltaTime)
	}
}

type HealthSystem struct {
	Entities     ecs.Query[struct{ *Health }]
	ExecuteCount int
	TotalHealth  float64
}

func (s *HealthSystem) Execute(frame *ecs.UpdateFrame) {
	s.ExecuteCount++
	s.TotalHealth = 0
	for item := range s.Entities.Values() {
		s.TotalHealth += float64(item.Health.Current)
	}
}

type tickRecorder struct {
	Ticks []uint64
	log   *[]string
	name  string
}

func (s *tickRecorder) Execute(frame *ecs.UpdateFrame) {
	s.Ticks = append(s.Ticks, frame.Tick)
	*s.log = append(*s.log, s.name)
}

func TestScheduler(t *testing.T) {
	registry := newTestRegistry()

	t.Run("system execution order and query initialization", func(t *testing.T) {
		storage := ecs.NewStorage(registry)
		scheduler := ecs.NewScheduler(storage)

		var order []string
		first := &tickRecorder{log: &order, name: "first"}
		second := &tickRecorder{log: &order, name: "second"}
		scheduler.Register(first)
		scheduler.Register(second)

		scheduler.Once(1.0)
		scheduler.Once(1.0)

		assert.Equal(t, []string{"first", "second", "first", "second"}, order)
		assert.Equal(t, []uint64{1, 2}, first.Ticks)
		assert.Equal(t, uint64(2), scheduler.Ticks())
	})

	t.Run("custom state persistence", func(t *testing.T) {
		storage := ecs.NewStorage(registry)
		scheduler := ecs.NewScheduler(storage)

		storage.Spawn(Health{Current: 50, Max: 100})
		storage.Spawn(Health{Current: 75, Max: 100})

		health := &HealthSystem{}
		scheduler.Register(health)

		scheduler.Once(1.0)
		assert.Equal(t, 125.0, health.TotalHealth)

		storage.Spawn(Health{Current: 25, Max: 100})

		scheduler.Once(1.0)
		assert.Equal(t, 150.0, health.TotalHealth)
		assert.Equal(t, 2, health.ExecuteCount)
	})

	t.Run("delta time calculation", func(t *testing.T) {
		storage := ecs.NewStorage(registry)
		scheduler := ecs.NewScheduler(storage)

		id := storage.Spawn(Position{X: 0, Y: 0}, Velocity{DX: 10, DY: 20})

		scheduler.Register(&MovementSystem{})
		scheduler.Once(0.5)

		pos := ecs.ReadComponent[Position](storage, id)
		require.NotNil(t, pos)
		assert.Equal(t, Position{X: 5, Y: 10}, *pos)
	})

	t.Run("commands integration", func(t *testing.T) {
		storage := ecs.NewStorage(registry)
		scheduler := ecs.NewScheduler(storage)

		storage.Spawn(Position{}, Velocity{DX: 1}, Health{Current: 0, Max: 1})
		storage.Spawn(Position{}, Velocity{DX: 1}, Health{Current: 1, Max: 1})

		scheduler.Register(&testReaperSystem{})
		movement := &MovementSystem{}
		scheduler.Register(movement)

		assert.Equal(t, 2, countMatches(movement))
		scheduler.Once(1.0)
		assert.Equal(t, 1, countMatches(movement), "deletes land when the frame is flushed")
		assert.Equal(t, 1, storage.Len())
	})

	t.Run("stats", func(t *testing.T) {
		storage := ecs.NewStorage(registry)
		scheduler := ecs.NewScheduler(storage)
		scheduler.Register(&HealthSystem{})

		before := scheduler.GetStats()
		assert.Equal(t, int64(0), before.Systems[0].ExecutionCount)
		assert.Equal(t, "HealthSystem", before.Systems[0].Name)

		for range 3 {
			scheduler.Once(1.0 / 60.0)
		}

		stats := scheduler.GetStats()
		assert.Equal(t, uint64(3), stats.Ticks)
		assert.Equal(t, 1, stats.SystemCount)
		assert.Equal(t, int64(3), stats.TotalExecutions)
		assert.LessOrEqual(t, stats.Systems[0].MinDuration, stats.Systems[0].MaxDuration)
	})
}

func countMatches(s *MovementSystem) int {
	return s.Entities.Len()
}
