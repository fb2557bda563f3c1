package ecs_test

import (
	"testing"

	"github.com/plus3/skyraid/ecs"
	"github.com/stretchr/testify/assert"
)

// testReaperSystem deletes every entity whose health has run out.
type testReaperSystem struct {
	Entities ecs.Query[struct{ *Health }]
	executed bool
}

func (s *testReaperSystem) Execute(frame *ecs.UpdateFrame) {
	s.executed = true
	for id, item := range s.Entities.Iter() {
		if item.Health.Current <= 0 {
			frame.Commands.Delete(id)
		}
	}
}

type testDeleteSystem struct {
	entityToDelete ecs.EntityId
}

func (s *testDeleteSystem) Execute(frame *ecs.UpdateFrame) {
	frame.Commands.Delete(s.entityToDelete)
}

func TestCommandsDeleteWhileIterating(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())
	scheduler := ecs.NewScheduler(storage)

	alive := storage.Spawn(Health{Current: 3, Max: 3})
	storage.Spawn(Health{Current: 0, Max: 3})
	storage.Spawn(Health{Current: -1, Max: 3})

	system := &testReaperSystem{}
	scheduler.Register(system)
	scheduler.Once(1.0)

	assert.True(t, system.executed)
	assert.Equal(t, 1, storage.Len())
	assert.True(t, storage.Alive(alive))
	assert.Equal(t, 1, ecs.Count[Health](storage))
}

func TestCommandsDelete(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())
	scheduler := ecs.NewScheduler(storage)

	keep := storage.Spawn(Position{X: 1})
	drop := storage.Spawn(Position{X: 2})

	scheduler.Register(&testDeleteSystem{entityToDelete: drop})
	scheduler.Once(1.0)

	assert.True(t, storage.Alive(keep))
	assert.False(t, storage.Alive(drop))
}

func TestCommandsDeferredUntilFlush(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())
	id := storage.Spawn(Position{})

	commands := &ecs.Commands{}
	storage.Spawn(Health{Current: 1, Max: 1})
	commands.Delete(id)

	var seen int
	commands.Defer(func() { seen = storage.Len() })

	assert.Equal(t, 2, commands.Pending())
	assert.True(t, storage.Alive(id), "nothing happens before flush")

	deleted := commands.Flush(storage)

	assert.Equal(t, 1, deleted)
	assert.False(t, storage.Alive(id))
	assert.Equal(t, 1, seen, "defers run after deletes")
	assert.Equal(t, 0, commands.Pending())
}

func TestCommandsDoubleDeleteCountsOnce(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())
	id := storage.Spawn(Position{})

	commands := &ecs.Commands{}
	commands.Delete(id)
	commands.Delete(id)

	assert.Equal(t, 1, commands.Flush(storage))
}
