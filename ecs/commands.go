package ecs

// Commands provides a buffer for deferred ECS operations that are executed at the end of a frame.
// This prevents structural changes to the ECS storage during system execution.
type Commands struct {
	deletes []EntityId
	defers  []func()
}

func newCommands() *Commands {
	return &Commands{}
}

// Delete queues an entity deletion operation.
func (c *Commands) Delete(entity EntityId) {
	c.deletes = append(c.deletes, entity)
}

// Defer queues a function to run after all structural changes are applied.
func (c *Commands) Defer(fn func()) {
	c.defers = append(c.defers, fn)
}

// Pending reports the number of queued operations.
func (c *Commands) Pending() int {
	return len(c.deletes) + len(c.defers)
}

// Flush applies all deletes to the provided storage, then runs the deferred
// functions, and resets the buffer. It returns the number of entities
// actually deleted; deleting an entity twice in one frame counts once.
func (c *Commands) Flush(storage *Storage) int {
	deleted := 0
	for _, id := range c.deletes {
		if storage.Delete(id) {
			deleted++
		}
	}

	for _, fn := range c.defers {
		fn()
	}

	c.deletes = c.deletes[:0]
	clear(c.defers)
	c.defers = c.defers[:0]

	return deleted
}
