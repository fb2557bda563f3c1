package ecs

import (
	"slices"

	"github.com/kamstrup/intmap"
)

// componentColumn is the type-erased view of a column used by Storage.
type componentColumn interface {
	insert(id EntityId, item any) bool
	remove(id EntityId) bool
	lookup(id EntityId) any
	idAt(i int) EntityId
	len() int
}

// column stores every component of one type densely, in spawn order.
// Removal shifts the tail down so iteration order always matches the order
// in which the components were inserted. Pointers handed out by lookup stay
// valid until the next insert or remove on the same column.
type column[T any] struct {
	ids   []EntityId
	items []T
	index *intmap.Map[EntityId, int]
}

func newColumn[T any]() *column[T] {
	return &column[T]{
		index: intmap.New[EntityId, int](64),
	}
}

func (c *column[T]) insert(id EntityId, item any) bool {
	var value T
	switch v := item.(type) {
	case *T:
		value = *v
	case T:
		value = v
	default:
		return false
	}

	if _, ok := c.index.Get(id); ok {
		return false
	}

	c.index.Put(id, len(c.items))
	c.ids = append(c.ids, id)
	c.items = append(c.items, value)
	return true
}

func (c *column[T]) remove(id EntityId) bool {
	pos, ok := c.index.Get(id)
	if !ok {
		return false
	}

	c.index.Del(id)
	c.ids = slices.Delete(c.ids, pos, pos+1)
	c.items = slices.Delete(c.items, pos, pos+1)

	for i := pos; i < len(c.ids); i++ {
		c.index.Put(c.ids[i], i)
	}
	return true
}

func (c *column[T]) lookup(id EntityId) any {
	ptr := c.get(id)
	if ptr == nil {
		return nil
	}
	return ptr
}

func (c *column[T]) get(id EntityId) *T {
	pos, ok := c.index.Get(id)
	if !ok {
		return nil
	}
	return &c.items[pos]
}

func (c *column[T]) idAt(i int) EntityId {
	return c.ids[i]
}

func (c *column[T]) len() int {
	return len(c.ids)
}
