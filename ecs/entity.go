package ecs

// EntityId identifies an entity for the lifetime of a Storage.
// Ids are handed out in increasing order and never reused, so comparing two
// ids also compares their spawn order. The zero id is never assigned.
type EntityId uint32

// Valid reports whether the id could refer to a spawned entity.
func (e EntityId) Valid() bool {
	return e != 0
}
