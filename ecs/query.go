package ecs

import (
	"iter"
	"reflect"
)

// Query iterates the entities that carry a combination of components.
// The type T must be a struct whose fields are pointers to component types.
// Embedded fields are always required; named fields can be marked optional
// with the `ecs:"optional"` struct tag and are left nil when absent.
//
// Iteration follows the spawn order of the first field's component, so a
// query led by a component that is only ever spawned together with the
// others visits entities oldest first.
type Query[T any] struct {
	storage  *Storage
	types    []reflect.Type
	optional []bool
}

// NewQuery creates a Query bound to the storage.
func NewQuery[T any](storage *Storage) *Query[T] {
	q := &Query[T]{}
	q.Init(storage)
	return q
}

// Init initializes or re-initializes the Query with a storage.
// Called by the Scheduler during system registration.
func (q *Query[T]) Init(storage *Storage) {
	structType := reflect.TypeFor[T]()
	if structType.Kind() != reflect.Struct {
		panic("Query type parameter must be a struct")
	}
	if structType.NumField() == 0 {
		panic("Query struct must have at least one field")
	}

	q.storage = storage
	q.types = make([]reflect.Type, 0, structType.NumField())
	q.optional = make([]bool, 0, structType.NumField())

	for i := 0; i < structType.NumField(); i++ {
		field := structType.Field(i)
		if field.Type.Kind() != reflect.Ptr {
			panic("Query struct fields must be pointer types")
		}

		isOptional := false
		if !field.Anonymous {
			switch tag := field.Tag.Get("ecs"); tag {
			case "":
			case "optional":
				isOptional = true
			default:
				panic("invalid ecs tag value: \"" + tag + "\" (only \"optional\" is supported)")
			}
		}
		if i == 0 && isOptional {
			panic("the first Query field cannot be optional")
		}

		q.types = append(q.types, field.Type.Elem())
		q.optional = append(q.optional, isOptional)
	}
}

// Iter returns an iterator over entity IDs and component data.
// Structural changes made while iterating should go through Commands.
func (q *Query[T]) Iter() iter.Seq2[EntityId, T] {
	return func(yield func(EntityId, T) bool) {
		driver, ok := q.storage.columns[q.types[0]]
		if !ok {
			return
		}

		var result T
		value := reflect.ValueOf(&result).Elem()

		for i := 0; i < driver.len(); i++ {
			id := driver.idAt(i)
			if !q.fill(id, value) {
				continue
			}
			if !yield(id, result) {
				return
			}
		}
	}
}

// Values returns an iterator over component data only.
func (q *Query[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, item := range q.Iter() {
			if !yield(item) {
				return
			}
		}
	}
}

// Get fills a result for a single entity. It reports false if the entity is
// missing a required component.
func (q *Query[T]) Get(id EntityId) (T, bool) {
	var result T
	ok := q.fill(id, reflect.ValueOf(&result).Elem())
	return result, ok
}

// Len counts the entities currently matched by the query.
func (q *Query[T]) Len() int {
	n := 0
	for range q.Iter() {
		n++
	}
	return n
}

func (q *Query[T]) fill(id EntityId, value reflect.Value) bool {
	for i, typ := range q.types {
		comp := q.storage.GetComponent(id, typ)
		if comp == nil {
			if !q.optional[i] {
				return false
			}
			value.Field(i).SetZero()
			continue
		}
		value.Field(i).Set(reflect.ValueOf(comp))
	}
	return true
}
