package ecs

import (
	"reflect"
	"slices"
	"strings"

	"github.com/kamstrup/intmap"
)

// Storage is the main ECS storage interface
type Storage struct {
	registry   *ComponentRegistry
	columns    map[reflect.Type]componentColumn
	entities   *intmap.Map[EntityId, int]
	singletons map[reflect.Type]any
	lastId     EntityId
}

// NewStorage creates a new ECS storage system with the given component registry
func NewStorage(registry *ComponentRegistry) *Storage {
	return &Storage{
		registry:   registry,
		columns:    make(map[reflect.Type]componentColumn),
		entities:   intmap.New[EntityId, int](256),
		singletons: make(map[reflect.Type]any),
	}
}

// Spawn creates a new entity with the provided components.
// Components may be passed by value or by pointer; the value is copied.
func (s *Storage) Spawn(components ...any) EntityId {
	if len(components) == 0 {
		panic("cannot spawn entity without components")
	}

	s.lastId++
	id := s.lastId

	for _, comp := range components {
		compType := componentType(comp)
		if !s.column(compType).insert(id, comp) {
			panic("duplicate component " + compType.String() + " in spawn")
		}
	}

	s.entities.Put(id, len(components))
	return id
}

// Delete removes all data related to the entity ID.
// It reports whether the entity was alive.
func (s *Storage) Delete(id EntityId) bool {
	if _, ok := s.entities.Get(id); !ok {
		return false
	}

	for _, col := range s.columns {
		col.remove(id)
	}
	s.entities.Del(id)
	return true
}

// Alive reports whether the entity has been spawned and not yet deleted.
func (s *Storage) Alive(id EntityId) bool {
	_, ok := s.entities.Get(id)
	return ok
}

// Len returns the number of live entities.
func (s *Storage) Len() int {
	return s.entities.Len()
}

// GetComponent returns a pointer to the component for the given entity ID and
// component type, or nil if the entity does not have it.
func (s *Storage) GetComponent(id EntityId, compType reflect.Type) any {
	col, ok := s.columns[compType]
	if !ok {
		return nil
	}
	return col.lookup(id)
}

// HasComponent checks if an entity has a specific component type
func (s *Storage) HasComponent(id EntityId, compType reflect.Type) bool {
	return s.GetComponent(id, compType) != nil
}

// column returns the column for the component type, creating it on first use.
func (s *Storage) column(compType reflect.Type) componentColumn {
	col, ok := s.columns[compType]
	if ok {
		return col
	}

	factory := s.registry.getFactory(compType)
	if factory == nil {
		panic("component type " + compType.String() + " not registered")
	}

	col = factory()
	s.columns[compType] = col
	return col
}

// AddSingleton stores a value that is not attached to any entity. Adding a
// second value of the same type replaces the first.
func (s *Storage) AddSingleton(value any) {
	typ := reflect.TypeOf(value)
	if typ.Kind() == reflect.Ptr {
		s.singletons[typ.Elem()] = value
		return
	}

	ptr := reflect.New(typ)
	ptr.Elem().Set(reflect.ValueOf(value))
	s.singletons[typ] = ptr.Interface()
}

// ReadSingleton fills out, which must be a **T, with the singleton of type T.
// It reports whether the singleton exists.
func (s *Storage) ReadSingleton(out any) bool {
	rv := reflect.ValueOf(out)
	if rv.Kind() != reflect.Ptr || rv.Elem().Kind() != reflect.Ptr {
		panic("ReadSingleton requires a pointer to a pointer")
	}

	value, ok := s.singletons[rv.Elem().Type().Elem()]
	if !ok {
		return false
	}

	rv.Elem().Set(reflect.ValueOf(value))
	return true
}

func (s *Storage) getSingleton(typ reflect.Type) any {
	return s.singletons[typ]
}

// StorageStats summarizes the content of a Storage.
type StorageStats struct {
	EntityCount    int
	Columns        []ColumnStats
	SingletonTypes []string
}

// ColumnStats reports how many entities carry one component type.
type ColumnStats struct {
	Type  string
	Count int
}

// CollectStats gathers a snapshot of entity and component counts, sorted by
// component type name.
func (s *Storage) CollectStats() StorageStats {
	stats := StorageStats{
		EntityCount: s.entities.Len(),
		Columns:     make([]ColumnStats, 0, len(s.columns)),
	}

	for typ, col := range s.columns {
		stats.Columns = append(stats.Columns, ColumnStats{
			Type:  typ.String(),
			Count: col.len(),
		})
	}
	slices.SortFunc(stats.Columns, func(a, b ColumnStats) int {
		return strings.Compare(a.Type, b.Type)
	})

	for typ := range s.singletons {
		stats.SingletonTypes = append(stats.SingletonTypes, typ.String())
	}
	slices.Sort(stats.SingletonTypes)

	return stats
}

func componentType(comp any) reflect.Type {
	compType := reflect.TypeOf(comp)
	if compType == nil {
		panic("cannot spawn a nil component")
	}
	if compType.Kind() == reflect.Ptr {
		compType = compType.Elem()
	}
	return compType
}

type ComponentReader interface {
	GetComponent(EntityId, reflect.Type) any
}

// ReadComponent returns the entity's component of type T, or nil.
func ReadComponent[T any](reader ComponentReader, entityId EntityId) *T {
	comp, _ := reader.GetComponent(entityId, reflect.TypeFor[T]()).(*T)
	return comp
}

// Count returns the number of live entities that carry a T component.
func Count[T any](s *Storage) int {
	col, ok := s.columns[reflect.TypeFor[T]()]
	if !ok {
		return 0
	}
	return col.len()
}
