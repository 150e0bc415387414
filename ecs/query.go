package ecs

import (
	"iter"
	"reflect"
	"unsafe"
)

// Query iterates every entity holding a set of components. T is a struct
// whose fields are pointers to component types; embedded fields are always
// required and named fields tagged `ecs:"optional"` may be nil.
//
// Results are cached by Execute, which the scheduler calls before each
// system that owns the query runs.
type Query[T any] struct {
	storage     *Storage
	types       []reflect.Type
	optional    []bool
	fieldOffset []uintptr

	archetypes     []*Archetype
	archetypeCount int

	entities   []EntityId
	components []T
	valid      bool
}

func NewQuery[T any](storage *Storage) *Query[T] {
	q := &Query[T]{}
	q.Init(storage)
	return q
}

// Init binds the query to storage and parses T. The scheduler calls it for
// Query fields of registered systems.
func (q *Query[T]) Init(storage *Storage) {
	structType := reflect.TypeFor[T]()
	if structType.Kind() != reflect.Struct {
		panic("Query type parameter must be a struct")
	}

	q.storage = storage
	q.types = q.types[:0]
	q.optional = q.optional[:0]
	q.fieldOffset = q.fieldOffset[:0]
	for i := 0; i < structType.NumField(); i++ {
		field := structType.Field(i)
		if field.Type.Kind() != reflect.Ptr {
			panic("Query struct fields must be pointer types")
		}

		optional := false
		if tag := field.Tag.Get("ecs"); tag != "" && !field.Anonymous {
			if tag != "optional" {
				panic("invalid ecs tag value: \"" + tag + "\" (only \"optional\" is supported)")
			}
			optional = true
		}

		q.types = append(q.types, field.Type.Elem())
		q.optional = append(q.optional, optional)
		q.fieldOffset = append(q.fieldOffset, field.Offset)
	}

	q.archetypes = nil
	q.archetypeCount = -1
	q.valid = false
}

func (q *Query[T]) matches(archetype *Archetype) bool {
	for i, t := range q.types {
		if !q.optional[i] && !archetype.HasComponent(t) {
			return false
		}
	}
	return true
}

func (q *Query[T]) refreshArchetypes() {
	if n := q.storage.archetypes.Len(); n != q.archetypeCount {
		q.archetypeCount = n
		q.archetypes = q.archetypes[:0]
		for _, archetype := range q.storage.Archetypes() {
			if q.matches(archetype) {
				q.archetypes = append(q.archetypes, archetype)
			}
		}
	}
}

// Execute rebuilds the cached results from the current storage contents.
func (q *Query[T]) Execute() {
	q.refreshArchetypes()

	clear(q.components)
	q.entities = q.entities[:0]
	q.components = q.components[:0]

	for _, archetype := range q.archetypes {
		columns := make([]column, len(q.types))
		for i, t := range q.types {
			if idx := archetype.columnIndex(t); idx >= 0 {
				columns[i] = archetype.columns[idx]
			}
		}

		for id := range archetype.Iter() {
			var result T
			base := unsafe.Pointer(&result)
			for i, c := range columns {
				var ptr unsafe.Pointer
				if c != nil {
					ptr = c.pointer(int(id.Index()))
				}
				*(*unsafe.Pointer)(unsafe.Add(base, q.fieldOffset[i])) = ptr
			}
			q.entities = append(q.entities, id)
			q.components = append(q.components, result)
		}
	}

	q.valid = true
}

// Iter yields the cached entity ids and component pointers. It panics when
// Execute has never run.
func (q *Query[T]) Iter() iter.Seq2[EntityId, T] {
	if !q.valid {
		panic("Query.Iter() called before Query.Execute()")
	}

	return func(yield func(EntityId, T) bool) {
		for i := range q.entities {
			if !yield(q.entities[i], q.components[i]) {
				return
			}
		}
	}
}

// Values is Iter without the entity ids.
func (q *Query[T]) Values() iter.Seq[T] {
	if !q.valid {
		panic("Query.Values() called before Query.Execute()")
	}

	return func(yield func(T) bool) {
		for i := range q.components {
			if !yield(q.components[i]) {
				return
			}
		}
	}
}

// Len returns the number of cached results.
func (q *Query[T]) Len() int {
	return len(q.entities)
}
