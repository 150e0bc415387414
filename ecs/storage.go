// Package ecs stores entities as rows of components grouped by archetype,
// with cached queries, singletons and deferred structural commands.
package ecs

import (
	"fmt"
	"reflect"
	"slices"

	"github.com/kamstrup/intmap"
)

// Storage owns every archetype and singleton of one world.
type Storage struct {
	archetypes *intmap.Map[uint32, *Archetype]
	singletons *intmap.Map[uintptr, *singletonEntry]
	registry   *ComponentRegistry
}

func NewStorage(registry *ComponentRegistry) *Storage {
	return &Storage{
		archetypes: intmap.New[uint32, *Archetype](16),
		singletons: intmap.New[uintptr, *singletonEntry](8),
		registry:   registry,
	}
}

// Spawn creates an entity from one value per component type.
func (s *Storage) Spawn(components ...any) EntityId {
	if len(components) == 0 {
		panic("cannot spawn entity without components")
	}

	types := componentTypes(components)
	archetype := s.archetypeFor(types)
	return NewEntityId(archetype.id, archetype.spawn(components))
}

func (s *Storage) archetypeFor(types []reflect.Type) *Archetype {
	id := hashTypes(types)
	archetype, ok := s.archetypes.Get(id)
	if !ok {
		archetype = newArchetype(id, types, s.registry)
		s.archetypes.Put(id, archetype)
	}
	return archetype
}

// Delete removes the entity. Unknown or already deleted ids are ignored.
func (s *Storage) Delete(id EntityId) {
	if archetype, ok := s.archetypes.Get(id.ArchetypeId()); ok {
		archetype.delete(id.Index())
	}
}

// Component returns a pointer to the entity's component of type t, or nil.
func (s *Storage) Component(id EntityId, t reflect.Type) any {
	archetype, ok := s.archetypes.Get(id.ArchetypeId())
	if !ok {
		return nil
	}
	return archetype.component(id.Index(), t)
}

// Archetype returns the archetype an entity id points into, or nil.
func (s *Storage) Archetype(id EntityId) *Archetype {
	archetype, _ := s.archetypes.Get(id.ArchetypeId())
	return archetype
}

// Archetypes returns every archetype ordered by id.
func (s *Storage) Archetypes() []*Archetype {
	out := make([]*Archetype, 0, s.archetypes.Len())
	for _, archetype := range s.archetypes.All() {
		out = append(out, archetype)
	}
	slices.SortFunc(out, func(a, b *Archetype) int {
		switch {
		case a.id < b.id:
			return -1
		case a.id > b.id:
			return 1
		}
		return 0
	})
	return out
}

// Len returns the number of live entities across all archetypes.
func (s *Storage) Len() int {
	n := 0
	for _, archetype := range s.archetypes.All() {
		n += archetype.Len()
	}
	return n
}

// ReadComponent returns the entity's T component, or nil when it has none.
func ReadComponent[T any](s *Storage, id EntityId) *T {
	c, _ := s.Component(id, reflect.TypeFor[T]()).(*T)
	return c
}

func componentType(comp any) reflect.Type {
	t := reflect.TypeOf(comp)
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t
}

// componentTypes returns the sorted component types of a spawn.
func componentTypes(components []any) []reflect.Type {
	types := make([]reflect.Type, 0, len(components))
	for _, comp := range components {
		t := componentType(comp)
		switch t.Kind() {
		case reflect.Ptr, reflect.Map, reflect.Chan, reflect.Func:
			panic("components cannot be pointers, maps, channels, or functions")
		}
		if slices.Contains(types, t) {
			panic(fmt.Sprintf("duplicate component type %s", t))
		}
		types = append(types, t)
	}
	return sortTypes(types)
}

func typeKey(t reflect.Type) uintptr {
	return reflect.ValueOf(t).Pointer()
}

// hashTypes is FNV-1a over the runtime type addresses of a sorted type set.
func hashTypes(types []reflect.Type) uint32 {
	var h uint32 = 2166136261
	const prime uint32 = 16777619

	for _, t := range types {
		key := uint64(typeKey(t))
		h ^= uint32(key) ^ uint32(key>>32)
		h *= prime
	}
	return h
}
