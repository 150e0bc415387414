package ecs

import (
	"iter"
	"reflect"
	"slices"
	"sort"
)

type byTypeName []reflect.Type

func (a byTypeName) Len() int           { return len(a) }
func (a byTypeName) Swap(i, j int)      { a[i], a[j] = a[j], a[i] }
func (a byTypeName) Less(i, j int) bool { return a[i].String() < a[j].String() }

// Archetype holds every entity with one exact set of component types, one
// column per type. Columns move in lockstep so a slot index addresses the
// same entity in each of them.
type Archetype struct {
	id      uint32
	types   []reflect.Type
	columns []column
}

func newArchetype(id uint32, types []reflect.Type, registry *ComponentRegistry) *Archetype {
	a := &Archetype{
		id:      id,
		types:   types,
		columns: make([]column, len(types)),
	}
	for i, typ := range types {
		factory := registry.factory(typ)
		if factory == nil {
			panic("component type " + typ.String() + " not registered")
		}
		a.columns[i] = factory()
	}
	return a
}

// spawn stores one component per column and returns the slot index.
func (a *Archetype) spawn(components []any) uint32 {
	slot := -1
	for _, comp := range components {
		idx := a.columnIndex(componentType(comp))
		slot = a.columns[idx].append(comp)
	}
	return uint32(slot)
}

func (a *Archetype) columnIndex(t reflect.Type) int {
	for i, typ := range a.types {
		if typ == t {
			return i
		}
	}
	return -1
}

func (a *Archetype) component(index uint32, t reflect.Type) any {
	idx := a.columnIndex(t)
	if idx < 0 {
		return nil
	}
	return a.columns[idx].get(int(index))
}

// delete frees the slot in every column. Other slots keep their indices.
func (a *Archetype) delete(index uint32) {
	for _, c := range a.columns {
		c.remove(int(index))
	}
}

func (a *Archetype) HasComponent(t reflect.Type) bool {
	return slices.Contains(a.types, t)
}

func (a *Archetype) ID() uint32 {
	return a.id
}

// Types returns the component types sorted by name.
func (a *Archetype) Types() []reflect.Type {
	return a.types
}

// Len returns the number of live entities.
func (a *Archetype) Len() int {
	if len(a.columns) == 0 {
		return 0
	}
	return a.columns[0].len()
}

// Iter yields the id of every live entity in slot order.
func (a *Archetype) Iter() iter.Seq[EntityId] {
	return func(yield func(EntityId) bool) {
		if len(a.columns) == 0 {
			return
		}
		for index := range a.columns[0].indices() {
			if !yield(NewEntityId(a.id, uint32(index))) {
				return
			}
		}
	}
}

func sortTypes(types []reflect.Type) []reflect.Type {
	sort.Sort(byTypeName(types))
	return types
}
