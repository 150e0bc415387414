package ecs

import (
	"iter"
	"reflect"
	"unsafe"
)

// ComponentRegistry maps component types to their column factories. Every
// type stored in a Storage must be registered first.
type ComponentRegistry struct {
	factories map[reflect.Type]func() column
}

func NewComponentRegistry() *ComponentRegistry {
	return &ComponentRegistry{
		factories: make(map[reflect.Type]func() column),
	}
}

// RegisterComponent makes T storable in storages built from r.
func RegisterComponent[T any](r *ComponentRegistry) {
	r.factories[reflect.TypeFor[T]()] = func() column {
		return &blockColumn[T]{}
	}
}

func (r *ComponentRegistry) factory(t reflect.Type) func() column {
	return r.factories[t]
}

// column is the type-erased storage for one component type of an
// archetype. Slot indices stay stable until the slot is removed.
type column interface {
	append(item any) int
	remove(index int)
	get(index int) any
	pointer(index int) unsafe.Pointer
	indices() iter.Seq[int]
	len() int
}

const blockSize = 64

// blockColumn stores components in fixed-size blocks. Blocks are held by
// pointer so component addresses survive growth.
type blockColumn[T any] struct {
	blocks    []*[blockSize]T
	filled    []*[blockSize]bool
	freeSlots []int
	nextIndex int
	count     int
}

func (c *blockColumn[T]) append(item any) int {
	var value T
	switch v := item.(type) {
	case T:
		value = v
	case *T:
		value = *v
	default:
		panic("component " + reflect.TypeOf(item).String() + " does not match column " + reflect.TypeFor[T]().String())
	}

	var index int
	if n := len(c.freeSlots); n > 0 {
		index = c.freeSlots[n-1]
		c.freeSlots = c.freeSlots[:n-1]
	} else {
		index = c.nextIndex
		c.nextIndex++
		if index/blockSize >= len(c.blocks) {
			c.blocks = append(c.blocks, new([blockSize]T))
			c.filled = append(c.filled, new([blockSize]bool))
		}
	}

	c.blocks[index/blockSize][index%blockSize] = value
	c.filled[index/blockSize][index%blockSize] = true
	c.count++
	return index
}

func (c *blockColumn[T]) has(index int) bool {
	if index < 0 || index >= c.nextIndex {
		return false
	}
	return c.filled[index/blockSize][index%blockSize]
}

func (c *blockColumn[T]) remove(index int) {
	if !c.has(index) {
		return
	}
	var zero T
	c.blocks[index/blockSize][index%blockSize] = zero
	c.filled[index/blockSize][index%blockSize] = false
	c.freeSlots = append(c.freeSlots, index)
	c.count--
}

func (c *blockColumn[T]) get(index int) any {
	if !c.has(index) {
		return nil
	}
	return &c.blocks[index/blockSize][index%blockSize]
}

func (c *blockColumn[T]) pointer(index int) unsafe.Pointer {
	if !c.has(index) {
		return nil
	}
	return unsafe.Pointer(&c.blocks[index/blockSize][index%blockSize])
}

func (c *blockColumn[T]) indices() iter.Seq[int] {
	return func(yield func(int) bool) {
		for i := 0; i < c.nextIndex; i++ {
			if c.filled[i/blockSize][i%blockSize] && !yield(i) {
				return
			}
		}
	}
}

func (c *blockColumn[T]) len() int {
	return c.count
}
