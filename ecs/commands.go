package ecs

// Commands buffers structural changes and side effects raised while
// systems iterate, so storage is never mutated under a running query.
type Commands struct {
	spawns  [][]any
	deletes []EntityId
	defers  []func()
}

func NewCommands() *Commands {
	return &Commands{}
}

// Spawn queues an entity with the given components.
func (c *Commands) Spawn(components ...any) {
	c.spawns = append(c.spawns, components)
}

// Delete queues removal of an entity.
func (c *Commands) Delete(id EntityId) {
	c.deletes = append(c.deletes, id)
}

// Defer queues fn to run when the buffer is flushed.
func (c *Commands) Defer(fn func()) {
	c.defers = append(c.defers, fn)
}

// Len returns the number of queued commands.
func (c *Commands) Len() int {
	return len(c.spawns) + len(c.deletes) + len(c.defers)
}

// Flush applies deletes, then spawns, then deferred functions, each in
// queue order, and resets the buffer. Commands queued by a deferred
// function are applied in the same flush. storage may be nil when only
// functions were deferred.
func (c *Commands) Flush(storage *Storage) {
	var d, s, f int
	for d < len(c.deletes) || s < len(c.spawns) || f < len(c.defers) {
		for ; d < len(c.deletes); d++ {
			storage.Delete(c.deletes[d])
		}
		for ; s < len(c.spawns); s++ {
			storage.Spawn(c.spawns[s]...)
		}
		for ; f < len(c.defers); f++ {
			c.defers[f]()
		}
	}

	clear(c.spawns)
	clear(c.defers)
	c.spawns = c.spawns[:0]
	c.deletes = c.deletes[:0]
	c.defers = c.defers[:0]
}
