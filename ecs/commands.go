package ecs

import "reflect"

// Commands buffers structural changes requested by systems during a tick.
// The World keeps a Commands value in its globals and flushes it once every
// system has run, so the entity views handed to systems never change shape
// mid-tick.
type Commands struct {
	spawns  []*Entity
	removes []EntityId
	inserts []insertCommand
	strips  []stripCommand
	defers  []func()
}

type insertCommand struct {
	entity    EntityId
	component any
}

type stripCommand struct {
	entity   EntityId
	compType reflect.Type
}

// Spawn queues an entity to be added to the world. The flush panics if the
// entity is still part of a collection.
func (c *Commands) Spawn(e *Entity) {
	c.spawns = append(c.spawns, e)
}

// Remove queues removal of the entity with the given id.
func (c *Commands) Remove(id EntityId) {
	c.removes = append(c.removes, id)
}

// InsertComponent queues inserting component on an existing entity.
func (c *Commands) InsertComponent(id EntityId, component any) {
	c.inserts = append(c.inserts, insertCommand{entity: id, component: component})
}

// RemoveComponent queues removing the component of compType from an entity.
func (c *Commands) RemoveComponent(id EntityId, compType reflect.Type) {
	c.strips = append(c.strips, stripCommand{entity: id, compType: compType})
}

// Defer queues a function to run after the tick.
func (c *Commands) Defer(fn func()) {
	c.defers = append(c.defers, fn)
}

// Pending returns the number of queued operations.
func (c *Commands) Pending() int {
	return len(c.spawns) + len(c.removes) + len(c.inserts) + len(c.strips) + len(c.defers)
}

// flush applies queued operations to entities and resets the buffer.
// Removals run first; component edits addressed to a removed entity are dropped.
func (c *Commands) flush(entities *Entities) {
	removed := make(map[EntityId]bool, len(c.removes))
	for _, id := range c.removes {
		entities.RemoveEntity(id)
		removed[id] = true
	}

	for _, cmd := range c.strips {
		if removed[cmd.entity] {
			continue
		}
		if e, ok := entities.Lookup(cmd.entity); ok {
			e.Components.RemoveType(cmd.compType)
		}
	}

	for _, cmd := range c.inserts {
		if removed[cmd.entity] {
			continue
		}
		if e, ok := entities.Lookup(cmd.entity); ok {
			e.Insert(cmd.component)
		}
	}

	for _, e := range c.spawns {
		entities.Push(e)
	}

	// Deferred functions may queue further commands; those wait for the next flush.
	defers := c.defers
	c.spawns = c.spawns[:0]
	c.removes = c.removes[:0]
	c.inserts = c.inserts[:0]
	c.strips = c.strips[:0]
	c.defers = nil

	for _, fn := range defers {
		fn()
	}
}
