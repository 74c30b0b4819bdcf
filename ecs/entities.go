package ecs

import (
	"fmt"
	"iter"
	"reflect"
	"slices"

	"github.com/kamstrup/intmap"
)

// Entities is an ordered collection of entities.
// Removal swaps the last entity into the freed slot, so an index is only
// valid until the next removal. Ids stay valid until their entity is removed.
// The zero value is an empty collection ready to use.
type Entities struct {
	items  []*Entity
	index  *intmap.Map[EntityId, int]
	nextId EntityId
}

// NewEntities creates an empty collection.
func NewEntities() *Entities {
	return &Entities{
		index: intmap.New[EntityId, int](256),
	}
}

// Push appends an entity and returns the id assigned to it.
// An entity belongs to at most one collection at a time; pushing one that
// has not been removed from its collection panics.
func (c *Entities) Push(e *Entity) EntityId {
	if e == nil {
		panic("cannot push nil entity")
	}
	if e.id != 0 {
		panic(fmt.Sprintf("entity %q already added to a collection with id %d", e.label, e.id))
	}
	if e.Components == nil {
		e.Components = NewStore()
	}
	if c.index == nil {
		c.index = intmap.New[EntityId, int](256)
	}
	c.nextId++
	e.id = c.nextId
	c.index.Put(e.id, len(c.items))
	c.items = append(c.items, e)
	return e.id
}

// Remove swap-removes the entity at idx and returns it.
// Panics if idx is out of range.
func (c *Entities) Remove(idx int) *Entity {
	if idx < 0 || idx >= len(c.items) {
		panic(fmt.Sprintf("entity index %d out of range [0:%d]", idx, len(c.items)))
	}
	removed := c.items[idx]
	last := len(c.items) - 1
	if idx != last {
		moved := c.items[last]
		c.items[idx] = moved
		c.index.Put(moved.id, idx)
	}
	c.items[last] = nil
	c.items = c.items[:last]
	c.index.Del(removed.id)
	removed.id = 0
	return removed
}

// RemoveEntity swap-removes the entity with the given id.
func (c *Entities) RemoveEntity(id EntityId) bool {
	if c.index == nil {
		return false
	}
	idx, ok := c.index.Get(id)
	if !ok {
		return false
	}
	c.Remove(idx)
	return true
}

// Lookup returns the entity with the given id.
func (c *Entities) Lookup(id EntityId) (*Entity, bool) {
	if c.index == nil {
		return nil, false
	}
	idx, ok := c.index.Get(id)
	if !ok {
		return nil, false
	}
	return c.items[idx], true
}

// IsEmpty reports whether the collection holds no entities.
func (c *Entities) IsEmpty() bool {
	return len(c.items) == 0
}

// Len returns the number of entities.
func (c *Entities) Len() int {
	return len(c.items)
}

// At returns the entity at idx. Panics if idx is out of range.
func (c *Entities) At(idx int) *Entity {
	return c.items[idx]
}

// All iterates over the entities in storage order.
func (c *Entities) All() iter.Seq2[int, *Entity] {
	return func(yield func(int, *Entity) bool) {
		for i, e := range c.items {
			if !yield(i, e) {
				return
			}
		}
	}
}

// Slice returns the entities in storage order.
func (c *Entities) Slice() []*Entity {
	return slices.Clone(c.items)
}

// WithLabel returns every entity whose label equals label.
func (c *Entities) WithLabel(label string) []*Entity {
	var result []*Entity
	for _, e := range c.items {
		if e.label == label {
			result = append(result, e)
		}
	}
	return result
}

// WithTypes returns every entity carrying all of the given component types.
// With no types, every entity matches.
func (c *Entities) WithTypes(types ...reflect.Type) []*Entity {
	result := make([]*Entity, 0, len(c.items))
	for _, e := range c.items {
		if hasAll(e, types) {
			result = append(result, e)
		}
	}
	return result
}

func hasAll(e *Entity, types []reflect.Type) bool {
	for _, t := range types {
		if !e.Components.ContainsType(t) {
			return false
		}
	}
	return true
}

// WithComponent returns every entity carrying a T component.
func WithComponent[T any](c *Entities) []*Entity {
	return c.WithTypes(reflect.TypeFor[T]())
}

// FilterMapToComponent returns the T component of every entity that has one,
// in storage order.
func FilterMapToComponent[T any](c *Entities) []*T {
	var result []*T
	for _, e := range c.items {
		if comp := GetMut[T](e.Components); comp != nil {
			result = append(result, comp)
		}
	}
	return result
}
