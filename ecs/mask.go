package ecs

import (
	"fmt"
	"math/bits"
	"reflect"

	"github.com/kamstrup/intmap"
)

// MaxMaskComponents is the number of component types a MaskRegistry can hold.
const MaxMaskComponents = 64

// Mask is a set of component types, one bit per type registered in a MaskRegistry.
type Mask uint64

// Contains reports whether every bit of sub is also set in m.
func (m Mask) Contains(sub Mask) bool {
	return m&sub == sub
}

// Count returns the number of component types in the mask.
func (m Mask) Count() int {
	return bits.OnesCount64(uint64(m))
}

// MaskRegistry assigns component types a bit in registration order.
// A World configured with a registry filters entities by mask AND whenever
// every type a system requires has been registered.
type MaskRegistry struct {
	bits  *intmap.Map[int, Mask]
	types []reflect.Type
}

// NewMaskRegistry creates an empty registry.
func NewMaskRegistry() *MaskRegistry {
	return &MaskRegistry{
		bits: intmap.New[int, Mask](MaxMaskComponents),
	}
}

// RegisterMask assigns T the next free bit, or returns its existing bit.
// Panics once more than MaxMaskComponents types are registered.
func RegisterMask[T any](r *MaskRegistry) Mask {
	return r.Register(reflect.TypeFor[T]())
}

// Register assigns t the next free bit, or returns its existing bit.
func (r *MaskRegistry) Register(t reflect.Type) Mask {
	id := typeId(t)
	if bit, ok := r.bits.Get(id); ok {
		return bit
	}
	if len(r.types) >= MaxMaskComponents {
		panic(fmt.Sprintf("component type %s exceeds maximum of %d mask components", t, MaxMaskComponents))
	}
	bit := Mask(1) << uint(len(r.types))
	r.bits.Put(id, bit)
	r.types = append(r.types, t)
	return bit
}

// MaskOf combines the bits of the given types.
// The second result is false if any type has not been registered.
func (r *MaskRegistry) MaskOf(types ...reflect.Type) (Mask, bool) {
	var m Mask
	for _, t := range types {
		bit, ok := r.bits.Get(typeId(t))
		if !ok {
			return 0, false
		}
		m |= bit
	}
	return m, true
}

// EntityMask returns the mask of the registered component types carried by e.
// Unregistered component types are ignored.
func (r *MaskRegistry) EntityMask(e *Entity) Mask {
	var m Mask
	if e.Components == nil {
		return m
	}
	for _, t := range e.Components.types {
		if bit, ok := r.bits.Get(typeId(t)); ok {
			m |= bit
		}
	}
	return m
}

// Len returns the number of registered types.
func (r *MaskRegistry) Len() int {
	return len(r.types)
}

// filter returns the entities whose masks contain required.
func (r *MaskRegistry) filter(entities []*Entity, required Mask) []*Entity {
	result := make([]*Entity, 0, len(entities))
	for _, e := range entities {
		if r.EntityMask(e).Contains(required) {
			result = append(result, e)
		}
	}
	return result
}
