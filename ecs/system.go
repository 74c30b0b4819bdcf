package ecs

import "reflect"

// System represents a behavior that operates on entities with specific components.
// OperatesOn names the component types an entity must carry to be passed to
// Process; an empty list selects every entity. Process may read and write any
// component of the entities it receives, including undeclared ones.
type System interface {
	OperatesOn() []reflect.Type
	Process(entities []*Entity, globals *Store)
}

// Requires returns the dynamic types of the given sample values, for use as
// an OperatesOn result.
func Requires(samples ...any) []reflect.Type {
	types := make([]reflect.Type, 0, len(samples))
	for _, sample := range samples {
		if sample == nil {
			panic("cannot require nil component")
		}
		types = append(types, reflect.TypeOf(sample))
	}
	return types
}

// FuncSystem adapts a plain function into a System.
type FuncSystem struct {
	Types []reflect.Type
	Fn    func(entities []*Entity, globals *Store)
}

// NewFuncSystem creates a System running fn over entities carrying all types.
func NewFuncSystem(fn func(entities []*Entity, globals *Store), types ...reflect.Type) *FuncSystem {
	return &FuncSystem{Types: types, Fn: fn}
}

func (s *FuncSystem) OperatesOn() []reflect.Type {
	return s.Types
}

func (s *FuncSystem) Process(entities []*Entity, globals *Store) {
	s.Fn(entities, globals)
}
