package ecs_test

import (
	"reflect"

	"github.com/plus3/yaecs/ecs"
)

// Common test component types
type Position struct {
	X, Y float32
}

type Velocity struct {
	DX, DY float32
}

type Name struct {
	Value string
}

type Health struct {
	Current int
	Max     int
}

type PlayerController struct{}

// Custom primitive types for testing non-struct components
type Score int32
type Tag string

type TestA string
type TestB string

type Inventory struct {
	Items []string
}

// Counter is a global shared between systems.
type Counter struct {
	Value int
}

// recordingSystem records the labels of every entity it is handed.
type recordingSystem struct {
	types []reflect.Type
	calls int
	seen  [][]string
}

func (s *recordingSystem) OperatesOn() []reflect.Type {
	return s.types
}

func (s *recordingSystem) Process(entities []*ecs.Entity, globals *ecs.Store) {
	s.calls++
	labels := make([]string, 0, len(entities))
	for _, e := range entities {
		labels = append(labels, e.Label())
	}
	s.seen = append(s.seen, labels)
}

func labelsOf(entities []*ecs.Entity) []string {
	labels := make([]string, 0, len(entities))
	for _, e := range entities {
		labels = append(labels, e.Label())
	}
	return labels
}

// newABCollection builds e1 (TestA), e2 (TestB), e3 (TestA and TestB).
func newABCollection() *ecs.Entities {
	entities := ecs.NewEntities()
	entities.Push(ecs.Create("e1").Add(TestA("a1")).Build())
	entities.Push(ecs.Create("e2").Add(TestB("b2")).Build())
	entities.Push(ecs.Create("e3").Add(TestA("a3")).Add(TestB("b3")).Build())
	return entities
}
