package ecs_test

import (
	"reflect"
	"testing"

	"github.com/plus3/yaecs/ecs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMaskRegistry(t *testing.T) {
	registry := ecs.NewMaskRegistry()

	posBit := ecs.RegisterMask[Position](registry)
	velBit := ecs.RegisterMask[Velocity](registry)

	assert.Equal(t, ecs.Mask(1), posBit)
	assert.Equal(t, ecs.Mask(2), velBit)
	assert.Equal(t, posBit, ecs.RegisterMask[Position](registry))
	assert.Equal(t, 2, registry.Len())

	mask, ok := registry.MaskOf(reflect.TypeFor[Position](), reflect.TypeFor[Velocity]())
	require.True(t, ok)
	assert.Equal(t, posBit|velBit, mask)
	assert.Equal(t, 2, mask.Count())

	_, ok = registry.MaskOf(reflect.TypeFor[Health]())
	assert.False(t, ok)

	empty, ok := registry.MaskOf()
	assert.True(t, ok)
	assert.Equal(t, ecs.Mask(0), empty)
}

func TestMaskContains(t *testing.T) {
	tests := []struct {
		name     string
		m, sub   ecs.Mask
		expected bool
	}{
		{"empty contains empty", 0, 0, true},
		{"anything contains empty", 0b101, 0, true},
		{"superset", 0b111, 0b101, true},
		{"equal", 0b101, 0b101, true},
		{"missing bit", 0b100, 0b101, false},
		{"disjoint", 0b010, 0b101, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.m.Contains(tt.sub))
		})
	}
}

func TestEntityMask(t *testing.T) {
	registry := ecs.NewMaskRegistry()
	posBit := ecs.RegisterMask[Position](registry)
	healthBit := ecs.RegisterMask[Health](registry)

	e := ecs.Create("e").Add(Position{}).Add(Health{}).Add(Name{}).Build()
	assert.Equal(t, posBit|healthBit, registry.EntityMask(e))
	assert.Equal(t, ecs.Mask(0), registry.EntityMask(&ecs.Entity{}))
}

func TestMaskRegistryOverflowPanics(t *testing.T) {
	registry := ecs.NewMaskRegistry()
	// [0]byte, [1]byte, ... are distinct types.
	for i := 0; i < ecs.MaxMaskComponents; i++ {
		registry.Register(reflect.ArrayOf(i, reflect.TypeFor[byte]()))
	}
	require.Equal(t, ecs.MaxMaskComponents, registry.Len())

	assert.Panics(t, func() {
		ecs.RegisterMask[Position](registry)
	})
}

func TestWorldMaskFilteringMatchesTypeFiltering(t *testing.T) {
	build := func(opts ...ecs.Option) (*ecs.World, []*recordingSystem) {
		world := ecs.NewWorld(opts...)
		world.AddEntity(ecs.Create("e1").Add(TestA("a")).Build())
		world.AddEntity(ecs.Create("e2").Add(TestB("b")).Build())
		world.AddEntity(ecs.Create("e3").Add(TestA("a")).Add(TestB("b")).Build())
		world.AddEntity(ecs.Create("e4").Add(TestA("a")).Add(Position{}).Build())

		systems := []*recordingSystem{
			{types: ecs.Requires(TestA(""), TestB(""))},
			{types: ecs.Requires(TestA(""))},
			{types: ecs.Requires(TestA(""), Position{})},
			{},
		}
		for _, s := range systems {
			world.Register(s)
		}
		return world, systems
	}

	registry := ecs.NewMaskRegistry()
	ecs.RegisterMask[TestA](registry)
	ecs.RegisterMask[TestB](registry)
	// Position stays unregistered so that system falls back to type filtering.

	plain, plainSystems := build()
	masked, maskedSystems := build(ecs.WithMaskRegistry(registry))

	plain.Update()
	masked.Update()

	for i := range plainSystems {
		assert.Equal(t, plainSystems[i].seen, maskedSystems[i].seen)
	}
	assert.Equal(t, [][]string{{"e3"}}, maskedSystems[0].seen)
	assert.Equal(t, [][]string{{"e1", "e3", "e4"}}, maskedSystems[1].seen)
	assert.Equal(t, [][]string{{"e4"}}, maskedSystems[2].seen)
	assert.Equal(t, [][]string{{"e1", "e2", "e3", "e4"}}, maskedSystems[3].seen)
}
