package main

import (
	"bytes"
	"math/rand"
	"testing"
	"time"

	"github.com/plus3/yaecs/ecs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStressWorld(seed int64, masks bool, initial int) *ecs.World {
	var opts []ecs.Option
	if masks {
		opts = append(opts, ecs.WithMaskRegistry(NewMaskRegistry()))
	}
	world := ecs.NewWorld(opts...)
	ecs.AddGlobal(world, SimConfig{Bounds: 1000, SpawnPerRun: 10, Components: 5})
	ecs.AddGlobal(world, Tally{})

	rng := rand.New(rand.NewSource(seed))
	RegisterSystems(world, rng)
	for i := 0; i < initial; i++ {
		world.AddEntity(RandomEntity(rng, 5))
	}
	return world
}

func TestRandomEntity(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 100; i++ {
		e := RandomEntity(rng, 5)
		assert.True(t, ecs.Has[Position](e))
		assert.LessOrEqual(t, e.Components.Len(), 5)
	}

	only := RandomEntity(rng, 1)
	assert.Equal(t, 1, only.Components.Len())
}

func TestStressWorldSpawnsAfterTick(t *testing.T) {
	world := newStressWorld(7, false, 50)

	world.Update()

	assert.Equal(t, 60, world.Entities().Len())
	tally, ok := ecs.GetGlobal[Tally](world)
	require.True(t, ok)
	assert.Equal(t, int64(10), tally.Spawned)
	assert.Zero(t, tally.Expired)
}

func TestStressWorldMaskFilteringMatches(t *testing.T) {
	plain := newStressWorld(42, false, 200)
	masked := newStressWorld(42, true, 200)

	for i := 0; i < 50; i++ {
		plain.Update()
		masked.Update()
	}

	assert.Equal(t, plain.Entities().Len(), masked.Entities().Len())
	plainTally, _ := ecs.GetGlobal[Tally](plain)
	maskedTally, _ := ecs.GetGlobal[Tally](masked)
	assert.Equal(t, plainTally, maskedTally)
}

func TestStatsFinalize(t *testing.T) {
	s := Stats{Samples: []time.Duration{3 * time.Millisecond, time.Millisecond, 2 * time.Millisecond}}
	s.Finalize()

	assert.Equal(t, time.Millisecond, s.Min)
	assert.Equal(t, 3*time.Millisecond, s.Max)
	assert.Equal(t, 2*time.Millisecond, s.Avg)

	empty := Stats{}
	empty.Finalize()
	assert.Zero(t, empty.Avg)
}

func TestReportGenerate(t *testing.T) {
	world := newStressWorld(3, false, 10)
	world.Update()

	report := &Report{
		Duration:   time.Second,
		Entities:   10,
		Components: 5,
		World:      world.Stats(),
	}
	report.Tally, _ = ecs.GetGlobal[Tally](world)

	var buf bytes.Buffer
	require.NoError(t, report.Generate(&buf))
	out := buf.String()
	assert.Contains(t, out, "**Final Entities:** 20")
	assert.Contains(t, out, "| MovementSystem |")
}
