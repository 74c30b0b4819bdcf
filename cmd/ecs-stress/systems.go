package main

import (
	"math/rand"
	"reflect"

	"github.com/plus3/yaecs/ecs"
)

type Position struct {
	X, Y float64
}

type Velocity struct {
	DX, DY float64
}

type Lifetime struct {
	Ticks int
}

type Mass float64

type Tag string

// SimConfig is a world global read by every system.
type SimConfig struct {
	Bounds      float64
	SpawnPerRun int
	Components  int
}

// Tally is a world global the systems write to.
type Tally struct {
	Moved   int64
	Expired int64
	Spawned int64
}

type MovementSystem struct{}

func (s *MovementSystem) OperatesOn() []reflect.Type {
	return ecs.Requires(Position{}, Velocity{})
}

func (s *MovementSystem) Process(entities []*ecs.Entity, globals *ecs.Store) {
	cfg, _ := ecs.Get[SimConfig](globals)
	tally := ecs.GetMut[Tally](globals)
	for _, e := range entities {
		pos := ecs.ReadComponent[Position](e)
		vel := ecs.ReadComponent[Velocity](e)
		pos.X += vel.DX
		pos.Y += vel.DY
		if pos.X < -cfg.Bounds || pos.X > cfg.Bounds {
			vel.DX = -vel.DX
		}
		if pos.Y < -cfg.Bounds || pos.Y > cfg.Bounds {
			vel.DY = -vel.DY
		}
	}
	tally.Moved += int64(len(entities))
}

type LifetimeSystem struct{}

func (s *LifetimeSystem) OperatesOn() []reflect.Type {
	return ecs.Requires(Lifetime{})
}

func (s *LifetimeSystem) Process(entities []*ecs.Entity, globals *ecs.Store) {
	cmds := ecs.GetMut[ecs.Commands](globals)
	tally := ecs.GetMut[Tally](globals)
	for _, e := range entities {
		life := ecs.ReadComponent[Lifetime](e)
		life.Ticks--
		if life.Ticks <= 0 {
			cmds.Remove(e.Id())
			tally.Expired++
		}
	}
}

type SpawnSystem struct {
	rng *rand.Rand
}

func (s *SpawnSystem) OperatesOn() []reflect.Type {
	return nil
}

func (s *SpawnSystem) Process(entities []*ecs.Entity, globals *ecs.Store) {
	cfg, _ := ecs.Get[SimConfig](globals)
	cmds := ecs.GetMut[ecs.Commands](globals)
	for i := 0; i < cfg.SpawnPerRun; i++ {
		cmds.Spawn(RandomEntity(s.rng, cfg.Components))
	}
	ecs.GetMut[Tally](globals).Spawned += int64(cfg.SpawnPerRun)
}

type GravitySystem struct{}

func (s *GravitySystem) OperatesOn() []reflect.Type {
	return ecs.Requires(Velocity{}, Mass(0))
}

func (s *GravitySystem) Process(entities []*ecs.Entity, globals *ecs.Store) {
	for _, e := range entities {
		mass, _ := ecs.Get[Mass](e.Components)
		ecs.ReadComponent[Velocity](e).DY -= 0.01 * float64(mass)
	}
}

// RandomEntity builds an entity with a random subset of up to n of the
// stress components. Every entity carries a Position.
func RandomEntity(rng *rand.Rand, n int) *ecs.Entity {
	b := ecs.Create("stress").Add(Position{X: rng.Float64()*100 - 50, Y: rng.Float64()*100 - 50})
	optional := []func() any{
		func() any { return Velocity{DX: rng.Float64() - 0.5, DY: rng.Float64() - 0.5} },
		func() any { return Lifetime{Ticks: 30 + rng.Intn(300)} },
		func() any { return Mass(1 + rng.Float64()*10) },
		func() any { return Tag("stress") },
	}
	for i := 0; i < min(n-1, len(optional)); i++ {
		if rng.Intn(2) == 0 {
			b.Add(optional[i]())
		}
	}
	return b.Build()
}

// NewMaskRegistry registers every stress component for mask filtering.
func NewMaskRegistry() *ecs.MaskRegistry {
	registry := ecs.NewMaskRegistry()
	ecs.RegisterMask[Position](registry)
	ecs.RegisterMask[Velocity](registry)
	ecs.RegisterMask[Lifetime](registry)
	ecs.RegisterMask[Mass](registry)
	ecs.RegisterMask[Tag](registry)
	return registry
}

// RegisterSystems adds the stress systems to the world in execution order.
func RegisterSystems(world *ecs.World, rng *rand.Rand) {
	world.Register(&SpawnSystem{rng: rng})
	world.Register(&GravitySystem{})
	world.Register(&MovementSystem{})
	world.Register(&LifetimeSystem{})
}
