package ecs_test

import (
	"reflect"
	"testing"

	"github.com/plus3/yaecs/ecs"
)

func populate(world *ecs.World, n int) {
	for i := 0; i < n; i++ {
		b := ecs.Create("bench").Add(Position{X: float32(i)})
		if i%2 == 0 {
			b.Add(Velocity{DX: 1, DY: 1})
		}
		if i%3 == 0 {
			b.Add(Health{Current: 100, Max: 100})
		}
		world.AddEntity(b.Build())
	}
}

func BenchmarkInsert(b *testing.B) {
	store := ecs.NewStore()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		ecs.Insert(store, Position{X: 1.0, Y: 2.0})
	}
}

func BenchmarkInsertAny(b *testing.B) {
	store := ecs.NewStore()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		store.InsertAny(Position{X: 1.0, Y: 2.0})
	}
}

func BenchmarkGetMut(b *testing.B) {
	store := ecs.NewStore()
	ecs.Insert(store, Position{X: 1.0, Y: 2.0})
	ecs.Insert(store, Velocity{DX: 0.5, DY: 0.5})

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = ecs.GetMut[Position](store)
	}
}

func BenchmarkBuildEntity(b *testing.B) {
	for i := 0; i < b.N; i++ {
		ecs.Create("bench").
			Add(Position{X: 1.0, Y: 2.0}).
			Add(Velocity{DX: 0.5, DY: 0.5}).
			Add(Health{Current: 100, Max: 100}).
			Add(Name{Value: "Entity"}).
			Build()
	}
}

func BenchmarkWithComponent(b *testing.B) {
	world := ecs.NewWorld()
	populate(world, 10000)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = ecs.WithComponent[Velocity](world.Entities())
	}
}

func BenchmarkSwapRemove(b *testing.B) {
	world := ecs.NewWorld()
	populate(world, b.N)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		world.Entities().Remove(0)
	}
}

func benchmarkUpdate(b *testing.B, opts ...ecs.Option) {
	world := ecs.NewWorld(opts...)
	populate(world, 10000)
	world.Register(&MovementSystem{})
	world.Register(&HealthSystem{})
	world.Register(ecs.NewFuncSystem(func([]*ecs.Entity, *ecs.Store) {},
		reflect.TypeFor[Position](), reflect.TypeFor[Velocity](), reflect.TypeFor[Health]()))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		world.Update()
	}
}

func BenchmarkUpdate(b *testing.B) {
	benchmarkUpdate(b)
}

func BenchmarkUpdateMasked(b *testing.B) {
	registry := ecs.NewMaskRegistry()
	ecs.RegisterMask[Position](registry)
	ecs.RegisterMask[Velocity](registry)
	ecs.RegisterMask[Health](registry)
	benchmarkUpdate(b, ecs.WithMaskRegistry(registry))
}
