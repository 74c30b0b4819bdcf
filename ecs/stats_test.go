package ecs

import (
	"reflect"
	"testing"
	"time"
)

type statsPosition struct{ X, Y float32 }
type statsHealth struct{ Current int }

type sleepySystem struct{}

func (sleepySystem) OperatesOn() []reflect.Type { return nil }

func (sleepySystem) Process(entities []*Entity, globals *Store) {
	time.Sleep(time.Millisecond)
}

type namedSystem struct{ sleepySystem }

func (namedSystem) Name() string { return "custom-name" }

func localMarkerA() any {
	type marker struct{}
	return marker{}
}

func localMarkerB() any {
	type marker struct{ N int }
	return marker{}
}

func TestWorldStatsSameNamedTypes(t *testing.T) {
	world := NewWorld()
	a, b := NewEntity("a"), NewEntity("b")
	a.Insert(localMarkerA())
	b.Insert(localMarkerB())
	world.AddEntity(a)
	world.AddEntity(b)

	stats := world.Stats()
	if len(stats.ComponentBreakdown) != 2 {
		t.Fatalf("expected 2 breakdown entries, got %+v", stats.ComponentBreakdown)
	}
	for _, entry := range stats.ComponentBreakdown {
		if entry.Type != "ecs.marker" || entry.EntityCount != 1 {
			t.Errorf("unexpected breakdown entry %+v", entry)
		}
	}
}

func TestWorldStats(t *testing.T) {
	world := NewWorld()

	stats := world.Stats()
	if stats.EntityCount != 0 {
		t.Errorf("expected 0 entities, got %d", stats.EntityCount)
	}
	// The command buffer is always present.
	if stats.GlobalCount != 1 {
		t.Errorf("expected 1 global, got %d", stats.GlobalCount)
	}
	if len(stats.ComponentBreakdown) != 0 {
		t.Errorf("expected empty breakdown, got %v", stats.ComponentBreakdown)
	}

	world.AddEntity(Create("a").Add(statsPosition{}).Add(statsHealth{}).Build())
	world.AddEntity(Create("b").Add(statsPosition{}).Build())
	world.AddEntity(Create("c").Add(statsPosition{}).Build())
	AddGlobal(world, 3.14)

	stats = world.Stats()

	if stats.EntityCount != 3 {
		t.Errorf("expected 3 entities, got %d", stats.EntityCount)
	}
	if stats.GlobalCount != 2 {
		t.Errorf("expected 2 globals, got %d", stats.GlobalCount)
	}
	if len(stats.GlobalTypes) != 2 || stats.GlobalTypes[0] != "ecs.Commands" || stats.GlobalTypes[1] != "float64" {
		t.Errorf("unexpected global types %v", stats.GlobalTypes)
	}

	if len(stats.ComponentBreakdown) != 2 {
		t.Fatalf("expected 2 breakdown entries, got %d", len(stats.ComponentBreakdown))
	}
	if stats.ComponentBreakdown[0].Type != "ecs.statsPosition" || stats.ComponentBreakdown[0].EntityCount != 3 {
		t.Errorf("unexpected first breakdown entry %+v", stats.ComponentBreakdown[0])
	}
	if stats.ComponentBreakdown[1].Type != "ecs.statsHealth" || stats.ComponentBreakdown[1].EntityCount != 1 {
		t.Errorf("unexpected second breakdown entry %+v", stats.ComponentBreakdown[1])
	}
}

func TestSystemStats(t *testing.T) {
	world := NewWorld()
	world.Register(&sleepySystem{})
	world.Register(namedSystem{})

	stats := world.Stats()
	if stats.SystemCount != 2 {
		t.Errorf("expected 2 systems, got %d", stats.SystemCount)
	}
	if stats.Systems[0].MinDuration != 0 {
		t.Errorf("expected zero min duration before any run, got %v", stats.Systems[0].MinDuration)
	}

	for i := 0; i < 3; i++ {
		world.Update()
	}

	stats = world.Stats()
	if stats.Ticks != 3 {
		t.Errorf("expected 3 ticks, got %d", stats.Ticks)
	}
	if stats.TotalExecutions != 6 {
		t.Errorf("expected 6 executions, got %d", stats.TotalExecutions)
	}

	first := stats.Systems[0]
	if first.Name != "sleepySystem" {
		t.Errorf("expected name sleepySystem, got %q", first.Name)
	}
	if stats.Systems[1].Name != "custom-name" {
		t.Errorf("expected name custom-name, got %q", stats.Systems[1].Name)
	}
	if first.ExecutionCount != 3 {
		t.Errorf("expected 3 executions, got %d", first.ExecutionCount)
	}
	if first.MinDuration < time.Millisecond {
		t.Errorf("expected min duration >= 1ms, got %v", first.MinDuration)
	}
	if first.MaxDuration < first.MinDuration {
		t.Errorf("max %v < min %v", first.MaxDuration, first.MinDuration)
	}
	if first.AvgDuration < first.MinDuration || first.AvgDuration > first.MaxDuration {
		t.Errorf("avg %v outside [%v, %v]", first.AvgDuration, first.MinDuration, first.MaxDuration)
	}
	if first.TotalDuration < 3*time.Millisecond {
		t.Errorf("expected total >= 3ms, got %v", first.TotalDuration)
	}
	if first.LastDuration == 0 {
		t.Error("expected last duration to be recorded")
	}
}
