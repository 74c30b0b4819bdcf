package ecs

import (
	"reflect"
	"sort"
	"time"
)

// WorldStats provides a snapshot of world contents and system execution.
type WorldStats struct {
	EntityCount        int
	GlobalCount        int
	GlobalTypes        []string
	ComponentBreakdown []ComponentStats
	Ticks              int64
	SystemCount        int
	TotalExecutions    int64
	Systems            []SystemStats
}

// ComponentStats counts the entities carrying one component type.
type ComponentStats struct {
	Type        string
	EntityCount int
}

// SystemStats provides execution statistics for a single system.
type SystemStats struct {
	Name           string
	ExecutionCount int64
	MinDuration    time.Duration
	MaxDuration    time.Duration
	AvgDuration    time.Duration
	LastDuration   time.Duration
	TotalDuration  time.Duration
}

type systemStatsInternal struct {
	name           string
	executionCount int64
	minDuration    time.Duration
	maxDuration    time.Duration
	totalDuration  time.Duration
	lastDuration   time.Duration
}

func (s *systemStatsInternal) record(duration time.Duration) {
	s.executionCount++
	s.lastDuration = duration
	s.totalDuration += duration

	if duration < s.minDuration {
		s.minDuration = duration
	}
	if duration > s.maxDuration {
		s.maxDuration = duration
	}
}

// Stats collects statistics about the world. The component breakdown is
// sorted by descending entity count, then by type name.
func (w *World) Stats() *WorldStats {
	stats := &WorldStats{
		EntityCount: w.data.Entities.Len(),
		GlobalCount: w.data.Globals.Len(),
		GlobalTypes: typeNames(w.data.Globals.types),
		Ticks:       w.ticks,
		SystemCount: len(w.systems),
		Systems:     make([]SystemStats, len(w.systemStats)),
	}

	counts := make(map[reflect.Type]int)
	for _, e := range w.data.Entities.items {
		for _, t := range e.Components.types {
			counts[t]++
		}
	}
	stats.ComponentBreakdown = make([]ComponentStats, 0, len(counts))
	for t, count := range counts {
		stats.ComponentBreakdown = append(stats.ComponentBreakdown, ComponentStats{
			Type:        t.String(),
			EntityCount: count,
		})
	}
	sort.Slice(stats.ComponentBreakdown, func(i, j int) bool {
		a, b := stats.ComponentBreakdown[i], stats.ComponentBreakdown[j]
		if a.EntityCount != b.EntityCount {
			return a.EntityCount > b.EntityCount
		}
		return a.Type < b.Type
	})

	var totalExecs int64
	for i, internal := range w.systemStats {
		avgDuration := time.Duration(0)
		minDuration := internal.minDuration
		if internal.executionCount > 0 {
			avgDuration = internal.totalDuration / time.Duration(internal.executionCount)
		} else {
			minDuration = 0
		}

		stats.Systems[i] = SystemStats{
			Name:           internal.name,
			ExecutionCount: internal.executionCount,
			MinDuration:    minDuration,
			MaxDuration:    internal.maxDuration,
			AvgDuration:    avgDuration,
			LastDuration:   internal.lastDuration,
			TotalDuration:  internal.totalDuration,
		}
		totalExecs += internal.executionCount
	}

	stats.TotalExecutions = totalExecs
	return stats
}
