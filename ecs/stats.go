package ecs

import "time"

// WorldStats is a snapshot of the world's population and system execution
// history, suitable for debug overlays and headless benchmark reports.
type WorldStats struct {
	EntityCount        int
	ActiveEntityCount  int
	ComponentTypeCount int
	TagCount           int
	SystemCount        int
	TickCount          int64
	Systems            []SystemStats
}

// SystemStats provides execution statistics for a single registered system.
type SystemStats struct {
	Name           string
	ExecutionCount int64
	MinDuration    time.Duration
	MaxDuration    time.Duration
	AvgDuration    time.Duration
	LastDuration   time.Duration
	TotalDuration  time.Duration
}

type systemTimings struct {
	name           string
	executionCount int64
	minDuration    time.Duration
	maxDuration    time.Duration
	totalDuration  time.Duration
	lastDuration   time.Duration
}

func newSystemTimings(name string) *systemTimings {
	return &systemTimings{
		name:        name,
		minDuration: time.Duration(1<<63 - 1),
	}
}

func (t *systemTimings) record(d time.Duration) {
	t.executionCount++
	t.lastDuration = d
	t.totalDuration += d

	if d < t.minDuration {
		t.minDuration = d
	}
	if d > t.maxDuration {
		t.maxDuration = d
	}
}

// Stats collects a point-in-time statistics snapshot.
func (w *World) Stats() *WorldStats {
	stats := &WorldStats{
		EntityCount:        w.entities.Len(),
		ActiveEntityCount:  w.activeCount,
		ComponentTypeCount: len(w.byType),
		TagCount:           len(w.byTag),
		SystemCount:        len(w.systems),
		TickCount:          w.ticks,
		Systems:            make([]SystemStats, len(w.timings)),
	}

	for i, internal := range w.timings {
		avgDuration := time.Duration(0)
		if internal.executionCount > 0 {
			avgDuration = internal.totalDuration / time.Duration(internal.executionCount)
		}

		stats.Systems[i] = SystemStats{
			Name:           internal.name,
			ExecutionCount: internal.executionCount,
			MinDuration:    internal.minDuration,
			MaxDuration:    internal.maxDuration,
			AvgDuration:    avgDuration,
			LastDuration:   internal.lastDuration,
			TotalDuration:  internal.totalDuration,
		}
	}

	return stats
}
