package ecs

import (
	"context"
	"fmt"
	"slices"
	"time"
)

// SchedulerStats provides statistics about scheduler execution.
type SchedulerStats struct {
	SystemCount     int
	TotalExecutions int64
	Systems         []SystemStats
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

// Scheduler is an ordered registry of systems. There is no enable/disable,
// priority, or dependency ordering beyond registration order: Run is a
// deliberately simple single pass.
type Scheduler struct {
	systems []*System
	stats   []*systemStatsInternal
}

// NewScheduler creates an empty scheduler.
func NewScheduler() *Scheduler {
	return &Scheduler{
		systems: make([]*System, 0),
	}
}

// AddSystem appends a system to the registry. Registering the same system
// value twice fails with ErrDuplicateSystem and leaves the registry
// unchanged.
func (s *Scheduler) AddSystem(system *System) error {
	if slices.Contains(s.systems, system) {
		return fmt.Errorf("%w: %s", ErrDuplicateSystem, systemName(system, slices.Index(s.systems, system)))
	}

	s.systems = append(s.systems, system)
	s.stats = append(s.stats, &systemStatsInternal{
		name:        systemName(system, len(s.systems)-1),
		minDuration: time.Duration(1<<63 - 1),
	})
	return nil
}

func systemName(system *System, index int) string {
	if system.Name != "" {
		return system.Name
	}
	return fmt.Sprintf("system-%d", index)
}

// Run executes every registered system once, in registration order, issuing
// one World.Query per system.
func (s *Scheduler) Run(w *World) {
	for i, system := range s.systems {
		start := time.Now()

		if run := system.Run; run != nil {
			w.Query(func(e Entity, components []any) {
				run(w, e, components)
			}, system.Query...)
		} else {
			w.Query(nil, system.Query...)
		}

		duration := time.Since(start)
		stats := s.stats[i]
		stats.executionCount++
		stats.lastDuration = duration
		stats.totalDuration += duration

		if duration < stats.minDuration {
			stats.minDuration = duration
		}
		if duration > stats.maxDuration {
			stats.maxDuration = duration
		}
	}
}

// RunEvery executes all systems repeatedly at the given interval until the
// context is cancelled. Callers that want a different cadence simply call
// Run themselves.
func (s *Scheduler) RunEvery(ctx context.Context, w *World, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.Run(w)
		}
	}
}

// Stats returns statistics about system execution.
func (s *Scheduler) Stats() *SchedulerStats {
	stats := &SchedulerStats{
		SystemCount: len(s.systems),
		Systems:     make([]SystemStats, len(s.stats)),
	}

	var totalExecs int64
	for i, internal := range s.stats {
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
		totalExecs += internal.executionCount
	}

	stats.TotalExecutions = totalExecs
	return stats
}
