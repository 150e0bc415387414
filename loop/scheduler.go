// Package loop runs ordered systems once per frame over an entity
// storage, with per-frame deferred commands and execution statistics.
package loop

import (
	"context"
	"reflect"
	"time"

	"github.com/plus3/coinfall/ecs"
)

// SchedulerStats provides statistics about scheduler execution.
type SchedulerStats struct {
	SystemCount     int
	Frames          int64
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

// Scheduler executes systems in order over a storage.
type Scheduler struct {
	storage     *ecs.Storage
	systems     []System
	queries     [][]executor
	systemStats []*systemStatsInternal
	commands    *ecs.Commands
	frames      int64
}

// executor is implemented by ecs.Query fields.
type executor interface {
	Execute()
}

// storageBound is implemented by ecs.Query and ecs.Singleton fields.
type storageBound interface {
	Init(*ecs.Storage)
}

func NewScheduler(storage *ecs.Storage) *Scheduler {
	return &Scheduler{
		storage:  storage,
		systems:  make([]System, 0),
		commands: ecs.NewCommands(),
	}
}

// Register appends a system to the frame. Exported Query and Singleton
// fields of a struct system are bound to the scheduler's storage.
func (s *Scheduler) Register(system System) {
	s.systems = append(s.systems, system)
	s.queries = append(s.queries, s.bindFields(system))
	s.systemStats = append(s.systemStats, &systemStatsInternal{
		name:        systemName(system),
		minDuration: time.Duration(1<<63 - 1),
	})
}

func (s *Scheduler) bindFields(system System) []executor {
	value := reflect.ValueOf(system)
	if value.Kind() != reflect.Ptr || value.Elem().Kind() != reflect.Struct {
		return nil
	}
	value = value.Elem()

	var queries []executor
	for i := 0; i < value.NumField(); i++ {
		field := value.Field(i)
		if field.Kind() != reflect.Struct || !field.CanAddr() || !field.Addr().CanInterface() {
			continue
		}

		bound, ok := field.Addr().Interface().(storageBound)
		if !ok {
			continue
		}
		bound.Init(s.storage)
		if q, ok := bound.(executor); ok {
			queries = append(queries, q)
		}
	}
	return queries
}

func systemName(system any) string {
	if n, ok := system.(named); ok {
		return n.Name()
	}

	systemType := reflect.TypeOf(system)
	if systemType.Kind() == reflect.Ptr {
		systemType = systemType.Elem()
	}
	return systemType.Name()
}

// Once executes all registered systems once with the given delta time in
// seconds, then flushes the frame's commands. A system's queries are
// refreshed right before it runs.
func (s *Scheduler) Once(dt float64) {
	frame := newUpdateFrame(dt, s.storage, s.commands)

	for i, system := range s.systems {
		start := time.Now()
		for _, q := range s.queries[i] {
			q.Execute()
		}
		system.Execute(frame)
		duration := time.Since(start)

		stats := s.systemStats[i]
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

	s.frames++
	frame.Commands.Flush(s.storage)
}

// Run executes all systems at the given interval until the context is
// cancelled or keepGoing returns false after a frame. A nil keepGoing runs
// until cancellation.
func (s *Scheduler) Run(ctx context.Context, interval time.Duration, keepGoing func() bool) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	lastTime := time.Now()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			dt := now.Sub(lastTime).Seconds()
			lastTime = now
			s.Once(dt)
			if keepGoing != nil && !keepGoing() {
				return
			}
		}
	}
}

// Stats returns statistics about system execution.
func (s *Scheduler) Stats() SchedulerStats {
	stats := SchedulerStats{
		SystemCount: len(s.systems),
		Frames:      s.frames,
		Systems:     make([]SystemStats, len(s.systemStats)),
	}

	var totalExecs int64
	for i, internal := range s.systemStats {
		avgDuration := time.Duration(0)
		minDuration := time.Duration(0)
		if internal.executionCount > 0 {
			avgDuration = internal.totalDuration / time.Duration(internal.executionCount)
			minDuration = internal.minDuration
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
