package loop_test

import (
	"context"
	"testing"
	"time"

	"github.com/plus3/coinfall/ecs"
	"github.com/plus3/coinfall/loop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type Position struct{ X float64 }

type Velocity struct{ DX float64 }

type Journal struct{ Log []string }

func newStorage() *ecs.Storage {
	registry := ecs.NewComponentRegistry()
	ecs.RegisterComponent[Position](registry)
	ecs.RegisterComponent[Velocity](registry)
	return ecs.NewStorage(registry)
}

type mover struct {
	*Position
	*Velocity
}

type MovementSystem struct {
	Movers  ecs.Query[mover]
	Journal ecs.Singleton[Journal]

	ExecuteCount int
}

func (s *MovementSystem) Execute(frame *loop.UpdateFrame) {
	s.ExecuteCount++
	for m := range s.Movers.Values() {
		m.Position.X += m.Velocity.DX * frame.DeltaTime
	}
	if j := s.Journal.Get(); j != nil {
		j.Log = append(j.Log, "move")
	}
}

type LogSystem struct {
	Journal ecs.Singleton[Journal]
}

func (*LogSystem) Name() string { return "logger" }

func (s *LogSystem) Execute(frame *loop.UpdateFrame) {
	j := s.Journal.Get()
	j.Log = append(j.Log, "log")
	frame.Commands.Defer(func() {
		j.Log = append(j.Log, "flush")
	})
}

func TestScheduler(t *testing.T) {
	t.Run("system execution order", func(t *testing.T) {
		storage := newStorage()
		journal := ecs.NewSingleton(storage, Journal{})
		scheduler := loop.NewScheduler(storage)

		movement := &MovementSystem{}
		scheduler.Register(movement)
		scheduler.Register(&LogSystem{})

		scheduler.Once(1.0)
		scheduler.Once(1.0)

		assert.Equal(t, 2, movement.ExecuteCount)
		assert.Equal(t, []string{"move", "log", "flush", "move", "log", "flush"}, journal.Get().Log)
	})

	t.Run("delta time calculation", func(t *testing.T) {
		storage := newStorage()
		id := storage.Spawn(Position{}, Velocity{DX: 10})
		scheduler := loop.NewScheduler(storage)
		scheduler.Register(&MovementSystem{})

		scheduler.Once(0.5)

		assert.Equal(t, 5.0, ecs.ReadComponent[Position](storage, id).X)
	})

	t.Run("queries see entities spawned by earlier frames", func(t *testing.T) {
		storage := newStorage()
		scheduler := loop.NewScheduler(storage)
		scheduler.Register(loop.SystemFunc(func(frame *loop.UpdateFrame) {
			frame.Commands.Spawn(Position{}, Velocity{DX: 1})
		}))
		scheduler.Register(&MovementSystem{})

		scheduler.Once(1)
		scheduler.Once(1)
		scheduler.Once(1)

		moved := ecs.NewQuery[struct{ *Position }](storage)
		moved.Execute()
		var xs []float64
		for p := range moved.Values() {
			xs = append(xs, p.X)
		}
		assert.ElementsMatch(t, []float64{2, 1, 0}, xs)
	})

	t.Run("system func", func(t *testing.T) {
		storage := newStorage()
		scheduler := loop.NewScheduler(storage)

		calls := 0
		scheduler.Register(loop.SystemFunc(func(frame *loop.UpdateFrame) {
			calls++
			assert.Same(t, storage, frame.Storage)
		}))
		scheduler.Once(0)

		assert.Equal(t, 1, calls)
	})

	t.Run("commands queued during flush run in the same frame", func(t *testing.T) {
		var log []string
		scheduler := loop.NewScheduler(newStorage())
		scheduler.Register(loop.SystemFunc(func(frame *loop.UpdateFrame) {
			frame.Commands.Defer(func() {
				log = append(log, "outer")
				frame.Commands.Defer(func() { log = append(log, "inner") })
			})
		}))

		scheduler.Once(0)
		assert.Equal(t, []string{"outer", "inner"}, log)

		scheduler.Once(0)
		assert.Equal(t, []string{"outer", "inner", "outer", "inner"}, log)
	})

	t.Run("context cancellation in run", func(t *testing.T) {
		scheduler := loop.NewScheduler(newStorage())
		movement := &MovementSystem{}
		scheduler.Register(movement)

		ctx, cancel := context.WithCancel(context.Background())

		done := make(chan bool)
		go func() {
			scheduler.Run(ctx, time.Millisecond, nil)
			done <- true
		}()

		time.Sleep(10 * time.Millisecond)
		cancel()

		select {
		case <-done:
		case <-time.After(time.Second):
			t.Fatal("scheduler did not stop after context cancellation")
		}

		assert.Positive(t, movement.ExecuteCount)
	})

	t.Run("run stops when keepGoing is false", func(t *testing.T) {
		scheduler := loop.NewScheduler(newStorage())
		movement := &MovementSystem{}
		scheduler.Register(movement)

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		scheduler.Run(ctx, time.Millisecond, func() bool {
			return movement.ExecuteCount < 3
		})

		assert.Equal(t, 3, movement.ExecuteCount)
		require.NoError(t, ctx.Err())
	})
}

func TestSchedulerStats(t *testing.T) {
	storage := newStorage()
	ecs.NewSingleton(storage, Journal{})
	scheduler := loop.NewScheduler(storage)
	scheduler.Register(&MovementSystem{})
	scheduler.Register(&LogSystem{})

	stats := scheduler.Stats()
	assert.Equal(t, 2, stats.SystemCount)
	assert.Equal(t, time.Duration(0), stats.Systems[0].MinDuration)

	for range 5 {
		scheduler.Once(0.016)
	}

	stats = scheduler.Stats()
	assert.Equal(t, int64(5), stats.Frames)
	assert.Equal(t, int64(10), stats.TotalExecutions)
	require.Len(t, stats.Systems, 2)
	assert.Equal(t, "MovementSystem", stats.Systems[0].Name)
	assert.Equal(t, "logger", stats.Systems[1].Name)
	for _, s := range stats.Systems {
		assert.Equal(t, int64(5), s.ExecutionCount)
		assert.LessOrEqual(t, s.MinDuration, s.AvgDuration)
		assert.LessOrEqual(t, s.AvgDuration, s.MaxDuration)
	}
}
