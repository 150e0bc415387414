package game

import (
	"github.com/plus3/coinfall/ecs"
	"github.com/plus3/coinfall/loop"
)

// dropSystem accumulates frame time while running and performs a drop step
// each time the accumulator exceeds the drop interval.
type dropSystem struct {
	Playfield ecs.Singleton[playfield]
}

func (*dropSystem) Name() string { return "drop" }

func (d *dropSystem) Execute(frame *loop.UpdateFrame) {
	s := d.Playfield.Get().session
	if s.state != Running {
		return
	}

	s.dropAccum += frame.DeltaTime
	if s.dropAccum > s.cfg.DropInterval.Seconds() {
		s.drop(frame.Commands)
		s.dropAccum = 0
	}
}

// particleSystem integrates particle motion and despawns faded particles.
// Particles freeze while paused.
type particleSystem struct {
	Playfield ecs.Singleton[playfield]
	Particles ecs.Query[particleView]
}

func (*particleSystem) Name() string { return "particles" }

func (p *particleSystem) Execute(frame *loop.UpdateFrame) {
	if p.Playfield.Get().session.state == Paused {
		return
	}
	for id, particle := range p.Particles.Iter() {
		if !particle.step() {
			frame.Commands.Delete(id)
		}
	}
}

// renderSystem draws the frame when the session owns a renderer.
type renderSystem struct {
	Playfield ecs.Singleton[playfield]
}

func (*renderSystem) Name() string { return "render" }

func (r *renderSystem) Execute(*loop.UpdateFrame) {
	s := r.Playfield.Get().session
	if s.renderer == nil {
		return
	}
	s.Render(s.renderer)
}
