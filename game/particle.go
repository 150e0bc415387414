package game

import (
	"math/rand/v2"

	"github.com/plus3/coinfall/coin"
	"github.com/plus3/coinfall/ecs"
)

const (
	particleGravity = 0.05
	particleFade    = 0.03
)

// Position is a particle's location in pixels.
type Position struct{ X, Y float64 }

// Velocity is in pixels per frame.
type Velocity struct{ DX, DY float64 }

// Fade is the particle opacity; the particle is despawned at or below 0.
type Fade struct{ Alpha float64 }

type Sprite struct {
	Coin coin.Type
	Size float64
}

// particleView is the query shape shared by the particle and render paths.
type particleView struct {
	*Position
	*Velocity
	*Fade
	*Sprite
}

// Particle is a copy of one live particle's components.
type Particle struct {
	X, Y   float64
	VX, VY float64
	Alpha  float64
	Size   float64
	Coin   coin.Type
}

func newComponentRegistry() *ecs.ComponentRegistry {
	registry := ecs.NewComponentRegistry()
	ecs.RegisterComponent[Position](registry)
	ecs.RegisterComponent[Velocity](registry)
	ecs.RegisterComponent[Fade](registry)
	ecs.RegisterComponent[Sprite](registry)
	return registry
}

// burst queues n particles centered on the cell at (col, row).
func burst(cmds *ecs.Commands, rng *rand.Rand, n, col, row, blockSize int, c coin.Type) {
	bs := float64(blockSize)
	cx := float64(col)*bs + bs/2
	cy := float64(row)*bs + bs/2

	for range n {
		vx := (rng.Float64() - 0.5) * 2
		vy := rng.Float64() * -3
		size := rng.Float64()*bs/2 + 4
		cmds.Spawn(
			Position{X: cx, Y: cy},
			Velocity{DX: vx, DY: vy},
			Fade{Alpha: 1},
			Sprite{Coin: c, Size: size},
		)
	}
}

// step advances p by one frame and reports whether it is still visible.
func (p particleView) step() bool {
	p.Position.X += p.DX
	p.Position.Y += p.DY
	p.DY += particleGravity
	p.Alpha -= particleFade
	return p.Alpha > 0
}

func (p particleView) snapshot() Particle {
	return Particle{
		X:     p.Position.X,
		Y:     p.Position.Y,
		VX:    p.DX,
		VY:    p.DY,
		Alpha: p.Alpha,
		Size:  p.Size,
		Coin:  p.Coin,
	}
}
