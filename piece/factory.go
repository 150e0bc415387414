package piece

import (
	"math/rand/v2"

	"github.com/plus3/coinfall/coin"
	"github.com/plus3/coinfall/shape"
)

// DefaultMonoProbability is the chance that a spawned piece is a single coin.
const DefaultMonoProbability = 0.2

// Factory spawns pieces from a weighted pool using an injected random source.
type Factory struct {
	rng             *rand.Rand
	pool            []shape.Kind
	monoProbability float64
	cols            int
}

// NewFactory creates a factory spawning pieces centered on a grid with the
// given number of columns. A nil pool selects shape.DefaultPool.
func NewFactory(rng *rand.Rand, pool []shape.Kind, monoProbability float64, cols int) *Factory {
	if len(pool) == 0 {
		pool = shape.DefaultPool
	}
	return &Factory{
		rng:             rng,
		pool:            pool,
		monoProbability: monoProbability,
		cols:            cols,
	}
}

// Spawn draws a piece kind from the pool, tags its cells and anchors it at
// the top center of the grid.
func (f *Factory) Spawn() Piece {
	kind := f.pool[f.rng.IntN(len(f.pool))]
	geometry := shape.Geometry(kind)

	coins := make([][]coin.Type, len(geometry))
	for r := range geometry {
		coins[r] = make([]coin.Type, len(geometry[r]))
	}

	if f.rng.Float64() < f.monoProbability {
		mono := f.randomCoin()
		for r, row := range geometry {
			for c, filled := range row {
				if filled {
					coins[r][c] = mono
				}
			}
		}
	} else {
		for r, row := range geometry {
			for c, filled := range row {
				if filled {
					coins[r][c] = f.randomCoin()
				}
			}
		}
	}

	return Piece{
		Kind:        kind,
		Orientation: Orientation{Shape: geometry, Coins: coins},
		X:           f.cols/2 - len(geometry[0])/2,
		Y:           0,
	}
}

func (f *Factory) randomCoin() coin.Type {
	return coin.All[f.rng.IntN(len(coin.All))]
}
