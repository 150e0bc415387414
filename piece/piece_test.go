package piece_test

import (
	"math/rand/v2"
	"testing"

	"github.com/plus3/coinfall/coin"
	"github.com/plus3/coinfall/piece"
	"github.com/plus3/coinfall/shape"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

func assertPaired(t *testing.T, o piece.Orientation) {
	t.Helper()
	require.Len(t, o.Coins, len(o.Shape))
	for r := range o.Shape {
		require.Len(t, o.Coins[r], len(o.Shape[r]))
		for c := range o.Shape[r] {
			assert.Equal(t, o.Shape[r][c], !o.Coins[r][c].Empty(), "cell (%d,%d)", r, c)
		}
	}
}

func TestRotateClockwise(t *testing.T) {
	src := piece.Orientation{
		Shape: [][]bool{
			{false, true, false},
			{true, true, true},
		},
		Coins: [][]coin.Type{
			{coin.None, coin.BTC, coin.None},
			{coin.ETH, coin.DOGE, coin.SOL},
		},
	}

	got := src.Rotate()

	assert.Equal(t, [][]bool{
		{true, false},
		{true, true},
		{true, false},
	}, got.Shape)
	assert.Equal(t, [][]coin.Type{
		{coin.ETH, coin.None},
		{coin.DOGE, coin.BTC},
		{coin.SOL, coin.None},
	}, got.Coins)

	// the source is untouched
	assert.Equal(t, coin.BTC, src.Coins[0][1])
	assert.Equal(t, 2, src.Rows())
}

func TestRotateFourTimesIsIdentity(t *testing.T) {
	factory := piece.NewFactory(newRand(7), nil, piece.DefaultMonoProbability, 10)

	for i := 0; i < 50; i++ {
		p := factory.Spawn()
		r := p
		for range 4 {
			r = r.Rotated()
			assertPaired(t, r.Orientation)
			assert.Equal(t, p.X, r.X)
			assert.Equal(t, p.Y, r.Y)
		}
		assert.True(t, p.Equal(r.Orientation), "kind %s", p.Kind)
	}
}

func TestRotateIPiece(t *testing.T) {
	p := piece.Piece{
		Kind: shape.I,
		Orientation: piece.Orientation{
			Shape: shape.Geometry(shape.I),
			Coins: [][]coin.Type{{coin.BTC, coin.ETH, coin.DOGE, coin.SOL}},
		},
		X: 3,
	}

	r := p.Rotated()
	assert.Equal(t, 4, r.Rows())
	assert.Equal(t, 1, r.Cols())
	assert.Equal(t, []coin.Type{coin.SOL}, r.Coins[3])
	assert.Equal(t, 3, r.X)
	assert.Equal(t, 4, p.Cols())
}

func TestCells(t *testing.T) {
	p := piece.Piece{
		Orientation: piece.Orientation{
			Shape: [][]bool{{true, false}, {true, true}},
			Coins: [][]coin.Type{{coin.XRP, coin.None}, {coin.BTC, coin.ETH}},
		},
		X: 4,
		Y: 2,
	}

	assert.Equal(t, []piece.Cell{
		{Col: 4, Row: 2, Coin: coin.XRP},
		{Col: 4, Row: 3, Coin: coin.BTC},
		{Col: 5, Row: 3, Coin: coin.ETH},
	}, p.Cells())

	moved := p.Moved(-1, 2)
	assert.Equal(t, 3, moved.X)
	assert.Equal(t, 4, moved.Y)
	assert.Equal(t, 4, p.X)
}

func TestFactorySpawnAnchor(t *testing.T) {
	tests := []struct {
		kind shape.Kind
		x    int
	}{
		{shape.I, 3},
		{shape.O, 4},
		{shape.T, 4},
	}

	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			factory := piece.NewFactory(newRand(1), []shape.Kind{tt.kind}, 0.2, 10)
			p := factory.Spawn()
			assert.Equal(t, tt.kind, p.Kind)
			assert.Equal(t, tt.x, p.X)
			assert.Equal(t, 0, p.Y)
			assertPaired(t, p.Orientation)
		})
	}
}

func TestFactoryMonoPieces(t *testing.T) {
	factory := piece.NewFactory(newRand(3), nil, 1, 10)

	for range 100 {
		p := factory.Spawn()
		cells := p.Cells()
		require.NotEmpty(t, cells)
		for _, cell := range cells {
			assert.Equal(t, cells[0].Coin, cell.Coin)
			assert.True(t, cell.Coin.Valid())
		}
	}
}

func TestFactoryMonoProbability(t *testing.T) {
	factory := piece.NewFactory(newRand(11), nil, piece.DefaultMonoProbability, 10)

	const samples = 20000
	mono := 0
	for range samples {
		cells := factory.Spawn().Cells()
		same := true
		for _, cell := range cells {
			if cell.Coin != cells[0].Coin {
				same = false
				break
			}
		}
		if same {
			mono++
		}
	}

	// mixed pieces are uniform by chance about 0.8% of the time
	ratio := float64(mono) / samples
	assert.InDelta(t, 0.206, ratio, 0.03)
}

func TestFactoryPoolWeighting(t *testing.T) {
	factory := piece.NewFactory(newRand(5), shape.DefaultPool, 0.2, 10)

	counts := map[shape.Kind]int{}
	for range 13000 {
		counts[factory.Spawn().Kind]++
	}

	for _, k := range []shape.Kind{shape.I, shape.O, shape.T, shape.S, shape.Z, shape.J, shape.L} {
		assert.InDelta(t, 1000, counts[k], 200, k.String())
	}
	assert.InDelta(t, 3000, counts[shape.F], 300)
	assert.InDelta(t, 3000, counts[shape.C], 300)
}

func TestFactoryIsDeterministic(t *testing.T) {
	a := piece.NewFactory(newRand(99), nil, 0.2, 10)
	b := piece.NewFactory(newRand(99), nil, 0.2, 10)

	for range 20 {
		pa, pb := a.Spawn(), b.Spawn()
		assert.Equal(t, pa, pb)
	}
}
