package shape_test

import (
	"testing"

	"github.com/plus3/coinfall/shape"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogDimensions(t *testing.T) {
	tests := []struct {
		kind       shape.Kind
		rows, cols int
		cells      int
	}{
		{shape.I, 1, 4, 4},
		{shape.O, 2, 2, 4},
		{shape.T, 2, 3, 4},
		{shape.S, 2, 3, 4},
		{shape.Z, 2, 3, 4},
		{shape.J, 2, 3, 4},
		{shape.L, 2, 3, 4},
		{shape.F, 2, 3, 4},
		{shape.C, 2, 3, 4},
	}

	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			g := shape.Geometry(tt.kind)
			require.Len(t, g, tt.rows)

			cells := 0
			for _, row := range g {
				assert.Len(t, row, tt.cols)
				for _, v := range row {
					if v {
						cells++
					}
				}
			}
			assert.Equal(t, tt.cells, cells)
		})
	}
}

func TestGeometryIsACopy(t *testing.T) {
	g := shape.Geometry(shape.O)
	g[0][0] = false

	assert.True(t, shape.Geometry(shape.O)[0][0])
}

func TestDefaultPoolWeights(t *testing.T) {
	counts := map[shape.Kind]int{}
	for _, k := range shape.DefaultPool {
		counts[k]++
	}

	assert.Len(t, shape.DefaultPool, 13)
	assert.Equal(t, 3, counts[shape.F])
	assert.Equal(t, 3, counts[shape.C])
	for _, k := range []shape.Kind{shape.I, shape.O, shape.T, shape.S, shape.Z, shape.J, shape.L} {
		assert.Equal(t, 1, counts[k], k.String())
	}
}

func TestParsePool(t *testing.T) {
	pool, err := shape.ParsePool(shape.Names(shape.DefaultPool))
	require.NoError(t, err)
	assert.Equal(t, shape.DefaultPool, pool)

	_, err = shape.ParsePool([]string{"I", "Q"})
	assert.Error(t, err)

	_, err = shape.ParsePool(nil)
	assert.Error(t, err)
}
