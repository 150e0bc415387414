// Package piece implements falling pieces: their coin-tagged geometry,
// rotation, and the randomized factory that spawns them.
package piece

import (
	"github.com/plus3/coinfall/coin"
	"github.com/plus3/coinfall/shape"
)

// Orientation pairs a geometry with its coin tags. Shape and Coins always
// have identical dimensions, and Coins[r][c] is non-empty iff Shape[r][c].
type Orientation struct {
	Shape [][]bool
	Coins [][]coin.Type
}

// Rows returns the height of the geometry.
func (o Orientation) Rows() int {
	return len(o.Shape)
}

// Cols returns the width of the geometry.
func (o Orientation) Cols() int {
	if len(o.Shape) == 0 {
		return 0
	}
	return len(o.Shape[0])
}

// Rotate returns the orientation turned 90 degrees clockwise. For an R×C
// source the result is C×R with result[c][R-1-r] = source[r][c].
func (o Orientation) Rotate() Orientation {
	rows, cols := o.Rows(), o.Cols()

	out := Orientation{
		Shape: make([][]bool, cols),
		Coins: make([][]coin.Type, cols),
	}
	for c := range cols {
		out.Shape[c] = make([]bool, rows)
		out.Coins[c] = make([]coin.Type, rows)
	}

	for r := range rows {
		for c := range cols {
			out.Shape[c][rows-1-r] = o.Shape[r][c]
			out.Coins[c][rows-1-r] = o.Coins[r][c]
		}
	}

	return out
}

// Equal reports whether both orientations have the same geometry and tags.
func (o Orientation) Equal(other Orientation) bool {
	if o.Rows() != other.Rows() || o.Cols() != other.Cols() {
		return false
	}
	for r := range o.Shape {
		for c := range o.Shape[r] {
			if o.Shape[r][c] != other.Shape[r][c] || o.Coins[r][c] != other.Coins[r][c] {
				return false
			}
		}
	}
	return true
}

// Piece is the active falling piece. X and Y locate the top-left corner
// of the geometry in grid coordinates.
type Piece struct {
	Kind shape.Kind
	Orientation
	X, Y int
}

// Cell is one occupied cell of a piece in grid coordinates.
type Cell struct {
	Col, Row int
	Coin     coin.Type
}

// Cells returns the occupied cells of p translated to grid coordinates.
func (p Piece) Cells() []Cell {
	cells := make([]Cell, 0, 4)
	for r, row := range p.Shape {
		for c, filled := range row {
			if !filled {
				continue
			}
			cells = append(cells, Cell{Col: p.X + c, Row: p.Y + r, Coin: p.Coins[r][c]})
		}
	}
	return cells
}

// Rotated returns a copy of p in its clockwise-rotated orientation at the
// same anchor.
func (p Piece) Rotated() Piece {
	p.Orientation = p.Orientation.Rotate()
	return p
}

// Moved returns a copy of p shifted by dx columns and dy rows.
func (p Piece) Moved(dx, dy int) Piece {
	p.X += dx
	p.Y += dy
	return p
}
