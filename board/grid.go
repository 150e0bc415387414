// Package board implements the playfield: settled cells, collision queries,
// merging pieces and clearing full rows.
package board

import (
	"github.com/plus3/coinfall/coin"
	"github.com/plus3/coinfall/piece"
)

const (
	// DefaultRows is the playfield height in cells.
	DefaultRows = 20
	// DefaultCols is the playfield width in cells.
	DefaultCols = 10
)

// Cleared describes one cell removed by ClearFull.
type Cleared struct {
	Col, Row int
	Coin     coin.Type
}

// Grid is a fixed-size matrix of settled cells. Row 0 is the top.
type Grid struct {
	rows, cols int
	cells      [][]coin.Type
}

// NewGrid creates an empty grid.
func NewGrid(rows, cols int) *Grid {
	g := &Grid{rows: rows, cols: cols}
	g.Reset()
	return g
}

func (g *Grid) Rows() int { return g.rows }
func (g *Grid) Cols() int { return g.cols }

// Reset empties every cell.
func (g *Grid) Reset() {
	g.cells = make([][]coin.Type, g.rows)
	for r := range g.cells {
		g.cells[r] = make([]coin.Type, g.cols)
	}
}

// Cell returns the value at (row, col). Out-of-range coordinates read as empty.
func (g *Grid) Cell(row, col int) coin.Type {
	if !g.inBounds(row, col) {
		return coin.None
	}
	return g.cells[row][col]
}

// Set writes the value at (row, col). Out-of-range coordinates are ignored.
func (g *Grid) Set(row, col int, c coin.Type) {
	if !g.inBounds(row, col) {
		return
	}
	g.cells[row][col] = c
}

// Each calls fn for every occupied cell, top to bottom and left to right.
func (g *Grid) Each(fn func(row, col int, c coin.Type)) {
	for r, line := range g.cells {
		for c, v := range line {
			if !v.Empty() {
				fn(r, c, v)
			}
		}
	}
}

// Collides reports whether p, shifted by (dx, dy), leaves the grid through
// a side or the bottom, or overlaps a settled cell. Cells above row 0 are
// never out of bounds and never overlap.
func (g *Grid) Collides(p piece.Piece, dx, dy int) bool {
	for r, row := range p.Shape {
		for c, filled := range row {
			if !filled {
				continue
			}

			x := p.X + c + dx
			y := p.Y + r + dy

			if x < 0 || x >= g.cols || y >= g.rows {
				return true
			}

			if y >= 0 && !g.cells[y][x].Empty() {
				return true
			}
		}
	}

	return false
}

// Merge writes the tagged cells of p into the grid. The caller must ensure
// p does not collide at its current position.
func (g *Grid) Merge(p piece.Piece) {
	for _, cell := range p.Cells() {
		if cell.Coin.Empty() {
			continue
		}
		g.Set(cell.Row, cell.Col, cell.Coin)
	}
}

// Full reports whether every cell of the row is occupied.
func (g *Grid) Full(row int) bool {
	for _, v := range g.cells[row] {
		if v.Empty() {
			return false
		}
	}
	return true
}

// ClearFull removes every full row, shifting the rows above it down and
// inserting empty rows at the top. It reports the removed cells row by row
// from the bottom, each row left to right, with the row index the cell had
// when it was removed.
func (g *Grid) ClearFull() []Cleared {
	var cleared []Cleared

	row := g.rows - 1
	for row >= 0 {
		if !g.Full(row) {
			row--
			continue
		}

		for col, v := range g.cells[row] {
			cleared = append(cleared, Cleared{Col: col, Row: row, Coin: v})
		}
		g.removeRow(row)
		// rows above shifted into this index, so it is checked again
	}

	return cleared
}

func (g *Grid) removeRow(row int) {
	copy(g.cells[1:row+1], g.cells[:row])
	g.cells[0] = make([]coin.Type, g.cols)
}

func (g *Grid) inBounds(row, col int) bool {
	return row >= 0 && row < g.rows && col >= 0 && col < g.cols
}
