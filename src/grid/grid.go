package grid

import (
	"strings"

	"github.com/pkg/errors"
)

type Cell bool

//Coordinate addresses one cell, Col is the horizontal index and Row the vertical one
type Coordinate struct {
	Col int
	Row int
}

//Grid is a fixed size column-major matrix of cells.
//Cells[col][row]; all columns share one backing slice so the flat index is col*rows+row
type Grid struct {
	cols  int
	rows  int
	Cells [][]Cell
}

//CreateBlank allocates a grid with all cells dead
func CreateBlank(cols int, rows int) (*Grid, error) {
	if cols <= 0 || rows <= 0 {
		return nil, errors.Wrapf(ErrInvalidConfiguration, "grid dimensions %dx%d", cols, rows)
	}
	return createGrid(cols, rows), nil
}

//createGrid allocates the grid without validating the dimensions
func createGrid(cols int, rows int) *Grid {
	g := &Grid{cols: cols, rows: rows, Cells: make([][]Cell, cols)}
	b := make([]Cell, cols*rows)
	for i := range g.Cells {
		start := rows * i
		g.Cells[i] = b[start : start+rows : start+rows]
	}
	return g
}

func (g *Grid) Cols() int { return g.cols }

func (g *Grid) Rows() int { return g.rows }

//Contains reports whether the coordinate lies inside the grid
func (g *Grid) Contains(c Coordinate) bool {
	return c.Col >= 0 && c.Row >= 0 && c.Col < g.cols && c.Row < g.rows
}

//Cell returns the state of the cell at c
func (g *Grid) Cell(c Coordinate) (bool, error) {
	if !g.Contains(c) {
		return false, errors.Wrapf(ErrOutOfBounds, "cell %d,%d on %dx%d grid", c.Col, c.Row, g.cols, g.rows)
	}
	return bool(g.Cells[c.Col][c.Row]), nil
}

//SetCell writes the state of the cell at c
func (g *Grid) SetCell(c Coordinate, alive bool) error {
	if !g.Contains(c) {
		return errors.Wrapf(ErrOutOfBounds, "cell %d,%d on %dx%d grid", c.Col, c.Row, g.cols, g.rows)
	}
	g.Cells[c.Col][c.Row] = Cell(alive)
	return nil
}

//ToggleCell inverts the cell at c and returns its new state
func (g *Grid) ToggleCell(c Coordinate) (bool, error) {
	if !g.Contains(c) {
		return false, errors.Wrapf(ErrOutOfBounds, "cell %d,%d on %dx%d grid", c.Col, c.Row, g.cols, g.rows)
	}
	g.Cells[c.Col][c.Row] = !g.Cells[c.Col][c.Row]
	return bool(g.Cells[c.Col][c.Row]), nil
}

//LiveCells counts the cells which are alive
func (g *Grid) LiveCells() (n int) {
	g.walk(func(_ int, _ int, e Cell) {
		if e {
			n++
		}
	})
	return
}

//Clone returns a deep copy
func (g *Grid) Clone() *Grid {
	c := createGrid(g.cols, g.rows)
	for col := range g.Cells {
		copy(c.Cells[col], g.Cells[col])
	}
	return c
}

//Equal reports whether both grids have the same dimensions and content
func (g *Grid) Equal(o *Grid) bool {
	if o == nil || g.cols != o.cols || g.rows != o.rows {
		return false
	}
	for col := range g.Cells {
		for row := range g.Cells[col] {
			if g.Cells[col][row] != o.Cells[col][row] {
				return false
			}
		}
	}
	return true
}

//String dumps the grid row by row, '#' for live cells and '.' for dead ones
func (g *Grid) String() string {
	var b strings.Builder
	b.Grow((g.cols + 1) * g.rows)
	for row := 0; row < g.rows; row++ {
		if row != 0 {
			b.WriteByte('\n')
		}
		for col := 0; col < g.cols; col++ {
			if g.Cells[col][row] {
				b.WriteByte('#')
			} else {
				b.WriteByte('.')
			}
		}
	}
	return b.String()
}

//walk calls cb for every cell, column by column
func (g *Grid) walk(cb func(col int, row int, e Cell)) {
	for col := range g.Cells {
		for row := range g.Cells[col] {
			cb(col, row, g.Cells[col][row])
		}
	}
}
