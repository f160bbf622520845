package grid

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateBlank(t *testing.T) {
	g, err := CreateBlank(4, 3)
	require.NoError(t, err)
	assert.Equal(t, 4, g.Cols())
	assert.Equal(t, 3, g.Rows())
	assert.Len(t, g.Cells, 4)
	for col := range g.Cells {
		assert.Len(t, g.Cells[col], 3)
	}
	assert.Equal(t, 0, g.LiveCells())
}

func TestCreateBlank_InvalidDimensions(t *testing.T) {
	for _, dims := range [][2]int{{0, 3}, {3, 0}, {-1, 5}, {5, -2}} {
		g, err := CreateBlank(dims[0], dims[1])
		assert.Nil(t, g)
		assert.True(t, errors.Is(err, ErrInvalidConfiguration), "dims %v: %v", dims, err)
	}
}

func TestGrid_ColumnMajorLayout(t *testing.T) {
	g, err := CreateBlank(3, 2)
	require.NoError(t, err)
	require.NoError(t, g.SetCell(Coordinate{Col: 2, Row: 1}, true))

	assert.True(t, bool(g.Cells[2][1]))
	assert.Equal(t, "...\n..#", g.String())
}

func TestGrid_CellAccessOutOfBounds(t *testing.T) {
	g, err := CreateBlank(3, 3)
	require.NoError(t, err)

	for _, c := range []Coordinate{{Col: -1, Row: 0}, {Col: 0, Row: -1}, {Col: 3, Row: 0}, {Col: 0, Row: 3}} {
		_, err := g.Cell(c)
		assert.True(t, errors.Is(err, ErrOutOfBounds), "cell %v", c)
		assert.True(t, errors.Is(g.SetCell(c, true), ErrOutOfBounds), "set %v", c)
		_, err = g.ToggleCell(c)
		assert.True(t, errors.Is(err, ErrOutOfBounds), "toggle %v", c)
	}
	assert.Equal(t, 0, g.LiveCells())
}

func TestGrid_ToggleCell(t *testing.T) {
	g, err := CreateBlank(2, 2)
	require.NoError(t, err)
	c := Coordinate{Col: 1, Row: 0}

	alive, err := g.ToggleCell(c)
	require.NoError(t, err)
	assert.True(t, alive)

	alive, err = g.ToggleCell(c)
	require.NoError(t, err)
	assert.False(t, alive)
}

func TestGrid_CloneIsIndependent(t *testing.T) {
	g, err := CreateBlank(3, 3)
	require.NoError(t, err)
	require.NoError(t, g.SetCell(Coordinate{Col: 1, Row: 1}, true))

	c := g.Clone()
	assert.True(t, g.Equal(c))

	require.NoError(t, c.SetCell(Coordinate{Col: 0, Row: 0}, true))
	assert.False(t, g.Equal(c))
	alive, _ := g.Cell(Coordinate{Col: 0, Row: 0})
	assert.False(t, alive)
}

func TestGrid_EqualDimensions(t *testing.T) {
	a, _ := CreateBlank(2, 3)
	b, _ := CreateBlank(3, 2)
	assert.False(t, a.Equal(b))
	assert.False(t, a.Equal(nil))
}
