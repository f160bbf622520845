package grid

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var jet = [][]int{{1, 1, 0, 0, 0, 1, 1}, {0, 1, 1, 1, 1, 1, 0}, {0, 0, 1, 1, 1, 0, 0}, {0, 0, 0, 1, 0, 0, 0}}

func TestNewTemplate_ColumnMajor(t *testing.T) {
	tmpl, err := NewTemplate("jet", "exploding jet", jet)
	require.NoError(t, err)
	assert.Equal(t, "jet", tmpl.Name())
	assert.Equal(t, "exploding jet", tmpl.Descr())
	assert.Equal(t, 4, tmpl.Cols())
	assert.Equal(t, 7, tmpl.Rows())
	for col := range jet {
		for row := range jet[col] {
			assert.Equal(t, jet[col][row] == 1, tmpl.At(col, row), "cell %d,%d", col, row)
		}
	}
	assert.False(t, tmpl.At(4, 0))
	assert.False(t, tmpl.At(-1, 0))
}

func TestNewTemplate_Invalid(t *testing.T) {
	cases := map[string][][]int{
		"empty":        {},
		"empty column": {{}},
		"ragged":       {{1, 0}, {1}},
		"bad value":    {{1, 2}},
	}
	for name, data := range cases {
		_, err := NewTemplate(name, "", data)
		assert.True(t, errors.Is(err, ErrInvalidConfiguration), name)
	}
}

func TestNewTemplate_CopiesInput(t *testing.T) {
	data := [][]int{{1, 0}, {0, 1}}
	tmpl, err := NewTemplate("diag", "", data)
	require.NoError(t, err)
	data[0][0] = 0
	assert.True(t, tmpl.At(0, 0))
}

func TestInsertTemplate_ReadBack(t *testing.T) {
	g, err := CreateBlank(10, 10)
	require.NoError(t, err)
	tmpl := MustTemplate("jet", "", jet)

	require.NoError(t, InsertTemplate(g, tmpl, 3, 2))
	for i := 0; i < tmpl.Cols(); i++ {
		for j := 0; j < tmpl.Rows(); j++ {
			alive, err := g.Cell(Coordinate{Col: 3 + i, Row: 2 + j})
			require.NoError(t, err)
			assert.Equal(t, tmpl.At(i, j), alive, "template cell %d,%d", i, j)
		}
	}
}

func TestInsertTemplate_Overwrites(t *testing.T) {
	g, err := CreateBlank(3, 3)
	require.NoError(t, err)
	for col := range g.Cells {
		for row := range g.Cells[col] {
			g.Cells[col][row] = true
		}
	}
	plane := MustTemplate("plane", "", [][]int{{0, 0, 1}, {1, 0, 1}, {0, 1, 1}})
	require.NoError(t, InsertTemplate(g, plane, 0, 0))
	assert.Equal(t, ".#.\n..#\n###", g.String())
}

func TestInsertTemplate_RejectsOutOfBounds(t *testing.T) {
	tmpl := MustTemplate("jet", "", jet)
	for _, origin := range []Coordinate{{Col: 7, Row: 0}, {Col: 0, Row: 4}, {Col: -1, Row: 0}, {Col: 0, Row: -1}, {Col: 10, Row: 10}} {
		g, err := CreateBlank(10, 10)
		require.NoError(t, err)
		require.NoError(t, g.SetCell(Coordinate{Col: 9, Row: 9}, true))
		before := g.Clone()

		err = InsertTemplate(g, tmpl, origin.Col, origin.Row)
		assert.True(t, errors.Is(err, ErrOutOfBounds), "origin %v", origin)
		assert.True(t, before.Equal(g), "grid changed for origin %v", origin)
	}
}

func TestInsertTemplate_ExactFit(t *testing.T) {
	g, err := CreateBlank(4, 7)
	require.NoError(t, err)
	assert.NoError(t, InsertTemplate(g, MustTemplate("jet", "", jet), 0, 0))
}
