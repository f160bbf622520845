package grid

import (
	"github.com/pkg/errors"
)

//Template is an immutable column-major pattern which can be stamped onto a grid
type Template struct {
	name  string
	descr string
	cells [][]Cell
}

//NewTemplate builds a template from a column-major matrix of 0/1 values: data[col][row].
//The matrix must be non-empty and rectangular
func NewTemplate(name string, descr string, data [][]int) (Template, error) {
	if len(data) == 0 || len(data[0]) == 0 {
		return Template{}, errors.Wrapf(ErrInvalidConfiguration, "template %q is empty", name)
	}
	rows := len(data[0])
	cells := make([][]Cell, len(data))
	for col, column := range data {
		if len(column) != rows {
			return Template{}, errors.Wrapf(ErrInvalidConfiguration,
				"template %q column %d has %d rows, expected %d", name, col, len(column), rows)
		}
		cells[col] = make([]Cell, rows)
		for row, v := range column {
			switch v {
			case 0:
			case 1:
				cells[col][row] = true
			default:
				return Template{}, errors.Wrapf(ErrInvalidConfiguration,
					"template %q cell %d,%d has value %d", name, col, row, v)
			}
		}
	}
	return Template{name: name, descr: descr, cells: cells}, nil
}

//MustTemplate is NewTemplate for static data, it panics on error
func MustTemplate(name string, descr string, data [][]int) Template {
	t, err := NewTemplate(name, descr, data)
	if err != nil {
		panic(err)
	}
	return t
}

func (t Template) Name() string { return t.name }

func (t Template) Descr() string { return t.descr }

func (t Template) Cols() int { return len(t.cells) }

func (t Template) Rows() int {
	if len(t.cells) == 0 {
		return 0
	}
	return len(t.cells[0])
}

//At returns the template cell at col,row; indexes outside the template read as dead
func (t Template) At(col int, row int) bool {
	if col < 0 || row < 0 || col >= t.Cols() || row >= t.Rows() {
		return false
	}
	return bool(t.cells[col][row])
}

//InsertTemplate writes the template over the grid with its top left corner at originCol,originRow.
//Existing cells are overwritten, dead template cells kill live grid cells.
//A placement that doesn't fit entirely is rejected with ErrOutOfBounds and the grid stays untouched
func InsertTemplate(g *Grid, t Template, originCol int, originRow int) error {
	if originCol < 0 || originRow < 0 || originCol+t.Cols() > g.cols || originRow+t.Rows() > g.rows {
		return errors.Wrapf(ErrOutOfBounds, "template %q (%dx%d) at %d,%d on %dx%d grid",
			t.name, t.Cols(), t.Rows(), originCol, originRow, g.cols, g.rows)
	}
	for i := range t.cells {
		copy(g.Cells[originCol+i][originRow:originRow+t.Rows()], t.cells[i])
	}
	return nil
}
