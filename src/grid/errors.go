package grid

import "github.com/pkg/errors"

var (
	//ErrOutOfBounds is returned when a coordinate or a template placement falls outside the grid
	ErrOutOfBounds = errors.New("out of bounds")
	//ErrInvalidConfiguration is returned when a grid or a board can't be built from the given dimensions
	ErrInvalidConfiguration = errors.New("invalid configuration")
)
