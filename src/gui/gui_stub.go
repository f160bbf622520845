//go:build !ebiten

package gui

import (
	"context"

	"github.com/pkg/errors"

	"lifeboard/src/catalog"
	"lifeboard/src/universe"
)

//ErrNoGUI is returned by Run in builds without the ebiten tag
var ErrNoGUI = errors.New("the pixel front end requires building with the 'ebiten' tag")

//Run reports that the GUI build tag is missing
func Run(context.Context, *universe.Board, *universe.Player, *catalog.Catalog, bool) error {
	return ErrNoGUI
}
