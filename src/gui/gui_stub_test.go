//go:build !ebiten

package gui

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lifeboard/src/catalog"
	"lifeboard/src/universe"
)

func TestRun_WithoutTag(t *testing.T) {
	b, err := universe.NewBoard(universe.Options{Width: 30, Height: 30, Cols: 3})
	require.NoError(t, err)
	err = Run(context.Background(), b, universe.NewPlayer(b, universe.PlayerOptions{}), catalog.Default(), true)
	assert.True(t, errors.Is(err, ErrNoGUI))
}
