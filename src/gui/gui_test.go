package gui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPalette(t *testing.T) {
	dark := NewPalette(true)
	light := NewPalette(false)
	assert.Equal(t, uint8(0), dark.Background.R)
	assert.Equal(t, uint8(0xff), light.Background.R)
	assert.NotEqual(t, dark.Cell, light.Cell)
	for _, p := range []Palette{dark, light} {
		assert.Equal(t, uint8(0xff), p.Cell.A)
		assert.Equal(t, uint8(0xff), p.Grid.A)
	}
}
