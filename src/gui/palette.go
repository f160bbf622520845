package gui

import "image/color"

//Palette holds the colors of the pixel front end
type Palette struct {
	Background color.RGBA
	Cell       color.RGBA
	Grid       color.RGBA
}

//NewPalette returns the dark or the light color scheme
func NewPalette(dark bool) Palette {
	if dark {
		return Palette{
			Background: color.RGBA{R: 0x00, G: 0x00, B: 0x00, A: 0xff},
			Cell:       color.RGBA{R: 0x84, G: 0xc1, B: 0xff, A: 0xff},
			Grid:       color.RGBA{R: 0x80, G: 0x80, B: 0x80, A: 0xff},
		}
	}
	return Palette{
		Background: color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff},
		Cell:       color.RGBA{R: 0x93, G: 0xc4, B: 0xff, A: 0xff},
		Grid:       color.RGBA{R: 0xcc, G: 0xcc, B: 0xcc, A: 0xff},
	}
}
