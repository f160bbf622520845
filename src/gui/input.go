package gui

import (
	"context"

	"github.com/sirupsen/logrus"

	"lifeboard/src/catalog"
	"lifeboard/src/interaction"
	"lifeboard/src/universe"
)

//frameInput is the keyboard and mouse state of one frame
type frameInput struct {
	quit      bool
	playPause bool
	step      bool
	clear     bool
	random    bool
	templates []int //catalog entries whose key was just pressed

	x, y         float64 //cursor position on the board surface
	justPressed  bool
	justReleased bool
	pressed      bool
}

//input applies frame input to the board, the player and the pointer controller
type input struct {
	ctx     context.Context
	board   *universe.Board
	player  *universe.Player
	ctl     *interaction.Controller
	entries []catalog.Entry

	over bool //the cursor was over the board on the previous frame
}

func newInput(ctx context.Context, b *universe.Board, p *universe.Player, cat *catalog.Catalog) *input {
	return &input{
		ctx:     ctx,
		board:   b,
		player:  p,
		ctl:     interaction.NewController(b),
		entries: cat.Entries(),
	}
}

//apply handles one frame, it returns false when the window should close
func (in *input) apply(f frameInput) bool {
	if f.quit {
		return false
	}
	if f.playPause {
		in.player.Toggle(in.ctx)
	}
	if f.step {
		in.board.Step()
	}
	if f.clear {
		in.board.Reset()
	}
	if f.random {
		in.board.Randomize()
	}
	for _, i := range f.templates {
		if i < 0 || i >= len(in.entries) {
			continue
		}
		if err := in.board.InsertEntry(in.entries[i]); err != nil {
			logrus.Warnf("template %q not inserted: %v", in.entries[i].Template.Name(), err)
		}
	}
	in.pointer(f)
	return true
}

//pointer maps the cursor to a cell and feeds the button state to the controller.
//Leaving the board surface ends the gesture
func (in *input) pointer(f frameInput) {
	c, err := in.board.PixelToCell(f.x, f.y)
	if err != nil {
		if in.over {
			in.ctl.PointerLeave()
		}
		in.over = false
		return
	}
	in.over = true
	switch {
	case f.justPressed:
		err = in.ctl.PointerDown(c)
	case f.justReleased:
		err = in.ctl.PointerUp(c)
	case f.pressed:
		err = in.ctl.PointerMove(c)
	}
	if err != nil {
		logrus.Debugf("pointer event ignored: %v", err)
	}
}
