//go:build ebiten

package gui

import (
	"context"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/pkg/errors"

	"lifeboard/src/catalog"
	"lifeboard/src/universe"
)

var templateKeys = []ebiten.Key{
	ebiten.KeyDigit1, ebiten.KeyDigit2, ebiten.KeyDigit3,
	ebiten.KeyDigit4, ebiten.KeyDigit5, ebiten.KeyDigit6,
	ebiten.KeyDigit7, ebiten.KeyDigit8, ebiten.KeyDigit9,
}

//Game adapts a board to the ebiten.Game interface. The window has the board's
//physical size so cursor positions go straight through Board.PixelToCell
type Game struct {
	board  *universe.Board
	input  *input
	colors Palette
}

func New(ctx context.Context, b *universe.Board, p *universe.Player, cat *catalog.Catalog, dark bool) *Game {
	return &Game{
		board:  b,
		input:  newInput(ctx, b, p, cat),
		colors: NewPalette(dark),
	}
}

//Update reads the keyboard and the mouse, stepping is left to the player
func (g *Game) Update() error {
	if !g.input.apply(readFrame()) {
		return ebiten.Termination
	}
	return nil
}

func readFrame() frameInput {
	f := frameInput{
		quit:         inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape),
		playPause:    inpututil.IsKeyJustPressed(ebiten.KeySpace),
		step:         inpututil.IsKeyJustPressed(ebiten.KeyN),
		clear:        inpututil.IsKeyJustPressed(ebiten.KeyC),
		random:       inpututil.IsKeyJustPressed(ebiten.KeyW),
		justPressed:  inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft),
		justReleased: inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft),
		pressed:      ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
	}
	for i, k := range templateKeys {
		if inpututil.IsKeyJustPressed(k) {
			f.templates = append(f.templates, i)
		}
	}
	x, y := ebiten.CursorPosition()
	f.x, f.y = float64(x), float64(y)
	return f
}

//Draw paints live cells, then the outline of dead ones, then the generation counter
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(g.colors.Background)
	geo := g.board.Geometry()
	cs := float32(geo.CellSize)
	snap := g.board.Snapshot()
	for col := 0; col < snap.Cols(); col++ {
		for row := 0; row < snap.Rows(); row++ {
			x, y := float32(col)*cs, float32(row)*cs
			if snap.Cells[col][row] {
				vector.DrawFilledRect(screen, x, y, cs, cs, g.colors.Cell, false)
			} else {
				vector.StrokeRect(screen, x, y, cs, cs, 1, g.colors.Grid, false)
			}
		}
	}
	st := g.board.Status()
	ebitenutil.DebugPrint(screen, fmt.Sprintf("generation %d  %s", st.Generation, st.RunningMode))
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	geo := g.board.Geometry()
	return int(geo.Width), int(geo.Height)
}

//Run opens the window and blocks until it is closed
func Run(ctx context.Context, b *universe.Board, p *universe.Player, cat *catalog.Catalog, dark bool) error {
	game := New(ctx, b, p, cat, dark)
	geo := b.Geometry()
	ebiten.SetWindowTitle("lifeboard")
	ebiten.SetWindowSize(int(geo.Width), int(geo.Height))
	defer p.Pause()
	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}

var _ ebiten.Game = (*Game)(nil)
