package interaction

import (
	"github.com/sirupsen/logrus"

	"lifeboard/src/grid"
)

type State int

const (
	Idle State = iota
	Dragging
)

func (s State) String() string {
	if s == Dragging {
		return "dragging"
	}
	return "idle"
}

//Canvas is the cell storage the controller edits, universe.Board implements it
type Canvas interface {
	Cell(c grid.Coordinate) (bool, error)
	SetCell(c grid.Coordinate, alive bool) error
	ToggleCell(c grid.Coordinate) (bool, error)
}

//Controller turns a stream of pointer events into cell edits.
//A press and release on the same cell is a click and toggles the cell as it is at release.
//A press followed by movement over other cells is a drag and paints every visited cell,
//the anchor included, with the value chosen at press time.
//It is not safe for concurrent use, front ends feed it from their event loop
type Controller struct {
	canvas Canvas

	state       State
	anchor      grid.Coordinate
	lastPainted grid.Coordinate
	painted     bool //lastPainted is set
	leftAnchor  bool //the gesture visited a cell other than the anchor
	paintValue  bool
}

func NewController(canvas Canvas) *Controller {
	return &Controller{canvas: canvas}
}

func (c *Controller) State() State { return c.state }

//PaintValue is the value the current drag writes, meaningless while Idle
func (c *Controller) PaintValue() bool { return c.paintValue }

//PointerDown starts a gesture on at, a gesture in progress is abandoned.
//Out-of-bounds presses leave the controller Idle and return the lookup error
func (c *Controller) PointerDown(at grid.Coordinate) error {
	c.clear()
	alive, err := c.canvas.Cell(at)
	if err != nil {
		return err
	}
	c.state = Dragging
	c.anchor = at
	c.paintValue = !alive
	return nil
}

//PointerMove paints at with the gesture's paint value unless it was the last painted cell.
//The anchor is painted when the gesture first leaves it, until then the release may still be a click.
//Moves while Idle and moves outside the grid are ignored
func (c *Controller) PointerMove(at grid.Coordinate) error {
	if c.state != Dragging {
		return nil
	}
	if !c.leftAnchor && at == c.anchor {
		return nil
	}
	if c.painted && at == c.lastPainted {
		return nil
	}
	if _, err := c.canvas.Cell(at); err != nil {
		logrus.Debugf("drag outside the grid ignored: %v", err)
		return nil
	}
	if !c.leftAnchor {
		c.leftAnchor = true
		if err := c.paint(c.anchor); err != nil {
			return err
		}
	}
	return c.paint(at)
}

//PointerUp ends the gesture. Released on the anchor of a gesture that never left it,
//the anchor is toggled from its current state. A drag writes nothing more
func (c *Controller) PointerUp(at grid.Coordinate) error {
	defer c.clear()
	if c.state != Dragging || c.leftAnchor || at != c.anchor {
		return nil
	}
	_, err := c.canvas.ToggleCell(c.anchor)
	return err
}

//PointerLeave abandons the gesture without writing
func (c *Controller) PointerLeave() {
	c.clear()
}

func (c *Controller) paint(at grid.Coordinate) error {
	if err := c.canvas.SetCell(at, c.paintValue); err != nil {
		return err
	}
	c.lastPainted = at
	c.painted = true
	return nil
}

func (c *Controller) clear() {
	c.state = Idle
	c.anchor = grid.Coordinate{}
	c.lastPainted = grid.Coordinate{}
	c.painted = false
	c.leftAnchor = false
}
