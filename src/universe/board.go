package universe

import (
	"math"
	"math/rand/v2"
	"sync"
	"sync/atomic"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"lifeboard/src/catalog"
	"lifeboard/src/grid"
)

//Options represents the Board's configurable options
type Options struct {
	Width   float64 //physical width of the drawing surface
	Height  float64 //physical height of the drawing surface
	Cols    int
	Seed    int64 //randomization seed, 0 picks a time based one
	Workers int   //workers computing one step, 0 or 1 computes it on the calling goroutine
}

//Geometry describes how the grid maps onto the drawing surface
type Geometry struct {
	Width    float64
	Height   float64
	CellSize float64
	Cols     int
	Rows     int
}

//Status represents the status of the Board at concrete moment
type Status struct {
	Generation    int
	RunningMode   RunningState
	LiveCells     int
	Changed       bool //the last step changed at least one cell
	IterationTime time.Duration
}

//The board running status at the concrete moment
type RunningState int

const (
	RunningStateManual RunningState = iota
	RunningStateStep
	RunningStateRun
	RunningStateFinished
)

func (s RunningState) String() string {
	switch s {
	case RunningStateManual:
		return "waiting"
	case RunningStateStep:
		return "stepping"
	case RunningStateRun:
		return "running"
	case RunningStateFinished:
		return "finished"
	}
	return "unknown"
}

//Board owns one grid and the generation counter.
//All reads and writes of the grid go through the board; Step replaces the grid as a whole.
//Locks are taken in the order area, state
type Board struct {
	geometry Geometry
	workers  int
	rng      *rand.Rand

	state struct {
		Status
		sync.Mutex
	}
	area struct {
		g *grid.Grid
		sync.Mutex
	}
	stepping atomic.Bool
	views    struct {
		list []Viewer
		sync.Mutex
	}
}

//NewBoard creates the Board with a blank grid.
//cellSize = width / cols and rows = floor(height / cellSize)
func NewBoard(o Options) (*Board, error) {
	if o.Width <= 0 || o.Height <= 0 || o.Cols <= 0 {
		return nil, errors.Wrapf(grid.ErrInvalidConfiguration, "board %vx%v with %d cols", o.Width, o.Height, o.Cols)
	}
	cellSize := o.Width / float64(o.Cols)
	rows := int(math.Floor(o.Height / cellSize))
	g, err := grid.CreateBlank(o.Cols, rows)
	if err != nil {
		return nil, errors.Wrapf(err, "board %vx%v with %d cols", o.Width, o.Height, o.Cols)
	}

	seed := o.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	b := &Board{
		geometry: Geometry{Width: o.Width, Height: o.Height, CellSize: cellSize, Cols: o.Cols, Rows: rows},
		workers:  o.Workers,
		rng:      rand.New(rand.NewPCG(uint64(seed), 0)),
	}
	b.area.g = g
	b.state.Generation = 1
	logrus.Debugf("board created: %dx%d cells, cell size %.2f, seed %d", o.Cols, rows, cellSize, seed)
	return b, nil
}

//Geometry returns the grid dimensions and the cell size
func (b *Board) Geometry() Geometry {
	return b.geometry
}

//Status returns current board status represented by Status struct
func (b *Board) Status() Status {
	b.state.Lock()
	defer b.state.Unlock()
	return b.state.Status
}

//Generation returns the generation counter, it starts at 1
func (b *Board) Generation() int {
	return b.Status().Generation
}

//Snapshot returns a copy of the current grid which can be read without locking
func (b *Board) Snapshot() *grid.Grid {
	b.area.Lock()
	defer b.area.Unlock()
	return b.area.g.Clone()
}

//RegisterViewer registers the viewer - the board will call the viewer when the state is changed
func (b *Board) RegisterViewer(v Viewer) {
	b.views.Lock()
	b.views.list = append(b.views.list, v)
	b.views.Unlock()
}

//Step does one generation.
//It returns false without touching the grid when another step is still in flight
func (b *Board) Step() bool {
	if !b.stepping.CompareAndSwap(false, true) {
		logrus.Debug("step refused: previous step still in flight")
		return false
	}
	defer b.stepping.Store(false)

	b.area.Lock()
	start := time.Now()
	cur := b.area.g
	next := grid.StepParallel(cur, b.workers)
	b.area.g = next

	//the counter moves together with the grid, a Reset can't land in between
	b.state.Lock()
	b.state.Generation++
	b.state.LiveCells = next.LiveCells()
	b.state.Changed = !next.Equal(cur)
	b.state.IterationTime = time.Since(start)
	b.state.Unlock()
	b.area.Unlock()

	b.refreshView()
	return true
}

//Stepping reports whether a step is in flight
func (b *Board) Stepping() bool {
	return b.stepping.Load()
}

//Reset kills all cells and sets the generation counter back to 1
func (b *Board) Reset() {
	b.area.Lock()
	b.area.g = grid.Reset(b.area.g)
	b.state.Lock()
	b.state.Generation = 1
	b.state.LiveCells = 0
	b.state.Changed = false
	b.state.IterationTime = 0
	if b.state.RunningMode == RunningStateFinished {
		b.state.RunningMode = RunningStateManual
	}
	b.state.Unlock()
	b.area.Unlock()

	b.refreshView()
}

//Randomize sets every cell alive with probability 0.5, the generation counter is kept
func (b *Board) Randomize() {
	b.area.Lock()
	grid.Randomize(b.area.g, b.rng)
	b.area.Unlock()
	b.updateLiveCells()
	b.refreshView()
}

//InsertTemplate stamps the template with its top left corner at col,row.
//Placements which don't fit are rejected with grid.ErrOutOfBounds
func (b *Board) InsertTemplate(t grid.Template, col int, row int) error {
	b.area.Lock()
	err := grid.InsertTemplate(b.area.g, t, col, row)
	b.area.Unlock()
	if err != nil {
		return err
	}
	b.updateLiveCells()
	b.refreshView()
	return nil
}

//InsertEntry stamps a catalog entry at its default origin
func (b *Board) InsertEntry(e catalog.Entry) error {
	return b.InsertTemplate(e.Template, e.Origin.Col, e.Origin.Row)
}

//Cell returns the state of the cell
func (b *Board) Cell(c grid.Coordinate) (bool, error) {
	b.area.Lock()
	defer b.area.Unlock()
	return b.area.g.Cell(c)
}

//SetCell writes the cell
func (b *Board) SetCell(c grid.Coordinate, alive bool) error {
	b.area.Lock()
	err := b.area.g.SetCell(c, alive)
	b.area.Unlock()
	if err != nil {
		return err
	}
	b.updateLiveCells()
	b.refreshView()
	return nil
}

//ToggleCell inverses the cell state
func (b *Board) ToggleCell(c grid.Coordinate) (bool, error) {
	b.area.Lock()
	alive, err := b.area.g.ToggleCell(c)
	b.area.Unlock()
	if err != nil {
		return false, err
	}
	b.updateLiveCells()
	b.refreshView()
	return alive, nil
}

//PixelToCell maps a point of the drawing surface to the cell under it.
//Points outside the grid are rejected with grid.ErrOutOfBounds
func (b *Board) PixelToCell(x float64, y float64) (grid.Coordinate, error) {
	c := grid.Coordinate{
		Col: int(math.Floor(x / b.geometry.CellSize)),
		Row: int(math.Floor(y / b.geometry.CellSize)),
	}
	if x < 0 || y < 0 || c.Col >= b.geometry.Cols || c.Row >= b.geometry.Rows {
		return grid.Coordinate{}, errors.Wrapf(grid.ErrOutOfBounds, "pixel %.1f,%.1f", x, y)
	}
	return c, nil
}

//switchRunningState records the running mode reported by Status
func (b *Board) switchRunningState(to RunningState) {
	b.state.Lock()
	b.state.RunningMode = to
	b.state.Unlock()
}

//updateLiveCells recalculates the count of live cells after an edit
func (b *Board) updateLiveCells() {
	b.area.Lock()
	defer b.area.Unlock()
	b.state.Lock()
	b.state.LiveCells = b.area.g.LiveCells()
	b.state.Unlock()
}

//refreshView calls Refresh event for all registered views
func (b *Board) refreshView() {
	b.views.Lock()
	views := b.views.list
	b.views.Unlock()
	for _, v := range views {
		v.Refresh()
	}
}
