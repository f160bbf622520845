package view

import (
	"fmt"
	"io"
	"sync"
	"time"

	"lifeboard/src/universe"
)

//ConsoleOut reports the progress of a non-interactive run
type ConsoleOut struct {
	b         *universe.Board
	w         io.Writer
	every     int
	startTime time.Time

	mu          sync.Mutex
	lastPrinted int
}

//NewConsoleOut creates the reporter, progress is printed every `every` generations
func NewConsoleOut(w io.Writer, b *universe.Board, every int) *ConsoleOut {
	if every <= 0 {
		every = 10
	}
	return &ConsoleOut{b: b, w: w, every: every}
}

func (c *ConsoleOut) Refresh() {
	st := c.b.Status()
	if st.RunningMode != universe.RunningStateRun {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if st.Generation%c.every == 0 && st.Generation != c.lastPrinted {
		c.lastPrinted = st.Generation
		_, _ = fmt.Fprintf(c.w, "  Generation: %v, live cells: %v\n", st.Generation, st.LiveCells)
	}
}

//Start prints the running configuration
func (c *ConsoleOut) Start(details map[string]interface{}) {
	c.startTime = time.Now()
	g := c.b.Geometry()
	_, _ = fmt.Fprintln(c.w, "Running configuration:")
	_, _ = fmt.Fprintf(c.w, "  Dimension: %v x %v\n", g.Cols, g.Rows)
	c.printHashData(details)
	_, _ = fmt.Fprintln(c.w, "\nSimulation started...")
}

//Finish prints the final status
func (c *ConsoleOut) Finish(st universe.Status) {
	totalTime := time.Since(c.startTime).Round(time.Millisecond)
	resultData := map[string]interface{}{
		"Last generation": st.Generation,
		"Total time":      totalTime,
		"Live cells":      st.LiveCells,
		"Mode":            st.RunningMode,
	}
	_, _ = fmt.Fprintln(c.w, "\nFinished:")
	c.printHashData(resultData)
}

func (c *ConsoleOut) printHashData(d map[string]interface{}) {
	for _, propName := range sortedKeys(d) {
		_, _ = fmt.Fprintf(c.w, "  %s: %v\n", propName, d[propName])
	}
}
