package view

import (
	"bytes"
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/jroimartin/gocui"
	"github.com/logrusorgru/aurora"
	"github.com/nsf/termbox-go"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"lifeboard/src/catalog"
	"lifeboard/src/grid"
	"lifeboard/src/interaction"
	"lifeboard/src/universe"
)

const (
	boardView  = "board"
	statusView = "status"
	configView = "configuration"
	helpView   = "help"
	headerView = "header"
)

type keyBindings struct {
	key      interface{}
	mod      gocui.Modifier
	name     string
	descr    string
	handler  func(v *gocui.View) error
	viewName string
}

//ConsoleUI is the interactive terminal front end: one character per cell,
//mouse press/drag/release edit the board through the interaction controller
type ConsoleUI struct {
	ctx     context.Context
	b       *universe.Board
	p       *universe.Player
	ctl     *interaction.Controller
	catalog *catalog.Catalog
	details map[string]interface{}
	g       *gocui.Gui
	k       []keyBindings

	liveFiller string
	deadFiller string
	notice     string
}

var (
	runningStateDescr = map[universe.RunningState]string{
		universe.RunningStateManual:   aurora.Colorize("paused", aurora.BlueFg).String(),
		universe.RunningStateStep:     "do the step",
		universe.RunningStateRun:      aurora.Colorize("running", aurora.CyanFg).String(),
		universe.RunningStateFinished: aurora.Colorize("finished", aurora.RedFg).String(),
	}
)

//NewConsoleUI creates the terminal front end and registers it as a board viewer.
//details are shown in the configuration panel
func NewConsoleUI(ctx context.Context, b *universe.Board, p *universe.Player, cat *catalog.Catalog, details map[string]interface{}) (*ConsoleUI, error) {
	var err error
	t := ConsoleUI{
		ctx:        ctx,
		b:          b,
		p:          p,
		ctl:        interaction.NewController(b),
		catalog:    cat,
		details:    details,
		liveFiller: aurora.Green("█").BgBrightGreen().String(),
		deadFiller: "░",
	}

	t.g, err = gocui.NewGui(gocui.OutputNormal)
	if err != nil {
		return nil, errors.Wrap(err, "[NewConsoleUI] failed to init the terminal")
	}

	t.g.Mouse = true
	t.k = []keyBindings{
		{key: gocui.KeyCtrlC, name: "^C", descr: "Exit", handler: t.cmdQuit},
		{key: 'q', name: "Q", descr: "Exit", handler: t.cmdQuit},
		{key: 'n', name: "N", descr: "Next step", handler: t.cmdNextRound},
		{key: gocui.KeySpace, name: "SPACE", descr: "Play/Pause", handler: t.cmdPlayPause},
		{key: 'c', name: "C", descr: "Clear", handler: t.cmdClear},
		{key: 'w', name: "W", descr: "Settle with random", handler: t.cmdSettleWithRandom},
	}
	for i, e := range cat.Entries() {
		if i >= 9 {
			logrus.Warnf("template %q has no key, only 9 templates are bound", e.Template.Name())
			continue
		}
		entry := e
		key := rune('1' + i)
		t.k = append(t.k, keyBindings{
			key:     key,
			name:    string(key),
			descr:   entry.Template.Name(),
			handler: func(_ *gocui.View) error { return t.cmdInsert(entry) },
		})
	}
	//mouse events are bound globally so leaving the board can be noticed
	t.k = append(t.k,
		keyBindings{key: gocui.MouseLeft, name: "MOUSE", descr: "Click: flip a cell, drag: paint", handler: t.cmdMouseDown},
		keyBindings{key: gocui.MouseLeft, mod: gocui.Modifier(termbox.ModMotion), handler: t.cmdMouseMove},
		keyBindings{key: gocui.MouseRelease, handler: t.cmdMouseUp},
	)
	t.g.SetManagerFunc(t.layout)

	if err = t.initKeyBindings(t.k); err != nil {
		t.g.Close()
		return nil, err
	}
	b.RegisterViewer(&t)
	return &t, nil
}

func (t *ConsoleUI) initKeyBindings(k []keyBindings) error {
	for _, kb := range k {
		h := kb.handler
		if err := t.g.SetKeybinding(kb.viewName, kb.key, kb.mod, func(gui *gocui.Gui, view *gocui.View) error { return h(view) }); err != nil {
			return errors.Wrapf(err, "[initKeyBindings] key %v", kb.name)
		}
	}
	return nil
}

//Start runs the terminal main loop until the user quits
func (t *ConsoleUI) Start() error {
	defer t.g.Close()
	if err := t.g.MainLoop(); err != nil && err != gocui.ErrQuit {
		return errors.Wrap(err, "[ConsoleUI.Start] main loop")
	}
	return nil
}

func (t *ConsoleUI) Refresh() {
	t.renderField(t.b.Snapshot())
	t.renderStatus()
}

func (t *ConsoleUI) renderField(a *grid.Grid) {

	t.g.Update(func(g *gocui.Gui) error {
		v, e := g.View(boardView)
		if e != nil {
			//not laid out yet
			return nil
		}
		//the entire field is redrawn at once
		v.Clear()

		crop := false
		maxW, maxH := v.Size()
		if a.Cols() > maxW || a.Rows() > maxH {
			crop = true
		}

		var b bytes.Buffer
		for row := 0; row < a.Rows(); row++ {
			//discard the data outside the view area
			if row >= maxH {
				break
			}
			if row != 0 {
				b.WriteByte('\n')
			}
			if crop && row == (maxH-1) {
				b.WriteString(aurora.Red("The board is larger than the viewing area").BgBlack().String())
				break
			}
			for col := 0; col < a.Cols() && col < maxW; col++ {
				if a.Cells[col][row] {
					b.WriteString(t.liveFiller)
				} else {
					b.WriteString(t.deadFiller)
				}
			}
		}
		_, _ = fmt.Fprint(v, b.String())
		return nil
	})
}

func (t *ConsoleUI) renderStatus() {
	s := t.b.Status()
	//the controller and the notice are owned by the main loop, read them there
	t.g.Update(func(g *gocui.Gui) error {
		drag := t.ctl.State().String()
		notice := t.notice
		if v, e := g.View(statusView); e == nil {
			v.Clear()
			_, _ = fmt.Fprintln(v, t.renderProp("Generation", "%v", s.Generation))
			_, _ = fmt.Fprintln(v, t.renderProp("Live Cells", "%v", s.LiveCells))
			_, _ = fmt.Fprintln(v, t.renderProp("Evaluation time", "%v", s.IterationTime.Round(time.Microsecond)))
			_, _ = fmt.Fprintln(v, t.renderProp("Mode", "%v", runningStateDescr[s.RunningMode]))
			_, _ = fmt.Fprintln(v, t.renderProp("Pointer", "%v", drag))
			if notice != "" {
				_, _ = fmt.Fprintln(v, " "+aurora.Red(notice).String())
			}
		}
		return nil
	})
}

func (t *ConsoleUI) renderConfiguration() {
	//it needs to call Update when calls from goroutine
	t.g.Update(func(g *gocui.Gui) error {
		geo := t.b.Geometry()
		if v, e := g.View(configView); e == nil {
			v.Clear()
			_, _ = fmt.Fprintln(v, t.renderProp("Dimension", "%v x %v", geo.Cols, geo.Rows))
			for _, k := range sortedKeys(t.details) {
				_, _ = fmt.Fprintln(v, t.renderProp(k, "%v", t.details[k]))
			}
		}
		return nil
	})
}

func (t *ConsoleUI) renderProp(name string, valueformat string, values ...interface{}) string {
	return fmt.Sprintf(" "+aurora.Colorize(name, aurora.GreenFg).String()+": "+valueformat, values...)
}

func (t *ConsoleUI) layout(g *gocui.Gui) error {

	maxX, maxY := g.Size()
	leftColumnWidth := 28
	minWindowHeight := 20

	if maxY < minWindowHeight {
		if _, err := t.headerLayout(g, maxY, "Terminal height too small"); err != nil {
			if err != gocui.ErrUnknownView {
				return err
			}
		}
		_ = g.DeleteView(configView)
		_ = g.DeleteView(statusView)
		_ = g.DeleteView(boardView)
		return nil
	}
	if _, err := t.headerLayout(g, 3, "Conway's Game of Life"); err != nil {
		if err != gocui.ErrUnknownView {
			return err
		}
	}

	if v, err := g.SetView(configView, 0, 3, leftColumnWidth, 3+(maxY-5-3)/2); err != nil {
		if err != gocui.ErrUnknownView || v == nil {
			return err
		}
		v.Title = "Configuration"
		v.Frame = true
		t.renderConfiguration()
	}

	if v, err := g.SetView(statusView, 0, 3+(maxY-5-3)/2+1, leftColumnWidth, maxY-5); err != nil {
		if err != gocui.ErrUnknownView || v == nil {
			return err
		}
		v.Title = "Status"
		v.Frame = true
		t.renderStatus()
	}

	if v, err := g.SetView(boardView, leftColumnWidth+1, 3, maxX-1, maxY-5); err != nil {
		if err != gocui.ErrUnknownView || v == nil {
			return err
		}
		v.Title = "Board"
		v.Frame = true
		t.renderField(t.b.Snapshot())
	}

	if v, err := g.SetView(helpView, -1, maxY-5, maxX, maxY-3); err != nil {
		if err != gocui.ErrUnknownView || v == nil {
			return err
		}
		v.Frame = false
		b := bytes.Buffer{}
		b.WriteString("KEYBINDINGS: ")
		first := true
		for _, k := range t.k {
			if k.descr == "" {
				continue
			}
			if !first {
				b.WriteString(", ")
			}
			first = false
			b.WriteString(aurora.Green(k.name).String())
			b.WriteString(": ")
			b.WriteString(k.descr)
		}
		_, _ = fmt.Fprintln(v, b.String())
	}

	return nil
}

func (t *ConsoleUI) headerLayout(g *gocui.Gui, height int, text string) (v *gocui.View, err error) {
	maxX, _ := g.Size()
	if v, err = g.SetView(headerView, -1, -1, maxX+1, height); err != nil {
		if err == gocui.ErrUnknownView && v != nil {
			v.Frame = false
			v.BgColor = gocui.ColorCyan
			v.FgColor = gocui.ColorBlack
		}
	}
	if v != nil {
		v.Clear()
		pad := 0
		if maxX > len(text) {
			pad = (maxX - len(text)) / 2
		}
		_, _ = fmt.Fprintln(v, strings.Repeat("\n", height/2+1)+strings.Repeat(" ", pad)+text)
	}
	return
}

//setNotice shows a message in the status panel until the next successful edit
func (t *ConsoleUI) setNotice(format string, args ...interface{}) {
	t.notice = fmt.Sprintf(format, args...)
	t.renderStatus()
}

func (t *ConsoleUI) cmdQuit(_ *gocui.View) error {
	t.p.Pause()
	return gocui.ErrQuit
}

func (t *ConsoleUI) cmdNextRound(_ *gocui.View) error {
	if !t.b.Step() {
		t.setNotice("step still in flight")
	}
	return nil
}

func (t *ConsoleUI) cmdPlayPause(_ *gocui.View) error {
	t.p.Toggle(t.ctx)
	return nil
}

func (t *ConsoleUI) cmdClear(_ *gocui.View) error {
	t.notice = ""
	t.b.Reset()
	return nil
}

func (t *ConsoleUI) cmdSettleWithRandom(_ *gocui.View) error {
	t.notice = ""
	t.b.Randomize()
	return nil
}

func (t *ConsoleUI) cmdInsert(e catalog.Entry) error {
	if err := t.b.InsertEntry(e); err != nil {
		logrus.Warnf("template %q not inserted: %v", e.Template.Name(), err)
		t.setNotice("%s does not fit at %d,%d", e.Template.Name(), e.Origin.Col, e.Origin.Row)
		return nil
	}
	t.notice = ""
	return nil
}

//cellUnder returns the board cell under the cursor of the board view
func (t *ConsoleUI) cellUnder(v *gocui.View) (grid.Coordinate, bool) {
	if v == nil || v.Name() != boardView {
		return grid.Coordinate{}, false
	}
	cx, cy := v.Cursor()
	ox, oy := v.Origin()
	return grid.Coordinate{Col: cx + ox, Row: cy + oy}, true
}

func (t *ConsoleUI) cmdMouseDown(v *gocui.View) error {
	c, ok := t.cellUnder(v)
	if !ok {
		t.ctl.PointerLeave()
		return nil
	}
	if err := t.ctl.PointerDown(c); err != nil {
		logrus.Debugf("press ignored: %v", err)
	}
	t.renderStatus()
	return nil
}

func (t *ConsoleUI) cmdMouseMove(v *gocui.View) error {
	c, ok := t.cellUnder(v)
	if !ok {
		if t.ctl.State() == interaction.Dragging {
			t.ctl.PointerLeave()
			t.renderStatus()
		}
		return nil
	}
	if err := t.ctl.PointerMove(c); err != nil {
		logrus.Warnf("drag: %v", err)
	}
	return nil
}

func (t *ConsoleUI) cmdMouseUp(v *gocui.View) error {
	c, ok := t.cellUnder(v)
	if !ok {
		t.ctl.PointerLeave()
	} else if err := t.ctl.PointerUp(c); err != nil {
		logrus.Warnf("release: %v", err)
	}
	t.renderStatus()
	return nil
}

func sortedKeys(d map[string]interface{}) []string {
	keys := make([]string, 0, len(d))
	for k := range d {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
