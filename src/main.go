package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/integrii/flaggy"
	"github.com/sirupsen/logrus"

	"lifeboard/src/catalog"
	"lifeboard/src/config"
	"lifeboard/src/gui"
	"lifeboard/src/universe"
	"lifeboard/src/view"
)

//defHeadlessSteps bounds a non-interactive run which would otherwise never finish
const defHeadlessSteps = 1000

type EnvOptions struct {
	configPath  string
	interactive bool
	gui         bool
	randomData  bool
	template    string
	print       bool
}

//flagOverrides holds the command line values, only the flags present in given override the configuration
type flagOverrides struct {
	width, height  float64
	cols           int
	interval       time.Duration
	maxSteps       int
	workers        int
	seed           int64
	stopWhenStable bool
	logLevel       string
	logFile        string

	given map[string]bool //short and long names of the flags found on the command line
}

func main() {
	eo, cfg := initOptions()
	if err := setupLogging(cfg, eo.interactive || eo.gui); err != nil {
		logrus.Fatalf("logging setup: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		logrus.Fatalf("invalid configuration: %v", err)
	}

	cat, err := catalog.FromConfig(cfg)
	if err != nil {
		logrus.Fatalf("invalid templates: %v", err)
	}
	b, err := universe.NewBoard(universe.Options{
		Width:   cfg.Width,
		Height:  cfg.Height,
		Cols:    cfg.Cols,
		Seed:    cfg.Seed,
		Workers: cfg.Workers,
	})
	if err != nil {
		logrus.Fatalf("board: %v", err)
	}

	if eo.randomData {
		b.Randomize()
	}
	if eo.template != "" {
		e, ok := cat.Lookup(eo.template)
		if !ok {
			fmt.Fprintf(os.Stderr, "unknown template %s, known: %s\n", eo.template, strings.Join(cat.Names(), ", "))
			os.Exit(1)
		}
		if err := b.InsertEntry(e); err != nil {
			logrus.Fatalf("template %s: %v", eo.template, err)
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	po := universe.PlayerOptions{
		Interval:        cfg.Interval,
		MaxSteps:        cfg.MaxSteps,
		MaxSkippedTicks: cfg.MaxSkippedTicks,
		StopWhenStable:  cfg.StopWhenStable,
	}
	details := map[string]interface{}{
		"Interval":   cfg.Interval,
		"Max steps":  cfg.MaxSteps,
		"Workers":    cfg.Workers,
		"Cell size":  fmt.Sprintf("%.2f", b.Geometry().CellSize),
		"Templates":  len(cat.Names()),
		"Stop@still": cfg.StopWhenStable,
	}

	switch {
	case eo.gui:
		p := universe.NewPlayer(b, po)
		if err := gui.Run(ctx, b, p, cat, cfg.DarkMode); err != nil {
			logrus.Fatalf("gui: %v", err)
		}
	case eo.interactive:
		p := universe.NewPlayer(b, po)
		ui, err := view.NewConsoleUI(ctx, b, p, cat, details)
		if err != nil {
			logrus.Fatalf("terminal: %v", err)
		}
		if err := ui.Start(); err != nil {
			logrus.Fatalf("terminal: %v", err)
		}
	default:
		if po.MaxSteps == 0 && !po.StopWhenStable {
			logrus.Infof("no step limit given, stopping after %d steps", defHeadlessSteps)
			po.MaxSteps = defHeadlessSteps
		}
		p := universe.NewPlayer(b, po)
		out := view.NewConsoleOut(os.Stdout, b, 10)
		b.RegisterViewer(out)

		fmt.Printf("\"The Life\" game simulation started...\n")
		out.Start(details)
		p.Play(ctx)
		out.Finish(p.Wait())
		if eo.print {
			fmt.Println(b.Snapshot().String())
		}
	}
}

func initOptions() (eo *EnvOptions, cfg config.Config) {
	eo = &EnvOptions{}
	fo := flagOverrides{}

	p := newParser(eo, &fo)
	if err := p.Parse(); err != nil {
		p.ShowHelpAndExit(err.Error())
	}
	fo.given = givenFlags(p)

	cfg = config.Default()
	if eo.configPath != "" {
		var err error
		if cfg, err = config.Load(eo.configPath); err != nil {
			p.ShowHelpAndExit(err.Error())
		}
	}
	fo.apply(&cfg)
	return
}

func newParser(eo *EnvOptions, fo *flagOverrides) *flaggy.Parser {
	p := flaggy.NewParser("lifeboard")
	p.Description = "Conway's Game of Life on a bounded board"
	p.String(&eo.configPath, "c", "config", "YAML configuration file")
	p.Float64(&fo.width, "x", "width", "Width of the board surface")
	p.Float64(&fo.height, "y", "height", "Height of the board surface")
	p.Int(&fo.cols, "k", "cols", "Number of columns, the cell size is width/cols")
	p.Duration(&fo.interval, "i", "interval", "Interval between the steps, for example 50ms")
	p.Int(&fo.maxSteps, "s", "maxSteps", "Limit the simulation to maxSteps, 0 is unlimited")
	p.Int(&fo.workers, "w", "workers", "Goroutines computing one step")
	p.Int64(&fo.seed, "", "seed", "Randomization seed, 0 picks a time based one")
	p.Bool(&fo.stopWhenStable, "", "stopWhenStable", "Stop playing when a step changes nothing, --stopWhenStable=false turns it off")
	p.String(&fo.logLevel, "l", "logLevel", "Log level [debug|info|warn|error]")
	p.String(&fo.logFile, "", "logFile", "Write the logs to this file")
	p.Bool(&eo.interactive, "n", "interactive", "Start the terminal interface")
	p.Bool(&eo.gui, "g", "gui", "Start the window interface (ebiten build)")
	p.Bool(&eo.randomData, "r", "random", "Settle with random data")
	p.String(&eo.template, "t", "template", "Insert a template at its default origin")
	p.Bool(&eo.print, "p", "print", "Print the final board of a non-interactive run")
	return p
}

//givenFlags collects the names of the flags parsed from the command line.
//A --key=value flag is recorded with its value
func givenFlags(p *flaggy.Parser) map[string]bool {
	given := map[string]bool{}
	for _, pv := range p.ParsedValues {
		if pv.IsPositional {
			continue
		}
		given[strings.SplitN(pv.Key, "=", 2)[0]] = true
	}
	return given
}

func (fo flagOverrides) has(short string, long string) bool {
	return (short != "" && fo.given[short]) || fo.given[long]
}

func (fo flagOverrides) apply(cfg *config.Config) {
	if fo.has("x", "width") {
		cfg.Width = fo.width
	}
	if fo.has("y", "height") {
		cfg.Height = fo.height
	}
	if fo.has("k", "cols") {
		cfg.Cols = fo.cols
	}
	if fo.has("i", "interval") {
		cfg.Interval = fo.interval
	}
	if fo.has("s", "maxSteps") {
		cfg.MaxSteps = fo.maxSteps
	}
	if fo.has("w", "workers") {
		cfg.Workers = fo.workers
	}
	if fo.has("", "seed") {
		cfg.Seed = fo.seed
	}
	if fo.has("", "stopWhenStable") {
		cfg.StopWhenStable = fo.stopWhenStable
	}
	if fo.has("l", "logLevel") {
		cfg.LogLevel = fo.logLevel
	}
	if fo.has("", "logFile") {
		cfg.LogFile = fo.logFile
	}
}

//setupLogging applies the level and the destination.
//The interfaces own the terminal, their logs go to the log file or nowhere
func setupLogging(cfg config.Config, ownsTerminal bool) error {
	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}
	logrus.SetLevel(level)
	switch {
	case cfg.LogFile != "":
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return err
		}
		logrus.SetOutput(f)
	case ownsTerminal:
		logrus.SetOutput(io.Discard)
	}
	return nil
}
