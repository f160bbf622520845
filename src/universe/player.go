package universe

import (
	"context"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

/*
	Player drives the board with a timer: one step per tick.
	A tick which finds the previous step still in flight is skipped,
	too many consecutive skips finish the playback
*/

//PlayerOptions represents the Player's configurable options
type PlayerOptions struct {
	Interval        time.Duration //0 steps back to back
	MaxSteps        int           //steps since the last reset after which the playback finishes, 0 is unlimited
	MaxSkippedTicks int
	StopWhenStable  bool //finish when a step changes nothing
}

type Player struct {
	board   *Board
	options PlayerOptions

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
}

func NewPlayer(b *Board, o PlayerOptions) *Player {
	return &Player{board: b, options: o}
}

//Play starts the playback, returns immediately.
//It returns false when the player is already playing
func (p *Player) Play(ctx context.Context) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.playing() {
		return false
	}
	ctx, cancel := context.WithCancel(ctx)
	p.cancel = cancel
	p.done = make(chan struct{})
	go p.run(ctx, cancel, p.done)
	return true
}

//Pause stops scheduling further steps and waits for the playback goroutine to exit.
//A step in progress is completed, not aborted
func (p *Player) Pause() {
	p.mu.Lock()
	cancel, done := p.cancel, p.done
	p.mu.Unlock()
	if cancel == nil {
		return
	}
	cancel()
	<-done
}

//Toggle pauses a running player or starts a paused one, it returns whether the player is playing afterwards
func (p *Player) Toggle(ctx context.Context) bool {
	if p.Playing() {
		p.Pause()
		return false
	}
	return p.Play(ctx)
}

func (p *Player) Playing() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.playing()
}

//Wait blocks until the current playback finishes and returns the board status
func (p *Player) Wait() Status {
	p.mu.Lock()
	done := p.done
	p.mu.Unlock()
	if done != nil {
		<-done
	}
	return p.board.Status()
}

func (p *Player) playing() bool {
	if p.done == nil {
		return false
	}
	select {
	case <-p.done:
		return false
	default:
		return true
	}
}

//run is the playback loop, should start as a goroutine
func (p *Player) run(ctx context.Context, cancel context.CancelFunc, done chan struct{}) {
	defer close(done)
	defer cancel()

	p.board.switchRunningState(RunningStateRun)
	p.board.refreshView()
	logrus.Infof("playback started at generation %d, interval %v", p.board.Generation(), p.options.Interval)

	var tick <-chan time.Time
	if p.options.Interval > 0 {
		ticker := time.NewTicker(p.options.Interval)
		defer ticker.Stop()
		tick = ticker.C
	}

	finished := false
	skipped := 0
	for !finished {
		if tick != nil {
			select {
			case <-ctx.Done():
			case <-tick:
			}
		}
		if ctx.Err() != nil {
			break
		}
		if p.options.MaxSteps > 0 && p.board.Generation()-1 >= p.options.MaxSteps {
			logrus.Infof("max steps %d reached", p.options.MaxSteps)
			finished = true
			break
		}
		//skip the tick if the board is still in the calculation mode
		if !p.board.Step() {
			skipped++
			if skipped > p.options.MaxSkippedTicks {
				logrus.Warnf("%d consecutive ticks skipped, the step takes longer than the %v interval", skipped, p.options.Interval)
				finished = true
			}
			continue
		}
		skipped = 0
		if p.options.StopWhenStable && !p.board.Status().Changed {
			logrus.Infof("board is stable at generation %d", p.board.Generation())
			finished = true
		}
	}

	if finished {
		p.board.switchRunningState(RunningStateFinished)
	} else {
		p.board.switchRunningState(RunningStateManual)
	}
	p.board.refreshView()
	logrus.Infof("playback stopped at generation %d", p.board.Generation())
}
