package universe

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lifeboard/src/catalog"
	"lifeboard/src/grid"
)

func TestPlayer_StopsAtMaxSteps(t *testing.T) {
	b := newTestBoard(t, 20, 20)
	b.Randomize()
	p := NewPlayer(b, PlayerOptions{MaxSteps: 25, MaxSkippedTicks: 5})

	require.True(t, p.Play(context.Background()))
	st := p.Wait()
	assert.Equal(t, 26, st.Generation)
	assert.Equal(t, RunningStateFinished, st.RunningMode)
	assert.False(t, p.Playing())
}

func TestPlayer_StopsWhenStable(t *testing.T) {
	b := newTestBoard(t, 6, 6)
	require.NoError(t, b.InsertTemplate(grid.MustTemplate("block", "", [][]int{{1, 1}, {1, 1}}), 2, 2))
	p := NewPlayer(b, PlayerOptions{StopWhenStable: true, MaxSteps: 100})

	require.True(t, p.Play(context.Background()))
	st := p.Wait()
	assert.Equal(t, 2, st.Generation)
	assert.Equal(t, RunningStateFinished, st.RunningMode)
	assert.Equal(t, 4, st.LiveCells)
}

func TestPlayer_PauseStopsScheduling(t *testing.T) {
	b := newTestBoard(t, 10, 10)
	require.NoError(t, b.InsertEntry(catalog.Entry{Template: catalog.Plane}))
	p := NewPlayer(b, PlayerOptions{Interval: time.Millisecond, MaxSkippedTicks: 5})

	require.True(t, p.Play(context.Background()))
	assert.False(t, p.Play(context.Background()), "already playing")
	assert.Eventually(t, func() bool { return b.Generation() > 3 }, time.Second, time.Millisecond)

	p.Pause()
	assert.False(t, p.Playing())
	gen := b.Generation()
	assert.Equal(t, RunningStateManual, b.Status().RunningMode)
	time.Sleep(10 * time.Millisecond)
	assert.Equal(t, gen, b.Generation())
}

func TestPlayer_ContextCancel(t *testing.T) {
	b := newTestBoard(t, 10, 10)
	p := NewPlayer(b, PlayerOptions{Interval: time.Millisecond})
	ctx, cancel := context.WithCancel(context.Background())

	require.True(t, p.Play(ctx))
	cancel()
	st := p.Wait()
	assert.Equal(t, RunningStateManual, st.RunningMode)
}

func TestPlayer_Toggle(t *testing.T) {
	b := newTestBoard(t, 10, 10)
	p := NewPlayer(b, PlayerOptions{Interval: time.Millisecond})

	assert.True(t, p.Toggle(context.Background()))
	assert.True(t, p.Playing())
	assert.False(t, p.Toggle(context.Background()))
	assert.False(t, p.Playing())
	assert.True(t, p.Toggle(context.Background()))
	p.Pause()
}

func TestPlayer_SkippedTicksFinishPlayback(t *testing.T) {
	b := newTestBoard(t, 10, 10)
	//a step which never completes
	b.stepping.Store(true)
	p := NewPlayer(b, PlayerOptions{Interval: time.Millisecond, MaxSkippedTicks: 3})

	require.True(t, p.Play(context.Background()))
	st := p.Wait()
	assert.Equal(t, RunningStateFinished, st.RunningMode)
	assert.Equal(t, 1, st.Generation)
}

func TestPlayer_RefreshesOnModeChange(t *testing.T) {
	b := newTestBoard(t, 5, 5)
	modes := make(chan RunningState, 16)
	b.RegisterViewer(ViewerFunc(func() { modes <- b.Status().RunningMode }))
	p := NewPlayer(b, PlayerOptions{MaxSteps: 1})

	require.True(t, p.Play(context.Background()))
	p.Wait()
	close(modes)

	var seen []RunningState
	for m := range modes {
		seen = append(seen, m)
	}
	require.NotEmpty(t, seen)
	assert.Equal(t, RunningStateRun, seen[0])
	assert.Equal(t, RunningStateFinished, seen[len(seen)-1])
}

func TestPlayer_PauseWithoutPlay(t *testing.T) {
	p := NewPlayer(newTestBoard(t, 3, 3), PlayerOptions{})
	p.Pause()
	assert.False(t, p.Playing())
	assert.Equal(t, 1, p.Wait().Generation)
}
