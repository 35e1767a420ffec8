package eventloop

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func startLoop(t *testing.T, l *Loop) context.CancelFunc {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	go l.Run(ctx)
	t.Cleanup(func() {
		cancel()
		<-l.Done()
	})
	return cancel
}

func TestLoopDispatchesInOrder(t *testing.T) {
	l := New(8, zerolog.Nop())
	got := make(chan string, 8)
	l.Handle(Click, func(ev Event) { got <- "click:" + ev.Name })
	l.Handle(DirectoryChosen, func(ev Event) { got <- "dir:" + ev.Path })
	l.Handle(Tick, func(Event) { got <- "tick" })

	require.NoError(t, l.Post(Event{Kind: Click, Name: "next"}))
	require.NoError(t, l.Post(Event{Kind: DirectoryChosen, Path: "/pics"}))
	require.NoError(t, l.Post(Event{Kind: Tick}))
	startLoop(t, l)

	for _, want := range []string{"click:next", "dir:/pics", "tick"} {
		select {
		case s := <-got:
			assert.Equal(t, want, s)
		case <-time.After(time.Second):
			t.Fatalf("timed out waiting for %s", want)
		}
	}
}

func TestLoopDoRunsOnLoop(t *testing.T) {
	l := New(1, zerolog.Nop())
	startLoop(t, l)

	ran := make(chan struct{})
	require.NoError(t, l.Do(func() { close(ran) }))
	select {
	case <-ran:
	case <-time.After(time.Second):
		t.Fatal("Do never ran")
	}
}

func TestLoopPostQueueFull(t *testing.T) {
	l := New(1, zerolog.Nop())
	require.NoError(t, l.Post(Event{Kind: Tick}))
	assert.ErrorIs(t, l.Post(Event{Kind: Tick}), ErrQueueFull)
}

func TestLoopPostAfterStop(t *testing.T) {
	l := New(4, zerolog.Nop())
	ctx, cancel := context.WithCancel(context.Background())
	errc := make(chan error, 1)
	go func() { errc <- l.Run(ctx) }()
	cancel()

	assert.ErrorIs(t, <-errc, context.Canceled)
	assert.ErrorIs(t, l.Post(Event{Kind: Click}), ErrStopped)
}

func TestLoopSurvivesPanickingHandler(t *testing.T) {
	l := New(4, zerolog.Nop())
	l.Handle(Click, func(Event) { panic("boom") })
	startLoop(t, l)

	require.NoError(t, l.Post(Event{Kind: Click}))
	ran := make(chan struct{})
	require.NoError(t, l.Do(func() { close(ran) }))
	select {
	case <-ran:
	case <-time.After(time.Second):
		t.Fatal("loop stopped after panic")
	}
}

func TestLoopIgnoresUnhandledKinds(t *testing.T) {
	l := New(4, zerolog.Nop())
	startLoop(t, l)
	require.NoError(t, l.Post(Event{Kind: Resize}))
	ran := make(chan struct{})
	require.NoError(t, l.Do(func() { close(ran) }))
	<-ran
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "tick", Tick.String())
	assert.Equal(t, "directory-cancelled", DirectoryCancelled.String())
	assert.Equal(t, "kind(42)", Kind(42).String())
}
