// Package eventloop runs UI events one at a time on a single goroutine.
package eventloop

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/rs/zerolog"
)

// DefaultQueueSize is the queue capacity used when none is given.
const DefaultQueueSize = 64

var (
	// ErrQueueFull is returned by Post when the queue has no free slot.
	ErrQueueFull = errors.New("event queue full")
	// ErrStopped is returned by Post once the loop has exited.
	ErrStopped = errors.New("event loop stopped")
)

// Kind identifies an event.
type Kind int

const (
	// Click is a button or toolbar press; Event.Name says which.
	Click Kind = iota
	// Tick is a slideshow timer tick.
	Tick
	// DirectoryChosen carries the folder picked in the open dialog in Event.Path.
	DirectoryChosen
	// DirectoryCancelled is sent when the open dialog is dismissed.
	DirectoryCancelled
	// Resize asks the frame to re-fit its content.
	Resize
	// Call runs Event.Fn on the loop goroutine.
	Call
)

func (k Kind) String() string {
	switch k {
	case Click:
		return "click"
	case Tick:
		return "tick"
	case DirectoryChosen:
		return "directory-chosen"
	case DirectoryCancelled:
		return "directory-cancelled"
	case Resize:
		return "resize"
	case Call:
		return "call"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Event is one unit of UI work.
type Event struct {
	Kind Kind
	Name string
	Path string
	Fn   func()
}

// Handler processes an event synchronously on the loop goroutine.
type Handler func(Event)

// Loop is a bounded queue of events drained by Run.
type Loop struct {
	queue    chan Event
	mu       sync.RWMutex
	handlers map[Kind]Handler
	done     chan struct{}
	log      zerolog.Logger
}

// New creates a loop with room for size pending events.
func New(size int, logger zerolog.Logger) *Loop {
	if size <= 0 {
		size = DefaultQueueSize
	}
	return &Loop{
		queue:    make(chan Event, size),
		handlers: make(map[Kind]Handler),
		done:     make(chan struct{}),
		log:      logger,
	}
}

// Handle registers h for events of kind k, replacing any earlier handler.
func (l *Loop) Handle(k Kind, h Handler) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.handlers[k] = h
}

// Post queues ev without blocking.
func (l *Loop) Post(ev Event) error {
	select {
	case <-l.done:
		return ErrStopped
	default:
	}
	select {
	case l.queue <- ev:
		return nil
	case <-l.done:
		return ErrStopped
	default:
		l.log.Warn().Stringer("kind", ev.Kind).Str("name", ev.Name).Msg("dropping event, queue full")
		return ErrQueueFull
	}
}

// Do queues fn to run on the loop goroutine.
func (l *Loop) Do(fn func()) error {
	return l.Post(Event{Kind: Call, Fn: fn})
}

// Run dispatches events until ctx is cancelled. Events still queued at that
// point are discarded.
func (l *Loop) Run(ctx context.Context) error {
	defer close(l.done)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev := <-l.queue:
			l.dispatch(ev)
		}
	}
}

// Done is closed when Run returns.
func (l *Loop) Done() <-chan struct{} {
	return l.done
}

func (l *Loop) dispatch(ev Event) {
	defer func() {
		if r := recover(); r != nil {
			l.log.Error().Interface("panic", r).Stringer("kind", ev.Kind).Str("name", ev.Name).Msg("event handler panicked")
		}
	}()

	if ev.Kind == Call {
		if ev.Fn != nil {
			ev.Fn()
		}
		return
	}

	l.mu.RLock()
	h := l.handlers[ev.Kind]
	l.mu.RUnlock()
	if h == nil {
		l.log.Debug().Stringer("kind", ev.Kind).Msg("no handler")
		return
	}
	h(ev)
}
