// Package slideshow drives automatic forward navigation on a fixed period.
package slideshow

import (
	"sync"
	"time"
)

const (
	// DefaultInterval is the time between two slideshow ticks.
	DefaultInterval = 3000 * time.Millisecond
)

// Timer fires a callback at a fixed interval while running.
// The zero value is not usable; create one with NewTimer.
type Timer struct {
	mu       sync.Mutex
	interval time.Duration
	stop     chan struct{}
	done     chan struct{}
}

// NewTimer creates a stopped Timer. A non-positive interval selects DefaultInterval.
func NewTimer(interval time.Duration) *Timer {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Timer{interval: interval}
}

// Start begins calling tick every interval. It does nothing if already running.
func (t *Timer) Start(tick func()) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.stop != nil {
		return
	}
	t.stop = make(chan struct{})
	t.done = make(chan struct{})
	go t.run(t.interval, tick, t.stop, t.done)
}

func (t *Timer) run(interval time.Duration, tick func(), stop <-chan struct{}, done chan<- struct{}) {
	defer close(done)
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			// a Stop racing with the tick wins
			select {
			case <-stop:
				return
			default:
			}
			tick()
		}
	}
}

// Stop halts the timer and waits for the ticking goroutine to exit.
// It does nothing if the timer is not running. Stop must not be called from
// inside the tick callback.
func (t *Timer) Stop() {
	t.mu.Lock()
	if t.stop == nil {
		t.mu.Unlock()
		return
	}
	close(t.stop)
	done := t.done
	t.stop, t.done = nil, nil
	t.mu.Unlock()
	<-done
}

// Toggle starts a stopped timer or stops a running one and reports whether
// the timer is running afterwards.
func (t *Timer) Toggle(tick func()) bool {
	if t.Running() {
		t.Stop()
		return false
	}
	t.Start(tick)
	return true
}

// Running reports whether the timer is currently firing.
func (t *Timer) Running() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.stop != nil
}

// Interval returns the configured period.
func (t *Timer) Interval() time.Duration {
	return t.interval
}
