package service

import (
	"sync"
	"time"
)

// SaveScheduler defers a persistence call until a quiet period has passed.
// Scheduling again for the same event before the delay fires supersedes the
// earlier scheduling (last write wins); the in-memory state is always saved
// synchronously by the service, so persistence latency never blocks an edit.
type SaveScheduler interface {
	Schedule(eventID string, fn func())
	Cancel(eventID string)
	Flush(eventID string)
}

// debounceScheduler is the production SaveScheduler backed by time.AfterFunc
type debounceScheduler struct {
	mu      sync.Mutex
	delay   time.Duration
	timers  map[string]*time.Timer
	pending map[string]func()
}

// NewDebounceScheduler creates a scheduler with the given quiet period
func NewDebounceScheduler(delay time.Duration) SaveScheduler {
	return &debounceScheduler{
		delay:   delay,
		timers:  map[string]*time.Timer{},
		pending: map[string]func(){},
	}
}

func (d *debounceScheduler) Schedule(eventID string, fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if timer, ok := d.timers[eventID]; ok {
		timer.Stop()
	}
	d.pending[eventID] = fn
	d.timers[eventID] = time.AfterFunc(d.delay, func() {
		d.mu.Lock()
		fn := d.pending[eventID]
		delete(d.pending, eventID)
		delete(d.timers, eventID)
		d.mu.Unlock()
		if fn != nil {
			fn()
		}
	})
}

func (d *debounceScheduler) Cancel(eventID string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if timer, ok := d.timers[eventID]; ok {
		timer.Stop()
		delete(d.timers, eventID)
	}
	delete(d.pending, eventID)
}

// Flush runs any pending save immediately instead of waiting out the delay
func (d *debounceScheduler) Flush(eventID string) {
	d.mu.Lock()
	fn := d.pending[eventID]
	if timer, ok := d.timers[eventID]; ok {
		timer.Stop()
		delete(d.timers, eventID)
	}
	delete(d.pending, eventID)
	d.mu.Unlock()
	if fn != nil {
		fn()
	}
}
