package service

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type saveRecorder struct {
	mu    sync.Mutex
	calls []string
}

func (r *saveRecorder) record(tag string) func() {
	return func() {
		r.mu.Lock()
		defer r.mu.Unlock()
		r.calls = append(r.calls, tag)
	}
}

func (r *saveRecorder) snapshot() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string{}, r.calls...)
}

func TestDebounceSchedulerLastWriteWins(t *testing.T) {
	sched := NewDebounceScheduler(20 * time.Millisecond)
	rec := &saveRecorder{}

	sched.Schedule("ev1", rec.record("first"))
	sched.Schedule("ev1", rec.record("second"))

	assert.Eventually(t, func() bool {
		calls := rec.snapshot()
		return len(calls) == 1 && calls[0] == "second"
	}, time.Second, 5*time.Millisecond)
}

func TestDebounceSchedulerIndependentEvents(t *testing.T) {
	sched := NewDebounceScheduler(20 * time.Millisecond)
	rec := &saveRecorder{}

	sched.Schedule("ev1", rec.record("a"))
	sched.Schedule("ev2", rec.record("b"))

	assert.Eventually(t, func() bool {
		return len(rec.snapshot()) == 2
	}, time.Second, 5*time.Millisecond)
}

func TestDebounceSchedulerCancel(t *testing.T) {
	sched := NewDebounceScheduler(20 * time.Millisecond)
	rec := &saveRecorder{}

	sched.Schedule("ev1", rec.record("a"))
	sched.Cancel("ev1")

	time.Sleep(60 * time.Millisecond)
	assert.Empty(t, rec.snapshot())
}

func TestDebounceSchedulerFlushRunsImmediately(t *testing.T) {
	sched := NewDebounceScheduler(time.Hour)
	rec := &saveRecorder{}

	sched.Schedule("ev1", rec.record("a"))
	sched.Flush("ev1")

	assert.Equal(t, []string{"a"}, rec.snapshot())

	// Flushing again is a no-op
	sched.Flush("ev1")
	assert.Equal(t, []string{"a"}, rec.snapshot())
}
