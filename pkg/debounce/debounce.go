// Package debounce provides an explicit cancellable-timer abstraction:
// a per-key debouncer with cancel-and-replace semantics and a stoppable
// one-shot timer. It exists so orchestration code holds named timer handles
// instead of hiding time.AfterFunc calls inside closures.
package debounce

import (
	"sync"
	"time"
)

// Debouncer coalesces rapid triggers per key into a single delayed call.
// Every Trigger cancels the key's pending timer and starts a new one, so
// only the last call within the quiet window fires. Callbacks run on the
// timer's goroutine.
type Debouncer struct {
	delay  time.Duration
	mu     sync.Mutex
	timers map[string]*time.Timer
}

// New creates a debouncer with a fixed quiet window.
func New(delay time.Duration) *Debouncer {
	return &Debouncer{
		delay:  delay,
		timers: make(map[string]*time.Timer),
	}
}

// Trigger schedules fn to run after the quiet window, replacing any pending
// timer for the same key.
func (d *Debouncer) Trigger(key string, fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if t, ok := d.timers[key]; ok {
		t.Stop()
	}
	d.timers[key] = time.AfterFunc(d.delay, func() {
		d.mu.Lock()
		delete(d.timers, key)
		d.mu.Unlock()
		fn()
	})
}

// Cancel drops the pending timer for key, reporting whether one existed.
func (d *Debouncer) Cancel(key string) bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	t, ok := d.timers[key]
	if !ok {
		return false
	}
	t.Stop()
	delete(d.timers, key)
	return true
}

// Pending reports whether a timer is waiting for key.
func (d *Debouncer) Pending(key string) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	_, ok := d.timers[key]
	return ok
}

// Stop cancels every pending timer. The debouncer stays usable afterwards.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	for key, t := range d.timers {
		t.Stop()
		delete(d.timers, key)
	}
}

// Timer is a stoppable one-shot delay.
type Timer struct {
	t *time.Timer
}

// After schedules fn once after delay and returns a handle that can stop it.
func After(delay time.Duration, fn func()) *Timer {
	return &Timer{t: time.AfterFunc(delay, fn)}
}

// Stop cancels the timer if it has not fired yet.
func (t *Timer) Stop() bool {
	if t == nil || t.t == nil {
		return false
	}
	return t.t.Stop()
}
