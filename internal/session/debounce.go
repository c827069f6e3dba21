package session

import (
	"sync"
	"time"
)

// Debouncer commits a value only after a quiescence window with no newer
// input. It is the state machine {idle, pending(value)}: Set moves to
// pending and (re)arms the timer, the timer firing commits and returns to
// idle. Only the timer that survives the window commits; every earlier
// pending value is discarded.
//
// The dashboard uses one per session for the search box, so a burst of
// keystrokes costs one recomputation of the O(n) filter pass, not one per
// keystroke.
type Debouncer struct {
	mu      sync.Mutex
	window  time.Duration
	commit  func(string)
	timer   *time.Timer
	pending string
	armed   bool
}

// NewDebouncer builds a debouncer that calls commit with the surviving
// value. A non-positive window commits synchronously on every Set.
func NewDebouncer(window time.Duration, commit func(string)) *Debouncer {
	return &Debouncer{window: window, commit: commit}
}

// Set stages a new value, discarding any pending one and restarting the
// quiescence window. The commit callback runs on the timer's goroutine.
func (d *Debouncer) Set(v string) {
	d.mu.Lock()
	if d.timer != nil {
		d.timer.Stop()
	}
	if d.window <= 0 {
		d.armed = false
		d.mu.Unlock()
		d.commit(v)
		return
	}
	d.pending = v
	d.armed = true
	d.timer = time.AfterFunc(d.window, func() { d.fire(v) })
	d.mu.Unlock()
}

// fire commits v unless a newer Set superseded this timer.
func (d *Debouncer) fire(v string) {
	d.mu.Lock()
	if !d.armed || d.pending != v {
		d.mu.Unlock()
		return
	}
	d.armed = false
	d.mu.Unlock()
	d.commit(v)
}

// Flush commits the pending value immediately, if there is one.
func (d *Debouncer) Flush() {
	d.mu.Lock()
	if !d.armed {
		d.mu.Unlock()
		return
	}
	if d.timer != nil {
		d.timer.Stop()
	}
	v := d.pending
	d.armed = false
	d.mu.Unlock()
	d.commit(v)
}

// Stop discards any pending value without committing it.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	if d.timer != nil {
		d.timer.Stop()
	}
	d.armed = false
	d.mu.Unlock()
}
