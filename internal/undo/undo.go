// Package undo holds the single restorable slot for a recently deleted
// counter. At most one item is pending; a newer delete displaces the old one,
// and the slot empties itself when the window elapses.
package undo

import (
	"sync"
	"time"

	"github.com/existflow/tally/internal/model"
)

// DefaultWindow is how long a deleted counter stays restorable.
const DefaultWindow = 5 * time.Second

// Manager implements the Idle -> Pending -> Idle slot.
type Manager struct {
	mu       sync.Mutex
	window   time.Duration
	item     *model.Counter
	deadline time.Time
	timer    *time.Timer
	gen      uint64 // invalidates timers from superseded deletes

	now func() time.Time
}

// New creates a Manager. A non-positive window falls back to DefaultWindow.
func New(window time.Duration) *Manager {
	if window <= 0 {
		window = DefaultWindow
	}
	return &Manager{window: window, now: time.Now}
}

// MarkDeleted stores item as the pending delete and restarts the window.
// Any previously pending item is discarded permanently.
func (m *Manager) MarkDeleted(item model.Counter) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.timer != nil {
		m.timer.Stop()
	}
	c := item.Clone()
	m.item = &c
	m.deadline = m.now().Add(m.window)
	m.gen++

	gen := m.gen
	m.timer = time.AfterFunc(m.window, func() {
		m.expire(gen)
	})
}

// expire discards the pending item, unless a newer delete or a manual undo
// already took the slot.
func (m *Manager) expire(gen uint64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if gen != m.gen {
		return
	}
	m.item = nil
	m.timer = nil
}

// Undo returns the pending item and empties the slot. The bool reports
// whether anything was pending. Cancelling the timer and clearing the slot
// happen under one lock, so the expiry handler can never return the same item
// a second time.
func (m *Manager) Undo() (model.Counter, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.item == nil {
		return model.Counter{}, false
	}
	if m.timer != nil {
		m.timer.Stop()
		m.timer = nil
	}
	item := *m.item
	m.item = nil
	m.gen++
	return item, true
}

// Pending returns the pending item and the time remaining in its window.
func (m *Manager) Pending() (model.Counter, time.Duration, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.item == nil {
		return model.Counter{}, 0, false
	}
	remaining := m.deadline.Sub(m.now())
	if remaining < 0 {
		remaining = 0
	}
	return m.item.Clone(), remaining, true
}

// Clear discards any pending item without restoring it.
func (m *Manager) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.timer != nil {
		m.timer.Stop()
		m.timer = nil
	}
	m.item = nil
	m.gen++
}
