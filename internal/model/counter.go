package model

import "time"

// History actions
const (
	ActionIncrement = "increment"
	ActionDecrement = "decrement"
)

// DefaultColor is used when a counter is created without an explicit color.
const DefaultColor = "#007AFF"

// HistoryEntry records a single increment or decrement event.
// Entries are immutable once appended; only a reset clears them.
type HistoryEntry struct {
	Timestamp int64  `json:"timestamp"` // epoch milliseconds
	Action    string `json:"action"`
	Amount    int    `json:"amount"`
}

// Counter is a named tally with an optional goal.
type Counter struct {
	ID        string         `json:"id"`
	Name      string         `json:"name"`
	Count     int            `json:"count"`
	Target    int            `json:"target,omitempty"`
	Color     string         `json:"color,omitempty"`
	History   []HistoryEntry `json:"history"`
	CreatedAt int64          `json:"createdAt,omitempty"` // epoch milliseconds, set once
}

// NewCounter creates a counter with defaults applied.
func NewCounter(id, name string, target int, color string, now time.Time) Counter {
	if color == "" {
		color = DefaultColor
	}
	return Counter{
		ID:        id,
		Name:      name,
		Count:     0,
		Target:    target,
		Color:     color,
		History:   []HistoryEntry{},
		CreatedAt: now.UnixMilli(),
	}
}

// HasTarget reports whether a positive goal is set.
func (c *Counter) HasTarget() bool {
	return c.Target > 0
}

// GoalReached reports whether the counter has met its goal.
func (c *Counter) GoalReached() bool {
	return c.HasTarget() && c.Count >= c.Target
}

// Progress returns the ratio of count to target, capped at 1.
// It returns 0 when no target is set.
func (c *Counter) Progress() float64 {
	if !c.HasTarget() {
		return 0
	}
	p := float64(c.Count) / float64(c.Target)
	if p > 1 {
		return 1
	}
	return p
}

// ActionsSince counts history entries at or after the given moment.
func (c *Counter) ActionsSince(t time.Time) int {
	cutoff := t.UnixMilli()
	n := 0
	for _, h := range c.History {
		if h.Timestamp >= cutoff {
			n++
		}
	}
	return n
}

// Clone returns a deep copy so callers cannot mutate repository state
// through a shared history slice.
func (c Counter) Clone() Counter {
	out := c
	out.History = make([]HistoryEntry, len(c.History))
	copy(out.History, c.History)
	return out
}

// StartOfDay returns local midnight for the given moment.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
