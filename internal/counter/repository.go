// Package counter owns the canonical counter collection. Every read and
// mutation routes through the Repository, which persists the collection to
// the key-value store after each change.
package counter

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"github.com/existflow/tally/internal/logger"
	"github.com/existflow/tally/internal/model"
	"github.com/existflow/tally/internal/store"
	"github.com/google/uuid"
)

// ErrNotPermutation is returned by Reorder when the proposed order is not a
// permutation of the current collection.
var ErrNotPermutation = errors.New("reorder must be a permutation of the existing counters")

// AddInput carries the caller-supplied fields for a new counter.
// Callers validate name/target/color before constructing one.
type AddInput struct {
	Name   string
	Target int
	Color  string
}

// Update carries a partial edit. Nil fields are left unchanged.
type Update struct {
	Name   *string
	Target *int
	Color  *string
	Count  *int
}

// Repository is the single source of truth for the counter collection.
// Persistence is best-effort: store failures are logged and the in-memory
// snapshot stays authoritative.
type Repository struct {
	mu       sync.Mutex
	store    store.Store
	counters []model.Counter

	now   func() time.Time
	newID func() string
}

// New creates a repository over the given store. Call Load before use.
func New(st store.Store) *Repository {
	return &Repository{
		store: st,
		now:   time.Now,
		newID: uuid.NewString,
	}
}

// Load reads the persisted collection. A missing key or unparsable payload
// degrades to an empty collection rather than failing.
func (r *Repository) Load(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	raw, ok, err := r.store.Get(ctx, store.KeyCounters)
	if err != nil {
		logger.Error("Failed to load counters", logger.F("error", err))
		r.counters = []model.Counter{}
		return nil
	}
	if !ok {
		r.counters = []model.Counter{}
		return nil
	}

	var counters []model.Counter
	if err := json.Unmarshal([]byte(raw), &counters); err != nil {
		logger.Error("Stored counters are corrupt, starting empty", logger.F("error", err))
		r.counters = []model.Counter{}
		return nil
	}
	for i := range counters {
		if counters[i].History == nil {
			counters[i].History = []model.HistoryEntry{}
		}
	}
	r.counters = counters
	logger.Debug("Counters loaded", logger.F("count", len(counters)))
	return nil
}

// save persists the current collection. Caller must hold r.mu.
func (r *Repository) save(ctx context.Context) {
	data, err := json.Marshal(r.counters)
	if err != nil {
		logger.Error("Failed to encode counters", logger.F("error", err))
		return
	}
	if err := r.store.Set(ctx, store.KeyCounters, string(data)); err != nil {
		logger.Error("Failed to save counters", logger.F("error", err))
	}
}

// Counters returns a deep copy of the collection in display order.
func (r *Repository) Counters() []model.Counter {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]model.Counter, len(r.counters))
	for i, c := range r.counters {
		out[i] = c.Clone()
	}
	return out
}

// Len returns the number of counters.
func (r *Repository) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.counters)
}

// Get returns a copy of the counter with the given id.
func (r *Repository) Get(id string) (model.Counter, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if i := r.indexOf(id); i >= 0 {
		return r.counters[i].Clone(), true
	}
	return model.Counter{}, false
}

// Add creates a counter from input, appends it and persists.
func (r *Repository) Add(ctx context.Context, input AddInput) model.Counter {
	r.mu.Lock()
	defer r.mu.Unlock()

	c := model.NewCounter(r.newID(), input.Name, input.Target, input.Color, r.now())
	r.counters = append(r.counters, c)
	r.save(ctx)
	logger.Info("Counter added", logger.F("id", c.ID), logger.F("name", c.Name))
	return c.Clone()
}

// AddRestored re-inserts a previously existing counter verbatim at the end.
// Used by undo and by import merge; the id is not regenerated.
func (r *Repository) AddRestored(ctx context.Context, c model.Counter) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if c.History == nil {
		c.History = []model.HistoryEntry{}
	}
	r.counters = append(r.counters, c.Clone())
	r.save(ctx)
	logger.Info("Counter restored", logger.F("id", c.ID))
}

// Update merges the non-nil fields of u into the matching counter.
// Unknown ids are a no-op.
func (r *Repository) Update(ctx context.Context, id string, u Update) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return
	}
	c := &r.counters[i]
	if u.Name != nil {
		c.Name = *u.Name
	}
	if u.Target != nil {
		c.Target = *u.Target
	}
	if u.Color != nil {
		c.Color = *u.Color
	}
	if u.Count != nil {
		c.Count = *u.Count
	}
	r.save(ctx)
}

// Delete removes and returns the matching counter. The bool reports whether
// anything was removed.
func (r *Repository) Delete(ctx context.Context, id string) (model.Counter, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return model.Counter{}, false
	}
	removed := r.counters[i]
	r.counters = append(r.counters[:i], r.counters[i+1:]...)
	r.save(ctx)
	logger.Info("Counter deleted", logger.F("id", id))
	return removed, true
}

// DeleteMany removes all matching counters in a single persisted write.
func (r *Repository) DeleteMany(ctx context.Context, ids []string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	drop := make(map[string]bool, len(ids))
	for _, id := range ids {
		drop[id] = true
	}

	kept := r.counters[:0]
	removed := 0
	for _, c := range r.counters {
		if drop[c.ID] {
			removed++
			continue
		}
		kept = append(kept, c)
	}
	if removed == 0 {
		return
	}
	r.counters = kept
	r.save(ctx)
	logger.Info("Counters deleted", logger.F("count", removed))
}

// Reorder replaces the collection order with the given id sequence, which
// must be a permutation of the current ids.
func (r *Repository) Reorder(ctx context.Context, order []string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if len(order) != len(r.counters) {
		return ErrNotPermutation
	}
	byID := make(map[string]model.Counter, len(r.counters))
	for _, c := range r.counters {
		byID[c.ID] = c
	}

	next := make([]model.Counter, 0, len(order))
	for _, id := range order {
		c, ok := byID[id]
		if !ok {
			return ErrNotPermutation
		}
		delete(byID, id) // catches duplicate ids in the proposed order
		next = append(next, c)
	}

	r.counters = next
	r.save(ctx)
	return nil
}

// Increment raises the count by amount and appends a history entry.
// Amount must already be validated positive.
func (r *Repository) Increment(ctx context.Context, id string, amount int) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return
	}
	c := &r.counters[i]
	c.Count += amount
	c.History = append(c.History, model.HistoryEntry{
		Timestamp: r.now().UnixMilli(),
		Action:    model.ActionIncrement,
		Amount:    amount,
	})
	r.save(ctx)
}

// Decrement lowers the count by amount, clamping at zero. The history entry
// records the actual delta applied, not the requested amount, so history sums
// always match the count.
func (r *Repository) Decrement(ctx context.Context, id string, amount int) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return
	}
	c := &r.counters[i]
	applied := amount
	if applied > c.Count {
		applied = c.Count
	}
	c.Count -= applied
	c.History = append(c.History, model.HistoryEntry{
		Timestamp: r.now().UnixMilli(),
		Action:    model.ActionDecrement,
		Amount:    applied,
	})
	r.save(ctx)
}

// ResetOne zeroes the count and clears history for one counter.
func (r *Repository) ResetOne(ctx context.Context, id string) {
	r.ResetMany(ctx, []string{id})
}

// ResetMany zeroes count and history for every matching counter in a single
// persisted write.
func (r *Repository) ResetMany(ctx context.Context, ids []string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	match := make(map[string]bool, len(ids))
	for _, id := range ids {
		match[id] = true
	}

	touched := false
	for i := range r.counters {
		if !match[r.counters[i].ID] {
			continue
		}
		r.counters[i].Count = 0
		r.counters[i].History = []model.HistoryEntry{}
		touched = true
	}
	if touched {
		r.save(ctx)
	}
}

// Replace swaps the whole collection for incoming and persists.
func (r *Repository) Replace(ctx context.Context, incoming []model.Counter) {
	r.mu.Lock()
	defer r.mu.Unlock()

	next := make([]model.Counter, len(incoming))
	for i, c := range incoming {
		next[i] = c.Clone()
	}
	r.counters = next
	r.save(ctx)
	logger.Info("Counters replaced", logger.F("count", len(next)))
}

// indexOf returns the position of id, or -1. Caller must hold r.mu.
func (r *Repository) indexOf(id string) int {
	for i, c := range r.counters {
		if c.ID == id {
			return i
		}
	}
	return -1
}
