package counter

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/existflow/tally/internal/model"
	"github.com/existflow/tally/internal/store"
	"github.com/stretchr/testify/require"
)

func newTestRepo(t *testing.T) (*Repository, *store.Memory) {
	t.Helper()
	st := store.NewMemory()
	repo := New(st)
	require.NoError(t, repo.Load(context.Background()))

	// Deterministic ids and timestamps
	n := 0
	repo.newID = func() string {
		n++
		return fmt.Sprintf("id-%d", n)
	}
	repo.now = func() time.Time {
		return time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	}
	return repo, st
}

func TestAddDefaults(t *testing.T) {
	repo, _ := newTestRepo(t)
	ctx := context.Background()

	c := repo.Add(ctx, AddInput{Name: "Water", Target: 8, Color: "#5AC8FA"})
	require.Equal(t, "id-1", c.ID)
	require.Equal(t, 0, c.Count)
	require.Empty(t, c.History)
	require.Equal(t, "#5AC8FA", c.Color)

	d := repo.Add(ctx, AddInput{Name: "Pushups"})
	require.Equal(t, model.DefaultColor, d.Color)
	require.Equal(t, 0, d.Target)
	require.Equal(t, 2, repo.Len())
}

func TestAddIDsAreUnique(t *testing.T) {
	st := store.NewMemory()
	repo := New(st)
	require.NoError(t, repo.Load(context.Background()))

	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		c := repo.Add(context.Background(), AddInput{Name: "x"})
		require.False(t, seen[c.ID], "duplicate id %s", c.ID)
		seen[c.ID] = true
	}
}

func TestIncrementAppendsHistory(t *testing.T) {
	repo, _ := newTestRepo(t)
	ctx := context.Background()

	c := repo.Add(ctx, AddInput{Name: "Water"})
	repo.Increment(ctx, c.ID, 1)
	repo.Increment(ctx, c.ID, 5)

	got, ok := repo.Get(c.ID)
	require.True(t, ok)
	require.Equal(t, 6, got.Count)
	require.Len(t, got.History, 2)
	require.Equal(t, model.ActionIncrement, got.History[0].Action)
	require.Equal(t, 5, got.History[1].Amount)
}

func TestDecrementClampsAtZero(t *testing.T) {
	repo, _ := newTestRepo(t)
	ctx := context.Background()

	c := repo.Add(ctx, AddInput{Name: "Water"})
	repo.Increment(ctx, c.ID, 3)
	repo.Decrement(ctx, c.ID, 5)

	got, _ := repo.Get(c.ID)
	require.Equal(t, 0, got.Count)
	// History records the applied delta, so it sums to the count
	last := got.History[len(got.History)-1]
	require.Equal(t, model.ActionDecrement, last.Action)
	require.Equal(t, 3, last.Amount)

	// Decrementing an empty counter records a zero delta but never goes negative
	repo.Decrement(ctx, c.ID, 10)
	got, _ = repo.Get(c.ID)
	require.Equal(t, 0, got.Count)
	require.Equal(t, 0, got.History[len(got.History)-1].Amount)
}

func TestMutationsOnMissingIDAreNoOps(t *testing.T) {
	repo, _ := newTestRepo(t)
	ctx := context.Background()

	repo.Increment(ctx, "nope", 1)
	repo.Decrement(ctx, "nope", 1)
	repo.ResetOne(ctx, "nope")
	name := "x"
	repo.Update(ctx, "nope", Update{Name: &name})

	_, ok := repo.Delete(ctx, "nope")
	require.False(t, ok)
	require.Equal(t, 0, repo.Len())
}

func TestUpdateMergesPartialFields(t *testing.T) {
	repo, _ := newTestRepo(t)
	ctx := context.Background()

	c := repo.Add(ctx, AddInput{Name: "Water", Target: 8, Color: "#5AC8FA"})
	target := 10
	repo.Update(ctx, c.ID, Update{Target: &target})

	got, _ := repo.Get(c.ID)
	require.Equal(t, "Water", got.Name)
	require.Equal(t, 10, got.Target)
	require.Equal(t, "#5AC8FA", got.Color)
}

func TestDeleteReturnsRemovedCounter(t *testing.T) {
	repo, _ := newTestRepo(t)
	ctx := context.Background()

	c := repo.Add(ctx, AddInput{Name: "Water"})
	repo.Increment(ctx, c.ID, 2)

	removed, ok := repo.Delete(ctx, c.ID)
	require.True(t, ok)
	require.Equal(t, c.ID, removed.ID)
	require.Equal(t, 2, removed.Count)
	require.Equal(t, 0, repo.Len())
}

func TestDeleteManyIsSinglePass(t *testing.T) {
	repo, st := newTestRepo(t)
	ctx := context.Background()

	a := repo.Add(ctx, AddInput{Name: "a"})
	b := repo.Add(ctx, AddInput{Name: "b"})
	c := repo.Add(ctx, AddInput{Name: "c"})

	repo.DeleteMany(ctx, []string{a.ID, c.ID, "missing"})
	require.Equal(t, 1, repo.Len())
	got, ok := repo.Get(b.ID)
	require.True(t, ok)
	require.Equal(t, "b", got.Name)

	// Persisted state matches
	raw, ok, err := st.Get(ctx, store.KeyCounters)
	require.NoError(t, err)
	require.True(t, ok)
	require.Contains(t, raw, b.ID)
	require.NotContains(t, raw, a.ID)
}

func TestReorderIsPermutationOnly(t *testing.T) {
	repo, _ := newTestRepo(t)
	ctx := context.Background()

	a := repo.Add(ctx, AddInput{Name: "a"})
	b := repo.Add(ctx, AddInput{Name: "b"})
	c := repo.Add(ctx, AddInput{Name: "c"})

	require.NoError(t, repo.Reorder(ctx, []string{c.ID, a.ID, b.ID}))
	counters := repo.Counters()
	require.Equal(t, []string{c.ID, a.ID, b.ID}, []string{counters[0].ID, counters[1].ID, counters[2].ID})

	// Wrong length
	require.ErrorIs(t, repo.Reorder(ctx, []string{a.ID}), ErrNotPermutation)
	// Unknown id
	require.ErrorIs(t, repo.Reorder(ctx, []string{a.ID, b.ID, "zzz"}), ErrNotPermutation)
	// Duplicate id
	require.ErrorIs(t, repo.Reorder(ctx, []string{a.ID, a.ID, b.ID}), ErrNotPermutation)

	// Failed reorders leave the order untouched
	counters = repo.Counters()
	require.Equal(t, []string{c.ID, a.ID, b.ID}, []string{counters[0].ID, counters[1].ID, counters[2].ID})
}

func TestResetClearsCountAndHistory(t *testing.T) {
	repo, _ := newTestRepo(t)
	ctx := context.Background()

	a := repo.Add(ctx, AddInput{Name: "a"})
	b := repo.Add(ctx, AddInput{Name: "b"})
	repo.Increment(ctx, a.ID, 4)
	repo.Increment(ctx, b.ID, 2)

	repo.ResetMany(ctx, []string{a.ID, b.ID})
	for _, id := range []string{a.ID, b.ID} {
		got, _ := repo.Get(id)
		require.Equal(t, 0, got.Count)
		require.Empty(t, got.History)
	}
}

func TestAddRestoredKeepsIdentity(t *testing.T) {
	repo, _ := newTestRepo(t)
	ctx := context.Background()

	c := repo.Add(ctx, AddInput{Name: "Water", Target: 8})
	repo.Increment(ctx, c.ID, 3)
	removed, _ := repo.Delete(ctx, c.ID)

	repo.AddRestored(ctx, removed)
	got, ok := repo.Get(c.ID)
	require.True(t, ok)
	require.Equal(t, removed.Name, got.Name)
	require.Equal(t, removed.Count, got.Count)
	require.Equal(t, removed.History, got.History)
}

func TestLoadRoundTrip(t *testing.T) {
	st := store.NewMemory()
	repo := New(st)
	ctx := context.Background()
	require.NoError(t, repo.Load(ctx))

	c := repo.Add(ctx, AddInput{Name: "Water", Target: 8})
	repo.Increment(ctx, c.ID, 2)

	// A fresh repository over the same store sees the same state
	repo2 := New(st)
	require.NoError(t, repo2.Load(ctx))
	got, ok := repo2.Get(c.ID)
	require.True(t, ok)
	require.Equal(t, 2, got.Count)
	require.Len(t, got.History, 2)
}

func TestLoadCorruptPayloadDegradesToEmpty(t *testing.T) {
	st := store.NewMemory()
	ctx := context.Background()
	require.NoError(t, st.Set(ctx, store.KeyCounters, "{not json"))

	repo := New(st)
	require.NoError(t, repo.Load(ctx))
	require.Equal(t, 0, repo.Len())
}

func TestSaveFailureKeepsMemoryState(t *testing.T) {
	repo, st := newTestRepo(t)
	ctx := context.Background()

	st.FailSet = errors.New("disk full")
	c := repo.Add(ctx, AddInput{Name: "Water"})
	repo.Increment(ctx, c.ID, 1)

	got, ok := repo.Get(c.ID)
	require.True(t, ok)
	require.Equal(t, 1, got.Count)
}

func TestCountersReturnsDeepCopy(t *testing.T) {
	repo, _ := newTestRepo(t)
	ctx := context.Background()

	c := repo.Add(ctx, AddInput{Name: "Water"})
	repo.Increment(ctx, c.ID, 1)

	snapshot := repo.Counters()
	snapshot[0].Name = "tampered"
	snapshot[0].History[0].Amount = 99

	got, _ := repo.Get(c.ID)
	require.Equal(t, "Water", got.Name)
	require.Equal(t, 1, got.History[0].Amount)
}
