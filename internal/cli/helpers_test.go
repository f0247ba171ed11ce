package cli

import (
	"context"
	"testing"

	"github.com/existflow/tally/internal/model"
	"github.com/existflow/tally/internal/store"
	"github.com/stretchr/testify/require"
)

var testCounters = []model.Counter{
	{ID: "abc12345-0000", Name: "Water"},
	{ID: "abd67890-0000", Name: "Pushups"},
	{ID: "xyz00000-0000", Name: "water"},
}

func TestResolveCounterExactID(t *testing.T) {
	c, err := resolveCounter(testCounters, "abc12345-0000")
	require.NoError(t, err)
	require.Equal(t, "Water", c.Name)
}

func TestResolveCounterIDPrefix(t *testing.T) {
	c, err := resolveCounter(testCounters, "abd")
	require.NoError(t, err)
	require.Equal(t, "Pushups", c.Name)

	// Shared prefix is ambiguous
	_, err = resolveCounter(testCounters, "ab")
	require.Error(t, err)
	require.Contains(t, err.Error(), "ambiguous")
}

func TestResolveCounterByName(t *testing.T) {
	c, err := resolveCounter(testCounters, "Pushups")
	require.NoError(t, err)
	require.Equal(t, "abd67890-0000", c.ID)

	// Case-insensitive matching makes Water/water ambiguous
	_, err = resolveCounter(testCounters, "WATER")
	require.Error(t, err)
	require.Contains(t, err.Error(), "ambiguous")
}

func TestResolveCounterNotFound(t *testing.T) {
	_, err := resolveCounter(testCounters, "nope")
	require.Error(t, err)
	require.Contains(t, err.Error(), "not found")
}

func TestLoadTheme(t *testing.T) {
	ctx := context.Background()
	st := store.NewMemory()

	require.Equal(t, "light", loadTheme(ctx, st))

	require.NoError(t, st.Set(ctx, store.KeyTheme, "dark"))
	require.Equal(t, "dark", loadTheme(ctx, st))

	// Unknown values fall back
	require.NoError(t, st.Set(ctx, store.KeyTheme, "solarized"))
	require.Equal(t, "light", loadTheme(ctx, st))
}

func TestNameFromArgs(t *testing.T) {
	require.Equal(t, "Water", nameFromArgs([]string{"Water"}))
	require.Equal(t, "Water bottle", nameFromArgs([]string{"Water", "bottle"}))
	// Trailing whitespace in the last arg must not survive into the name
	require.Equal(t, "Water bottle", nameFromArgs([]string{"Water", "bottle  "}))
	require.Equal(t, "Water bottle", nameFromArgs([]string{"  Water", "bottle"}))
}

func TestShortID(t *testing.T) {
	require.Equal(t, "abc12345", shortID("abc12345-0000"))
	require.Equal(t, "short", shortID("short"))
}
