package backup_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/existflow/tally/internal/backup"
	"github.com/existflow/tally/internal/model"
	"github.com/stretchr/testify/require"
)

func TestValidateAcceptsWellFormedBackup(t *testing.T) {
	data := []byte(`[
		{"id": "a", "name": "Water", "count": 5, "target": 8, "color": "#5AC8FA",
		 "history": [{"timestamp": 1000, "action": "increment", "amount": 5}],
		 "createdAt": 500}
	]`)

	counters, err := backup.Validate(data)
	require.NoError(t, err)
	require.Len(t, counters, 1)
	require.Equal(t, "Water", counters[0].Name)
	require.Equal(t, 5, counters[0].Count)
	require.Equal(t, 8, counters[0].Target)
	require.Len(t, counters[0].History, 1)
}

func TestValidateRejectsMalformedPayloads(t *testing.T) {
	cases := []struct {
		name string
		data string
	}{
		{"not json", `{broken`},
		{"not an array", `{"id": "a", "name": "x"}`},
		{"missing id", `[{"name": "x"}]`},
		{"empty id", `[{"id": "", "name": "x"}]`},
		{"missing name", `[{"id": "a"}]`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := backup.Validate([]byte(tc.data))
			require.ErrorIs(t, err, backup.ErrInvalidFormat)
		})
	}
}

func TestValidateOneBadElementFailsTheBatch(t *testing.T) {
	data := []byte(`[
		{"id": "a", "name": "ok"},
		{"id": "b"}
	]`)
	_, err := backup.Validate(data)
	require.ErrorIs(t, err, backup.ErrInvalidFormat)
}

func TestValidateAppliesDefaults(t *testing.T) {
	data := []byte(`[{"id": "a", "name": "Water"}]`)

	counters, err := backup.Validate(data)
	require.NoError(t, err)
	c := counters[0]
	require.Equal(t, 0, c.Count)
	require.Equal(t, model.DefaultColor, c.Color)
	require.NotNil(t, c.History)
	require.Empty(t, c.History)
}

func TestValidateCoercesLooseCounts(t *testing.T) {
	cases := []struct {
		name string
		data string
		want int
	}{
		{"float truncates", `[{"id": "a", "name": "x", "count": 5.9}]`, 5},
		{"string defaults to zero", `[{"id": "a", "name": "x", "count": "7"}]`, 0},
		{"negative clamps to zero", `[{"id": "a", "name": "x", "count": -3}]`, 0},
		{"null defaults to zero", `[{"id": "a", "name": "x", "count": null}]`, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			counters, err := backup.Validate([]byte(tc.data))
			require.NoError(t, err)
			require.Equal(t, tc.want, counters[0].Count)
		})
	}
}

func TestMergeImportedWins(t *testing.T) {
	existing := []model.Counter{
		{ID: "a", Name: "Water", Count: 2},
		{ID: "b", Name: "Pushups", Count: 10},
	}
	incoming := []model.Counter{
		{ID: "b", Name: "Pushups", Count: 25},
		{ID: "c", Name: "Pages", Count: 1},
	}

	out := backup.Merge(existing, incoming)
	require.Len(t, out, 3)

	// Known ids are replaced in place, order preserved
	require.Equal(t, "a", out[0].ID)
	require.Equal(t, 2, out[0].Count)
	require.Equal(t, "b", out[1].ID)
	require.Equal(t, 25, out[1].Count)

	// New ids append in incoming order
	require.Equal(t, "c", out[2].ID)
}

func TestMergeDoesNotMutateExisting(t *testing.T) {
	existing := []model.Counter{{ID: "a", Name: "Water", Count: 2}}
	incoming := []model.Counter{{ID: "a", Name: "Water", Count: 9}}

	out := backup.Merge(existing, incoming)
	require.Equal(t, 9, out[0].Count)
	require.Equal(t, 2, existing[0].Count)
}

func TestReplaceDiscardsExisting(t *testing.T) {
	existing := []model.Counter{{ID: "a", Name: "Water"}}
	incoming := []model.Counter{{ID: "x", Name: "Pages"}}

	out := backup.Replace(existing, incoming)
	require.Len(t, out, 1)
	require.Equal(t, "x", out[0].ID)

	out = backup.Replace(existing, nil)
	require.Empty(t, out)
}

func TestExportJSONRoundTrips(t *testing.T) {
	counters := []model.Counter{
		{ID: "a", Name: "Water", Count: 5, Target: 8, Color: "#5AC8FA",
			History: []model.HistoryEntry{{Timestamp: 1000, Action: model.ActionIncrement, Amount: 5}}},
	}

	data, err := backup.ExportJSON(counters)
	require.NoError(t, err)

	got, err := backup.Validate(data)
	require.NoError(t, err)
	require.Equal(t, counters, got)
}

func TestExportJSONEmptyCollection(t *testing.T) {
	data, err := backup.ExportJSON(nil)
	require.NoError(t, err)
	require.Equal(t, "[]", string(data))
}

func TestFileName(t *testing.T) {
	now := time.Date(2026, 9, 1, 15, 4, 5, 0, time.UTC)
	require.Equal(t, "tallies_backup_2026-09-01.json", backup.FileName(now))
}

func TestWriteAndReadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.json")
	counters := []model.Counter{{ID: "a", Name: "Water", Count: 3, Color: "#5AC8FA", History: []model.HistoryEntry{}}}

	written, err := backup.WriteFile(path, counters, time.Now())
	require.NoError(t, err)
	require.Equal(t, path, written)

	got, err := backup.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, counters, got)
}

func TestReadFileErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := backup.ReadFile(filepath.Join(dir, "missing.json"))
	require.Error(t, err)

	bad := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte("not json"), 0644))
	_, err = backup.ReadFile(bad)
	require.ErrorIs(t, err, backup.ErrInvalidFormat)
}

func TestShareText(t *testing.T) {
	counters := []model.Counter{
		{ID: "a", Name: "Water", Count: 5, Target: 8},
		{ID: "b", Name: "Pages", Count: 12},
	}

	got := backup.ShareText(counters)
	want := "My Tallies:\n\nWater (5/8)\nPages: 12\n\nTracked with Tallies app"
	require.Equal(t, want, got)
}

func TestShareTextEmpty(t *testing.T) {
	got := backup.ShareText(nil)
	require.Equal(t, "My Tallies:\n\n\nTracked with Tallies app", got)
}
