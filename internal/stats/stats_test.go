package stats_test

import (
	"testing"
	"time"

	"github.com/existflow/tally/internal/model"
	"github.com/existflow/tally/internal/stats"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2026, 9, 1, 15, 0, 0, 0, time.UTC)

func entry(ts time.Time) model.HistoryEntry {
	return model.HistoryEntry{Timestamp: ts.UnixMilli(), Action: model.ActionIncrement, Amount: 1}
}

func TestSummarizeEmpty(t *testing.T) {
	s := stats.Summarize(nil, now)
	require.Equal(t, 0, s.TotalCounters)
	require.Equal(t, 0, s.TotalCount)
	require.Equal(t, 0, s.TotalActions)
	require.Equal(t, 0, s.CompletedGoals)
	require.Equal(t, 0, s.TodayActions)
	require.Nil(t, s.MostActive)
	require.Nil(t, s.HighestCount)
}

func TestSummarizeTotals(t *testing.T) {
	counters := []model.Counter{
		{ID: "a", Name: "Water", Count: 5, Target: 8, History: []model.HistoryEntry{entry(now), entry(now)}},
		{ID: "b", Name: "Pushups", Count: 20, Target: 20, History: []model.HistoryEntry{entry(now)}},
		{ID: "c", Name: "Pages", Count: 3},
	}

	s := stats.Summarize(counters, now)
	require.Equal(t, 3, s.TotalCounters)
	require.Equal(t, 28, s.TotalCount)
	require.Equal(t, 3, s.TotalActions)
	require.Equal(t, 1, s.CompletedGoals)

	require.NotNil(t, s.MostActive)
	require.Equal(t, "Water", s.MostActive.Name)
	require.NotNil(t, s.HighestCount)
	require.Equal(t, "Pushups", s.HighestCount.Name)
}

func TestSummarizeTiesGoToFirst(t *testing.T) {
	counters := []model.Counter{
		{ID: "a", Name: "First", Count: 7, History: []model.HistoryEntry{entry(now)}},
		{ID: "b", Name: "Second", Count: 7, History: []model.HistoryEntry{entry(now)}},
	}

	s := stats.Summarize(counters, now)
	require.Equal(t, "First", s.MostActive.Name)
	require.Equal(t, "First", s.HighestCount.Name)
}

func TestSummarizeTodayActions(t *testing.T) {
	yesterday := now.Add(-24 * time.Hour)
	justBeforeMidnight := model.StartOfDay(now).Add(-time.Millisecond)
	atMidnight := model.StartOfDay(now)

	counters := []model.Counter{
		{ID: "a", Name: "Water", History: []model.HistoryEntry{
			entry(yesterday),
			entry(justBeforeMidnight),
			entry(atMidnight),
			entry(now),
		}},
	}

	s := stats.Summarize(counters, now)
	require.Equal(t, 4, s.TotalActions)
	require.Equal(t, 2, s.TodayActions)
}
