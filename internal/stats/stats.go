// Package stats derives read-only summary facts from a counter snapshot.
// Summarize is a pure function; collections are small enough to recompute
// fully on every call.
package stats

import (
	"time"

	"github.com/existflow/tally/internal/model"
)

// Summary aggregates a counter collection.
type Summary struct {
	TotalCounters  int
	TotalCount     int
	TotalActions   int
	CompletedGoals int
	TodayActions   int

	// Leaders are nil for an empty collection. Ties go to the counter that
	// appears first in collection order.
	MostActive   *model.Counter
	HighestCount *model.Counter
}

// Summarize computes a Summary for the snapshot. "Today" is everything at or
// after local midnight of now.
func Summarize(counters []model.Counter, now time.Time) Summary {
	s := Summary{TotalCounters: len(counters)}
	startOfToday := model.StartOfDay(now)

	for i := range counters {
		c := &counters[i]
		s.TotalCount += c.Count
		s.TotalActions += len(c.History)
		s.TodayActions += c.ActionsSince(startOfToday)
		if c.GoalReached() {
			s.CompletedGoals++
		}

		if s.MostActive == nil || len(c.History) > len(s.MostActive.History) {
			s.MostActive = c
		}
		if s.HighestCount == nil || c.Count > s.HighestCount.Count {
			s.HighestCount = c
		}
	}

	return s
}
