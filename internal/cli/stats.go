package cli

import (
	"fmt"
	"time"

	"github.com/existflow/tally/internal/stats"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show summary statistics",
	RunE:  runStats,
}

func runStats(cmd *cobra.Command, args []string) error {
	sess, err := openSession(cmd.Context())
	if err != nil {
		return err
	}
	defer sess.Close()

	summary := stats.Summarize(sess.repo.Counters(), time.Now())

	fmt.Printf("Counters:        %d\n", summary.TotalCounters)
	fmt.Printf("Total count:     %d\n", summary.TotalCount)
	fmt.Printf("Total actions:   %d\n", summary.TotalActions)
	fmt.Printf("Actions today:   %d\n", summary.TodayActions)
	fmt.Printf("Goals completed: %d\n", summary.CompletedGoals)
	if summary.MostActive != nil {
		fmt.Printf("Most active:     %s (%d actions)\n", summary.MostActive.Name, len(summary.MostActive.History))
	}
	if summary.HighestCount != nil {
		fmt.Printf("Highest count:   %s (%d)\n", summary.HighestCount.Name, summary.HighestCount.Count)
	}
	return nil
}
