package cli

import (
	"fmt"
	"strings"

	"github.com/existflow/tally/internal/model"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List counters",
	Long: `List counters in display order.

Examples:
  tally list
  tally list --filter water`,
	RunE: runList,
}

var listFilter string

func init() {
	listCmd.Flags().StringVarP(&listFilter, "filter", "f", "", "Show only counters whose name contains this text")
}

func runList(cmd *cobra.Command, args []string) error {
	sess, err := openSession(cmd.Context())
	if err != nil {
		return err
	}
	defer sess.Close()

	counters := sess.repo.Counters()
	if listFilter != "" {
		filtered := counters[:0]
		for _, c := range counters {
			if strings.Contains(strings.ToLower(c.Name), strings.ToLower(listFilter)) {
				filtered = append(filtered, c)
			}
		}
		counters = filtered
	}

	if len(counters) == 0 {
		fmt.Println("No counters found. Add one with: tally add \"Water\"")
		return nil
	}

	fmt.Printf("\n%d counters\n", len(counters))
	fmt.Println(strings.Repeat("─", 60))
	for _, c := range counters {
		printCounter(c)
	}
	fmt.Println()
	return nil
}

func printCounter(c model.Counter) {
	count := fmt.Sprintf("%d", c.Count)
	if c.HasTarget() {
		count = fmt.Sprintf("%d/%d", c.Count, c.Target)
		if c.GoalReached() {
			count += " ✓"
		}
	}

	name := c.Name
	if len(name) > 30 {
		name = name[:27] + "..."
	}

	fmt.Printf("  %-8s  %-30s  %-12s  %d actions\n", shortID(c.ID), name, count, len(c.History))
}
