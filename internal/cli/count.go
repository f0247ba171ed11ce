package cli

import (
	"fmt"

	"github.com/existflow/tally/internal/validate"
	"github.com/spf13/cobra"
)

var incCmd = &cobra.Command{
	Use:   "inc [counter]",
	Short: "Increment a counter",
	Long: `Increment a counter by 1, or by --amount.

Examples:
  tally inc water
  tally inc 3f2a -n 5`,
	Args: cobra.ExactArgs(1),
	RunE: runInc,
}

var decCmd = &cobra.Command{
	Use:   "dec [counter]",
	Short: "Decrement a counter",
	Long: `Decrement a counter by 1, or by --amount. Counts never go below zero.

Examples:
  tally dec water
  tally dec 3f2a -n 3`,
	Args: cobra.ExactArgs(1),
	RunE: runDec,
}

var (
	incAmount string
	decAmount string
)

func init() {
	incCmd.Flags().StringVarP(&incAmount, "amount", "n", "", "Amount to add (positive integer, default 1)")
	decCmd.Flags().StringVarP(&decAmount, "amount", "n", "", "Amount to subtract (positive integer, default 1)")
}

func runInc(cmd *cobra.Command, args []string) error {
	amount := 1
	if incAmount != "" {
		n, err := validate.IncrementAmount(incAmount)
		if err != nil {
			return fmt.Errorf("invalid amount: %w", err)
		}
		amount = n
	}

	sess, err := openSession(cmd.Context())
	if err != nil {
		return err
	}
	defer sess.Close()

	c, err := resolveCounter(sess.repo.Counters(), args[0])
	if err != nil {
		return err
	}

	sess.repo.Increment(cmd.Context(), c.ID, amount)
	updated, _ := sess.repo.Get(c.ID)
	printCountChange(updated.Name, updated.Count, updated.Target, updated.GoalReached())
	return nil
}

func runDec(cmd *cobra.Command, args []string) error {
	amount := 1
	if decAmount != "" {
		n, err := validate.IncrementAmount(decAmount)
		if err != nil {
			return fmt.Errorf("invalid amount: %w", err)
		}
		amount = n
	}

	sess, err := openSession(cmd.Context())
	if err != nil {
		return err
	}
	defer sess.Close()

	c, err := resolveCounter(sess.repo.Counters(), args[0])
	if err != nil {
		return err
	}

	sess.repo.Decrement(cmd.Context(), c.ID, amount)
	updated, _ := sess.repo.Get(c.ID)
	printCountChange(updated.Name, updated.Count, updated.Target, updated.GoalReached())
	return nil
}

func printCountChange(name string, count, target int, reached bool) {
	if target > 0 {
		mark := ""
		if reached {
			mark = "  🎯 goal reached"
		}
		fmt.Printf("%s: %d/%d%s\n", name, count, target, mark)
		return
	}
	fmt.Printf("%s: %d\n", name, count)
}
