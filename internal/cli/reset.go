package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset [counter]...",
	Short: "Reset counters to zero",
	Long: `Reset one or more counters to zero, clearing their history.

Examples:
  tally reset water
  tally reset water pushups`,
	Args: cobra.MinimumNArgs(1),
	RunE: runReset,
}

func init() {
	resetCmd.Flags().Bool("force", false, "Do not ask for confirmation")
}

func runReset(cmd *cobra.Command, args []string) error {
	force, _ := cmd.Flags().GetBool("force")

	sess, err := openSession(cmd.Context())
	if err != nil {
		return err
	}
	defer sess.Close()

	counters := sess.repo.Counters()
	ids := make([]string, 0, len(args))
	names := make([]string, 0, len(args))
	for _, ref := range args {
		c, err := resolveCounter(counters, ref)
		if err != nil {
			return err
		}
		ids = append(ids, c.ID)
		names = append(names, c.Name)
	}

	if !force && !confirm(fmt.Sprintf("Reset %d counter(s) to 0 and clear history?", len(ids))) {
		fmt.Println("Cancelled.")
		return nil
	}

	sess.repo.ResetMany(cmd.Context(), ids)
	for _, name := range names {
		fmt.Printf("↺ Reset %q\n", name)
	}
	return nil
}
