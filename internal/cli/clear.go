package cli

import (
	"fmt"

	"github.com/existflow/tally/internal/model"
	"github.com/spf13/cobra"
)

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete all counters",
	RunE:  runClear,
}

func init() {
	clearCmd.Flags().Bool("force", false, "Do not ask for confirmation")
}

func runClear(cmd *cobra.Command, args []string) error {
	force, _ := cmd.Flags().GetBool("force")

	sess, err := openSession(cmd.Context())
	if err != nil {
		return err
	}
	defer sess.Close()

	n := sess.repo.Len()
	if n == 0 {
		fmt.Println("Nothing to clear.")
		return nil
	}

	if !force && !confirm(fmt.Sprintf("Delete all %d counters?", n)) {
		fmt.Println("Aborted.")
		return nil
	}

	sess.repo.Replace(cmd.Context(), []model.Counter{})
	fmt.Printf("🧹 Cleared %d counters.\n", n)
	return nil
}
