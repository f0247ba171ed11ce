package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var deleteCmd = &cobra.Command{
	Use:     "delete [counter]...",
	Aliases: []string{"rm"},
	Short:   "Delete counters",
	Long: `Delete one or more counters permanently.

Examples:
  tally delete water
  tally rm 3f2a pushups --force`,
	Args: cobra.MinimumNArgs(1),
	RunE: runDelete,
}

func init() {
	deleteCmd.Flags().Bool("force", false, "Do not ask for confirmation")
}

func runDelete(cmd *cobra.Command, args []string) error {
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

	if sess.cfg.ConfirmDelete && !force {
		if !confirm(fmt.Sprintf("Delete %d counter(s)?", len(ids))) {
			fmt.Println("Cancelled.")
			return nil
		}
	}

	sess.repo.DeleteMany(cmd.Context(), ids)
	for _, name := range names {
		fmt.Printf("🗑  Deleted %q\n", name)
	}
	return nil
}
