package cli

import (
	"errors"
	"fmt"
	"time"

	"github.com/existflow/tally/internal/backup"
	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export [path]",
	Short: "Export counters to a JSON backup file",
	Long: `Export all counters to a JSON backup file.

Without a path, writes tallies_backup_<date>.json in the current directory.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runExport,
}

var importCmd = &cobra.Command{
	Use:   "import [path]",
	Short: "Import counters from a JSON backup file",
	Long: `Import counters from a backup file.

By default imported counters are merged into the existing collection
(imported entries win on id conflicts). Use --replace to discard the
existing collection first.`,
	Args: cobra.ExactArgs(1),
	RunE: runImport,
}

var shareCmd = &cobra.Command{
	Use:   "share",
	Short: "Print a shareable text summary",
	RunE:  runShare,
}

var importReplace bool

func init() {
	importCmd.Flags().BoolVar(&importReplace, "replace", false, "Replace the existing collection instead of merging")
}

func runExport(cmd *cobra.Command, args []string) error {
	sess, err := openSession(cmd.Context())
	if err != nil {
		return err
	}
	defer sess.Close()

	path := ""
	if len(args) == 1 {
		path = args[0]
	}

	written, err := backup.WriteFile(path, sess.repo.Counters(), time.Now())
	if err != nil {
		return err
	}
	fmt.Printf("✓ Exported %d counters to %s\n", sess.repo.Len(), written)
	return nil
}

func runImport(cmd *cobra.Command, args []string) error {
	incoming, err := backup.ReadFile(args[0])
	if err != nil {
		if errors.Is(err, backup.ErrInvalidFormat) {
			return fmt.Errorf("the file does not contain valid counter data: %w", err)
		}
		return err
	}

	sess, err := openSession(cmd.Context())
	if err != nil {
		return err
	}
	defer sess.Close()

	if importReplace {
		sess.repo.Replace(cmd.Context(), backup.Replace(sess.repo.Counters(), incoming))
		fmt.Printf("✓ Replaced collection with %d imported counters\n", len(incoming))
		return nil
	}

	sess.repo.Replace(cmd.Context(), backup.Merge(sess.repo.Counters(), incoming))
	fmt.Printf("✓ Merged %d imported counters (%d total)\n", len(incoming), sess.repo.Len())
	return nil
}

func runShare(cmd *cobra.Command, args []string) error {
	sess, err := openSession(cmd.Context())
	if err != nil {
		return err
	}
	defer sess.Close()

	fmt.Println(backup.ShareText(sess.repo.Counters()))
	return nil
}
