package cli

import (
	"fmt"

	"github.com/existflow/tally/internal/store"
	"github.com/spf13/cobra"
)

var themeCmd = &cobra.Command{
	Use:   "theme [light|dark]",
	Short: "Show or set the color theme",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runTheme,
}

func runTheme(cmd *cobra.Command, args []string) error {
	sess, err := openSession(cmd.Context())
	if err != nil {
		return err
	}
	defer sess.Close()

	if len(args) == 0 {
		fmt.Println(loadTheme(cmd.Context(), sess.st))
		return nil
	}

	theme := args[0]
	if theme != "light" && theme != "dark" {
		return fmt.Errorf("theme must be light or dark, got %q", theme)
	}
	if err := sess.st.Set(cmd.Context(), store.KeyTheme, theme); err != nil {
		return fmt.Errorf("failed to save theme: %w", err)
	}
	fmt.Printf("✓ Theme set to %s\n", theme)
	return nil
}
