package cli

import (
	"fmt"
	"strings"

	"github.com/existflow/tally/internal/colorutil"
	"github.com/existflow/tally/internal/counter"
	"github.com/existflow/tally/internal/validate"
	"github.com/spf13/cobra"
)

var addCmd = &cobra.Command{
	Use:   "add [name]",
	Short: "Add a new counter",
	Long: `Add a new counter, optionally with a target and color.

Examples:
  tally add "Water"
  tally add "Water" --target 8
  tally add "Pushups" -t 50 -c "#34C759"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runAdd,
}

var (
	addTarget string
	addColor  string
)

func init() {
	addCmd.Flags().StringVarP(&addTarget, "target", "t", "", "Optional goal (positive integer)")
	addCmd.Flags().StringVarP(&addColor, "color", "c", "", "Hex color like #5AC8FA")
}

// nameFromArgs joins the positional args into a single trimmed counter name.
func nameFromArgs(args []string) string {
	return validate.SanitizeName(strings.Join(args, " "))
}

func runAdd(cmd *cobra.Command, args []string) error {
	name := nameFromArgs(args)
	if err := validate.Name(name); err != nil {
		return err
	}

	target := 0
	if addTarget != "" {
		n, err := validate.Target(addTarget)
		if err != nil {
			return fmt.Errorf("invalid target: %w", err)
		}
		target = n
	}

	sess, err := openSession(cmd.Context())
	if err != nil {
		return err
	}
	defer sess.Close()

	color := sess.cfg.DefaultColor
	if addColor != "" {
		color, err = colorutil.Normalize(addColor)
		if err != nil {
			return fmt.Errorf("invalid color %q", addColor)
		}
	}

	c := sess.repo.Add(cmd.Context(), counter.AddInput{Name: name, Target: target, Color: color})
	if c.HasTarget() {
		fmt.Printf("✓ Added %q (id %s, target %d)\n", c.Name, shortID(c.ID), c.Target)
	} else {
		fmt.Printf("✓ Added %q (id %s)\n", c.Name, shortID(c.ID))
	}
	return nil
}
