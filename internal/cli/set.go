package cli

import (
	"fmt"

	"github.com/existflow/tally/internal/colorutil"
	"github.com/existflow/tally/internal/counter"
	"github.com/existflow/tally/internal/validate"
	"github.com/spf13/cobra"
)

var setCmd = &cobra.Command{
	Use:     "set [counter]",
	Aliases: []string{"edit"},
	Short:   "Edit a counter",
	Long: `Edit a counter's name, target, color or count.

Examples:
  tally set water --name "Water glasses"
  tally set water --target 10
  tally set water --count 3
  tally set water --color "#FF9500"`,
	Args: cobra.ExactArgs(1),
	RunE: runSet,
}

var (
	setName   string
	setTarget string
	setColor  string
	setCount  string
)

func init() {
	setCmd.Flags().StringVar(&setName, "name", "", "New name")
	setCmd.Flags().StringVar(&setTarget, "target", "", "New target (positive integer, 0 clears it)")
	setCmd.Flags().StringVar(&setColor, "color", "", "New hex color")
	setCmd.Flags().StringVar(&setCount, "count", "", "Set the count directly (non-negative integer)")
}

func runSet(cmd *cobra.Command, args []string) error {
	var u counter.Update

	if cmd.Flags().Changed("name") {
		name := validate.SanitizeName(setName)
		if err := validate.Name(name); err != nil {
			return err
		}
		u.Name = &name
	}
	if cmd.Flags().Changed("target") {
		target := 0
		if setTarget != "0" {
			n, err := validate.Target(setTarget)
			if err != nil {
				return fmt.Errorf("invalid target: %w", err)
			}
			target = n
		}
		u.Target = &target
	}
	if cmd.Flags().Changed("color") {
		color, err := colorutil.Normalize(setColor)
		if err != nil {
			return fmt.Errorf("invalid color %q", setColor)
		}
		u.Color = &color
	}
	if cmd.Flags().Changed("count") {
		n, err := validate.Count(setCount)
		if err != nil {
			return fmt.Errorf("invalid count: %w", err)
		}
		u.Count = &n
	}

	if u.Name == nil && u.Target == nil && u.Color == nil && u.Count == nil {
		return fmt.Errorf("nothing to change; pass --name, --target, --color or --count")
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

	sess.repo.Update(cmd.Context(), c.ID, u)
	updated, _ := sess.repo.Get(c.ID)
	fmt.Printf("✓ Updated %q\n", updated.Name)
	return nil
}
