package cmd

import (
	"github.com/huangsam/whatsmygrade/core/expr"
	"github.com/spf13/cobra"
)

// evalCmd evaluates a single grade expression from the command line.
var evalCmd = &cobra.Command{
	Use:   "eval <expression>",
	Short: "Evaluate a single grade expression",
	Long: `Evaluate one grade expression and print its value.

Supported forms: percent literals ("85%"), arithmetic over numbers, and the
builtins grade_parts, grade_multiple, percent and unknown.

Examples:
  whatsmygrade eval '85%'
  whatsmygrade eval 'grade_parts((18, 20), (45, 50))'
  whatsmygrade eval 'grade_multiple([100, 90, 80], 100, use_best=2)'`,
	Args:    cobra.ExactArgs(1),
	PreRunE: sharedSetup,
	RunE: func(cmd *cobra.Command, args []string) error {
		value, err := expr.Evaluate(args[0])
		if err != nil {
			return err
		}
		if value.IsUnknown() {
			cmd.Println("unknown")
			return nil
		}
		cmd.Printf("%g (%.*f%%)\n", value.Score(), cfg.Precision, value.Score()*100)
		return nil
	},
}
