package cmd

import (
	"github.com/huangsam/whatsmygrade/internal/outwriter"
	"github.com/spf13/cobra"
)

// reportCmd prints the grade summary for one grade file.
var reportCmd = &cobra.Command{
	Use:   "report <grade-file>",
	Short: "Print the grade summary for a grade file",
	Long: `Parse a grade file and print the grade summary: each category with its
proportional weight and current score, then either the overall score or the
minimum percentage needed in the not-yet-known categories to pass.

Grade file format:

  [breakdown]
  exams: 0.6
  homework: 0.4
  [grades]
  exams: grade_multiple([90, 85, 70], 100, drop_worst=1)
  homework: unknown
  [config]
  passing_grade: 70%

Examples:
  # Human-readable summary
  whatsmygrade report cs101.grades

  # Machine-readable report for scripting
  whatsmygrade report cs101.grades --output json`,
	Args: cobra.ExactArgs(1),
	// Unknown --flags are accepted and ignored rather than rejected.
	FParseErrWhitelist: cobra.FParseErrWhitelist{UnknownFlags: true},
	PreRunE:            sharedSetup,
	RunE: func(_ *cobra.Command, _ []string) error {
		report, err := loadGradeReport()
		if err != nil {
			return err
		}
		return outwriter.NewOutWriter().WriteReport(report, cfg)
	},
}
