package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// checkCmd focused on scripted pass/fail enforcement.
var checkCmd = &cobra.Command{
	Use:   "check <grade-file>",
	Short: "Exit non-zero unless the grade file computes to a passing grade",
	Long: `Parse a grade file and enforce the passing threshold with the exit code.

Fails with a non-zero exit code when:
- the final computed score does not exceed the passing grade
- passing is unattainable even with a perfect score in unknown categories
- a scheme category has no grade entry at all

Use cases:
- shell scripts and dashboards that only need pass/fail
- semester tracking automation

Examples:
  whatsmygrade check cs101.grades
  whatsmygrade check cs101.grades --passing-grade 0.7`,
	Args:    cobra.ExactArgs(1),
	PreRunE: sharedSetup,
	RunE: func(cmd *cobra.Command, _ []string) error {
		report, err := loadGradeReport()
		if err != nil {
			return err
		}

		if report.HasFinal {
			if !report.Passed {
				return fmt.Errorf("failing: score %.2f%% does not exceed passing grade %.2f%%",
					report.Final*100, report.PassingGrade*100)
			}
			cmd.Printf("passing: score %.2f%% exceeds passing grade %.2f%%\n",
				report.Final*100, report.PassingGrade*100)
			return nil
		}

		joined := strings.Join(report.Unknowns, ", ")
		if !report.Attainable {
			return fmt.Errorf("failing: unattainable even with a perfect score in %s", joined)
		}
		return fmt.Errorf("undetermined: need at least %d%% in %s to pass", report.MinRequired, joined)
	},
}
