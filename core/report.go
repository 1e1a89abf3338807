package core

import (
	"math"

	"github.com/huangsam/whatsmygrade/schema"
)

// BuildReport combines the grading scheme, the declared grade entries and
// the passing threshold into a GradeReport. Duplicate grade entries are
// collapsed last-write-wins. When any declared grade is unknown the report
// carries the minimum-required search result; otherwise it carries the
// final computed percentage. A scheme category with no grade entry at all
// fails the final computation with a UserError naming the category.
func BuildReport(file *GradeFile) (*schema.GradeReport, error) {
	passing := file.Config.PassingGrade

	// Last-write-wins lookup, with insertion order tracked so unknowns are
	// reported in first-declaration order.
	grades := make(map[string]schema.GradeValue, len(file.Entries))
	var order []string
	for _, entry := range file.Entries {
		if _, seen := grades[entry.Name]; !seen {
			order = append(order, entry.Name)
		}
		grades[entry.Name] = entry.Value
	}

	report := &schema.GradeReport{PassingGrade: passing}

	for _, name := range file.Scheme.Categories() {
		line := schema.CategoryLine{
			Name:          name,
			WeightPercent: math.Round(file.Scheme.WeightProportional(name) * 100),
		}
		value, declared := grades[name]
		switch {
		case !declared:
			line.Status = schema.UnspecifiedStatus
		case value.IsUnknown():
			line.Status = schema.UnknownStatus
		default:
			line.Status = schema.KnownStatus
			line.Score = value.Score()
		}
		report.Categories = append(report.Categories, line)
	}

	knowns := make(map[string]float64, len(grades))
	var unknowns []string
	for _, name := range order {
		if grades[name].IsUnknown() {
			unknowns = append(unknowns, name)
		} else {
			knowns[name] = grades[name].Score()
		}
	}
	report.Unknowns = unknowns

	if len(unknowns) > 0 {
		minPercent, ok, err := file.Scheme.MinValueForUnknown(unknowns, knowns, passing)
		if err != nil {
			return nil, err
		}
		report.MinRequired = minPercent
		report.Attainable = ok
		return report, nil
	}

	final, err := file.Scheme.ComputeGrade(knowns)
	if err != nil {
		return nil, err
	}
	report.HasFinal = true
	report.Final = final
	report.Passed = final > passing
	return report, nil
}
