package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/huangsam/whatsmygrade/internal/contract"
	"github.com/huangsam/whatsmygrade/schema"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// PrintGradeReport outputs a grade report, dispatching based on the output
// format configured.
func PrintGradeReport(report *schema.GradeReport, cfg *contract.Config) error {
	switch cfg.Output {
	case schema.JSONOut:
		if err := writeReportJSONResults(report, cfg); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		if err := writeReportCSVResults(report, cfg); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	default:
		// Default to human-readable table plus outcome lines
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeReportTable(report, cfg, w)
		}, "table")
	}
	return nil
}

// writeReportTable generates the human-readable grade summary: the category
// table followed by either the overall score banner or the minimum-needed
// sentence for unknown categories.
func writeReportTable(report *schema.GradeReport, cfg *contract.Config, writer io.Writer) error {
	if _, err := fmt.Fprintln(writer, contract.BannerColor.Sprint("===== GRADE SUMMARY =====")); err != nil {
		return err
	}

	table := tablewriter.NewWriter(writer)
	table.Header([]string{"Category", "Weight", "Grade"})
	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignLeft
	})

	maxNameWidth := GetMaxTableNameWidth(cfg)
	var data [][]string
	for _, line := range report.Categories {
		name := line.Name
		if len(name) > maxNameWidth {
			name = name[:maxNameWidth-3] + "..."
		}
		row := []string{
			contract.CategoryColor.Sprint(name),
			fmt.Sprintf("%.0f%%", line.WeightPercent),
			contract.ColorStatus(line, report.PassingGrade, cfg.Precision),
		}
		data = append(data, row)
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	return writeReportOutcome(report, cfg, writer)
}

// writeReportOutcome writes the lines after the category table: the final
// score, or what is needed in the unknown categories.
func writeReportOutcome(report *schema.GradeReport, cfg *contract.Config, writer io.Writer) error {
	passing := contract.PassColor.Sprint(contract.FormatPercent(report.PassingGrade, cfg.Precision))

	if len(report.Unknowns) > 0 {
		unknowns := make([]string, len(report.Unknowns))
		for i, u := range report.Unknowns {
			unknowns[i] = contract.CategoryColor.Sprint(u)
		}
		joined := strings.Join(unknowns, ", ")

		if report.Attainable {
			minimum := contract.CategoryColor.Sprintf("%d%%", report.MinRequired)
			_, err := fmt.Fprintf(writer, "To pass the course with a %s, you would need, at minimum, a %s in %s.\n",
				passing, minimum, joined)
			return err
		}
		_, err := fmt.Fprintf(writer, "You would not be able to pass the course with a %s, even with a perfect score (100%%) in %s.\n",
			passing, joined)
		return err
	}

	score := contract.FormatPercent(report.Final, cfg.Precision)
	colored := contract.FailColor.Sprint(score)
	if report.Passed {
		colored = contract.PassColor.Sprint(score)
	}
	if _, err := fmt.Fprintln(writer); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(writer, contract.BannerColor.Sprint("===== OVERALL SCORE =====")); err != nil {
		return err
	}
	_, err := fmt.Fprintf(writer, "          %s\n", colored)
	return err
}

// writeReportCSVResults handles opening the file and writing the CSV rows.
func writeReportCSVResults(report *schema.GradeReport, cfg *contract.Config) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		header := []string{"category", "weight_percent", "status", "score_percent"}
		return writeCSVWithHeader(w, header, func(csvWriter *csv.Writer) error {
			for _, line := range report.Categories {
				score := ""
				if line.Status == schema.KnownStatus {
					score = fmt.Sprintf("%.*f", cfg.Precision, line.Score*100)
				}
				rec := []string{
					line.Name,
					fmt.Sprintf("%.0f", line.WeightPercent),
					string(line.Status),
					score,
				}
				if err := csvWriter.Write(rec); err != nil {
					return err
				}
			}
			return nil
		})
	}, "CSV")
}

// writeReportJSONResults handles opening the file and writing the JSON
// rendition of the full report.
func writeReportJSONResults(report *schema.GradeReport, cfg *contract.Config) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		return writeJSON(w, report)
	}, "JSON")
}
