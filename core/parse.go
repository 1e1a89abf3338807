package core

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/huangsam/whatsmygrade/core/expr"
	"github.com/huangsam/whatsmygrade/schema"
)

// Section names with parsing effects. Statements under any other section
// header are still validated and evaluated, but their results are dropped.
const (
	breakdownSection = "breakdown"
	gradesSection    = "grades"
	configSection    = "config"
)

// valueNamePattern extracts the category name at the start of a statement.
// The match is taken literally, including any trailing spaces before the
// colon.
var valueNamePattern = regexp.MustCompile(`^[A-Za-z0-9_\- ]+`)

// Parse consumes raw grade file text and produces the grading scheme, the
// declared grade entries and the file configuration. Parsing is fail-fast:
// the first malformed line aborts with a UserError and nothing partial is
// returned.
func Parse(content string) (*GradeFile, error) {
	file := &GradeFile{
		Config: FileConfig{PassingGrade: DefaultPassingGrade},
	}

	var section string
	var accumulated []Category

	for _, rawLine := range strings.Split(content, "\n") {
		line := strings.TrimSpace(rawLine)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if strings.HasPrefix(line, "[") && strings.HasSuffix(line, "]") {
			section = line[1 : len(line)-1]
			continue
		}

		// Statements of the form "name: expression" must be contextualized
		// by a section header.
		if section == "" {
			return nil, schema.NewUserError(fmt.Sprintf("Unexpected statement %q", line))
		}

		name := valueNamePattern.FindString(line)
		if name == "" {
			return nil, schema.NewUserErrorLine("Missing value name", line)
		}
		rest := line[len(name):]

		if !strings.HasPrefix(rest, ":") {
			return nil, schema.NewUserErrorLine("Expected colon", rest)
		}
		rest = rest[1:]
		if rest == "" {
			return nil, schema.NewUserErrorLine("Expected expression following a colon", rest)
		}

		value, err := expr.Evaluate(rest)
		if err != nil {
			return nil, err
		}

		switch section {
		case breakdownSection:
			if value.IsUnknown() {
				return nil, schema.NewUserErrorLine("Invalid weight", rest)
			}
			accumulated = append(accumulated, Category{Name: name, Weight: value.Score()})
		case gradesSection:
			file.Entries = append(file.Entries, schema.GradeEntry{Name: name, Value: value})
		case configSection:
			if name != "passing_grade" {
				return nil, schema.NewUserError(fmt.Sprintf("Unknown config option %q", name))
			}
			if value.IsUnknown() {
				return nil, schema.NewUserErrorLine("Invalid passing grade", rest)
			}
			file.Config.PassingGrade = value.Score()
			file.Config.PassingGradeSet = true
		}
	}

	file.Scheme = NewScheme(accumulated)
	return file, nil
}
