// Package core implements the grade file language and the grading engine:
// section parsing, the weighted grading scheme, and the report builder that
// turns parsed declarations into a final score or a minimum-needed search.
package core

import (
	"fmt"
	"os"

	"github.com/huangsam/whatsmygrade/schema"
)

// DefaultPassingGrade is the passing threshold used when a grade file has
// no [config] section, i.e. 50%.
const DefaultPassingGrade = 0.5

// FileConfig holds the settings a grade file can declare in its [config]
// section.
type FileConfig struct {
	PassingGrade float64

	// PassingGradeSet reports whether the file declared passing_grade
	// itself, so callers can tell the default apart from an explicit 50%.
	PassingGradeSet bool
}

// GradeFile is the result of parsing one grade file: the grading scheme
// from [breakdown], the declared grade entries from [grades], and the
// file-level configuration.
type GradeFile struct {
	Scheme  *Scheme
	Entries []schema.GradeEntry
	Config  FileConfig
}

// LoadFile reads and parses the grade file at path. The file is read fully
// and closed before parsing begins; a missing file is a UserError, not a
// crash.
func LoadFile(path string) (*GradeFile, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, schema.NewUserError(fmt.Sprintf("Cannot find file with path %q", path))
	}
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return Parse(string(content))
}
