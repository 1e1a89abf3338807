// Package outwriter has output and writer logic.
package outwriter

import (
	"github.com/huangsam/whatsmygrade/internal/contract"
	"github.com/huangsam/whatsmygrade/schema"
)

// OutWriter provides a unified interface for all output operations.
// It encapsulates the various output formats and provides a clean API for
// the command layer.
type OutWriter struct{}

// NewOutWriter creates a new instance of the output writer.
func NewOutWriter() *OutWriter {
	return &OutWriter{}
}

// WriteReport prints a grade report using the configured output format.
func (ow *OutWriter) WriteReport(report *schema.GradeReport, cfg *contract.Config) error {
	return PrintGradeReport(report, cfg)
}
