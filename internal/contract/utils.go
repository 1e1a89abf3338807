package contract

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/huangsam/whatsmygrade/schema"
)

// Color variables for console output.
var (
	PassColor        = color.New(color.FgGreen)             // passing scores and thresholds
	FailColor        = color.New(color.FgRed, color.Bold)   // failing scores and errors
	UnknownColor     = color.New(color.FgYellow)            // grades not yet earned
	UnspecifiedColor = color.New(color.FgRed)               // scheme categories with no grade entry
	CategoryColor    = color.New(color.FgCyan)              // category names
	BannerColor      = color.New(color.FgWhite, color.Bold) // section banners
)

// PlainStatus returns the plain text rendering of a category line's status.
// This is the core logic used for CSV, JSON and table printing.
func PlainStatus(line schema.CategoryLine, passing float64, precision int) string {
	switch line.Status {
	case schema.UnspecifiedStatus:
		return "(unspecified)"
	case schema.UnknownStatus:
		return "unknown"
	default:
		return fmt.Sprintf("%.*f%%", precision, line.Score*100)
	}
}

// ColorStatus returns a colored rendering of a category line's status for
// table output. It uses PlainStatus to determine the string, then applies
// the appropriate color.
func ColorStatus(line schema.CategoryLine, passing float64, precision int) string {
	text := PlainStatus(line, passing, precision)

	switch line.Status {
	case schema.UnspecifiedStatus:
		return UnspecifiedColor.Sprint(text)
	case schema.UnknownStatus:
		return UnknownColor.Sprint(text)
	default:
		if line.Score >= passing {
			return PassColor.Sprint(text)
		}
		return FailColor.Sprint(text)
	}
}

// FormatPercent formats a fraction of 1.0 as a percentage string.
func FormatPercent(fraction float64, precision int) string {
	return fmt.Sprintf("%.*f%%", precision, fraction*100)
}

// SelectOutputFile returns the appropriate file handle for output, based on
// the provided file path. It falls back to os.Stdout for an empty path.
func SelectOutputFile(filePath string) (*os.File, error) {
	if filePath == "" {
		return os.Stdout, nil
	}
	return os.Create(filePath)
}

// ParseBoolString parses a string value into a boolean.
// Accepts "yes", "no", "true", "false", "1", "0" (case-insensitive).
// Returns an error for invalid values.
func ParseBoolString(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "yes", "true", "1":
		return true, nil
	case "no", "false", "0":
		return false, nil
	default:
		return false, fmt.Errorf("invalid boolean string: %s (expected yes/no/true/false/1/0)", s)
	}
}

// LogFatal logs an error and exits the program.
func LogFatal(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Fatal %s: %v\n", msg, err)
	os.Exit(1)
}

// LogWarn logs a warning message to stderr.
func LogWarn(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Warn %s: %v\n", msg, err)
}
