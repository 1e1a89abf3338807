package outwriter

import (
	"os"

	"github.com/huangsam/whatsmygrade/internal/contract"
	"golang.org/x/term"
)

// GetMaxTableNameWidth calculates the maximum width for category names in
// table output based on terminal width.
func GetMaxTableNameWidth(cfg *contract.Config) int {
	var termWidth int

	// Check for absolute width override from flag/env
	if cfg.Width > 0 {
		termWidth = cfg.Width
	}

	if termWidth == 0 { // Not set by override
		detectedWidth, _, err := term.GetSize(int(os.Stdout.Fd()))
		if err != nil || detectedWidth <= 0 {
			// Fallback to conservative default if terminal size can't be detected
			termWidth = 80 // Conservative default for narrow terminals and CI
		} else {
			termWidth = detectedWidth
		}
	}

	// Reserve space for the Weight and Grade columns plus borders/padding.
	available := termWidth - 35
	if available < 12 {
		// Minimum reasonable category width
		return 12
	}
	if available > 50 {
		// Maximum width to keep the table compact
		return 50
	}
	return available
}
