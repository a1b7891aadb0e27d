package outwriter

import (
	"os"

	"github.com/samhoang/repotwin/internal/contract"
	"golang.org/x/term"
)

// getMaxTablePathWidth calculates the maximum width for repository paths
// in table output based on terminal width and table configuration.
func getMaxTablePathWidth(cfg *contract.Config) int {
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

	// Reserve space for fixed columns with table formatting
	baseWidth := 45 // Rank + Branch + Last Commit + Status + Ahead/Behind with borders/padding

	// Add detail columns with formatting
	if cfg.DirtyDetail {
		baseWidth += 30 // Staged + Unstaged + Untracked + Latest File columns
	}

	// Reserve generous space for table borders, separators, and padding
	baseWidth += 15

	available := termWidth - baseWidth
	if available < 15 {
		// Minimum reasonable path width
		return 15
	}
	if available > 70 {
		// Maximum path width to prevent overly long paths
		return 70
	}
	return available
}
