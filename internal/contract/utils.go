package contract

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
)

// Semantic colors for console output.
var (
	DirtyColor  = color.New(color.FgYellow, color.Bold) // dirty working tree: warning
	AheadColor  = color.New(color.FgGreen)              // unpushed commits: positive signal
	BehindColor = color.New(color.FgMagenta)            // divergence from upstream: caution
	BestColor   = color.New(color.FgCyan, color.Bold)   // the designated Best row: highlight
)

// ColorDirty renders a dirty/clean cell with the warning color applied
// only when the tree is dirty.
func ColorDirty(dirty bool) string {
	if dirty {
		return DirtyColor.Sprint("dirty")
	}
	return "clean"
}

// ColorAhead renders an ahead count, highlighting nonzero values.
func ColorAhead(n int) string {
	if n > 0 {
		return AheadColor.Sprintf("+%d", n)
	}
	return "0"
}

// ColorBehind renders a behind count, highlighting nonzero values.
func ColorBehind(n int) string {
	if n > 0 {
		return BehindColor.Sprintf("-%d", n)
	}
	return "0"
}

// TruncatePath shortens a path for table display, keeping the trailing
// segments because they are the most specific.
func TruncatePath(path string, maxLen int) string {
	if maxLen <= 3 || len(path) <= maxLen {
		return path
	}
	return "..." + path[len(path)-maxLen+3:]
}

// SelectOutputFile returns the appropriate file handle for output, based
// on the provided file path. It returns os.Stdout for an empty path.
func SelectOutputFile(filePath string) (*os.File, error) {
	if filePath == "" {
		return os.Stdout, nil
	}
	return os.Create(filePath)
}

// MatchesAnyPattern reports whether a slash-separated relative path
// matches at least one glob pattern. An empty pattern list matches all
// paths (inclusion semantics). Patterns are tried against the full
// relative path and against the base filename, so "*.md" matches
// "docs/readme.md".
func MatchesAnyPattern(relPath string, patterns []string) bool {
	if len(patterns) == 0 {
		return true
	}
	for _, pat := range patterns {
		if ok, err := filepath.Match(pat, relPath); err == nil && ok {
			return true
		}
		if ok, err := filepath.Match(pat, filepath.Base(relPath)); err == nil && ok {
			return true
		}
	}
	return false
}

// ShouldExclude reports whether a directory name matches one of the scan
// exclusion entries. Exclusions are plain directory names, not globs.
func ShouldExclude(name string, excludes []string) bool {
	for _, ex := range excludes {
		ex = strings.TrimSpace(ex)
		if ex == "" {
			continue
		}
		if name == ex {
			return true
		}
	}
	return false
}

// LogFatal logs an error and exits the program.
func LogFatal(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Fatal %s: %v\n", msg, err)
	os.Exit(1)
}

// LogWarn logs a warning message to stderr.
func LogWarn(msg string, err error) {
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Warning %s: %v\n", msg, err)
		return
	}
	_, _ = fmt.Fprintf(os.Stderr, "Warning %s\n", msg)
}
