package core

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// ErrRootNotFound is returned when the scan root itself does not exist.
// Zero matching repositories is a normal outcome, not this error.
var ErrRootNotFound = errors.New("root path not found")

// LocateVariants walks rootPath up to maxDepth levels deep and returns
// every directory whose base name contains namePrefix and that carries a
// version-control marker (a .git directory, or a .git file as written by
// worktrees and submodules). Results are sorted ascending for
// determinism. Unreadable subtrees are skipped silently.
func LocateVariants(rootPath, namePrefix string, maxDepth int) ([]string, error) {
	info, err := os.Stat(rootPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrRootNotFound, rootPath)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("root path is not a directory: %s", rootPath)
	}

	var matches []string
	err = filepath.WalkDir(rootPath, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			// Permission denied or a racing delete; keep walking.
			return nil
		}
		if !d.IsDir() {
			return nil
		}
		if d.Name() == ".git" {
			return filepath.SkipDir
		}
		if depthBelow(rootPath, path) > maxDepth {
			return filepath.SkipDir
		}
		if strings.Contains(d.Name(), namePrefix) && hasVCSMarker(path) {
			matches = append(matches, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Strings(matches)
	return matches, nil
}

// depthBelow counts directory levels between root and path.
func depthBelow(root, path string) int {
	rel, err := filepath.Rel(root, path)
	if err != nil || rel == "." {
		return 0
	}
	return strings.Count(rel, string(filepath.Separator)) + 1
}

// hasVCSMarker reports whether dir contains a .git entry of any kind.
func hasVCSMarker(dir string) bool {
	_, err := os.Stat(filepath.Join(dir, ".git"))
	return err == nil
}
