// Package contract provides interfaces and shared utilities for internal architecture.
package contract

import "context"

// GitClient defines the version-control queries the metadata scanner needs.
// This allows the core scan logic to be tested without a real git executable.
type GitClient interface {
	// --- Generic / Low-Level ---

	// Run executes a git command and returns its stdout.
	// Its use should be minimized in favor of the explicit methods below.
	Run(ctx context.Context, repoPath string, args ...string) ([]byte, error)

	// --- Branch / Commit State ---

	// CurrentBranch returns the checked-out branch name for the repository.
	CurrentBranch(ctx context.Context, repoPath string) (string, error)

	// LastCommitEpoch returns the committer time of HEAD in Unix seconds.
	// A repository with zero commits returns an error; callers substitute
	// the epoch-0 sentinel.
	LastCommitEpoch(ctx context.Context, repoPath string) (int64, error)

	// --- Working Tree / Upstream ---

	// StatusLines returns the porcelain status lines for the working tree,
	// one "XY path" entry per changed path.
	StatusLines(ctx context.Context, repoPath string) ([]string, error)

	// AheadBehind returns the commit counts relative to the configured
	// upstream. A repository with no upstream returns (0, 0, nil); the
	// no-upstream state is first-class, not an error.
	AheadBehind(ctx context.Context, repoPath string) (ahead, behind int, err error)
}
