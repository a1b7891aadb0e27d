package contract

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strconv"
	"strings"
)

// LocalGitClient implements the GitClient interface by executing the
// local 'git' binary installed on the machine.
type LocalGitClient struct{}

var _ GitClient = &LocalGitClient{} // Compile-time check

// NewLocalGitClient creates a new instance of the local Git client.
func NewLocalGitClient() *LocalGitClient {
	return &LocalGitClient{}
}

// Run executes a git command and returns its stdout output.
func (c *LocalGitClient) Run(ctx context.Context, repoPath string, args ...string) ([]byte, error) {
	fullArgs := append([]string{"-C", repoPath}, args...)
	cmd := exec.CommandContext(ctx, "git", fullArgs...)
	out, err := cmd.Output()
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		stderr := strings.TrimSpace(string(exitErr.Stderr))
		return nil, fmt.Errorf("git command failed in %q: %s", repoPath, stderr)
	} else if err != nil {
		return nil, fmt.Errorf("git command failed: %w. Ensure Git is installed and available on your PATH", err)
	}
	return out, nil
}

// CurrentBranch implements the GitClient interface.
func (c *LocalGitClient) CurrentBranch(ctx context.Context, repoPath string) (string, error) {
	out, err := c.Run(ctx, repoPath, "rev-parse", "--abbrev-ref", "HEAD")
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(out)), nil
}

// LastCommitEpoch implements the GitClient interface.
func (c *LocalGitClient) LastCommitEpoch(ctx context.Context, repoPath string) (int64, error) {
	out, err := c.Run(ctx, repoPath, "log", "-n", "1", "--pretty=format:%ct")
	if err != nil {
		return 0, err
	}
	epochStr := strings.TrimSpace(string(out))
	epoch, err := strconv.ParseInt(epochStr, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("failed to parse commit time %q: %w", epochStr, err)
	}
	return epoch, nil
}

// StatusLines implements the GitClient interface.
func (c *LocalGitClient) StatusLines(ctx context.Context, repoPath string) ([]string, error) {
	out, err := c.Run(ctx, repoPath, "status", "--porcelain")
	if err != nil {
		return nil, err
	}
	lines := strings.Split(strings.TrimRight(string(out), "\n"), "\n")
	if len(lines) == 1 && lines[0] == "" {
		return []string{}, nil
	}
	return lines, nil
}

// AheadBehind implements the GitClient interface. It queries the
// left-right commit counts against @{upstream}; a branch with no
// upstream configured yields (0, 0, nil) per the no-upstream contract.
func (c *LocalGitClient) AheadBehind(ctx context.Context, repoPath string) (int, int, error) {
	out, err := c.Run(ctx, repoPath, "rev-list", "--left-right", "--count", "HEAD...@{upstream}")
	if err != nil {
		if ctx.Err() != nil {
			return 0, 0, ctx.Err()
		}
		// No upstream tracking reference configured.
		return 0, 0, nil
	}
	fields := strings.Fields(strings.TrimSpace(string(out)))
	if len(fields) != 2 {
		return 0, 0, fmt.Errorf("unexpected rev-list output %q", strings.TrimSpace(string(out)))
	}
	ahead, err := strconv.Atoi(fields[0])
	if err != nil {
		return 0, 0, fmt.Errorf("failed to parse ahead count %q: %w", fields[0], err)
	}
	behind, err := strconv.Atoi(fields[1])
	if err != nil {
		return 0, 0, fmt.Errorf("failed to parse behind count %q: %w", fields[1], err)
	}
	return ahead, behind, nil
}
