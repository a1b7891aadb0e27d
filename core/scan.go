package core

import (
	"context"
	"io/fs"
	"path/filepath"
	"sync"

	"github.com/samhoang/repotwin/internal/contract"
	"github.com/samhoang/repotwin/schema"
)

// vcsInternalDirs are never descended into during any filesystem walk.
var vcsInternalDirs = map[string]struct{}{
	".git": {},
	".hg":  {},
	".svn": {},
}

// ScanCandidates extracts metadata for every located repository on a
// bounded worker pool. Each repository gets its own timeout so one
// unreadable or oversized backup volume cannot stall the whole run.
// Result order is unspecified; ranking is a pure function of the
// collected metadata and does not depend on completion order.
func ScanCandidates(ctx context.Context, cfg *contract.Config, client contract.GitClient, paths []string) []schema.RepoCandidate {
	pathCh := make(chan string, len(paths))
	resultCh := make(chan schema.RepoCandidate, len(paths))
	var wg sync.WaitGroup

	for range cfg.Workers {
		wg.Go(func() {
			for p := range pathCh {
				repoCtx, cancel := context.WithTimeout(ctx, cfg.RepoTimeout)
				resultCh <- scanOne(repoCtx, cfg, client, p)
				cancel()
			}
		})
	}

	for _, p := range paths {
		pathCh <- p
	}
	close(pathCh)

	wg.Wait()
	close(resultCh)

	candidates := make([]schema.RepoCandidate, 0, len(paths))
	for c := range resultCh {
		candidates = append(candidates, c)
	}
	return candidates
}

// scanOne collects the full metadata tuple for a single repository.
// Every failure is recovered locally via sentinel substitution; a scan
// never aborts the batch.
func scanOne(ctx context.Context, cfg *contract.Config, client contract.GitClient, repoPath string) schema.RepoCandidate {
	candidate := schema.RepoCandidate{Path: repoPath}

	branch, err := client.CurrentBranch(ctx, repoPath)
	if err != nil {
		contract.LogWarn("could not resolve branch for "+repoPath, err)
		branch = schema.NotAvailableLabel
	}
	candidate.Branch = branch

	epoch, err := client.LastCommitEpoch(ctx, repoPath)
	switch {
	case err != nil && ctx.Err() != nil:
		// A timed-out scan is not an empty history; the zero epoch still
		// keeps the candidate comparable.
		candidate.LastCommitHuman = schema.TimedOutLabel
	case err != nil:
		// Zero commits; the sentinel epoch keeps the candidate comparable.
		candidate.LastCommitHuman = schema.HumanEpoch(0)
	default:
		candidate.LastCommitEpoch = epoch
		candidate.LastCommitHuman = schema.HumanEpoch(epoch)
	}

	lines, err := client.StatusLines(ctx, repoPath)
	if err != nil {
		contract.LogWarn("could not read status for "+repoPath, err)
		lines = nil
	}
	counts := CountStatus(lines)
	candidate.StagedCount = counts.Staged
	candidate.UnstagedCount = counts.Unstaged
	candidate.UntrackedCount = counts.Untracked
	candidate.Dirty = counts.Dirty()

	ahead, behind, err := client.AheadBehind(ctx, repoPath)
	if err != nil {
		ahead, behind = 0, 0
	}
	candidate.AheadCount = ahead
	candidate.BehindCount = behind

	fileEpoch, filePath := latestFileActivity(ctx, repoPath, cfg.Excludes)
	candidate.LatestFileEpoch = fileEpoch
	candidate.LatestFilePath = filePath

	candidate.ActivityEpoch = schema.ActivityEpoch(candidate.LastCommitEpoch, candidate.LatestFileEpoch)
	return candidate
}

// latestFileActivity walks the repository tree and returns the newest
// modification epoch and its repo-relative path. VCS-internal, build
// output and IDE metadata subtrees are pruned before descent. On a
// timestamp tie the lexicographically greatest path wins, for
// determinism. Unreadable entries are skipped silently.
func latestFileActivity(ctx context.Context, repoPath string, excludes []string) (int64, string) {
	var bestEpoch int64
	var bestPath string

	_ = filepath.WalkDir(repoPath, func(path string, d fs.DirEntry, walkErr error) error {
		if ctx.Err() != nil {
			return filepath.SkipAll
		}
		if walkErr != nil {
			return nil
		}
		if d.IsDir() {
			if _, vcs := vcsInternalDirs[d.Name()]; vcs && path != repoPath {
				return filepath.SkipDir
			}
			if path != repoPath && contract.ShouldExclude(d.Name(), excludes) {
				return filepath.SkipDir
			}
			return nil
		}
		info, err := d.Info()
		if err != nil {
			return nil
		}
		epoch := schema.EpochSeconds(info.ModTime())
		rel, err := filepath.Rel(repoPath, path)
		if err != nil {
			return nil
		}
		rel = filepath.ToSlash(rel)
		if epoch > bestEpoch || (epoch == bestEpoch && rel > bestPath) {
			bestEpoch = epoch
			bestPath = rel
		}
		return nil
	})

	return bestEpoch, bestPath
}
