// Package core has core logic for locating, scanning, ranking and
// diffing repository variants.
package core

import (
	"context"
	"time"

	"github.com/samhoang/repotwin/internal/contract"
	"github.com/samhoang/repotwin/internal/outwriter"
	"github.com/samhoang/repotwin/schema"
)

// CompareVariants is the entry point behind every command: locate the
// variants, scan their metadata, rank them, and (when a diff level is
// configured) tree-diff Best against each other variant. Zero located
// variants is a normal, reportable outcome.
func CompareVariants(ctx context.Context, cfg *contract.Config, client contract.GitClient) (*schema.RankedResult, error) {
	paths, err := LocateVariants(cfg.RootPath, cfg.NamePrefix, cfg.MaxDepth)
	if err != nil {
		return nil, err
	}

	candidates := ScanCandidates(ctx, cfg, client, paths)
	candidates = RankCandidates(candidates)
	if cfg.ComputeBest {
		MarkBest(candidates)
	}

	result := &schema.RankedResult{Candidates: candidates}
	if len(candidates) == 0 {
		return result, nil
	}
	if cfg.ComputeBest {
		result.BestPath = candidates[0].Path
	}

	if cfg.DiffLevel != schema.NoneLevel && len(candidates) > 1 {
		otherPaths := make([]string, 0, len(candidates)-1)
		for _, c := range candidates[1:] {
			otherPaths = append(otherPaths, c.Path)
		}
		result.Diffs = DiffAgainstBest(ctx, cfg, candidates[0].Path, otherPaths)
	}

	return result, nil
}

// ExecuteRank runs the scan-and-rank pipeline and prints the ranked table.
func ExecuteRank(ctx context.Context, cfg *contract.Config) error {
	start := time.Now()
	client := contract.NewLocalGitClient()
	result, err := CompareVariants(ctx, cfg, client)
	if err != nil {
		return err
	}
	return outwriter.WriteRanked(result, cfg, time.Since(start))
}

// ExecuteDiff runs the full pipeline including tree diffs and prints the
// per-pair reports. The command layer guarantees a non-none diff level.
func ExecuteDiff(ctx context.Context, cfg *contract.Config) error {
	start := time.Now()
	client := contract.NewLocalGitClient()
	result, err := CompareVariants(ctx, cfg, client)
	if err != nil {
		return err
	}
	return outwriter.WriteDiffs(result, cfg, time.Since(start))
}

// ExecuteForensic runs the scan pipeline and prints the activity
// timeline with proportional bars.
func ExecuteForensic(ctx context.Context, cfg *contract.Config) error {
	start := time.Now()
	client := contract.NewLocalGitClient()
	result, err := CompareVariants(ctx, cfg, client)
	if err != nil {
		return err
	}
	result.Forensic = BuildForensicReport(result.Candidates)
	return outwriter.WriteForensic(result, cfg, time.Since(start))
}
