package core

import (
	"sort"

	"github.com/samhoang/repotwin/schema"
)

// BuildForensicReport derives the activity timeline from scanned
// candidates. Rows sort by activity epoch descending with path as the
// tiebreak; bar widths normalize against the global min/max epochs,
// which are pure folds over the candidate list. The highest-activity
// repository is labeled "probable last active", a heuristic rather than
// a guarantee.
func BuildForensicReport(candidates []schema.RepoCandidate) *schema.ForensicReport {
	report := &schema.ForensicReport{}
	if len(candidates) == 0 {
		return report
	}

	report.MinEpoch = candidates[0].ActivityEpoch
	report.MaxEpoch = candidates[0].ActivityEpoch
	for _, c := range candidates[1:] {
		report.MinEpoch = min(report.MinEpoch, c.ActivityEpoch)
		report.MaxEpoch = max(report.MaxEpoch, c.ActivityEpoch)
	}

	rows := make([]schema.ForensicRow, 0, len(candidates))
	for _, c := range candidates {
		rows = append(rows, schema.ForensicRow{
			Path:          c.Path,
			Branch:        c.Branch,
			ActivityEpoch: c.ActivityEpoch,
			ActivityHuman: schema.HumanEpoch(c.ActivityEpoch),
			BarWidth:      schema.BarWidth(c.ActivityEpoch, report.MinEpoch, report.MaxEpoch),
		})
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].ActivityEpoch != rows[j].ActivityEpoch {
			return rows[i].ActivityEpoch > rows[j].ActivityEpoch
		}
		return rows[i].Path < rows[j].Path
	})

	report.Rows = rows
	report.ProbableLastActive = rows[0].Path
	return report
}
