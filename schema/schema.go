// Package schema has configs, models and global variables for all parts of repotwin.
package schema

// RepoCandidate represents one discovered copy of a version-controlled
// project, together with the metadata used for ranking. Absent signals
// default to zero and never propagate as nulls into comparisons.
type RepoCandidate struct {
	Path            string `json:"path"`              // Absolute path; unique identifier
	Branch          string `json:"branch"`            // Checked-out branch, or "N/A"
	LastCommitEpoch int64  `json:"last_commit_epoch"` // Unix seconds of HEAD commit; 0 when no commits
	LastCommitHuman string `json:"last_commit"`       // Human-readable commit time, or "NO COMMITS"
	Dirty           bool   `json:"dirty"`             // True when any staged, unstaged or untracked change exists
	StagedCount     int    `json:"staged"`            // Paths with an index-side change
	UnstagedCount   int    `json:"unstaged"`          // Paths with a worktree-side change
	UntrackedCount  int    `json:"untracked"`         // Untracked paths
	AheadCount      int    `json:"ahead"`             // Commits ahead of upstream; 0 when no upstream
	BehindCount     int    `json:"behind"`            // Commits behind upstream; 0 when no upstream
	LatestFileEpoch int64  `json:"latest_file_epoch"` // Unix seconds of the newest non-VCS file
	LatestFilePath  string `json:"latest_file"`       // Repo-relative path of that file
	ActivityEpoch   int64  `json:"activity_epoch"`    // max(LastCommitEpoch, LatestFileEpoch)
	Best            bool   `json:"best"`              // Set on the top-ranked candidate only
}

// DiffRecord is one classified discrepancy between the Best tree and
// another variant's tree.
type DiffRecord struct {
	Category      DiffCategory `json:"category"`
	RelPath       string       `json:"path"`                     // Slash-separated path relative to both roots
	OtherRepo     string       `json:"other_repo"`               // Absolute path of the non-Best variant
	BestChecksum  string       `json:"best_checksum,omitempty"`  // Hex digest of the Best side (checksum mode)
	OtherChecksum string       `json:"other_checksum,omitempty"` // Hex digest of the other side (checksum mode)
	Anomaly       bool         `json:"anomaly,omitempty"`        // True when the record stands in for an unreadable path
}

// TopDirCount breaks a summary down by top-level subdirectory so the
// dominant divergent subsystem is visible without reading every path.
type TopDirCount struct {
	Dir            string `json:"dir"` // First path segment, or "." for root-level files
	OnlyInBest     int    `json:"only_in_best"`
	OnlyInOther    int    `json:"only_in_other"`
	ContentDiffers int    `json:"content_differs"`
}

// DiffSummary aggregates one comparison pass. It is built in the same
// pass that classifies records and returned as a value; nothing mutates
// it afterwards.
type DiffSummary struct {
	OnlyInBest     int           `json:"only_in_best"`
	OnlyInOther    int           `json:"only_in_other"`
	ContentDiffers int           `json:"content_differs"`
	TopDirs        []TopDirCount `json:"top_dirs,omitempty"`
}

// Total returns the number of discrepancies across all categories.
func (s DiffSummary) Total() int {
	return s.OnlyInBest + s.OnlyInOther + s.ContentDiffers
}

// DiffReport is the outcome of comparing Best against one other variant.
type DiffReport struct {
	BestPath     string       `json:"best_path"`
	OtherPath    string       `json:"other_path"`
	Level        DiffLevel    `json:"level"`
	Summary      DiffSummary  `json:"summary"`
	Records      []DiffRecord `json:"records,omitempty"`
	ArtifactPath string       `json:"artifact,omitempty"` // Unified-diff file written in full mode
}

// ForensicRow is one timeline entry, ordered by activity descending.
type ForensicRow struct {
	Path          string `json:"path"`
	Branch        string `json:"branch"`
	ActivityEpoch int64  `json:"activity_epoch"`
	ActivityHuman string `json:"activity"`
	BarWidth      int    `json:"bar_width"` // Normalized to [5,100] for visualization
}

// ForensicReport aggregates the activity timeline over all candidates.
// ProbableLastActive is a heuristic label, not a guarantee.
type ForensicReport struct {
	Rows               []ForensicRow `json:"rows"`
	MinEpoch           int64         `json:"min_epoch"`
	MaxEpoch           int64         `json:"max_epoch"`
	ProbableLastActive string        `json:"probable_last_active"`
}

// RankedResult is the aggregate produced by one invocation. Candidates
// are already ordered by the ranking comparator; renderers must never
// re-sort them.
type RankedResult struct {
	Candidates []RepoCandidate `json:"candidates"`
	BestPath   string          `json:"best_path,omitempty"`
	Diffs      []DiffReport    `json:"diffs,omitempty"`
	Forensic   *ForensicReport `json:"forensic,omitempty"`
}
