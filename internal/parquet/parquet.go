// Package parquet exports scan results to Parquet files using
// github.com/parquet-go/parquet-go, for downstream analysis of large
// variant inventories.
package parquet

import (
	"fmt"
	"os"

	"github.com/parquet-go/parquet-go"
	"github.com/samhoang/repotwin/schema"
)

// CandidateRow is the columnar projection of one ranked candidate.
type CandidateRow struct {
	Rank            int32  `parquet:"rank,snappy"`
	Path            string `parquet:"path,snappy"`
	Branch          string `parquet:"branch,snappy"`
	LastCommitEpoch int64  `parquet:"last_commit_epoch,snappy"`
	Dirty           bool   `parquet:"dirty,snappy"`
	StagedCount     int32  `parquet:"staged,snappy"`
	UnstagedCount   int32  `parquet:"unstaged,snappy"`
	UntrackedCount  int32  `parquet:"untracked,snappy"`
	AheadCount      int32  `parquet:"ahead,snappy"`
	BehindCount     int32  `parquet:"behind,snappy"`
	LatestFileEpoch int64  `parquet:"latest_file_epoch,snappy"`
	LatestFilePath  string `parquet:"latest_file,snappy"`
	ActivityEpoch   int64  `parquet:"activity_epoch,snappy"`
	Best            bool   `parquet:"best,snappy"`
}

// DiffRow is the columnar projection of one classified discrepancy.
type DiffRow struct {
	BestPath      string `parquet:"best_path,snappy"`
	OtherPath     string `parquet:"other_path,snappy"`
	Category      string `parquet:"category,snappy"`
	RelPath       string `parquet:"path,snappy"`
	BestChecksum  string `parquet:"best_checksum,snappy"`
	OtherChecksum string `parquet:"other_checksum,snappy"`
	Anomaly       bool   `parquet:"anomaly,snappy"`
}

// TimelineRow is the columnar projection of one forensic timeline entry.
type TimelineRow struct {
	Path          string `parquet:"path,snappy"`
	Branch        string `parquet:"branch,snappy"`
	ActivityEpoch int64  `parquet:"activity_epoch,snappy"`
	BarWidth      int32  `parquet:"bar_width,snappy"`
}

// CandidateRows projects ranked candidates into parquet rows, assigning
// ranks from the slice order.
func CandidateRows(candidates []schema.RepoCandidate) []CandidateRow {
	rows := make([]CandidateRow, len(candidates))
	for i, c := range candidates {
		rows[i] = CandidateRow{
			Rank:            int32(i + 1),
			Path:            c.Path,
			Branch:          c.Branch,
			LastCommitEpoch: c.LastCommitEpoch,
			Dirty:           c.Dirty,
			StagedCount:     int32(c.StagedCount),
			UnstagedCount:   int32(c.UnstagedCount),
			UntrackedCount:  int32(c.UntrackedCount),
			AheadCount:      int32(c.AheadCount),
			BehindCount:     int32(c.BehindCount),
			LatestFileEpoch: c.LatestFileEpoch,
			LatestFilePath:  c.LatestFilePath,
			ActivityEpoch:   c.ActivityEpoch,
			Best:            c.Best,
		}
	}
	return rows
}

// DiffRows flattens per-pair diff reports into one row per record.
func DiffRows(reports []schema.DiffReport) []DiffRow {
	var rows []DiffRow
	for _, report := range reports {
		for _, rec := range report.Records {
			rows = append(rows, DiffRow{
				BestPath:      report.BestPath,
				OtherPath:     report.OtherPath,
				Category:      string(rec.Category),
				RelPath:       rec.RelPath,
				BestChecksum:  rec.BestChecksum,
				OtherChecksum: rec.OtherChecksum,
				Anomaly:       rec.Anomaly,
			})
		}
	}
	return rows
}

// TimelineRows projects a forensic report into parquet rows.
func TimelineRows(report *schema.ForensicReport) []TimelineRow {
	if report == nil {
		return nil
	}
	rows := make([]TimelineRow, len(report.Rows))
	for i, r := range report.Rows {
		rows[i] = TimelineRow{
			Path:          r.Path,
			Branch:        r.Branch,
			ActivityEpoch: r.ActivityEpoch,
			BarWidth:      int32(r.BarWidth),
		}
	}
	return rows
}

// WriteCandidatesParquet writes candidate rows to a Parquet file.
func WriteCandidatesParquet(rows []CandidateRow, outputPath string) error {
	return writeRows(rows, outputPath)
}

// WriteDiffsParquet writes diff rows to a Parquet file.
func WriteDiffsParquet(rows []DiffRow, outputPath string) error {
	return writeRows(rows, outputPath)
}

// WriteTimelineParquet writes forensic timeline rows to a Parquet file.
func WriteTimelineParquet(rows []TimelineRow, outputPath string) error {
	return writeRows(rows, outputPath)
}

// writeRows creates the output file and streams rows through a generic
// writer whose schema is inferred from the row struct tags.
func writeRows[T any](rows []T, outputPath string) error {
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	writer := parquet.NewGenericWriter[T](file)
	defer func() { _ = writer.Close() }()

	if _, err := writer.Write(rows); err != nil {
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}
	return nil
}
