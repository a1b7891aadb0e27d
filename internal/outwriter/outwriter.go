// Package outwriter has output and writer logic.
package outwriter

import (
	"fmt"
	"io"
	"time"

	"github.com/samhoang/repotwin/internal/contract"
	"github.com/samhoang/repotwin/internal/parquet"
	"github.com/samhoang/repotwin/schema"
)

// WriteRanked prints the ranked candidate set, dispatching on the
// configured output format.
func WriteRanked(result *schema.RankedResult, cfg *contract.Config, duration time.Duration) error {
	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, result)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeRankCSV(w, result.Candidates)
		}, "Wrote CSV")
	case schema.HTMLOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeResultHTML(w, result, cfg)
		}, "Wrote HTML")
	case schema.ParquetOut:
		if err := parquet.WriteCandidatesParquet(parquet.CandidateRows(result.Candidates), cfg.OutputFile); err != nil {
			return fmt.Errorf("error writing Parquet output: %w", err)
		}
		return nil
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeRankTable(w, result, cfg, duration)
		}, "Wrote table")
	}
}

// WriteDiffs prints the ranked set followed by the per-pair diff
// reports, dispatching on the configured output format.
func WriteDiffs(result *schema.RankedResult, cfg *contract.Config, duration time.Duration) error {
	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, result)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeDiffCSV(w, result.Diffs)
		}, "Wrote CSV")
	case schema.HTMLOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeResultHTML(w, result, cfg)
		}, "Wrote HTML")
	case schema.ParquetOut:
		if err := parquet.WriteDiffsParquet(parquet.DiffRows(result.Diffs), cfg.OutputFile); err != nil {
			return fmt.Errorf("error writing Parquet output: %w", err)
		}
		return nil
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeDiffText(w, result, cfg, duration)
		}, "Wrote diff report")
	}
}

// WriteForensic prints the activity timeline, dispatching on the
// configured output format.
func WriteForensic(result *schema.RankedResult, cfg *contract.Config, duration time.Duration) error {
	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, result)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeForensicCSV(w, result.Forensic)
		}, "Wrote CSV")
	case schema.HTMLOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeResultHTML(w, result, cfg)
		}, "Wrote HTML")
	case schema.ParquetOut:
		if err := parquet.WriteTimelineParquet(parquet.TimelineRows(result.Forensic), cfg.OutputFile); err != nil {
			return fmt.Errorf("error writing Parquet output: %w", err)
		}
		return nil
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeForensicText(w, result, cfg, duration)
		}, "Wrote timeline")
	}
}
