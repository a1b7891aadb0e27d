package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
	"github.com/samhoang/repotwin/internal/contract"
	"github.com/samhoang/repotwin/schema"
)

// writeDiffText writes the human-readable diff report: one section per
// comparison pair, with the summary table always and the per-record
// table when the level carries records.
func writeDiffText(writer io.Writer, result *schema.RankedResult, cfg *contract.Config, duration time.Duration) error {
	if len(result.Candidates) == 0 {
		_, err := fmt.Fprintf(writer, "No matching repository variants found under %s\n", cfg.RootPath)
		return err
	}
	if len(result.Diffs) == 0 {
		_, err := fmt.Fprintf(writer, "Only one variant found at %s; nothing to diff\n", result.BestPath)
		return err
	}

	for _, report := range result.Diffs {
		if _, err := fmt.Fprintf(writer, "%s vs %s\n",
			contract.BestColor.Sprint(report.BestPath), report.OtherPath); err != nil {
			return err
		}
		if err := writeDiffSummary(writer, report); err != nil {
			return err
		}
		if len(report.Records) > 0 {
			if err := writeDiffRecords(writer, report.Records); err != nil {
				return err
			}
		}
		if report.ArtifactPath != "" {
			if _, err := fmt.Fprintf(writer, "Unified diff written to %s\n", report.ArtifactPath); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(writer); err != nil {
			return err
		}
	}

	if _, err := fmt.Fprintf(writer, "Compared %d variant pairs in %v with %d workers\n",
		len(result.Diffs), duration, cfg.Workers); err != nil {
		return err
	}
	return nil
}

// writeDiffSummary renders the category totals and the per-top-dir
// breakdown for one comparison pair.
func writeDiffSummary(writer io.Writer, report schema.DiffReport) error {
	s := report.Summary
	if s.Total() == 0 {
		_, err := fmt.Fprintln(writer, "Trees are identical")
		return err
	}
	if _, err := fmt.Fprintf(writer, "%d discrepancies: %d only in best, %d only in other, %d content differ\n",
		s.Total(), s.OnlyInBest, s.OnlyInOther, s.ContentDiffers); err != nil {
		return err
	}
	if len(s.TopDirs) == 0 {
		return nil
	}

	table := tablewriter.NewWriter(writer)
	table.Header([]string{"Dir", "Only In Best", "Only In Other", "Content Differs"})
	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignRight
	})
	var data [][]string
	for _, td := range s.TopDirs {
		data = append(data, []string{
			td.Dir,
			strconv.Itoa(td.OnlyInBest),
			strconv.Itoa(td.OnlyInOther),
			strconv.Itoa(td.ContentDiffers),
		})
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	return table.Render()
}

// writeDiffRecords renders the per-file record table for one pair.
func writeDiffRecords(writer io.Writer, records []schema.DiffRecord) error {
	withChecksums := false
	for _, rec := range records {
		if rec.BestChecksum != "" || rec.OtherChecksum != "" {
			withChecksums = true
			break
		}
	}

	table := tablewriter.NewWriter(writer)
	headers := []string{"Category", "Path"}
	if withChecksums {
		headers = append(headers, "Best Checksum", "Other Checksum")
	}
	table.Header(headers)

	var data [][]string
	for _, rec := range records {
		path := rec.RelPath
		if rec.Anomaly {
			path += " (unreadable)"
		}
		row := []string{string(rec.Category), path}
		if withChecksums {
			row = append(row, shortChecksum(rec.BestChecksum), shortChecksum(rec.OtherChecksum))
		}
		data = append(data, row)
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	return table.Render()
}

// shortChecksum abbreviates a hex digest for table display. Full digests
// remain available through the structured output modes.
func shortChecksum(sum string) string {
	if len(sum) > 12 {
		return sum[:12]
	}
	return sum
}

// writeDiffCSV flattens all comparison pairs into one CSV document.
func writeDiffCSV(w io.Writer, reports []schema.DiffReport) error {
	header := []string{
		"best_path",
		"other_path",
		"category",
		"path",
		"best_checksum",
		"other_checksum",
		"anomaly",
	}
	return writeCSVWithHeader(w, header, func(cw *csv.Writer) error {
		for _, report := range reports {
			for _, rec := range report.Records {
				row := []string{
					report.BestPath,
					report.OtherPath,
					string(rec.Category),
					rec.RelPath,
					rec.BestChecksum,
					rec.OtherChecksum,
					strconv.FormatBool(rec.Anomaly),
				}
				if err := cw.Write(row); err != nil {
					return err
				}
			}
		}
		return nil
	})
}
