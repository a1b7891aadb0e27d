package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/samhoang/repotwin/internal/contract"
	"github.com/samhoang/repotwin/schema"
)

// maxBarCells caps the rendered bar so wide terminals still fit the
// path and timestamp columns.
const maxBarCells = 40

// writeForensicText writes the human-readable activity timeline with
// proportional bars, newest first.
func writeForensicText(writer io.Writer, result *schema.RankedResult, cfg *contract.Config, duration time.Duration) error {
	report := result.Forensic
	if report == nil || len(report.Rows) == 0 {
		_, err := fmt.Fprintf(writer, "No matching repository variants found under %s\n", cfg.RootPath)
		return err
	}

	table := tablewriter.NewWriter(writer)
	table.Header([]string{"Path", "Branch", "Last Activity", "Timeline"})

	maxPathWidth := getMaxTablePathWidth(cfg)
	var data [][]string
	for _, row := range report.Rows {
		data = append(data, []string{
			contract.TruncatePath(row.Path, maxPathWidth),
			row.Branch,
			row.ActivityHuman,
			renderBar(row.BarWidth),
		})
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	if _, err := fmt.Fprintf(writer, "Probable last active: %s\n",
		contract.BestColor.Sprint(report.ProbableLastActive)); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(writer, "Built timeline for %d variants in %v\n",
		len(report.Rows), duration); err != nil {
		return err
	}
	return nil
}

// renderBar scales a normalized width into block characters. The floor
// of one cell keeps even the oldest entry visible.
func renderBar(width int) string {
	cells := width * maxBarCells / schema.MaxBarWidth
	if cells < 1 {
		cells = 1
	}
	return strings.Repeat("█", cells)
}

// writeForensicCSV writes the timeline rows in CSV format.
func writeForensicCSV(w io.Writer, report *schema.ForensicReport) error {
	header := []string{
		"path",
		"branch",
		"activity_epoch",
		"activity",
		"bar_width",
	}
	return writeCSVWithHeader(w, header, func(cw *csv.Writer) error {
		if report == nil {
			return nil
		}
		for _, row := range report.Rows {
			rec := []string{
				row.Path,
				row.Branch,
				strconv.FormatInt(row.ActivityEpoch, 10),
				row.ActivityHuman,
				strconv.Itoa(row.BarWidth),
			}
			if err := cw.Write(rec); err != nil {
				return err
			}
		}
		return nil
	})
}
