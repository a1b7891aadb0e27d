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

// writeRankTable generates and writes the human-readable ranking table.
func writeRankTable(writer io.Writer, result *schema.RankedResult, cfg *contract.Config, duration time.Duration) error {
	candidates := result.Candidates
	if len(candidates) == 0 {
		_, err := fmt.Fprintf(writer, "No matching repository variants found under %s\n", cfg.RootPath)
		return err
	}

	table := tablewriter.NewWriter(writer)

	// 1. Define Headers
	headers := []string{"Rank", "Path", "Branch", "Last Commit", "Status", "Ahead", "Behind", "Activity"}
	if cfg.DirtyDetail {
		headers = append(headers, "Staged", "Unstaged", "Untracked", "Latest File")
	}
	table.Header(headers)

	// 2. Configure Separators/Borders to match a minimal look
	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignRight
	})

	// 3. Populate Rows
	maxPathWidth := getMaxTablePathWidth(cfg)
	var data [][]string
	for i, c := range candidates {
		path := contract.TruncatePath(c.Path, maxPathWidth)
		if c.Best {
			path = contract.BestColor.Sprint(path)
		}
		row := []string{
			strconv.Itoa(i + 1),
			path,
			c.Branch,
			c.LastCommitHuman,
			contract.ColorDirty(c.Dirty),
			contract.ColorAhead(c.AheadCount),
			contract.ColorBehind(c.BehindCount),
			schema.HumanEpoch(c.ActivityEpoch),
		}
		if cfg.DirtyDetail {
			row = append(row,
				strconv.Itoa(c.StagedCount),
				strconv.Itoa(c.UnstagedCount),
				strconv.Itoa(c.UntrackedCount),
				contract.TruncatePath(c.LatestFilePath, maxPathWidth),
			)
		}
		data = append(data, row)
	}

	// 4. Render the table
	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	if result.BestPath != "" {
		if _, err := fmt.Fprintf(writer, "Best variant: %s\n", contract.BestColor.Sprint(result.BestPath)); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintf(writer, "Ranked %d variants in %v with %d workers\n", len(candidates), duration, cfg.Workers); err != nil {
		return err
	}
	return nil
}

// writeRankCSV writes the ranked candidates in CSV format.
func writeRankCSV(w io.Writer, candidates []schema.RepoCandidate) error {
	header := []string{
		"rank",
		"path",
		"branch",
		"last_commit_epoch",
		"last_commit",
		"dirty",
		"staged",
		"unstaged",
		"untracked",
		"ahead",
		"behind",
		"latest_file_epoch",
		"latest_file",
		"activity_epoch",
		"best",
	}
	return writeCSVWithHeader(w, header, func(cw *csv.Writer) error {
		for i, c := range candidates {
			rec := []string{
				strconv.Itoa(i + 1),
				c.Path,
				c.Branch,
				strconv.FormatInt(c.LastCommitEpoch, 10),
				c.LastCommitHuman,
				strconv.FormatBool(c.Dirty),
				strconv.Itoa(c.StagedCount),
				strconv.Itoa(c.UnstagedCount),
				strconv.Itoa(c.UntrackedCount),
				strconv.Itoa(c.AheadCount),
				strconv.Itoa(c.BehindCount),
				strconv.FormatInt(c.LatestFileEpoch, 10),
				c.LatestFilePath,
				strconv.FormatInt(c.ActivityEpoch, 10),
				strconv.FormatBool(c.Best),
			}
			if err := cw.Write(rec); err != nil {
				return err
			}
		}
		return nil
	})
}
