package cmd

import (
	"fmt"

	"github.com/samhoang/repotwin/core"
	"github.com/samhoang/repotwin/internal/contract"
	"github.com/samhoang/repotwin/schema"
	"github.com/spf13/cobra"
)

// diffCmd ranks variants and tree-diffs Best against the rest.
var diffCmd = &cobra.Command{
	Use:   "diff [root-path]",
	Short: "Diff the best variant against every other copy.",
	Long: `Rank all discovered variants, then compare the best copy's file tree
against every other copy.

Every discrepancy is classified as only-in-best, only-in-other or
content-differs. Granularity is controlled by --level:
- summary: category counts plus a per-top-dir breakdown
- per-file: every classified path
- full: per-file plus a unified-diff artifact per pair

Examples:
  # Quick divergence overview
  repotwin diff /mnt/backups --name myproj

  # Every divergent Go file, with content digests
  repotwin diff /mnt/backups --name myproj --level per-file --pattern '*.go' --checksum

  # Full unified diffs written next to the report
  repotwin diff /mnt/backups --name myproj --level full --diff-dir /tmp/diffs`,
	Args: cobra.MaximumNArgs(1),
	PreRunE: func(cmd *cobra.Command, args []string) error {
		if err := sharedSetup(rootCtx, cmd, args); err != nil {
			return err
		}
		// "diff --level none" is a contradiction; the flag default covers
		// the common case.
		if cfg.DiffLevel == schema.NoneLevel {
			return fmt.Errorf("diff requires a level of summary, per-file or full")
		}
		return nil
	},
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteDiff(rootCtx, cfg); err != nil {
			contract.LogFatal("Cannot diff variants", err)
		}
	},
}
