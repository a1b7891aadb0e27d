package cmd

import (
	"github.com/samhoang/repotwin/core"
	"github.com/samhoang/repotwin/internal/contract"
	"github.com/samhoang/repotwin/schema"
	"github.com/spf13/cobra"
)

// forensicCmd builds the cross-variant activity timeline.
var forensicCmd = &cobra.Command{
	Use:   "forensic [root-path]",
	Short: "Show an activity timeline across all variants.",
	Long: `Build a timeline of last activity across every discovered variant and
name the probable last active copy.

Each variant gets a proportional activity bar, newest first, so the copy
someone last worked in stands out at a glance. The "probable last
active" label is a heuristic drawn from commit times and file mtimes,
not a guarantee.

Examples:
  # Reconstruct which backup was used last
  repotwin forensic /mnt/backups --name myproj

  # Machine-readable timeline for reporting
  repotwin forensic /mnt/backups --name myproj --output json`,
	Args: cobra.MaximumNArgs(1),
	PreRunE: func(cmd *cobra.Command, args []string) error {
		if err := sharedSetup(rootCtx, cmd, args); err != nil {
			return err
		}
		// Timelines never diff; see the matching guard on rankCmd.
		cfg.DiffLevel = schema.NoneLevel
		return nil
	},
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteForensic(rootCtx, cfg); err != nil {
			contract.LogFatal("Cannot build forensic timeline", err)
		}
	},
}
