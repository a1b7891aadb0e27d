package cmd

import (
	"github.com/samhoang/repotwin/core"
	"github.com/samhoang/repotwin/internal/contract"
	"github.com/samhoang/repotwin/schema"
	"github.com/spf13/cobra"
)

// rankCmd discovers and ranks repository variants.
var rankCmd = &cobra.Command{
	Use:   "rank [root-path]",
	Short: "Rank every copy of a repository by local activity.",
	Long: `Walk a directory tree, find every repository copy whose name matches,
and rank them by working-tree state and recency.

The ranking answers one question: which copy holds the newest work?
- A dirty working tree outranks any clean one, no matter how old
- Otherwise the newest commit-or-file activity wins
- Unpushed commits break remaining ties

Examples:
  # Rank all copies of "myproj" under the backups volume
  repotwin rank /mnt/backups --name myproj

  # Show per-variant status detail
  repotwin rank /mnt/backups --name myproj --detail

  # Export the ranking to CSV for tracking
  repotwin rank /mnt/backups --name myproj --output csv --output-file variants.csv`,
	Args: cobra.MaximumNArgs(1),
	PreRunE: func(cmd *cobra.Command, args []string) error {
		if err := sharedSetup(rootCtx, cmd, args); err != nil {
			return err
		}
		// The level flag binding is process-global in Viper, so a value
		// left over from the environment or config file must not turn a
		// plain ranking into a diff run.
		cfg.DiffLevel = schema.NoneLevel
		return nil
	},
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteRank(rootCtx, cfg); err != nil {
			contract.LogFatal("Cannot rank variants", err)
		}
	},
}
