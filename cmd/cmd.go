// Package cmd defines the command-line interface for repotwin.
package cmd

import (
	"github.com/samhoang/repotwin/internal/contract"
	"github.com/samhoang/repotwin/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	// Call initConfig on Cobra's initialization
	cobra.OnInitialize(initConfig)

	// Add primary subcommands to the root command
	rootCmd.AddCommand(rankCmd)
	rootCmd.AddCommand(diffCmd)
	rootCmd.AddCommand(forensicCmd)
	rootCmd.AddCommand(versionCmd)

	// Bind all persistent flags of rootCmd to Viper
	rootCmd.PersistentFlags().StringP("name", "n", "", "Substring that variant directory names must contain")
	rootCmd.PersistentFlags().Int("max-depth", contract.DefaultMaxDepth, "Maximum directory depth to descend below the root")
	rootCmd.PersistentFlags().Int("workers", contract.DefaultWorkers, "Number of concurrent scan workers")
	rootCmd.PersistentFlags().String("repo-timeout", contract.DefaultRepoTimeout.String(), "Per-repository metadata scan timeout (e.g. 30s, 2m)")
	rootCmd.PersistentFlags().Bool("best", true, "Designate and highlight the top-ranked variant")
	rootCmd.PersistentFlags().Bool("detail", false, "Print per-variant status detail (staged, unstaged, untracked, latest file)")
	rootCmd.PersistentFlags().String("exclude", "", "Comma-separated directory names to skip during the latest-file scan")
	rootCmd.PersistentFlags().String("output", string(schema.TableOut), "Output format: table or csv or json or html or parquet")
	rootCmd.PersistentFlags().String("output-file", "", "Optional path to write output to")
	rootCmd.PersistentFlags().Int("width", 0, "Terminal width override (0 = auto-detect)")
	rootCmd.PersistentFlags().String("color", "yes", "Enable colored output (yes/no/true/false/1/0)")
	rootCmd.PersistentFlags().String("config", "", "Path to config file")
	if err := viper.BindPFlags(rootCmd.PersistentFlags()); err != nil {
		contract.LogFatal("Error binding root flags", err)
	}

	// Bind all flags of diffCmd to Viper
	diffCmd.Flags().StringP("level", "l", string(schema.SummaryLevel), "Diff granularity: summary or per-file or full")
	diffCmd.Flags().StringSliceP("pattern", "p", nil, "Glob pattern limiting which relative paths are compared (repeatable)")
	diffCmd.Flags().Bool("checksum", false, "Attach content digests to records whose content differs")
	diffCmd.Flags().String("diff-dir", contract.DefaultDiffDir, "Directory for unified-diff artifacts written in full mode")
	if err := viper.BindPFlags(diffCmd.Flags()); err != nil {
		contract.LogFatal("Error binding diff flags", err)
	}
}
