package contract

import (
	"fmt"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/samhoang/repotwin/schema"
)

// Default values for configuration.
const (
	DefaultMaxDepth    = 8
	DefaultRepoTimeout = 30 * time.Second
	DefaultDiffDir     = "."
)

// DefaultWorkers is the default number of concurrent scan workers.
var DefaultWorkers = runtime.GOMAXPROCS(0)

// RunStampFormat names full-diff artifacts deterministically per run.
const RunStampFormat = "20060102T150405Z"

// DefaultScanExcludes are pruned from the latest-file walk in addition to
// VCS-internal directories: build output and IDE metadata trees whose
// mtimes say nothing about real activity.
var DefaultScanExcludes = []string{
	"node_modules",
	"target",
	"build",
	"dist",
	"out",
	"bin",
	"vendor",
	".idea",
	".vscode",
}

// Config holds the runtime configuration for one invocation.
// This struct remains the "final, validated" config.
type Config struct {
	RootPath   string
	NamePrefix string
	MaxDepth   int
	Workers    int

	RepoTimeout time.Duration
	ComputeBest bool
	DirtyDetail bool

	DiffLevel    schema.DiffLevel
	DiffPatterns []string
	Checksum     bool
	DiffDir      string
	RunStamp     string

	Output     schema.OutputMode
	OutputFile string
	Width      int // Terminal width override (0 = auto-detect)
	UseColors  bool

	Excludes []string // Latest-file scan exclusions (defaults + user additions)
}

// ConfigRawInput holds the raw inputs from all sources (flags, env, config file).
// Viper unmarshals into this struct.
type ConfigRawInput struct {
	// This is set manually from positional args, so no tag
	RootPathStr string

	Name        string   `mapstructure:"name"`
	MaxDepth    int      `mapstructure:"max-depth"`
	Workers     int      `mapstructure:"workers"`
	RepoTimeout string   `mapstructure:"repo-timeout"`
	Best        bool     `mapstructure:"best"`
	Detail      bool     `mapstructure:"detail"`
	Level       string   `mapstructure:"level"`
	Patterns    []string `mapstructure:"pattern"`
	Checksum    bool     `mapstructure:"checksum"`
	DiffDir     string   `mapstructure:"diff-dir"`
	Output      string   `mapstructure:"output"`
	OutputFile  string   `mapstructure:"output-file"`
	Width       int      `mapstructure:"width"`
	Color       string   `mapstructure:"color"`
	Exclude     string   `mapstructure:"exclude"`
}

// Clone returns a deep copy of the Config struct.
func (c *Config) Clone() *Config {
	clone := *c
	if c.DiffPatterns != nil {
		clone.DiffPatterns = make([]string, len(c.DiffPatterns))
		copy(clone.DiffPatterns, c.DiffPatterns)
	}
	if c.Excludes != nil {
		clone.Excludes = make([]string, len(c.Excludes))
		copy(clone.Excludes, c.Excludes)
	}
	return &clone
}

// ProcessAndValidate converts raw input into the final validated Config.
// Every error returned here is a configuration error: fatal, and reported
// before any scan begins.
func ProcessAndValidate(cfg *Config, input *ConfigRawInput) error {
	rootPath, err := filepath.Abs(input.RootPathStr)
	if err != nil {
		return fmt.Errorf("invalid root path %q: %w", input.RootPathStr, err)
	}
	cfg.RootPath = rootPath
	cfg.NamePrefix = input.Name

	cfg.MaxDepth = input.MaxDepth
	if cfg.MaxDepth < 1 {
		return fmt.Errorf("max-depth must be at least 1, got %d", input.MaxDepth)
	}

	cfg.Workers = input.Workers
	if cfg.Workers < 1 {
		cfg.Workers = DefaultWorkers
	}

	cfg.RepoTimeout = DefaultRepoTimeout
	if input.RepoTimeout != "" {
		d, err := time.ParseDuration(input.RepoTimeout)
		if err != nil {
			return fmt.Errorf("invalid repo-timeout %q: %w", input.RepoTimeout, err)
		}
		if d <= 0 {
			return fmt.Errorf("repo-timeout must be positive, got %s", d)
		}
		cfg.RepoTimeout = d
	}

	cfg.ComputeBest = input.Best
	cfg.DirtyDetail = input.Detail

	// An unset level means no diffing; only the diff command binds the
	// level flag, so rank and forensic invocations arrive empty.
	level := schema.DiffLevel(strings.ToLower(input.Level))
	if level == "" {
		level = schema.NoneLevel
	}
	if _, ok := schema.ValidDiffLevels[level]; !ok {
		return fmt.Errorf("invalid diff level %q (valid: none, summary, per-file, full)", input.Level)
	}
	cfg.DiffLevel = level

	for _, p := range input.Patterns {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		if _, err := filepath.Match(p, "x"); err != nil {
			return fmt.Errorf("invalid diff pattern %q: %w", p, err)
		}
		cfg.DiffPatterns = append(cfg.DiffPatterns, p)
	}

	cfg.Checksum = input.Checksum
	cfg.DiffDir = input.DiffDir
	if cfg.DiffDir == "" {
		cfg.DiffDir = DefaultDiffDir
	}
	cfg.RunStamp = NewRunStamp()

	output := schema.OutputMode(strings.ToLower(input.Output))
	if _, ok := schema.ValidOutputModes[output]; !ok {
		return fmt.Errorf("invalid output mode %q (valid: table, json, csv, html, parquet)", input.Output)
	}
	if output == schema.ParquetOut && input.OutputFile == "" {
		return fmt.Errorf("parquet output requires --output-file")
	}
	cfg.Output = output
	cfg.OutputFile = input.OutputFile
	cfg.Width = input.Width

	cfg.UseColors = parseBoolish(input.Color, true)
	if !cfg.UseColors {
		color.NoColor = true
	}

	cfg.Excludes = append([]string{}, DefaultScanExcludes...)
	if input.Exclude != "" {
		for p := range strings.SplitSeq(input.Exclude, ",") {
			p = strings.TrimSpace(p)
			if p != "" {
				cfg.Excludes = append(cfg.Excludes, p)
			}
		}
	}

	return nil
}

// NewRunStamp returns the UTC timestamp that names this run's diff
// artifacts. Long-lived callers such as the MCP server mint a fresh
// stamp per request so artifacts from earlier requests survive.
func NewRunStamp() string {
	return time.Now().UTC().Format(RunStampFormat)
}

// parseBoolish accepts the yes/no/true/false/1/0 spellings used by flags
// that predate proper bool handling.
func parseBoolish(s string, fallback bool) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "yes", "true", "1", "on":
		return true
	case "no", "false", "0", "off":
		return false
	default:
		return fallback
	}
}
