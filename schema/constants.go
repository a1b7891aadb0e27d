package schema

// Custom string types for type safety.
type (
	// OutputMode represents the format of the output.
	OutputMode string

	// DiffLevel represents the granularity of tree diffing.
	DiffLevel string

	// DiffCategory classifies a single discrepancy between two trees.
	DiffCategory string

	// FileState is the classification of one side of a porcelain status code.
	FileState string
)

// All output modes supported.
const (
	TableOut   OutputMode = "table" // default
	CSVOut     OutputMode = "csv"
	JSONOut    OutputMode = "json"
	HTMLOut    OutputMode = "html"
	ParquetOut OutputMode = "parquet"
)

// All diff levels supported.
const (
	NoneLevel    DiffLevel = "none" // default
	SummaryLevel DiffLevel = "summary"
	PerFileLevel DiffLevel = "per-file"
	FullLevel    DiffLevel = "full"
)

// All diff categories supported.
const (
	OnlyInBest     DiffCategory = "only-in-best"
	OnlyInOther    DiffCategory = "only-in-other"
	ContentDiffers DiffCategory = "content-differs"
)

// All file states supported.
const (
	StateAdded      FileState = "added"
	StateModified   FileState = "modified"
	StateDeleted    FileState = "deleted"
	StateRenamed    FileState = "renamed"
	StateUntracked  FileState = "untracked"
	StateUnmodified FileState = "unmodified"
)

// Sentinel labels for cells whose underlying signal is absent.
const (
	NoCommitsLabel    = "NO COMMITS"
	NotAvailableLabel = "N/A"
	TimedOutLabel     = "TIMED OUT"
)

// ValidOutputModes lists all valid output modes.
var ValidOutputModes = map[OutputMode]struct{}{
	TableOut:   {},
	CSVOut:     {},
	JSONOut:    {},
	HTMLOut:    {},
	ParquetOut: {},
}

// ValidDiffLevels lists all valid diff levels.
var ValidDiffLevels = map[DiffLevel]struct{}{
	NoneLevel:    {},
	SummaryLevel: {},
	PerFileLevel: {},
	FullLevel:    {},
}
