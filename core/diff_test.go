package core

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/samhoang/repotwin/internal/contract"
	"github.com/samhoang/repotwin/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTreeFile(t *testing.T, root, rel, content string) {
	t.Helper()
	path := filepath.Join(root, filepath.FromSlash(rel))
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

// twoTrees builds the canonical fixture pair: one file per category plus
// an identical file that must produce no record.
func twoTrees(t *testing.T) (string, string) {
	t.Helper()
	best := t.TempDir()
	other := t.TempDir()

	writeTreeFile(t, best, "shared/same.txt", "identical\n")
	writeTreeFile(t, other, "shared/same.txt", "identical\n")
	writeTreeFile(t, best, "src/changed.go", "package a\n")
	writeTreeFile(t, other, "src/changed.go", "package b\n")
	writeTreeFile(t, best, "docs/best-only.md", "only here\n")
	writeTreeFile(t, other, "docs/other-only.md", "only there\n")
	// VCS internals never participate in the diff.
	writeTreeFile(t, best, ".git/config", "[core]\n")
	writeTreeFile(t, other, ".git/config", "[other]\n")

	return best, other
}

func diffConfig(level schema.DiffLevel) *contract.Config {
	return &contract.Config{
		DiffLevel: level,
		DiffDir:   ".",
		RunStamp:  "20260824T120000Z",
	}
}

func TestCompareTreesPerFile(t *testing.T) {
	best, other := twoTrees(t)
	report := CompareTrees(t.Context(), diffConfig(schema.PerFileLevel), best, other)

	assert.Equal(t, 1, report.Summary.OnlyInBest)
	assert.Equal(t, 1, report.Summary.OnlyInOther)
	assert.Equal(t, 1, report.Summary.ContentDiffers)
	assert.Equal(t, 3, report.Summary.Total())

	require.Len(t, report.Records, 3)
	// Records come back grouped by category, paths ascending inside each.
	assert.Equal(t, schema.OnlyInBest, report.Records[0].Category)
	assert.Equal(t, "docs/best-only.md", report.Records[0].RelPath)
	assert.Equal(t, schema.OnlyInOther, report.Records[1].Category)
	assert.Equal(t, "docs/other-only.md", report.Records[1].RelPath)
	assert.Equal(t, schema.ContentDiffers, report.Records[2].Category)
	assert.Equal(t, "src/changed.go", report.Records[2].RelPath)

	// No checksum was requested.
	assert.Empty(t, report.Records[2].BestChecksum)
}

func TestCompareTreesSummaryOnly(t *testing.T) {
	best, other := twoTrees(t)
	report := CompareTrees(t.Context(), diffConfig(schema.SummaryLevel), best, other)

	assert.Equal(t, 3, report.Summary.Total())
	assert.Nil(t, report.Records)
	assert.Empty(t, report.ArtifactPath)
}

// Counts must agree across levels for the same pair of trees.
func TestCompareTreesSummaryMatchesPerFile(t *testing.T) {
	best, other := twoTrees(t)
	summary := CompareTrees(t.Context(), diffConfig(schema.SummaryLevel), best, other)
	perFile := CompareTrees(t.Context(), diffConfig(schema.PerFileLevel), best, other)
	assert.Equal(t, perFile.Summary, summary.Summary)
}

func TestCompareTreesTopDirs(t *testing.T) {
	best, other := twoTrees(t)
	writeTreeFile(t, best, "rootfile.txt", "a\n")
	writeTreeFile(t, other, "rootfile.txt", "b\n")

	report := CompareTrees(t.Context(), diffConfig(schema.SummaryLevel), best, other)

	require.Len(t, report.Summary.TopDirs, 3)
	assert.Equal(t, ".", report.Summary.TopDirs[0].Dir)
	assert.Equal(t, 1, report.Summary.TopDirs[0].ContentDiffers)
	assert.Equal(t, "docs", report.Summary.TopDirs[1].Dir)
	assert.Equal(t, 1, report.Summary.TopDirs[1].OnlyInBest)
	assert.Equal(t, 1, report.Summary.TopDirs[1].OnlyInOther)
	assert.Equal(t, "src", report.Summary.TopDirs[2].Dir)
}

func TestCompareTreesPatternsFilterUniformly(t *testing.T) {
	best, other := twoTrees(t)

	cfg := diffConfig(schema.PerFileLevel)
	cfg.DiffPatterns = []string{"*.go"}
	report := CompareTrees(t.Context(), cfg, best, other)

	require.Len(t, report.Records, 1)
	assert.Equal(t, "src/changed.go", report.Records[0].RelPath)
	assert.Equal(t, 1, report.Summary.Total())
}

func TestCompareTreesPatternOrSemantics(t *testing.T) {
	best, other := twoTrees(t)

	cfg := diffConfig(schema.PerFileLevel)
	cfg.DiffPatterns = []string{"*.go", "*.md"}
	report := CompareTrees(t.Context(), cfg, best, other)
	assert.Equal(t, 3, report.Summary.Total())
}

func TestCompareTreesPatternsFilterToZero(t *testing.T) {
	best, other := twoTrees(t)

	cfg := diffConfig(schema.PerFileLevel)
	cfg.DiffPatterns = []string{"*.nothing"}
	report := CompareTrees(t.Context(), cfg, best, other)

	assert.Zero(t, report.Summary.Total())
	assert.Empty(t, report.Records)
}

// A path that exists on both sides but cannot be read becomes a single
// content-differs anomaly record; the comparison itself never fails.
func TestCompareTreesUnreadableAnomaly(t *testing.T) {
	best := t.TempDir()
	other := t.TempDir()
	// Dangling symlinks on both sides: listed during the walk, unreadable
	// during comparison.
	require.NoError(t, os.Symlink(filepath.Join(best, "missing-target"), filepath.Join(best, "broken.txt")))
	require.NoError(t, os.Symlink(filepath.Join(other, "missing-target"), filepath.Join(other, "broken.txt")))

	report := CompareTrees(t.Context(), diffConfig(schema.PerFileLevel), best, other)

	require.Len(t, report.Records, 1)
	rec := report.Records[0]
	assert.Equal(t, schema.ContentDiffers, rec.Category)
	assert.Equal(t, "broken.txt", rec.RelPath)
	assert.True(t, rec.Anomaly)
	assert.Equal(t, 1, report.Summary.ContentDiffers)
}

func TestCompareTreesChecksums(t *testing.T) {
	best, other := twoTrees(t)

	cfg := diffConfig(schema.PerFileLevel)
	cfg.Checksum = true
	report := CompareTrees(t.Context(), cfg, best, other)

	var rec *schema.DiffRecord
	for i := range report.Records {
		if report.Records[i].Category == schema.ContentDiffers {
			rec = &report.Records[i]
		}
	}
	require.NotNil(t, rec)
	assert.Len(t, rec.BestChecksum, 64) // BLAKE2b-256 hex
	assert.Len(t, rec.OtherChecksum, 64)
	assert.NotEqual(t, rec.BestChecksum, rec.OtherChecksum)
}

func TestCompareTreesIdentical(t *testing.T) {
	best := t.TempDir()
	other := t.TempDir()
	writeTreeFile(t, best, "a/one.txt", "same\n")
	writeTreeFile(t, other, "a/one.txt", "same\n")

	report := CompareTrees(t.Context(), diffConfig(schema.PerFileLevel), best, other)
	assert.Zero(t, report.Summary.Total())
	assert.Empty(t, report.Records)
}

func TestCompareTreesFullWritesArtifact(t *testing.T) {
	best, other := twoTrees(t)

	cfg := diffConfig(schema.FullLevel)
	cfg.DiffDir = t.TempDir()
	cfg.NamePrefix = "myproj"
	report := CompareTrees(t.Context(), cfg, best, other)

	require.NotEmpty(t, report.ArtifactPath)
	assert.Equal(t, cfg.DiffDir, filepath.Dir(report.ArtifactPath))
	name := filepath.Base(report.ArtifactPath)
	assert.True(t, strings.HasPrefix(name, "myproj_"), name)
	assert.Contains(t, name, "_vs_")
	assert.Contains(t, name, cfg.RunStamp)
	assert.True(t, strings.HasSuffix(name, ".diff"), name)

	content, err := os.ReadFile(report.ArtifactPath)
	require.NoError(t, err)
	text := string(content)
	assert.Contains(t, text, "--- a/src/changed.go")
	assert.Contains(t, text, "+++ b/src/changed.go")
	assert.Contains(t, text, "-package a")
	assert.Contains(t, text, "+package b")
	// Missing sides diff against /dev/null, as git presents them.
	assert.Contains(t, text, "/dev/null")
}

func TestCompareTreesFullBinaryFiles(t *testing.T) {
	best := t.TempDir()
	other := t.TempDir()
	writeTreeFile(t, best, "blob.bin", "head\x00tail")
	writeTreeFile(t, other, "blob.bin", "head\x00different")

	cfg := diffConfig(schema.FullLevel)
	cfg.DiffDir = t.TempDir()
	report := CompareTrees(t.Context(), cfg, best, other)

	require.NotEmpty(t, report.ArtifactPath)
	content, err := os.ReadFile(report.ArtifactPath)
	require.NoError(t, err)
	assert.Contains(t, string(content), "Binary files a/blob.bin and b/blob.bin differ")
}

func TestDiffAgainstBestPreservesOrder(t *testing.T) {
	best := t.TempDir()
	otherA := t.TempDir()
	otherB := t.TempDir()
	writeTreeFile(t, best, "f.txt", "x\n")
	writeTreeFile(t, otherA, "f.txt", "y\n")
	// otherB misses the file entirely.

	reports := DiffAgainstBest(t.Context(), diffConfig(schema.SummaryLevel), best, []string{otherA, otherB})
	require.Len(t, reports, 2)
	assert.Equal(t, otherA, reports[0].OtherPath)
	assert.Equal(t, otherB, reports[1].OtherPath)
	assert.Equal(t, 1, reports[0].Summary.ContentDiffers)
	assert.Equal(t, 1, reports[1].Summary.OnlyInBest)
}

func TestFilesEqual(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a")
	b := filepath.Join(dir, "b")
	c := filepath.Join(dir, "c")
	d := filepath.Join(dir, "d")
	require.NoError(t, os.WriteFile(a, []byte("content"), 0o644))
	require.NoError(t, os.WriteFile(b, []byte("content"), 0o644))
	require.NoError(t, os.WriteFile(c, []byte("CONTENT"), 0o644))
	require.NoError(t, os.WriteFile(d, []byte("content+"), 0o644))

	equal, err := filesEqual(a, b)
	require.NoError(t, err)
	assert.True(t, equal)

	equal, err = filesEqual(a, c)
	require.NoError(t, err)
	assert.False(t, equal)

	// Size mismatch short-circuits before any read.
	equal, err = filesEqual(a, d)
	require.NoError(t, err)
	assert.False(t, equal)
}

func TestTopLevelDir(t *testing.T) {
	assert.Equal(t, "src", topLevelDir("src/deep/file.go"))
	assert.Equal(t, ".", topLevelDir("README.md"))
}
