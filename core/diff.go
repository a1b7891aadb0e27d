package core

import (
	"bytes"
	"context"
	"encoding/hex"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/pmezard/go-difflib/difflib"
	"github.com/samhoang/repotwin/internal/contract"
	"github.com/samhoang/repotwin/schema"
	"golang.org/x/crypto/blake2b"
)

const compareChunkSize = 64 * 1024

// binarySniffLen bounds how much of a file is inspected for NUL bytes
// before full-diff rendering declares it binary.
const binarySniffLen = 8000

// categoryRank fixes the report order of diff categories. The string
// values do not sort in presentation order on their own.
var categoryRank = map[schema.DiffCategory]int{
	schema.OnlyInBest:     0,
	schema.OnlyInOther:    1,
	schema.ContentDiffers: 2,
}

// DiffAgainstBest compares the Best tree against every other variant.
// Pairs are independent, so they run concurrently; the result slice
// preserves the candidate order.
func DiffAgainstBest(ctx context.Context, cfg *contract.Config, bestPath string, otherPaths []string) []schema.DiffReport {
	reports := make([]schema.DiffReport, len(otherPaths))
	var wg sync.WaitGroup
	for i, other := range otherPaths {
		wg.Go(func() {
			reports[i] = CompareTrees(ctx, cfg, bestPath, other)
		})
	}
	wg.Wait()
	return reports
}

// CompareTrees tree-diffs Best against one other variant, classifying
// every discrepancy as only-in-best, only-in-other or content-differs.
// Patterns apply uniformly across all diff levels, full mode included.
// An unreadable path becomes a single content-differs anomaly record;
// the comparison never aborts on one bad path.
func CompareTrees(ctx context.Context, cfg *contract.Config, bestPath, otherPath string) schema.DiffReport {
	report := schema.DiffReport{
		BestPath:  bestPath,
		OtherPath: otherPath,
		Level:     cfg.DiffLevel,
	}

	bestFiles, bestAnomalies := listTree(ctx, bestPath)
	otherFiles, otherAnomalies := listTree(ctx, otherPath)

	union := make(map[string]struct{}, len(bestFiles)+len(otherFiles))
	for rel := range bestFiles {
		union[rel] = struct{}{}
	}
	for rel := range otherFiles {
		union[rel] = struct{}{}
	}

	relPaths := make([]string, 0, len(union))
	for rel := range union {
		relPaths = append(relPaths, rel)
	}
	sort.Strings(relPaths)

	var records []schema.DiffRecord
	topDirs := make(map[string]*schema.TopDirCount)

	addRecord := func(rec schema.DiffRecord) {
		records = append(records, rec)
		dir := topLevelDir(rec.RelPath)
		td, ok := topDirs[dir]
		if !ok {
			td = &schema.TopDirCount{Dir: dir}
			topDirs[dir] = td
		}
		switch rec.Category {
		case schema.OnlyInBest:
			report.Summary.OnlyInBest++
			td.OnlyInBest++
		case schema.OnlyInOther:
			report.Summary.OnlyInOther++
			td.OnlyInOther++
		case schema.ContentDiffers:
			report.Summary.ContentDiffers++
			td.ContentDiffers++
		}
	}

	for _, rel := range append(bestAnomalies, otherAnomalies...) {
		if !contract.MatchesAnyPattern(rel, cfg.DiffPatterns) {
			continue
		}
		addRecord(schema.DiffRecord{
			Category:  schema.ContentDiffers,
			RelPath:   rel,
			OtherRepo: otherPath,
			Anomaly:   true,
		})
	}

	for _, rel := range relPaths {
		if !contract.MatchesAnyPattern(rel, cfg.DiffPatterns) {
			continue
		}
		_, inBest := bestFiles[rel]
		_, inOther := otherFiles[rel]

		switch {
		case inBest && !inOther:
			addRecord(schema.DiffRecord{Category: schema.OnlyInBest, RelPath: rel, OtherRepo: otherPath})
		case !inBest && inOther:
			addRecord(schema.DiffRecord{Category: schema.OnlyInOther, RelPath: rel, OtherRepo: otherPath})
		default:
			equal, err := filesEqual(filepath.Join(bestPath, filepath.FromSlash(rel)), filepath.Join(otherPath, filepath.FromSlash(rel)))
			if err != nil {
				addRecord(schema.DiffRecord{Category: schema.ContentDiffers, RelPath: rel, OtherRepo: otherPath, Anomaly: true})
				continue
			}
			if equal {
				continue
			}
			rec := schema.DiffRecord{Category: schema.ContentDiffers, RelPath: rel, OtherRepo: otherPath}
			if cfg.Checksum {
				rec.BestChecksum = fileDigest(filepath.Join(bestPath, filepath.FromSlash(rel)))
				rec.OtherChecksum = fileDigest(filepath.Join(otherPath, filepath.FromSlash(rel)))
			}
			addRecord(rec)
		}
	}

	report.Summary.TopDirs = sortedTopDirs(topDirs)

	// Record order is (category, path): the classification pass above
	// emits path order, so a stable re-sort by category rank suffices.
	sort.SliceStable(records, func(i, j int) bool {
		return categoryRank[records[i].Category] < categoryRank[records[j].Category]
	})
	report.Records = records

	if cfg.DiffLevel == schema.FullLevel && len(records) > 0 {
		artifact, err := writeDiffArtifact(cfg, bestPath, otherPath, records)
		if err != nil {
			contract.LogWarn("could not write diff artifact for "+otherPath, err)
		} else {
			report.ArtifactPath = artifact
		}
	}

	if cfg.DiffLevel == schema.SummaryLevel {
		report.Records = nil
	}
	return report
}

// listTree collects the relative file paths under root, excluding
// VCS-internal subtrees. Unreadable entries come back as anomaly paths
// instead of aborting the walk.
func listTree(ctx context.Context, root string) (map[string]struct{}, []string) {
	files := make(map[string]struct{})
	var anomalies []string

	_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if ctx.Err() != nil {
			return filepath.SkipAll
		}
		rel, relErr := filepath.Rel(root, path)
		if relErr != nil {
			return nil
		}
		rel = filepath.ToSlash(rel)
		if walkErr != nil {
			anomalies = append(anomalies, rel)
			return nil
		}
		if d.IsDir() {
			if _, vcs := vcsInternalDirs[d.Name()]; vcs && path != root {
				return filepath.SkipDir
			}
			return nil
		}
		files[rel] = struct{}{}
		return nil
	})

	return files, anomalies
}

// topLevelDir returns the first path segment, or "." for root files.
func topLevelDir(rel string) string {
	if idx := strings.IndexByte(rel, '/'); idx >= 0 {
		return rel[:idx]
	}
	return "."
}

// sortedTopDirs flattens the per-directory accumulator into a sorted slice.
func sortedTopDirs(topDirs map[string]*schema.TopDirCount) []schema.TopDirCount {
	out := make([]schema.TopDirCount, 0, len(topDirs))
	for _, td := range topDirs {
		out = append(out, *td)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Dir < out[j].Dir })
	return out
}

// filesEqual compares two files byte for byte, with a size fast path.
func filesEqual(a, b string) (bool, error) {
	infoA, err := os.Stat(a)
	if err != nil {
		return false, err
	}
	infoB, err := os.Stat(b)
	if err != nil {
		return false, err
	}
	if infoA.Size() != infoB.Size() {
		return false, nil
	}

	fileA, err := os.Open(a)
	if err != nil {
		return false, err
	}
	defer func() { _ = fileA.Close() }()
	fileB, err := os.Open(b)
	if err != nil {
		return false, err
	}
	defer func() { _ = fileB.Close() }()

	bufA := make([]byte, compareChunkSize)
	bufB := make([]byte, compareChunkSize)
	for {
		nA, errA := io.ReadFull(fileA, bufA)
		nB, errB := io.ReadFull(fileB, bufB)
		if nA != nB || !bytes.Equal(bufA[:nA], bufB[:nB]) {
			return false, nil
		}
		if errA == io.EOF || errA == io.ErrUnexpectedEOF {
			return true, nil
		}
		if errA != nil {
			return false, errA
		}
		if errB != nil {
			return false, errB
		}
	}
}

// fileDigest returns the BLAKE2b-256 hex digest of a file, or the N/A
// sentinel when the file cannot be read. Digest mode distinguishes
// "same bytes, different timestamp" from genuinely different content.
func fileDigest(path string) string {
	f, err := os.Open(path)
	if err != nil {
		return schema.NotAvailableLabel
	}
	defer func() { _ = f.Close() }()

	h, err := blake2b.New256(nil)
	if err != nil {
		return schema.NotAvailableLabel
	}
	if _, err := io.Copy(h, f); err != nil {
		return schema.NotAvailableLabel
	}
	return hex.EncodeToString(h.Sum(nil))
}

// writeDiffArtifact renders one unified-diff document covering every
// record of a comparison pair and persists it under cfg.DiffDir. The
// name derives from the repository name, both variant paths and the run
// stamp, so repeated runs produce distinct, predictable artifacts.
func writeDiffArtifact(cfg *contract.Config, bestPath, otherPath string, records []schema.DiffRecord) (string, error) {
	name := fmt.Sprintf("%s_%s_vs_%s_%s.diff",
		artifactRepoName(cfg, bestPath),
		filepath.Base(bestPath),
		filepath.Base(otherPath),
		cfg.RunStamp,
	)
	artifactPath := filepath.Join(cfg.DiffDir, name)

	var buf strings.Builder
	for _, rec := range records {
		if rec.Anomaly {
			fmt.Fprintf(&buf, "# unreadable during comparison: %s\n", rec.RelPath)
			continue
		}
		hunk, err := renderUnifiedDiff(bestPath, otherPath, rec)
		if err != nil {
			fmt.Fprintf(&buf, "# diff failed for %s: %v\n", rec.RelPath, err)
			continue
		}
		buf.WriteString(hunk)
	}

	if err := os.WriteFile(artifactPath, []byte(buf.String()), 0o644); err != nil {
		return "", err
	}
	return artifactPath, nil
}

// artifactRepoName prefers the configured name prefix and falls back to
// the Best variant's base name.
func artifactRepoName(cfg *contract.Config, bestPath string) string {
	if cfg.NamePrefix != "" {
		return cfg.NamePrefix
	}
	return filepath.Base(bestPath)
}

// renderUnifiedDiff produces the unified hunks for one record. Files on
// a missing side diff against /dev/null, matching git's presentation.
func renderUnifiedDiff(bestPath, otherPath string, rec schema.DiffRecord) (string, error) {
	var fromFile, toFile string
	var fromBytes, toBytes []byte
	var err error

	switch rec.Category {
	case schema.OnlyInBest:
		fromFile = "a/" + rec.RelPath
		toFile = "/dev/null"
		fromBytes, err = os.ReadFile(filepath.Join(bestPath, filepath.FromSlash(rec.RelPath)))
		if err != nil {
			return "", err
		}
	case schema.OnlyInOther:
		fromFile = "/dev/null"
		toFile = "b/" + rec.RelPath
		toBytes, err = os.ReadFile(filepath.Join(otherPath, filepath.FromSlash(rec.RelPath)))
		if err != nil {
			return "", err
		}
	default:
		fromFile = "a/" + rec.RelPath
		toFile = "b/" + rec.RelPath
		fromBytes, err = os.ReadFile(filepath.Join(bestPath, filepath.FromSlash(rec.RelPath)))
		if err != nil {
			return "", err
		}
		toBytes, err = os.ReadFile(filepath.Join(otherPath, filepath.FromSlash(rec.RelPath)))
		if err != nil {
			return "", err
		}
	}

	if looksBinary(fromBytes) || looksBinary(toBytes) {
		return fmt.Sprintf("Binary files %s and %s differ\n", fromFile, toFile), nil
	}

	diff := difflib.UnifiedDiff{
		A:        difflib.SplitLines(string(fromBytes)),
		B:        difflib.SplitLines(string(toBytes)),
		FromFile: fromFile,
		ToFile:   toFile,
		Context:  3,
	}
	return difflib.GetUnifiedDiffString(diff)
}

// looksBinary applies git's NUL-byte heuristic to the file head.
func looksBinary(content []byte) bool {
	head := content
	if len(head) > binarySniffLen {
		head = head[:binarySniffLen]
	}
	return bytes.IndexByte(head, 0) >= 0
}
