package core

import "github.com/samhoang/repotwin/schema"

// StatusCounts buckets the working-tree changes of one repository.
// A partially staged path (both status characters set) counts in the
// staged AND unstaged buckets; untracked paths count only as untracked.
type StatusCounts struct {
	Staged    int
	Unstaged  int
	Untracked int
}

// Dirty reports whether any bucket is non-empty.
func (s StatusCounts) Dirty() bool {
	return s.Staged > 0 || s.Unstaged > 0 || s.Untracked > 0
}

// ClassifyStatusChar maps one character of a porcelain XY status code to
// a file state. It is a pure function so the classification table can be
// tested without any scan.
func ClassifyStatusChar(c byte) schema.FileState {
	switch c {
	case 'A':
		return schema.StateAdded
	case 'M', 'T', 'U', 'C':
		return schema.StateModified
	case 'D':
		return schema.StateDeleted
	case 'R':
		return schema.StateRenamed
	case '?':
		return schema.StateUntracked
	default: // ' ' and '!'
		return schema.StateUnmodified
	}
}

// CountStatus reduces porcelain status lines ("XY path") to bucket
// counts. Lines too short to carry a status code are skipped.
func CountStatus(lines []string) StatusCounts {
	var counts StatusCounts
	for _, line := range lines {
		if len(line) < 2 {
			continue
		}
		index := ClassifyStatusChar(line[0])
		worktree := ClassifyStatusChar(line[1])

		if index == schema.StateUntracked || worktree == schema.StateUntracked {
			counts.Untracked++
			continue
		}
		if index != schema.StateUnmodified {
			counts.Staged++
		}
		if worktree != schema.StateUnmodified {
			counts.Unstaged++
		}
	}
	return counts
}
