package core

import (
	"sort"

	"github.com/samhoang/repotwin/schema"
)

// candidateLess is the fixed five-key comparator. Each key breaks ties
// from the previous only:
//  1. dirty above clean (uncommitted local work is presumed to mark the
//     active copy, regardless of recency),
//  2. activity epoch descending,
//  3. ahead count descending,
//  4. behind count ascending,
//  5. path ascending.
//
// Paths are unique, so the order is a strict total order and any input
// permutation sorts to the identical sequence.
func candidateLess(a, b schema.RepoCandidate) bool {
	if a.Dirty != b.Dirty {
		return a.Dirty
	}
	if a.ActivityEpoch != b.ActivityEpoch {
		return a.ActivityEpoch > b.ActivityEpoch
	}
	if a.AheadCount != b.AheadCount {
		return a.AheadCount > b.AheadCount
	}
	if a.BehindCount != b.BehindCount {
		return a.BehindCount < b.BehindCount
	}
	return a.Path < b.Path
}

// RankCandidates sorts candidates in place with the five-key comparator
// and returns the slice. Given N >= 1 candidates, index 0 is Best.
func RankCandidates(candidates []schema.RepoCandidate) []schema.RepoCandidate {
	sort.Slice(candidates, func(i, j int) bool {
		return candidateLess(candidates[i], candidates[j])
	})
	return candidates
}

// MarkBest flags the top-ranked candidate. It assumes the slice is
// already ranked.
func MarkBest(candidates []schema.RepoCandidate) {
	for i := range candidates {
		candidates[i].Best = i == 0
	}
}
