package core

import (
	"math/rand"
	"testing"

	"github.com/samhoang/repotwin/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestRankCandidatesScenario checks the documented ordering scenario:
// dirty outranks clean regardless of recency, then activity decides.
func TestRankCandidatesScenario(t *testing.T) {
	candidates := []schema.RepoCandidate{
		{Path: "/work/proj-a", Dirty: true, ActivityEpoch: 1000},
		{Path: "/work/proj-b", Dirty: false, ActivityEpoch: 2000},
		{Path: "/work/proj-c", Dirty: false, ActivityEpoch: 1500},
	}

	ranked := RankCandidates(candidates)
	MarkBest(ranked)

	require.Len(t, ranked, 3)
	assert.Equal(t, "/work/proj-a", ranked[0].Path)
	assert.Equal(t, "/work/proj-b", ranked[1].Path)
	assert.Equal(t, "/work/proj-c", ranked[2].Path)
	assert.True(t, ranked[0].Best)
	assert.False(t, ranked[1].Best)
	assert.False(t, ranked[2].Best)
}

// TestDirtyOutranksRecency pins the first comparator key: a dirty copy
// at epoch 100 beats a clean copy at epoch 999999.
func TestDirtyOutranksRecency(t *testing.T) {
	a := schema.RepoCandidate{Path: "/a", Dirty: true, ActivityEpoch: 100}
	b := schema.RepoCandidate{Path: "/b", Dirty: false, ActivityEpoch: 999999}
	assert.True(t, candidateLess(a, b))
	assert.False(t, candidateLess(b, a))
}

// TestComparatorTiebreaks walks each key of the chain in isolation.
func TestComparatorTiebreaks(t *testing.T) {
	base := schema.RepoCandidate{Path: "/m", Dirty: true, ActivityEpoch: 50, AheadCount: 2, BehindCount: 3}

	t.Run("ahead descending", func(t *testing.T) {
		more := base
		more.AheadCount = 5
		assert.True(t, candidateLess(more, base))
	})

	t.Run("behind ascending", func(t *testing.T) {
		closer := base
		closer.BehindCount = 1
		assert.True(t, candidateLess(closer, base))
	})

	t.Run("path ascending as final key", func(t *testing.T) {
		other := base
		other.Path = "/z"
		assert.True(t, candidateLess(base, other))
		assert.False(t, candidateLess(other, base))
	})
}

// TestRankPermutationInvariance shuffles the same candidate set and
// expects the identical output order every time: the comparator is a
// strict total order because paths are unique.
func TestRankPermutationInvariance(t *testing.T) {
	build := func() []schema.RepoCandidate {
		return []schema.RepoCandidate{
			{Path: "/r/one", Dirty: true, ActivityEpoch: 100},
			{Path: "/r/two", Dirty: true, ActivityEpoch: 100},
			{Path: "/r/three", Dirty: false, ActivityEpoch: 900, AheadCount: 4},
			{Path: "/r/four", Dirty: false, ActivityEpoch: 900, AheadCount: 4, BehindCount: 2},
			{Path: "/r/five", Dirty: false, ActivityEpoch: 300},
		}
	}

	want := RankCandidates(build())

	rng := rand.New(rand.NewSource(7))
	for range 20 {
		shuffled := build()
		rng.Shuffle(len(shuffled), func(i, j int) {
			shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
		})
		got := RankCandidates(shuffled)
		assert.Equal(t, want, got)
	}
}

// TestComparatorAntisymmetry verifies that for distinct candidates
// exactly one direction of the comparator holds.
func TestComparatorAntisymmetry(t *testing.T) {
	candidates := []schema.RepoCandidate{
		{Path: "/p1", Dirty: true, ActivityEpoch: 10},
		{Path: "/p2", Dirty: false, ActivityEpoch: 10},
		{Path: "/p3", Dirty: false, ActivityEpoch: 20, AheadCount: 1},
		{Path: "/p4", Dirty: false, ActivityEpoch: 20, BehindCount: 9},
	}
	for i := range candidates {
		for j := range candidates {
			if i == j {
				assert.False(t, candidateLess(candidates[i], candidates[j]))
				continue
			}
			less := candidateLess(candidates[i], candidates[j])
			greater := candidateLess(candidates[j], candidates[i])
			assert.NotEqual(t, less, greater, "exactly one of less/greater must hold for %d vs %d", i, j)
		}
	}
}

// TestSingleCandidateIsBest covers the N=1 guarantee.
func TestSingleCandidateIsBest(t *testing.T) {
	ranked := RankCandidates([]schema.RepoCandidate{{Path: "/only"}})
	MarkBest(ranked)
	require.Len(t, ranked, 1)
	assert.True(t, ranked[0].Best)
}
