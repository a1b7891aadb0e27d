package schema

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// TestActivityEpoch verifies the combined activity invariant.
func TestActivityEpoch(t *testing.T) {
	cases := []struct {
		name   string
		commit int64
		file   int64
		want   int64
	}{
		{"commit newer", 2000, 1000, 2000},
		{"file newer", 1000, 2000, 2000},
		{"equal", 1500, 1500, 1500},
		{"both unknown", 0, 0, 0},
		{"commit only", 1234, 0, 1234},
		{"file only", 0, 4321, 4321},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ActivityEpoch(tc.commit, tc.file))
		})
	}
}

// TestEpochSecondsTruncates ensures sub-second components are dropped, not rounded.
func TestEpochSecondsTruncates(t *testing.T) {
	base := time.Unix(1700000000, 0)
	almostNext := base.Add(999 * time.Millisecond)
	assert.Equal(t, int64(1700000000), EpochSeconds(almostNext))
}

// TestHumanEpoch checks the no-commits sentinel substitution.
func TestHumanEpoch(t *testing.T) {
	assert.Equal(t, NoCommitsLabel, HumanEpoch(0))
	assert.NotEqual(t, NoCommitsLabel, HumanEpoch(1700000000))
}

// TestBarWidth covers scaling, the visibility floor and degenerate spans.
func TestBarWidth(t *testing.T) {
	t.Run("scales linearly", func(t *testing.T) {
		assert.Equal(t, 50, BarWidth(150, 100, 200))
		assert.Equal(t, 100, BarWidth(200, 100, 200))
	})

	t.Run("oldest entry keeps minimum width", func(t *testing.T) {
		assert.Equal(t, MinBarWidth, BarWidth(100, 100, 200))
	})

	t.Run("single candidate span", func(t *testing.T) {
		// min == max must not divide by zero
		assert.Equal(t, MinBarWidth, BarWidth(100, 100, 100))
	})
}
