package contract

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestMatchesAnyPattern covers inclusion semantics of the pattern set.
func TestMatchesAnyPattern(t *testing.T) {
	t.Run("empty set matches all", func(t *testing.T) {
		assert.True(t, MatchesAnyPattern("src/main.cpp", nil))
		assert.True(t, MatchesAnyPattern("anything", []string{}))
	})

	t.Run("base name match", func(t *testing.T) {
		assert.True(t, MatchesAnyPattern("docs/readme.md", []string{"*.md"}))
	})

	t.Run("full path match", func(t *testing.T) {
		assert.True(t, MatchesAnyPattern("docs/readme.md", []string{"docs/*"}))
	})

	t.Run("no match", func(t *testing.T) {
		assert.False(t, MatchesAnyPattern("src/main.cpp", []string{"*.md"}))
	})

	t.Run("logical OR over patterns", func(t *testing.T) {
		patterns := []string{"*.md", "*.cpp"}
		assert.True(t, MatchesAnyPattern("src/main.cpp", patterns))
		assert.True(t, MatchesAnyPattern("notes.md", patterns))
		assert.False(t, MatchesAnyPattern("Makefile", patterns))
	})
}

func TestTruncatePath(t *testing.T) {
	assert.Equal(t, "short", TruncatePath("short", 20))
	assert.Equal(t, "...ts/deep/file.go", TruncatePath("/very/long/path/to/projects/deep/file.go", 18))
	// Widths too small to truncate meaningfully pass through unchanged.
	assert.Equal(t, "/some/path", TruncatePath("/some/path", 3))
}

// TestShouldExclude checks exact directory-name exclusion.
func TestShouldExclude(t *testing.T) {
	excludes := []string{"node_modules", "bin", ""}
	assert.True(t, ShouldExclude("node_modules", excludes))
	assert.True(t, ShouldExclude("bin", excludes))
	assert.False(t, ShouldExclude("binary", excludes))
	assert.False(t, ShouldExclude("src", excludes))
}
