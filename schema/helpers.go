package schema

import "time"

// Bar widths rendered for forensic timelines. The floor keeps the oldest
// entry visible instead of collapsing to an empty cell.
const (
	MinBarWidth = 5
	MaxBarWidth = 100
)

// HumanTimeFormat is the display format for epoch-derived timestamps.
const HumanTimeFormat = "2006-01-02 15:04:05"

// ActivityEpoch returns the combined activity signal for a candidate:
// the more recent of its last-commit time and its newest file's mtime.
func ActivityEpoch(lastCommitEpoch, latestFileEpoch int64) int64 {
	return max(lastCommitEpoch, latestFileEpoch)
}

// EpochSeconds truncates a time to whole epoch seconds. Truncation, not
// rounding, so that filesystem and commit timestamps compare consistently.
func EpochSeconds(t time.Time) int64 {
	return t.Unix()
}

// HumanEpoch formats an epoch for display, substituting the no-commits
// sentinel for the zero value.
func HumanEpoch(epoch int64) string {
	if epoch == 0 {
		return NoCommitsLabel
	}
	return time.Unix(epoch, 0).Format(HumanTimeFormat)
}

// BarWidth normalizes an activity epoch into [MinBarWidth, MaxBarWidth]
// relative to the global min/max epochs of a forensic report.
func BarWidth(epoch, minEpoch, maxEpoch int64) int {
	span := maxEpoch - minEpoch
	if span < 1 {
		span = 1
	}
	width := int((epoch - minEpoch) * 100 / span)
	if width < MinBarWidth {
		return MinBarWidth
	}
	if width > MaxBarWidth {
		return MaxBarWidth
	}
	return width
}
