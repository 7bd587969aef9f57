package streak

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

var asOf = time.Date(2026, 3, 10, 14, 30, 0, 0, time.Local)

// entries builds a done-log history from day offsets relative to asOf,
// which must be given newest first.
func entries(offsets ...int) []Entry {
	result := make([]Entry, len(offsets))
	for i, off := range offsets {
		result[i] = Entry{Date: Day(asOf).AddDate(0, 0, off)}
	}
	return result
}

func TestCurrent(t *testing.T) {
	tests := []struct {
		name    string
		entries []Entry
		want    int
	}{
		{"empty history", nil, 0},
		{"only today", entries(0), 1},
		{"three consecutive days ending today", entries(0, -1, -2), 3},
		{"gap yesterday breaks everything", entries(-2, -3), 0},
		// Today not yet logged: the streak is still alive from
		// yesterday. The walk starts at the most recent logged day,
		// so this counts 1, not 0.
		{"only yesterday", entries(-1), 1},
		{"yesterday and the day before", entries(-1, -2), 2},
		{"gap behind today stops the walk", entries(0, -2, -3), 1},
		{"long run ending yesterday", entries(-1, -2, -3, -4, -5), 5},
		{"stale history", entries(-5, -6, -7), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, Current(tt.entries, asOf))
		})
	}
}

func TestCurrentNormalizesTimestamps(t *testing.T) {
	// log rows written at arbitrary times of day still collapse to
	// calendar days
	history := []Entry{
		{Date: Day(asOf).Add(9 * time.Hour)},
		{Date: Day(asOf).AddDate(0, 0, -1).Add(23*time.Hour + 59*time.Minute)},
	}
	require.Equal(t, 2, Current(history, asOf))
}

func TestCurrentIgnoresEntryLocation(t *testing.T) {
	// The store decodes datetimes in UTC, so entries arrive as the same
	// instants in a different location. The count must not change.
	foreign := time.FixedZone("UTC+5:30", 5*3600+30*60)
	history := []Entry{
		{Date: Day(asOf).UTC()},
		{Date: Day(asOf).AddDate(0, 0, -1).In(foreign)},
	}
	require.Equal(t, 2, Current(history, asOf))
	require.Equal(t, 2, Current(history, asOf.UTC()))
}

func TestDay(t *testing.T) {
	d := Day(time.Date(2026, 3, 10, 23, 59, 59, 999, time.Local))
	require.Equal(t, time.Date(2026, 3, 10, 0, 0, 0, 0, time.Local), d)
	require.Equal(t, d, Day(d))
}
