// Package streak computes the current consecutive-day completion streak
// of a habit from its log history. It is a pure function over
// already-fetched entries; log retrieval and the one-entry-per-day
// uniqueness guarantee belong to the storage layer.
package streak

import "time"

// Entry is one completed ("done") day in a habit's history.
type Entry struct {
	Date time.Time
}

// Day truncates t to local midnight. The conversion to local time
// matters: the store hands back UTC instants, and two instants on the
// same local calendar day must collapse to the same key regardless of
// the location they arrive in.
func Day(t time.Time) time.Time {
	t = t.In(time.Local)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.Local)
}

// Current returns the streak length as of asOf. Entries must contain
// done days only, sorted descending by date; callers cap the history
// they pass in (the service fetches at most 365 entries).
//
// A streak is alive when the habit was done today, or done yesterday
// with today not yet logged. The walk starts at the most recent logged
// day rather than unconditionally at today, so an unlogged today does
// not read as a gap: a history of just yesterday yields 1, not 0.
func Current(entries []Entry, asOf time.Time) int {
	if len(entries) == 0 {
		return 0
	}

	today := Day(asOf)
	yesterday := today.AddDate(0, 0, -1)

	latest := Day(entries[0].Date)
	if !latest.Equal(today) && !latest.Equal(yesterday) {
		return 0
	}

	count := 0
	cursor := latest
	for _, e := range entries {
		d := Day(e.Date)
		if d.Equal(cursor) {
			count++
			cursor = cursor.AddDate(0, 0, -1)
		} else if d.Before(cursor) {
			// gap: the streak is broken
			break
		}
	}
	return count
}
