package patterns

import "time"

// PatternStat holds the occurrence count and the ordered dates for one
// pattern tag. Count always equals len(Dates).
type PatternStat struct {
	Count int
	Dates []time.Time
}

// Summary maps every pattern tag to its occurrence statistics. Tags
// that never fired are present with a zero count so callers can iterate
// the full closed set.
type Summary map[Tag]PatternStat

// Summarize derives per-pattern statistics from a labeled sequence. It
// rereads the rows on every call and is safe to run concurrently on the
// same immutable input.
func Summarize(rows []LabeledRow) Summary {
	out := make(Summary, len(Tags))
	for _, tag := range Tags {
		dates := Dates(rows, tag)
		out[tag] = PatternStat{Count: len(dates), Dates: dates}
	}
	return out
}

// Dates returns the dates on which the tag fired, in row order. A tag
// that never fired yields an empty slice, not an error.
func Dates(rows []LabeledRow, tag Tag) []time.Time {
	dates := []time.Time{}
	for _, r := range rows {
		if r.Has(tag) {
			dates = append(dates, r.Date)
		}
	}
	return dates
}
