// Package valuation holds the derived computations over parsed market
// data: market-value trend summaries and current-matchday inference.
package valuation

import (
	"sort"
	"time"
)

// MarketValueEntry is one dated market-value point. Day is an epoch-day
// index (days since 1970-01-01 UTC), the unit the provider reports.
type MarketValueEntry struct {
	Day   int
	Value int64
}

// DailyChange is one day-over-day step of the recent breakdown.
type DailyChange struct {
	Date    time.Time
	DaysAgo int
	Change  int64
}

// MarketValueChange summarizes movement since the previous entry.
type MarketValueChange struct {
	AbsoluteChange   int64
	PercentageChange float64
	DaysSinceUpdate  int
	Daily            []DailyChange
}

const maxDailyBreakdown = 3

// ComputeChange derives the change summary from a value history. Entries
// arrive in provider order and are sorted most-recent-first here. today is
// the current epoch-day index, injected so the computation stays pure.
// Percentage change is 0 when the prior value is 0.
func ComputeChange(entries []MarketValueEntry, today int) MarketValueChange {
	if len(entries) == 0 {
		return MarketValueChange{}
	}

	sorted := make([]MarketValueEntry, len(entries))
	copy(sorted, entries)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Day > sorted[j].Day })

	out := MarketValueChange{
		DaysSinceUpdate: maxInt(today-sorted[0].Day, 0),
	}

	if len(sorted) > 1 {
		prev := sorted[1].Value
		out.AbsoluteChange = sorted[0].Value - prev
		if prev != 0 {
			out.PercentageChange = float64(out.AbsoluteChange) / float64(prev) * 100
		}
	}

	pairs := len(sorted) - 1
	if pairs > maxDailyBreakdown {
		pairs = maxDailyBreakdown
	}
	for i := 0; i < pairs; i++ {
		out.Daily = append(out.Daily, DailyChange{
			Date:    DateFromDay(sorted[i].Day),
			DaysAgo: maxInt(today-sorted[i].Day, 0),
			Change:  sorted[i].Value - sorted[i+1].Value,
		})
	}

	return out
}

// DateFromDay converts an epoch-day index to the calendar date in UTC.
func DateFromDay(day int) time.Time {
	return time.Unix(int64(day)*24*60*60, 0).UTC()
}

// Today returns the epoch-day index for the given instant.
func Today(now time.Time) int {
	return int(now.UTC().Unix() / (24 * 60 * 60))
}

func maxInt(left, right int) int {
	if left > right {
		return left
	}
	return right
}
