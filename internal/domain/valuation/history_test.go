package valuation

import (
	"math"
	"testing"
	"time"
)

func TestComputeChange(t *testing.T) {
	t.Parallel()

	entries := []MarketValueEntry{
		{Day: 9, Value: 900},
		{Day: 10, Value: 1000},
	}

	change := ComputeChange(entries, 12)
	if change.AbsoluteChange != 100 {
		t.Fatalf("absolute=%d, want 100", change.AbsoluteChange)
	}
	if math.Abs(change.PercentageChange-11.11) > 0.01 {
		t.Fatalf("percentage=%.4f, want ~11.11", change.PercentageChange)
	}
	if change.DaysSinceUpdate != 2 {
		t.Fatalf("days since update=%d, want 2", change.DaysSinceUpdate)
	}
}

func TestComputeChange_ZeroPriorValue(t *testing.T) {
	t.Parallel()

	change := ComputeChange([]MarketValueEntry{
		{Day: 10, Value: 500},
		{Day: 9, Value: 0},
	}, 10)
	if change.AbsoluteChange != 500 {
		t.Fatalf("absolute=%d, want 500", change.AbsoluteChange)
	}
	if change.PercentageChange != 0 {
		t.Fatalf("percentage=%.4f, want 0 on zero prior value", change.PercentageChange)
	}
}

func TestComputeChange_DailyBreakdown(t *testing.T) {
	t.Parallel()

	entries := []MarketValueEntry{
		{Day: 6, Value: 100},
		{Day: 7, Value: 150},
		{Day: 8, Value: 130},
		{Day: 9, Value: 180},
		{Day: 10, Value: 200},
	}

	change := ComputeChange(entries, 10)
	if len(change.Daily) != 3 {
		t.Fatalf("daily len=%d, want capped at 3", len(change.Daily))
	}

	wantChanges := []int64{20, 50, -20}
	wantDaysAgo := []int{0, 1, 2}
	for i, daily := range change.Daily {
		if daily.Change != wantChanges[i] {
			t.Fatalf("daily[%d].Change=%d, want %d", i, daily.Change, wantChanges[i])
		}
		if daily.DaysAgo != wantDaysAgo[i] {
			t.Fatalf("daily[%d].DaysAgo=%d, want %d", i, daily.DaysAgo, wantDaysAgo[i])
		}
	}
}

func TestComputeChange_SingleAndEmpty(t *testing.T) {
	t.Parallel()

	change := ComputeChange([]MarketValueEntry{{Day: 5, Value: 300}}, 8)
	if change.AbsoluteChange != 0 || change.PercentageChange != 0 {
		t.Fatalf("single entry should yield zero change, got %+v", change)
	}
	if change.DaysSinceUpdate != 3 {
		t.Fatalf("days since update=%d, want 3", change.DaysSinceUpdate)
	}
	if len(change.Daily) != 0 {
		t.Fatalf("daily len=%d, want 0", len(change.Daily))
	}

	if got := ComputeChange(nil, 8); got.DaysSinceUpdate != 0 || got.AbsoluteChange != 0 {
		t.Fatalf("empty history should yield zero summary, got %+v", got)
	}
}

func TestComputeChange_DoesNotMutateInput(t *testing.T) {
	t.Parallel()

	entries := []MarketValueEntry{
		{Day: 3, Value: 10},
		{Day: 5, Value: 30},
	}
	_ = ComputeChange(entries, 5)
	if entries[0].Day != 3 || entries[1].Day != 5 {
		t.Fatalf("input order mutated: %+v", entries)
	}
}

func TestDateFromDay(t *testing.T) {
	t.Parallel()

	got := DateFromDay(19723)
	want := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("got=%s, want %s", got, want)
	}

	if day := Today(want.Add(6 * time.Hour)); day != 19723 {
		t.Fatalf("Today=%d, want 19723", day)
	}
}
