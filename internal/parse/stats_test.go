package parse

import (
	"testing"

	"github.com/kickmate/manager-api/internal/domain/league"
)

func TestUserStatsWrapperPriority(t *testing.T) {
	t.Parallel()

	// The "user" wrapper answers for points; budget only exists at the
	// root; placement comes from the fallback.
	raw := `{"user":{"p":120},"b":3.5e6}`
	fallback := league.LeagueUser{Placement: 7, Points: 1, Budget: 1}

	got := UserStats(mustDecode(t, raw), fallback)
	if got.Points != 120 {
		t.Fatalf("points = %d, want 120", got.Points)
	}
	if got.Budget != 3500000 {
		t.Fatalf("budget = %d, want 3500000", got.Budget)
	}
	if got.Placement != 7 {
		t.Fatalf("placement = %d, want 7", got.Placement)
	}
}

func TestUserStatsResponseBeatsFallback(t *testing.T) {
	t.Parallel()

	raw := `{"me":{"tv":4.2e7,"tvt":1,"b":100,"p":55,"pl":3,"w":6,"d":2,"l":1}}`
	fallback := league.LeagueUser{TeamValue: 1, Budget: 1, Points: 1, Placement: 1, Won: 1, Drawn: 1, Lost: 1}

	got := UserStats(mustDecode(t, raw), fallback)
	if got.TeamValue != 42000000 || got.TeamValueTrend != 1 {
		t.Fatalf("team value = %d trend %d", got.TeamValue, got.TeamValueTrend)
	}
	if got.Budget != 100 || got.Points != 55 || got.Placement != 3 {
		t.Fatalf("stats = %+v", got)
	}
	if got.Won != 6 || got.Drawn != 2 || got.Lost != 1 {
		t.Fatalf("record = %d/%d/%d", got.Won, got.Drawn, got.Lost)
	}
}

func TestUserStatsEmptyResponseUsesFallback(t *testing.T) {
	t.Parallel()

	fallback := league.LeagueUser{TeamValue: 9, Budget: 8, Points: 7, Placement: 6, Won: 5, Drawn: 4, Lost: 3}
	got := UserStats(mustDecode(t, `{}`), fallback)
	if got.TeamValue != 9 || got.Budget != 8 || got.Points != 7 || got.Placement != 6 {
		t.Fatalf("fallback not applied: %+v", got)
	}
	if got.Won != 5 || got.Drawn != 4 || got.Lost != 3 {
		t.Fatalf("fallback record not applied: %+v", got)
	}
	if got.TeamValueTrend != 0 {
		t.Fatalf("trend has no fallback source, got %d", got.TeamValueTrend)
	}
}
