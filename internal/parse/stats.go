package parse

import (
	"github.com/kickmate/manager-api/internal/domain/league"
	"github.com/kickmate/manager-api/internal/domain/stats"
	"github.com/kickmate/manager-api/internal/record"
)

// Wrapper objects the stats endpoint has nested the user aggregate in,
// tried in order before falling back to the response root.
var statsWrapperKeys = []string{"user", "me", "data", "team", "league"}

// UserStats assembles the signed-in user's aggregate standing. Each field
// is resolved independently: a wrapper that answers for one field may be
// silent on another, in which case the root and finally the caller-supplied
// fallback entity cover it.
func UserStats(root record.Record, fallback league.LeagueUser) stats.UserStats {
	sources := make([]record.Record, 0, len(statsWrapperKeys)+1)
	for _, key := range statsWrapperKeys {
		if child := root.Child(key); child != nil {
			sources = append(sources, child)
		}
	}
	sources = append(sources, root)

	out := stats.UserStats{
		TeamValue:      fallback.TeamValue,
		TeamValueTrend: 0,
		Budget:         fallback.Budget,
		Points:         fallback.Points,
		Placement:      fallback.Placement,
		Won:            fallback.Won,
		Drawn:          fallback.Drawn,
		Lost:           fallback.Lost,
	}

	if v, ok := floatFromAny(sources, "teamValue", "tv"); ok {
		out.TeamValue = int64(v)
	}
	if v, ok := intFromAny(sources, "teamValueTrend", "tvt", "trend"); ok {
		out.TeamValueTrend = v
	}
	if v, ok := floatFromAny(sources, "budget", "b"); ok {
		out.Budget = int64(v)
	}
	if v, ok := intFromAny(sources, "points", "p", "sp"); ok {
		out.Points = v
	}
	if v, ok := intFromAny(sources, "placement", "pl", "spl"); ok {
		out.Placement = v
	}
	if v, ok := intFromAny(sources, "won", "w"); ok {
		out.Won = v
	}
	if v, ok := intFromAny(sources, "drawn", "d"); ok {
		out.Drawn = v
	}
	if v, ok := intFromAny(sources, "lost", "l"); ok {
		out.Lost = v
	}

	return out
}

func intFromAny(sources []record.Record, keys ...string) (int, bool) {
	for _, src := range sources {
		if v, ok := src.IntAny(keys...); ok {
			return v, true
		}
	}
	return 0, false
}

func floatFromAny(sources []record.Record, keys ...string) (float64, bool) {
	for _, src := range sources {
		if v, ok := src.FloatAny(keys...); ok {
			return v, true
		}
	}
	return 0, false
}
