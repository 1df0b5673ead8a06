package usecase

import (
	"context"

	"github.com/kickmate/manager-api/internal/record"
)

// Source fetches raw provider responses. Implementations return the
// decoded response body as an untyped record; all shape normalization
// happens in this layer so transports stay dumb.
type Source interface {
	Leagues(ctx context.Context) (record.Record, error)
	Ranking(ctx context.Context, leagueID string, matchday int) (record.Record, error)
	Market(ctx context.Context, leagueID string) (record.Record, error)
	UserStats(ctx context.Context, leagueID string) (record.Record, error)
	MarketValueHistory(ctx context.Context, leagueID, playerID string) (record.Record, error)
	PlayerPerformance(ctx context.Context, leagueID, playerID string) (record.Record, error)
	TeamProfile(ctx context.Context, leagueID, teamID string) (record.Record, error)
	TeamSchedule(ctx context.Context, leagueID, teamID string) (record.Record, error)
}

// DetailLookup resolves a single player's detail record. Split from Source
// so market enrichment can be tested and wired independently.
type DetailLookup interface {
	PlayerDetail(ctx context.Context, leagueID, playerID string) (record.Record, error)
}
