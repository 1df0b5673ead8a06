package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/kickmate/manager-api/internal/domain/league"
	"github.com/kickmate/manager-api/internal/domain/stats"
	"github.com/kickmate/manager-api/internal/parse"
	"github.com/kickmate/manager-api/internal/platform/logging"
)

type LeagueService struct {
	source Source
	logger *logging.Logger
}

func NewLeagueService(source Source, logger *logging.Logger) *LeagueService {
	if logger == nil {
		logger = logging.Default()
	}
	return &LeagueService{
		source: source,
		logger: logger,
	}
}

func (s *LeagueService) ListLeagues(ctx context.Context) ([]league.League, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LeagueService.ListLeagues")
	defer span.End()

	root, err := s.source.Leagues(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch leagues: %w", err)
	}

	leagues := parse.Leagues(root)
	s.logger.DebugContext(ctx, "parsed leagues", "count", len(leagues))
	return leagues, nil
}

// Ranking returns user standings for a league. A matchday greater than
// zero requests that matchday's standings; zero requests season totals.
// The distinction also selects which overloaded response fields carry the
// points and placement.
func (s *LeagueService) Ranking(ctx context.Context, leagueID string, matchday int) ([]league.LeagueUser, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LeagueService.Ranking")
	defer span.End()

	leagueID = strings.TrimSpace(leagueID)
	if leagueID == "" {
		return nil, fmt.Errorf("%w: league id is required", ErrInvalidInput)
	}
	if matchday < 0 {
		return nil, fmt.Errorf("%w: matchday must not be negative", ErrInvalidInput)
	}

	root, err := s.source.Ranking(ctx, leagueID, matchday)
	if err != nil {
		return nil, fmt.Errorf("fetch ranking league=%s: %w", leagueID, err)
	}

	users := parse.Ranking(root, matchday > 0)
	s.logger.DebugContext(ctx, "parsed ranking", "league_id", leagueID, "matchday", matchday, "count", len(users))
	return users, nil
}

// UserStats assembles the signed-in user's aggregate standing. fallback
// supplies values for fields the stats endpoint omits, typically the
// user's entry from a previously fetched ranking.
func (s *LeagueService) UserStats(ctx context.Context, leagueID string, fallback league.LeagueUser) (stats.UserStats, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LeagueService.UserStats")
	defer span.End()

	leagueID = strings.TrimSpace(leagueID)
	if leagueID == "" {
		return stats.UserStats{}, fmt.Errorf("%w: league id is required", ErrInvalidInput)
	}

	root, err := s.source.UserStats(ctx, leagueID)
	if err != nil {
		return stats.UserStats{}, fmt.Errorf("fetch user stats league=%s: %w", leagueID, err)
	}

	return parse.UserStats(root, fallback), nil
}
