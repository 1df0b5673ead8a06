package usecase

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/panjf2000/ants/v2"

	"github.com/kickmate/manager-api/internal/domain/player"
	"github.com/kickmate/manager-api/internal/domain/valuation"
	"github.com/kickmate/manager-api/internal/parse"
	"github.com/kickmate/manager-api/internal/platform/cache"
	"github.com/kickmate/manager-api/internal/platform/logging"
)

// Default cache lifetimes for the two derived lookups. Team profiles move
// slowly; performance data changes during live matchdays and expires faster.
const (
	TeamProfileTTL = 10 * time.Minute
	PerformanceTTL = 5 * time.Minute
)

const defaultPrewarmWorkers = 4

// PerformanceQuery identifies one player's season performance lookup.
// TeamID is optional; when present the team schedule is merged in to fill
// opponents and results the performance rows lack.
type PerformanceQuery struct {
	LeagueID         string
	PlayerID         string
	TeamID           string
	FallbackMatchday int
}

type playerSettings struct {
	profileTTL     time.Duration
	performanceTTL time.Duration
	prewarmWorkers int
}

// PlayerOption overrides a PlayerService default; out-of-range values are
// ignored so config plumbing can pass knobs through unguarded.
type PlayerOption func(*playerSettings)

func WithProfileTTL(ttl time.Duration) PlayerOption {
	return func(s *playerSettings) {
		if ttl > 0 {
			s.profileTTL = ttl
		}
	}
}

func WithPerformanceTTL(ttl time.Duration) PlayerOption {
	return func(s *playerSettings) {
		if ttl > 0 {
			s.performanceTTL = ttl
		}
	}
}

func WithPrewarmWorkers(workers int) PlayerOption {
	return func(s *playerSettings) {
		if workers > 0 {
			s.prewarmWorkers = workers
		}
	}
}

type prewarmPool interface {
	Submit(task func()) error
	Release()
}

type PlayerService struct {
	source Source
	logger *logging.Logger

	profiles     *cache.Store
	performances *cache.Store

	prewarmWorkers int
	newPool        func(size int) (prewarmPool, error)
}

func NewPlayerService(source Source, logger *logging.Logger, opts ...PlayerOption) *PlayerService {
	return newPlayerService(source, logger, time.Now, opts)
}

// NewPlayerServiceWithClock exists for tests that need to control cache
// expiry.
func NewPlayerServiceWithClock(source Source, logger *logging.Logger, now func() time.Time, opts ...PlayerOption) *PlayerService {
	return newPlayerService(source, logger, now, opts)
}

func newPlayerService(source Source, logger *logging.Logger, now func() time.Time, opts []PlayerOption) *PlayerService {
	if logger == nil {
		logger = logging.Default()
	}

	settings := playerSettings{
		profileTTL:     TeamProfileTTL,
		performanceTTL: PerformanceTTL,
		prewarmWorkers: defaultPrewarmWorkers,
	}
	for _, opt := range opts {
		opt(&settings)
	}

	return &PlayerService{
		source:         source,
		logger:         logger,
		profiles:       cache.NewStoreWithClock(settings.profileTTL, now),
		performances:   cache.NewStoreWithClock(settings.performanceTTL, now),
		prewarmWorkers: settings.prewarmWorkers,
		newPool: func(size int) (prewarmPool, error) {
			return ants.NewPool(size)
		},
	}
}

// TeamProfile returns the team detail aggregate, served from cache when a
// fresh entry exists.
func (s *PlayerService) TeamProfile(ctx context.Context, leagueID, teamID string) (player.TeamProfile, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.TeamProfile")
	defer span.End()

	leagueID = strings.TrimSpace(leagueID)
	teamID = strings.TrimSpace(teamID)
	if leagueID == "" {
		return player.TeamProfile{}, fmt.Errorf("%w: league id is required", ErrInvalidInput)
	}
	if teamID == "" {
		return player.TeamProfile{}, fmt.Errorf("%w: team id is required", ErrInvalidInput)
	}

	value, err := s.profiles.GetOrLoad(ctx, cache.Key(teamID, leagueID), func(ctx context.Context) (any, error) {
		root, fetchErr := s.source.TeamProfile(ctx, leagueID, teamID)
		if fetchErr != nil {
			return nil, fmt.Errorf("fetch team profile league=%s team=%s: %w", leagueID, teamID, fetchErr)
		}

		profile := parse.TeamProfile(root)
		profile.LeagueID = leagueID
		if profile.TeamID == "" {
			profile.TeamID = teamID
		}
		return profile, nil
	})
	if err != nil {
		return player.TeamProfile{}, err
	}

	profile, ok := value.(player.TeamProfile)
	if !ok {
		return player.TeamProfile{}, fmt.Errorf("%w: unexpected cache entry for team=%s", ErrDependencyUnavailable, teamID)
	}
	return profile, nil
}

// SeasonPerformance returns a player's per-matchday rows with the current
// matchday inferred, served from cache when a fresh entry exists.
func (s *PlayerService) SeasonPerformance(ctx context.Context, query PerformanceQuery) (player.SeasonPerformance, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.SeasonPerformance")
	defer span.End()

	query.LeagueID = strings.TrimSpace(query.LeagueID)
	query.PlayerID = strings.TrimSpace(query.PlayerID)
	query.TeamID = strings.TrimSpace(query.TeamID)
	if query.LeagueID == "" {
		return player.SeasonPerformance{}, fmt.Errorf("%w: league id is required", ErrInvalidInput)
	}
	if query.PlayerID == "" {
		return player.SeasonPerformance{}, fmt.Errorf("%w: player id is required", ErrInvalidInput)
	}

	value, err := s.performances.GetOrLoad(ctx, cache.Key(query.PlayerID, query.LeagueID), func(ctx context.Context) (any, error) {
		return s.loadSeasonPerformance(ctx, query)
	})
	if err != nil {
		return player.SeasonPerformance{}, err
	}

	performance, ok := value.(player.SeasonPerformance)
	if !ok {
		return player.SeasonPerformance{}, fmt.Errorf("%w: unexpected cache entry for player=%s", ErrDependencyUnavailable, query.PlayerID)
	}
	return performance, nil
}

func (s *PlayerService) loadSeasonPerformance(ctx context.Context, query PerformanceQuery) (player.SeasonPerformance, error) {
	root, err := s.source.PlayerPerformance(ctx, query.LeagueID, query.PlayerID)
	if err != nil {
		return player.SeasonPerformance{}, fmt.Errorf("fetch performance league=%s player=%s: %w", query.LeagueID, query.PlayerID, err)
	}

	matches := parse.MatchPerformances(root)

	// Schedule merge is best effort; performance rows alone are still a
	// valid answer.
	if query.TeamID != "" {
		scheduleRoot, scheduleErr := s.source.TeamSchedule(ctx, query.LeagueID, query.TeamID)
		if scheduleErr != nil {
			s.logger.WarnContext(ctx, "team schedule fetch failed, serving unmerged performance",
				"league_id", query.LeagueID, "team_id", query.TeamID, "error", scheduleErr)
		} else {
			matches = parse.MergeSchedule(matches, parse.TeamSchedule(scheduleRoot))
		}
	}

	return player.SeasonPerformance{
		PlayerID:        query.PlayerID,
		LeagueID:        query.LeagueID,
		CurrentMatchday: valuation.InferCurrentMatchday(matches, query.FallbackMatchday),
		Matches:         matches,
	}, nil
}

// PrewarmPerformances loads season performances for many players through a
// bounded worker pool, typically ahead of rendering a squad view. Failures
// are logged and counted, never fatal.
func (s *PlayerService) PrewarmPerformances(ctx context.Context, queries []PerformanceQuery) (int, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.PrewarmPerformances")
	defer span.End()

	if len(queries) == 0 {
		return 0, nil
	}

	workerCount := s.prewarmWorkers
	if workerCount <= 0 {
		workerCount = 1
	}
	if workerCount > len(queries) {
		workerCount = len(queries)
	}

	workerPool, err := s.newPool(workerCount)
	if err != nil {
		return 0, fmt.Errorf("create prewarm pool: %w", err)
	}
	defer workerPool.Release()

	var warmed atomic.Int32
	var workers sync.WaitGroup
	for _, query := range queries {
		query := query
		workers.Add(1)
		if err := workerPool.Submit(func() {
			defer workers.Done()

			if _, loadErr := s.SeasonPerformance(ctx, query); loadErr != nil {
				s.logger.WarnContext(ctx, "performance prewarm failed",
					"league_id", query.LeagueID, "player_id", query.PlayerID, "error", loadErr)
				return
			}
			warmed.Add(1)
		}); err != nil {
			workers.Done()
			// Tasks already submitted keep running; wait them out so the
			// returned count is final.
			workers.Wait()
			return int(warmed.Load()), fmt.Errorf("submit prewarm task: %w", err)
		}
	}
	workers.Wait()

	return int(warmed.Load()), nil
}

// InvalidateTeamProfile drops a cached team profile, forcing the next read
// to refetch.
func (s *PlayerService) InvalidateTeamProfile(ctx context.Context, leagueID, teamID string) {
	s.profiles.Delete(ctx, cache.Key(strings.TrimSpace(teamID), strings.TrimSpace(leagueID)))
}
