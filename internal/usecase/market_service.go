package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/sourcegraph/conc/pool"

	"github.com/kickmate/manager-api/internal/domain/player"
	"github.com/kickmate/manager-api/internal/domain/valuation"
	"github.com/kickmate/manager-api/internal/parse"
	"github.com/kickmate/manager-api/internal/platform/logging"
)

const defaultEnrichWorkers = 8

type MarketService struct {
	source  Source
	details DetailLookup
	logger  *logging.Logger
	now     func() time.Time

	enrichWorkers int
}

// MarketOption overrides a MarketService default; out-of-range values are
// ignored so config plumbing can pass knobs through unguarded.
type MarketOption func(*MarketService)

// WithEnrichWorkers bounds the concurrent detail lookups in EnrichedMarket.
func WithEnrichWorkers(workers int) MarketOption {
	return func(s *MarketService) {
		if workers > 0 {
			s.enrichWorkers = workers
		}
	}
}

func NewMarketService(source Source, details DetailLookup, logger *logging.Logger, opts ...MarketOption) *MarketService {
	if logger == nil {
		logger = logging.Default()
	}
	svc := &MarketService{
		source:        source,
		details:       details,
		logger:        logger,
		now:           time.Now,
		enrichWorkers: defaultEnrichWorkers,
	}
	for _, opt := range opts {
		opt(svc)
	}
	return svc
}

func (s *MarketService) Market(ctx context.Context, leagueID string) ([]player.MarketPlayer, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MarketService.Market")
	defer span.End()

	leagueID = strings.TrimSpace(leagueID)
	if leagueID == "" {
		return nil, fmt.Errorf("%w: league id is required", ErrInvalidInput)
	}

	root, err := s.source.Market(ctx, leagueID)
	if err != nil {
		return nil, fmt.Errorf("fetch market league=%s: %w", leagueID, err)
	}

	return parse.Market(root), nil
}

// EnrichedMarket returns the market with each listing's player enriched
// from the detail endpoint. Detail lookups run concurrently; a failed
// lookup degrades that listing to its shallow market fields rather than
// failing the whole call.
func (s *MarketService) EnrichedMarket(ctx context.Context, leagueID string) ([]player.MarketPlayer, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MarketService.EnrichedMarket")
	defer span.End()

	listings, err := s.Market(ctx, leagueID)
	if err != nil {
		return nil, err
	}
	if s.details == nil || len(listings) == 0 {
		return listings, nil
	}

	workers := pool.New().WithMaxGoroutines(s.enrichWorkers)
	for i := range listings {
		i := i
		workers.Go(func() {
			playerID := listings[i].ID
			detail, detailErr := s.details.PlayerDetail(ctx, leagueID, playerID)
			if detailErr != nil {
				s.logger.WarnContext(ctx, "player detail lookup failed, keeping shallow listing",
					"league_id", leagueID, "player_id", playerID, "error", detailErr)
				return
			}
			listings[i].Player = parse.MergeDetail(listings[i].Player, detail)
		})
	}
	workers.Wait()

	return listings, nil
}

// ValueChange derives the market-value movement summary for one player.
func (s *MarketService) ValueChange(ctx context.Context, leagueID, playerID string) (valuation.MarketValueChange, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MarketService.ValueChange")
	defer span.End()

	leagueID = strings.TrimSpace(leagueID)
	playerID = strings.TrimSpace(playerID)
	if leagueID == "" {
		return valuation.MarketValueChange{}, fmt.Errorf("%w: league id is required", ErrInvalidInput)
	}
	if playerID == "" {
		return valuation.MarketValueChange{}, fmt.Errorf("%w: player id is required", ErrInvalidInput)
	}

	root, err := s.source.MarketValueHistory(ctx, leagueID, playerID)
	if err != nil {
		return valuation.MarketValueChange{}, fmt.Errorf("fetch market value history league=%s player=%s: %w", leagueID, playerID, err)
	}

	entries := parse.MarketValueHistory(root)
	return valuation.ComputeChange(entries, valuation.Today(s.now())), nil
}
