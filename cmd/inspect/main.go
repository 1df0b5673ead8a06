// Command inspect parses a provider response and prints the normalized
// entities. The response comes from a saved dump file, or live from the
// API when -file is omitted and an API token is configured. It exists for
// poking at new payload shapes.
//
//	inspect -file dump.json -kind market
//	API_TOKEN=... inspect -kind market -league 12345
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/bytedance/sonic"

	"github.com/kickmate/manager-api/external/managerapi"
	"github.com/kickmate/manager-api/internal/config"
	"github.com/kickmate/manager-api/internal/parse"
	"github.com/kickmate/manager-api/internal/platform/logging"
	"github.com/kickmate/manager-api/internal/platform/resilience"
	"github.com/kickmate/manager-api/internal/record"
	"github.com/kickmate/manager-api/internal/usecase"
)

func main() {
	var (
		file     = flag.String("file", "", "path to a saved provider JSON response; omit to fetch live")
		kind     = flag.String("kind", "leagues", "payload kind: leagues|ranking|market|history|matches|players|profile")
		leagueID = flag.String("league", "", "league id, required for live fetches other than leagues")
		playerID = flag.String("player", "", "player id, for live history/matches fetches")
		teamID   = flag.String("team", "", "team id, for live profile fetches and schedule merge")
		matchday = flag.Int("matchday", 0, "ranking only: matchday the response was requested for, 0 for season totals")
		enrich   = flag.Bool("enrich", false, "market only: enrich listings from the player detail endpoint (live)")
	)
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "load config:", err)
		os.Exit(1)
	}

	logger := logging.NewJSON(cfg.LogLevel)
	defer func() { _ = logger.Sync() }()
	logging.SetDefault(logger)

	var out any
	if *file != "" {
		out, err = inspectFile(*file, *kind, *matchday)
	} else {
		out, err = inspectLive(cfg, logger, *kind, *leagueID, *playerID, *teamID, *matchday, *enrich)
	}
	if err != nil {
		logger.Error("inspect failed", "kind", *kind, "error", err)
		os.Exit(1)
	}

	encoded, err := sonic.MarshalIndent(out, "", "  ")
	if err != nil {
		logger.Error("encode result", "error", err)
		os.Exit(1)
	}

	logger.Info("parsed response", "kind", *kind, "source", sourceName(*file))
	fmt.Println(string(encoded))
}

func inspectFile(path, kind string, matchday int) (any, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read dump: %w", err)
	}
	root, err := record.Decode(raw)
	if err != nil {
		return nil, fmt.Errorf("decode dump: %w", err)
	}

	switch kind {
	case "leagues":
		return parse.Leagues(root), nil
	case "ranking":
		return parse.Ranking(root, matchday > 0), nil
	case "market":
		return parse.Market(root), nil
	case "history":
		return parse.MarketValueHistory(root), nil
	case "matches":
		return parse.MatchPerformances(root), nil
	case "players":
		return parse.Players(root), nil
	case "profile":
		return parse.TeamProfile(root), nil
	default:
		return nil, fmt.Errorf("unknown kind %q", kind)
	}
}

// inspectLive routes through the same services a caller would use, so the
// configured cache TTLs and worker bounds apply here too.
func inspectLive(cfg config.Config, logger *logging.Logger, kind, leagueID, playerID, teamID string, matchday int, enrich bool) (any, error) {
	if cfg.APIToken == "" {
		return nil, fmt.Errorf("live fetch needs API_TOKEN (or pass -file)")
	}

	client := managerapi.NewClient(managerapi.ClientConfig{
		BaseURL:    cfg.APIBaseURL,
		Token:      cfg.APIToken,
		Timeout:    cfg.APITimeout,
		MaxRetries: cfg.APIMaxRetries,
		Logger:     logger,
		CircuitBreaker: resilience.CircuitBreakerConfig{
			Enabled:          cfg.APICircuitEnabled,
			FailureThreshold: cfg.APICircuitFailureCount,
			OpenTimeout:      cfg.APICircuitOpenTimeout,
			HalfOpenMaxReq:   cfg.APICircuitHalfOpenMaxReq,
		},
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*cfg.APITimeout+10*time.Second)
	defer cancel()

	switch kind {
	case "leagues":
		return usecase.NewLeagueService(client, logger).ListLeagues(ctx)
	case "ranking":
		if leagueID == "" {
			return nil, fmt.Errorf("-league is required for a live ranking fetch")
		}
		return usecase.NewLeagueService(client, logger).Ranking(ctx, leagueID, matchday)
	case "market":
		if leagueID == "" {
			return nil, fmt.Errorf("-league is required for a live market fetch")
		}
		svc := usecase.NewMarketService(client, client, logger, usecase.WithEnrichWorkers(cfg.EnrichWorkers))
		if enrich {
			return svc.EnrichedMarket(ctx, leagueID)
		}
		return svc.Market(ctx, leagueID)
	case "history":
		if leagueID == "" || playerID == "" {
			return nil, fmt.Errorf("-league and -player are required for a live history fetch")
		}
		root, err := client.MarketValueHistory(ctx, leagueID, playerID)
		if err != nil {
			return nil, err
		}
		return parse.MarketValueHistory(root), nil
	case "matches":
		if leagueID == "" || playerID == "" {
			return nil, fmt.Errorf("-league and -player are required for a live matches fetch")
		}
		svc := usecase.NewPlayerService(client, logger,
			usecase.WithProfileTTL(cfg.TeamProfileCacheTTL),
			usecase.WithPerformanceTTL(cfg.PerformanceCacheTTL),
			usecase.WithPrewarmWorkers(cfg.PrewarmWorkers))
		return svc.SeasonPerformance(ctx, usecase.PerformanceQuery{
			LeagueID: leagueID,
			PlayerID: playerID,
			TeamID:   teamID,
		})
	case "profile":
		if leagueID == "" || teamID == "" {
			return nil, fmt.Errorf("-league and -team are required for a live profile fetch")
		}
		svc := usecase.NewPlayerService(client, logger,
			usecase.WithProfileTTL(cfg.TeamProfileCacheTTL),
			usecase.WithPerformanceTTL(cfg.PerformanceCacheTTL),
			usecase.WithPrewarmWorkers(cfg.PrewarmWorkers))
		return svc.TeamProfile(ctx, leagueID, teamID)
	default:
		return nil, fmt.Errorf("kind %q has no live endpoint", kind)
	}
}

func sourceName(file string) string {
	if file != "" {
		return file
	}
	return "live"
}
