// Package managerapi is the HTTP client for the fantasy-manager provider
// API. It fetches raw responses and hands them to the parse layer as
// untyped records; the wire shapes vary too much between provider
// revisions to type them here.
package managerapi

import (
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"time"

	crerr "github.com/cockroachdb/errors"

	"github.com/kickmate/manager-api/internal/platform/logging"
	"github.com/kickmate/manager-api/internal/platform/resilience"
	"github.com/kickmate/manager-api/internal/record"
	"github.com/kickmate/manager-api/internal/usecase"
)

const (
	defaultBaseURL = "https://api.kickmate.de/v4"
	maxBodyBytes   = 6 << 20
)

var bearerTokenRegex = regexp.MustCompile(`(?i)bearer\s+[^\s"']+`)
var errProviderTransient = crerr.New("provider transient failure")

type ClientConfig struct {
	HTTPClient     *http.Client
	BaseURL        string
	Token          string
	Timeout        time.Duration
	MaxRetries     int
	Logger         *logging.Logger
	CircuitBreaker resilience.CircuitBreakerConfig
}

type Client struct {
	httpClient     *http.Client
	baseURL        string
	token          string
	maxRetries     int
	logger         *logging.Logger
	breaker        *resilience.CircuitBreaker
	circuitEnabled bool
	flight         resilience.SingleFlight
}

func NewClient(cfg ClientConfig) *Client {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}
	if httpClient.Timeout <= 0 {
		httpClient.Timeout = 20 * time.Second
	}

	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	breakerCfg := cfg.CircuitBreaker.Sanitized()

	maxRetries := cfg.MaxRetries
	if maxRetries < 0 {
		maxRetries = 0
	}

	return &Client{
		httpClient:     httpClient,
		baseURL:        baseURL,
		token:          strings.TrimSpace(cfg.Token),
		maxRetries:     maxRetries,
		logger:         logger,
		breaker:        resilience.NewCircuitBreaker(breakerCfg.FailureThreshold, breakerCfg.OpenTimeout, breakerCfg.HalfOpenMaxReq),
		circuitEnabled: breakerCfg.Enabled,
	}
}

func (c *Client) Leagues(ctx context.Context) (record.Record, error) {
	return c.get(ctx, "/leagues", nil)
}

func (c *Client) Ranking(ctx context.Context, leagueID string, matchday int) (record.Record, error) {
	query := map[string]string{}
	if matchday > 0 {
		query["dayNumber"] = strconv.Itoa(matchday)
	}
	return c.get(ctx, "/leagues/"+url.PathEscape(leagueID)+"/ranking", query)
}

func (c *Client) Market(ctx context.Context, leagueID string) (record.Record, error) {
	return c.get(ctx, "/leagues/"+url.PathEscape(leagueID)+"/market", nil)
}

func (c *Client) UserStats(ctx context.Context, leagueID string) (record.Record, error) {
	return c.get(ctx, "/leagues/"+url.PathEscape(leagueID)+"/me", nil)
}

func (c *Client) PlayerDetail(ctx context.Context, leagueID, playerID string) (record.Record, error) {
	return c.get(ctx, "/leagues/"+url.PathEscape(leagueID)+"/players/"+url.PathEscape(playerID), nil)
}

func (c *Client) MarketValueHistory(ctx context.Context, leagueID, playerID string) (record.Record, error) {
	return c.get(ctx, "/leagues/"+url.PathEscape(leagueID)+"/players/"+url.PathEscape(playerID)+"/marketvalue", nil)
}

func (c *Client) PlayerPerformance(ctx context.Context, leagueID, playerID string) (record.Record, error) {
	return c.get(ctx, "/leagues/"+url.PathEscape(leagueID)+"/players/"+url.PathEscape(playerID)+"/performance", nil)
}

func (c *Client) TeamProfile(ctx context.Context, leagueID, teamID string) (record.Record, error) {
	return c.get(ctx, "/leagues/"+url.PathEscape(leagueID)+"/teams/"+url.PathEscape(teamID)+"/teamprofile", nil)
}

func (c *Client) TeamSchedule(ctx context.Context, leagueID, teamID string) (record.Record, error) {
	return c.get(ctx, "/leagues/"+url.PathEscape(leagueID)+"/teams/"+url.PathEscape(teamID)+"/schedule", nil)
}

func (c *Client) get(ctx context.Context, path string, query map[string]string) (record.Record, error) {
	if c.circuitEnabled {
		if err := c.breaker.Allow(); err != nil {
			c.logger.WarnContext(ctx, "provider circuit breaker rejected request", "state", c.breaker.State())
			return nil, fmt.Errorf("%w: provider is temporarily unavailable", usecase.ErrDependencyUnavailable)
		}
	}

	values := url.Values{}
	for key, value := range query {
		values.Set(key, value)
	}

	fullURL := c.baseURL + path
	if encoded := values.Encode(); encoded != "" {
		fullURL += "?" + encoded
	}

	// Identical concurrent fetches collapse into one request.
	out, err, _ := c.flight.Do(fullURL, func() (any, error) {
		raw, reqErr := c.executeRequest(ctx, fullURL)
		if c.circuitEnabled {
			if reqErr != nil && isTransientFailure(reqErr) {
				c.breaker.RecordFailure()
			} else {
				c.breaker.RecordSuccess()
			}
		}
		return raw, reqErr
	})
	if err != nil {
		return nil, err
	}

	raw, ok := out.([]byte)
	if !ok {
		return nil, fmt.Errorf("unexpected response payload type %T", out)
	}

	rec, err := record.Decode(raw)
	if err != nil {
		return nil, fmt.Errorf("decode provider payload: %w", err)
	}
	return rec, nil
}

func (c *Client) executeRequest(ctx context.Context, fullURL string) ([]byte, error) {
	var lastErr error
	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
		if err != nil {
			return nil, fmt.Errorf("build request: %w", err)
		}
		req.Header.Set("accept", "application/json")
		if c.token != "" {
			req.Header.Set("Authorization", "Bearer "+c.token)
		}

		resp, err := c.httpClient.Do(req)
		if err != nil {
			lastErr = fmt.Errorf("%w: send request: %s", errProviderTransient, sanitizeSensitiveText(err.Error(), c.token))
		} else {
			raw, readErr := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
			_ = resp.Body.Close()
			if readErr != nil {
				lastErr = fmt.Errorf("%w: read response body: %v", errProviderTransient, readErr)
			} else if resp.StatusCode >= 200 && resp.StatusCode < 300 {
				return raw, nil
			} else if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
				return nil, fmt.Errorf("%w: provider status=%d", usecase.ErrUnauthorized, resp.StatusCode)
			} else if resp.StatusCode == http.StatusNotFound {
				return nil, fmt.Errorf("%w: provider status=%d", usecase.ErrNotFound, resp.StatusCode)
			} else if isRetryableStatus(resp.StatusCode) {
				lastErr = fmt.Errorf("%w: provider status=%d body=%s", errProviderTransient, resp.StatusCode, abbreviateBody(raw))
			} else {
				return nil, fmt.Errorf("provider status=%d body=%s", resp.StatusCode, abbreviateBody(raw))
			}
		}

		if attempt == c.maxRetries {
			break
		}
		backoff := time.Duration(attempt+1) * time.Second
		timer := time.NewTimer(backoff)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, ctx.Err()
		case <-timer.C:
		}
	}

	if lastErr == nil {
		lastErr = fmt.Errorf("provider request failed")
	}
	c.logger.WarnContext(ctx, "provider request failed", "url", fullURL, "error", lastErr)
	return nil, lastErr
}

func isTransientFailure(err error) bool {
	if err == nil {
		return false
	}
	return stderrors.Is(err, errProviderTransient)
}

func isRetryableStatus(code int) bool {
	return code == http.StatusTooManyRequests || code >= http.StatusInternalServerError
}

func sanitizeSensitiveText(value, token string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return value
	}
	if token != "" {
		value = strings.ReplaceAll(value, token, "REDACTED")
	}
	return bearerTokenRegex.ReplaceAllString(value, "Bearer REDACTED")
}

func abbreviateBody(body []byte) string {
	text := strings.TrimSpace(string(body))
	if len(text) <= 240 {
		return text
	}
	return text[:240] + "..."
}
