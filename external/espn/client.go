package espn

import (
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"github.com/mrftt12/Pickem/internal/domain/matchup"
	"github.com/mrftt12/Pickem/internal/platform/logging"
	"github.com/mrftt12/Pickem/internal/platform/resilience"
	"github.com/mrftt12/Pickem/internal/usecase"
)

const (
	defaultBaseURL = "https://site.api.espn.com/apis/site/v2/sports/football/nfl"
	// ESPN season type 2 is the regular season; 1 is preseason, 3 playoffs.
	regularSeasonType = "2"
)

var errESPNTransient = crerr.New("espn transient failure")

type ClientConfig struct {
	HTTPClient     *http.Client
	BaseURL        string
	Timeout        time.Duration
	MaxRetries     int
	Logger         *logging.Logger
	CircuitBreaker resilience.CircuitBreakerConfig
}

// Client reads the public ESPN scoreboard feed. The feed is unauthenticated
// and rate-limited, so requests go through a circuit breaker and are
// deduplicated per scoreboard URL.
type Client struct {
	httpClient     *http.Client
	baseURL        string
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
		httpClient.Timeout = 15 * time.Second
	}

	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	breakerCfg := resilience.NormalizeCircuitBreakerConfig(cfg.CircuitBreaker)

	maxRetries := cfg.MaxRetries
	if maxRetries < 0 {
		maxRetries = 0
	}

	return &Client{
		httpClient:     httpClient,
		baseURL:        baseURL,
		maxRetries:     maxRetries,
		logger:         logger,
		breaker:        resilience.NewCircuitBreaker(breakerCfg.FailureThreshold, breakerCfg.OpenTimeout, breakerCfg.HalfOpenMaxReq),
		circuitEnabled: breakerCfg.Enabled,
	}
}

// FetchWeekScores pulls the scoreboard for one regular-season week. Events
// without a parsable score pair are dropped rather than reported as zero.
func (c *Client) FetchWeekScores(ctx context.Context, seasonYear, weekNumber int) ([]usecase.ProviderGameScore, error) {
	if seasonYear < 1970 {
		return nil, fmt.Errorf("season year %d is out of range", seasonYear)
	}
	if weekNumber <= 0 {
		return nil, fmt.Errorf("week number must be greater than zero")
	}

	query := map[string]string{
		"dates":      strconv.Itoa(seasonYear),
		"seasontype": regularSeasonType,
		"week":       strconv.Itoa(weekNumber),
	}

	var scoreboard scoreboardEnvelope
	if err := c.doJSON(ctx, "/scoreboard", query, &scoreboard); err != nil {
		return nil, fmt.Errorf("fetch scoreboard year=%d week=%d: %w", seasonYear, weekNumber, err)
	}

	scores := make([]usecase.ProviderGameScore, 0, len(scoreboard.Events))
	for _, event := range scoreboard.Events {
		score, ok := mapEventToScore(event)
		if !ok {
			c.logger.WarnContext(ctx, "skip scoreboard event without score pair", "event_id", event.ID)
			continue
		}
		scores = append(scores, score)
	}

	return scores, nil
}

func (c *Client) doJSON(ctx context.Context, path string, query map[string]string, target any) error {
	if c.circuitEnabled {
		if err := c.breaker.Allow(); err != nil {
			c.logger.WarnContext(ctx, "espn circuit breaker rejected request", "state", c.breaker.State())
			return fmt.Errorf("%w: score provider is temporarily unavailable", usecase.ErrDependencyUnavailable)
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

	out, err, _ := c.flight.Do(fullURL, func() (any, error) {
		raw, reqErr := c.executeRequest(ctx, fullURL)
		if c.circuitEnabled {
			if reqErr != nil && isESPNCircuitFailure(reqErr) {
				c.breaker.RecordFailure()
			} else {
				c.breaker.RecordSuccess()
			}
		}
		return raw, reqErr
	})
	if err != nil {
		return err
	}

	raw, ok := out.([]byte)
	if !ok {
		return fmt.Errorf("unexpected response payload type %T", out)
	}

	if err := sonic.Unmarshal(raw, target); err != nil {
		return fmt.Errorf("decode scoreboard payload: %w", err)
	}

	return nil
}

func (c *Client) executeRequest(ctx context.Context, fullURL string) ([]byte, error) {
	var lastErr error
	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
		if err != nil {
			return nil, fmt.Errorf("build request: %w", err)
		}
		req.Header.Set("accept", "application/json")

		resp, err := c.httpClient.Do(req)
		if err != nil {
			lastErr = fmt.Errorf("%w: send request: %v", errESPNTransient, err)
		} else {
			raw, readErr := io.ReadAll(io.LimitReader(resp.Body, 6<<20))
			_ = resp.Body.Close()
			if readErr != nil {
				lastErr = fmt.Errorf("%w: read response body: %v", errESPNTransient, readErr)
			} else if resp.StatusCode >= 200 && resp.StatusCode < 300 {
				return raw, nil
			} else if isRetryableStatus(resp.StatusCode) {
				lastErr = fmt.Errorf("%w: provider status=%d body=%s", errESPNTransient, resp.StatusCode, abbreviateBody(raw))
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
	c.logger.WarnContext(ctx, "espn request failed", "url", fullURL, "error", lastErr)
	return nil, lastErr
}

func mapEventToScore(event scoreboardEvent) (usecase.ProviderGameScore, bool) {
	eventID := strings.TrimSpace(event.ID)
	if eventID == "" || len(event.Competitions) == 0 {
		return usecase.ProviderGameScore{}, false
	}

	var homeScore, awayScore *int
	for _, competitor := range event.Competitions[0].Competitors {
		parsed, err := strconv.Atoi(strings.TrimSpace(competitor.Score))
		if err != nil || parsed < 0 {
			continue
		}
		value := parsed
		switch strings.ToLower(competitor.HomeAway) {
		case "home":
			homeScore = &value
		case "away":
			awayScore = &value
		}
	}
	if homeScore == nil || awayScore == nil {
		return usecase.ProviderGameScore{}, false
	}

	return usecase.ProviderGameScore{
		ExternalGameID: eventID,
		HomeScore:      *homeScore,
		AwayScore:      *awayScore,
		Status:         mapEventStatus(event.Status),
	}, true
}

func mapEventStatus(status eventStatus) string {
	if status.Type.Completed {
		return matchup.StatusFinal
	}
	switch strings.ToLower(strings.TrimSpace(status.Type.State)) {
	case "post":
		return matchup.StatusFinal
	case "in":
		return matchup.StatusLive
	default:
		return matchup.StatusScheduled
	}
}

func isESPNCircuitFailure(err error) bool {
	if err == nil {
		return false
	}
	return stderrors.Is(err, errESPNTransient)
}

func isRetryableStatus(code int) bool {
	return code == http.StatusTooManyRequests || code >= http.StatusInternalServerError
}

func abbreviateBody(body []byte) string {
	text := strings.TrimSpace(string(body))
	if len(text) <= 240 {
		return text
	}
	return text[:240] + "..."
}
