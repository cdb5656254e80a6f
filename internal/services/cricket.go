package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/vibetechlabs-developer/News-Portal-1/internal/config"
	"github.com/vibetechlabs-developer/News-Portal-1/pkg/logger"
)

var (
	// ErrCricketDisabled means the provider is not configured; handlers
	// answer 503.
	ErrCricketDisabled = errors.New("cricket api not configured")
	// ErrCricketUpstream means the provider failed; handlers answer 502.
	ErrCricketUpstream = errors.New("cricket api upstream failure")
)

// Cricket proxies live-score requests to a RapidAPI cricket provider so
// the frontend never sees the API key. Responses pass through untouched.
type Cricket struct {
	Cfg    *config.Config
	Client *http.Client
}

func NewCricket(cfg *config.Config) *Cricket {
	return &Cricket{
		Cfg:    cfg,
		Client: &http.Client{Timeout: 10 * time.Second},
	}
}

func (c *Cricket) enabled() bool {
	return c.Cfg.CricketAPIEnabled && c.Cfg.CricketAPIKey != "" && c.Cfg.CricketAPIBaseURL != ""
}

// LiveScores fetches the current live scores feed.
func (c *Cricket) LiveScores(ctx context.Context) (json.RawMessage, error) {
	return c.fetch(ctx, c.Cfg.CricketAPIBaseURL)
}

// Matches fetches the upcoming/recent matches feed.
func (c *Cricket) Matches(ctx context.Context) (json.RawMessage, error) {
	url := c.Cfg.CricketMatchesAPIURL
	if url == "" {
		url = c.Cfg.CricketAPIBaseURL
	}
	return c.fetch(ctx, url)
}

func (c *Cricket) fetch(ctx context.Context, url string) (json.RawMessage, error) {
	if !c.enabled() {
		return nil, ErrCricketDisabled
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, ErrCricketUpstream
	}
	req.Header.Set("X-RapidAPI-Key", c.Cfg.CricketAPIKey)
	req.Header.Set("X-RapidAPI-Host", c.Cfg.CricketAPIHost)

	resp, err := c.Client.Do(req)
	if err != nil {
		logger.Error().Err(err).Str("url", url).Msg("Cricket API request failed")
		return nil, ErrCricketUpstream
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		logger.Warn().Int("status", resp.StatusCode).Str("url", url).Msg("Cricket API returned non-200")
		return nil, fmt.Errorf("%w: status %d", ErrCricketUpstream, resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 4<<20))
	if err != nil {
		return nil, ErrCricketUpstream
	}
	if !json.Valid(body) {
		return nil, ErrCricketUpstream
	}
	return json.RawMessage(body), nil
}
