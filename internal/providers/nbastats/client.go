// Package nbastats implements the stats provider against the public
// stats.nba.com endpoints. The API is positional: every response is a list
// of result sets with headers and untyped rows.
package nbastats

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"

	"yahoo-fantasy-assistant/internal/gamelog"
	"yahoo-fantasy-assistant/internal/names"
	"yahoo-fantasy-assistant/internal/providers"
)

// Config controls how the nbastats client reaches the upstream API.
type Config struct {
	BaseURL    string
	Season     string
	HTTPClient *http.Client
}

// Client fetches player identities and game logs from stats.nba.com.
type Client struct {
	baseURL    string
	season     string
	httpClient httpDoer

	mu    sync.Mutex
	index []providers.Identity
}

// NewClient constructs an nbastats client with the provided configuration.
func NewClient(cfg Config) *Client {
	season := cfg.Season
	if season == "" {
		season = defaultSeason
	}
	return &Client{
		baseURL:    normalizeBaseURL(cfg.BaseURL),
		season:     season,
		httpClient: resolveHTTPClient(cfg.HTTPClient),
	}
}

// SearchPlayers returns player-index entries whose name matches the query
// loosely. The full index is fetched once and reused for the process
// lifetime.
func (c *Client) SearchPlayers(ctx context.Context, fullName string) ([]providers.Identity, error) {
	index, err := c.playerIndex(ctx)
	if err != nil {
		return nil, err
	}

	query := names.Normalize(fullName)
	if query == "" {
		return nil, nil
	}

	var matches []providers.Identity
	for _, identity := range index {
		candidate := names.Normalize(identity.FullName)
		if strings.Contains(candidate, query) || strings.Contains(query, candidate) {
			matches = append(matches, identity)
		}
	}
	return matches, nil
}

// FetchGameLog retrieves one player's regular-season game history.
func (c *Client) FetchGameLog(ctx context.Context, playerID int, season string) ([]gamelog.RawEntry, error) {
	params := url.Values{}
	params.Set("PlayerID", strconv.Itoa(playerID))
	params.Set("Season", season)
	params.Set("SeasonType", seasonTypeRegular)

	payload, err := c.get(ctx, endpointGameLog, params)
	if err != nil {
		return nil, err
	}
	return mapGameLog(payload.firstSet()), nil
}

func (c *Client) playerIndex(ctx context.Context) ([]providers.Identity, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.index != nil {
		return c.index, nil
	}

	params := url.Values{}
	params.Set("LeagueID", "00")
	params.Set("Season", c.season)
	params.Set("IsOnlyCurrentSeason", "0")

	payload, err := c.get(ctx, endpointPlayerIndex, params)
	if err != nil {
		return nil, err
	}
	c.index = mapIdentities(payload.firstSet())
	return c.index, nil
}

func (c *Client) get(ctx context.Context, endpoint string, params url.Values) (*statsResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+endpoint, nil)
	if err != nil {
		return nil, err
	}
	req.URL.RawQuery = params.Encode()
	setStatsHeaders(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("nbastats: %w: %v", providers.ErrUnavailable, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusOK:
	case resp.StatusCode == http.StatusTooManyRequests:
		return nil, &providers.RateLimitError{
			Provider:   providerName,
			StatusCode: resp.StatusCode,
			Message:    "stats.nba.com rate limited",
		}
	case resp.StatusCode >= http.StatusInternalServerError:
		return nil, fmt.Errorf("nbastats: upstream status %d: %w", resp.StatusCode, providers.ErrUnavailable)
	default:
		return nil, fmt.Errorf("nbastats: unexpected status %d", resp.StatusCode)
	}

	var payload statsResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("nbastats: decode response: %w", err)
	}
	return &payload, nil
}
