// Package yahoo implements the league provider against the Yahoo Fantasy
// Sports API. Requests are paced with a client-side limiter because Yahoo
// throttles per-hour and answers bursts with 999 status pages.
package yahoo

import (
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"yahoo-fantasy-assistant/internal/domain"
	"yahoo-fantasy-assistant/internal/providers"
)

// Config controls how the yahoo client reaches the upstream API.
type Config struct {
	BaseURL           string
	AccessToken       string
	LeagueKey         string
	HTTPClient        *http.Client
	RequestsPerMinute int
}

// Client fetches league data from Yahoo and maps it to domain models.
type Client struct {
	baseURL     string
	accessToken string
	leagueKey   string
	httpClient  httpDoer
	limiter     *rate.Limiter
}

// NewClient constructs a yahoo client with the provided configuration.
func NewClient(cfg Config) *Client {
	return &Client{
		baseURL:     normalizeBaseURL(cfg.BaseURL),
		accessToken: cfg.AccessToken,
		leagueKey:   cfg.LeagueKey,
		httpClient:  resolveHTTPClient(cfg.HTTPClient),
		limiter:     resolveLimiter(cfg.RequestsPerMinute),
	}
}

// FetchTeams lists every team in the configured league.
func (c *Client) FetchTeams(ctx context.Context) ([]domain.Team, error) {
	content, err := c.get(ctx, fmt.Sprintf("/league/%s/teams", c.leagueKey))
	if err != nil {
		return nil, err
	}
	if content.League == nil {
		return []domain.Team{}, nil
	}

	teams := make([]domain.Team, 0, len(content.League.Teams))
	for _, team := range content.League.Teams {
		teams = append(teams, mapTeam(team))
	}
	return teams, nil
}

// FetchRoster retrieves the current roster for a team.
func (c *Client) FetchRoster(ctx context.Context, teamKey string) ([]domain.Player, error) {
	content, err := c.get(ctx, fmt.Sprintf("/team/%s/roster/players", teamKey))
	if err != nil {
		return nil, err
	}
	if content.Team == nil {
		return []domain.Player{}, nil
	}

	roster := make([]domain.Player, 0, len(content.Team.Roster.Players))
	for _, player := range content.Team.Roster.Players {
		roster = append(roster, mapPlayer(player))
	}
	return roster, nil
}

// FetchSeasonStats retrieves season stat lines for the given players,
// batched to Yahoo's per-request key limit.
func (c *Client) FetchSeasonStats(ctx context.Context, playerIDs []int, season string) (map[int]domain.StatLine, error) {
	statsByID := make(map[int]domain.StatLine, len(playerIDs))
	code := gameCode(c.leagueKey)

	for start := 0; start < len(playerIDs); start += maxKeysPerRequest {
		end := start + maxKeysPerRequest
		if end > len(playerIDs) {
			end = len(playerIDs)
		}

		keys := make([]string, 0, end-start)
		for _, id := range playerIDs[start:end] {
			keys = append(keys, fmt.Sprintf("%s.p.%d", code, id))
		}

		path := fmt.Sprintf("/league/%s/players;player_keys=%s/stats;type=%s",
			c.leagueKey, strings.Join(keys, ","), statType(season))
		content, err := c.get(ctx, path)
		if err != nil {
			return nil, err
		}
		if content.League == nil {
			continue
		}
		for _, player := range content.League.Players {
			statsByID[player.PlayerID] = mapStatLine(player.PlayerStats.Stats)
		}
	}
	return statsByID, nil
}

// FetchFreeAgents lists available players for a position, ordered by
// Yahoo's overall rank.
func (c *Client) FetchFreeAgents(ctx context.Context, position string) ([]domain.FreeAgent, error) {
	path := fmt.Sprintf("/league/%s/players;status=FA;position=%s;sort=OR;count=%d/percent_owned",
		c.leagueKey, position, freeAgentCount)
	content, err := c.get(ctx, path)
	if err != nil {
		return nil, err
	}
	if content.League == nil {
		return []domain.FreeAgent{}, nil
	}

	agents := make([]domain.FreeAgent, 0, len(content.League.Players))
	for _, player := range content.League.Players {
		agents = append(agents, mapFreeAgent(player))
	}
	return agents, nil
}

func (c *Client) get(ctx context.Context, path string) (*fantasyContent, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, err
	}
	if c.accessToken != "" {
		req.Header.Set("Authorization", "Bearer "+c.accessToken)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("yahoo: %w: %v", providers.ErrUnavailable, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusOK:
	case resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode == 999:
		// Yahoo's throttle page answers with the non-standard 999 code.
		return nil, &providers.RateLimitError{
			Provider:   providerName,
			StatusCode: resp.StatusCode,
			RetryAfter: parseRetryAfter(resp.Header.Get("Retry-After")),
			Message:    "yahoo rate limited",
		}
	case resp.StatusCode >= http.StatusInternalServerError:
		return nil, fmt.Errorf("yahoo: upstream status %d: %w", resp.StatusCode, providers.ErrUnavailable)
	default:
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("yahoo: unexpected status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var content fantasyContent
	if err := xml.NewDecoder(resp.Body).Decode(&content); err != nil {
		return nil, fmt.Errorf("yahoo: decode response: %w", err)
	}
	return &content, nil
}

func statType(season string) string {
	if season == "" || season == "season" {
		return "season"
	}
	return season
}

func parseRetryAfter(raw string) time.Duration {
	if raw == "" {
		return 0
	}
	seconds, err := strconv.Atoi(raw)
	if err != nil || seconds <= 0 {
		return 0
	}
	return time.Duration(seconds) * time.Second
}
