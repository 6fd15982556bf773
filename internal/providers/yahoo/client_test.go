package yahoo

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"
	"time"

	"yahoo-fantasy-assistant/internal/providers"
)

type stubDoer struct {
	responses []*http.Response
	urls      []string
	err       error
}

func (s *stubDoer) Do(req *http.Request) (*http.Response, error) {
	s.urls = append(s.urls, req.URL.String())
	if s.err != nil {
		return nil, s.err
	}
	if len(s.responses) == 0 {
		return xmlResponse(http.StatusOK, "<fantasy_content/>"), nil
	}
	resp := s.responses[0]
	s.responses = s.responses[1:]
	return resp, nil
}

func xmlResponse(status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Header:     http.Header{},
		Body:       io.NopCloser(strings.NewReader(body)),
	}
}

func newTestClient(doer *stubDoer) *Client {
	client := NewClient(Config{
		BaseURL:           "https://example.test/fantasy/v2",
		AccessToken:       "token",
		LeagueKey:         "418.l.12345",
		RequestsPerMinute: 100000,
	})
	client.httpClient = doer
	return client
}

const rosterXML = `<?xml version="1.0"?>
<fantasy_content xmlns="http://fantasysports.yahooapis.com/fantasy/v2/base.rng">
  <team>
    <team_key>418.l.12345.t.1</team_key>
    <name>Alpha</name>
    <roster>
      <players>
        <player>
          <player_key>418.p.5583</player_key>
          <player_id>5583</player_id>
          <name><full>Stephen Curry</full></name>
          <status>DTD</status>
          <eligible_positions>
            <position>PG</position>
            <position>SG</position>
          </eligible_positions>
        </player>
      </players>
    </roster>
  </team>
</fantasy_content>`

func TestFetchRosterMapsPlayers(t *testing.T) {
	doer := &stubDoer{responses: []*http.Response{xmlResponse(http.StatusOK, rosterXML)}}
	client := newTestClient(doer)

	roster, err := client.FetchRoster(context.Background(), "418.l.12345.t.1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(roster) != 1 {
		t.Fatalf("expected one player, got %d", len(roster))
	}

	player := roster[0]
	if player.PlayerID != 5583 || player.Name != "Stephen Curry" {
		t.Fatalf("unexpected player: %+v", player)
	}
	if player.Status != "DTD" {
		t.Fatalf("expected DTD status, got %q", player.Status)
	}
	if len(player.EligiblePositions) != 2 || player.EligiblePositions[0] != "PG" {
		t.Fatalf("unexpected positions: %v", player.EligiblePositions)
	}

	if !strings.Contains(doer.urls[0], "/team/418.l.12345.t.1/roster/players") {
		t.Fatalf("unexpected url: %s", doer.urls[0])
	}
}

const statsXML = `<?xml version="1.0"?>
<fantasy_content>
  <league>
    <league_key>418.l.12345</league_key>
    <players>
      <player>
        <player_id>5583</player_id>
        <name><full>Stephen Curry</full></name>
        <player_stats>
          <stats>
            <stat><stat_id>5</stat_id><value>.453</value></stat>
            <stat><stat_id>12</stat_id><value>26.4</value></stat>
            <stat><stat_id>19</stat_id><value>3.1</value></stat>
            <stat><stat_id>9999</stat_id><value>7</value></stat>
          </stats>
        </player_stats>
      </player>
    </players>
  </league>
</fantasy_content>`

func TestFetchSeasonStatsMapsCategories(t *testing.T) {
	doer := &stubDoer{responses: []*http.Response{xmlResponse(http.StatusOK, statsXML)}}
	client := newTestClient(doer)

	statsByID, err := client.FetchSeasonStats(context.Background(), []int{5583}, "season")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	line, ok := statsByID[5583]
	if !ok {
		t.Fatalf("expected stats for 5583, got %v", statsByID)
	}
	if line.FGPct != 0.453 || line.Points != 26.4 || line.Turnovers != 3.1 {
		t.Fatalf("unexpected line: %+v", line)
	}

	if !strings.Contains(doer.urls[0], "player_keys=418.p.5583") {
		t.Fatalf("expected player key in url, got %s", doer.urls[0])
	}
}

func TestFetchSeasonStatsBatchesRequests(t *testing.T) {
	doer := &stubDoer{}
	client := newTestClient(doer)

	ids := make([]int, 0, maxKeysPerRequest+1)
	for i := 1; i <= maxKeysPerRequest+1; i++ {
		ids = append(ids, i)
	}

	if _, err := client.FetchSeasonStats(context.Background(), ids, "season"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(doer.urls) != 2 {
		t.Fatalf("expected two batched requests, got %d", len(doer.urls))
	}
}

const freeAgentsXML = `<?xml version="1.0"?>
<fantasy_content>
  <league>
    <players>
      <player>
        <player_id>6702</player_id>
        <name><full>GG Jackson</full></name>
        <eligible_positions><position>SF</position></eligible_positions>
        <percent_owned><value>44</value></percent_owned>
      </player>
    </players>
  </league>
</fantasy_content>`

func TestFetchFreeAgentsMapsOwnership(t *testing.T) {
	doer := &stubDoer{responses: []*http.Response{xmlResponse(http.StatusOK, freeAgentsXML)}}
	client := newTestClient(doer)

	agents, err := client.FetchFreeAgents(context.Background(), "SF")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(agents) != 1 || agents[0].PercentOwned != 44 {
		t.Fatalf("unexpected agents: %+v", agents)
	}
	if !strings.Contains(doer.urls[0], "status=FA") || !strings.Contains(doer.urls[0], "position=SF") {
		t.Fatalf("unexpected url: %s", doer.urls[0])
	}
}

func TestRateLimitSurfacesTypedError(t *testing.T) {
	resp := xmlResponse(http.StatusTooManyRequests, "")
	resp.Header.Set("Retry-After", "30")
	doer := &stubDoer{responses: []*http.Response{resp}}
	client := newTestClient(doer)

	_, err := client.FetchTeams(context.Background())
	rlErr, ok := providers.AsRateLimitError(err)
	if !ok {
		t.Fatalf("expected RateLimitError, got %v", err)
	}
	if rlErr.RetryAfter != 30*time.Second {
		t.Fatalf("expected 30s retry-after, got %v", rlErr.RetryAfter)
	}
}

func TestServerErrorsMarkUnavailable(t *testing.T) {
	doer := &stubDoer{responses: []*http.Response{xmlResponse(http.StatusBadGateway, "")}}
	client := newTestClient(doer)

	if _, err := client.FetchTeams(context.Background()); !errors.Is(err, providers.ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable, got %v", err)
	}
}

func TestTransportErrorsMarkUnavailable(t *testing.T) {
	doer := &stubDoer{err: errors.New("connection refused")}
	client := newTestClient(doer)

	if _, err := client.FetchTeams(context.Background()); !errors.Is(err, providers.ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable, got %v", err)
	}
}
