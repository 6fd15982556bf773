package nbastats

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"

	"yahoo-fantasy-assistant/internal/providers"
)

type stubDoer struct {
	responses []*http.Response
	urls      []string
	calls     int
	err       error
}

func (s *stubDoer) Do(req *http.Request) (*http.Response, error) {
	s.calls++
	s.urls = append(s.urls, req.URL.String())
	if s.err != nil {
		return nil, s.err
	}
	if len(s.responses) == 0 {
		return jsonResponse(http.StatusOK, `{"resultSets":[]}`), nil
	}
	resp := s.responses[0]
	s.responses = s.responses[1:]
	return resp, nil
}

func jsonResponse(status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Header:     http.Header{},
		Body:       io.NopCloser(strings.NewReader(body)),
	}
}

func newTestClient(doer *stubDoer) *Client {
	client := NewClient(Config{BaseURL: "https://example.test/stats"})
	client.httpClient = doer
	return client
}

const indexJSON = `{
  "resource": "commonallplayers",
  "resultSets": [{
    "name": "CommonAllPlayers",
    "headers": ["PERSON_ID", "DISPLAY_FIRST_LAST", "ROSTERSTATUS"],
    "rowSet": [
      [201939, "Stephen Curry", 1],
      [1630224, "Jalen Green", 1],
      [1641711, "Jalen Greenway", 0],
      [0, "Broken Row", 1]
    ]
  }]
}`

func TestSearchPlayersMatchesLoosely(t *testing.T) {
	doer := &stubDoer{responses: []*http.Response{jsonResponse(http.StatusOK, indexJSON)}}
	client := newTestClient(doer)

	matches, err := client.SearchPlayers(context.Background(), "Jalen Green")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(matches) != 2 {
		t.Fatalf("expected both Jalen Greens, got %+v", matches)
	}
	for _, m := range matches {
		if m.ID == 0 {
			t.Fatalf("rows without ids must be dropped: %+v", matches)
		}
	}
}

func TestSearchPlayersFetchesIndexOnce(t *testing.T) {
	doer := &stubDoer{responses: []*http.Response{jsonResponse(http.StatusOK, indexJSON)}}
	client := newTestClient(doer)

	if _, err := client.SearchPlayers(context.Background(), "Stephen Curry"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := client.SearchPlayers(context.Background(), "Jalen Green"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if doer.calls != 1 {
		t.Fatalf("expected one index fetch, got %d", doer.calls)
	}
}

const gameLogJSON = `{
  "resource": "playergamelog",
  "resultSets": [{
    "name": "PlayerGameLog",
    "headers": ["SEASON_ID", "PLAYER_ID", "GAME_DATE", "MIN"],
    "rowSet": [
      ["22024", 201939, "APR 13, 2025", "32:41"],
      ["22024", 201939, "APR 11, 2025", 28]
    ]
  }]
}`

func TestFetchGameLogMapsRows(t *testing.T) {
	doer := &stubDoer{responses: []*http.Response{jsonResponse(http.StatusOK, gameLogJSON)}}
	client := newTestClient(doer)

	entries, err := client.FetchGameLog(context.Background(), 201939, "2024-25")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected two entries, got %d", len(entries))
	}
	if entries[0].Date != "APR 13, 2025" || entries[0].Minutes != "32:41" {
		t.Fatalf("unexpected first entry: %+v", entries[0])
	}
	if entries[1].Minutes != "28" {
		t.Fatalf("numeric minutes must render as a plain number, got %q", entries[1].Minutes)
	}

	url := doer.urls[0]
	if !strings.Contains(url, "PlayerID=201939") || !strings.Contains(url, "Season=2024-25") {
		t.Fatalf("unexpected url: %s", url)
	}
}

func TestRateLimitSurfacesTypedError(t *testing.T) {
	doer := &stubDoer{responses: []*http.Response{jsonResponse(http.StatusTooManyRequests, "")}}
	client := newTestClient(doer)

	_, err := client.FetchGameLog(context.Background(), 201939, "2024-25")
	if _, ok := providers.AsRateLimitError(err); !ok {
		t.Fatalf("expected RateLimitError, got %v", err)
	}
}

func TestServerErrorsMarkUnavailable(t *testing.T) {
	doer := &stubDoer{responses: []*http.Response{jsonResponse(http.StatusServiceUnavailable, "")}}
	client := newTestClient(doer)

	if _, err := client.FetchGameLog(context.Background(), 201939, "2024-25"); !errors.Is(err, providers.ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable, got %v", err)
	}
}
