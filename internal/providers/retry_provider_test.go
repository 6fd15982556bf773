package providers

import (
	"context"
	"errors"
	"testing"
	"time"

	"yahoo-fantasy-assistant/internal/domain"
	"yahoo-fantasy-assistant/internal/gamelog"
	"yahoo-fantasy-assistant/internal/metrics"
)

type flakyLeague struct {
	failures int
	calls    int
}

func (f *flakyLeague) FetchTeams(ctx context.Context) ([]domain.Team, error) {
	f.calls++
	if f.calls <= f.failures {
		return nil, errors.New("transient")
	}
	return []domain.Team{{TeamKey: "t.1"}}, nil
}

func (f *flakyLeague) FetchRoster(ctx context.Context, teamKey string) ([]domain.Player, error) {
	return nil, errors.New("always down")
}

func (f *flakyLeague) FetchSeasonStats(ctx context.Context, playerIDs []int, season string) (map[int]domain.StatLine, error) {
	return map[int]domain.StatLine{}, nil
}

func (f *flakyLeague) FetchFreeAgents(ctx context.Context, position string) ([]domain.FreeAgent, error) {
	return nil, &RateLimitError{Provider: "test", StatusCode: 429, RetryAfter: time.Second}
}

func TestRetryingLeagueRecoversFromTransientFailure(t *testing.T) {
	inner := &flakyLeague{failures: 2}
	recorder := metrics.NewRecorder()
	wrapped := NewRetryingLeagueProvider(inner, "test", nil, recorder, 3, time.Millisecond)

	teams, err := wrapped.FetchTeams(context.Background())
	if err != nil {
		t.Fatalf("expected recovery, got %v", err)
	}
	if len(teams) != 1 {
		t.Fatalf("unexpected teams: %+v", teams)
	}
	if got := recorder.ProviderCalls("test"); got != 3 {
		t.Fatalf("expected 3 recorded attempts, got %d", got)
	}
	if got := recorder.ProviderErrors("test"); got != 2 {
		t.Fatalf("expected 2 recorded errors, got %d", got)
	}
}

func TestRetryingLeagueGivesUpAfterMaxAttempts(t *testing.T) {
	inner := &flakyLeague{}
	wrapped := NewRetryingLeagueProvider(inner, "test", nil, metrics.NewRecorder(), 2, time.Millisecond)

	if _, err := wrapped.FetchRoster(context.Background(), "t.1"); err == nil {
		t.Fatalf("expected persistent failure to surface")
	}
}

func TestRetryingLeagueRecordsRateLimits(t *testing.T) {
	inner := &flakyLeague{}
	recorder := metrics.NewRecorder()
	wrapped := NewRetryingLeagueProvider(inner, "test", nil, recorder, 2, time.Millisecond)

	_, err := wrapped.FetchFreeAgents(context.Background(), "PG")
	if err == nil {
		t.Fatalf("expected rate limit error to surface")
	}
	if _, ok := AsRateLimitError(err); !ok {
		t.Fatalf("expected typed rate limit error, got %v", err)
	}
	if recorder.RateLimitHits("test") == 0 {
		t.Fatalf("expected rate limit hits recorded")
	}
}

type countingStats struct {
	searches int
}

func (c *countingStats) SearchPlayers(ctx context.Context, fullName string) ([]Identity, error) {
	c.searches++
	return []Identity{{ID: 1, FullName: fullName}}, nil
}

func (c *countingStats) FetchGameLog(ctx context.Context, playerID int, season string) ([]gamelog.RawEntry, error) {
	return nil, nil
}

func TestRetryingStatsPassesThroughSuccess(t *testing.T) {
	inner := &countingStats{}
	wrapped := NewRetryingStatsProvider(inner, "stats", nil, metrics.NewRecorder(), 3, time.Millisecond)

	identities, err := wrapped.SearchPlayers(context.Background(), "Stephen Curry")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(identities) != 1 || inner.searches != 1 {
		t.Fatalf("expected single pass-through call, got %d", inner.searches)
	}
}
