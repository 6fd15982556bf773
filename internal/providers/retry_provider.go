package providers

import (
	"context"
	"log/slog"
	"time"

	"yahoo-fantasy-assistant/internal/domain"
	"yahoo-fantasy-assistant/internal/gamelog"
	"yahoo-fantasy-assistant/internal/metrics"
)

// NewRetryingLeagueProvider wraps every league call with the shared retry
// schedule.
func NewRetryingLeagueProvider(next LeagueProvider, name string, logger *slog.Logger, recorder *metrics.Recorder, maxAttempts int, interval time.Duration) LeagueProvider {
	return &retryingLeague{
		next:    next,
		retrier: NewRetrier(name, logger, recorder, maxAttempts, interval),
	}
}

type retryingLeague struct {
	next    LeagueProvider
	retrier *Retrier
}

func (p *retryingLeague) FetchTeams(ctx context.Context) ([]domain.Team, error) {
	return Do(ctx, p.retrier, "fetch_teams", func(ctx context.Context) ([]domain.Team, error) {
		return p.next.FetchTeams(ctx)
	})
}

func (p *retryingLeague) FetchRoster(ctx context.Context, teamKey string) ([]domain.Player, error) {
	return Do(ctx, p.retrier, "fetch_roster", func(ctx context.Context) ([]domain.Player, error) {
		return p.next.FetchRoster(ctx, teamKey)
	})
}

func (p *retryingLeague) FetchSeasonStats(ctx context.Context, playerIDs []int, season string) (map[int]domain.StatLine, error) {
	return Do(ctx, p.retrier, "fetch_season_stats", func(ctx context.Context) (map[int]domain.StatLine, error) {
		return p.next.FetchSeasonStats(ctx, playerIDs, season)
	})
}

func (p *retryingLeague) FetchFreeAgents(ctx context.Context, position string) ([]domain.FreeAgent, error) {
	return Do(ctx, p.retrier, "fetch_free_agents", func(ctx context.Context) ([]domain.FreeAgent, error) {
		return p.next.FetchFreeAgents(ctx, position)
	})
}

// NewRetryingStatsProvider wraps every stats call with the shared retry
// schedule.
func NewRetryingStatsProvider(next StatsProvider, name string, logger *slog.Logger, recorder *metrics.Recorder, maxAttempts int, interval time.Duration) StatsProvider {
	return &retryingStats{
		next:    next,
		retrier: NewRetrier(name, logger, recorder, maxAttempts, interval),
	}
}

type retryingStats struct {
	next    StatsProvider
	retrier *Retrier
}

func (p *retryingStats) SearchPlayers(ctx context.Context, fullName string) ([]Identity, error) {
	return Do(ctx, p.retrier, "search_players", func(ctx context.Context) ([]Identity, error) {
		return p.next.SearchPlayers(ctx, fullName)
	})
}

func (p *retryingStats) FetchGameLog(ctx context.Context, playerID int, season string) ([]gamelog.RawEntry, error) {
	return Do(ctx, p.retrier, "fetch_game_log", func(ctx context.Context) ([]gamelog.RawEntry, error) {
		return p.next.FetchGameLog(ctx, playerID, season)
	})
}
