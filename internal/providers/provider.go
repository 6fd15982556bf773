package providers

import (
	"context"

	"yahoo-fantasy-assistant/internal/domain"
	"yahoo-fantasy-assistant/internal/gamelog"
)

// Identity is a candidate external identity for a player name.
type Identity struct {
	ID       int
	FullName string
}

// RosterSource fetches the rostered players for a team.
type RosterSource interface {
	FetchRoster(ctx context.Context, teamKey string) ([]domain.Player, error)
}

// StatSource fetches per-player season stat lines keyed by player id.
type StatSource interface {
	FetchSeasonStats(ctx context.Context, playerIDs []int, season string) (map[int]domain.StatLine, error)
}

// TeamEnumerator lists every team in the league.
type TeamEnumerator interface {
	FetchTeams(ctx context.Context) ([]domain.Team, error)
}

// FreeAgentSource lists available free agents for a position.
type FreeAgentSource interface {
	FetchFreeAgents(ctx context.Context, position string) ([]domain.FreeAgent, error)
}

// GameLogSource fetches one player-season game history. Ordering is not
// guaranteed; the normalizer sorts.
type GameLogSource interface {
	FetchGameLog(ctx context.Context, playerID int, season string) ([]gamelog.RawEntry, error)
}

// IdentityLookup returns candidate identities for a full name, best first.
type IdentityLookup interface {
	SearchPlayers(ctx context.Context, fullName string) ([]Identity, error)
}

// LeagueProvider combines the league-facing capabilities.
type LeagueProvider interface {
	RosterSource
	StatSource
	TeamEnumerator
	FreeAgentSource
}

// StatsProvider combines the game-data capabilities used by risk modeling.
type StatsProvider interface {
	GameLogSource
	IdentityLookup
}
