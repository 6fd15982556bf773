// Package fixture returns a static league useful for local development and
// bootstrapping without Yahoo credentials.
package fixture

import (
	"context"
	"fmt"
	"time"

	"yahoo-fantasy-assistant/internal/domain"
	"yahoo-fantasy-assistant/internal/gamelog"
	"yahoo-fantasy-assistant/internal/names"
	"yahoo-fantasy-assistant/internal/providers"
)

// TeamKey is the roster every fixture lookup resolves to.
const TeamKey = "fixture.l.1.t.1"

const rivalTeamKey = "fixture.l.1.t.2"

// Provider serves a deterministic two-team league with enough game history
// to exercise risk training.
type Provider struct{}

// New creates a fixture provider.
func New() *Provider {
	return &Provider{}
}

// FetchTeams returns the fixture league's two teams.
func (p *Provider) FetchTeams(ctx context.Context) ([]domain.Team, error) {
	_ = ctx
	return []domain.Team{
		{TeamKey: TeamKey, Name: "Fixture Favorites"},
		{TeamKey: rivalTeamKey, Name: "Fixture Rivals"},
	}, nil
}

// FetchRoster returns a deterministic roster for either fixture team.
func (p *Provider) FetchRoster(ctx context.Context, teamKey string) ([]domain.Player, error) {
	_ = ctx
	if teamKey == rivalTeamKey {
		return []domain.Player{
			{PlayerID: 201, Name: "Rival Center", EligiblePositions: []string{"C"}, Status: ""},
			{PlayerID: 202, Name: "Rival Wing", EligiblePositions: []string{"SF", "PF"}, Status: "DTD"},
		}, nil
	}
	return []domain.Player{
		{PlayerID: 101, Name: "Fixture Guard", EligiblePositions: []string{"PG", "SG"}, Status: ""},
		{PlayerID: 102, Name: "Fixture Forward", EligiblePositions: []string{"SF", "PF"}, Status: "INJ"},
		{PlayerID: 103, Name: "Fixture Center", EligiblePositions: []string{"C"}, Status: ""},
	}, nil
}

// FetchSeasonStats returns fixed stat lines keyed by player id.
func (p *Provider) FetchSeasonStats(ctx context.Context, playerIDs []int, season string) (map[int]domain.StatLine, error) {
	_ = ctx
	_ = season

	all := map[int]domain.StatLine{
		101: {FGPct: 0.47, FTPct: 0.89, ThreePM: 3.4, Points: 24.1, Rebounds: 4.2, Assists: 6.8, Steals: 1.3, Blocks: 0.2, Turnovers: 2.9},
		102: {FGPct: 0.51, FTPct: 0.74, ThreePM: 1.1, Points: 16.4, Rebounds: 8.9, Assists: 2.3, Steals: 0.8, Blocks: 1.4, Turnovers: 1.8},
		103: {FGPct: 0.62, FTPct: 0.58, ThreePM: 0.0, Points: 12.7, Rebounds: 11.2, Assists: 1.9, Steals: 0.6, Blocks: 2.1, Turnovers: 2.2},
		201: {FGPct: 0.58, FTPct: 0.81, ThreePM: 0.4, Points: 21.5, Rebounds: 12.4, Assists: 4.6, Steals: 0.9, Blocks: 1.7, Turnovers: 3.1},
		202: {FGPct: 0.44, FTPct: 0.77, ThreePM: 2.2, Points: 14.8, Rebounds: 5.1, Assists: 2.7, Steals: 1.1, Blocks: 0.5, Turnovers: 1.6},
		301: {FGPct: 0.49, FTPct: 0.85, ThreePM: 2.8, Points: 18.9, Rebounds: 3.8, Assists: 4.1, Steals: 1.5, Blocks: 0.3, Turnovers: 2.1},
		302: {FGPct: 0.53, FTPct: 0.69, ThreePM: 0.7, Points: 11.2, Rebounds: 7.6, Assists: 1.4, Steals: 0.7, Blocks: 1.2, Turnovers: 1.3},
	}

	statsByID := make(map[int]domain.StatLine, len(playerIDs))
	for _, id := range playerIDs {
		if line, ok := all[id]; ok {
			statsByID[id] = line
		}
	}
	return statsByID, nil
}

// FetchFreeAgents returns deterministic free agents for guard and forward
// slots; other positions are empty.
func (p *Provider) FetchFreeAgents(ctx context.Context, position string) ([]domain.FreeAgent, error) {
	_ = ctx
	switch position {
	case "PG", "SG":
		return []domain.FreeAgent{
			{PlayerID: 301, Name: "Waiver Guard", EligiblePositions: []string{"PG", "SG"}, PercentOwned: 38},
		}, nil
	case "SF", "PF":
		return []domain.FreeAgent{
			{PlayerID: 302, Name: "Waiver Forward", EligiblePositions: []string{"PF"}, PercentOwned: 12},
		}, nil
	default:
		return []domain.FreeAgent{}, nil
	}
}

// SearchPlayers resolves fixture roster names to stable ids.
func (p *Provider) SearchPlayers(ctx context.Context, fullName string) ([]providers.Identity, error) {
	_ = ctx
	identities := []providers.Identity{
		{ID: 101, FullName: "Fixture Guard"},
		{ID: 102, FullName: "Fixture Forward"},
		{ID: 103, FullName: "Fixture Center"},
		{ID: 201, FullName: "Rival Center"},
		{ID: 202, FullName: "Rival Wing"},
	}

	query := names.Normalize(fullName)
	var matches []providers.Identity
	for _, identity := range identities {
		if names.Normalize(identity.FullName) == query {
			matches = append(matches, identity)
		}
	}
	return matches, nil
}

// FetchGameLog synthesizes a dense schedule with one extended absence per
// player, enough to pool trainable rows across a roster.
func (p *Provider) FetchGameLog(ctx context.Context, playerID int, season string) ([]gamelog.RawEntry, error) {
	_ = ctx
	_ = season

	start := time.Date(2026, time.January, 2, 0, 0, 0, 0, time.UTC)
	entries := make([]gamelog.RawEntry, 0, 30)
	day := 0
	for len(entries) < 30 {
		// A week-long absence after the 12th game, offset per player so
		// pooled rows carry both label classes.
		if day == 24+playerID%3 {
			day += 7
		}
		date := start.AddDate(0, 0, day)
		entries = append(entries, gamelog.RawEntry{
			Date:    date.Format("2006-01-02"),
			Minutes: fmt.Sprintf("%d:30", 24+(playerID+len(entries))%12),
		})
		day += 2
	}
	return entries, nil
}
