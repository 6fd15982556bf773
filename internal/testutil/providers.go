// Package testutil provides stub collaborators shared across test suites.
package testutil

import (
	"context"

	"yahoo-fantasy-assistant/internal/domain"
	"yahoo-fantasy-assistant/internal/gamelog"
	"yahoo-fantasy-assistant/internal/providers"
)

// StubLeague is an in-memory providers.LeagueProvider.
type StubLeague struct {
	Teams      []domain.Team
	Rosters    map[string][]domain.Player
	Stats      map[int]domain.StatLine
	FreeAgents map[string][]domain.FreeAgent

	TeamsErr  error
	RosterErr error
	StatsErr  error
	AgentsErr error

	StatCalls int
}

func (s *StubLeague) FetchTeams(ctx context.Context) ([]domain.Team, error) {
	if s.TeamsErr != nil {
		return nil, s.TeamsErr
	}
	return s.Teams, nil
}

func (s *StubLeague) FetchRoster(ctx context.Context, teamKey string) ([]domain.Player, error) {
	if s.RosterErr != nil {
		return nil, s.RosterErr
	}
	return s.Rosters[teamKey], nil
}

func (s *StubLeague) FetchSeasonStats(ctx context.Context, playerIDs []int, season string) (map[int]domain.StatLine, error) {
	s.StatCalls++
	if s.StatsErr != nil {
		return nil, s.StatsErr
	}
	out := make(map[int]domain.StatLine, len(playerIDs))
	for _, id := range playerIDs {
		if line, ok := s.Stats[id]; ok {
			out[id] = line
		}
	}
	return out, nil
}

func (s *StubLeague) FetchFreeAgents(ctx context.Context, position string) ([]domain.FreeAgent, error) {
	if s.AgentsErr != nil {
		return nil, s.AgentsErr
	}
	return s.FreeAgents[position], nil
}

// StubRisk returns canned assessments without touching any upstream.
type StubRisk struct {
	Report domain.RiskReport
}

func (s *StubRisk) Assess(ctx context.Context, roster []domain.Player) domain.RiskReport {
	if s.Report.ByPlayerName != nil {
		return s.Report
	}
	byName := make(map[string]domain.RiskAssessment, len(roster))
	for _, player := range roster {
		byName[player.Name] = domain.RiskAssessment{
			InjuryRiskProbability:   0.2,
			AvailabilityProbability: 0.8,
			Source:                  domain.SourceDefault,
		}
	}
	return domain.RiskReport{ByPlayerName: byName}
}

// StubStatsProvider is an in-memory providers.StatsProvider.
type StubStatsProvider struct {
	Identities map[string][]providers.Identity
	Logs       map[int]map[string][]gamelog.RawEntry

	SearchErr error
	LogErr    error
}

func (s *StubStatsProvider) SearchPlayers(ctx context.Context, fullName string) ([]providers.Identity, error) {
	if s.SearchErr != nil {
		return nil, s.SearchErr
	}
	return s.Identities[fullName], nil
}

func (s *StubStatsProvider) FetchGameLog(ctx context.Context, playerID int, season string) ([]gamelog.RawEntry, error) {
	if s.LogErr != nil {
		return nil, s.LogErr
	}
	return s.Logs[playerID][season], nil
}
