package valuation

import (
	"context"
	"fmt"
	"log/slog"
	"sort"

	"yahoo-fantasy-assistant/internal/domain"
	"yahoo-fantasy-assistant/internal/logging"
	"yahoo-fantasy-assistant/internal/providers"
)

// statPeriodSeason asks the league source for full-season stat lines.
const statPeriodSeason = "season"

// RiskEstimator produces one assessment per rostered player.
type RiskEstimator interface {
	Assess(ctx context.Context, roster []domain.Player) domain.RiskReport
}

// Service orchestrates roster valuation: roster fetch, stat lookup, batched
// risk assessment, scoring, and ranking.
type Service struct {
	league providers.LeagueProvider
	risk   RiskEstimator
	logger *slog.Logger
}

// NewService wires a valuation service.
func NewService(league providers.LeagueProvider, risk RiskEstimator, logger *slog.Logger) *Service {
	return &Service{league: league, risk: risk, logger: logger}
}

// ValuateRoster values every rostered player, sorted descending by plain
// fantasy value. A failed stat lookup degrades to all-zero lines; only a
// failed roster fetch is an error.
func (s *Service) ValuateRoster(ctx context.Context, teamKey string) ([]domain.PlayerValuation, domain.RiskReport, error) {
	roster, err := s.league.FetchRoster(ctx, teamKey)
	if err != nil {
		return nil, domain.RiskReport{}, fmt.Errorf("fetch roster %s: %w", teamKey, err)
	}

	statsByID := s.fetchStats(ctx, roster)
	report := s.risk.Assess(ctx, roster)

	valuations := make([]domain.PlayerValuation, 0, len(roster))
	for _, player := range roster {
		stats := statsByID[player.PlayerID]
		value := CalcFantasyValue(stats)
		adjustment := ApplyAvailabilityAdjustment(value, report.ByPlayerName[player.Name])

		valuations = append(valuations, domain.PlayerValuation{
			PlayerID:                 player.PlayerID,
			Name:                     player.Name,
			EligiblePositions:        player.EligiblePositions,
			Status:                   player.Status,
			Stats:                    stats,
			FantasyValue:             value,
			InjuryRiskProbability:    adjustment.InjuryRiskProbability,
			AvailabilityProbability:  adjustment.AvailabilityProbability,
			InjuryRiskSource:         adjustment.Source,
			RiskAdjustedFantasyValue: adjustment.RiskAdjustedFantasyValue,
		})
	}

	sort.SliceStable(valuations, func(i, j int) bool {
		return valuations[i].FantasyValue > valuations[j].FantasyValue
	})
	return valuations, report, nil
}

func (s *Service) fetchStats(ctx context.Context, roster []domain.Player) map[int]domain.StatLine {
	ids := make([]int, 0, len(roster))
	for _, player := range roster {
		if player.PlayerID != 0 {
			ids = append(ids, player.PlayerID)
		}
	}
	if len(ids) == 0 {
		return nil
	}

	statsByID, err := s.league.FetchSeasonStats(ctx, ids, statPeriodSeason)
	if err != nil {
		logging.Warn(s.logger, "season stats unavailable, valuing roster at zero",
			logging.FieldCount, len(ids), "err", err)
		return nil
	}
	return statsByID
}

// RankByAdjusted returns a copy ordered by risk-adjusted value descending,
// the explicitly requested alternate view.
func RankByAdjusted(valuations []domain.PlayerValuation) []domain.PlayerValuation {
	ranked := make([]domain.PlayerValuation, len(valuations))
	copy(ranked, valuations)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].RiskAdjustedFantasyValue > ranked[j].RiskAdjustedFantasyValue
	})
	return ranked
}

// Summarize reduces a valued roster to its headline numbers. The input must
// already be sorted descending by fantasy value.
func Summarize(valuations []domain.PlayerValuation) domain.RosterSummary {
	if len(valuations) == 0 {
		return domain.RosterSummary{}
	}

	var total float64
	for _, v := range valuations {
		total += v.FantasyValue
	}

	highest := valuations[0]
	lowest := valuations[len(valuations)-1]
	return domain.RosterSummary{
		HighestPlayer: highest.Name,
		HighestValue:  highest.FantasyValue,
		LowestPlayer:  lowest.Name,
		LowestValue:   lowest.FantasyValue,
		AverageValue:  domain.Round2(total / float64(len(valuations))),
	}
}
