// Package trade compares proposed trades and surfaces drop/add suggestions
// using league-wide fantasy values.
package trade

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"yahoo-fantasy-assistant/internal/domain"
	"yahoo-fantasy-assistant/internal/logging"
	"yahoo-fantasy-assistant/internal/names"
	"yahoo-fantasy-assistant/internal/providers"
	"yahoo-fantasy-assistant/internal/valuation"
)

// Engine resolves free-text player names against a league-wide value index.
type Engine struct {
	league providers.LeagueProvider
	logger *slog.Logger
}

// NewEngine wires a trade engine.
func NewEngine(league providers.LeagueProvider, logger *slog.Logger) *Engine {
	return &Engine{league: league, logger: logger}
}

// Compare values both sides of a proposed trade. Unresolvable names land in
// the side's missing list and contribute nothing; only a failed league
// enumeration is an error.
func (e *Engine) Compare(ctx context.Context, awayNames, receiveNames []string) (domain.TradeComparison, error) {
	index, err := e.buildValueIndex(ctx)
	if err != nil {
		return domain.TradeComparison{}, err
	}

	away := resolveSide(awayNames, index)
	receive := resolveSide(receiveNames, index)

	delta := domain.Round2(receive.Total - away.Total)
	verdict := domain.VerdictEven
	if delta > 0 {
		verdict = domain.VerdictYourSide
	}
	if delta < 0 {
		verdict = domain.VerdictOtherSide
	}

	return domain.TradeComparison{
		TradeAway: away,
		TradeFor:  receive,
		Delta:     delta,
		Winner:    verdict,
	}, nil
}

// buildValueIndex values every roster in the league, keyed by normalized
// name. A name rostered on two teams keeps the last writer.
func (e *Engine) buildValueIndex(ctx context.Context) (map[string]domain.TradePlayer, error) {
	teams, err := e.league.FetchTeams(ctx)
	if err != nil {
		return nil, fmt.Errorf("enumerate league teams: %w", err)
	}

	index := make(map[string]domain.TradePlayer)
	for _, team := range teams {
		if team.TeamKey == "" {
			continue
		}
		players, err := e.valueTeam(ctx, team.TeamKey)
		if err != nil {
			logging.Warn(e.logger, "team skipped in value index",
				logging.FieldTeamKey, team.TeamKey, "err", err)
			continue
		}
		for _, player := range players {
			if player.Name == "" {
				continue
			}
			index[names.Normalize(player.Name)] = domain.TradePlayer{
				Name:         player.Name,
				FantasyValue: player.FantasyValue,
			}
		}
	}
	return index, nil
}

func resolveSide(rawNames []string, index map[string]domain.TradePlayer) domain.TradeSide {
	side := domain.TradeSide{
		Players: []domain.TradePlayer{},
		Missing: []string{},
	}
	var total float64
	for _, raw := range rawNames {
		player, ok := index[names.Normalize(raw)]
		if !ok {
			side.Missing = append(side.Missing, raw)
			continue
		}
		side.Players = append(side.Players, player)
		total += player.FantasyValue
	}
	side.Total = domain.Round2(total)
	return side
}

// valueTeam values one roster on plain fantasy value. Risk is deliberately
// absent here: trade deltas compare production, not availability.
func (e *Engine) valueTeam(ctx context.Context, teamKey string) ([]domain.TradePlayer, error) {
	roster, err := e.league.FetchRoster(ctx, teamKey)
	if err != nil {
		return nil, err
	}

	ids := make([]int, 0, len(roster))
	for _, player := range roster {
		if player.PlayerID != 0 {
			ids = append(ids, player.PlayerID)
		}
	}
	statsByID := make(map[int]domain.StatLine)
	if len(ids) > 0 {
		statsByID, err = e.league.FetchSeasonStats(ctx, ids, "season")
		if err != nil {
			return nil, err
		}
	}

	players := make([]domain.TradePlayer, 0, len(roster))
	for _, player := range roster {
		players = append(players, domain.TradePlayer{
			Name:         player.Name,
			FantasyValue: valuation.CalcFantasyValue(statsByID[player.PlayerID]),
		})
	}
	return players, nil
}

// ParseNames splits a comma-separated query value into trimmed names.
func ParseNames(raw string) []string {
	parts := strings.Split(raw, ",")
	parsed := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			parsed = append(parsed, trimmed)
		}
	}
	return parsed
}
