package yahoo

import (
	"strconv"
	"strings"

	"yahoo-fantasy-assistant/internal/domain"
)

func mapPlayer(p playerResponse) domain.Player {
	return domain.Player{
		PlayerID:          p.PlayerID,
		Name:              strings.TrimSpace(p.Name.Full),
		EligiblePositions: p.EligiblePositions,
		Status:            strings.TrimSpace(p.Status),
	}
}

func mapFreeAgent(p playerResponse) domain.FreeAgent {
	return domain.FreeAgent{
		PlayerID:          p.PlayerID,
		Name:              strings.TrimSpace(p.Name.Full),
		EligiblePositions: p.EligiblePositions,
		PercentOwned:      p.PercentOwned.Value,
	}
}

func mapTeam(t teamResponse) domain.Team {
	return domain.Team{
		TeamKey: t.TeamKey,
		Name:    strings.TrimSpace(t.Name),
	}
}

// mapStatLine folds Yahoo stat rows into a stat line. Unknown ids are
// ignored; unparseable values count as zero.
func mapStatLine(stats []statResponse) domain.StatLine {
	var line domain.StatLine
	for _, stat := range stats {
		value := parseStatValue(stat.Value)
		switch stat.StatID {
		case statFGPct:
			line.FGPct = value
		case statFTPct:
			line.FTPct = value
		case statThreePM:
			line.ThreePM = value
		case statPoints:
			line.Points = value
		case statRebounds:
			line.Rebounds = value
		case statAssists:
			line.Assists = value
		case statSteals:
			line.Steals = value
		case statBlocks:
			line.Blocks = value
		case statTurnovers:
			line.Turnovers = value
		}
	}
	return line
}

func parseStatValue(raw string) float64 {
	raw = strings.TrimSpace(raw)
	if raw == "" || raw == "-" {
		return 0
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0
	}
	return value
}

// gameCode extracts the game id prefix from a league key, e.g. "418" from
// "418.l.12345". Player keys reuse it as "418.p.<id>".
func gameCode(leagueKey string) string {
	if idx := strings.Index(leagueKey, "."); idx > 0 {
		return leagueKey[:idx]
	}
	return leagueKey
}
