package trade

import (
	"context"
	"fmt"
	"sort"

	"yahoo-fantasy-assistant/internal/domain"
	"yahoo-fantasy-assistant/internal/logging"
	"yahoo-fantasy-assistant/internal/valuation"
)

const (
	weakestCount      = 4
	freeAgentsPerSlot = 12
	maxIdeas          = 6
)

// corePositions are scanned for free agents, in lineup order.
var corePositions = []string{"PG", "SG", "SF", "PF", "C"}

type rosteredValue struct {
	playerID  int
	name      string
	positions []string
	value     float64
}

type freeAgentValue struct {
	playerID     int
	name         string
	positions    []string
	percentOwned float64
	value        float64
}

// Ideas proposes drop/add pairs for a team: its weakest rostered players
// against the best position-compatible free agents that out-value them.
func (e *Engine) Ideas(ctx context.Context, teamKey string) ([]domain.TradeIdea, error) {
	roster, err := e.league.FetchRoster(ctx, teamKey)
	if err != nil {
		return nil, fmt.Errorf("fetch roster %s: %w", teamKey, err)
	}

	rostered := e.valueRosterForIdeas(ctx, roster)
	weakest := weakestPlayers(rostered)

	agents := e.rankedFreeAgents(ctx, rosterIDs(roster))
	if len(agents) == 0 {
		return []domain.TradeIdea{}, nil
	}

	ideas := make([]domain.TradeIdea, 0, maxIdeas)
	usedAdds := make(map[int]bool)
	for _, drop := range weakest {
		add, shared, ok := bestAddFor(drop, agents, usedAdds)
		if !ok {
			continue
		}
		usedAdds[add.playerID] = true
		ideas = append(ideas, domain.TradeIdea{
			DropPlayer:       drop.name,
			DropValue:        drop.value,
			AddPlayer:        add.name,
			AddValue:         add.value,
			Improvement:      domain.Round2(add.value - drop.value),
			SharedPositions:  shared,
			OwnershipPercent: add.percentOwned,
		})
	}

	sort.SliceStable(ideas, func(i, j int) bool {
		return ideas[i].Improvement > ideas[j].Improvement
	})
	if len(ideas) > maxIdeas {
		ideas = ideas[:maxIdeas]
	}
	return ideas, nil
}

func (e *Engine) valueRosterForIdeas(ctx context.Context, roster []domain.Player) []rosteredValue {
	ids := rosterIDList(roster)
	statsByID := make(map[int]domain.StatLine)
	if len(ids) > 0 {
		fetched, err := e.league.FetchSeasonStats(ctx, ids, "season")
		if err != nil {
			logging.Warn(e.logger, "roster stats unavailable for trade ideas", "err", err)
		} else {
			statsByID = fetched
		}
	}

	values := make([]rosteredValue, 0, len(roster))
	for _, player := range roster {
		values = append(values, rosteredValue{
			playerID:  player.PlayerID,
			name:      player.Name,
			positions: player.EligiblePositions,
			value:     valuation.CalcFantasyValue(statsByID[player.PlayerID]),
		})
	}
	return values
}

func weakestPlayers(rostered []rosteredValue) []rosteredValue {
	weakest := make([]rosteredValue, len(rostered))
	copy(weakest, rostered)
	sort.SliceStable(weakest, func(i, j int) bool {
		return weakest[i].value < weakest[j].value
	})
	if len(weakest) > weakestCount {
		weakest = weakest[:weakestCount]
	}
	return weakest
}

// rankedFreeAgents scans the core positions, de-duplicates, excludes the
// roster, values everyone, and sorts descending by value. Positions that
// fail to fetch are skipped.
func (e *Engine) rankedFreeAgents(ctx context.Context, rosterIDs map[int]bool) []freeAgentValue {
	var pool []domain.FreeAgent
	seen := make(map[int]bool)
	for _, position := range corePositions {
		agents, err := e.league.FetchFreeAgents(ctx, position)
		if err != nil {
			logging.Warn(e.logger, "free agents unavailable", "position", position, "err", err)
			continue
		}
		if len(agents) > freeAgentsPerSlot {
			agents = agents[:freeAgentsPerSlot]
		}
		for _, agent := range agents {
			if agent.PlayerID == 0 || seen[agent.PlayerID] || rosterIDs[agent.PlayerID] {
				continue
			}
			seen[agent.PlayerID] = true
			pool = append(pool, agent)
		}
	}
	if len(pool) == 0 {
		return nil
	}

	ids := make([]int, 0, len(pool))
	for _, agent := range pool {
		ids = append(ids, agent.PlayerID)
	}
	statsByID, err := e.league.FetchSeasonStats(ctx, ids, "season")
	if err != nil {
		logging.Warn(e.logger, "free-agent stats unavailable", "err", err)
		statsByID = map[int]domain.StatLine{}
	}

	ranked := make([]freeAgentValue, 0, len(pool))
	for _, agent := range pool {
		ranked = append(ranked, freeAgentValue{
			playerID:     agent.PlayerID,
			name:         agent.Name,
			positions:    agent.EligiblePositions,
			percentOwned: agent.PercentOwned,
			value:        valuation.CalcFantasyValue(statsByID[agent.PlayerID]),
		})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].value > ranked[j].value
	})
	return ranked
}

// bestAddFor picks the highest-value unused agent sharing a position with
// the drop candidate and strictly out-valuing it.
func bestAddFor(drop rosteredValue, agents []freeAgentValue, used map[int]bool) (freeAgentValue, []string, bool) {
	dropPositions := make(map[string]bool, len(drop.positions))
	for _, p := range drop.positions {
		dropPositions[p] = true
	}

	for _, agent := range agents {
		if used[agent.playerID] {
			continue
		}
		var shared []string
		for _, p := range agent.positions {
			if dropPositions[p] {
				shared = append(shared, p)
			}
		}
		if len(shared) == 0 {
			continue
		}
		if agent.value <= drop.value {
			continue
		}
		sort.Strings(shared)
		return agent, shared, true
	}
	return freeAgentValue{}, nil, false
}

func rosterIDs(roster []domain.Player) map[int]bool {
	ids := make(map[int]bool, len(roster))
	for _, player := range roster {
		if player.PlayerID != 0 {
			ids[player.PlayerID] = true
		}
	}
	return ids
}

func rosterIDList(roster []domain.Player) []int {
	ids := make([]int, 0, len(roster))
	for _, player := range roster {
		if player.PlayerID != 0 {
			ids = append(ids, player.PlayerID)
		}
	}
	return ids
}
