package risk

import (
	"context"
	"strings"

	"yahoo-fantasy-assistant/internal/logging"
	"yahoo-fantasy-assistant/internal/names"
	"yahoo-fantasy-assistant/internal/providers"
)

// resolvePlayerID maps a roster name to an external player id: each name
// candidate (verbatim, then period-stripped) is searched, preferring an
// exact case-insensitive full-name match over the first fuzzy hit. Returns
// 0 when nothing matches or the lookup fails.
func (e *Estimator) resolvePlayerID(ctx context.Context, playerName string) int {
	if playerName == "" {
		return 0
	}
	return e.cache.PlayerID(playerName, func() int {
		for _, candidate := range names.Candidates(playerName) {
			matches, err := e.stats.SearchPlayers(ctx, candidate)
			if err != nil {
				logging.Warn(e.logger, "identity lookup failed",
					logging.FieldPlayer, playerName, "err", err)
				continue
			}
			if id := pickIdentity(candidate, matches); id != 0 {
				return id
			}
		}
		return 0
	})
}

func pickIdentity(candidate string, matches []providers.Identity) int {
	for _, m := range matches {
		if strings.EqualFold(m.FullName, candidate) {
			return m.ID
		}
	}
	if len(matches) > 0 {
		return matches[0].ID
	}
	return 0
}
