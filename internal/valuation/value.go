// Package valuation scores players and rosters: the deterministic fantasy
// value formula, the availability adjustment, and roster orchestration.
package valuation

import "yahoo-fantasy-assistant/internal/domain"

// Category weights for 9-cat style value ranking.
const (
	weightFGPct     = 15
	weightFTPct     = 12
	weightThreePM   = 1.2
	weightPoints    = 0.4
	weightRebounds  = 0.7
	weightAssists   = 0.9
	weightSteals    = 2.5
	weightBlocks    = 2.2
	weightTurnovers = 1.0
)

// CalcFantasyValue is the hand-tuned weighted sum over a season stat line,
// rounded to 2 decimals. Zero-valued categories contribute nothing, so
// missing upstream fields (mapped to zero at the provider boundary) behave
// as 0.0.
func CalcFantasyValue(stats domain.StatLine) float64 {
	return domain.Round2(
		stats.FGPct*weightFGPct +
			stats.FTPct*weightFTPct +
			stats.ThreePM*weightThreePM +
			stats.Points*weightPoints +
			stats.Rebounds*weightRebounds +
			stats.Assists*weightAssists +
			stats.Steals*weightSteals +
			stats.Blocks*weightBlocks -
			stats.Turnovers*weightTurnovers,
	)
}
