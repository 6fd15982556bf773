// Package features derives workload/rest feature rows from normalized game
// logs, including the proxy label used for risk-model training.
package features

import (
	"yahoo-fantasy-assistant/internal/gamelog"
	"yahoo-fantasy-assistant/internal/timeutil"
)

// MinGames is the shortest log worth extracting; below this there is too
// little signal to trust.
const MinGames = 8

// missGapDays is the schedule gap treated as a missed game. A long gap to
// the next team game often reflects unavailability; this proxy defines the
// model's ground truth and must not be re-tuned casually.
const missGapDays = 4

// FeatureCount is the width of the model input vector.
const FeatureCount = 8

// FeatureNames lists the model inputs in vector order.
var FeatureNames = []string{
	"minutes_last_game",
	"days_rest",
	"is_back_to_back",
	"games_last_14d",
	"minutes_last_14d",
	"avg_minutes_last_5",
	"season_minutes",
	"season_games_played",
}

// Row is one training example extracted at a game boundary.
type Row struct {
	MinutesLastGame   float64
	DaysRest          float64
	IsBackToBack      float64
	GamesLast14d      float64
	MinutesLast14d    float64
	AvgMinutesLast5   float64
	SeasonMinutes     float64
	SeasonGamesPlayed float64

	// TargetMissNext is 1 when the gap to the following game is at least
	// missGapDays. The final row of a log is always 0: no future game to
	// measure against.
	TargetMissNext float64
	// SampleWeight is the caller-supplied recency weight, uniform per log.
	SampleWeight float64
}

// Vector returns the model inputs in FeatureNames order.
func (r Row) Vector() []float64 {
	return []float64{
		r.MinutesLastGame,
		r.DaysRest,
		r.IsBackToBack,
		r.GamesLast14d,
		r.MinutesLast14d,
		r.AvgMinutesLast5,
		r.SeasonMinutes,
		r.SeasonGamesPlayed,
	}
}

// Extract produces one labeled Row per game index 1..L-1 plus the unlabeled
// snapshot as of the last game, used for inference. Logs shorter than
// MinGames yield no rows and no snapshot.
func Extract(log []gamelog.Record, sampleWeight float64) ([]Row, *Row) {
	if len(log) < MinGames {
		return nil, nil
	}

	rows := make([]Row, 0, len(log)-1)
	var snapshot *Row

	for i := 1; i < len(log); i++ {
		prev := log[i-1]
		current := log[i]

		daysRest := float64(timeutil.WholeDaysBetween(prev.Date, current.Date) - 1)
		if daysRest < 0 {
			daysRest = 0
		}
		backToBack := 0.0
		if daysRest == 0 {
			backToBack = 1.0
		}

		windowStart := current.Date.AddDate(0, 0, -14)
		var games14, minutes14, seasonMinutes float64
		for _, g := range log[:i] {
			seasonMinutes += g.Minutes
			if !g.Date.Before(windowStart) {
				games14++
				minutes14 += g.Minutes
			}
		}

		recent := log[:i]
		if len(recent) > 5 {
			recent = recent[len(recent)-5:]
		}
		var recentSum float64
		for _, g := range recent {
			recentSum += g.Minutes
		}
		avg5 := 0.0
		if len(recent) > 0 {
			avg5 = recentSum / float64(len(recent))
		}

		row := Row{
			MinutesLastGame:   prev.Minutes,
			DaysRest:          daysRest,
			IsBackToBack:      backToBack,
			GamesLast14d:      games14,
			MinutesLast14d:    minutes14,
			AvgMinutesLast5:   avg5,
			SeasonMinutes:     seasonMinutes,
			SeasonGamesPlayed: float64(i),
			SampleWeight:      sampleWeight,
		}

		if i < len(log)-1 {
			gap := timeutil.WholeDaysBetween(current.Date, log[i+1].Date)
			if gap >= missGapDays {
				row.TargetMissNext = 1
			}
		}

		rows = append(rows, row)

		latest := row
		latest.TargetMissNext = 0
		snapshot = &latest
	}

	return rows, snapshot
}
