// Package risk estimates near-term availability risk per player: a trained
// classifier when enough pooled game-log rows exist, a status-derived
// heuristic otherwise.
package risk

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"yahoo-fantasy-assistant/internal/domain"
	"yahoo-fantasy-assistant/internal/features"
	"yahoo-fantasy-assistant/internal/forest"
	"yahoo-fantasy-assistant/internal/gamelog"
	"yahoo-fantasy-assistant/internal/logging"
	"yahoo-fantasy-assistant/internal/metrics"
	"yahoo-fantasy-assistant/internal/providers"
)

const (
	// MinRowsToTrain is the smallest pooled row count worth modeling.
	MinRowsToTrain = 25

	defaultRisk  = 0.2
	elevatedRisk = 0.55

	// Model probabilities are clamped away from overconfident extremes.
	minModelProbability = 0.02
	maxModelProbability = 0.95
)

// DefaultSeasons are the seasons pooled for training, oldest first.
var DefaultSeasons = []string{"2022-23", "2023-24", "2024-25", "2025-26"}

// statusMarkers are the substrings of an uppercased roster status that mark
// a player as inactive/injured/out/day-to-day.
var statusMarkers = []string{"INJ", "IL", "O", "DTD"}

// Estimator runs the batched risk assessment over a roster.
type Estimator struct {
	stats    providers.StatsProvider
	cache    *Cache
	logger   *slog.Logger
	recorder *metrics.Recorder
	seasons  []string
	model    forest.Config
}

// NewEstimator wires an estimator. Nil seasons means DefaultSeasons; a zero
// model config means the calibrated default.
func NewEstimator(stats providers.StatsProvider, cache *Cache, logger *slog.Logger, recorder *metrics.Recorder, seasons []string) *Estimator {
	if len(seasons) == 0 {
		seasons = DefaultSeasons
	}
	if cache == nil {
		cache = NewCache()
	}
	return &Estimator{
		stats:    stats,
		cache:    cache,
		logger:   logger,
		recorder: recorder,
		seasons:  seasons,
		model:    forest.DefaultConfig(),
	}
}

// Assess produces one RiskAssessment per roster player. Data problems for
// any single player degrade that player to the status heuristic; Assess
// itself never fails.
func (e *Estimator) Assess(ctx context.Context, roster []domain.Player) domain.RiskReport {
	start := time.Now()
	weights := seasonWeights(e.seasons)

	var (
		pool      []features.Row
		snapshots = make(map[string]features.Row)
	)

	for _, player := range roster {
		playerID := e.resolvePlayerID(ctx, player.Name)
		if playerID == 0 {
			continue
		}

		var chosen *features.Row
		for i, season := range e.seasons {
			log := e.playerLog(ctx, playerID, season)
			rows, latest := features.Extract(log, weights[i])
			pool = append(pool, rows...)
			if latest != nil {
				// Later seasons overwrite earlier ones: last season
				// with data wins.
				chosen = latest
			}
		}
		if chosen != nil {
			snapshots[player.Name] = *chosen
		}
	}

	report := domain.RiskReport{
		ByPlayerName: make(map[string]domain.RiskAssessment, len(roster)),
		ModelRows:    len(pool),
	}
	for _, player := range roster {
		report.ByPlayerName[player.Name] = heuristicAssessment(player.Status)
	}

	model, ok := e.train(pool)
	if !ok {
		e.recorder.RecordTrainingRun(false, len(pool), time.Since(start))
		return report
	}

	for name, snapshot := range snapshots {
		probability := clamp(model.PredictProbability(snapshot.Vector()))
		report.ByPlayerName[name] = domain.RiskAssessment{
			InjuryRiskProbability:   domain.Round4(probability),
			AvailabilityProbability: domain.Round4(1 - probability),
			Source:                  domain.SourceRandomForest,
		}
	}

	report.Trained = true
	report.Note = "Model trained using seasons " + strings.Join(e.seasons, ", ") + " with recency weighting."
	e.recorder.RecordTrainingRun(true, len(pool), time.Since(start))
	logging.Info(e.logger, "risk model trained",
		logging.FieldCount, len(pool),
		logging.FieldDurationMS, time.Since(start).Milliseconds(),
	)
	return report
}

func (e *Estimator) playerLog(ctx context.Context, playerID int, season string) []gamelog.Record {
	return e.cache.GameLog(playerID, season, func() []gamelog.Record {
		entries, err := e.stats.FetchGameLog(ctx, playerID, season)
		if err != nil {
			logging.Warn(e.logger, "game log unavailable",
				logging.FieldSeason, season, "player_id", playerID, "err", err)
			return nil
		}
		return gamelog.Normalize(entries)
	})
}

func (e *Estimator) train(pool []features.Row) (*forest.Forest, bool) {
	if len(pool) < MinRowsToTrain {
		return nil, false
	}

	xs := make([][]float64, len(pool))
	ys := make([]float64, len(pool))
	sampleWeights := make([]float64, len(pool))
	for i, row := range pool {
		xs[i] = row.Vector()
		ys[i] = row.TargetMissNext
		sampleWeights[i] = row.SampleWeight
	}

	model, err := forest.Train(xs, ys, sampleWeights, e.model)
	if err != nil {
		// Single-class pools are the designed fallback, not a failure.
		logging.Info(e.logger, "risk model not trained", "reason", err.Error())
		return nil, false
	}
	return model, true
}

// heuristicAssessment derives the fallback risk from free-text status.
func heuristicAssessment(status string) domain.RiskAssessment {
	risk := defaultRisk
	upper := strings.ToUpper(status)
	for _, marker := range statusMarkers {
		if strings.Contains(upper, marker) {
			risk = elevatedRisk
			break
		}
	}
	return domain.RiskAssessment{
		InjuryRiskProbability:   domain.Round4(risk),
		AvailabilityProbability: domain.Round4(1 - risk),
		Source:                  domain.SourceDefault,
	}
}

// seasonWeights up-weights recent seasons: the earliest gets 1.0 and the
// latest 2.0 when two or more seasons are supplied.
func seasonWeights(seasons []string) []float64 {
	weights := make([]float64, len(seasons))
	denominator := len(seasons) - 1
	if denominator < 1 {
		denominator = 1
	}
	for i := range seasons {
		weights[i] = 1 + float64(i)/float64(denominator)
	}
	return weights
}

func clamp(p float64) float64 {
	if p < minModelProbability {
		return minModelProbability
	}
	if p > maxModelProbability {
		return maxModelProbability
	}
	return p
}
