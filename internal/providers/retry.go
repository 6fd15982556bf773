package providers

import (
	"context"
	"log/slog"
	"time"

	"github.com/cenkalti/backoff/v4"

	"yahoo-fantasy-assistant/internal/logging"
	"yahoo-fantasy-assistant/internal/metrics"
)

const (
	defaultRetryAttempts   = 3
	defaultInitialInterval = 200 * time.Millisecond
)

// Retrier applies exponential backoff, logging, and metrics around provider
// calls. The zero number of attempts means the default.
type Retrier struct {
	logger      *slog.Logger
	recorder    *metrics.Recorder
	provider    string
	maxAttempts int
	interval    time.Duration
}

// NewRetrier builds a Retrier for one named upstream.
func NewRetrier(provider string, logger *slog.Logger, recorder *metrics.Recorder, maxAttempts int, interval time.Duration) *Retrier {
	if maxAttempts <= 0 {
		maxAttempts = defaultRetryAttempts
	}
	if interval <= 0 {
		interval = defaultInitialInterval
	}
	return &Retrier{
		logger:      logger,
		recorder:    recorder,
		provider:    provider,
		maxAttempts: maxAttempts,
		interval:    interval,
	}
}

// Do runs fn under the retry schedule, recording each attempt.
func Do[T any](ctx context.Context, r *Retrier, op string, fn func(context.Context) (T, error)) (T, error) {
	var result T

	policy := backoff.NewExponentialBackOff()
	policy.InitialInterval = r.interval
	schedule := backoff.WithContext(backoff.WithMaxRetries(policy, uint64(r.maxAttempts-1)), ctx)

	attempt := 0
	err := backoff.RetryNotify(func() error {
		attempt++
		start := time.Now()
		value, callErr := fn(ctx)
		r.recorder.RecordProviderAttempt(r.provider, time.Since(start), callErr)
		if callErr != nil {
			if rl, ok := AsRateLimitError(callErr); ok {
				r.recorder.RecordRateLimit(r.provider, rl.RetryAfter)
			}
			return callErr
		}
		result = value
		return nil
	}, schedule, func(callErr error, next time.Duration) {
		logging.Warn(r.logger, "provider call retry",
			"provider", r.provider,
			"op", op,
			"attempt", attempt,
			"max_attempts", r.maxAttempts,
			"backoff", next.String(),
			"err", callErr,
		)
	})
	if err != nil {
		logging.Warn(r.logger, "provider call failed",
			"provider", r.provider,
			"op", op,
			"attempts", attempt,
			"err", err,
		)
		return result, err
	}
	return result, nil
}
