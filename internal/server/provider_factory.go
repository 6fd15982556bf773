package server

import (
	"log/slog"
	"net/http"

	"yahoo-fantasy-assistant/internal/config"
	"yahoo-fantasy-assistant/internal/metrics"
	"yahoo-fantasy-assistant/internal/providers"
	"yahoo-fantasy-assistant/internal/providers/fixture"
	"yahoo-fantasy-assistant/internal/providers/nbastats"
	"yahoo-fantasy-assistant/internal/providers/yahoo"
)

// providerFactory assembles the upstream clients with the shared retry
// wrapper.
type providerFactory struct {
	logger  *slog.Logger
	metrics *metrics.Recorder
}

func newProviderFactory(logger *slog.Logger, metrics *metrics.Recorder) providerFactory {
	return providerFactory{logger: logger, metrics: metrics}
}

func (f providerFactory) build(cfg config.Config) (providers.LeagueProvider, providers.StatsProvider) {
	league, stats, leagueName, statsName := f.selectProviders(cfg)
	return providers.NewRetryingLeagueProvider(league, leagueName, f.logger, f.metrics, 0, 0),
		providers.NewRetryingStatsProvider(stats, statsName, f.logger, f.metrics, 0, 0)
}

func (f providerFactory) selectProviders(cfg config.Config) (providers.LeagueProvider, providers.StatsProvider, string, string) {
	if cfg.Provider == config.ProviderYahoo {
		league := yahoo.NewClient(yahoo.Config{
			BaseURL:           cfg.Yahoo.BaseURL,
			AccessToken:       cfg.Yahoo.AccessToken,
			LeagueKey:         cfg.LeagueKey,
			RequestsPerMinute: cfg.Yahoo.RequestsPerMinute,
			HTTPClient:        &http.Client{Timeout: cfg.Yahoo.Timeout},
		})
		stats := nbastats.NewClient(nbastats.Config{
			BaseURL:    cfg.NBAStats.BaseURL,
			HTTPClient: &http.Client{Timeout: cfg.NBAStats.Timeout},
		})
		return league, stats, config.ProviderYahoo, "nbastats"
	}

	fx := fixture.New()
	return fx, fx, config.ProviderFixture, config.ProviderFixture
}
