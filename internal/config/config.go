// Package config reads runtime configuration from the environment, with an
// optional .env file for local development.
package config

import (
	"errors"
	"fmt"

	"github.com/joho/godotenv"
)

// Provider names accepted in PROVIDER.
const (
	ProviderYahoo   = "yahoo"
	ProviderFixture = "fixture"
)

// ErrLeagueKeyRequired is returned when the yahoo provider is selected
// without a league key to scope its requests.
var ErrLeagueKeyRequired = errors.New("YAHOO_LEAGUE_KEY is required when PROVIDER=yahoo")

// Config holds runtime configuration for the server.
type Config struct {
	Port      string
	Provider  string
	LeagueKey string
	TeamKey   string
	Seasons   []string
	LogLevel  string
	LogFormat string
	Yahoo     YahooConfig
	NBAStats  NBAStatsConfig
	Metrics   MetricsConfig
}

// Load reads configuration from environment variables with sensible
// defaults. A .env file in the working directory is merged in first, when
// present, without overriding variables already set.
func Load() (Config, error) {
	_ = godotenv.Load()

	cfg := Config{
		Port:      envOrDefault(envPort, defaultPort),
		Provider:  envOrDefault(envProvider, defaultProvider),
		LeagueKey: envOrDefault(envLeagueKey, ""),
		TeamKey:   envOrDefault(envTeamKey, ""),
		Seasons:   listEnvOrDefault(envSeasons, defaultSeasons),
		LogLevel:  envOrDefault(envLogLevel, defaultLogLevel),
		LogFormat: envOrDefault(envLogFormat, defaultLogFormat),
		Yahoo:     loadYahoo(),
		NBAStats:  loadNBAStats(),
		Metrics:   loadMetrics(),
	}

	if cfg.Provider == ProviderYahoo && cfg.LeagueKey == "" {
		return Config{}, ErrLeagueKeyRequired
	}
	if cfg.TeamKey == "" && cfg.LeagueKey != "" {
		cfg.TeamKey = fmt.Sprintf("%s.t.1", cfg.LeagueKey)
	}
	return cfg, nil
}
