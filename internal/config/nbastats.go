package config

import "time"

const (
	envNBAStatsBaseURL = "NBA_STATS_BASE_URL"
	envNBAStatsTimeout = "NBA_STATS_TIMEOUT"

	defaultNBAStatsBaseURL = "https://stats.nba.com/stats"
	// stats.nba.com stalls silently on unfamiliar clients; keep this generous.
	defaultNBAStatsTimeout = 15 * Duration(time.Second)
)

// NBAStatsConfig controls how we talk to the public stats.nba.com endpoints.
type NBAStatsConfig struct {
	BaseURL string
	Timeout Duration
}

func loadNBAStats() NBAStatsConfig {
	return NBAStatsConfig{
		BaseURL: envOrDefault(envNBAStatsBaseURL, defaultNBAStatsBaseURL),
		Timeout: durationEnvOrDefault(envNBAStatsTimeout, defaultNBAStatsTimeout),
	}
}
