package config

const (
	envPort         = "PORT"
	envProvider     = "PROVIDER"
	envLeagueKey    = "YAHOO_LEAGUE_KEY"
	envTeamKey      = "YAHOO_TEAM_KEY"
	envSeasons      = "RISK_SEASONS"
	envLogLevel     = "LOG_LEVEL"
	envLogFormat    = "LOG_FORMAT"
	envMetricsOn    = "METRICS_ENABLED"
	envMetricsPort  = "METRICS_PORT"
	envOtelEndpoint = "OTEL_EXPORTER_OTLP_ENDPOINT"
	envOtelService  = "OTEL_SERVICE_NAME"
	envOtelInsecure = "OTEL_EXPORTER_OTLP_INSECURE"

	defaultPort        = "5001"
	defaultProvider    = "fixture"
	defaultMetricsPort = "9090"
	// Seasons pooled for risk training, oldest first so recency weights rise.
	defaultSeasons   = "2022-23,2023-24,2024-25,2025-26"
	defaultLogLevel  = "info"
	defaultLogFormat = "text"
)
