package config

import "time"

const (
	envYahooBaseURL     = "YAHOO_BASE_URL"
	envYahooAccessToken = "YAHOO_ACCESS_TOKEN"
	envYahooTimeout     = "YAHOO_TIMEOUT"
	envYahooRateLimit   = "YAHOO_REQUESTS_PER_MINUTE"

	defaultYahooBaseURL = "https://fantasysports.yahooapis.com/fantasy/v2"
	defaultYahooTimeout = 10 * Duration(time.Second)
	// Yahoo throttles aggressively; stay well under its per-hour quota.
	defaultYahooRateLimit = 60
)

// YahooConfig controls how we talk to the Yahoo Fantasy Sports API.
type YahooConfig struct {
	BaseURL           string
	AccessToken       string
	Timeout           Duration
	RequestsPerMinute int
}

func loadYahoo() YahooConfig {
	return YahooConfig{
		BaseURL:           envOrDefault(envYahooBaseURL, defaultYahooBaseURL),
		AccessToken:       envOrDefault(envYahooAccessToken, ""),
		Timeout:           durationEnvOrDefault(envYahooTimeout, defaultYahooTimeout),
		RequestsPerMinute: intEnvOrDefault(envYahooRateLimit, defaultYahooRateLimit),
	}
}
