package yahoo

import "time"

const providerName = "yahoo"

const (
	defaultBaseURL           = "https://fantasysports.yahooapis.com/fantasy/v2"
	defaultHTTPTimeout       = 10 * time.Second
	defaultRequestsPerMinute = 60
	// Yahoo caps player_keys filters at 25 keys per request.
	maxKeysPerRequest = 25
	freeAgentCount    = 25
)

// Yahoo stat ids for the nine scored categories.
const (
	statFGPct     = 5
	statFTPct     = 8
	statThreePM   = 10
	statPoints    = 12
	statRebounds  = 15
	statAssists   = 16
	statSteals    = 17
	statBlocks    = 18
	statTurnovers = 19
)
