package nbastats

import "time"

const providerName = "nbastats"

const (
	defaultBaseURL     = "https://stats.nba.com/stats"
	defaultHTTPTimeout = 15 * time.Second
	defaultSeason      = "2025-26"

	endpointPlayerIndex = "/commonallplayers"
	endpointGameLog     = "/playergamelog"

	seasonTypeRegular = "Regular Season"
)

// Result set column names we read. The upstream contract is positional
// headers plus untyped rows, so lookups go through the header list.
const (
	columnPersonID   = "PERSON_ID"
	columnPlayerName = "DISPLAY_FIRST_LAST"
	columnGameDate   = "GAME_DATE"
	columnMinutes    = "MIN"
)
