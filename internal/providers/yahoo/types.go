package yahoo

import "encoding/xml"

// fantasyContent is the envelope every Yahoo Fantasy response arrives in.
type fantasyContent struct {
	XMLName xml.Name        `xml:"fantasy_content"`
	League  *leagueResponse `xml:"league"`
	Team    *teamResponse   `xml:"team"`
}

type leagueResponse struct {
	LeagueKey string           `xml:"league_key"`
	Teams     []teamResponse   `xml:"teams>team"`
	Players   []playerResponse `xml:"players>player"`
}

type teamResponse struct {
	TeamKey string         `xml:"team_key"`
	Name    string         `xml:"name"`
	Roster  rosterResponse `xml:"roster"`
}

type rosterResponse struct {
	Players []playerResponse `xml:"players>player"`
}

type playerResponse struct {
	PlayerKey         string               `xml:"player_key"`
	PlayerID          int                  `xml:"player_id"`
	Name              playerNameResponse   `xml:"name"`
	Status            string               `xml:"status"`
	EligiblePositions []string             `xml:"eligible_positions>position"`
	PercentOwned      percentOwnedResponse `xml:"percent_owned"`
	PlayerStats       playerStatsResponse  `xml:"player_stats"`
}

type playerNameResponse struct {
	Full string `xml:"full"`
}

type percentOwnedResponse struct {
	Value float64 `xml:"value"`
}

type playerStatsResponse struct {
	Stats []statResponse `xml:"stats>stat"`
}

// statResponse values arrive as strings; percentages like ".458" included.
type statResponse struct {
	StatID int    `xml:"stat_id"`
	Value  string `xml:"value"`
}
