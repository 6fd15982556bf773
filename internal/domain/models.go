package domain

// RiskSource identifies how an injury-risk probability was produced.
type RiskSource string

const (
	// SourceDefault marks a status-derived heuristic risk.
	SourceDefault RiskSource = "default"
	// SourceRandomForest marks a model-derived risk.
	SourceRandomForest RiskSource = "random_forest"
)

// Verdict is the outcome of a trade comparison from the caller's perspective.
type Verdict string

const (
	VerdictYourSide  Verdict = "your_side"
	VerdictOtherSide Verdict = "other_side"
	VerdictEven      Verdict = "even"
)

// Player is a rostered fantasy player as reported by the league source.
type Player struct {
	PlayerID          int      `json:"player_id"`
	Name              string   `json:"name"`
	EligiblePositions []string `json:"eligible_positions"`
	Status            string   `json:"status"`
}

// FreeAgent is an unrostered player surfaced by the league source.
type FreeAgent struct {
	PlayerID          int      `json:"player_id"`
	Name              string   `json:"name"`
	EligiblePositions []string `json:"eligible_positions"`
	PercentOwned      float64  `json:"percent_owned"`
}

// Team identifies a league team.
type Team struct {
	TeamKey string `json:"team_key"`
	Name    string `json:"name"`
}

// StatLine holds the season stat categories that feed the value formula.
// Missing or non-numeric upstream fields are mapped to zero at the provider
// boundary.
type StatLine struct {
	FGPct     float64 `json:"FG%"`
	FTPct     float64 `json:"FT%"`
	ThreePM   float64 `json:"3PTM"`
	Points    float64 `json:"PTS"`
	Rebounds  float64 `json:"REB"`
	Assists   float64 `json:"AST"`
	Steals    float64 `json:"ST"`
	Blocks    float64 `json:"BLK"`
	Turnovers float64 `json:"TO"`
}

// RiskAssessment is the availability outlook for one player for one query.
type RiskAssessment struct {
	InjuryRiskProbability   float64    `json:"injury_risk_probability"`
	AvailabilityProbability float64    `json:"availability_probability"`
	Source                  RiskSource `json:"source"`
}

// RiskReport carries per-player assessments plus training metadata.
type RiskReport struct {
	ByPlayerName map[string]RiskAssessment `json:"risk_by_player_name"`
	Trained      bool                      `json:"trained"`
	ModelRows    int                       `json:"model_rows"`
	Note         string                    `json:"note"`
}

// PlayerValuation is the full per-player output of roster valuation.
type PlayerValuation struct {
	PlayerID                 int        `json:"player_id"`
	Name                     string     `json:"name"`
	EligiblePositions        []string   `json:"eligible_positions"`
	Status                   string     `json:"status"`
	Stats                    StatLine   `json:"stats"`
	FantasyValue             float64    `json:"fantasy_value"`
	InjuryRiskProbability    float64    `json:"injury_risk_probability"`
	AvailabilityProbability  float64    `json:"availability_probability"`
	InjuryRiskSource         RiskSource `json:"injury_risk_source"`
	RiskAdjustedFantasyValue float64    `json:"risk_adjusted_fantasy_value"`
}

// TradePlayer is a resolved trade-side entry.
type TradePlayer struct {
	Name         string  `json:"name"`
	FantasyValue float64 `json:"fantasy_value"`
}

// TradeSide is one half of a proposed trade after name resolution.
type TradeSide struct {
	Players []TradePlayer `json:"players"`
	Missing []string      `json:"missing"`
	Total   float64       `json:"total"`
}

// TradeComparison is the verdict for a proposed trade.
type TradeComparison struct {
	TradeAway TradeSide `json:"trade_away"`
	TradeFor  TradeSide `json:"trade_for"`
	Delta     float64   `json:"delta"`
	Winner    Verdict   `json:"winner"`
}

// TradeIdea is a drop/add suggestion against the free-agent pool.
type TradeIdea struct {
	DropPlayer       string   `json:"drop_player"`
	DropValue        float64  `json:"drop_value"`
	AddPlayer        string   `json:"add_player"`
	AddValue         float64  `json:"add_value"`
	Improvement      float64  `json:"improvement"`
	SharedPositions  []string `json:"shared_positions"`
	OwnershipPercent float64  `json:"ownership_percent"`
}

// RosterSummary aggregates a valued roster for the summary endpoint.
type RosterSummary struct {
	HighestPlayer string  `json:"highest_player"`
	HighestValue  float64 `json:"highest_value"`
	LowestPlayer  string  `json:"lowest_player"`
	LowestValue   float64 `json:"lowest_value"`
	AverageValue  float64 `json:"average_value"`
}
