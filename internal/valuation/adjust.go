package valuation

import "yahoo-fantasy-assistant/internal/domain"

// minutesFactorFloor keeps the reduced-minutes penalty from collapsing a
// high-risk player's value toward zero on its own.
const minutesFactorFloor = 0.75

const minutesPenaltySlope = 0.35

// Adjustment is the availability-adjusted view of a fantasy value.
type Adjustment struct {
	InjuryRiskProbability    float64
	AvailabilityProbability  float64
	Source                   domain.RiskSource
	RiskAdjustedFantasyValue float64
}

// ApplyAvailabilityAdjustment depresses a fantasy value twice: once for the
// missed-game probability and once for reduced minutes when playing, the
// latter floored at minutesFactorFloor.
func ApplyAvailabilityAdjustment(fantasyValue float64, risk domain.RiskAssessment) Adjustment {
	injuryRisk := risk.InjuryRiskProbability

	minutesFactor := 1 - minutesPenaltySlope*injuryRisk
	if minutesFactor < minutesFactorFloor {
		minutesFactor = minutesFactorFloor
	}

	source := risk.Source
	if source == "" {
		source = domain.SourceDefault
	}

	return Adjustment{
		InjuryRiskProbability:    domain.Round4(injuryRisk),
		AvailabilityProbability:  domain.Round4(1 - injuryRisk),
		Source:                   source,
		RiskAdjustedFantasyValue: domain.Round2(fantasyValue * (1 - injuryRisk) * minutesFactor),
	}
}
