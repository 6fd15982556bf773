package valuation

import (
	"testing"

	"yahoo-fantasy-assistant/internal/domain"
)

func TestCalcFantasyValueWorkedExample(t *testing.T) {
	stats := domain.StatLine{
		FGPct:     0.5,
		FTPct:     0.8,
		ThreePM:   2,
		Points:    20,
		Rebounds:  5,
		Assists:   4,
		Steals:    1,
		Blocks:    0.5,
		Turnovers: 2,
	}
	if got := CalcFantasyValue(stats); got != 36.2 {
		t.Fatalf("expected 36.2, got %v", got)
	}
}

func TestCalcFantasyValueZeroLine(t *testing.T) {
	if got := CalcFantasyValue(domain.StatLine{}); got != 0 {
		t.Fatalf("expected 0 for empty line, got %v", got)
	}
}

func TestCalcFantasyValueDeterministic(t *testing.T) {
	stats := domain.StatLine{Points: 11.7, Turnovers: 3.3}
	first := CalcFantasyValue(stats)
	for i := 0; i < 10; i++ {
		if got := CalcFantasyValue(stats); got != first {
			t.Fatalf("expected deterministic output, got %v then %v", first, got)
		}
	}
}

func TestAdjustmentNeverIncreasesValue(t *testing.T) {
	for _, risk := range []float64{0, 0.02, 0.2, 0.55, 0.95, 1} {
		adj := ApplyAvailabilityAdjustment(36.2, domain.RiskAssessment{
			InjuryRiskProbability: risk,
			Source:                domain.SourceDefault,
		})
		if adj.RiskAdjustedFantasyValue > 36.2 {
			t.Fatalf("risk %v increased value to %v", risk, adj.RiskAdjustedFantasyValue)
		}
	}
}

func TestAdjustmentMinutesFactorFloor(t *testing.T) {
	// risk=1 gives 1-0.35 = 0.65, floored to 0.75; adjusted value is 0 anyway.
	adj := ApplyAvailabilityAdjustment(10, domain.RiskAssessment{InjuryRiskProbability: 1})
	if adj.RiskAdjustedFantasyValue != 0 {
		t.Fatalf("expected 0 at full risk, got %v", adj.RiskAdjustedFantasyValue)
	}

	// risk=0.55: factor = 1-0.1925 = 0.8075, above the floor.
	adj = ApplyAvailabilityAdjustment(36.2, domain.RiskAssessment{
		InjuryRiskProbability: 0.55,
		Source:                domain.SourceDefault,
	})
	expected := domain.Round2(36.2 * 0.45 * 0.8075)
	if adj.RiskAdjustedFantasyValue != expected {
		t.Fatalf("expected %v, got %v", expected, adj.RiskAdjustedFantasyValue)
	}
	if adj.AvailabilityProbability != 0.45 {
		t.Fatalf("expected availability 0.45, got %v", adj.AvailabilityProbability)
	}
}

func TestAdjustmentDefaultsSource(t *testing.T) {
	adj := ApplyAvailabilityAdjustment(5, domain.RiskAssessment{InjuryRiskProbability: 0.2})
	if adj.Source != domain.SourceDefault {
		t.Fatalf("expected default source, got %s", adj.Source)
	}
}
