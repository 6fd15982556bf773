package valuation

import (
	"context"
	"errors"
	"testing"

	"yahoo-fantasy-assistant/internal/domain"
	"yahoo-fantasy-assistant/internal/testutil"
)

func rosterLeague() *testutil.StubLeague {
	return &testutil.StubLeague{
		Rosters: map[string][]domain.Player{
			"418.l.1.t.1": {
				{PlayerID: 2, Name: "Cam Whitmore", Status: ""},
				{PlayerID: 1, Name: "Luka Doncic", Status: "DTD"},
			},
		},
		Stats: map[int]domain.StatLine{
			1: {Points: 30}, // 12.0
			2: {Points: 5},  // 2.0
		},
	}
}

func TestValuateRosterSortsByFantasyValue(t *testing.T) {
	svc := NewService(rosterLeague(), &testutil.StubRisk{}, nil)

	valuations, report, err := svc.ValuateRoster(context.Background(), "418.l.1.t.1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(valuations) != 2 {
		t.Fatalf("expected 2 valuations, got %d", len(valuations))
	}
	if valuations[0].Name != "Luka Doncic" || valuations[1].Name != "Cam Whitmore" {
		t.Fatalf("expected descending fantasy value, got %s then %s",
			valuations[0].Name, valuations[1].Name)
	}
	if valuations[0].FantasyValue != 12.0 {
		t.Fatalf("expected 12.0, got %v", valuations[0].FantasyValue)
	}
	if len(report.ByPlayerName) != 2 {
		t.Fatalf("expected a report entry per player, got %d", len(report.ByPlayerName))
	}
}

func TestValuateRosterAppliesRisk(t *testing.T) {
	risk := &testutil.StubRisk{
		Report: domain.RiskReport{
			ByPlayerName: map[string]domain.RiskAssessment{
				"Luka Doncic": {
					InjuryRiskProbability:   0.5,
					AvailabilityProbability: 0.5,
					Source:                  domain.SourceRandomForest,
				},
			},
		},
	}
	svc := NewService(rosterLeague(), risk, nil)

	valuations, _, err := svc.ValuateRoster(context.Background(), "418.l.1.t.1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	luka := valuations[0]
	if luka.InjuryRiskSource != domain.SourceRandomForest {
		t.Fatalf("expected model source, got %+v", luka)
	}
	// 12.0 * 0.5 availability * 0.825 minutes factor.
	if luka.RiskAdjustedFantasyValue != 4.95 {
		t.Fatalf("expected 4.95, got %v", luka.RiskAdjustedFantasyValue)
	}

	// No report entry means the zero assessment: full value retained.
	cam := valuations[1]
	if cam.InjuryRiskSource != domain.SourceDefault {
		t.Fatalf("expected default source for unassessed player, got %+v", cam)
	}
	if cam.RiskAdjustedFantasyValue != cam.FantasyValue {
		t.Fatalf("zero risk must keep full value, got %+v", cam)
	}
}

func TestValuateRosterDegradesOnStatFailure(t *testing.T) {
	league := rosterLeague()
	league.StatsErr = errors.New("yahoo down")
	svc := NewService(league, &testutil.StubRisk{}, nil)

	valuations, _, err := svc.ValuateRoster(context.Background(), "418.l.1.t.1")
	if err != nil {
		t.Fatalf("stat failure must not fail the valuation: %v", err)
	}
	for _, v := range valuations {
		if v.FantasyValue != 0 {
			t.Fatalf("expected zero value on stat failure, got %+v", v)
		}
	}
}

func TestValuateRosterFailsWithoutRoster(t *testing.T) {
	league := rosterLeague()
	league.RosterErr = errors.New("yahoo down")
	svc := NewService(league, &testutil.StubRisk{}, nil)

	if _, _, err := svc.ValuateRoster(context.Background(), "418.l.1.t.1"); err == nil {
		t.Fatalf("expected roster fetch error to surface")
	}
}

func TestRankByAdjustedDoesNotMutateInput(t *testing.T) {
	valuations := []domain.PlayerValuation{
		{Name: "A", FantasyValue: 10, RiskAdjustedFantasyValue: 2},
		{Name: "B", FantasyValue: 8, RiskAdjustedFantasyValue: 7},
	}

	ranked := RankByAdjusted(valuations)
	if ranked[0].Name != "B" {
		t.Fatalf("expected adjusted ordering, got %s", ranked[0].Name)
	}
	if valuations[0].Name != "A" {
		t.Fatalf("input slice must not be reordered")
	}
}

func TestSummarize(t *testing.T) {
	valuations := []domain.PlayerValuation{
		{Name: "Best", FantasyValue: 12},
		{Name: "Mid", FantasyValue: 6},
		{Name: "Worst", FantasyValue: 2},
	}

	summary := Summarize(valuations)
	if summary.HighestPlayer != "Best" || summary.HighestValue != 12 {
		t.Fatalf("unexpected highest: %+v", summary)
	}
	if summary.LowestPlayer != "Worst" || summary.LowestValue != 2 {
		t.Fatalf("unexpected lowest: %+v", summary)
	}
	if summary.AverageValue != 6.67 {
		t.Fatalf("expected average 6.67, got %v", summary.AverageValue)
	}
}

func TestSummarizeEmptyRoster(t *testing.T) {
	if got := Summarize(nil); got != (domain.RosterSummary{}) {
		t.Fatalf("expected zero summary, got %+v", got)
	}
}
