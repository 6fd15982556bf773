package domain

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestRiskSourceSerialization(t *testing.T) {
	payload, err := json.Marshal(RiskAssessment{
		InjuryRiskProbability:   0.55,
		AvailabilityProbability: 0.45,
		Source:                  SourceDefault,
	})
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	if !strings.Contains(string(payload), `"source":"default"`) {
		t.Fatalf("expected default source in payload, got %s", payload)
	}
}

func TestStatLineUsesCategoryKeys(t *testing.T) {
	payload, err := json.Marshal(StatLine{FGPct: 0.5, ThreePM: 2})
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	for _, key := range []string{`"FG%":0.5`, `"3PTM":2`, `"TO":0`} {
		if !strings.Contains(string(payload), key) {
			t.Fatalf("expected %s in payload, got %s", key, payload)
		}
	}
}

func TestRound2(t *testing.T) {
	cases := map[float64]float64{
		36.199999999: 36.2,
		-2.336:       -2.34,
		0:            0,
		3.14159:      3.14,
	}
	for input, expected := range cases {
		if got := Round2(input); got != expected {
			t.Fatalf("Round2(%v) = %v, expected %v", input, got, expected)
		}
	}
}

func TestRound4(t *testing.T) {
	if got := Round4(0.19250001); got != 0.1925 {
		t.Fatalf("expected 0.1925, got %v", got)
	}
}
