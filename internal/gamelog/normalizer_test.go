package gamelog

import (
	"testing"
)

func TestParseMinutes(t *testing.T) {
	cases := map[string]float64{
		"34:30":   34.5,
		"12:00":   12,
		"0:45":    0.75,
		"28":      28,
		"28.5":    28.5,
		"":        0,
		"DNP":     0,
		"bad:sec": 0,
		":30":     0.5,
	}

	for input, expected := range cases {
		if got := ParseMinutes(input); got != expected {
			t.Fatalf("ParseMinutes(%q) = %v, expected %v", input, got, expected)
		}
	}
}

func TestNormalizeSortsAscendingByDate(t *testing.T) {
	records := Normalize([]RawEntry{
		{Date: "2024-01-10", Minutes: "30:00"},
		{Date: "2024-01-02", Minutes: "24:30"},
		{Date: "2024-01-05", Minutes: "18"},
	})

	if len(records) != 3 {
		t.Fatalf("expected 3 records, got %d", len(records))
	}
	for i := 1; i < len(records); i++ {
		if records[i].Date.Before(records[i-1].Date) {
			t.Fatalf("records out of order at %d: %v", i, records)
		}
	}
	if records[0].Minutes != 24.5 {
		t.Fatalf("expected earliest game minutes 24.5, got %v", records[0].Minutes)
	}
}

func TestNormalizeDropsUnparseableDates(t *testing.T) {
	records := Normalize([]RawEntry{
		{Date: "not a date", Minutes: "30:00"},
		{Date: "Jan 2, 2024", Minutes: "bogus"},
		{Date: "", Minutes: "12:00"},
	})

	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(records))
	}
	if records[0].Minutes != 0 {
		t.Fatalf("expected unparseable minutes to degrade to 0, got %v", records[0].Minutes)
	}
}

func TestNormalizeEmptyInput(t *testing.T) {
	if got := Normalize(nil); len(got) != 0 {
		t.Fatalf("expected empty output, got %v", got)
	}
}
