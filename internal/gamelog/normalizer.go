// Package gamelog normalizes raw per-player game histories into typed,
// date-ordered records.
package gamelog

import (
	"sort"
	"strconv"
	"strings"
	"time"

	"yahoo-fantasy-assistant/internal/timeutil"
)

// Record is one played game: its date and the minutes logged.
type Record struct {
	Date    time.Time
	Minutes float64
}

// RawEntry is a single upstream game entry before normalization. Date is
// whatever the feed sent; Minutes may be "MM:SS" text, a plain number, or
// empty.
type RawEntry struct {
	Date    string
	Minutes string
}

// Normalize turns raw entries into an ascending-by-date Record sequence.
// Entries without a parseable date are dropped; unparseable minutes degrade
// to 0. Never fails.
func Normalize(entries []RawEntry) []Record {
	records := make([]Record, 0, len(entries))
	for _, entry := range entries {
		date, err := timeutil.ParseGameDate(strings.TrimSpace(entry.Date))
		if err != nil {
			continue
		}
		records = append(records, Record{
			Date:    date,
			Minutes: ParseMinutes(entry.Minutes),
		})
	}
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].Date.Before(records[j].Date)
	})
	return records
}

// ParseMinutes converts an upstream minutes field to fractional minutes.
// "MM:SS" splits on the first colon with the seconds folded in as a minute
// fraction; anything else parses as a plain number. Failures yield 0.
func ParseMinutes(value string) float64 {
	text := strings.TrimSpace(value)
	if text == "" {
		return 0
	}
	if idx := strings.Index(text, ":"); idx >= 0 {
		minutes := toFloat(text[:idx])
		seconds := toFloat(text[idx+1:])
		return minutes + seconds/60
	}
	return toFloat(text)
}

func toFloat(value string) float64 {
	parsed, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil {
		return 0
	}
	return parsed
}
