package timeutil

import "time"

// DateLayout defines the canonical date format (YYYY-MM-DD).
const DateLayout = "2006-01-02"

// upstreamLayouts are the date shapes seen in game-log feeds, most common first.
var upstreamLayouts = []string{
	DateLayout,
	"Jan 2, 2006",
	"Jan 02, 2006",
	time.RFC3339,
	"2006-01-02T15:04:05",
}

// ParseDate parses a YYYY-MM-DD date string.
func ParseDate(value string) (time.Time, error) {
	return time.Parse(DateLayout, value)
}

// FormatDate formats a time as YYYY-MM-DD in its current location.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// ParseGameDate parses an upstream game date in any of the known layouts.
func ParseGameDate(value string) (time.Time, error) {
	var lastErr error
	for _, layout := range upstreamLayouts {
		t, err := time.Parse(layout, value)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}

// WholeDaysBetween returns the number of whole calendar days from a to b.
func WholeDaysBetween(a, b time.Time) int {
	ad := time.Date(a.Year(), a.Month(), a.Day(), 0, 0, 0, 0, time.UTC)
	bd := time.Date(b.Year(), b.Month(), b.Day(), 0, 0, 0, 0, time.UTC)
	return int(bd.Sub(ad).Hours() / 24)
}
