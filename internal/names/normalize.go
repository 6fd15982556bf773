// Package names provides player-name normalization for cross-source matching.
package names

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// Normalize lowercases, strips diacritics, and collapses whitespace so the
// same player spelled differently across sources keys identically.
func Normalize(s string) string {
	if s == "" {
		return ""
	}
	s = stripDiacritics(s)
	s = strings.ToLower(strings.TrimSpace(s))
	return collapseWhitespace(s)
}

// Candidates returns the lookup variants for a full name: the
// whitespace-collapsed original, then a period-stripped form when it
// differs (e.g. "C.J. McCollum" -> "CJ McCollum").
func Candidates(fullName string) []string {
	text := collapseWhitespace(strings.TrimSpace(fullName))
	if text == "" {
		return nil
	}
	candidates := []string{text}
	if stripped := strings.ReplaceAll(text, ".", ""); stripped != text {
		candidates = append(candidates, stripped)
	}
	return candidates
}

func stripDiacritics(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range norm.NFD.String(s) {
		if !unicode.Is(unicode.Mn, r) { // Mn = Mark, Nonspacing (combining accents)
			b.WriteRune(r)
		}
	}
	return b.String()
}

func collapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
