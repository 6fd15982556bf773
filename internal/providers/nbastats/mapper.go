package nbastats

import (
	"fmt"
	"strings"

	"yahoo-fantasy-assistant/internal/gamelog"
	"yahoo-fantasy-assistant/internal/providers"
)

func columnIndex(headers []string, name string) int {
	for i, header := range headers {
		if header == name {
			return i
		}
	}
	return -1
}

// stringAt renders a row cell as a string. Cells arrive as strings or
// numbers depending on the column.
func stringAt(row []any, idx int) string {
	if idx < 0 || idx >= len(row) || row[idx] == nil {
		return ""
	}
	switch v := row[idx].(type) {
	case string:
		return v
	case float64:
		return strings.TrimSuffix(fmt.Sprintf("%f", v), ".000000")
	default:
		return fmt.Sprintf("%v", v)
	}
}

func intAt(row []any, idx int) int {
	if idx < 0 || idx >= len(row) {
		return 0
	}
	if v, ok := row[idx].(float64); ok {
		return int(v)
	}
	return 0
}

func mapGameLog(set *resultSet) []gamelog.RawEntry {
	if set == nil {
		return nil
	}
	dateIdx := columnIndex(set.Headers, columnGameDate)
	minIdx := columnIndex(set.Headers, columnMinutes)

	entries := make([]gamelog.RawEntry, 0, len(set.RowSet))
	for _, row := range set.RowSet {
		entries = append(entries, gamelog.RawEntry{
			Date:    stringAt(row, dateIdx),
			Minutes: stringAt(row, minIdx),
		})
	}
	return entries
}

func mapIdentities(set *resultSet) []providers.Identity {
	if set == nil {
		return nil
	}
	idIdx := columnIndex(set.Headers, columnPersonID)
	nameIdx := columnIndex(set.Headers, columnPlayerName)

	identities := make([]providers.Identity, 0, len(set.RowSet))
	for _, row := range set.RowSet {
		id := intAt(row, idIdx)
		name := strings.TrimSpace(stringAt(row, nameIdx))
		if id == 0 || name == "" {
			continue
		}
		identities = append(identities, providers.Identity{ID: id, FullName: name})
	}
	return identities
}
