package app

import (
	"regexp"
	"strings"
)

// maxTracedQueryLength caps the db.statement span attribute. Bulk
// inserts can otherwise blow up span payloads.
const maxTracedQueryLength = 512

var whitespaceRuns = regexp.MustCompile(`\s+`)

// formatDBQueryForTrace flattens a SQL statement onto one line and
// truncates it to maxTracedQueryLength.
func formatDBQueryForTrace(query string) string {
	query = strings.TrimSpace(query)
	if query == "" {
		return query
	}

	flat := whitespaceRuns.ReplaceAllString(query, " ")
	if len(flat) > maxTracedQueryLength {
		flat = flat[:maxTracedQueryLength] + "..."
	}

	return flat
}
