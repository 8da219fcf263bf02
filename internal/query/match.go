package query

import "strings"

// MatchesName reports whether a student name matches a free-text query.
// The query is split on whitespace into lowercase tokens; a single
// token matches as a substring, multiple tokens must all appear
// somewhere in the name regardless of order. That way "first last" and
// "last first" both hit a "Last, First" formatted name without parsing
// the comma. An empty or all-whitespace query never matches.
func MatchesName(name, rawQuery string) bool {
	tokens := strings.Fields(strings.ToLower(rawQuery))
	if len(tokens) == 0 {
		return false
	}

	normalized := strings.ToLower(name)
	for _, token := range tokens {
		if !strings.Contains(normalized, token) {
			return false
		}
	}
	return true
}
