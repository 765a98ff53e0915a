package biz

import "strings"

// MatchesQuery reports whether a record, given as its string-coerced fields
// keyed by JSON name, satisfies a query-by-example. Every query key must name a
// field whose value contains the query value; an empty query matches anything.
func MatchesQuery(fields map[string]string, query map[string]string) bool {
	for key, want := range query {
		got, ok := fields[key]
		if !ok || !strings.Contains(got, want) {
			return false
		}
	}
	return true
}
