package target

import "strings"

// Matches reports whether any of the canonical targets satisfies the query.
// The query is either a bare SDG number ("14") or a full target id ("13.B").
// Rules in precedence order, first hit wins:
//
//  1. exact equality with a stored target id
//  2. query is a full target id and a stored id starts with it, covering
//     stored targets more specific than the requested one
//  3. query is a bare SDG number and a stored id's goal part equals it
//
// Category filters (marine, climate, economic) and target deep links share
// this matcher, so the precedence must not change.
func Matches(ts []Target, query string) bool {
	query = strings.TrimSpace(query)
	if query == "" {
		return false
	}
	fullID := strings.Contains(query, ".")

	for _, t := range ts {
		if t.TargetID == query {
			return true
		}
		if fullID && strings.HasPrefix(t.TargetID, query) {
			return true
		}
		if !fullID {
			if goal, _, _ := strings.Cut(t.TargetID, "."); goal == query {
				return true
			}
		}
	}
	return false
}
