// Package target normalizes the loosely-typed targets data stored per
// researcher into canonical SDG target identifiers and answers membership
// queries against them. Stored targets arrive in several shapes (JSON strings,
// bare arrays, arrays of impact objects, goal-keyed maps); everything here is
// total: bad input degrades to an empty result, never an error.
package target

import (
	"strconv"
	"strings"
)

// Impact values for Target annotations.
const (
	ImpactPositive = "positive"
	ImpactNegative = "negative"

	DirectionDirect   = "direct"
	DirectionIndirect = "indirect"
)

// Target is the canonical representation of one declared SDG target,
// optionally annotated with impact metadata. Empty impact fields mean no
// annotation was stored; no direction or polarity is ever assumed.
type Target struct {
	TargetID        string `json:"targetId"`
	ImpactType      string `json:"impactType,omitempty"`
	ImpactDirection string `json:"impactDirection,omitempty"`
	Evidence        string `json:"evidence,omitempty"`
}

// SDG returns the goal number of a canonical target id, or 0 when the part
// before the first dot does not parse as a number.
func (t Target) SDG() int {
	prefix, _, _ := strings.Cut(t.TargetID, ".")
	n, err := strconv.Atoi(strings.TrimSpace(prefix))
	if err != nil || n < 0 {
		return 0
	}
	return n
}

// PrimarySDG returns the goal number of the first target whose id parses,
// in list order, or 0 when none does. List order is storage order; no
// numeric minimum is taken.
func PrimarySDG(ts []Target) int {
	for _, t := range ts {
		if n := t.SDG(); n > 0 {
			return n
		}
	}
	return 0
}

// SDGs returns the distinct goal numbers of the given targets, preserving
// first-seen order.
func SDGs(ts []Target) []int {
	var out []int
	seen := make(map[int]struct{}, len(ts))
	for _, t := range ts {
		n := t.SDG()
		if n == 0 {
			continue
		}
		if _, ok := seen[n]; ok {
			continue
		}
		seen[n] = struct{}{}
		out = append(out, n)
	}
	return out
}
