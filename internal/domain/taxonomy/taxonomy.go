// Package taxonomy holds the static UN Sustainable Development Goal
// reference data: 17 goals, each with its published sub-targets, official
// color and canonical source URL. The data is compiled in and never mutated
// at runtime; access goes through read-only lookup helpers.
package taxonomy

import (
	"strconv"
	"strings"
)

// Target is one published sub-objective of a goal. The ID is always
// "<goal>.<subtarget>" where the subtarget may be a digit or a letter.
type Target struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	URL  string `json:"url"`
}

// Goal is one of the 17 SDGs.
type Goal struct {
	ID      int      `json:"id"`
	Name    string   `json:"name"`
	Color   string   `json:"color"`
	URL     string   `json:"url"`
	Targets []Target `json:"targets"`
}

// fallbackColor is used for SDG numbers outside 1..17.
const fallbackColor = "#777777"

// Goals returns all 17 goals in numeric order. The returned slice is a copy;
// callers may reorder it freely.
func Goals() []Goal {
	out := make([]Goal, len(goals))
	copy(out, goals)
	return out
}

// GoalByID returns the goal with the given id, or false when id is outside
// the taxonomy.
func GoalByID(id int) (Goal, bool) {
	if id < 1 || id > len(goals) {
		return Goal{}, false
	}
	return goals[id-1], true
}

// TargetByID resolves a fully-qualified target id such as "13.B" to its goal
// and target. Unknown sub-target codes resolve the goal but not the target.
func TargetByID(id string) (Goal, Target, bool) {
	prefix, _, found := strings.Cut(id, ".")
	if !found {
		return Goal{}, Target{}, false
	}
	n, err := strconv.Atoi(prefix)
	if err != nil {
		return Goal{}, Target{}, false
	}
	goal, ok := GoalByID(n)
	if !ok {
		return Goal{}, Target{}, false
	}
	for _, t := range goal.Targets {
		if t.ID == id {
			return goal, t, true
		}
	}
	return goal, Target{}, false
}

// ColorFor returns the official color for an SDG number, or a neutral gray
// for numbers outside the taxonomy.
func ColorFor(sdg int) string {
	if g, ok := GoalByID(sdg); ok {
		return g.Color
	}
	return fallbackColor
}
