// Package search filters the researcher population by free text, SDG
// category and specific target id. All stages intersect and none reorders:
// results keep whatever order the backing store returned.
package search

import (
	"strings"

	"github.com/heavenike02/sdg-showcase-3/internal/domain/model"
	"github.com/heavenike02/sdg-showcase-3/internal/domain/target"
)

// Filter names a category filter accepted by the search entry point.
type Filter string

// Accepted category filters. Each maps to a bare-SDG membership test:
// marine is SDG 14, climate is SDG 13, economic is SDG 8 or 12.
const (
	FilterAll      Filter = "all"
	FilterMarine   Filter = "marine"
	FilterClimate  Filter = "climate"
	FilterEconomic Filter = "economic"
)

// ParseFilter validates a raw filter parameter. Empty means all.
func ParseFilter(raw string) (Filter, bool) {
	switch Filter(strings.ToLower(strings.TrimSpace(raw))) {
	case "", FilterAll:
		return FilterAll, true
	case FilterMarine:
		return FilterMarine, true
	case FilterClimate:
		return FilterClimate, true
	case FilterEconomic:
		return FilterEconomic, true
	default:
		return "", false
	}
}

// Params carries the three optional search stages. Zero values disable a
// stage.
type Params struct {
	Query    string
	Filter   Filter
	TargetID string
}

// Apply runs the search pipeline over records. Stages are ANDed:
//
//  1. case-insensitive substring match across name, title, institution,
//     school and objectives; empty query matches everything
//  2. category filter via the target matcher
//  3. specific target-id filter via the target matcher
func Apply(records []model.ResearcherRecord, p Params) []model.ResearcherRecord {
	out := make([]model.ResearcherRecord, 0, len(records))
	for _, rec := range records {
		if !matchesText(rec, p.Query) {
			continue
		}
		// Normalize lazily: text-only searches never touch the targets blob.
		var targets []target.Target
		if p.Filter != "" && p.Filter != FilterAll || p.TargetID != "" {
			targets = target.Normalize(rec.Targets)
		}
		if !matchesFilter(targets, p.Filter) {
			continue
		}
		if p.TargetID != "" && !target.Matches(targets, p.TargetID) {
			continue
		}
		out = append(out, rec)
	}
	return out
}

// matchesText checks the free-text stage against every searchable field.
func matchesText(rec model.ResearcherRecord, query string) bool {
	query = strings.TrimSpace(query)
	if query == "" {
		return true
	}
	q := strings.ToLower(query)
	for _, field := range []string{
		rec.FirstName,
		rec.LastName,
		rec.Title,
		rec.University,
		rec.UniversitySchool,
		rec.Objectives,
	} {
		if strings.Contains(strings.ToLower(field), q) {
			return true
		}
	}
	return false
}

// matchesFilter maps a category filter to bare-SDG membership tests.
func matchesFilter(targets []target.Target, f Filter) bool {
	switch f {
	case FilterMarine:
		return target.Matches(targets, "14")
	case FilterClimate:
		return target.Matches(targets, "13")
	case FilterEconomic:
		return target.Matches(targets, "8") || target.Matches(targets, "12")
	default:
		return true
	}
}
