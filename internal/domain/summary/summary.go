// Package summary aggregates per-SDG and per-target researcher counts across
// the whole researcher population. The scan is recomputed from scratch on
// every request; at the expected population size (tens to low hundreds of
// researchers) that is cheaper than keeping an incremental counter correct.
package summary

import (
	"sort"
	"strconv"
	"strings"

	"github.com/heavenike02/sdg-showcase-3/internal/domain/model"
	"github.com/heavenike02/sdg-showcase-3/internal/domain/target"
)

// TargetCount is the number of distinct researchers declaring one target.
type TargetCount struct {
	TargetID        string `json:"targetId"`
	ResearcherCount int    `json:"researcherCount"`
}

// SDGSummary aggregates one goal: how many distinct researchers touch it and
// per-target breakdowns.
type SDGSummary struct {
	SDGID           int           `json:"sdgId"`
	ResearcherCount int           `json:"researcherCount"`
	TargetCounts    []TargetCount `json:"targetCounts"`
}

// Stats reports what a Summarize pass saw, for diagnostics.
type Stats struct {
	Records        int // records scanned
	TargetMentions int // canonical targets counted
	Skipped        int // entries dropped for missing dots or unparsable goal numbers
}

// Summarize scans every record once and counts distinct contributing
// researchers per SDG and per target. A researcher listing the same SDG via
// several sub-targets counts once toward the SDG and once per distinct
// sub-target. Invalid entries are skipped, never fatal.
//
// Output order is insertion order of first-seen SDG, not numeric order;
// callers wanting numeric order sort explicitly (see SortByID).
func Summarize(records []model.ResearcherRecord) ([]SDGSummary, Stats) {
	stats := Stats{Records: len(records)}

	type sdgAcc struct {
		summary     *SDGSummary
		researchers map[string]struct{}
		targetIdx   map[string]int
		perTarget   map[string]map[string]struct{}
	}
	var order []int
	acc := make(map[int]*sdgAcc)

	for _, rec := range records {
		// Impact annotations are irrelevant to counting; plain Normalize
		// avoids decoding the assessment blob for every record.
		for _, t := range target.Normalize(rec.Targets) {
			if !strings.Contains(t.TargetID, ".") {
				stats.Skipped++
				continue
			}
			prefix, _, _ := strings.Cut(t.TargetID, ".")
			sdgID, err := strconv.Atoi(strings.TrimSpace(prefix))
			if err != nil || sdgID <= 0 {
				stats.Skipped++
				continue
			}
			stats.TargetMentions++

			a, ok := acc[sdgID]
			if !ok {
				a = &sdgAcc{
					summary:     &SDGSummary{SDGID: sdgID},
					researchers: make(map[string]struct{}),
					targetIdx:   make(map[string]int),
					perTarget:   make(map[string]map[string]struct{}),
				}
				acc[sdgID] = a
				order = append(order, sdgID)
			}

			if _, seen := a.researchers[rec.ID]; !seen {
				a.researchers[rec.ID] = struct{}{}
				a.summary.ResearcherCount++
			}

			idx, ok := a.targetIdx[t.TargetID]
			if !ok {
				idx = len(a.summary.TargetCounts)
				a.targetIdx[t.TargetID] = idx
				a.summary.TargetCounts = append(a.summary.TargetCounts, TargetCount{TargetID: t.TargetID})
				a.perTarget[t.TargetID] = make(map[string]struct{})
			}
			if _, seen := a.perTarget[t.TargetID][rec.ID]; !seen {
				a.perTarget[t.TargetID][rec.ID] = struct{}{}
				a.summary.TargetCounts[idx].ResearcherCount++
			}
		}
	}

	out := make([]SDGSummary, 0, len(order))
	for _, id := range order {
		out = append(out, *acc[id].summary)
	}
	return out, stats
}

// SortByID orders summaries by ascending SDG number, in place.
func SortByID(summaries []SDGSummary) {
	sort.Slice(summaries, func(i, j int) bool {
		return summaries[i].SDGID < summaries[j].SDGID
	})
}
