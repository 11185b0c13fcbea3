package search

import (
	"sort"

	"github.com/heavenike02/sdg-showcase-3/internal/domain/model"
	"github.com/heavenike02/sdg-showcase-3/internal/domain/target"
)

// Related ranks the rest of the population by similarity to the given record:
// the score is the number of shared canonical targets plus the number of
// shared tags. Zero-overlap records are excluded. Ties keep store order, so
// the ranking is stable across identical requests.
func Related(subject model.ResearcherRecord, records []model.ResearcherRecord, limit int) []model.ResearcherRecord {
	if limit <= 0 {
		return nil
	}

	subjectTargets := targetSet(subject)
	subjectTags := tagSet(subject.Tags)

	type scored struct {
		rec   model.ResearcherRecord
		score int
	}
	var candidates []scored
	for _, rec := range records {
		if rec.ID == subject.ID {
			continue
		}
		score := 0
		for id := range targetSet(rec) {
			if _, ok := subjectTargets[id]; ok {
				score++
			}
		}
		for _, tag := range rec.Tags {
			if _, ok := subjectTags[tag]; ok {
				score++
			}
		}
		if score > 0 {
			candidates = append(candidates, scored{rec: rec, score: score})
		}
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].score > candidates[j].score
	})
	if len(candidates) > limit {
		candidates = candidates[:limit]
	}
	out := make([]model.ResearcherRecord, len(candidates))
	for i, c := range candidates {
		out[i] = c.rec
	}
	return out
}

func targetSet(rec model.ResearcherRecord) map[string]struct{} {
	set := make(map[string]struct{})
	for _, t := range target.Normalize(rec.Targets) {
		set[t.TargetID] = struct{}{}
	}
	return set
}

func tagSet(tags []string) map[string]struct{} {
	set := make(map[string]struct{}, len(tags))
	for _, tag := range tags {
		set[tag] = struct{}{}
	}
	return set
}
