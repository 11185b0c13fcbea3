// Command seed loads a set of sample researchers into the assessments table
// so a fresh database has something to serve. Records cycle through every
// raw target shape the normalizer accepts, which makes the seeded data a
// useful smoke test for the whole read path.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/google/uuid"

	"github.com/heavenike02/sdg-showcase-3/internal/adapters/repository"
	"github.com/heavenike02/sdg-showcase-3/internal/domain/model"
	"github.com/heavenike02/sdg-showcase-3/internal/domain/taxonomy"
	"github.com/heavenike02/sdg-showcase-3/pkg/logger"
)

const (
	defaultCount   = 25
	defaultTimeout = 30 * time.Second
)

var firstNames = []string{"Aoife", "Liam", "Maria", "Chen", "Fatima", "Tomas", "Ngozi", "Elena", "David", "Priya"}

var lastNames = []string{"Byrne", "O'Connor", "Silva", "Wang", "Hassan", "Novak", "Okafor", "Rossi", "Klein", "Sharma"}

var titles = []string{
	"Professor of Marine Biology",
	"Senior Lecturer in Climate Science",
	"Research Fellow in Sustainable Economics",
	"Associate Professor of Public Health",
	"Lecturer in Renewable Energy Systems",
}

var schools = []string{
	"School of Natural Sciences",
	"School of Engineering",
	"Business School",
	"School of Medicine",
	"School of Social Sciences",
}

var tagPool = []string{
	"oceans", "climate", "energy", "health", "education",
	"biodiversity", "policy", "water", "agriculture", "cities",
}

func main() {
	var (
		dsn     = flag.String("dsn", os.Getenv("SHOWCASE_DATABASE_URL"), "Postgres connection string")
		count   = flag.Int("count", defaultCount, "Number of sample researchers to insert")
		schema  = flag.Bool("schema", false, "Create the assessments table before seeding")
		timeout = flag.Duration("timeout", defaultTimeout, "Overall timeout")
	)
	flag.Parse()

	if err := logger.Init(); err != nil {
		os.Stderr.WriteString("failed to initialize logging: " + err.Error() + "\n")
		os.Exit(1)
	}
	log := logger.Named("seed")

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()
	ctx, cancelTimeout := context.WithTimeout(ctx, *timeout)
	defer cancelTimeout()

	if *dsn == "" {
		log.Error(ctx, "no connection string; pass -dsn or set SHOWCASE_DATABASE_URL")
		os.Exit(1)
	}

	store, err := repository.NewPostgres(ctx, *dsn)
	if err != nil {
		log.Error(ctx, "connect failed", logger.Error(err))
		os.Exit(1)
	}
	defer store.Close()

	if *schema {
		if err := store.EnsureSchema(ctx); err != nil {
			log.Error(ctx, "schema creation failed", logger.Error(err))
			os.Exit(1)
		}
		log.Info(ctx, "schema ready")
	}

	inserted := 0
	for i := 0; i < *count; i++ {
		rec := sampleRecord(i)
		if err := store.Insert(ctx, rec); err != nil {
			log.Error(ctx, "insert failed", logger.String("id", rec.ID), logger.Error(err))
			os.Exit(1)
		}
		inserted++
	}
	log.Info(ctx, "seeding complete", logger.Int("inserted", inserted))
}

// sampleRecord builds one researcher. The index picks the raw target shape
// so all four stored encodings appear in the seeded set.
func sampleRecord(i int) model.ResearcherRecord {
	goals := taxonomy.Goals()
	g1 := goals[i%len(goals)]
	g2 := goals[(i+5)%len(goals)]
	t1 := g1.Targets[i%len(g1.Targets)].ID
	t2 := g2.Targets[(i+1)%len(g2.Targets)].ID

	first := firstNames[i%len(firstNames)]
	last := lastNames[(i/len(firstNames)+i)%len(lastNames)]

	rec := model.ResearcherRecord{
		ID:               uuid.NewString(),
		FirstName:        first,
		LastName:         last,
		Email:            fmt.Sprintf("%s.%s@example.edu", first, last),
		University:       "Sample University",
		UniversitySchool: schools[i%len(schools)],
		Title:            titles[i%len(titles)],
		Objectives:       "Research objectives focused on " + g1.Name + ".",
		Tags:             []string{tagPool[i%len(tagPool)], tagPool[(i+3)%len(tagPool)]},
		Targets:          encodeTargets(i, t1, t2),
		Publications:     samplePublications(first, last, g1.ID),
		Modules:          sampleModules(i, g1.ID),
	}
	if i%3 == 0 {
		rec.ImpactAssessment = sampleImpact(t1)
	}
	return rec
}

// encodeTargets cycles through the stored shapes: plain array, array of
// objects, goal map, and the double-encoded string form.
func encodeTargets(i int, t1, t2 string) json.RawMessage {
	switch i % 4 {
	case 0:
		raw, _ := json.Marshal([]string{t1, t2})
		return raw
	case 1:
		raw, _ := json.Marshal([]map[string]string{{"targetId": t1}, {"targetId": t2}})
		return raw
	case 2:
		g1, s1, _ := cutTarget(t1)
		g2, s2, _ := cutTarget(t2)
		m := map[string][]string{g1: {s1}}
		m[g2] = append(m[g2], s2)
		raw, _ := json.Marshal(m)
		return raw
	default:
		inner, _ := json.Marshal([]string{t1, t2})
		raw, _ := json.Marshal(string(inner))
		return raw
	}
}

func cutTarget(id string) (goal, sub string, ok bool) {
	for j := 0; j < len(id); j++ {
		if id[j] == '.' {
			return id[:j], id[j+1:], true
		}
	}
	return id, "", false
}

func samplePublications(first, last string, sdg int) json.RawMessage {
	pubs := []map[string]any{
		{
			"name":   "Field observations on goal " + strconv.Itoa(sdg),
			"author": first + " " + last + "-J. Collaborator",
			"link":   "https://doi.org/10.0000/example",
			"sdg":    strconv.Itoa(sdg),
		},
		{
			"name": "Untimed working paper",
		},
	}
	raw, _ := json.Marshal(pubs)
	return raw
}

func sampleModules(i, sdg int) json.RawMessage {
	if i%2 == 0 {
		raw, _ := json.Marshal(map[string]any{
			"teaching": []map[string]any{{
				"code":  fmt.Sprintf("SDG%d01", sdg),
				"title": "Sustainable Development in Practice",
				"sdgs":  []int{sdg},
			}},
			"projects": []map[string]any{{
				"title":   "Living Lab Pilot",
				"year":    "2024",
				"funding": "National Research Council",
			}},
		})
		return raw
	}
	raw, _ := json.Marshal([]map[string]any{{
		"moduleCode":        fmt.Sprintf("SUS%d20", sdg),
		"moduleName":        "Applied Sustainability Methods",
		"moduleDescription": "Cross-disciplinary methods module.",
		"sdgAlignments":     []map[string]string{{"sdg": strconv.Itoa(sdg), "alignment": "direct"}},
	}})
	return raw
}

func sampleImpact(targetID string) json.RawMessage {
	raw, _ := json.Marshal(model.ImpactAssessment{
		TargetImpacts: []model.TargetImpact{{
			TargetID:        targetID,
			ImpactType:      "positive",
			ImpactDirection: "direct",
			Evidence:        "Peer-reviewed outputs and pilot deployments.",
		}},
		Insights:        "Primary contribution concentrated on " + targetID + ".",
		RecommendedTags: []string{"impact"},
	})
	return raw
}
