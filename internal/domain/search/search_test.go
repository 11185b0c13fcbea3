package search_test

import (
	"encoding/json"
	"testing"

	"github.com/heavenike02/sdg-showcase-3/internal/domain/model"
	"github.com/heavenike02/sdg-showcase-3/internal/domain/search"
	. "github.com/smartystreets/goconvey/convey"
)

func population() []model.ResearcherRecord {
	return []model.ResearcherRecord{
		{
			ID:        "r1",
			FirstName: "Aoife",
			LastName:  "Byrne",
			Title:     "Professor of Marine Biology",
			Targets:   json.RawMessage(`{"14": ["1", "2"]}`),
			Tags:      []string{"oceans", "biodiversity"},
		},
		{
			ID:         "r2",
			FirstName:  "Tomas",
			LastName:   "Novak",
			Title:      "Lecturer in Climate Science",
			University: "Coastal University",
			Targets:    json.RawMessage(`["13.2", "13.3"]`),
			Tags:       []string{"climate"},
		},
		{
			ID:         "r3",
			FirstName:  "Priya",
			LastName:   "Sharma",
			Objectives: "Circular economy and decent work.",
			Targets:    json.RawMessage(`["8.5", "12.2"]`),
			Tags:       []string{"policy", "oceans"},
		},
		{
			ID:        "r4",
			FirstName: "David",
			LastName:  "Klein",
			Targets:   json.RawMessage(`{not json`),
		},
	}
}

func ids(records []model.ResearcherRecord) []string {
	out := make([]string, len(records))
	for i, r := range records {
		out[i] = r.ID
	}
	return out
}

func TestParseFilter(t *testing.T) {
	Convey("Given raw filter parameters", t, func() {
		Convey("Then empty and all mean everything", func() {
			f, ok := search.ParseFilter("")
			So(ok, ShouldBeTrue)
			So(f, ShouldEqual, search.FilterAll)

			f, ok = search.ParseFilter("all")
			So(ok, ShouldBeTrue)
			So(f, ShouldEqual, search.FilterAll)
		})

		Convey("Then the category names parse case-insensitively", func() {
			f, ok := search.ParseFilter(" Marine ")
			So(ok, ShouldBeTrue)
			So(f, ShouldEqual, search.FilterMarine)

			f, ok = search.ParseFilter("ECONOMIC")
			So(ok, ShouldBeTrue)
			So(f, ShouldEqual, search.FilterEconomic)
		})

		Convey("Then an unknown name is rejected", func() {
			_, ok := search.ParseFilter("terrestrial")
			So(ok, ShouldBeFalse)
		})
	})
}

func TestApply(t *testing.T) {
	Convey("Given a researcher population", t, func() {
		records := population()

		Convey("When no stage is active", func() {
			out := search.Apply(records, search.Params{})

			Convey("Then everything passes in store order", func() {
				So(ids(out), ShouldResemble, []string{"r1", "r2", "r3", "r4"})
			})
		})

		Convey("When filtering by free text", func() {
			Convey("Then names match case-insensitively", func() {
				out := search.Apply(records, search.Params{Query: "aoife"})
				So(ids(out), ShouldResemble, []string{"r1"})
			})
			Convey("Then titles, institutions and objectives are searched", func() {
				So(ids(search.Apply(records, search.Params{Query: "climate"})), ShouldResemble, []string{"r2"})
				So(ids(search.Apply(records, search.Params{Query: "coastal"})), ShouldResemble, []string{"r2"})
				So(ids(search.Apply(records, search.Params{Query: "decent work"})), ShouldResemble, []string{"r3"})
			})
			Convey("Then a miss yields an empty result", func() {
				So(search.Apply(records, search.Params{Query: "zzz"}), ShouldBeEmpty)
			})
		})

		Convey("When filtering by category", func() {
			Convey("Then marine selects SDG 14 researchers", func() {
				out := search.Apply(records, search.Params{Filter: search.FilterMarine})
				So(ids(out), ShouldResemble, []string{"r1"})
			})
			Convey("Then climate selects SDG 13 researchers", func() {
				out := search.Apply(records, search.Params{Filter: search.FilterClimate})
				So(ids(out), ShouldResemble, []string{"r2"})
			})
			Convey("Then economic is the union of SDG 8 and SDG 12", func() {
				out := search.Apply(records, search.Params{Filter: search.FilterEconomic})
				So(ids(out), ShouldResemble, []string{"r3"})
			})
			Convey("Then a record with malformed targets never matches a category", func() {
				for _, f := range []search.Filter{search.FilterMarine, search.FilterClimate, search.FilterEconomic} {
					out := search.Apply(records, search.Params{Filter: f})
					So(ids(out), ShouldNotContain, "r4")
				}
			})
		})

		Convey("When filtering by target id", func() {
			Convey("Then exact declared targets match", func() {
				out := search.Apply(records, search.Params{TargetID: "13.2"})
				So(ids(out), ShouldResemble, []string{"r2"})
			})
			Convey("Then goal-map shapes match their synthesized ids", func() {
				out := search.Apply(records, search.Params{TargetID: "14.1"})
				So(ids(out), ShouldResemble, []string{"r1"})
			})
		})

		Convey("When stages combine", func() {
			Convey("Then all stages intersect", func() {
				out := search.Apply(records, search.Params{
					Query:    "marine",
					Filter:   search.FilterMarine,
					TargetID: "14.2",
				})
				So(ids(out), ShouldResemble, []string{"r1"})

				none := search.Apply(records, search.Params{
					Query:  "marine",
					Filter: search.FilterClimate,
				})
				So(none, ShouldBeEmpty)
			})

			Convey("Then a filtered result is a subset of the unfiltered one", func() {
				all := ids(search.Apply(records, search.Params{}))
				filtered := ids(search.Apply(records, search.Params{Filter: search.FilterEconomic, Query: "p"}))
				for _, id := range filtered {
					So(all, ShouldContain, id)
				}
			})
		})
	})
}

func TestRelated(t *testing.T) {
	Convey("Given a subject researcher", t, func() {
		subject := model.ResearcherRecord{
			ID:      "subject",
			Targets: json.RawMessage(`["14.1", "13.2"]`),
			Tags:    []string{"oceans", "policy"},
		}
		records := []model.ResearcherRecord{
			subject,
			{ID: "both", Targets: json.RawMessage(`["14.1", "13.2"]`), Tags: []string{"oceans"}},
			{ID: "oneTarget", Targets: json.RawMessage(`["13.2"]`), Tags: []string{"policy"}},
			{ID: "tagsOnly", Tags: []string{"policy", "oceans"}},
			{ID: "noOverlap", Targets: json.RawMessage(`["7.2"]`), Tags: []string{"energy"}},
		}

		Convey("When ranking the population", func() {
			out := search.Related(subject, records, 10)

			Convey("Then overlap score orders the result", func() {
				So(ids(out), ShouldResemble, []string{"both", "oneTarget", "tagsOnly"})
			})

			Convey("Then the subject itself is excluded", func() {
				So(ids(out), ShouldNotContain, "subject")
			})

			Convey("Then zero-overlap researchers are excluded", func() {
				So(ids(out), ShouldNotContain, "noOverlap")
			})
		})

		Convey("When ties occur", func() {
			out := search.Related(subject, records, 10)

			Convey("Then store order breaks the tie", func() {
				// oneTarget and tagsOnly both score 2; oneTarget comes first
				// in the store.
				So(ids(out)[1], ShouldEqual, "oneTarget")
				So(ids(out)[2], ShouldEqual, "tagsOnly")
			})
		})

		Convey("When a limit applies", func() {
			out := search.Related(subject, records, 1)
			So(ids(out), ShouldResemble, []string{"both"})
		})

		Convey("When the limit is zero or negative", func() {
			So(search.Related(subject, records, 0), ShouldBeEmpty)
			So(search.Related(subject, records, -1), ShouldBeEmpty)
		})
	})
}
