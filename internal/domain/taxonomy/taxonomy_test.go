package taxonomy_test

import (
	"strconv"
	"strings"
	"testing"

	"github.com/heavenike02/sdg-showcase-3/internal/domain/taxonomy"
	. "github.com/smartystreets/goconvey/convey"
)

func TestGoals(t *testing.T) {
	Convey("Given the compiled-in goal data", t, func() {
		goals := taxonomy.Goals()

		Convey("Then all 17 goals are present in numeric order", func() {
			So(goals, ShouldHaveLength, 17)
			for i, g := range goals {
				So(g.ID, ShouldEqual, i+1)
			}
		})

		Convey("Then every goal carries a name, color and source URL", func() {
			for _, g := range goals {
				So(g.Name, ShouldNotBeEmpty)
				So(g.Color, ShouldStartWith, "#")
				So(g.Color, ShouldHaveLength, 7)
				So(g.URL, ShouldStartWith, "https://sdgs.un.org/goals/")
			}
		})

		Convey("Then every target id is prefixed by its goal number", func() {
			for _, g := range goals {
				So(g.Targets, ShouldNotBeEmpty)
				for _, tgt := range g.Targets {
					goal, _, found := strings.Cut(tgt.ID, ".")
					So(found, ShouldBeTrue)
					So(goal, ShouldEqual, strconv.Itoa(g.ID))
					So(tgt.Name, ShouldNotBeEmpty)
				}
			}
		})

		Convey("Then the returned slice is a copy", func() {
			goals[0].Name = "mutated"
			So(taxonomy.Goals()[0].Name, ShouldNotEqual, "mutated")
		})
	})
}

func TestLookups(t *testing.T) {
	Convey("Given goal and target lookups", t, func() {
		Convey("When resolving goals by id", func() {
			g, ok := taxonomy.GoalByID(14)
			So(ok, ShouldBeTrue)
			So(g.Name, ShouldEqual, "Life Below Water")

			Convey("Then out-of-range ids miss", func() {
				_, ok := taxonomy.GoalByID(0)
				So(ok, ShouldBeFalse)
				_, ok = taxonomy.GoalByID(18)
				So(ok, ShouldBeFalse)
			})
		})

		Convey("When resolving a fully-qualified target id", func() {
			g, tgt, ok := taxonomy.TargetByID("14.1")
			So(ok, ShouldBeTrue)
			So(g.ID, ShouldEqual, 14)
			So(tgt.ID, ShouldEqual, "14.1")

			Convey("Then an unknown sub-target still resolves the goal", func() {
				g, tgt, ok := taxonomy.TargetByID("14.99")
				So(ok, ShouldBeFalse)
				So(g.ID, ShouldEqual, 14)
				So(tgt.ID, ShouldBeEmpty)
			})

			Convey("Then a bare number or junk does not resolve", func() {
				_, _, ok := taxonomy.TargetByID("14")
				So(ok, ShouldBeFalse)
				_, _, ok = taxonomy.TargetByID("x.1")
				So(ok, ShouldBeFalse)
			})
		})

		Convey("When asking for colors", func() {
			So(taxonomy.ColorFor(13), ShouldEqual, "#3F7E44")
			So(taxonomy.ColorFor(1), ShouldEqual, "#E5243B")

			Convey("Then unknown numbers get the neutral fallback", func() {
				So(taxonomy.ColorFor(0), ShouldEqual, "#777777")
				So(taxonomy.ColorFor(42), ShouldEqual, "#777777")
			})
		})
	})
}
