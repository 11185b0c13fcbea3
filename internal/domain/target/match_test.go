package target_test

import (
	"testing"

	"github.com/heavenike02/sdg-showcase-3/internal/domain/target"
	. "github.com/smartystreets/goconvey/convey"
)

func TestMatches(t *testing.T) {
	Convey("Given a researcher's canonical targets", t, func() {
		ts := []target.Target{
			{TargetID: "14.2"},
			{TargetID: "13.B"},
			{TargetID: "8.5"},
		}

		Convey("When querying with a full target id", func() {
			Convey("Then an exact match hits", func() {
				So(target.Matches(ts, "14.2"), ShouldBeTrue)
				So(target.Matches(ts, "13.B"), ShouldBeTrue)
			})
			Convey("Then a sibling target of the same goal does not hit", func() {
				So(target.Matches(ts, "14.1"), ShouldBeFalse)
			})
			Convey("Then a stored id more specific than the query hits by prefix", func() {
				specific := []target.Target{{TargetID: "14.2.1"}}
				So(target.Matches(specific, "14.2"), ShouldBeTrue)
			})
		})

		Convey("When querying with a bare goal number", func() {
			Convey("Then any target of that goal hits", func() {
				So(target.Matches(ts, "14"), ShouldBeTrue)
				So(target.Matches(ts, "13"), ShouldBeTrue)
				So(target.Matches(ts, "8"), ShouldBeTrue)
			})
			Convey("Then a goal with no stored targets does not hit", func() {
				So(target.Matches(ts, "7"), ShouldBeFalse)
			})
			Convey("Then the goal part is compared whole, not by prefix", func() {
				// "1" must not match "14.2" or "13.B".
				So(target.Matches(ts, "1"), ShouldBeFalse)
			})
		})

		Convey("When the query is empty or blank", func() {
			So(target.Matches(ts, ""), ShouldBeFalse)
			So(target.Matches(ts, "   "), ShouldBeFalse)
		})

		Convey("When the target list is empty", func() {
			So(target.Matches(nil, "14"), ShouldBeFalse)
		})

		Convey("When the query has surrounding whitespace", func() {
			So(target.Matches(ts, " 14.2 "), ShouldBeTrue)
		})
	})
}
