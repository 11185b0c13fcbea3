package target_test

import (
	"encoding/json"
	"testing"

	"github.com/heavenike02/sdg-showcase-3/internal/domain/model"
	"github.com/heavenike02/sdg-showcase-3/internal/domain/target"
	. "github.com/smartystreets/goconvey/convey"
)

func TestNormalize(t *testing.T) {
	Convey("Given raw targets in the stored shapes", t, func() {
		Convey("When the value is an array of strings", func() {
			ts := target.Normalize(json.RawMessage(`["14.1", "13.B", "8.5"]`))

			Convey("Then each entry becomes a canonical target", func() {
				So(ts, ShouldHaveLength, 3)
				So(ts[0].TargetID, ShouldEqual, "14.1")
				So(ts[1].TargetID, ShouldEqual, "13.B")
				So(ts[2].TargetID, ShouldEqual, "8.5")
			})

			Convey("Then no impact metadata is assumed", func() {
				So(ts[0].ImpactType, ShouldBeEmpty)
				So(ts[0].ImpactDirection, ShouldBeEmpty)
			})
		})

		Convey("When the value is an array of objects", func() {
			raw := json.RawMessage(`[
				{"targetId": "14.1", "impactType": "positive", "impactDirection": "direct", "evidence": "field study"},
				{"id": "13.2"},
				{"target": "8.5"}
			]`)
			ts := target.Normalize(raw)

			Convey("Then all id key variants are recognized", func() {
				So(ts, ShouldHaveLength, 3)
				So(ts[0].TargetID, ShouldEqual, "14.1")
				So(ts[1].TargetID, ShouldEqual, "13.2")
				So(ts[2].TargetID, ShouldEqual, "8.5")
			})

			Convey("Then impact metadata on the object is carried through", func() {
				So(ts[0].ImpactType, ShouldEqual, target.ImpactPositive)
				So(ts[0].ImpactDirection, ShouldEqual, target.DirectionDirect)
				So(ts[0].Evidence, ShouldEqual, "field study")
				So(ts[1].ImpactType, ShouldBeEmpty)
			})
		})

		Convey("When the value is a goal-keyed map", func() {
			raw := json.RawMessage(`{"14": ["1", "2"], "13": ["B"]}`)
			ts := target.Normalize(raw)

			Convey("Then ids are synthesized in document key order", func() {
				So(ts, ShouldHaveLength, 3)
				So(ts[0].TargetID, ShouldEqual, "14.1")
				So(ts[1].TargetID, ShouldEqual, "14.2")
				So(ts[2].TargetID, ShouldEqual, "13.B")
			})
		})

		Convey("When the goal-keyed map lists a later goal first", func() {
			raw := json.RawMessage(`{"9": ["4"], "3": ["8"]}`)
			ts := target.Normalize(raw)

			Convey("Then document order wins over numeric order", func() {
				So(ts[0].TargetID, ShouldEqual, "9.4")
				So(target.PrimarySDG(ts), ShouldEqual, 9)
			})
		})

		Convey("When the value is a double-encoded JSON string", func() {
			inner, err := json.Marshal([]string{"14.1", "8.2"})
			So(err, ShouldBeNil)
			raw, err := json.Marshal(string(inner))
			So(err, ShouldBeNil)

			ts := target.Normalize(json.RawMessage(raw))

			Convey("Then the inner document is decoded", func() {
				So(ts, ShouldHaveLength, 2)
				So(ts[0].TargetID, ShouldEqual, "14.1")
				So(ts[1].TargetID, ShouldEqual, "8.2")
			})
		})

		Convey("When the value is a string that is not JSON", func() {
			ts := target.Normalize(json.RawMessage(`"life below water"`))

			Convey("Then the string survives as one opaque target", func() {
				So(ts, ShouldHaveLength, 1)
				So(ts[0].TargetID, ShouldEqual, "life below water")
			})
		})

		Convey("When the value is malformed or empty", func() {
			Convey("Then nil input yields no targets", func() {
				So(target.Normalize(nil), ShouldBeEmpty)
			})
			Convey("Then empty bytes yield no targets", func() {
				So(target.Normalize(json.RawMessage("")), ShouldBeEmpty)
				So(target.Normalize(json.RawMessage("   ")), ShouldBeEmpty)
			})
			Convey("Then an unrecognized scalar yields no targets", func() {
				So(target.Normalize(json.RawMessage(`true`)), ShouldBeEmpty)
			})
			Convey("Then unrecognized array elements are skipped", func() {
				ts := target.Normalize(json.RawMessage(`["14.1", true, null, {"note": "x"}]`))
				So(ts, ShouldHaveLength, 1)
				So(ts[0].TargetID, ShouldEqual, "14.1")
			})
		})

		Convey("When normalizing is applied to its own output ids", func() {
			raw := json.RawMessage(`{"14": ["1"], "8": ["5", "9"]}`)
			once := target.Normalize(raw)

			ids := make([]string, len(once))
			for i, t := range once {
				ids[i] = t.TargetID
			}
			encoded, err := json.Marshal(ids)
			So(err, ShouldBeNil)
			twice := target.Normalize(json.RawMessage(encoded))

			Convey("Then the result is stable", func() {
				So(twice, ShouldResemble, once)
			})
		})
	})
}

func TestNormalizeWithImpacts(t *testing.T) {
	Convey("Given a goal-keyed map and impact annotations", t, func() {
		raw := json.RawMessage(`{"13": ["2", "3"]}`)
		impacts := []model.TargetImpact{
			{TargetID: "13.2", ImpactType: "negative", ImpactDirection: "indirect", Evidence: "emission audit"},
			{TargetID: "13", ImpactType: "positive", ImpactDirection: "direct"},
		}

		Convey("When normalizing with the annotations", func() {
			ts := target.NormalizeWithImpacts(raw, impacts)

			Convey("Then only exact id matches are annotated", func() {
				So(ts, ShouldHaveLength, 2)
				So(ts[0].TargetID, ShouldEqual, "13.2")
				So(ts[0].ImpactType, ShouldEqual, target.ImpactNegative)
				So(ts[0].ImpactDirection, ShouldEqual, target.DirectionIndirect)
				So(ts[0].Evidence, ShouldEqual, "emission audit")
				So(ts[1].TargetID, ShouldEqual, "13.3")
				So(ts[1].ImpactType, ShouldBeEmpty)
			})
		})

		Convey("When annotations are nil", func() {
			ts := target.NormalizeWithImpacts(raw, nil)

			Convey("Then synthesized ids carry no impact fields", func() {
				So(ts, ShouldHaveLength, 2)
				So(ts[0].ImpactType, ShouldBeEmpty)
			})
		})
	})
}

func TestSDGHelpers(t *testing.T) {
	Convey("Given canonical targets", t, func() {
		ts := []target.Target{
			{TargetID: "bad id"},
			{TargetID: "14.1"},
			{TargetID: "14.2"},
			{TargetID: "3.8"},
		}

		Convey("When extracting the goal number of one target", func() {
			So(target.Target{TargetID: "13.B"}.SDG(), ShouldEqual, 13)
			So(target.Target{TargetID: "nope"}.SDG(), ShouldEqual, 0)
		})

		Convey("When picking the primary goal", func() {
			Convey("Then the first parseable id in list order wins", func() {
				So(target.PrimarySDG(ts), ShouldEqual, 14)
			})
			Convey("Then an empty list has no primary goal", func() {
				So(target.PrimarySDG(nil), ShouldEqual, 0)
			})
		})

		Convey("When collecting distinct goals", func() {
			Convey("Then duplicates collapse and first-seen order holds", func() {
				So(target.SDGs(ts), ShouldResemble, []int{14, 3})
			})
		})
	})
}
