package repository_test

import (
	"context"
	"errors"
	"testing"

	"github.com/heavenike02/sdg-showcase-3/internal/adapters/repository"
	"github.com/heavenike02/sdg-showcase-3/internal/domain/model"
	. "github.com/smartystreets/goconvey/convey"
)

func TestMemoryStore(t *testing.T) {
	Convey("Given an in-memory store", t, func() {
		ctx := context.Background()

		Convey("When created empty", func() {
			m := repository.NewMemory()

			Convey("Then it holds nothing", func() {
				n, err := m.Count(ctx)
				So(err, ShouldBeNil)
				So(n, ShouldEqual, 0)

				all, err := m.All(ctx)
				So(err, ShouldBeNil)
				So(all, ShouldBeEmpty)
			})

			Convey("Then an unknown id reports not found", func() {
				_, err := m.ByID(ctx, "missing")
				So(errors.Is(err, repository.ErrNotFound), ShouldBeTrue)
			})
		})

		Convey("When seeded with records", func() {
			m := repository.NewMemory(repository.WithRecords(
				model.ResearcherRecord{ID: "r1", FirstName: "Priya", LastName: "Sharma"},
				model.ResearcherRecord{ID: "r2", FirstName: "Aoife", LastName: "Byrne"},
				model.ResearcherRecord{ID: "r3", FirstName: "Anna", LastName: "Byrne"},
			))

			Convey("Then All orders by last name then first name", func() {
				all, err := m.All(ctx)
				So(err, ShouldBeNil)
				So(all, ShouldHaveLength, 3)
				So(all[0].ID, ShouldEqual, "r3")
				So(all[1].ID, ShouldEqual, "r2")
				So(all[2].ID, ShouldEqual, "r1")
			})

			Convey("Then ByID resolves each record", func() {
				rec, err := m.ByID(ctx, "r2")
				So(err, ShouldBeNil)
				So(rec.FirstName, ShouldEqual, "Aoife")
			})

			Convey("Then All returns a copy", func() {
				all, _ := m.All(ctx)
				all[0].FirstName = "mutated"
				again, _ := m.All(ctx)
				So(again[0].FirstName, ShouldEqual, "Anna")
			})
		})

		Convey("When putting a record with an existing id", func() {
			m := repository.NewMemory(repository.WithRecords(
				model.ResearcherRecord{ID: "r1", FirstName: "Old", LastName: "Name"},
			))
			m.Put(model.ResearcherRecord{ID: "r1", FirstName: "New", LastName: "Name"})

			Convey("Then the record is replaced, not duplicated", func() {
				n, _ := m.Count(ctx)
				So(n, ShouldEqual, 1)
				rec, err := m.ByID(ctx, "r1")
				So(err, ShouldBeNil)
				So(rec.FirstName, ShouldEqual, "New")
			})
		})

		Convey("When a put changes the sort position", func() {
			m := repository.NewMemory(repository.WithRecords(
				model.ResearcherRecord{ID: "a", LastName: "Middle"},
				model.ResearcherRecord{ID: "b", LastName: "Zed"},
			))
			m.Put(model.ResearcherRecord{ID: "b", LastName: "Aardvark"})

			Convey("Then ordering and the id index stay consistent", func() {
				all, _ := m.All(ctx)
				So(all[0].ID, ShouldEqual, "b")
				So(all[1].ID, ShouldEqual, "a")

				rec, err := m.ByID(ctx, "a")
				So(err, ShouldBeNil)
				So(rec.LastName, ShouldEqual, "Middle")
			})
		})
	})
}
