// Package repository defines read access to the assessments table and its
// errors. The core treats the store as an opaque fetch-by-id / fetch-all
// primitive; filtering and aggregation happen in memory above it.
package repository

import (
	"context"

	"github.com/heavenike02/sdg-showcase-3/internal/domain/model"
)

// Store provides read access to researcher records.
type Store interface {
	// ByID returns one record. Returns ErrNotFound for unknown ids.
	ByID(ctx context.Context, id string) (model.ResearcherRecord, error)

	// All returns every record ordered by last name, then first name. The
	// order is part of the contract: search filtering preserves it.
	All(ctx context.Context) ([]model.ResearcherRecord, error)

	// Count returns the number of stored records.
	Count(ctx context.Context) (int, error)
}
