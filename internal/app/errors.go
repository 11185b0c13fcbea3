package service

import (
	"errors"

	"github.com/heavenike02/sdg-showcase-3/internal/adapters/repository"
)

// isNotFound distinguishes the empty outcome from transport failures.
func isNotFound(err error) bool {
	return errors.Is(err, repository.ErrNotFound)
}
