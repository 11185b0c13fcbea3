package repository

import "errors"

// Sentinel kinds for store errors. ErrNotFound is distinct from transport
// failures so the HTTP layer can answer 404 instead of 500.
var (
	ErrNotFound = errors.New("researcher not found")
	ErrQuery    = errors.New("store query failed")
)
