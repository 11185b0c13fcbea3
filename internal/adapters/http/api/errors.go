package api

import (
	"errors"
	"fmt"
)

// Sentinel kinds for API errors.
var (
	ErrBadRequest = errors.New("bad request")
)

// wrapOp annotates an error with the failing operation for logs and
// responses.
func wrapOp(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
