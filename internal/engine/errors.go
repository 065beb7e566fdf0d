package engine

import "errors"

var (
	// ErrValidation indicates the request itself is unusable.
	ErrValidation = errors.New("validation failed")

	// ErrCanceled indicates the context was done before the check finished.
	ErrCanceled = errors.New("check canceled")
)
