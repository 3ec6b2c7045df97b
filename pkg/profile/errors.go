package profile

import "errors"

var (
	// ErrInvalidRef is returned for references without a scope or id.
	ErrInvalidRef = errors.New("profile: invalid reference")
	// ErrEmptyKey is returned when a metadata key is blank.
	ErrEmptyKey = errors.New("profile: metadata key is required")
	// ErrNotFound is returned when a customer does not exist.
	ErrNotFound = errors.New("profile: customer not found")
)
