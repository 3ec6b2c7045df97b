package settings

import "errors"

var (
	// ErrEmptyKey is returned when writing a blank settings key.
	ErrEmptyKey = errors.New("settings: key is required")
	// ErrReadOnly is returned when saving without a writable store.
	ErrReadOnly = errors.New("settings: store is read-only")
)
