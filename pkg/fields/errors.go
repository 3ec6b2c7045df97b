package fields

import "errors"

var (
	// ErrEmptyKey is returned for a descriptor without a key.
	ErrEmptyKey = errors.New("fields: descriptor key is required")
	// ErrUnknownKind is returned for a descriptor whose kind is not in the
	// closed Kind set.
	ErrUnknownKind = errors.New("fields: unknown field kind")
)
