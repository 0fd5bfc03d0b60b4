package services

import "errors"

var (
	// ErrInvalidID is returned when a path or body value is not a
	// well-formed ObjectID hex string. Shape is checked before any
	// store access.
	ErrInvalidID = errors.New("invalid identifier")

	// ErrNotFound is returned when a well-formed identifier matches
	// no document.
	ErrNotFound = errors.New("not found")

	// ErrDuplicate is returned when a unique index rejects an insert,
	// or a fast-path uniqueness check sees an existing document.
	ErrDuplicate = errors.New("duplicate key")
)
