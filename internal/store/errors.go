package store

import "errors"

var (
	// ErrNotFound marks a key with no stored value.
	ErrNotFound = errors.New("record not found")
	// ErrInvariant marks a write that would corrupt taint semantics:
	// overwriting a seed record, raising an outpoint degree, or moving
	// scan progress backward.
	ErrInvariant = errors.New("taint invariant violation")
	// ErrCorrupted marks a store that failed to open or verify.
	ErrCorrupted = errors.New("taint store corrupted")
)
