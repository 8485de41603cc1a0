package entity

import "errors"

// Errors returned by registry operations.
var (
	// ErrNotFound indicates an annotation ID has no registry entry.
	ErrNotFound = errors.New("annotation not found")

	// ErrKindMismatch indicates a payload of one kind was merged into an
	// annotation of another kind.
	ErrKindMismatch = errors.New("annotation kind mismatch")
)
