package document

import "errors"

// Errors returned by document operations.
var (
	// ErrOffsetOutOfRange indicates an offset outside [0, block length].
	ErrOffsetOutOfRange = errors.New("offset out of range")

	// ErrRangeInvalid indicates an invalid range (e.g., end < start).
	ErrRangeInvalid = errors.New("invalid range")

	// ErrLengthMismatch indicates text and character metadata of different lengths.
	ErrLengthMismatch = errors.New("text and character metadata lengths differ")

	// ErrBlockNotFound indicates a block key absent from the document.
	ErrBlockNotFound = errors.New("block not found")

	// ErrDuplicateKey indicates two blocks share a key.
	ErrDuplicateKey = errors.New("duplicate block key")
)
