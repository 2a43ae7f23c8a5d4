package types

import "errors"

// Domain errors for configuration and chunk validation
var (
	// ErrInvalidConfig wraps every configuration rejection
	ErrInvalidConfig = errors.New("invalid chunking configuration")

	// ErrUnknownStrategy marks an unrecognized strategy discriminant
	ErrUnknownStrategy = errors.New("unknown strategy")

	// Chunk validation errors
	ErrEmptyContent   = errors.New("chunk content cannot be empty")
	ErrInvalidOffsets = errors.New("chunk end index must not precede start index")
)
