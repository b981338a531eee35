package coords

import "errors"

var (
	// ErrInvalidFormat is returned for a wrong field count or a field that is not a non-negative integer.
	ErrInvalidFormat = errors.New("invalid coordinate format")

	// ErrOutOfBounds is returned when a field exceeds its configured axis bound.
	ErrOutOfBounds = errors.New("coordinate out of bounds")
)
