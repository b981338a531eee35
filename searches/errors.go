package searches

import (
	"errors"

	"github.com/reusee/babel/coords"
)

var (
	// ErrInvalidPattern is returned when a regular expression fails to compile.
	ErrInvalidPattern = errors.New("invalid pattern")

	// ErrNotFound is returned when the attempt ceiling or time budget runs out without a match.
	ErrNotFound = errors.New("not found")

	// coordinate errors pass through from the codec
	ErrInvalidCoordinates = coords.ErrInvalidFormat
	ErrOutOfBounds        = coords.ErrOutOfBounds
)
