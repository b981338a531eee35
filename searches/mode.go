package searches

import (
	"regexp"

	"github.com/reusee/babel/coords"
)

type Mode uint8

const (
	ModeCoordinates Mode = iota + 1
	ModePattern
	ModeLiteral
)

func (m Mode) String() string {
	switch m {
	case ModeCoordinates:
		return "coordinates"
	case ModePattern:
		return "pattern"
	case ModeLiteral:
		return "literal"
	}
	return "unknown"
}

// Classify picks the mode of free-form input. It never fails.
func Classify(input string) Mode {
	if coords.IsCoordinateLike(input) {
		return ModeCoordinates
	}
	// plain words compile as regular expressions too, require a metacharacter
	if regexp.QuoteMeta(input) != input {
		if _, err := regexp.Compile(input); err == nil {
			return ModePattern
		}
	}
	return ModeLiteral
}
