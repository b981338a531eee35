package ciphers

import "errors"

var (
	// ErrNotReversible is returned when cipher text cannot be mapped back to natural runes.
	ErrNotReversible = errors.New("cipher text not reversible")

	// ErrTextTooLong is returned when the kept text does not fit the page or title.
	ErrTextTooLong = errors.New("text too long")

	// ErrPositionOutOfRange is returned when an exact placement would overflow the page.
	ErrPositionOutOfRange = errors.New("position out of range")

	// ErrNoPadding is returned when the padding rune is not in the natural alphabet.
	ErrNoPadding = errors.New("padding rune not in natural alphabet")
)
