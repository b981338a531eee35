package main

import (
	"context"
	"errors"

	"github.com/reusee/babel/ciphers"
	"github.com/reusee/babel/coords"
	"github.com/reusee/babel/searches"
	"github.com/reusee/e5"
)

var wrap = e5.Wrap.With(e5.WrapStacktrace)

var errTokenMismatch = errors.New("address token does not match its coordinates")

// userMessage renders err for the terminal, without stack traces.
func userMessage(err error) string {
	switch {
	case errors.Is(err, coords.ErrInvalidFormat):
		return "not an address, expected wall-shelf-volume-page: " + err.Error()
	case errors.Is(err, coords.ErrOutOfBounds):
		return "address outside the library: " + err.Error()
	case errors.Is(err, searches.ErrInvalidPattern):
		return "bad regular expression: " + err.Error()
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		return "search stopped before a match: " + err.Error()
	case errors.Is(err, searches.ErrNotFound):
		return "no page found, raise -attempts or -timeout: " + err.Error()
	case errors.Is(err, ciphers.ErrNotReversible):
		return "cannot decipher: " + err.Error()
	case errors.Is(err, ciphers.ErrTextTooLong), errors.Is(err, ciphers.ErrPositionOutOfRange):
		return "text does not fit: " + err.Error()
	case errors.Is(err, ciphers.ErrNoPadding):
		return "the natural alphabet lacks a space for padding"
	case errors.Is(err, errTokenMismatch):
		return err.Error()
	}
	return err.Error()
}
