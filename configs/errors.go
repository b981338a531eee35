package configs

import (
	"errors"
	"fmt"

	"github.com/reusee/e5"
)

var ErrValueNotFound = errors.New("value not found")

var wrap = e5.Wrap.With(e5.WrapStacktrace)

func wrapf(err error, format string, args ...any) error {
	return wrap(fmt.Errorf(format+": %w", append(args, err)...))
}
