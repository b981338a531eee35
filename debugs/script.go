package debugs

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/reusee/babel/logs"
	"github.com/reusee/e5"
	"go.starlark.net/starlark"
)

var wrap = e5.Wrap.With(e5.WrapStacktrace)

// RunScript executes a Starlark file with globals predeclared. print() writes to output.
type RunScript func(ctx context.Context, path string, src any, globals map[string]any, output io.Writer) (starlark.StringDict, error)

func (Module) RunScript(
	logger logs.Logger,
	newSpan logs.NewSpan,
) RunScript {
	return func(ctx context.Context, path string, src any, globals map[string]any, output io.Writer) (starlark.StringDict, error) {
		ctx, _ = newSpan(ctx, "run script", "path", path)
		thread := &starlark.Thread{
			Name: path,
			Print: func(_ *starlark.Thread, msg string) {
				fmt.Fprintln(output, msg)
			},
		}
		// stop the script when ctx is done
		stop := context.AfterFunc(ctx, func() {
			thread.Cancel(context.Cause(ctx).Error())
		})
		defer stop()

		ret, err := starlark.ExecFileOptions(fileOptions, thread, path, src, toStringDict(globals))
		if err != nil {
			var evalErr *starlark.EvalError
			if errors.As(err, &evalErr) {
				logger.ErrorContext(ctx, "script failed", "backtrace", evalErr.Backtrace())
			}
			// carries the span of this run
			return nil, logs.WrapSpan(ctx, wrap(fmt.Errorf("run %s: %w", path, err)))
		}
		return ret, nil
	}
}
