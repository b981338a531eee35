package logs

import (
	"context"
	"crypto/rand"
)

// NewSpan starts a span named what. The span of ctx, if any, becomes the parent.
type NewSpan func(ctx context.Context, what string, args ...any) (context.Context, Span)

func (Module) NewSpan(
	logger Logger,
) NewSpan {
	return func(ctx context.Context, what string, args ...any) (context.Context, Span) {

		// parent
		var parent Span
		if v := ctx.Value(SpanKey); v != nil {
			parent = v.(Span)
		}

		// span
		span := Span(rand.Text())
		ctx = context.WithValue(ctx, SpanKey, span)

		// logs
		if parent != "" {
			args = append(args, "parent", parent)
		}
		logger.InfoContext(ctx, what, args...)

		return ctx, span
	}
}
