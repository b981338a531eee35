package logs

// Span identifies one engine operation, such as a single search, across its log records.
type Span string

type spanKey struct{}

var SpanKey spanKey

func (s Span) String() string {
	return string(s)
}
