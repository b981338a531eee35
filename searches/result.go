package searches

import (
	"log/slog"

	"github.com/reusee/babel/pages"
)

type Result struct {
	Mode Mode
	Page pages.Page
	// Attempts counts sampled pages up to and including the match; zero when nothing was sampled.
	Attempts int
	// Offset is the rune offset of embedded text in the page text, or -1.
	Offset int
	// Seed keys the sampled coordinates, for reproducing the search.
	Seed uint64
}

func (r Result) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("mode", r.Mode.String()),
		slog.String("coordinates", r.Page.Coordinates.String()),
		slog.Int("attempts", r.Attempts),
		slog.Int("offset", r.Offset),
		slog.Uint64("seed", r.Seed),
	)
}
