// Package streams implements the deterministic number stream behind every page.
//
// A stream starts from the CRC-32 (IEEE) checksum of the UTF-8 bytes of a seed
// text and iterates
//
//	state = frac(sin(state) * 10000)
//
// emitting |state|, which lies in [0, 1). The fractional part truncates toward
// zero and keeps its sign, so the state stays in (-1, 1) after the first draw.
// Identical seed text always yields the identical infinite sequence.
//
// A Stream is owned by whoever created it. It is not safe for concurrent use and
// there is no package-level state: independent callers build independent streams.
package streams

import (
	"hash/crc32"
	"iter"
	"math"
)

const multiplier = 10000

// Seed derives the initial state of a stream from its seed text.
func Seed(text string) float64 {
	return float64(crc32.ChecksumIEEE([]byte(text)))
}

type Stream struct {
	state float64
	drawn int
}

func New(seedText string) *Stream {
	return &Stream{
		state: Seed(seedText),
	}
}

// Next advances the stream and returns a value in [0, 1).
func (s *Stream) Next() float64 {
	_, frac := math.Modf(math.Sin(s.state) * multiplier)
	s.state = frac
	s.drawn++
	return math.Abs(frac)
}

// Index maps the next draw onto [0, n). n must be positive.
func (s *Stream) Index(n int) int {
	return int(math.Floor(s.Next()*float64(n))) % n
}

// Symbols draws n runes from alphabet.
func (s *Stream) Symbols(alphabet []rune, n int) []rune {
	ret := make([]rune, n)
	for i := range ret {
		ret[i] = alphabet[s.Index(len(alphabet))]
	}
	return ret
}

// Skip discards n draws.
func (s *Stream) Skip(n int) {
	for range n {
		s.Next()
	}
}

// Drawn reports how many values the stream has produced.
func (s *Stream) Drawn() int {
	return s.drawn
}

// All yields the rest of the stream. The sequence never ends on its own.
func (s *Stream) All() iter.Seq[float64] {
	return func(yield func(float64) bool) {
		for {
			if !yield(s.Next()) {
				return
			}
		}
	}
}
