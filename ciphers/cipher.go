package ciphers

import (
	"fmt"
	"strings"

	"github.com/reusee/babel/babelconfigs"
	"github.com/reusee/babel/coords"
	"github.com/reusee/babel/pages"
	"github.com/reusee/babel/streams"
)

// Filter returns the runes of text found in the natural alphabet, in order.
func Filter(text string, config babelconfigs.Configuration) []rune {
	ret := make([]rune, 0, len(text))
	for _, r := range text {
		if _, ok := config.NaturalIndex(r); ok {
			ret = append(ret, r)
		}
	}
	return ret
}

// Encipher maps text into page symbols using the content stream of c.
// The stream advances once per kept rune.
func Encipher(text string, c coords.Coordinates, config babelconfigs.Configuration) string {
	stream := streams.New(pages.ContentSeed(c))
	page := config.Page()
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		i, ok := config.NaturalIndex(r)
		if !ok {
			continue
		}
		b.WriteRune(page[(i+stream.Index(len(page)))%len(page)])
	}
	return b.String()
}

// Decipher replays the content stream of c to recover natural text.
func Decipher(cipherText string, c coords.Coordinates, config babelconfigs.Configuration) (string, error) {
	natural := config.Natural()
	page := config.Page()
	if len(natural) > len(page) {
		return "", fmt.Errorf("%w: natural alphabet has %d runes, page alphabet %d", ErrNotReversible, len(natural), len(page))
	}
	stream := streams.New(pages.ContentSeed(c))
	var b strings.Builder
	for pos, r := range []rune(pages.Unwrap(cipherText)) {
		j, ok := config.PageIndex(r)
		if !ok {
			return "", fmt.Errorf("%w: %q at %d is not a page symbol", ErrNotReversible, r, pos)
		}
		i := (j - stream.Index(len(page)) + len(page)) % len(page)
		if i >= len(natural) {
			return "", fmt.Errorf("%w: %q at %d", ErrNotReversible, r, pos)
		}
		b.WriteRune(natural[i])
	}
	return b.String(), nil
}

// EncipherTitle shifts text within the natural alphabet using the title stream of c.
func EncipherTitle(text string, c coords.Coordinates, config babelconfigs.Configuration) string {
	return shiftTitle(text, c, config, 1)
}

// DecipherTitle inverts EncipherTitle.
func DecipherTitle(title string, c coords.Coordinates, config babelconfigs.Configuration) string {
	return shiftTitle(title, c, config, -1)
}

func shiftTitle(text string, c coords.Coordinates, config babelconfigs.Configuration, sign int) string {
	stream := streams.New(pages.TitleSeed(c))
	natural := config.Natural()
	n := len(natural)
	var b strings.Builder
	for _, r := range text {
		i, ok := config.NaturalIndex(r)
		if !ok {
			continue
		}
		b.WriteRune(natural[((i+sign*stream.Index(n))%n+n)%n])
	}
	return b.String()
}
