package ciphers

import (
	"fmt"
	"math/rand/v2"
	"slices"
	"strings"

	"github.com/reusee/babel/babelconfigs"
	"github.com/reusee/babel/coords"
	"github.com/reusee/babel/pages"
	"github.com/reusee/babel/streams"
)

// FillerTag keys the stream drawing natural filler around embedded text.
const FillerTag = "filler"

// PaddingRune surrounds text placed exactly and pads embedded titles.
const PaddingRune = ' '

// Embedding is a page carrying enciphered caller text.
type Embedding struct {
	Page pages.Page
	// Offset is the rune offset of the embedded text within Page.Text().
	Offset int
	// Length counts the kept runes of Text.
	Length int
	Text   string
}

// CipherText returns the enciphered form of the embedded text as it appears in the page.
func (e Embedding) CipherText() string {
	runes := []rune(e.Page.Text())
	return string(runes[e.Offset : e.Offset+e.Length])
}

// RandomDepth picks an offset in [0, page length - textLen), or 0 when the text fills the page.
func RandomDepth(src *rand.Rand, textLen int, config babelconfigs.Configuration) int {
	span := config.PageLength() - textLen
	if span <= 0 {
		return 0
	}
	return src.IntN(span)
}

// Embed places text at depth behind natural filler drawn from the filler stream of c,
// fills the page to its length, and enciphers the whole page.
// The result depends only on text, c and depth. Text longer than a page is truncated
// and depth is clamped so the text fits.
func Embed(text string, c coords.Coordinates, depth int, config babelconfigs.Configuration) Embedding {
	kept := Filter(text, config)
	length := config.PageLength()
	if len(kept) > length {
		kept = kept[:length]
	}
	depth = max(0, min(depth, length-len(kept)))

	filler := streams.New(coords.Format(c) + FillerTag)
	natural := config.Natural()
	plain := slices.Concat(
		filler.Symbols(natural, depth),
		kept,
		filler.Symbols(natural, length-depth-len(kept)),
	)

	return Embedding{
		Page: pages.Page{
			Coordinates: c,
			Title:       pages.Title(c, config),
			Content:     pages.Wrap(Encipher(string(plain), c, config), pages.LineWidth),
		},
		Offset: depth,
		Length: len(kept),
		Text:   string(kept),
	}
}

// EmbedExact pads text with spaces to exactly one page, the text starting at position,
// and enciphers the padded page.
func EmbedExact(text string, c coords.Coordinates, position int, config babelconfigs.Configuration) (ret Embedding, err error) {
	if _, ok := config.NaturalIndex(PaddingRune); !ok {
		return ret, ErrNoPadding
	}
	kept := Filter(text, config)
	length := config.PageLength()
	if len(kept) > length {
		return ret, fmt.Errorf("%w: %d runes, page holds %d", ErrTextTooLong, len(kept), length)
	}
	if position < 0 || position > length-len(kept) {
		return ret, fmt.Errorf("%w: %d not in 0..%d", ErrPositionOutOfRange, position, length-len(kept))
	}

	padded := strings.Repeat(string(PaddingRune), position) +
		string(kept) +
		strings.Repeat(string(PaddingRune), length-position-len(kept))

	return Embedding{
		Page: pages.Page{
			Coordinates: c,
			Title:       pages.Title(c, config),
			Content:     pages.Wrap(Encipher(padded, c, config), pages.LineWidth),
		},
		Offset: position,
		Length: len(kept),
		Text:   string(kept),
	}, nil
}

// EmbedTitle enciphers text, truncated or space padded to the title length, as the
// title of the volume holding c. The page is forced to the title slot.
func EmbedTitle(text string, c coords.Coordinates, config babelconfigs.Configuration) (pages.Page, error) {
	if _, ok := config.NaturalIndex(PaddingRune); !ok {
		return pages.Page{}, ErrNoPadding
	}
	c = c.AsTitleSlot()
	kept := Filter(text, config)
	if len(kept) > config.TitleLength() {
		kept = kept[:config.TitleLength()]
	}
	padded := string(kept) + strings.Repeat(string(PaddingRune), config.TitleLength()-len(kept))
	return pages.Page{
		Coordinates: c,
		Title:       EncipherTitle(padded, c, config),
		Content:     pages.Wrap(pages.Content(c, config), pages.LineWidth),
	}, nil
}
