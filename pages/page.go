// Package pages materializes the title and text of any coordinates.
//
// Titles are a property of the volume: the title stream is seeded with
// "wall-shelf-volume" followed by "title", so every page of a volume shares its
// title. Page text is seeded with "wall-shelf-volume-page" followed by "content".
// The two draws use separate streams and cannot perturb each other.
//
// Generation performs no bounds checks and never fails.
package pages

import (
	"strings"
	"unicode/utf8"

	"github.com/reusee/babel/babelconfigs"
	"github.com/reusee/babel/coords"
	"github.com/reusee/babel/streams"
)

const (
	TitleTag   = "title"
	ContentTag = "content"
)

// LineWidth is the display width content is wrapped at.
const LineWidth = 80

type Page struct {
	Coordinates coords.Coordinates
	Title       string
	// Content is wrapped at LineWidth runes per line.
	Content string
}

// Text returns the content without display line breaks.
func (p Page) Text() string {
	return Unwrap(p.Content)
}

func (p Page) Address() string {
	return coords.Address(p.Coordinates)
}

func TitleSeed(c coords.Coordinates) string {
	return coords.FormatVolume(c) + TitleTag
}

func ContentSeed(c coords.Coordinates) string {
	return coords.Format(c) + ContentTag
}

func Title(c coords.Coordinates, config babelconfigs.Configuration) string {
	stream := streams.New(TitleSeed(c))
	return string(stream.Symbols(config.Natural(), config.TitleLength()))
}

// Content returns the unwrapped text of c.
func Content(c coords.Coordinates, config babelconfigs.Configuration) string {
	stream := streams.New(ContentSeed(c))
	return string(stream.Symbols(config.Page(), config.PageLength()))
}

func Generate(c coords.Coordinates, config babelconfigs.Configuration) Page {
	return Page{
		Coordinates: c,
		Title:       Title(c, config),
		Content:     Wrap(Content(c, config), LineWidth),
	}
}

// Wrap breaks text into lines of width runes joined by "\n".
func Wrap(text string, width int) string {
	if width < 1 || utf8.RuneCountInString(text) <= width {
		return text
	}
	var b strings.Builder
	b.Grow(len(text) + len(text)/width)
	n := 0
	for _, r := range text {
		if n == width {
			b.WriteByte('\n')
			n = 0
		}
		b.WriteRune(r)
		n++
	}
	return b.String()
}

func Unwrap(text string) string {
	return strings.ReplaceAll(text, "\n", "")
}
