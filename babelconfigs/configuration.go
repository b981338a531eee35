// Package babelconfigs holds the immutable parameter set of a library:
// alphabets, lengths and coordinate bounds, plus the knobs of brute-force search.
// Values come from command-line flags, then babel.cue files, then defaults.
package babelconfigs

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/reusee/babel/coords"
)

var (
	ErrEmptyAlphabet = errors.New("empty alphabet")
	ErrDuplicateRune = errors.New("duplicated rune in alphabet")
	ErrNonPositive   = errors.New("must be positive")
	ErrReservedRune  = errors.New("reserved rune in alphabet")
)

// Options is the plain form of a Configuration, as decoded from config files.
type Options struct {
	NaturalAlphabet string `json:"natural_alphabet"`
	PageAlphabet    string `json:"page_alphabet"`
	PageLength      int    `json:"page_length"`
	TitleLength     int    `json:"title_length"`
	Walls           int    `json:"walls"`
	Shelves         int    `json:"shelves"`
	Volumes         int    `json:"volumes"`
	Pages           int    `json:"pages"`
}

func DefaultOptions() Options {
	return Options{
		NaturalAlphabet: "абвгдеёжзийклмнопрстуфхцчшщъыьэюя, .",
		PageAlphabet:    "0123456789abcdefghijklmnopqrstuvwxyz",
		PageLength:      4819,
		TitleLength:     31,
		Walls:           5,
		Shelves:         7,
		Volumes:         31,
		Pages:           421,
	}
}

// Configuration is built once and shared read-only. Slices returned by its
// methods must not be modified.
type Configuration struct {
	options      Options
	natural      []rune
	page         []rune
	naturalIndex map[rune]int
	pageIndex    map[rune]int
}

func New(options Options) (ret Configuration, err error) {
	if err := options.Validate(); err != nil {
		return ret, err
	}
	ret.options = options
	ret.natural, ret.naturalIndex = indexAlphabet(options.NaturalAlphabet)
	ret.page, ret.pageIndex = indexAlphabet(options.PageAlphabet)
	return ret, nil
}

func Default() Configuration {
	ret, err := New(DefaultOptions())
	if err != nil {
		panic(err)
	}
	return ret
}

func (o Options) Validate() error {
	for _, alphabet := range []struct {
		name  string
		value string
	}{
		{"natural alphabet", o.NaturalAlphabet},
		{"page alphabet", o.PageAlphabet},
	} {
		if alphabet.value == "" {
			return fmt.Errorf("%s: %w", alphabet.name, ErrEmptyAlphabet)
		}
		seen := make(map[rune]bool)
		for _, r := range alphabet.value {
			// line breaks are display wrapping
			if r == '\n' || r == '\r' {
				return fmt.Errorf("%s: %w: %q", alphabet.name, ErrReservedRune, r)
			}
			if seen[r] {
				return fmt.Errorf("%s: %w: %q", alphabet.name, ErrDuplicateRune, r)
			}
			seen[r] = true
		}
	}
	for _, n := range []struct {
		name  string
		value int
	}{
		{"page length", o.PageLength},
		{"title length", o.TitleLength},
		{"walls", o.Walls},
		{"shelves", o.Shelves},
		{"volumes", o.Volumes},
		{"pages", o.Pages},
	} {
		if n.value < 1 {
			return fmt.Errorf("%s %d: %w", n.name, n.value, ErrNonPositive)
		}
	}
	return nil
}

func indexAlphabet(alphabet string) ([]rune, map[rune]int) {
	runes := []rune(alphabet)
	index := make(map[rune]int, len(runes))
	for i, r := range runes {
		index[r] = i
	}
	return runes, index
}

func (c Configuration) Options() Options {
	return c.options
}

func (c Configuration) Natural() []rune {
	return c.natural
}

func (c Configuration) Page() []rune {
	return c.page
}

func (c Configuration) NaturalIndex(r rune) (int, bool) {
	i, ok := c.naturalIndex[r]
	return i, ok
}

func (c Configuration) PageIndex(r rune) (int, bool) {
	i, ok := c.pageIndex[r]
	return i, ok
}

func (c Configuration) PageLength() int {
	return c.options.PageLength
}

func (c Configuration) TitleLength() int {
	return c.options.TitleLength
}

func (c Configuration) Bounds() coords.Bounds {
	return coords.Bounds{
		Walls:   c.options.Walls,
		Shelves: c.options.Shelves,
		Volumes: c.options.Volumes,
		Pages:   c.options.Pages,
	}
}

func (c Configuration) LogValue() slog.Value {
	o := c.options
	return slog.GroupValue(
		slog.Int("natural_alphabet", len(c.natural)),
		slog.Int("page_alphabet", len(c.page)),
		slog.Int("page_length", o.PageLength),
		slog.Int("title_length", o.TitleLength),
		slog.Int("walls", o.Walls),
		slog.Int("shelves", o.Shelves),
		slog.Int("volumes", o.Volumes),
		slog.Int("pages", o.Pages),
	)
}
