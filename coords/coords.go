package coords

import (
	"crypto/sha1"
	"encoding/hex"
	"errors"
	"fmt"
	"math/rand/v2"
	"strconv"
	"strings"
)

type Coordinates struct {
	Wall   int
	Shelf  int
	Volume int
	Page   int
}

// TitleSlot is the page number addressing a volume's title rather than a page.
const TitleSlot = 0

// TokenLength is the length of the token prefixed to an address.
const TokenLength = sha1.Size * 2

func (c Coordinates) IsTitleSlot() bool {
	return c.Page == TitleSlot
}

// AsTitleSlot returns c with the page replaced by the title slot.
func (c Coordinates) AsTitleSlot() Coordinates {
	c.Page = TitleSlot
	return c
}

func (c Coordinates) String() string {
	return Format(c)
}

// Bounds are the inclusive upper limits of each axis.
type Bounds struct {
	Walls   int
	Shelves int
	Volumes int
	Pages   int
}

// Check reports ErrOutOfBounds unless wall, shelf and volume lie in 1..bound and page in 0..bound.
func (b Bounds) Check(c Coordinates) error {
	for _, axis := range []struct {
		name  string
		value int
		min   int
		max   int
	}{
		{"wall", c.Wall, 1, b.Walls},
		{"shelf", c.Shelf, 1, b.Shelves},
		{"volume", c.Volume, 1, b.Volumes},
		{"page", c.Page, TitleSlot, b.Pages},
	} {
		if axis.value < axis.min || axis.value > axis.max {
			return fmt.Errorf("%w: %s %d not in %d..%d", ErrOutOfBounds, axis.name, axis.value, axis.min, axis.max)
		}
	}
	return nil
}

// Size is the number of addressable pages, title slots excluded.
func (b Bounds) Size() int {
	return b.Walls * b.Shelves * b.Volumes * b.Pages
}

// Random draws in-bounds coordinates with page >= 1.
func Random(src *rand.Rand, b Bounds) Coordinates {
	return Coordinates{
		Wall:   src.IntN(b.Walls) + 1,
		Shelf:  src.IntN(b.Shelves) + 1,
		Volume: src.IntN(b.Volumes) + 1,
		Page:   src.IntN(b.Pages) + 1,
	}
}

func Format(c Coordinates) string {
	return fmt.Sprintf("%d-%d-%d-%d", c.Wall, c.Shelf, c.Volume, c.Page)
}

// FormatVolume renders only wall, shelf and volume.
func FormatVolume(c Coordinates) string {
	return fmt.Sprintf("%d-%d-%d", c.Wall, c.Shelf, c.Volume)
}

func Token(c Coordinates) string {
	sum := sha1.Sum([]byte(Format(c)))
	return hex.EncodeToString(sum[:])
}

// Address renders c with its token prefixed.
func Address(c Coordinates) string {
	return Token(c) + "-" + Format(c)
}

// VerifyAddress reports whether text is a five field address whose token matches its coordinates.
func VerifyAddress(text string) bool {
	fields := strings.Split(strings.TrimSpace(text), "-")
	if len(fields) != 5 {
		return false
	}
	c, err := parseFields(fields[1:])
	if err != nil {
		return false
	}
	return fields[0] == Token(c)
}

// empty fields are kept so that "1--2-3" fails instead of collapsing
func splitFields(text string) []string {
	text = strings.ReplaceAll(strings.TrimSpace(text), " ", "-")
	return strings.Split(text, "-")
}

func parseField(field string) (int, error) {
	n, err := strconv.ParseUint(field, 10, 63)
	if errors.Is(err, strconv.ErrRange) {
		return 0, fmt.Errorf("%w: field %q", ErrOutOfBounds, field)
	} else if err != nil {
		return 0, fmt.Errorf("%w: field %q", ErrInvalidFormat, field)
	}
	return int(n), nil
}

func parseFields(fields []string) (c Coordinates, err error) {
	targets := []*int{&c.Wall, &c.Shelf, &c.Volume, &c.Page}
	if len(fields) != len(targets) {
		return Coordinates{}, fmt.Errorf("%w: got %d fields, want %d", ErrInvalidFormat, len(fields), len(targets))
	}
	for i, field := range fields {
		if *targets[i], err = parseField(field); err != nil {
			return Coordinates{}, err
		}
	}
	return c, nil
}

// Parse accepts "w s v p", "w-s-v-p" or "token-w-s-v-p". Parsing is all or nothing.
func Parse(text string, bounds Bounds) (Coordinates, error) {
	fields := splitFields(text)
	if len(fields) == 5 {
		// the token is opaque here
		if strings.Contains(text, " ") {
			return Coordinates{}, fmt.Errorf("%w: address %q must be hyphen delimited", ErrInvalidFormat, text)
		}
		fields = fields[1:]
	}
	c, err := parseFields(fields)
	if err != nil {
		return Coordinates{}, err
	}
	if err := bounds.Check(c); err != nil {
		return Coordinates{}, err
	}
	return c, nil
}

// ParseVolume accepts "w-s-v" or "token-w-s-v" and returns the title slot of that volume.
func ParseVolume(text string, bounds Bounds) (Coordinates, error) {
	fields := splitFields(text)
	if len(fields) == 4 {
		fields = fields[1:]
	}
	if len(fields) != 3 {
		return Coordinates{}, fmt.Errorf("%w: got %d fields, want 3", ErrInvalidFormat, len(fields))
	}
	c, err := parseFields(append(fields, strconv.Itoa(TitleSlot)))
	if err != nil {
		return Coordinates{}, err
	}
	if err := bounds.Check(c); err != nil {
		return Coordinates{}, err
	}
	return c, nil
}

// IsCoordinateLike reports whether text has exactly four non-negative integer fields.
// Bounds are not checked, so an overlong field still counts as numeric.
func IsCoordinateLike(text string) bool {
	_, err := parseFields(splitFields(text))
	return err == nil || errors.Is(err, ErrOutOfBounds)
}
