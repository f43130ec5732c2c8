package mood

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownCategory is returned when a category name is not part of the catalogue.
var ErrUnknownCategory = errors.New("unknown mood category")

// Category is the closed set of moods an entry can be tagged with.
type Category uint8

const (
	Happy Category = iota
	Calm
	Energetic
	Melancholy
	Excited
	Peaceful
	Sad
	Anxious
	Tired
	// Custom carries a user supplied label instead of a canonical one.
	Custom

	categoryCount
)

var categoryNames = [...]string{
	Happy:      "happy",
	Calm:       "calm",
	Energetic:  "energetic",
	Melancholy: "melancholy",
	Excited:    "excited",
	Peaceful:   "peaceful",
	Sad:        "sad",
	Anxious:    "anxious",
	Tired:      "tired",
	Custom:     "custom",
}

// Fails to compile when a category is added without a name.
var _ = [1]struct{}{}[len(categoryNames)-int(categoryCount)]

// String returns the lowercase name used in storage and on the command line.
func (c Category) String() string {
	if !c.Valid() {
		return fmt.Sprintf("category(%d)", uint8(c))
	}
	return categoryNames[c]
}

// Valid reports whether c is one of the declared categories.
func (c Category) Valid() bool {
	return c < categoryCount
}

// Categories lists every category in declaration order.
func Categories() []Category {
	out := make([]Category, 0, categoryCount)
	for c := Category(0); c < categoryCount; c++ {
		out = append(out, c)
	}
	return out
}

// ParseCategory resolves a case-insensitive category name.
func ParseCategory(name string) (Category, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for c, n := range categoryNames {
		if n == name {
			return Category(c), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownCategory, name)
}

// MarshalText stores categories by name.
func (c Category) MarshalText() ([]byte, error) {
	if !c.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownCategory, uint8(c))
	}
	return []byte(c.String()), nil
}

// UnmarshalText parses a category name.
func (c *Category) UnmarshalText(text []byte) error {
	parsed, err := ParseCategory(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
