// internal/level/catalog.go
//
// The shipped level catalog, grouped by mode. Modes keep their registration
// order and each mode's levels are played in slice order, ending with a Win
// level.

package level

import (
	"errors"
	"fmt"
	"strings"

	"github.com/robalobadob/indexcat/internal/subscript"
	"github.com/robalobadob/indexcat/internal/values"
	"github.com/robalobadob/indexcat/internal/words"
)

// Mode names.
const (
	ModeLists   = "lists"
	ModeStrings = "strings"

	DefaultMode = ModeLists
)

// ErrUnknownMode is returned for a mode the catalog does not register.
var ErrUnknownMode = errors.New("level: unknown mode")

// Catalog maps mode names to ordered level lists. It is read-only once built.
type Catalog struct {
	modes  []string
	levels map[string][]Level
}

// NewCatalog returns an empty catalog; fill it with Register.
func NewCatalog() *Catalog {
	return &Catalog{levels: make(map[string][]Level)}
}

// Register adds a mode. Registering the same mode twice replaces its levels
// but keeps its original position.
func (c *Catalog) Register(mode string, levels ...Level) *Catalog {
	if _, ok := c.levels[mode]; !ok {
		c.modes = append(c.modes, mode)
	}
	c.levels[mode] = append([]Level(nil), levels...)
	return c
}

// Modes lists the registered modes in registration order.
func (c *Catalog) Modes() []string {
	return append([]string(nil), c.modes...)
}

// Levels returns a copy of the mode's levels in play order.
func (c *Catalog) Levels(mode string) ([]Level, error) {
	levels, ok := c.levels[mode]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownMode, mode)
	}
	return append([]Level(nil), levels...), nil
}

// Validate checks that every word-valued level can always find a word: each
// length its range can draw must be present in bank.
func (c *Catalog) Validate(bank words.Bank) error {
	var missing []string
	for _, mode := range c.modes {
		for _, l := range c.levels[mode] {
			if !l.UsesWords() {
				continue
			}
			for n := l.length.Min; n <= l.length.Max; n++ {
				if !bank.Has(n) {
					missing = append(missing, fmt.Sprintf("%s/%q needs %d-letter words", mode, l.name, n))
				}
			}
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %s", values.ErrNoWords, strings.Join(missing, "; "))
	}
	return nil
}

// ResolveMode returns raw trimmed, or fallback when raw is empty.
// It does not check that the mode exists; Levels does.
func ResolveMode(raw, fallback string) string {
	if m := strings.TrimSpace(raw); m != "" {
		return m
	}
	return fallback
}

// winFace is what the finish screen shows.
const winFace = ":)"

// Win is the terminal level closing every mode.
func Win(wrap string) Level {
	return New("You finished!", wrap, KindWin, Fixed(len(winFace)), values.Constant(winFace), subscript.Fixed(subscript.Index(0)))
}

// DefaultCatalog builds the lists and strings modes the game ships with.
func DefaultCatalog() *Catalog {
	const (
		list = "[]"
		str  = `""`
	)
	highDigits := values.DigitString{Min: values.LengthMinusOne, Max: values.Const(9)}
	lowDigits := values.DigitString{Min: values.Const(0), Max: values.LengthMinusOne}
	anyDigits := values.DigitString{Min: values.Const(0), Max: values.Const(9)}
	word := values.Word{}

	return NewCatalog().
		Register(ModeLists,
			New("Round 1", list, KindIndex, Between(4, 5), highDigits, subscript.NonNegativeIndex),
			New("The List's Values Don't Matter", list, KindIndex, Between(4, 5), lowDigits, subscript.NonNegativeIndex),
			New("Negative Indexing", list, KindIndex, Between(4, 5), anyDigits, subscript.NegativeIndex),
			New("Drag for Subscripts", list, KindSlice, Between(4, 5), highDigits, subscript.Paired),
			New("Partial Subscripts", list, KindSlice, Between(4, 5), highDigits, subscript.Partial),
			New("All combos", list, KindSubscript, Between(2, 5), highDigits, subscript.Any),
			Win(list),
		).
		Register(ModeStrings,
			New("Round 1", str, KindIndex, Between(4, 5), word, subscript.NonNegativeIndex),
			New("Let's try another", str, KindIndex, Between(4, 5), word, subscript.NonNegativeIndex),
			New("Negative Indexing", str, KindIndex, Between(4, 5), word, subscript.NegativeIndex),
			New("Drag for Subscripts", str, KindSlice, Between(4, 5), word, subscript.Paired),
			New("Partial Subscripts", str, KindSlice, Between(4, 5), word, subscript.Partial),
			New("All combos", str, KindSubscript, Between(2, 6), word, subscript.Any),
			New("All combos AGAIN", str, KindSubscript, Between(5, 6), word, subscript.Any),
			New("Let's go long!", str, KindSubscript, Fixed(7), word, subscript.Any),
			Win(str),
		)
}
