// internal/values/values.go
//
// Value policies: what the sequence on screen is made of.
//
//   - DigitString: n decimal digits, each drawn from a per-level range.
//   - Word:        a word of exactly n letters from the word bank.
//   - Constant:    a fixed value (the finish screen).

package values

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/robalobadob/indexcat/internal/rng"
	"github.com/robalobadob/indexcat/internal/words"
)

// ErrNoWords is returned when the bank holds no word of the requested length.
var ErrNoWords = errors.New("values: no words of requested length")

// Policy produces the displayed value for a sequence of the given length.
// The bank may be nil for policies that do not use it.
type Policy interface {
	Value(src rng.Source, length int, bank words.Bank) (string, error)
}

// Digits builds a string of length digits, each uniform in [min, max].
func Digits(src rng.Source, length, min, max int) string {
	var b strings.Builder
	b.Grow(length)
	for i := 0; i < length; i++ {
		b.WriteString(strconv.Itoa(src.Between(min, max)))
	}
	return b.String()
}

// WordOfLength picks a word of exactly length letters from bank.
func WordOfLength(src rng.Source, length int, bank words.Bank) (string, error) {
	list := bank.OfLength(length)
	if len(list) == 0 {
		return "", fmt.Errorf("%w: %d", ErrNoWords, length)
	}
	return rng.Pick(src, list), nil
}

// DigitString draws digits whose range may depend on the sequence length.
type DigitString struct {
	Min func(length int) int
	Max func(length int) int
}

// Value implements Policy.
func (d DigitString) Value(src rng.Source, length int, _ words.Bank) (string, error) {
	return Digits(src, length, d.Min(length), d.Max(length)), nil
}

// Word draws from the bank.
type Word struct{}

// Value implements Policy.
func (Word) Value(src rng.Source, length int, bank words.Bank) (string, error) {
	return WordOfLength(src, length, bank)
}

// Constant always yields the same value.
type Constant string

// Value implements Policy.
func (c Constant) Value(rng.Source, int, words.Bank) (string, error) {
	return string(c), nil
}

// Const returns a digit bound that ignores the length.
func Const(v int) func(int) int {
	return func(int) int { return v }
}

// LengthMinusOne is the digit bound n-1, used to make digits differ from
// the offsets a player could confuse them with.
func LengthMinusOne(length int) int { return length - 1 }
