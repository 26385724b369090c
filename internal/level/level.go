// internal/level/level.go
//
// Level templates and the puzzles drawn from them.
// Defines:
//   - Kind: what a level asks for (index, slice, either) plus the Win sentinel.
//   - LengthRange: how long the sequence is.
//   - Level: an immutable template bundling length, value and subscript policies.
//   - Puzzle: one materialized instance of a Level.

package level

import (
	"fmt"

	"github.com/robalobadob/indexcat/internal/rng"
	"github.com/robalobadob/indexcat/internal/subscript"
	"github.com/robalobadob/indexcat/internal/values"
	"github.com/robalobadob/indexcat/internal/words"
)

// Kind tags the type of answer a level asks for.
type Kind int

const (
	KindIndex Kind = iota
	KindSlice
	KindSubscript // index or slice, decided per puzzle
	KindWin       // terminal level: the mode is finished
)

func (k Kind) String() string {
	switch k {
	case KindIndex:
		return "index"
	case KindSlice:
		return "slice"
	case KindSubscript:
		return "subscript"
	case KindWin:
		return "win"
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// MarshalText lets Kind appear as its name in JSON.
func (k Kind) MarshalText() ([]byte, error) { return []byte(k.String()), nil }

// UnmarshalText accepts the names MarshalText produces.
func (k *Kind) UnmarshalText(b []byte) error {
	for c := KindIndex; c <= KindWin; c++ {
		if c.String() == string(b) {
			*k = c
			return nil
		}
	}
	return fmt.Errorf("level: unknown kind %q", b)
}

// LengthRange is a closed range of sequence lengths.
type LengthRange struct {
	Min, Max int
}

// Between returns the range [min, max].
func Between(min, max int) LengthRange { return LengthRange{Min: min, Max: max} }

// Fixed returns the range holding only n.
func Fixed(n int) LengthRange { return LengthRange{Min: n, Max: n} }

// Draw picks a length uniformly from the range.
func (r LengthRange) Draw(src rng.Source) int { return src.Between(r.Min, r.Max) }

// Level is a puzzle template. Each Generate call draws a fresh instance.
type Level struct {
	name   string
	wrap   string
	kind   Kind
	length LengthRange
	value  values.Policy
	index  subscript.Policy
}

// New builds a Level. wrap is the opening and closing symbol pair shown
// around the sequence, e.g. "[]" or `""`.
func New(name, wrap string, kind Kind, length LengthRange, value values.Policy, index subscript.Policy) Level {
	return Level{name: name, wrap: wrap, kind: kind, length: length, value: value, index: index}
}

func (l Level) Name() string             { return l.name }
func (l Level) Wrap() string             { return l.wrap }
func (l Level) Kind() Kind               { return l.kind }
func (l Level) LengthRange() LengthRange { return l.length }

// IsWin reports whether l is the terminal sentinel of a mode.
func (l Level) IsWin() bool { return l.kind == KindWin }

// UsesWords reports whether the level draws its values from the word bank.
func (l Level) UsesWords() bool {
	_, ok := l.value.(values.Word)
	return ok
}

// DrawLength runs the length policy.
func (l Level) DrawLength(src rng.Source) int { return l.length.Draw(src) }

// DrawValue runs the value policy.
func (l Level) DrawValue(src rng.Source, length int, bank words.Bank) (string, error) {
	return l.value.Value(src, length, bank)
}

// DrawSubscript runs the subscript policy.
func (l Level) DrawSubscript(src rng.Source, length int) subscript.Subscript {
	return l.index(src, length)
}

// Generate materializes one puzzle: length first, then value, then target.
func (l Level) Generate(src rng.Source, bank words.Bank) (Puzzle, error) {
	n := l.DrawLength(src)
	v, err := l.DrawValue(src, n, bank)
	if err != nil {
		return Puzzle{}, fmt.Errorf("level %q: %w", l.name, err)
	}
	return Puzzle{
		Level:  l.name,
		Kind:   l.kind,
		Wrap:   l.wrap,
		Length: n,
		Value:  v,
		Target: l.DrawSubscript(src, n),
	}, nil
}
