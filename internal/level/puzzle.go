package level

import (
	"strings"

	"github.com/robalobadob/indexcat/internal/subscript"
)

// SequenceName is the variable the prompt subscripts.
const SequenceName = "cat"

// Puzzle is one instance of a Level: the sequence on screen and the
// subscript the player has to find.
type Puzzle struct {
	Level  string
	Kind   Kind
	Wrap   string
	Length int
	Value  string
	Target subscript.Subscript
}

// Elements splits the value into the per-position elements a subscript
// selects from.
func (p Puzzle) Elements() []string {
	out := make([]string, 0, len(p.Value))
	for _, r := range p.Value {
		out = append(out, string(r))
	}
	return out
}

// Display renders the sequence wrapped in the level's symbols, e.g. "[4, 5, 9]"
// for lists or `"kitty"` for strings. The finish screen is shown bare.
func (p Puzzle) Display() string {
	if p.Kind == KindWin {
		return p.Value
	}
	left, right := "", ""
	if w := []rune(p.Wrap); len(w) == 2 {
		left, right = string(w[0]), string(w[1])
	}
	if left == "[" {
		return left + strings.Join(p.Elements(), ", ") + right
	}
	return left + p.Value + right
}

// Prompt is the expression shown to the player, e.g. "cat[1:3]".
func (p Puzzle) Prompt() string {
	return SequenceName + p.Target.String()
}

// Answer returns the elements the target selects.
func (p Puzzle) Answer() ([]string, error) {
	return p.Target.Select(p.Elements())
}

// Accepts reports whether the player's subscript picks what the target does.
func (p Puzzle) Accepts(s subscript.Subscript) bool {
	return subscript.Equivalent(p.Target, s, p.Length)
}
