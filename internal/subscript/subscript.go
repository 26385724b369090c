// internal/subscript/subscript.go
//
// Python-style subscripts over a sequence of known length.
// Defines:
//   - Subscript: either an Index (one signed offset) or a Slice (two bounds,
//     each possibly missing).
//   - Resolve/Select: the half-open range and the elements a subscript picks.
//   - Equivalent: whether two subscripts pick the same thing.
//
// Notes:
//   - Negative offsets wrap once: -1 is the last element.
//   - Slice bounds are clamped the way Python clamps them; indexes are not.

package subscript

import (
	"errors"
	"strconv"
	"strings"
)

// Kind tags a Subscript as an index or a slice.
type Kind int

const (
	KindIndex Kind = iota
	KindSlice
)

func (k Kind) String() string {
	if k == KindSlice {
		return "slice"
	}
	return "index"
}

// ErrOutOfRange is returned when an index falls outside [-length, length).
var ErrOutOfRange = errors.New("subscript: index out of range")

// Bound is one side of a slice. A bound that is not Present means "use the
// sequence's natural edge".
type Bound struct {
	Value   int
	Present bool
}

// At returns a present bound.
func At(v int) Bound { return Bound{Value: v, Present: true} }

// Missing returns an absent bound.
func Missing() Bound { return Bound{} }

func (b Bound) String() string {
	if !b.Present {
		return ""
	}
	return strconv.Itoa(b.Value)
}

// Subscript is an Index or a Slice. The zero value is the index [0].
type Subscript struct {
	Kind  Kind
	Index int   // KindIndex only
	Start Bound // KindSlice only
	End   Bound // KindSlice only
}

// Index builds an index subscript.
func Index(i int) Subscript { return Subscript{Kind: KindIndex, Index: i} }

// Slice builds a slice subscript.
func Slice(start, end Bound) Subscript {
	return Subscript{Kind: KindSlice, Start: start, End: end}
}

// IsSlice reports whether s is a slice.
func (s Subscript) IsSlice() bool { return s.Kind == KindSlice }

// String renders s the way it would be written after a sequence name,
// e.g. "[2]", "[-1]", "[1:4]", "[:3]", "[2:]".
func (s Subscript) String() string {
	var b strings.Builder
	b.WriteByte('[')
	if s.Kind == KindIndex {
		b.WriteString(strconv.Itoa(s.Index))
	} else {
		b.WriteString(s.Start.String())
		b.WriteByte(':')
		b.WriteString(s.End.String())
	}
	b.WriteByte(']')
	return b.String()
}

// Normalize maps a signed offset into non-negative space: v < 0 becomes
// v + length. It does not clamp.
func Normalize(v, length int) int {
	if v < 0 {
		return v + length
	}
	return v
}

// Resolve returns the half-open range [start, end) that s selects from a
// sequence of the given length.
//
// An index resolves to [i, i+1) after normalization and fails with
// ErrOutOfRange outside [-length, length). A slice never fails: bounds are
// clamped to [0, length] and an end before the start gives an empty range.
func (s Subscript) Resolve(length int) (int, int, error) {
	if s.Kind == KindIndex {
		if s.Index < -length || s.Index >= length {
			return 0, 0, ErrOutOfRange
		}
		i := Normalize(s.Index, length)
		return i, i + 1, nil
	}
	start := clampBound(s.Start, 0, length)
	end := clampBound(s.End, length, length)
	if end < start {
		end = start
	}
	return start, end, nil
}

func clampBound(b Bound, def, length int) int {
	if !b.Present {
		return def
	}
	v := Normalize(b.Value, length)
	if v < 0 {
		return 0
	}
	if v > length {
		return length
	}
	return v
}

// Select returns the elements s picks out of elements.
func (s Subscript) Select(elements []string) ([]string, error) {
	start, end, err := s.Resolve(len(elements))
	if err != nil {
		return nil, err
	}
	out := make([]string, end-start)
	copy(out, elements[start:end])
	return out, nil
}

// Degenerate reports whether s is a slice that should never be shown as a
// puzzle: its present bounds normalize to the same offset, or it selects
// nothing at all. Indexes are never degenerate.
func (s Subscript) Degenerate(length int) bool {
	if s.Kind != KindSlice {
		return false
	}
	if s.Start.Present && s.End.Present &&
		Normalize(s.Start.Value, length) == Normalize(s.End.Value, length) {
		return true
	}
	start, end, _ := s.Resolve(length)
	return start == end
}

// Equivalent reports whether a and b are the same kind of subscript and pick
// the same range out of a sequence of the given length. So [-3:] and [2:]
// are equivalent at length 5, while [1] and [1:2] are not.
func Equivalent(a, b Subscript, length int) bool {
	if a.Kind != b.Kind {
		return false
	}
	as, ae, err := a.Resolve(length)
	if err != nil {
		return false
	}
	bs, be, err := b.Resolve(length)
	if err != nil {
		return false
	}
	return as == bs && ae == be
}
