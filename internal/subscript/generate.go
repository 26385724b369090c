// internal/subscript/generate.go
//
// Random subscript policies used by the level catalog.
//
// Every policy honors one rule: a slice whose present bounds normalize to the
// same offset is never returned. Paired resamples, Any falls back to an
// index. Retry loops are capped at MaxResample; for any sane source the cap
// is never reached.

package subscript

import "github.com/robalobadob/indexcat/internal/rng"

// MaxResample bounds every redraw loop in this file.
const MaxResample = 64

// Policy draws one target subscript for a sequence of the given length.
type Policy func(src rng.Source, length int) Subscript

// Fixed returns a policy that always yields s.
func Fixed(s Subscript) Policy {
	return func(rng.Source, int) Subscript { return s }
}

// NonNegativeIndex draws an index in [0, length-1].
func NonNegativeIndex(src rng.Source, length int) Subscript {
	return Index(src.Between(0, length-1))
}

// NegativeIndex draws an index in [-length, -1].
func NegativeIndex(src rng.Source, length int) Subscript {
	return Index(src.Between(-length, -1))
}

// Paired draws two distinct offsets in [0, length-1] and returns them as an
// ascending slice with both bounds present.
//
// Lengths below 2 cannot hold such a slice and yield [0].
func Paired(src rng.Source, length int) Subscript {
	if length < 2 {
		return Index(0)
	}
	for i := 0; i < MaxResample; i++ {
		a, b := src.Between(0, length-1), src.Between(0, length-1)
		if a == b {
			continue
		}
		if a > b {
			a, b = b, a
		}
		return Slice(At(a), At(b))
	}
	return Slice(At(0), At(length-1))
}

// Partial returns a slice with exactly one missing bound, chosen by a coin
// flip: [:k] with k in [1, length-1], or [k:] with k in [0, length-2].
//
// Lengths below 2 yield [0].
func Partial(src rng.Source, length int) Subscript {
	if length < 2 {
		return Index(0)
	}
	if src.Between(0, 1) == 1 {
		return Slice(Missing(), At(src.Between(1, length-1)))
	}
	return Slice(At(src.Between(0, length-2)), Missing())
}

// Any returns an index one time in three, drawn from the full range
// [-length, length-1]. Otherwise it draws two raw offsets in
// [-length, length], where length itself stands for a missing bound:
//
//   - If either draw hit the sentinel, the pair is returned as drawn, with the
//     sentinel side missing. A result that would select nothing ([:0], [:-n])
//     is redrawn; [:] is kept. Each redraw takes two more values from src,
//     so the draw count for a seed depends on how often this happens.
//   - Otherwise both are normalized. Equal offsets collapse to an index on the
//     first raw value; distinct ones become a slice ordered by normalized
//     offset, keeping the raw (possibly negative) values.
func Any(src rng.Source, length int) Subscript {
	if length < 1 {
		return Index(0)
	}
	if src.Between(0, 2) == 0 {
		return Index(src.Between(-length, length-1))
	}
	for i := 0; i < MaxResample; i++ {
		first, second := src.Between(-length, length), src.Between(-length, length)
		if first == length || second == length {
			s := Slice(sentinelBound(first, length), sentinelBound(second, length))
			if s.Degenerate(length) {
				continue
			}
			return s
		}
		nf, ns := Normalize(first, length), Normalize(second, length)
		switch {
		case nf == ns:
			return Index(first)
		case nf < ns:
			return Slice(At(first), At(second))
		default:
			return Slice(At(second), At(first))
		}
	}
	return Slice(Missing(), Missing())
}

func sentinelBound(v, length int) Bound {
	if v == length {
		return Missing()
	}
	return At(v)
}
