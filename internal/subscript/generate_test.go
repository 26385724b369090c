package subscript

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/indexcat/internal/rng"
)

const trials = 2000

func TestPaired_DistinctAndSorted(t *testing.T) {
	src := rng.New(1)
	for length := 2; length <= 10; length++ {
		for i := 0; i < trials; i++ {
			s := Paired(src, length)
			require.Equal(t, KindSlice, s.Kind)
			require.True(t, s.Start.Present && s.End.Present, "both bounds present: %s", s)
			require.GreaterOrEqual(t, s.Start.Value, 0)
			require.LessOrEqual(t, s.End.Value, length-1)
			require.Less(t, s.Start.Value, s.End.Value, "length %d gave %s", length, s)
		}
	}
}

func TestPaired_ResamplesCollision(t *testing.T) {
	src := rng.NewScript(2, 2, 1, 4)
	s := Paired(src, 5)
	assert.Equal(t, "[1:4]", s.String())
	assert.Zero(t, src.Remaining())
}

func TestPaired_SortsDescendingDraw(t *testing.T) {
	s := Paired(rng.NewScript(4, 0), 5)
	assert.Equal(t, Slice(At(0), At(4)), s)
}

func TestPaired_SortsNumerically(t *testing.T) {
	// A lexicographic sort would put 10 before 9.
	s := Paired(rng.NewScript(10, 9), 12)
	assert.Equal(t, "[9:10]", s.String())
}

func TestPaired_CapFallsBackToWholeRange(t *testing.T) {
	draws := make([]int, 2*MaxResample)
	for i := range draws {
		draws[i] = 3
	}
	s := Paired(rng.NewScript(draws...), 5)
	assert.Equal(t, "[0:4]", s.String())
}

func TestPartial_ExactlyOneMissing(t *testing.T) {
	src := rng.New(2)
	for length := 2; length <= 10; length++ {
		for i := 0; i < trials; i++ {
			s := Partial(src, length)
			require.Equal(t, KindSlice, s.Kind)
			require.NotEqual(t, s.Start.Present, s.End.Present, "exactly one bound missing: %s", s)
			if s.End.Present {
				require.GreaterOrEqual(t, s.End.Value, 1)
				require.LessOrEqual(t, s.End.Value, length-1)
			} else {
				require.GreaterOrEqual(t, s.Start.Value, 0)
				require.LessOrEqual(t, s.Start.Value, length-2)
			}
			require.False(t, s.Degenerate(length))
		}
	}
}

func TestPartial_Branches(t *testing.T) {
	assert.Equal(t, "[:3]", Partial(rng.NewScript(1, 3), 5).String())
	assert.Equal(t, "[2:]", Partial(rng.NewScript(0, 2), 5).String())
}

func TestAny_NeverDegenerate(t *testing.T) {
	src := rng.New(3)
	for length := 2; length <= 10; length++ {
		kinds := map[Kind]int{}
		for i := 0; i < trials; i++ {
			s := Any(src, length)
			kinds[s.Kind]++
			if s.Kind == KindIndex {
				require.GreaterOrEqual(t, s.Index, -length)
				require.Less(t, s.Index, length)
				continue
			}
			require.False(t, s.Degenerate(length), "length %d gave %s", length, s)
			if s.Start.Present && s.End.Present {
				require.Less(t, Normalize(s.Start.Value, length), Normalize(s.End.Value, length), "%s", s)
			}
		}
		assert.NotZero(t, kinds[KindIndex])
		assert.NotZero(t, kinds[KindSlice])
	}
}

func TestAny_Branches(t *testing.T) {
	tests := []struct {
		name  string
		draws []int
		want  string
	}{
		{"index branch", []int{0, -5}, "[-5]"},
		{"ordered pair", []int{1, 1, 3}, "[1:3]"},
		{"pair reordered by normalized value", []int{2, -1, 1}, "[1:-1]"},
		{"negative pair keeps raw values", []int{1, -2, -4}, "[-4:-2]"},
		{"collision collapses to first raw value", []int{1, -4, 1}, "[-4]"},
		{"sentinel on second", []int{2, -2, 5}, "[-2:]"},
		{"sentinel on first", []int{1, 5, 3}, "[:3]"},
		{"sentinel wins over a normal pair order", []int{1, 5, -1}, "[:-1]"},
		{"both sentinels", []int{2, 5, 5}, "[:]"},
		{"empty partial is redrawn", []int{1, 5, 0, 5, -5, 0, 2}, "[0:2]"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := rng.NewScript(tt.draws...)
			assert.Equal(t, tt.want, Any(src, 5).String())
			assert.Zero(t, src.Remaining())
		})
	}
}

func TestAny_RedrawTakesTwoMoreValues(t *testing.T) {
	// Branch flip, then [:0] (redrawn), then [:-5] (redrawn), then [:3].
	src := rng.NewScript(1, 5, 0, 5, -5, 5, 3, 99)
	assert.Equal(t, "[:3]", Any(src, 5).String())
	assert.Equal(t, 1, src.Remaining())
}

func TestFixedAndIndexPolicies(t *testing.T) {
	assert.Equal(t, Index(0), Fixed(Index(0))(nil, 0))
	assert.Equal(t, Index(3), NonNegativeIndex(rng.NewScript(3), 5))
	assert.Equal(t, Index(-5), NegativeIndex(rng.NewScript(-5), 5))
}

func TestShortLengths(t *testing.T) {
	src := rng.New(4)
	assert.Equal(t, Index(0), Paired(src, 1))
	assert.Equal(t, Index(0), Partial(src, 1))
	assert.Equal(t, Index(0), Any(src, 0))
}
