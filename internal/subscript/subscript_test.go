package subscript

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestString(t *testing.T) {
	assert.Equal(t, "[2]", Index(2).String())
	assert.Equal(t, "[-1]", Index(-1).String())
	assert.Equal(t, "[1:4]", Slice(At(1), At(4)).String())
	assert.Equal(t, "[:3]", Slice(Missing(), At(3)).String())
	assert.Equal(t, "[-2:]", Slice(At(-2), Missing()).String())
	assert.Equal(t, "[:]", Slice(Missing(), Missing()).String())
}

func TestResolve(t *testing.T) {
	tests := []struct {
		sub        Subscript
		start, end int
	}{
		{Index(0), 0, 1},
		{Index(-1), 4, 5},
		{Index(-5), 0, 1},
		{Slice(At(1), At(4)), 1, 4},
		{Slice(Missing(), At(3)), 0, 3},
		{Slice(At(-2), Missing()), 3, 5},
		{Slice(Missing(), Missing()), 0, 5},
		{Slice(At(-9), At(9)), 0, 5},
		{Slice(At(4), At(1)), 4, 4},
	}
	for _, tt := range tests {
		t.Run(tt.sub.String(), func(t *testing.T) {
			start, end, err := tt.sub.Resolve(5)
			require.NoError(t, err)
			assert.Equal(t, tt.start, start)
			assert.Equal(t, tt.end, end)
		})
	}
}

func TestResolve_IndexOutOfRange(t *testing.T) {
	_, _, err := Index(5).Resolve(5)
	assert.ErrorIs(t, err, ErrOutOfRange)
	_, _, err = Index(-6).Resolve(5)
	assert.ErrorIs(t, err, ErrOutOfRange)
}

func TestSelect(t *testing.T) {
	cat := []string{"k", "i", "t", "t", "y"}

	got, err := Slice(At(1), At(-1)).Select(cat)
	require.NoError(t, err)
	assert.Equal(t, []string{"i", "t", "t"}, got)

	got, err = Index(-1).Select(cat)
	require.NoError(t, err)
	assert.Equal(t, []string{"y"}, got)

	got[0] = "z"
	assert.Equal(t, "y", cat[4], "Select must copy")
}

func TestEquivalent(t *testing.T) {
	assert.True(t, Equivalent(Slice(At(-3), Missing()), Slice(At(2), Missing()), 5))
	assert.True(t, Equivalent(Slice(At(0), At(5)), Slice(Missing(), Missing()), 5))
	assert.True(t, Equivalent(Index(-1), Index(4), 5))
	assert.False(t, Equivalent(Index(1), Slice(At(1), At(2)), 5), "index and slice differ in kind")
	assert.False(t, Equivalent(Index(5), Index(5), 5), "out-of-range index never matches")
	assert.False(t, Equivalent(Slice(At(1), At(3)), Slice(At(1), At(4)), 5))
}

func TestDegenerate(t *testing.T) {
	assert.True(t, Slice(At(1), At(-4)).Degenerate(5))
	assert.True(t, Slice(Missing(), At(0)).Degenerate(5))
	assert.True(t, Slice(Missing(), At(-5)).Degenerate(5))
	assert.True(t, Slice(At(3), At(1)).Degenerate(5))
	assert.False(t, Slice(Missing(), Missing()).Degenerate(5))
	assert.False(t, Slice(At(4), Missing()).Degenerate(5))
	assert.False(t, Index(0).Degenerate(5))
}

func TestParse(t *testing.T) {
	tests := map[string]Subscript{
		"[2]":      Index(2),
		"-1":       Index(-1),
		" [ -2 ] ": Index(-2),
		"[1:4]":    Slice(At(1), At(4)),
		"1:4":      Slice(At(1), At(4)),
		"[:3]":     Slice(Missing(), At(3)),
		"[-2:]":    Slice(At(-2), Missing()),
		"[:]":      Slice(Missing(), Missing()),
		"[ 1 : ]":  Slice(At(1), Missing()),
	}
	for in, want := range tests {
		got, err := Parse(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
}

func TestParse_RoundTripsString(t *testing.T) {
	for _, s := range []Subscript{Index(3), Slice(At(-4), At(-1)), Slice(Missing(), At(2))} {
		got, err := Parse(s.String())
		require.NoError(t, err)
		assert.Equal(t, s, got)
	}
}

func TestParse_Errors(t *testing.T) {
	for _, in := range []string{"", "[]", "[1", "x", "[1:2:3]", "[a:]", "[::]"} {
		_, err := Parse(in)
		assert.ErrorIs(t, err, ErrSyntax, in)
	}
}

func TestJSON(t *testing.T) {
	b, err := json.Marshal(Index(-1))
	require.NoError(t, err)
	assert.JSONEq(t, `{"kind":"index","index":-1}`, string(b))

	b, err = json.Marshal(Slice(At(1), Missing()))
	require.NoError(t, err)
	assert.JSONEq(t, `{"kind":"slice","start":1,"end":null}`, string(b))

	var s Subscript
	require.NoError(t, json.Unmarshal([]byte(`{"kind":"slice","end":3}`), &s))
	assert.Equal(t, Slice(Missing(), At(3)), s)

	require.NoError(t, json.Unmarshal([]byte(`{"kind":"index","index":0}`), &s))
	assert.Equal(t, Index(0), s)

	assert.ErrorIs(t, json.Unmarshal([]byte(`{"kind":"index"}`), &s), ErrSyntax)
	assert.ErrorIs(t, json.Unmarshal([]byte(`{"kind":"step"}`), &s), ErrSyntax)
}
