package level

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/indexcat/internal/rng"
	"github.com/robalobadob/indexcat/internal/subscript"
	"github.com/robalobadob/indexcat/internal/values"
	"github.com/robalobadob/indexcat/internal/words"
)

func TestGenerate_DrawOrder(t *testing.T) {
	l := New("Drag", "[]", KindSlice, Between(4, 5),
		values.DigitString{Min: values.Const(0), Max: values.Const(9)}, subscript.Paired)

	// length, four digits, then the two slice bounds
	p, err := l.Generate(rng.NewScript(4, 1, 2, 3, 4, 3, 0), nil)
	require.NoError(t, err)
	assert.Equal(t, 4, p.Length)
	assert.Equal(t, "1234", p.Value)
	assert.Equal(t, "[0:3]", p.Target.String())
	assert.Equal(t, "Drag", p.Level)
	assert.Equal(t, KindSlice, p.Kind)
}

func TestGenerate_WordLookupFailure(t *testing.T) {
	l := New("Long", `""`, KindIndex, Fixed(6), values.Word{}, subscript.NonNegativeIndex)
	_, err := l.Generate(rng.New(1), words.Bank{4: {"meow"}, 5: {"kitty"}})
	assert.ErrorIs(t, err, values.ErrNoWords)
}

func TestPuzzle_Rendering(t *testing.T) {
	list := Puzzle{Wrap: "[]", Length: 4, Value: "4596", Target: subscript.Slice(subscript.At(1), subscript.Missing())}
	assert.Equal(t, "[4, 5, 9, 6]", list.Display())
	assert.Equal(t, "cat[1:]", list.Prompt())
	got, err := list.Answer()
	require.NoError(t, err)
	assert.Equal(t, []string{"5", "9", "6"}, got)

	str := Puzzle{Wrap: `""`, Length: 5, Value: "kitty", Target: subscript.Index(-1)}
	assert.Equal(t, `"kitty"`, str.Display())
	assert.Equal(t, "cat[-1]", str.Prompt())
	assert.True(t, str.Accepts(subscript.Index(4)))
	assert.False(t, str.Accepts(subscript.Slice(subscript.At(4), subscript.Missing())))
}

func TestKind_JSON(t *testing.T) {
	b, err := json.Marshal(map[string]Kind{"k": KindSubscript})
	require.NoError(t, err)
	assert.JSONEq(t, `{"k":"subscript"}`, string(b))
	assert.Equal(t, "win", KindWin.String())

	var got map[string]Kind
	require.NoError(t, json.Unmarshal(b, &got))
	assert.Equal(t, KindSubscript, got["k"])
	assert.Error(t, json.Unmarshal([]byte(`{"k":"tuple"}`), &got))
}

func TestCatalog_Default(t *testing.T) {
	c := DefaultCatalog()
	assert.Equal(t, []string{ModeLists, ModeStrings}, c.Modes())

	lists, err := c.Levels(ModeLists)
	require.NoError(t, err)
	require.Len(t, lists, 7)
	assert.Equal(t, "Round 1", lists[0].Name())
	assert.Equal(t, KindSlice, lists[3].Kind())

	strs, err := c.Levels(ModeStrings)
	require.NoError(t, err)
	require.Len(t, strs, 9)
	assert.Equal(t, Fixed(7), strs[7].LengthRange())

	for _, mode := range c.Modes() {
		levels, _ := c.Levels(mode)
		last := levels[len(levels)-1]
		assert.True(t, last.IsWin(), "mode %s must end with a win level", mode)
		for _, l := range levels[:len(levels)-1] {
			assert.False(t, l.IsWin())
		}
	}
}

func TestCatalog_LevelsIsACopy(t *testing.T) {
	c := DefaultCatalog()
	levels, _ := c.Levels(ModeLists)
	levels[0] = Win("[]")
	again, _ := c.Levels(ModeLists)
	assert.Equal(t, "Round 1", again[0].Name())
}

func TestCatalog_UnknownMode(t *testing.T) {
	_, err := DefaultCatalog().Levels("tuples")
	assert.ErrorIs(t, err, ErrUnknownMode)
}

func TestCatalog_Validate(t *testing.T) {
	c := DefaultCatalog()
	bank, err := words.Default()
	require.NoError(t, err)
	assert.NoError(t, c.Validate(bank))

	err = c.Validate(words.Bank{4: {"meow"}, 5: {"kitty"}})
	assert.ErrorIs(t, err, values.ErrNoWords)
	assert.Contains(t, err.Error(), "7-letter")
}

func TestCatalog_EveryLevelGenerates(t *testing.T) {
	c := DefaultCatalog()
	bank, err := words.Default()
	require.NoError(t, err)
	src := rng.New(11)

	for _, mode := range c.Modes() {
		levels, _ := c.Levels(mode)
		for _, l := range levels {
			for i := 0; i < 200; i++ {
				p, err := l.Generate(src, bank)
				require.NoError(t, err, "%s/%s", mode, l.Name())
				require.Len(t, p.Elements(), p.Length)
				if l.IsWin() {
					assert.Equal(t, ":)", p.Value)
					assert.Equal(t, ":)", p.Display())
					assert.Equal(t, subscript.Index(0), p.Target)
					continue
				}
				_, err = p.Answer()
				require.NoError(t, err, "%s/%s target %s", mode, l.Name(), p.Target)
				require.False(t, p.Target.Degenerate(p.Length))
				switch l.Kind() {
				case KindIndex:
					require.False(t, p.Target.IsSlice())
				case KindSlice:
					require.True(t, p.Target.IsSlice())
				}
			}
		}
	}
}

func TestResolveMode(t *testing.T) {
	assert.Equal(t, ModeLists, ResolveMode("", DefaultMode))
	assert.Equal(t, ModeLists, ResolveMode("   ", DefaultMode))
	assert.Equal(t, ModeStrings, ResolveMode(" strings ", DefaultMode))
}
