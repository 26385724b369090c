package words

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	in := `# comment
cat
Kitty
cat

purrs
x-ray
meow`
	bank, err := Parse(strings.NewReader(in))
	require.NoError(t, err)
	assert.Equal(t, []string{"cat"}, bank.OfLength(3))
	assert.Equal(t, []string{"meow"}, bank.OfLength(4))
	assert.Equal(t, []string{"kitty", "purrs"}, bank.OfLength(5))
	assert.Equal(t, []int{3, 4, 5}, bank.Lengths())
	assert.Equal(t, 4, bank.Size())
	assert.False(t, bank.Has(6))
}

func TestParse_Empty(t *testing.T) {
	_, err := Parse(strings.NewReader("# nothing here\n\n"))
	assert.Error(t, err)
}

func TestDefault_CoversShippedLengths(t *testing.T) {
	bank, err := Default()
	require.NoError(t, err)
	for n := 2; n <= 7; n++ {
		assert.True(t, bank.Has(n), "embedded bank has no %d-letter words", n)
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "words.txt")
	require.NoError(t, os.WriteFile(path, []byte("tabby\nclaws\n"), 0o644))

	bank, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"tabby", "claws"}, bank.OfLength(5))

	_, err = Load(filepath.Join(t.TempDir(), "missing.txt"))
	assert.Error(t, err)

	def, err := Load("")
	require.NoError(t, err)
	assert.NotZero(t, def.Size())
}
