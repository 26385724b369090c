// internal/words/words.go
//
// Word bank for the strings mode.
//
// Responsibilities:
//   - Load a word list from a file (WORDS_FILE) or fall back to the embedded
//     assets/words.txt.
//   - Group words by length so a level can ask for "a word of n letters".
//
// Constraints:
//   • Words must be lowercase alphabetic (a–z); anything else is skipped.
//   • Blank lines and lines starting with # are ignored.
//   • Duplicates are dropped; first occurrence wins the ordering.

package words

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"sync"

	"github.com/robalobadob/indexcat/assets"
)

// Bank maps a word length to the words of exactly that length.
type Bank map[int][]string

var (
	defaultOnce sync.Once
	defaultBank Bank
	defaultErr  error
)

// Default returns the embedded bank, parsed once.
func Default() (Bank, error) {
	defaultOnce.Do(func() {
		f, err := assets.WordsFile()
		if err != nil {
			defaultErr = fmt.Errorf("words: open embedded list: %w", err)
			return
		}
		defer f.Close()
		defaultBank, defaultErr = Parse(f)
	})
	return defaultBank, defaultErr
}

// Load reads a bank from path, or returns the embedded bank when path is empty.
func Load(path string) (Bank, error) {
	if path == "" {
		return Default()
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("words: %w", err)
	}
	defer f.Close()
	return Parse(f)
}

// Parse reads one word per line. It fails if no usable word is found.
func Parse(r io.Reader) (Bank, error) {
	bank := Bank{}
	seen := map[string]struct{}{}
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		w := strings.TrimSpace(strings.ToLower(sc.Text()))
		if w == "" || strings.HasPrefix(w, "#") || !isAlpha(w) {
			continue
		}
		if _, dup := seen[w]; dup {
			continue
		}
		seen[w] = struct{}{}
		bank[len(w)] = append(bank[len(w)], w)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("words: read list: %w", err)
	}
	if len(bank) == 0 {
		return nil, errors.New("words: list is empty")
	}
	return bank, nil
}

// OfLength returns the words with exactly n letters (nil if none).
func (b Bank) OfLength(n int) []string { return b[n] }

// Has reports whether the bank holds at least one word of n letters.
func (b Bank) Has(n int) bool { return len(b[n]) > 0 }

// Lengths returns the covered word lengths in ascending order.
func (b Bank) Lengths() []int {
	out := make([]int, 0, len(b))
	for n, list := range b {
		if len(list) > 0 {
			out = append(out, n)
		}
	}
	sort.Ints(out)
	return out
}

// Size returns the total number of words.
func (b Bank) Size() int {
	total := 0
	for _, list := range b {
		total += len(list)
	}
	return total
}

// isAlpha reports whether s is all lowercase ASCII letters.
func isAlpha(s string) bool {
	for _, r := range s {
		if r < 'a' || r > 'z' {
			return false
		}
	}
	return true
}
