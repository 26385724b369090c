package assets

import (
	"embed"
	"io"
)

//go:embed words.txt
var FS embed.FS

// WordsFile opens the embedded word bank. Callers close it.
func WordsFile() (io.ReadCloser, error) {
	return FS.Open("words.txt")
}
