package wordlist

import (
	"bytes"
	"strings"
	"unicode"

	"github.com/pkg/errors"
	"github.com/spf13/afero"
)

// DefaultPath is the system dictionary most unix hosts ship
const DefaultPath = "/usr/share/dict/words"

var (
	// ErrResourceUnavailable is returned when the word list can't be opened
	ErrResourceUnavailable = errors.New("word list unavailable")
	// ErrReadFailure is returned when reading the word list fails midway
	ErrReadFailure = errors.New("word list read failure")
)

// Load reads the whole word list at path and returns one token per non-blank line.
// Trailing whitespace, \r included, is trimmed from every line.
func Load(fs afero.Fs, path string) ([]string, error) {
	f, err := fs.Open(path)
	if err != nil {
		return nil, errors.Wrapf(ErrResourceUnavailable, "couldn't open %s: %v", path, err)
	}
	defer f.Close()

	var buf bytes.Buffer
	if fi, err := f.Stat(); err == nil && fi.Size() > 0 {
		buf.Grow(int(fi.Size()) + bytes.MinRead)
	}
	if _, err := buf.ReadFrom(f); err != nil {
		return nil, errors.Wrapf(ErrReadFailure, "couldn't read %s: %v", path, err)
	}

	return Split(buf.String()), nil
}

// Split cuts contents on newlines, trims trailing whitespace and drops blank lines
func Split(contents string) []string {
	lines := strings.Split(contents, "\n")
	words := make([]string, 0, len(lines))
	for _, line := range lines {
		w := strings.TrimRightFunc(line, unicode.IsSpace)
		if w == "" {
			continue
		}
		words = append(words, w)
	}
	return words
}
