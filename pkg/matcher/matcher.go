package matcher

import (
	"bufio"
	"io"

	"dvorakwords/helper"
	"dvorakwords/pkg/model"
)

// Lookup is the index the matcher queries
type Lookup interface {
	Contains(word string) bool
}

// Converter turns a word into its Dvorak counterpart, ok is false for skipped words
type Converter interface {
	Transform(word string) (converted string, ok bool, err error)
}

// Matcher finds the words whose conversion is also a word
type Matcher struct {
	index     Lookup
	converter Converter
}

// New returns a Matcher
func New(index Lookup, converter Converter) *Matcher {
	return &Matcher{index: index, converter: converter}
}

// Find returns the matches in the order words appear, each word considered once.
// The first conversion error aborts and no match is returned.
func (m *Matcher) Find(words []string) ([]model.Match, error) {
	var matches []model.Match
	for _, w := range helper.RemoveDuplicate(words) {
		converted, ok, err := m.converter.Transform(w)
		if err != nil {
			return nil, err
		}
		if !ok || !m.index.Contains(converted) {
			continue
		}
		matches = append(matches, model.Match{Original: w, Transformed: converted})
	}
	return matches, nil
}

// Write prints one line per match
func Write(w io.Writer, matches []model.Match) error {
	bw := bufio.NewWriter(w)
	for _, m := range matches {
		if _, err := bw.WriteString(m.String() + "\n"); err != nil {
			return err
		}
	}
	return bw.Flush()
}
