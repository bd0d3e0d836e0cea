package dvorak

import (
	"strings"
	"unicode"

	"github.com/pkg/errors"
)

var (
	// ErrMappingGap is returned when an eligible word holds a character the table can't convert
	ErrMappingGap = errors.New("no mapping for character")
	// ErrTableDrift is returned when the table and the exclusion set don't partition the alphabet
	ErrTableDrift = errors.New("substitution table and exclusion set out of sync")
)

// Table maps a character typed on QWERTY to the one the same key gives on Dvorak
type Table map[rune]rune

// Set is a set of characters
type Set map[rune]struct{}

// lowercase pairs, the upper case half of the table is derived from them
var qwertyToDvorak = [...][2]rune{
	{'a', 'a'}, {'b', 'x'}, {'c', 'j'}, {'d', 'e'}, {'f', 'u'}, {'g', 'i'},
	{'h', 'd'}, {'i', 'c'}, {'j', 'h'}, {'k', 't'}, {'l', 'n'}, {'m', 'm'},
	{'n', 'b'}, {'o', 'r'}, {'p', 'l'}, {'r', 'p'}, {'s', 'o'}, {'t', 'y'},
	{'u', 'g'}, {'v', 'k'}, {'x', 'q'}, {'y', 'f'},
}

// keys which land on punctuation in Dvorak
const excluded = "eqwz"

// QwertyToDvorak returns the QWERTY to Dvorak table for both letter cases
func QwertyToDvorak() Table {
	t := make(Table, 2*len(qwertyToDvorak))
	for _, p := range qwertyToDvorak {
		t[p[0]] = p[1]
		t[unicode.ToUpper(p[0])] = unicode.ToUpper(p[1])
	}
	return t
}

// Excluded returns the characters, both cases, which disqualify a word from conversion
func Excluded() Set {
	s := make(Set, 2*len(excluded))
	for _, c := range excluded {
		s[c] = struct{}{}
		s[unicode.ToUpper(c)] = struct{}{}
	}
	return s
}

// Transformer converts eligible words with a fixed table
type Transformer struct {
	table    Table
	excluded Set
}

// New checks that every ASCII letter is either mapped or excluded, never both,
// and that no two letters share an image, then returns a Transformer
func New(table Table, excluded Set) (*Transformer, error) {
	seen := make(map[rune]rune, len(table))
	for k, v := range table {
		if o, dup := seen[v]; dup {
			return nil, errors.Wrapf(ErrTableDrift, "%q and %q both map to %q", o, k, v)
		}
		seen[v] = k
	}
	for _, r := range "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ" {
		_, mapped := table[r]
		_, skip := excluded[r]
		switch {
		case mapped && skip:
			return nil, errors.Wrapf(ErrTableDrift, "%q is both mapped and excluded", r)
		case !mapped && !skip:
			return nil, errors.Wrapf(ErrTableDrift, "%q is neither mapped nor excluded", r)
		}
	}
	return &Transformer{table: table, excluded: excluded}, nil
}

// Eligible checks if word holds no excluded character
func (t *Transformer) Eligible(word string) bool {
	for _, c := range word {
		if _, ok := t.excluded[c]; ok {
			return false
		}
	}
	return true
}

// Transform converts word character by character.
// ok is false when the word isn't eligible, in which case nothing is produced.
func (t *Transformer) Transform(word string) (converted string, ok bool, err error) {
	if !t.Eligible(word) {
		return "", false, nil
	}
	var b strings.Builder
	b.Grow(len(word))
	for _, c := range word {
		d, found := t.table[c]
		if !found {
			return "", false, errors.Wrapf(ErrMappingGap, "%q in word %q", c, word)
		}
		b.WriteRune(d)
	}
	return b.String(), true, nil
}
