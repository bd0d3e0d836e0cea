package index

// Index is the set of every word of the list, for exact membership lookups
type Index map[string]struct{}

// New indexes all tokens; repeated tokens are stored once
func New(tokens []string) Index {
	idx := make(Index, len(tokens))
	for _, t := range tokens {
		idx[t] = struct{}{}
	}
	return idx
}

// Contains checks if word is in the index
func (idx Index) Contains(word string) bool {
	_, ok := idx[word]
	return ok
}

// Len returns the number of distinct words
func (idx Index) Len() int {
	return len(idx)
}
