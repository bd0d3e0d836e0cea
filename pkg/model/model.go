package model

// Separator sits between the original and the converted word in output lines
const Separator = " -> "

// Match represents a word whose Dvorak conversion is also in the word list
type Match struct {
	Original    string
	Transformed string
}

// String renders the match as an output line, without line ending
func (m Match) String() string {
	return m.Original + Separator + m.Transformed
}
