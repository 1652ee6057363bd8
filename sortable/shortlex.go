package sortable

import "unicode/utf8"

// ShortLex is a string ordered first by length in runes, then byte-wise.
// This is the order in which regular expression languages are reported:
//
//	"", "a", "b", "aa", "ab", "ba", "bb", "aaa", ...
type ShortLex string

var _ Sortable[ShortLex] = (*ShortLex)(nil)

func (s ShortLex) Equals(other ShortLex) bool {
	return string(s) == string(other)
}

// LessThan returns true if s is shorter than other, or equally long and
// lexicographically smaller.
func (s ShortLex) LessThan(other ShortLex) bool {
	sn, on := utf8.RuneCountInString(string(s)), utf8.RuneCountInString(string(other))
	if sn != on {
		return sn < on
	}

	return string(s) < string(other)
}
