// Package textprep implements tokenization, punctuation stripping and
// stopword removal over plain text.
package textprep

import "strings"

// Tokenize lowercases text, strips every character that is not ASCII
// alphanumeric or whitespace, and joins the remaining tokens with single
// spaces.
//
//	Tokenize("Hello, World!") == "hello world"
//
// Complexity: O(n) time and memory.
func Tokenize(text string) string {
	cleaned := stripNonAlnum(strings.ToLower(text))
	return strings.Join(strings.Fields(cleaned), " ")
}

// RemovePunctuation strips every character that is not ASCII alphanumeric
// or whitespace, preserving case and the existing whitespace layout
// (runs are not collapsed).
// Complexity: O(n) time and memory.
func RemovePunctuation(text string) string {
	return stripNonAlnum(text)
}

// RemoveStopwords lowercases text, splits it on whitespace, removes every
// token whose lowercase form appears in stopwords (matched
// case-insensitively), and rejoins with single spaces. The output is
// always lowercase, even when nothing was removed.
// Complexity: O(n + s) time, O(n + s) memory for s total stopword bytes.
func RemoveStopwords(text string, stopwords []string) string {
	stopset := make(map[string]struct{}, len(stopwords))
	for _, sw := range stopwords {
		stopset[strings.ToLower(sw)] = struct{}{}
	}

	words := strings.Fields(strings.ToLower(text))
	kept := make([]string, 0, len(words))
	for _, w := range words {
		if _, drop := stopset[w]; !drop {
			kept = append(kept, w)
		}
	}
	return strings.Join(kept, " ")
}

// stripNonAlnum removes every byte outside ASCII [a-zA-Z0-9] and the
// whitespace class. Multi-byte (non-ASCII) runes are stripped entirely.
func stripNonAlnum(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if isAlnum(r) || isSpace(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func isAlnum(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9')
}

func isSpace(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\r', '\f', '\v':
		return true
	}
	return false
}
