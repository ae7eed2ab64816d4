// Package textprep provides the text preprocessing operations:
// tokenization, punctuation stripping and stopword removal.
//
// What:
//
//   - Tokenize lowercases, strips every character outside the ASCII
//     alphanumeric/whitespace classes, and collapses whitespace runs into
//     single-space-separated tokens.
//   - RemovePunctuation strips the same character class but preserves the
//     original case and whitespace layout.
//   - RemoveStopwords lowercases the whole text, splits on whitespace,
//     drops tokens found in the stopword set, and rejoins with single
//     spaces.
//
// Character classes:
//
//   - "Alphanumeric" means ASCII [a-zA-Z0-9]; accented and non-Latin
//     letters are stripped like punctuation. This matches the legacy
//     behavior these operations reimplement.
//
// Note:
//
//   - RemoveStopwords lowercases its output even when no stopword
//     matches; callers needing case preserved must filter tokens
//     themselves. Kept deliberately for output compatibility.
//
// Complexity: every operation is O(n) over the input length.
package textprep
