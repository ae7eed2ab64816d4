// Package value defines the scalar model and sentinel errors shared by
// all preprocessing packages of github.com/Krypto02/Lab0.
package value

import "errors"

// Sentinel errors for value parsing.
var (
	// ErrSyntax indicates a malformed list or nested-list literal.
	ErrSyntax = errors.New("value: malformed list literal")
	// ErrNotNumeric indicates a non-numeric item in a numeric-only list.
	ErrNotNumeric = errors.New("value: non-numeric item in numeric list")
)

// Kind discriminates the payload stored in a Value.
type Kind int

const (
	// KindMissing marks an explicit missing value (the "None" token or an
	// empty input item).
	KindMissing Kind = iota
	// KindNumber marks a float64 payload.
	KindNumber
	// KindString marks a string payload.
	KindString
)

// Value is a single heterogeneous scalar: a missing marker, a number, or
// a string. The zero Value is the missing marker.
type Value struct {
	Kind Kind
	Num  float64
	Str  string
}
