// Package numeric defines options and sentinel errors for the numeric
// transformation subpackage of github.com/Krypto02/Lab0.
package numeric

import "errors"

// Sentinel errors for numeric transformations.
var (
	// ErrBadRange indicates NewMin >= NewMax in a normalization request.
	ErrBadRange = errors.New("numeric: new minimum must be less than new maximum")
	// ErrNonNumericValue indicates a NaN element in input that requires
	// finite numeric values.
	ErrNonNumericValue = errors.New("numeric: all values must be numeric and not NaN")
)

// NormalizeOptions configures min-max normalization.
//
// Fields:
//   - NewMin — lower bound of the target range.
//   - NewMax — upper bound of the target range; must exceed NewMin.
type NormalizeOptions struct {
	NewMin float64
	NewMax float64
}

// DefaultNormalizeOptions returns the canonical [0, 1] target range.
func DefaultNormalizeOptions() NormalizeOptions {
	return NormalizeOptions{NewMin: 0, NewMax: 1}
}
