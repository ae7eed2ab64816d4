// Package numeric provides the numeric transformations: min-max
// normalization, z-score standardization, clipping, integer conversion
// and logarithmic transform.
//
// What:
//
//   - NormalizeMinMax linearly rescales values into [NewMin, NewMax].
//   - StandardizeZScore rescales to zero mean and unit sample variance.
//   - ClipValues clamps every element into [min, max].
//   - ToInt converts numeric strings to integers, dropping failures.
//   - LogTransform takes the natural log of strictly positive elements,
//     dropping the rest.
//
// Edge cases:
//
//   - NormalizeMinMax: empty input returns empty; constant input returns
//     a sequence of NewMin (the degenerate range has nothing to spread).
//   - StandardizeZScore: empty → empty, single element → [0], zero
//     sample deviation → all zeros.
//
// Drop policies:
//
//   - ToInt and LogTransform silently exclude elements that cannot be
//     converted (non-numeric strings, non-positive values). This is a
//     deliberate documented policy, not an error path: the functions
//     return only successes.
//
// Errors:
//
//   - ErrBadRange: NewMin >= NewMax in NormalizeMinMax.
//   - ErrNonNumericValue: a NaN element reached NormalizeMinMax.
//
// Complexity: every operation is O(n) time, O(n) memory.
package numeric
