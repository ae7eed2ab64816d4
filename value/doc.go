// Package value models the heterogeneous scalar values that flow through
// every preprocessing operation, plus the parsers that build them from
// command-line text.
//
// What:
//
//   - Value wraps exactly one of three kinds: a missing marker, a float64
//     number, or a string.
//   - IsMissing reports the canonical missing rule: an explicit missing
//     marker, an empty string, or a NaN number.
//   - Equal implements structural equality (kind + payload), used by
//     deduplication.
//   - ParseList reads either a bracketed literal ("[1, 'a', None]") or a
//     bare comma-separated list ("1,a,none") with int → float → string
//     coercion per item.
//   - ParseNumericList reads a comma-separated list where every item must
//     be a floating-point number.
//   - ParseNested reads a one-level nested literal ("[[1,2],[3,4]]").
//
// Why:
//
//   - Cleaning and deduplication must treat numbers, strings and missing
//     markers uniformly without reflection or interface{} comparisons.
//   - A single explicit equality rule avoids the silent cross-type
//     collisions that dynamically typed hosts exhibit.
//
// Equality rule:
//
//   - Two Values are equal iff they have the same kind and the same
//     payload. Numbers compare by float64 value, so 1 and 1.0 collide.
//     A numeric string never equals a number: "1" ≠ 1.
//   - All missing markers are mutually equal; NaN numbers are equal to
//     each other (payload comparison treats NaN as a single bucket).
//
// Errors:
//
//   - ErrSyntax: malformed list or nested-list literal.
//   - ErrNotNumeric: an item in a numeric-only list failed to parse.
package value
