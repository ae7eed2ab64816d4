// Package clean provides the data-quality cleaning operations: missing
// value removal and imputation, plus order-preserving deduplication.
//
// What:
//
//   - RemoveMissing drops every element that counts as missing under
//     value.IsMissing (missing marker, empty string, NaN).
//   - FillMissing replaces those same elements with a caller-supplied
//     fill value.
//   - RemoveDuplicates (and its Unique alias) keeps the first occurrence
//     of each distinct element, using value.Equal semantics.
//
// Why:
//
//   - Missing markers and duplicates are the two defects a downstream
//     transform cannot tolerate silently; both operations are pure and
//     never mutate their input.
//
// Properties:
//
//   - RemoveMissing is idempotent: applying it twice equals applying it
//     once.
//   - RemoveDuplicates preserves first-seen order.
//
// Complexity: all operations are O(n) time, O(n) memory.
package clean
