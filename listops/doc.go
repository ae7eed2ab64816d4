// Package listops provides the list-structure operations: one-level
// flattening and reproducible shuffling.
//
// What:
//
//   - Flatten concatenates the sublists of a nested sequence, one level
//     only, preserving order.
//   - Shuffle returns a random permutation of its input from a
//     locally-owned generator; a seeded generator makes the permutation
//     reproducible.
//
// Why a local generator:
//
//   - Seeding a process-wide generator lets concurrent callers interfere
//     with each other's sequences. Every Shuffle call constructs its own
//     rand.Rand, so repeated calls with the same seed and input always
//     produce identical output and parallel callers never share state.
//
// Properties:
//
//   - Shuffle never mutates its input and always returns a permutation
//     of it (same multiset).
//   - Identical seed + identical input ⇒ identical output. Distinct
//     seeds may, but need not, produce distinct permutations.
//
// Complexity: Flatten O(n) over total elements; Shuffle O(n).
package listops
