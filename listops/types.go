// Package listops defines options for the list-structure subpackage of
// github.com/Krypto02/Lab0.
package listops

// ShuffleOptions configures Shuffle.
//
// Fields:
//   - Seeded — when true, Seed initializes the permutation generator and
//     the result is reproducible call-to-call.
//   - Seed   — generator seed; ignored unless Seeded is true.
type ShuffleOptions struct {
	Seeded bool
	Seed   int64
}

// DefaultShuffleOptions returns an unseeded configuration: each call
// draws a fresh permutation from an entropy-derived source.
func DefaultShuffleOptions() ShuffleOptions {
	return ShuffleOptions{}
}

// WithSeed returns a seeded configuration producing reproducible
// permutations for identical inputs.
func WithSeed(seed int64) ShuffleOptions {
	return ShuffleOptions{Seeded: true, Seed: seed}
}
