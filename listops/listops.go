package listops

import (
	"math/rand"
	"time"

	"github.com/Krypto02/Lab0/value"
)

// Flatten concatenates the sublists of nested into a single sequence,
// one level deep, preserving element order.
//
//	Flatten([[1,2],[3,4],[5]]) == [1,2,3,4,5]
//
// Complexity: O(n) over total elements.
func Flatten(nested [][]value.Value) []value.Value {
	total := 0
	for _, sub := range nested {
		total += len(sub)
	}
	out := make([]value.Value, 0, total)
	for _, sub := range nested {
		out = append(out, sub...)
	}
	return out
}

// Shuffle returns a new sequence holding a random permutation of values.
// The generator is constructed per call: with opts.Seeded the seed makes
// the permutation reproducible, otherwise an entropy-derived source is
// used. The input is never mutated.
// Complexity: O(n) time, O(n) memory.
func Shuffle(values []value.Value, opts ShuffleOptions) []value.Value {
	out := make([]value.Value, len(values))
	copy(out, values)

	seed := opts.Seed
	if !opts.Seeded {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))
	rng.Shuffle(len(out), func(i, j int) {
		out[i], out[j] = out[j], out[i]
	})
	return out
}
