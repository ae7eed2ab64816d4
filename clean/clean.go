// Package clean implements missing-value handling and deduplication over
// heterogeneous value sequences.
package clean

import (
	"math"

	"github.com/Krypto02/Lab0/value"
)

// RemoveMissing returns a new sequence omitting every element that is a
// missing marker, an empty string, or a NaN number. Order is preserved.
// Complexity: O(n) time and memory.
func RemoveMissing(values []value.Value) []value.Value {
	out := make([]value.Value, 0, len(values))
	for _, v := range values {
		if !v.IsMissing() {
			out = append(out, v)
		}
	}
	return out
}

// FillMissing returns a new sequence with every missing element replaced
// by fill. Non-missing elements pass through unchanged.
// Complexity: O(n) time and memory.
func FillMissing(values []value.Value, fill value.Value) []value.Value {
	out := make([]value.Value, len(values))
	for i, v := range values {
		if v.IsMissing() {
			out[i] = fill
		} else {
			out[i] = v
		}
	}
	return out
}

// RemoveDuplicates returns the distinct elements of values in first-seen
// order. Equality follows value.Equal: structural kind+payload, so the
// number 1 and the string "1" remain distinct.
// Complexity: O(n) time and memory.
func RemoveDuplicates(values []value.Value) []value.Value {
	seen := make(map[dedupKey]struct{}, len(values))
	out := make([]value.Value, 0, len(values))
	for _, v := range values {
		k := keyOf(v)
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, v)
	}
	return out
}

// Unique is an alias for RemoveDuplicates.
func Unique(values []value.Value) []value.Value {
	return RemoveDuplicates(values)
}

// dedupKey is a map-safe projection of value.Value: NaN payloads are
// folded into a dedicated flag because NaN never equals itself as a map
// key, while value.Equal treats all NaN numbers as one bucket.
type dedupKey struct {
	kind value.Kind
	num  float64
	str  string
	nan  bool
}

func keyOf(v value.Value) dedupKey {
	k := dedupKey{kind: v.Kind, str: v.Str}
	if v.Kind == value.KindNumber {
		if math.IsNaN(v.Num) {
			k.nan = true
		} else {
			k.num = v.Num
		}
	}
	return k
}
