package clean_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Krypto02/Lab0/clean"
	"github.com/Krypto02/Lab0/value"
)

// mixedWithMissing is the canonical fixture: numbers interleaved with
// every missing form (marker, empty string, NaN).
func mixedWithMissing() []value.Value {
	return []value.Value{
		value.Number(1), value.None(), value.Number(3), value.String(""),
		value.Number(5), value.Number(math.NaN()), value.Number(7),
		value.None(), value.Number(9), value.String(""),
	}
}

func numbers(fs ...float64) []value.Value {
	out := make([]value.Value, len(fs))
	for i, f := range fs {
		out[i] = value.Number(f)
	}
	return out
}

// TestRemoveMissing_Basic drops every missing form and preserves order.
func TestRemoveMissing_Basic(t *testing.T) {
	got := clean.RemoveMissing(mixedWithMissing())
	assert.Equal(t, numbers(1, 3, 5, 7, 9), got)
}

// TestRemoveMissing_EdgeCases covers empty, all-clean and all-missing
// inputs.
func TestRemoveMissing_EdgeCases(t *testing.T) {
	assert.Empty(t, clean.RemoveMissing(nil))
	assert.Empty(t, clean.RemoveMissing([]value.Value{}))

	cleanData := numbers(1, 2, 3)
	assert.Equal(t, cleanData, clean.RemoveMissing(cleanData))

	allMissing := []value.Value{value.None(), value.String(""), value.Number(math.NaN())}
	assert.Empty(t, clean.RemoveMissing(allMissing))
}

// TestRemoveMissing_Idempotent verifies that applying the operation
// twice yields the same result as applying it once.
func TestRemoveMissing_Idempotent(t *testing.T) {
	once := clean.RemoveMissing(mixedWithMissing())
	twice := clean.RemoveMissing(once)
	assert.Equal(t, once, twice)
}

// TestRemoveMissing_DoesNotMutateInput confirms the input sequence is
// untouched.
func TestRemoveMissing_DoesNotMutateInput(t *testing.T) {
	in := mixedWithMissing()
	_ = clean.RemoveMissing(in)
	assert.Len(t, in, 10)
	assert.True(t, in[1].IsMissing())
}

// TestFillMissing replaces each missing form with the fill value and
// leaves the rest alone.
func TestFillMissing(t *testing.T) {
	cases := []struct {
		name string
		in   []value.Value
		fill value.Value
		want []value.Value
	}{
		{
			"Marker",
			[]value.Value{value.Number(1), value.None(), value.Number(3)},
			value.Number(0),
			numbers(1, 0, 3),
		},
		{
			"EmptyString",
			[]value.Value{value.Number(1), value.String(""), value.Number(3)},
			value.Number(-1),
			numbers(1, -1, 3),
		},
		{
			"NaN",
			[]value.Value{value.Number(1), value.Number(math.NaN()), value.Number(3)},
			value.Number(999),
			numbers(1, 999, 3),
		},
		{"Empty", []value.Value{}, value.Number(0), []value.Value{}},
		{"NothingMissing", numbers(1, 2, 3), value.Number(0), numbers(1, 2, 3)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, clean.FillMissing(tc.in, tc.fill))
		})
	}
}

// TestRemoveDuplicates_PreservesOrder keeps first occurrences in their
// original positions.
func TestRemoveDuplicates_PreservesOrder(t *testing.T) {
	in := numbers(3, 1, 4, 1, 5, 9, 2, 6, 5, 3)
	assert.Equal(t, numbers(3, 1, 4, 5, 9, 2, 6), clean.RemoveDuplicates(in))
}

// TestRemoveDuplicates_MixedTypes verifies the structural equality rule:
// 1 and 1.0 collide, the string "1" stays distinct.
func TestRemoveDuplicates_MixedTypes(t *testing.T) {
	in := []value.Value{
		value.Number(1), value.String("1"), value.Number(1),
		value.Number(2), value.String("2"), value.Number(2.0),
	}
	want := []value.Value{
		value.Number(1), value.String("1"), value.Number(2), value.String("2"),
	}
	assert.Equal(t, want, clean.RemoveDuplicates(in))
}

// TestRemoveDuplicates_NaNBucket folds all NaN numbers into one element.
func TestRemoveDuplicates_NaNBucket(t *testing.T) {
	in := []value.Value{value.Number(math.NaN()), value.Number(1), value.Number(math.NaN())}
	got := clean.RemoveDuplicates(in)
	assert.Len(t, got, 2)
	assert.True(t, math.IsNaN(got[0].Num))
}

// TestUnique_Alias confirms Unique matches RemoveDuplicates.
func TestUnique_Alias(t *testing.T) {
	in := numbers(1, 2, 2, 3, 3, 4)
	assert.Equal(t, numbers(1, 2, 3, 4), clean.Unique(in))
	assert.Equal(t, clean.RemoveDuplicates(in), clean.Unique(in))
}
