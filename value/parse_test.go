package value_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Krypto02/Lab0/value"
)

// TestParseList_Bare exercises the comma-separated syntax with the
// int → float → string coercion order and the missing tokens.
func TestParseList_Bare(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  []value.Value
	}{
		{
			"Integers", "1,2,3",
			[]value.Value{value.Number(1), value.Number(2), value.Number(3)},
		},
		{
			"MixedCoercion", "1,2.5,abc",
			[]value.Value{value.Number(1), value.Number(2.5), value.String("abc")},
		},
		{
			"MissingTokens", "1,None,3,,5",
			[]value.Value{value.Number(1), value.None(), value.Number(3), value.None(), value.Number(5)},
		},
		{
			"NoneCaseInsensitive", "none,NONE,None",
			[]value.Value{value.None(), value.None(), value.None()},
		},
		{
			// Integer parsing never accepts exponent forms, so this
			// stays a string exactly like the coercion it mirrors.
			"ExponentStaysString", "1e5",
			[]value.Value{value.String("1e5")},
		},
		{
			"SpacesTrimmed", " 1 , 2 ",
			[]value.Value{value.Number(1), value.Number(2)},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := value.ParseList(tc.input)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

// TestParseList_Literal exercises the bracketed syntax: numbers, quoted
// strings, the None token, and syntax failures.
func TestParseList_Literal(t *testing.T) {
	got, err := value.ParseList(`[1, 2.5, 'a', "b", None]`)
	require.NoError(t, err)
	assert.Equal(t, []value.Value{
		value.Number(1), value.Number(2.5), value.String("a"), value.String("b"), value.None(),
	}, got)

	empty, err := value.ParseList("[]")
	require.NoError(t, err)
	assert.Empty(t, empty)

	for _, bad := range []string{"[1, abc]", "[1,,2]", "[[1],2]", "['unterminated]"} {
		_, err := value.ParseList(bad)
		assert.ErrorIs(t, err, value.ErrSyntax, "input %q must fail", bad)
	}
}

// TestParseNumericList verifies the numeric-only variant: every
// non-blank item must be a float, blanks are skipped.
func TestParseNumericList(t *testing.T) {
	got, err := value.ParseNumericList("1, 2.5, -3e2, ,4")
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2.5, -300, 4}, got)

	_, err = value.ParseNumericList("1,abc,3")
	assert.ErrorIs(t, err, value.ErrNotNumeric)
}

// TestParseNested covers one-level nested literals and the list-of-lists
// requirement.
func TestParseNested(t *testing.T) {
	got, err := value.ParseNested("[[1,2],[3,4],[5]]")
	require.NoError(t, err)
	assert.Equal(t, [][]value.Value{
		{value.Number(1), value.Number(2)},
		{value.Number(3), value.Number(4)},
		{value.Number(5)},
	}, got)

	empty, err := value.ParseNested("[]")
	require.NoError(t, err)
	assert.Empty(t, empty)

	sub, err := value.ParseNested("[[],[1]]")
	require.NoError(t, err)
	assert.Equal(t, [][]value.Value{{}, {value.Number(1)}}, sub)

	for _, bad := range []string{"1,2,3", "[1,2]", "[[1],2]", "[[1,2]"} {
		_, err := value.ParseNested(bad)
		assert.True(t, errors.Is(err, value.ErrSyntax), "input %q must fail with ErrSyntax, got %v", bad, err)
	}
}
