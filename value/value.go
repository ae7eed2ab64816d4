package value

import (
	"math"
	"strconv"
	"strings"
)

// None returns the missing marker.
// Complexity: O(1).
func None() Value {
	return Value{Kind: KindMissing}
}

// Number wraps f as a numeric Value.
// Complexity: O(1).
func Number(f float64) Value {
	return Value{Kind: KindNumber, Num: f}
}

// String wraps s as a string Value.
// Complexity: O(1).
func String(s string) Value {
	return Value{Kind: KindString, Str: s}
}

// IsMissing reports whether v counts as missing: an explicit missing
// marker, an empty string, or a NaN number.
// Complexity: O(1).
func (v Value) IsMissing() bool {
	switch v.Kind {
	case KindMissing:
		return true
	case KindString:
		return v.Str == ""
	case KindNumber:
		return math.IsNaN(v.Num)
	}
	return false
}

// Equal implements structural equality: same kind and same payload.
// Numbers compare by float64 value (1 and 1.0 collide); a numeric string
// never equals a number; all missing markers are mutually equal; NaN
// numbers compare equal to each other.
// Complexity: O(1).
func (v Value) Equal(o Value) bool {
	if v.Kind != o.Kind {
		return false
	}
	switch v.Kind {
	case KindNumber:
		if math.IsNaN(v.Num) && math.IsNaN(o.Num) {
			return true
		}
		return v.Num == o.Num
	case KindString:
		return v.Str == o.Str
	}
	return true
}

// String renders v the way the CLI prints it: missing markers as "None",
// NaN numbers as "NaN", integer-valued numbers without a decimal point,
// other numbers in shortest form.
// Complexity: O(1).
func (v Value) String() string {
	switch v.Kind {
	case KindMissing:
		return "None"
	case KindString:
		return v.Str
	}
	return formatNumber(v.Num)
}

// Join renders values and joins them with sep. Used for the one-line
// command output.
// Complexity: O(n) over total rendered length.
func Join(values []Value, sep string) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = v.String()
	}
	return strings.Join(parts, sep)
}

// formatNumber prints integer-valued floats without a trailing ".0" so
// parsed integers round-trip unchanged through the CLI.
func formatNumber(f float64) string {
	if math.IsNaN(f) {
		return "NaN"
	}
	if f == math.Trunc(f) && !math.IsInf(f, 0) && math.Abs(f) < 1e15 {
		return strconv.FormatFloat(f, 'f', 0, 64)
	}
	return strconv.FormatFloat(f, 'g', -1, 64)
}
