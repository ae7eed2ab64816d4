package value

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseList parses a command-line value list in either of two syntaxes:
//
//   - Bracketed literal: "[1, 2.5, 'a', None]" — items are numbers,
//     quoted strings, or the None token; anything else is ErrSyntax.
//   - Bare comma list: "1,2.5,a,none" — each item is coerced int → float
//     → string; an empty item or the token "none" (case-insensitive)
//     becomes the missing marker. Bare mode never fails.
//
// Mirrors the coercion order exactly: an undotted item is attempted only
// as an integer, so "1e5" stays a string in bare mode.
// Complexity: O(n) over the input length.
func ParseList(s string) ([]Value, error) {
	t := strings.TrimSpace(s)
	if strings.HasPrefix(t, "[") && strings.HasSuffix(t, "]") {
		return parseLiteral(t[1 : len(t)-1])
	}
	return parseBare(t), nil
}

// ParseNumericList parses a comma-separated list where every non-blank
// item must be a floating-point number. Blank items are skipped.
// Returns ErrNotNumeric on the first item that fails to parse.
// Complexity: O(n).
func ParseNumericList(s string) ([]float64, error) {
	var out []float64
	for _, item := range strings.Split(s, ",") {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		f, err := strconv.ParseFloat(item, 64)
		if err != nil {
			return nil, fmt.Errorf("value: non-numeric value %q: %w", item, ErrNotNumeric)
		}
		out = append(out, f)
	}
	return out, nil
}

// ParseNested parses a one-level nested list literal such as
// "[[1,2],[3,4],[5]]" into a slice of Value slices. Every top-level
// element must itself be a bracketed list; scalars yield ErrSyntax.
// Complexity: O(n).
func ParseNested(s string) ([][]Value, error) {
	t := strings.TrimSpace(s)
	if !strings.HasPrefix(t, "[") || !strings.HasSuffix(t, "]") {
		return nil, fmt.Errorf("value: input %q is not a list: %w", s, ErrSyntax)
	}
	inner := strings.TrimSpace(t[1 : len(t)-1])
	if inner == "" {
		return [][]Value{}, nil
	}
	segments, err := splitTop(inner)
	if err != nil {
		return nil, err
	}
	out := make([][]Value, 0, len(segments))
	for _, seg := range segments {
		seg = strings.TrimSpace(seg)
		if !strings.HasPrefix(seg, "[") || !strings.HasSuffix(seg, "]") {
			return nil, fmt.Errorf("value: element %q is not a list: %w", seg, ErrSyntax)
		}
		sub, err := parseLiteral(seg[1 : len(seg)-1])
		if err != nil {
			return nil, err
		}
		out = append(out, sub)
	}
	return out, nil
}

// parseBare handles the comma-separated scalar syntax with per-item
// int → float → string coercion.
func parseBare(s string) []Value {
	items := strings.Split(s, ",")
	out := make([]Value, 0, len(items))
	for _, item := range items {
		item = strings.TrimSpace(item)
		if item == "" || strings.EqualFold(item, "none") {
			out = append(out, None())
			continue
		}
		if strings.Contains(item, ".") {
			if f, err := strconv.ParseFloat(item, 64); err == nil {
				out = append(out, Number(f))
				continue
			}
		} else if i, err := strconv.ParseInt(item, 10, 64); err == nil {
			out = append(out, Number(float64(i)))
			continue
		}
		out = append(out, String(item))
	}
	return out
}

// parseLiteral handles the inside of one bracketed list.
func parseLiteral(inner string) ([]Value, error) {
	inner = strings.TrimSpace(inner)
	if inner == "" {
		return []Value{}, nil
	}
	segments, err := splitTop(inner)
	if err != nil {
		return nil, err
	}
	out := make([]Value, 0, len(segments))
	for _, seg := range segments {
		v, err := parseLiteralItem(strings.TrimSpace(seg))
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

// parseLiteralItem parses one token of a bracketed literal: a quoted
// string, the None token, or a number.
func parseLiteralItem(tok string) (Value, error) {
	if tok == "" {
		return Value{}, fmt.Errorf("value: empty item in list literal: %w", ErrSyntax)
	}
	if len(tok) >= 2 && (tok[0] == '\'' || tok[0] == '"') && tok[len(tok)-1] == tok[0] {
		return String(tok[1 : len(tok)-1]), nil
	}
	if tok == "None" {
		return None(), nil
	}
	if strings.HasPrefix(tok, "[") {
		return Value{}, fmt.Errorf("value: nested list %q where scalar expected: %w", tok, ErrSyntax)
	}
	if f, err := strconv.ParseFloat(tok, 64); err == nil {
		return Number(f), nil
	}
	return Value{}, fmt.Errorf("value: cannot parse item %q: %w", tok, ErrSyntax)
}

// splitTop splits s on commas at bracket depth zero, honoring single and
// double quotes. Unbalanced brackets or an unterminated quote yield
// ErrSyntax.
func splitTop(s string) ([]string, error) {
	var (
		segments []string
		start    int
		depth    int
		quote    byte
	)
	for i := 0; i < len(s); i++ {
		c := s[i]
		if quote != 0 {
			if c == quote {
				quote = 0
			}
			continue
		}
		switch c {
		case '\'', '"':
			quote = c
		case '[':
			depth++
		case ']':
			depth--
			if depth < 0 {
				return nil, fmt.Errorf("value: unbalanced brackets: %w", ErrSyntax)
			}
		case ',':
			if depth == 0 {
				segments = append(segments, s[start:i])
				start = i + 1
			}
		}
	}
	if depth != 0 || quote != 0 {
		return nil, fmt.Errorf("value: unbalanced brackets or quotes: %w", ErrSyntax)
	}
	segments = append(segments, s[start:])
	return segments, nil
}
