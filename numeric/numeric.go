package numeric

import (
	"math"
	"strconv"
	"strings"
)

// NormalizeMinMax linearly rescales values into [opts.NewMin, opts.NewMax]:
//
//	out[i] = NewMin + (v - min) * (NewMax - NewMin) / (max - min)
//
// Empty input returns an empty slice. A constant input collapses to a
// sequence of NewMin. Returns ErrBadRange if NewMin >= NewMax and
// ErrNonNumericValue if any element is NaN.
// Complexity: O(n) time, O(n) memory.
func NormalizeMinMax(values []float64, opts NormalizeOptions) ([]float64, error) {
	if len(values) == 0 {
		return []float64{}, nil
	}
	if opts.NewMin >= opts.NewMax {
		return nil, ErrBadRange
	}
	for _, v := range values {
		if math.IsNaN(v) {
			return nil, ErrNonNumericValue
		}
	}

	minVal, maxVal := values[0], values[0]
	for _, v := range values[1:] {
		if v < minVal {
			minVal = v
		}
		if v > maxVal {
			maxVal = v
		}
	}

	out := make([]float64, len(values))
	if minVal == maxVal {
		for i := range out {
			out[i] = opts.NewMin
		}
		return out, nil
	}

	scale := (opts.NewMax - opts.NewMin) / (maxVal - minVal)
	for i, v := range values {
		out[i] = opts.NewMin + (v-minVal)*scale
	}
	return out, nil
}

// StandardizeZScore rescales values to zero mean and unit sample
// variance: out[i] = (v - mean) / stdev, with the n-1 (sample) standard
// deviation. Empty input returns empty, a single element returns [0],
// and zero deviation returns all zeros.
// Complexity: O(n) time, O(n) memory.
func StandardizeZScore(values []float64) []float64 {
	n := len(values)
	if n == 0 {
		return []float64{}
	}
	if n == 1 {
		return []float64{0}
	}

	mean := Mean(values)
	stdev := SampleStdev(values)

	out := make([]float64, n)
	if stdev == 0 {
		return out
	}
	for i, v := range values {
		out[i] = (v - mean) / stdev
	}
	return out
}

// ClipValues clamps every element into [minVal, maxVal]. The caller is
// responsible for minVal < maxVal; the function applies the clamp as
// given.
// Complexity: O(n) time, O(n) memory.
func ClipValues(values []float64, minVal, maxVal float64) []float64 {
	out := make([]float64, len(values))
	for i, v := range values {
		out[i] = math.Max(minVal, math.Min(maxVal, v))
	}
	return out
}

// ToInt converts string items to integers via float parsing with
// truncation toward zero ("2.9" → 2). Items that fail to parse are
// silently dropped; only successes are returned.
// Complexity: O(n) time, O(n) memory.
func ToInt(items []string) []int {
	out := make([]int, 0, len(items))
	for _, s := range items {
		f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
			continue
		}
		out = append(out, int(math.Trunc(f)))
	}
	return out
}

// LogTransform returns the natural logarithm of every strictly positive
// element. Non-positive (and NaN) elements are silently excluded.
// Complexity: O(n) time, O(n) memory.
func LogTransform(values []float64) []float64 {
	out := make([]float64, 0, len(values))
	for _, v := range values {
		if v > 0 {
			out = append(out, math.Log(v))
		}
	}
	return out
}

// Mean returns the arithmetic mean of values, 0 for empty input.
// Complexity: O(n).
func Mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// SampleStdev returns the sample (n-1) standard deviation of values,
// 0 when fewer than two elements.
// Complexity: O(n).
func SampleStdev(values []float64) float64 {
	n := len(values)
	if n < 2 {
		return 0
	}
	mean := Mean(values)
	sumSq := 0.0
	for _, v := range values {
		d := v - mean
		sumSq += d * d
	}
	return math.Sqrt(sumSq / float64(n-1))
}
