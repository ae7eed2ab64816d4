package quality

import (
	"fmt"
	"time"

	"github.com/Krypto02/Lab0/clean"
	"github.com/Krypto02/Lab0/value"
)

// Validate computes quality metrics for values.
//
// An empty input returns the fixed invalid report with the single
// "Empty dataset" message. Otherwise:
//
//	missing_ratio   = missing_count / total
//	duplicate_ratio = duplicate_count / total   (when CheckDuplicates)
//	quality_score   = max(0, 1 - missing_ratio - 0.5*duplicate_ratio)
//
// The report is marked invalid, with an explanatory message, when
// missing_ratio exceeds opts.MissingThreshold.
// Complexity: O(n) time, O(n) memory.
func Validate(values []value.Value, opts QualityOptions) Report {
	total := len(values)
	if total == 0 {
		return Report{
			IsValid:          false,
			ValidationErrors: []string{"Empty dataset"},
		}
	}

	missing := total - len(clean.RemoveMissing(values))
	missingRatio := float64(missing) / float64(total)

	duplicates := 0
	duplicateRatio := 0.0
	if opts.CheckDuplicates {
		duplicates = total - len(clean.RemoveDuplicates(values))
		duplicateRatio = float64(duplicates) / float64(total)
	}

	score := 1.0 - missingRatio - duplicateRatio*0.5
	if score < 0 {
		score = 0
	}

	r := Report{
		IsValid:        true,
		TotalCount:     total,
		MissingCount:   missing,
		MissingRatio:   missingRatio,
		DuplicateCount: duplicates,
		DuplicateRatio: duplicateRatio,
		QualityScore:   score,
	}
	if missingRatio > opts.MissingThreshold {
		r.IsValid = false
		r.ValidationErrors = append(r.ValidationErrors, fmt.Sprintf(
			"Missing value ratio (%.2f) exceeds threshold (%g)",
			missingRatio, opts.MissingThreshold))
	}
	return r
}

// NewPipelineReport builds a report around one processing operation.
// A negative originalCount defaults to len(values). The processing ratio
// is processed/original, or 0 when original is 0. The timestamp is wall
// clock. The embedded quality report uses DefaultQualityOptions.
// Complexity: O(n) time, O(n) memory.
func NewPipelineReport(values []value.Value, operation string, originalCount int) PipelineReport {
	if originalCount < 0 {
		originalCount = len(values)
	}
	processed := len(values)
	ratio := 0.0
	if originalCount > 0 {
		ratio = float64(processed) / float64(originalCount)
	}
	return PipelineReport{
		Operation:       operation,
		Timestamp:       time.Now(),
		OriginalCount:   originalCount,
		ProcessedCount:  processed,
		ProcessingRatio: ratio,
		DataRetention:   ratio,
		Quality:         Validate(values, DefaultQualityOptions()),
	}
}
