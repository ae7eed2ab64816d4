// Package quality defines report types and options for the data-quality
// subpackage of github.com/Krypto02/Lab0.
package quality

import "time"

// QualityOptions configures Validate.
//
// Fields:
//   - MissingThreshold — maximum acceptable missing-value ratio in [0,1];
//     above it the report is marked invalid.
//   - CheckDuplicates  — when false, the duplicate ratio is reported as
//     zero and does not affect the score.
type QualityOptions struct {
	MissingThreshold float64
	CheckDuplicates  bool
}

// DefaultQualityOptions returns the canonical configuration:
// MissingThreshold=0.3, CheckDuplicates=true.
func DefaultQualityOptions() QualityOptions {
	return QualityOptions{MissingThreshold: 0.3, CheckDuplicates: true}
}

// Report is an immutable snapshot of a sequence's quality metrics.
// Produced fresh per Validate call; never stored.
type Report struct {
	IsValid          bool
	TotalCount       int
	MissingCount     int
	MissingRatio     float64
	DuplicateCount   int
	DuplicateRatio   float64
	QualityScore     float64
	ValidationErrors []string
}

// PipelineReport wraps before/after counts of one processing operation
// together with a fresh quality report for the processed data.
// ProcessingRatio and DataRetention carry the same value; both names are
// kept because downstream consumers read either.
type PipelineReport struct {
	Operation       string
	Timestamp       time.Time
	OriginalCount   int
	ProcessedCount  int
	ProcessingRatio float64
	DataRetention   float64
	Quality         Report
}
