// Package quality computes data-quality reports and per-operation
// pipeline reports over heterogeneous value sequences.
//
// What:
//
//   - Validate measures the missing and duplicate ratios of a sequence
//     and derives a heuristic quality score in [0, 1]:
//
//     score = max(0, 1 - missing_ratio - 0.5*duplicate_ratio)
//
//     The report is marked invalid, with an explanatory message, when
//     the missing ratio exceeds the configured threshold. An empty
//     sequence yields the fixed invalid "Empty dataset" report.
//   - NewPipelineReport wraps before/after element counts around one
//     operation: processing (retention) ratio, a wall-clock timestamp,
//     and an embedded fresh quality report for the post-operation data.
//
// Why:
//
//   - A single scalar score plus its two inputs is enough to gate a
//     cleaning step or print a one-line health summary; nothing is
//     stored, every report is computed and discarded per call.
//
// Complexity: O(n) time, O(n) memory per report.
package quality
