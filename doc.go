// Package lab0 is a toolkit of stateless data preprocessing operations
// over in-memory sequences, fronted by the lab0 command-line tool.
//
// 🚀 What is Lab0?
//
//	A small, pure-function library covering the everyday preprocessing
//	steps of a data pipeline:
//		• Cleaning: missing-value removal & imputation, deduplication
//		• Numeric: min-max normalization, z-score standardization,
//		  clipping, integer conversion, log transform
//		• Text: tokenization, punctuation stripping, stopword removal
//		• Structure: one-level flattening, reproducible shuffling
//		• Quality: missing/duplicate ratios, quality score, pipeline reports
//
// ✨ Why Lab0?
//
//   - Pure functions – every operation computes a fresh result and holds
//     no state; all are safely callable in parallel on disjoint inputs
//   - Explicit contracts – sentinel errors, documented edge cases and
//     drop policies, structural value equality
//   - Thin CLI – each operation is one subcommand printing a single
//     comma-joined result line
//
// The library is organized under flat subpackages:
//
//	value/    — heterogeneous scalar model & list parsing
//	clean/    — missing-value handling & deduplication
//	numeric/  — numeric transforms
//	textprep/ — text operations
//	listops/  — flatten & shuffle
//	quality/  — quality & pipeline reports
//	cmd/lab0  — the command-line front end
//
// Quick taste:
//
//	vs, _ := value.ParseList("1,None,3,,5")
//	fmt.Println(value.Join(clean.RemoveMissing(vs), ","))  // 1,3,5
//
// This is not a pipeline engine or validation framework: it is a fixed
// set of independent transformations invoked one at a time.
package lab0
