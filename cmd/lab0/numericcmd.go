package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Krypto02/Lab0/numeric"
	"github.com/Krypto02/Lab0/value"
)

var (
	normalizeMin    float64
	normalizeMax    float64
	normalizeReport bool

	standardizeReport bool

	clipMin    float64
	clipMax    float64
	clipReport bool

	toIntReport bool

	logTransformReport bool
)

var normalizeCmd = &cobra.Command{
	Use:   "normalize VALUES",
	Short: "Normalize values using min-max scaling",
	Long: `Normalize numerical values using min-max scaling with validation.

VALUES: comma-separated list of numbers

Example: lab0 numeric normalize "1,2,3,4,5" --min-val 0 --max-val 1 --report`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		values, err := value.ParseNumericList(args[0])
		if err != nil {
			return opErr("normalize", err)
		}
		if len(values) == 0 {
			log.Warn().Msg("empty list provided for normalization")
		}

		result, err := numeric.NormalizeMinMax(values, numeric.NormalizeOptions{
			NewMin: normalizeMin,
			NewMax: normalizeMax,
		})
		if err != nil {
			return opErr("normalize", err)
		}
		echo("%s", joinFloats(result, 6))

		if normalizeReport && len(values) > 0 {
			lo, hi := values[0], values[0]
			for _, v := range values[1:] {
				if v < lo {
					lo = v
				}
				if v > hi {
					hi = v
				}
			}
			echo("Normalization complete: [%.3f, %.3f] -> [%g, %g]", lo, hi, normalizeMin, normalizeMax)
		}
		return nil
	},
}

var standardizeCmd = &cobra.Command{
	Use:   "standardize VALUES",
	Short: "Standardize values using z-score",
	Long: `Standardize numerical values using the z-score method with statistics reporting.

VALUES: comma-separated list of numbers

Example: lab0 numeric standardize "1,2,3,4,5" --report`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		values, err := value.ParseNumericList(args[0])
		if err != nil {
			return opErr("standardize", err)
		}

		result := numeric.StandardizeZScore(values)
		echo("%s", joinFloats(result, 6))

		if standardizeReport {
			echo("Original: mean=%.3f, stdev=%.3f", numeric.Mean(values), numeric.SampleStdev(values))
			echo("Standardized: mean=%.3f, stdev=%.3f", numeric.Mean(result), numeric.SampleStdev(result))
		}
		return nil
	},
}

var clipCmd = &cobra.Command{
	Use:   "clip VALUES",
	Short: "Clip values to a range",
	Long: `Clip numerical values to a specified range with outlier reporting.

VALUES: comma-separated list of numbers

Example: lab0 numeric clip "1,2,3,4,5" --min-val 2 --max-val 4 --report`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if clipMin >= clipMax {
			return opErr("clip", fmt.Errorf("min-val must be less than max-val: %w", numeric.ErrBadRange))
		}
		values, err := value.ParseNumericList(args[0])
		if err != nil {
			return opErr("clip", err)
		}

		result := numeric.ClipValues(values, clipMin, clipMax)
		echo("%s", joinFloats(result, -1))

		if clipReport {
			low, high := 0, 0
			for _, v := range values {
				if v < clipMin {
					low++
				}
				if v > clipMax {
					high++
				}
			}
			echo("Clipped %d low values, %d high values", low, high)
		}
		return nil
	},
}

var toIntCmd = &cobra.Command{
	Use:   "to-int VALUES",
	Short: "Convert string values to integers",
	Long: `Convert string values to integers with conversion reporting.
Items that fail to convert are dropped.

VALUES: comma-separated list of values

Example: lab0 numeric to-int "1,2.5,abc,4" --report`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		items := strings.Split(args[0], ",")
		for i := range items {
			items[i] = strings.TrimSpace(items[i])
		}

		result := numeric.ToInt(items)
		parts := make([]string, len(result))
		for i, n := range result {
			parts[i] = fmt.Sprintf("%d", n)
		}
		echo("%s", strings.Join(parts, ","))

		if toIntReport {
			rate := 0.0
			if len(items) > 0 {
				rate = float64(len(result)) / float64(len(items))
			}
			echo("Converted %d/%d values (%.1f%%)", len(result), len(items), rate*100)
		}
		return nil
	},
}

var logTransformCmd = &cobra.Command{
	Use:   "log-transform VALUES",
	Short: "Apply natural log to positive values",
	Long: `Apply logarithmic transformation to positive values with validation.
Non-positive values are excluded.

VALUES: comma-separated list of numbers

Example: lab0 numeric log-transform "1,2,3,4,5" --report`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		values, err := value.ParseNumericList(args[0])
		if err != nil {
			return opErr("log_transform", err)
		}

		result := numeric.LogTransform(values)
		if len(result) == 0 {
			log.Warn().Msg("no positive values found for log transformation")
			return nil
		}
		echo("%s", joinFloats(result, 6))

		if logTransformReport {
			echo("Transformed %d values, excluded %d non-positive", len(result), len(values)-len(result))
		}
		return nil
	},
}

func init() {
	normalizeCmd.Flags().Float64Var(&normalizeMin, "min-val", 0, "new minimum value")
	normalizeCmd.Flags().Float64Var(&normalizeMax, "max-val", 1, "new maximum value")
	normalizeCmd.Flags().BoolVar(&normalizeReport, "report", false, "generate processing report")

	standardizeCmd.Flags().BoolVar(&standardizeReport, "report", false, "generate processing report")

	clipCmd.Flags().Float64Var(&clipMin, "min-val", 0, "minimum value for clipping")
	clipCmd.Flags().Float64Var(&clipMax, "max-val", 1, "maximum value for clipping")
	clipCmd.Flags().BoolVar(&clipReport, "report", false, "show clipping statistics")

	toIntCmd.Flags().BoolVar(&toIntReport, "report", false, "show conversion statistics")

	logTransformCmd.Flags().BoolVar(&logTransformReport, "report", false, "show transformation statistics")

	numericCmd.AddCommand(normalizeCmd, standardizeCmd, clipCmd, toIntCmd, logTransformCmd)
}
