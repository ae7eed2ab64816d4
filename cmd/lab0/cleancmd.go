package main

import (
	"github.com/spf13/cobra"

	"github.com/Krypto02/Lab0/clean"
	"github.com/Krypto02/Lab0/quality"
	"github.com/Krypto02/Lab0/value"
)

var (
	removeMissingQuality bool
	fillMissingQuality   bool
	fillMissingValue     string
)

var removeMissingCmd = &cobra.Command{
	Use:   "remove-missing VALUES",
	Short: "Remove missing values from a list",
	Long: `Remove missing values from a list with optional quality assessment.

VALUES: comma-separated list of values (use 'None' or empty for missing)

Example: lab0 clean remove-missing "1,None,3,," --quality-check`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		values, err := value.ParseList(args[0])
		if err != nil {
			return opErr("remove_missing", err)
		}
		log.Debug().Int("count", len(values)).Msg("parsed value list")

		if removeMissingQuality {
			rep := quality.Validate(values, qualityOptions())
			echo("Quality Score: %.2f", rep.QualityScore)
			echo("Missing Ratio: %.2f%%", rep.MissingRatio*100)
		}

		result := clean.RemoveMissing(values)
		log.Debug().Int("removed", len(values)-len(result)).Msg("missing values removed")
		echo("%s", value.Join(result, ","))

		if removeMissingQuality {
			pr := quality.NewPipelineReport(result, "remove_missing", len(values))
			echo("Data retention: %.2f%%", pr.DataRetention*100)
		}
		return nil
	},
}

var fillMissingCmd = &cobra.Command{
	Use:   "fill-missing VALUES",
	Short: "Fill missing values with a specified value",
	Long: `Fill missing values with a specified value and validate data quality.

VALUES: comma-separated list of values (use 'None' or empty for missing)

Example: lab0 clean fill-missing "1,,3,None" --fill-value 0 --quality-check`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		values, err := value.ParseList(args[0])
		if err != nil {
			return opErr("fill_missing", err)
		}

		if fillMissingQuality {
			rep := quality.Validate(values, qualityOptions())
			echo("Original missing ratio: %.2f%%", rep.MissingRatio*100)
		}

		fillRaw := fillMissingValue
		if !cmd.Flags().Changed("fill-value") && cfg.FillValue != "" {
			fillRaw = cfg.FillValue
		}
		result := clean.FillMissing(values, parseScalar(fillRaw))
		echo("%s", value.Join(result, ","))

		if fillMissingQuality {
			rep := quality.Validate(result, qualityOptions())
			echo("Quality improved: %.2f", rep.QualityScore)
		}
		return nil
	},
}

func init() {
	removeMissingCmd.Flags().BoolVar(&removeMissingQuality, "quality-check", false, "perform data quality validation")

	fillMissingCmd.Flags().StringVar(&fillMissingValue, "fill-value", "0", "value to replace missing values with")
	fillMissingCmd.Flags().BoolVar(&fillMissingQuality, "quality-check", false, "perform data quality validation")

	cleanCmd.AddCommand(removeMissingCmd, fillMissingCmd)
}

// qualityOptions builds the validation options, honoring a config-file
// threshold override.
func qualityOptions() quality.QualityOptions {
	opts := quality.DefaultQualityOptions()
	opts.MissingThreshold = cfg.missingThreshold()
	return opts
}

// parseScalar coerces a single flag value the same way list items are
// coerced: int, then float, else string.
func parseScalar(s string) value.Value {
	parsed, err := value.ParseList(s)
	if err == nil && len(parsed) == 1 {
		return parsed[0]
	}
	return value.String(s)
}
