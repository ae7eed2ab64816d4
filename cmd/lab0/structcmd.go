package main

import (
	"github.com/spf13/cobra"

	"github.com/Krypto02/Lab0/clean"
	"github.com/Krypto02/Lab0/listops"
	"github.com/Krypto02/Lab0/value"
)

var (
	shuffleSeed   int64
	shuffleReport bool
	flattenReport bool
	uniqueReport  bool
)

var shuffleCmd = &cobra.Command{
	Use:   "shuffle VALUES",
	Short: "Randomly shuffle a list",
	Long: `Randomly shuffle a list of values with reproducible seeding.

VALUES: comma-separated list of values

Example: lab0 struct shuffle "1,2,3,4,5" --seed 42 --report`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		values, err := value.ParseList(args[0])
		if err != nil {
			return opErr("shuffle", err)
		}

		opts := listops.DefaultShuffleOptions()
		if cmd.Flags().Changed("seed") {
			opts = listops.WithSeed(shuffleSeed)
		}
		result := listops.Shuffle(values, opts)
		echo("%s", value.Join(result, ","))

		if shuffleReport {
			if opts.Seeded {
				echo("Shuffled %d values using seed %d", len(result), opts.Seed)
			} else {
				echo("Shuffled %d values using random seed", len(result))
			}
		}
		return nil
	},
}

var flattenCmd = &cobra.Command{
	Use:   "flatten NESTED_LIST",
	Short: "Flatten a list of lists",
	Long: `Flatten a list of lists into a single list with validation.

NESTED_LIST: nested list literal, e.g. "[[1,2],[3,4]]"

Example: lab0 struct flatten "[[1,2],[3,4]]" --report`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		nested, err := value.ParseNested(args[0])
		if err != nil {
			return opErr("flatten", err)
		}

		result := listops.Flatten(nested)
		echo("%s", value.Join(result, ","))

		if flattenReport {
			echo("Flattened %d sublists into %d elements", len(nested), len(result))
		}
		return nil
	},
}

var uniqueCmd = &cobra.Command{
	Use:   "unique VALUES",
	Short: "Deduplicate a list, preserving order",
	Long: `Get unique values from a list while preserving first-seen order.

VALUES: comma-separated list of values

Example: lab0 struct unique "1,2,2,3,3,4" --report`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		values, err := value.ParseList(args[0])
		if err != nil {
			return opErr("unique", err)
		}

		result := clean.Unique(values)
		echo("%s", value.Join(result, ","))

		if uniqueReport {
			removed := len(values) - len(result)
			rate := 0.0
			if len(values) > 0 {
				rate = float64(removed) / float64(len(values))
			}
			echo("Removed %d duplicates (%.1f%% reduction)", removed, rate*100)
		}
		return nil
	},
}

func init() {
	shuffleCmd.Flags().Int64Var(&shuffleSeed, "seed", 0, "random seed for reproducibility")
	shuffleCmd.Flags().BoolVar(&shuffleReport, "report", false, "show shuffle information")

	flattenCmd.Flags().BoolVar(&flattenReport, "report", false, "show flattening statistics")

	uniqueCmd.Flags().BoolVar(&uniqueReport, "report", false, "show deduplication statistics")

	structCmd.AddCommand(shuffleCmd, flattenCmd, uniqueCmd)
}
