package main

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/Krypto02/Lab0/textprep"
)

var (
	tokenizeReport    bool
	punctuationReport bool
	stopwordsList     string
	stopwordsReport   bool
)

var tokenizeCmd = &cobra.Command{
	Use:   "tokenize TEXT",
	Short: "Tokenize text into lowercase words",
	Long: `Tokenize text into words with alphanumeric characters only.

TEXT: text string to tokenize

Example: lab0 text tokenize "Hello, World! How are you?" --report`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		result := textprep.Tokenize(args[0])
		echo("%s", result)

		if tokenizeReport {
			tokens := 0
			if result != "" {
				tokens = len(strings.Fields(result))
			}
			echo("Tokenized to %d words from %d characters", tokens, len(args[0]))
		}
		return nil
	},
}

var removePunctuationCmd = &cobra.Command{
	Use:   "remove-punctuation TEXT",
	Short: "Strip punctuation from text",
	Long: `Remove punctuation from text, keeping alphanumeric characters and spaces.

TEXT: text string to process

Example: lab0 text remove-punctuation "Hello, World!" --report`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		result := textprep.RemovePunctuation(args[0])
		echo("%s", result)

		if punctuationReport {
			echo("Removed %d punctuation characters", len(args[0])-len(result))
		}
		return nil
	},
}

var removeStopwordsCmd = &cobra.Command{
	Use:   "remove-stopwords TEXT",
	Short: "Remove stop words from text",
	Long: `Remove stop words from text with detailed reporting.

TEXT: text string to process

Example: lab0 text remove-stopwords "this is a test" --stopwords "is,a" --report`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var stops []string
		switch {
		case stopwordsList != "":
			for _, w := range strings.Split(stopwordsList, ",") {
				stops = append(stops, strings.TrimSpace(w))
			}
		case len(cfg.Stopwords) > 0:
			stops = cfg.Stopwords
		}

		result := textprep.RemoveStopwords(args[0], stops)
		echo("%s", result)

		if stopwordsReport {
			removed := len(strings.Fields(args[0])) - len(strings.Fields(result))
			echo("Removed %d stop words", removed)
		}
		return nil
	},
}

func init() {
	tokenizeCmd.Flags().BoolVar(&tokenizeReport, "report", false, "show tokenization statistics")

	removePunctuationCmd.Flags().BoolVar(&punctuationReport, "report", false, "show cleaning statistics")

	removeStopwordsCmd.Flags().StringVar(&stopwordsList, "stopwords", "", "comma-separated list of stop words to remove")
	removeStopwordsCmd.Flags().BoolVar(&stopwordsReport, "report", false, "show removal statistics")

	textCmd.AddCommand(tokenizeCmd, removePunctuationCmd, removeStopwordsCmd)
}
