package main

import (
	"github.com/spf13/cobra"

	"github.com/fluentink/corrigo/internal/api"
	"github.com/fluentink/corrigo/version"
)

var (
	cfgFile      string
	outputFormat string
)

var rootCmd = &cobra.Command{
	Use:   "corrigo",
	Short: "Grammatical error correction with instruction-tuned LLMs",
	Long: `Corrigo corrects learner-written essays using instruction-tuned
language models.

It builds chat-formatted prompts around an essay, sends them to a
hosted or local completion backend, and extracts the corrected text
from the model output. Two correction tasks are supported:
  - minimal:  fix grammatical errors with as few edits as possible
  - fluency:  also improve fluency and naturalness`,
	Version: version.GitRelease,
}

func init() {
	rootCmd.PersistentFlags().StringVar(
		&cfgFile, "config", "", "config file (default: ./config.yaml or ~/.corrigo/config.yaml)",
	)
	rootCmd.PersistentFlags().StringVarP(
		&outputFormat, "output", "o", "text", "output format: text, yaml or json",
	)

	// Set output format before any command runs
	rootCmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		api.SetOutputFormat(outputFormat)
	}

	rootCmd.AddCommand(versionCmd)
}
