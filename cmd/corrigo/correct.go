package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/fluentink/corrigo/internal/api"
	"github.com/fluentink/corrigo/internal/config"
	"github.com/fluentink/corrigo/internal/gec"
	"github.com/fluentink/corrigo/internal/prompts"
	"github.com/fluentink/corrigo/internal/providers"
)

var (
	correctTask       string
	correctMode       string
	correctLanguage   string
	correctMaxTokens  int
	correctProvider   string
	correctModel      string
	correctShowPrompt bool
)

var correctCmd = &cobra.Command{
	Use:   "correct [file]",
	Short: "Correct an essay",
	Long: `Correct a learner-written essay using a configured provider.

Reads the essay from the given file, or from stdin when the argument is
omitted or "-". This calls the provider directly; no server is needed.

Examples:
  corrigo correct essay.txt
  corrigo correct essay.txt --task fluency --mode zero_shot
  cat essay.txt | corrigo correct --provider openai`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		essay, err := readEssay(args)
		if err != nil {
			return err
		}

		configMgr, err := config.NewManager(cfgFile)
		if err != nil {
			return err
		}
		cfg := configMgr.Get()

		logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelWarn,
		}))

		registry := providers.NewRegistryFromConfig(cfg.ToRegistryConfig())
		registry.SetLogger(logger)

		providerName := correctProvider
		if providerName == "" {
			providerName = cfg.Defaults.Provider
		}
		gen, err := registry.Get(providerName)
		if err != nil {
			return fmt.Errorf("provider %q not configured or missing API key", providerName)
		}

		corrector, err := gec.New(gec.Config{Generator: gen, Logger: logger})
		if err != nil {
			return err
		}

		req := gec.Request{
			Essay:       essay,
			Task:        prompts.Task(correctTask),
			Mode:        prompts.Mode(correctMode),
			Language:    correctLanguage,
			MaxTokens:   correctMaxTokens,
			Model:       correctModel,
			Temperature: cfg.Defaults.Temperature,
		}
		if req.Task == "" {
			req.Task = prompts.Task(cfg.Defaults.Task)
		}
		if req.Mode == "" {
			req.Mode = prompts.Mode(cfg.Defaults.Mode)
		}
		if req.Language == "" {
			req.Language = cfg.Defaults.Language
		}
		if req.MaxTokens == 0 {
			req.MaxTokens = cfg.Defaults.MaxTokens
		}

		result, err := corrector.Correct(cmd.Context(), req)
		if err != nil {
			return err
		}

		if api.IsStructuredOutput() {
			if !correctShowPrompt {
				result.Prompt = ""
			}
			return api.Output(result)
		}

		if correctShowPrompt {
			fmt.Fprintln(os.Stderr, result.Prompt)
		}
		fmt.Println(result.Corrected)
		return nil
	},
}

// readEssay reads the essay from the file argument or stdin.
func readEssay(args []string) (string, error) {
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("failed to read stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(args[0])
	if err != nil {
		return "", fmt.Errorf("failed to read essay file: %w", err)
	}
	return string(data), nil
}

func init() {
	correctCmd.Flags().StringVar(&correctTask, "task", "", "correction task: minimal or fluency")
	correctCmd.Flags().StringVar(&correctMode, "mode", "", "prompt mode: zero_shot or one_shot")
	correctCmd.Flags().StringVar(&correctLanguage, "language", "", "essay language")
	correctCmd.Flags().IntVar(&correctMaxTokens, "max-tokens", 0, "max tokens to generate")
	correctCmd.Flags().StringVar(&correctProvider, "provider", "", "generation provider")
	correctCmd.Flags().StringVar(&correctModel, "model", "", "model override")
	correctCmd.Flags().BoolVar(&correctShowPrompt, "show-prompt", false, "print the formatted prompt")

	rootCmd.AddCommand(correctCmd)
}
