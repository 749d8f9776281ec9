package endpoints

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"github.com/spf13/cobra"

	"github.com/fluentink/corrigo/internal/api"
	"github.com/fluentink/corrigo/internal/calllog"
	"github.com/fluentink/corrigo/internal/config"
	"github.com/fluentink/corrigo/internal/gec"
	"github.com/fluentink/corrigo/internal/prompts"
	"github.com/fluentink/corrigo/internal/providers"
)

//go:embed correct_schema.json
var correctSchemaJSON string

// correctSchema validates incoming correction request bodies before they
// reach the pipeline.
var correctSchema = jsonschema.MustCompileString("correct_schema.json", correctSchemaJSON)

// CorrectRequest is the request body for POST /v1/correct.
type CorrectRequest struct {
	Essay       string  `json:"essay"`
	Task        string  `json:"task,omitempty"`
	Mode        string  `json:"mode,omitempty"`
	Language    string  `json:"language,omitempty"`
	MaxTokens   int     `json:"max_tokens,omitempty"`
	Temperature float64 `json:"temperature,omitempty"`
	Provider    string  `json:"provider,omitempty"`
	Model       string  `json:"model,omitempty"`
}

// CorrectResponse is the response body for POST /v1/correct.
type CorrectResponse struct {
	Corrected        string `json:"corrected"`
	Provider         string `json:"provider"`
	Model            string `json:"model"`
	RequestID        string `json:"request_id"`
	PromptTokens     int    `json:"prompt_tokens"`
	CompletionTokens int    `json:"completion_tokens"`
	Attempts         int    `json:"attempts"`
	DurationMs       int64  `json:"duration_ms"`
}

// CorrectEndpoint handles POST /v1/correct.
type CorrectEndpoint struct {
	Registry  *providers.Registry
	Recorder  *calllog.Recorder
	ConfigMgr *config.Manager
}

func (e *CorrectEndpoint) Route() (string, string, http.HandlerFunc) {
	return "POST", "/v1/correct", e.handler
}

func (e *CorrectEndpoint) handler(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		writeError(w, http.StatusBadRequest, "failed to read body: %v", err)
		return
	}

	// Schema validation first, so malformed requests never reach the
	// pipeline with partially decoded fields.
	var raw any
	if err := json.Unmarshal(body, &raw); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON: %v", err)
		return
	}
	if err := correctSchema.Validate(raw); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request: %v", err)
		return
	}

	var req CorrectRequest
	if err := json.Unmarshal(body, &req); err != nil {
		writeError(w, http.StatusBadRequest, "failed to decode request: %v", err)
		return
	}
	e.applyDefaults(&req)

	gen, err := e.Registry.Get(req.Provider)
	if err != nil {
		writeError(w, http.StatusBadRequest, "unknown provider: %s", req.Provider)
		return
	}

	corrector, err := gec.New(gec.Config{Generator: gen, Recorder: e.Recorder})
	if err != nil {
		writeError(w, http.StatusInternalServerError, "%v", err)
		return
	}

	result, err := corrector.Correct(r.Context(), gec.Request{
		Essay:       req.Essay,
		Task:        prompts.Task(req.Task),
		Mode:        prompts.Mode(req.Mode),
		Language:    req.Language,
		MaxTokens:   req.MaxTokens,
		Temperature: req.Temperature,
		Model:       req.Model,
	})
	if err != nil {
		switch {
		case errors.Is(err, prompts.ErrUnknownTask), errors.Is(err, prompts.ErrUnknownMode):
			writeError(w, http.StatusBadRequest, "%v", err)
		case errors.Is(err, prompts.ErrMarkerNotFound):
			writeError(w, http.StatusUnprocessableEntity, "%v", err)
		default:
			writeError(w, http.StatusBadGateway, "generation failed: %v", err)
		}
		return
	}

	writeJSON(w, http.StatusOK, CorrectResponse{
		Corrected:        result.Corrected,
		Provider:         result.Provider,
		Model:            result.Model,
		RequestID:        result.RequestID,
		PromptTokens:     result.PromptTokens,
		CompletionTokens: result.CompletionTokens,
		Attempts:         result.Attempts,
		DurationMs:       result.Duration.Milliseconds(),
	})
}

// applyDefaults fills unset request fields from the server configuration.
func (e *CorrectEndpoint) applyDefaults(req *CorrectRequest) {
	var defaults config.DefaultsCfg
	if e.ConfigMgr != nil {
		defaults = e.ConfigMgr.Get().Defaults
	} else {
		defaults = config.DefaultConfig().Defaults
	}

	if req.Task == "" {
		req.Task = defaults.Task
	}
	if req.Mode == "" {
		req.Mode = defaults.Mode
	}
	if req.Language == "" {
		req.Language = defaults.Language
	}
	if req.MaxTokens == 0 {
		req.MaxTokens = defaults.MaxTokens
	}
	if req.Temperature == 0 {
		req.Temperature = defaults.Temperature
	}
	if req.Provider == "" {
		req.Provider = defaults.Provider
	}
}

func (e *CorrectEndpoint) Command(getServerURL func() string) *cobra.Command {
	var (
		task      string
		mode      string
		language  string
		maxTokens int
		provider  string
	)

	cmd := &cobra.Command{
		Use:   "correct [file]",
		Short: "Correct an essay via the server",
		Long: `Correct an essay via a running corrigo server.

Reads the essay from the given file, or from stdin when the argument is
omitted or "-".`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			essay, err := readEssayArg(args)
			if err != nil {
				return err
			}

			client := api.NewClient(getServerURL())
			var resp CorrectResponse
			err = client.Post(cmd.Context(), "/v1/correct", CorrectRequest{
				Essay:     essay,
				Task:      task,
				Mode:      mode,
				Language:  language,
				MaxTokens: maxTokens,
				Provider:  provider,
			}, &resp)
			if err != nil {
				return err
			}

			if api.IsStructuredOutput() {
				return api.Output(resp)
			}
			fmt.Println(resp.Corrected)
			return nil
		},
	}

	cmd.Flags().StringVar(&task, "task", "", "correction task: minimal or fluency")
	cmd.Flags().StringVar(&mode, "mode", "", "prompt mode: zero_shot or one_shot")
	cmd.Flags().StringVar(&language, "language", "", "essay language")
	cmd.Flags().IntVar(&maxTokens, "max-tokens", 0, "max tokens to generate")
	cmd.Flags().StringVar(&provider, "provider", "", "generation provider")

	return cmd
}

// readEssayArg reads the essay from the file argument or stdin.
func readEssayArg(args []string) (string, error) {
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
