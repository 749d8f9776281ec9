package endpoints

import (
	"fmt"
	"net/http"

	"github.com/spf13/cobra"

	"github.com/fluentink/corrigo/internal/api"
	"github.com/fluentink/corrigo/internal/prompts"
)

// TaskInfo describes one registered correction task.
type TaskInfo struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// TasksEndpoint handles GET /v1/tasks.
type TasksEndpoint struct{}

func (e *TasksEndpoint) Route() (string, string, http.HandlerFunc) {
	return "GET", "/v1/tasks", e.handler
}

func (e *TasksEndpoint) handler(w http.ResponseWriter, r *http.Request) {
	tasks := make([]TaskInfo, 0, 2)
	for _, t := range prompts.Tasks() {
		desc, err := prompts.Describe(t)
		if err != nil {
			continue
		}
		tasks = append(tasks, TaskInfo{Name: string(t), Description: desc})
	}
	writeJSON(w, http.StatusOK, tasks)
}

func (e *TasksEndpoint) Command(getServerURL func() string) *cobra.Command {
	return &cobra.Command{
		Use:   "tasks",
		Short: "List correction tasks",
		RunE: func(cmd *cobra.Command, args []string) error {
			client := api.NewClient(getServerURL())
			var resp []TaskInfo
			if err := client.Get(cmd.Context(), "/v1/tasks", &resp); err != nil {
				return err
			}
			if api.IsStructuredOutput() {
				return api.Output(resp)
			}
			for _, t := range resp {
				fmt.Printf("%s\n  %s\n", t.Name, t.Description)
			}
			return nil
		},
	}
}

// ModeInfo describes one registered interaction mode.
type ModeInfo struct {
	Name  string `json:"name"`
	Slots int    `json:"slots"`
}

// ModesEndpoint handles GET /v1/modes.
type ModesEndpoint struct{}

func (e *ModesEndpoint) Route() (string, string, http.HandlerFunc) {
	return "GET", "/v1/modes", e.handler
}

func (e *ModesEndpoint) handler(w http.ResponseWriter, r *http.Request) {
	modes := make([]ModeInfo, 0, 2)
	for _, m := range prompts.Modes() {
		tmpl, err := prompts.ModeTemplate(m)
		if err != nil {
			continue
		}
		modes = append(modes, ModeInfo{Name: string(m), Slots: tmpl.Arity()})
	}
	writeJSON(w, http.StatusOK, modes)
}

func (e *ModesEndpoint) Command(getServerURL func() string) *cobra.Command {
	return &cobra.Command{
		Use:   "modes",
		Short: "List interaction modes",
		RunE: func(cmd *cobra.Command, args []string) error {
			client := api.NewClient(getServerURL())
			var resp []ModeInfo
			if err := client.Get(cmd.Context(), "/v1/modes", &resp); err != nil {
				return err
			}
			if api.IsStructuredOutput() {
				return api.Output(resp)
			}
			for _, m := range resp {
				fmt.Printf("%s (%d slots)\n", m.Name, m.Slots)
			}
			return nil
		},
	}
}
