package endpoints

import (
	"net/http"

	"github.com/spf13/cobra"

	"github.com/fluentink/corrigo/internal/api"
	"github.com/fluentink/corrigo/internal/calllog"
)

// CallsEndpoint handles GET /v1/calls, listing recent generation calls.
type CallsEndpoint struct {
	Recorder *calllog.Recorder
}

func (e *CallsEndpoint) Route() (string, string, http.HandlerFunc) {
	return "GET", "/v1/calls", e.handler
}

func (e *CallsEndpoint) handler(w http.ResponseWriter, r *http.Request) {
	calls := e.Recorder.List()
	if calls == nil {
		calls = []calllog.Call{}
	}
	writeJSON(w, http.StatusOK, calls)
}

func (e *CallsEndpoint) Command(getServerURL func() string) *cobra.Command {
	return &cobra.Command{
		Use:   "calls",
		Short: "List recent generation calls",
		RunE: func(cmd *cobra.Command, args []string) error {
			client := api.NewClient(getServerURL())
			var calls []calllog.Call
			if err := client.Get(cmd.Context(), "/v1/calls", &calls); err != nil {
				return err
			}
			return api.Output(calls)
		},
	}
}
