package endpoints

import (
	"github.com/fluentink/corrigo/internal/api"
	"github.com/fluentink/corrigo/internal/calllog"
	"github.com/fluentink/corrigo/internal/config"
	"github.com/fluentink/corrigo/internal/providers"
)

// Config carries the dependencies shared by the endpoints.
type Config struct {
	Registry  *providers.Registry
	Recorder  *calllog.Recorder
	ConfigMgr *config.Manager
}

// All returns every endpoint the server exposes.
func All(cfg Config) []api.Endpoint {
	return []api.Endpoint{
		&HealthEndpoint{Registry: cfg.Registry},
		&TasksEndpoint{},
		&ModesEndpoint{},
		&CorrectEndpoint{
			Registry:  cfg.Registry,
			Recorder:  cfg.Recorder,
			ConfigMgr: cfg.ConfigMgr,
		},
		&CallsEndpoint{Recorder: cfg.Recorder},
	}
}
