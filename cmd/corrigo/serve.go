package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/fluentink/corrigo/internal/config"
	"github.com/fluentink/corrigo/internal/server"
)

var (
	serveHost string
	servePort string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the Corrigo server",
	Long: `Start the Corrigo HTTP server.

The server provides:
  - /health      - Server health and registered providers
  - /v1/tasks    - Available correction tasks
  - /v1/modes    - Available prompt modes
  - /v1/correct  - Correct an essay
  - /v1/calls    - Recent generation calls

Examples:
  corrigo serve                    # Start on default port 8080
  corrigo serve --port 3000        # Start on custom port
  corrigo serve --host 0.0.0.0     # Bind to all interfaces`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		// Set up logger
		logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		}))

		configMgr, err := config.NewManager(cfgFile)
		if err != nil {
			return err
		}
		configMgr.WatchConfig()

		srv, err := server.New(server.Config{
			Host:          serveHost,
			Port:          servePort,
			ConfigManager: configMgr,
			Logger:        logger,
		})
		if err != nil {
			return err
		}

		// Start server (blocks until shutdown)
		return srv.Start(ctx)
	},
}

func init() {
	serveCmd.Flags().StringVar(&serveHost, "host", "127.0.0.1", "Host to bind to")
	serveCmd.Flags().StringVar(&servePort, "port", "8080", "Port to listen on")

	rootCmd.AddCommand(serveCmd)
}
