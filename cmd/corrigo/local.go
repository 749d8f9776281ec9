package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/fluentink/corrigo/internal/config"
	"github.com/fluentink/corrigo/internal/home"
	"github.com/fluentink/corrigo/internal/runtime"
)

var localCmd = &cobra.Command{
	Use:   "local",
	Short: "Manage the local inference container",
	Long: `Manage the local inference container lifecycle.

The container runs a vLLM server exposing an OpenAI-compatible API,
letting corrections run against a local model instead of a hosted
provider. Downloaded model weights are cached under ~/.corrigo/models/.

Examples:
  corrigo local up      # Create and start the container
  corrigo local down    # Stop the container (model cache preserved)
  corrigo local status  # Check container status
  corrigo local logs    # View container logs`,
}

var localUpCmd = &cobra.Command{
	Use:   "up",
	Short: "Start the local inference container",
	Long: `Start the local inference container.

If the container doesn't exist, it will be created and started.
If it exists but is stopped, it will be started.
If it's already running, this is a no-op.

The first start downloads model weights, which can take several
minutes. Weights are cached under ~/.corrigo/models/.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		mgr, err := getRuntimeManager()
		if err != nil {
			return err
		}
		defer mgr.Close()

		fmt.Printf("Starting inference container (model: %s)...\n", mgr.Model())
		if err := mgr.Start(ctx); err != nil {
			return fmt.Errorf("failed to start container: %w", err)
		}

		fmt.Printf("Inference server is running at %s\n", mgr.BaseURL())
		fmt.Println("Enable the \"local\" provider in config.yaml to use it.")
		return nil
	},
}

var localDownCmd = &cobra.Command{
	Use:   "down",
	Short: "Stop the local inference container",
	Long: `Stop the local inference container.

This stops the container but preserves the model cache. Use
'corrigo local up' to restart it later.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		mgr, err := getRuntimeManager()
		if err != nil {
			return err
		}
		defer mgr.Close()

		fmt.Println("Stopping inference container...")
		if err := mgr.Stop(ctx); err != nil {
			return fmt.Errorf("failed to stop container: %w", err)
		}

		fmt.Println("Inference container stopped")
		return nil
	},
}

var localStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show inference container status",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		mgr, err := getRuntimeManager()
		if err != nil {
			return err
		}
		defer mgr.Close()

		status, err := mgr.Status(ctx)
		if err != nil {
			return fmt.Errorf("failed to get status: %w", err)
		}

		switch status {
		case runtime.StatusRunning:
			fmt.Printf("Status: %s\n", status)
			fmt.Printf("URL: %s\n", mgr.BaseURL())
			fmt.Printf("Model: %s\n", mgr.Model())
		case runtime.StatusStopped:
			fmt.Printf("Status: %s (use 'corrigo local up' to start)\n", status)
		case runtime.StatusNotFound:
			fmt.Printf("Status: %s (use 'corrigo local up' to create)\n", status)
		default:
			fmt.Printf("Status: %s\n", status)
		}

		return nil
	},
}

var localLogsTail string

var localLogsCmd = &cobra.Command{
	Use:   "logs",
	Short: "Show inference container logs",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		mgr, err := getRuntimeManager()
		if err != nil {
			return err
		}
		defer mgr.Close()

		logs, err := mgr.Logs(ctx, localLogsTail)
		if err != nil {
			return fmt.Errorf("failed to get logs: %w", err)
		}

		fmt.Print(logs)
		return nil
	},
}

var localRemoveCmd = &cobra.Command{
	Use:   "remove",
	Short: "Remove the inference container",
	Long: `Remove the inference container.

This stops and removes the container. The model cache under
~/.corrigo/models/ is NOT deleted - only the container is removed.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		mgr, err := getRuntimeManager()
		if err != nil {
			return err
		}
		defer mgr.Close()

		fmt.Println("Removing inference container...")
		if err := mgr.Remove(ctx); err != nil {
			return fmt.Errorf("failed to remove container: %w", err)
		}

		fmt.Println("Inference container removed (model cache preserved)")
		return nil
	},
}

var localWaitCmd = &cobra.Command{
	Use:   "wait",
	Short: "Wait for the inference server to be ready",
	Long: `Wait for the inference server to be ready to accept requests.

Useful in scripts to ensure the model is loaded before sending
correction requests.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		mgr, err := getRuntimeManager()
		if err != nil {
			return err
		}
		defer mgr.Close()

		timeout, _ := cmd.Flags().GetDuration("timeout")
		fmt.Printf("Waiting for inference server (timeout: %s)...\n", timeout)

		if err := mgr.WaitReady(ctx, timeout); err != nil {
			return fmt.Errorf("inference server not ready: %w", err)
		}

		fmt.Println("Inference server is ready")
		return nil
	},
}

func init() {
	localCmd.AddCommand(localUpCmd)
	localCmd.AddCommand(localDownCmd)
	localCmd.AddCommand(localStatusCmd)
	localCmd.AddCommand(localLogsCmd)
	localCmd.AddCommand(localRemoveCmd)
	localCmd.AddCommand(localWaitCmd)

	localLogsCmd.Flags().StringVar(&localLogsTail, "tail", "100", "Number of lines to show from the end")
	localWaitCmd.Flags().Duration("timeout", 10*time.Minute, "Timeout waiting for the inference server")

	rootCmd.AddCommand(localCmd)
}

// getRuntimeManager creates a runtime Manager from the configured
// runtime settings.
func getRuntimeManager() (*runtime.Manager, error) {
	configMgr, err := config.NewManager(cfgFile)
	if err != nil {
		return nil, err
	}
	rt := configMgr.Get().Runtime

	cachePath := rt.CachePath
	if cachePath == "" {
		h, err := home.New("")
		if err != nil {
			return nil, err
		}
		if err := h.EnsureExists(); err != nil {
			return nil, err
		}
		cachePath = h.ModelsPath()
	} else if err := os.MkdirAll(cachePath, 0755); err != nil {
		return nil, fmt.Errorf("failed to create model cache directory: %w", err)
	}

	return runtime.NewManager(runtime.Config{
		ContainerName: rt.ContainerName,
		Image:         rt.Image,
		Model:         rt.Model,
		CachePath:     cachePath,
		HostPort:      rt.Port,
	})
}
