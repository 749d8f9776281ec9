package runtime

import (
	"context"
	"testing"
	"time"

	"github.com/fluentink/corrigo/internal/testutil"
)

func TestConfig_Defaults(t *testing.T) {
	if DefaultContainerName != "corrigo-runtime" {
		t.Errorf("unexpected default container name: %s", DefaultContainerName)
	}
	if DefaultImage != "vllm/vllm-openai:latest" {
		t.Errorf("unexpected default image: %s", DefaultImage)
	}
	if DefaultPort != "8000" {
		t.Errorf("unexpected default port: %s", DefaultPort)
	}
}

func TestManager_URLs(t *testing.T) {
	m := &Manager{hostPort: "18000"}

	if got := m.URL(); got != "http://localhost:18000" {
		t.Errorf("URL() = %q, want %q", got, "http://localhost:18000")
	}
	if got := m.BaseURL(); got != "http://localhost:18000/v1" {
		t.Errorf("BaseURL() = %q, want %q", got, "http://localhost:18000/v1")
	}
}

// TestManager_Lifecycle exercises container creation and removal against
// a real Docker daemon. It does not wait for model load.
func TestManager_Lifecycle(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	_ = testutil.DockerClient(t)

	port, err := testutil.FindFreePort()
	if err != nil {
		t.Fatalf("failed to find free port: %v", err)
	}

	mgr, err := NewManager(Config{
		ContainerName: testutil.UniqueContainerName(t, "runtime"),
		HostPort:      port,
		Labels:        testutil.ContainerLabels(t),
	})
	if err != nil {
		t.Fatalf("NewManager() error = %v", err)
	}
	defer mgr.Close()

	status, err := mgr.Status(ctx)
	if err != nil {
		t.Fatalf("Status() error = %v", err)
	}
	if status != StatusNotFound {
		t.Fatalf("Status() = %s before start, want %s", status, StatusNotFound)
	}

	if err := mgr.Remove(ctx); err != nil {
		t.Errorf("Remove() on missing container error = %v", err)
	}
}
