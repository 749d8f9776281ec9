package home

import (
	"os"
	"path/filepath"
	"testing"
)

func TestNew_DefaultPath(t *testing.T) {
	d, err := New("")
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	userHome, err := os.UserHomeDir()
	if err != nil {
		t.Fatalf("UserHomeDir() error = %v", err)
	}

	want := filepath.Join(userHome, DefaultDirName)
	if d.Path() != want {
		t.Errorf("Path() = %q, want %q", d.Path(), want)
	}
}

func TestNew_CustomPath(t *testing.T) {
	custom := t.TempDir()
	d, err := New(custom)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	if d.Path() != custom {
		t.Errorf("Path() = %q, want %q", d.Path(), custom)
	}
	if got := d.ModelsPath(); got != filepath.Join(custom, ModelsDirName) {
		t.Errorf("ModelsPath() = %q", got)
	}
	if got := d.ConfigPath(); got != filepath.Join(custom, ConfigFileName) {
		t.Errorf("ConfigPath() = %q", got)
	}
}

func TestEnsureExists(t *testing.T) {
	root := filepath.Join(t.TempDir(), "corrigo-home")
	d, err := New(root)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	if d.Exists() {
		t.Fatal("Exists() = true before EnsureExists")
	}

	if err := d.EnsureExists(); err != nil {
		t.Fatalf("EnsureExists() error = %v", err)
	}

	if !d.Exists() {
		t.Error("Exists() = false after EnsureExists")
	}
	if _, err := os.Stat(d.ModelsPath()); err != nil {
		t.Errorf("models directory not created: %v", err)
	}
	if d.ConfigExists() {
		t.Error("ConfigExists() = true with no config written")
	}
}
