package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/afero"
	"godot-cli/internal/interfaces"
)

const testConfigPath = "/home/tester/.config/godot-cli/config.toml"

func newTestManager(t *testing.T, fs afero.Fs) *Manager {
	t.Helper()
	manager, err := NewManager(fs, testConfigPath)
	if err != nil {
		t.Fatalf("NewManager() failed: %v", err)
	}
	return manager
}

func TestNewManager(t *testing.T) {
	manager := newTestManager(t, afero.NewMemMapFs())
	if manager.v == nil {
		t.Fatal("NewManager() created manager with nil viper instance")
	}
	if manager.Location() != testConfigPath {
		t.Errorf("Location() = %s, expected %s", manager.Location(), testConfigPath)
	}
}

func TestNewManager_DefaultPath(t *testing.T) {
	expected, err := DefaultPath()
	if err != nil {
		t.Skipf("no user config directory: %v", err)
	}

	manager, err := NewManager(afero.NewMemMapFs(), "")
	if err != nil {
		t.Fatalf("NewManager() failed: %v", err)
	}
	if manager.Location() != expected {
		t.Errorf("Location() = %s, expected %s", manager.Location(), expected)
	}
	if filepath.Base(filepath.Dir(expected)) != AppName {
		t.Errorf("Expected default path under %s, got %s", AppName, expected)
	}
}

func TestManager_Load_MissingFile(t *testing.T) {
	manager := newTestManager(t, afero.NewMemMapFs())

	config, err := manager.Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if *config != (interfaces.Config{}) {
		t.Errorf("Expected empty default config, got %+v", *config)
	}
}

func TestManager_Load_CustomFile(t *testing.T) {
	fs := afero.NewMemMapFs()
	configContent := `
godot_exec = "/opt/godot/godot"
project_dir = "/home/tester/games"
`
	if err := afero.WriteFile(fs, testConfigPath, []byte(configContent), 0644); err != nil {
		t.Fatalf("Failed to create test config file: %v", err)
	}

	config, err := newTestManager(t, fs).Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if config.GodotExec != "/opt/godot/godot" {
		t.Errorf("Expected GodotExec to be '/opt/godot/godot', got %s", config.GodotExec)
	}
	if config.ProjectDir != "/home/tester/games" {
		t.Errorf("Expected ProjectDir to be '/home/tester/games', got %s", config.ProjectDir)
	}
}

func TestManager_Load_PartialFile(t *testing.T) {
	fs := afero.NewMemMapFs()
	if err := afero.WriteFile(fs, testConfigPath, []byte(`project_dir = "/games"`), 0644); err != nil {
		t.Fatalf("Failed to create test config file: %v", err)
	}

	config, err := newTestManager(t, fs).Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if config.GodotExec != "" {
		t.Errorf("Expected GodotExec to be unset, got %s", config.GodotExec)
	}
	if config.ProjectDir != "/games" {
		t.Errorf("Expected ProjectDir to be '/games', got %s", config.ProjectDir)
	}
}

func TestManager_Load_CorruptFile(t *testing.T) {
	fs := afero.NewMemMapFs()
	if err := afero.WriteFile(fs, testConfigPath, []byte("godot_exec = [unterminated"), 0644); err != nil {
		t.Fatalf("Failed to create test config file: %v", err)
	}

	_, err := newTestManager(t, fs).Load()
	if err == nil {
		t.Fatal("Expected error loading corrupt config")
	}
	if !strings.Contains(err.Error(), testConfigPath) {
		t.Errorf("Expected error to name the config file, got %v", err)
	}
}

func TestManager_StoreRoundTrip(t *testing.T) {
	fs := afero.NewMemMapFs()
	stored := &interfaces.Config{
		GodotExec:  "/opt/godot/godot",
		ProjectDir: "/home/tester/games",
	}

	if err := newTestManager(t, fs).Store(stored); err != nil {
		t.Fatalf("Store() failed: %v", err)
	}

	content, err := afero.ReadFile(fs, testConfigPath)
	if err != nil {
		t.Fatalf("Expected config file to be written: %v", err)
	}
	if !strings.Contains(string(content), "godot_exec") || !strings.Contains(string(content), "project_dir") {
		t.Errorf("Expected both entries in stored file, got:\n%s", content)
	}

	loaded, err := newTestManager(t, fs).Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if *loaded != *stored {
		t.Errorf("Round trip mismatch: stored %+v, loaded %+v", *stored, *loaded)
	}
}

func TestManager_StoreReset(t *testing.T) {
	fs := afero.NewMemMapFs()
	manager := newTestManager(t, fs)

	if err := manager.Store(&interfaces.Config{GodotExec: "/g", ProjectDir: "/p"}); err != nil {
		t.Fatalf("Store() failed: %v", err)
	}
	if err := manager.Store(&interfaces.Config{}); err != nil {
		t.Fatalf("Store() failed: %v", err)
	}

	loaded, err := newTestManager(t, fs).Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if *loaded != (interfaces.Config{}) {
		t.Errorf("Expected reset config, got %+v", *loaded)
	}
}

func TestManager_Store_Nil(t *testing.T) {
	if err := newTestManager(t, afero.NewMemMapFs()).Store(nil); err == nil {
		t.Error("Expected error storing nil config")
	}
}

func TestManager_Store_ReadOnly(t *testing.T) {
	fs := afero.NewReadOnlyFs(afero.NewMemMapFs())
	if err := newTestManager(t, fs).Store(&interfaces.Config{GodotExec: "/g"}); err == nil {
		t.Error("Expected error storing to a read-only filesystem")
	}
}

func TestExpandPath(t *testing.T) {
	tests := []struct {
		name     string
		path     string
		expected string
	}{
		{
			name:     "absolute path",
			path:     "/absolute/path",
			expected: "/absolute/path",
		},
		{
			name:     "relative path",
			path:     "relative/path",
			expected: "relative/path",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := expandPath(tt.path)
			if result != tt.expected {
				t.Errorf("expandPath(%s) = %s, expected %s", tt.path, result, tt.expected)
			}
		})
	}

	homeDir, err := os.UserHomeDir()
	if err == nil {
		result := expandPath("~/test/path")
		expected := filepath.Join(homeDir, "test/path")
		if result != expected {
			t.Errorf("expandPath(~/test/path) = %s, expected %s", result, expected)
		}
	}
}
