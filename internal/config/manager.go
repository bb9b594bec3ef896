package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
	"github.com/spf13/viper"
	"godot-cli/internal/interfaces"
)

// AppName names the per-user config directory
const AppName = "godot-cli"

// Manager implements the ConfigStore interface on top of a TOML file
type Manager struct {
	v    *viper.Viper
	fs   afero.Fs
	path string
}

// NewManager creates a configuration manager backed by the file at path.
// An empty path selects DefaultPath.
func NewManager(fs afero.Fs, path string) (*Manager, error) {
	if path == "" {
		var err error
		if path, err = DefaultPath(); err != nil {
			return nil, err
		}
	}

	v := viper.New()
	v.SetFs(fs)
	v.SetConfigType("toml")
	setDefaults(v)

	return &Manager{
		v:    v,
		fs:   fs,
		path: expandPath(path),
	}, nil
}

// DefaultPath returns the per-user config file location
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user config directory: %w", err)
	}
	return filepath.Join(dir, AppName, "config.toml"), nil
}

// setDefaults sets the default configuration values
func setDefaults(v *viper.Viper) {
	for _, entry := range interfaces.Entries {
		v.SetDefault(entry, "")
	}
}

// Location returns the path of the backing file
func (m *Manager) Location() string {
	return m.path
}

// Load reads the configuration file. A missing file yields the empty default.
func (m *Manager) Load() (*interfaces.Config, error) {
	exists, err := afero.Exists(m.fs, m.path)
	if err != nil {
		return nil, fmt.Errorf("failed to stat config file %s: %w", m.path, err)
	}
	if !exists {
		return m.getConfigFromViper(), nil
	}

	m.v.SetConfigFile(m.path)
	if err := m.v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", m.path, err)
	}

	return m.getConfigFromViper(), nil
}

// Store writes the whole record, creating the config directory when needed
func (m *Manager) Store(config *interfaces.Config) error {
	if config == nil {
		return fmt.Errorf("config cannot be nil")
	}

	if err := m.fs.MkdirAll(filepath.Dir(m.path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	m.v.Set(interfaces.EntryGodotExec, config.GodotExec)
	m.v.Set(interfaces.EntryProjectDir, config.ProjectDir)

	if err := m.v.WriteConfigAs(m.path); err != nil {
		return fmt.Errorf("failed to write config file %s: %w", m.path, err)
	}
	return nil
}

// getConfigFromViper converts viper configuration to Config struct
func (m *Manager) getConfigFromViper() *interfaces.Config {
	return &interfaces.Config{
		GodotExec:  m.v.GetString(interfaces.EntryGodotExec),
		ProjectDir: m.v.GetString(interfaces.EntryProjectDir),
	}
}

// expandPath expands ~ to user home directory
func expandPath(path string) string {
	if !strings.HasPrefix(path, "~/") {
		return path
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return path
	}

	return filepath.Join(homeDir, path[2:])
}
