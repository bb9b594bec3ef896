package interfaces

import "fmt"

// Config entry names as they appear on the command line and in the config file
const (
	EntryGodotExec  = "godot_exec"
	EntryProjectDir = "project_dir"
)

// Entries lists the recognized config entries in display order
var Entries = []string{EntryGodotExec, EntryProjectDir}

// Config represents the persisted application configuration.
// An empty field means the entry is unset.
type Config struct {
	GodotExec  string `toml:"godot_exec" mapstructure:"godot_exec"`
	ProjectDir string `toml:"project_dir" mapstructure:"project_dir"`
}

// Get returns the value of the named entry
func (c *Config) Get(entry string) (string, error) {
	switch entry {
	case EntryGodotExec:
		return c.GodotExec, nil
	case EntryProjectDir:
		return c.ProjectDir, nil
	}
	return "", fmt.Errorf("unknown config entry %s", entry)
}

// Set assigns the named entry without validating the value
func (c *Config) Set(entry, value string) error {
	switch entry {
	case EntryGodotExec:
		c.GodotExec = value
	case EntryProjectDir:
		c.ProjectDir = value
	default:
		return fmt.Errorf("unknown config entry %s", entry)
	}
	return nil
}

// Clear unsets the named entry
func (c *Config) Clear(entry string) error {
	return c.Set(entry, "")
}

// Reset restores the all-empty default
func (c *Config) Reset() {
	*c = Config{}
}

// Missing returns the names of the given entries that are unset
func (c *Config) Missing(entries ...string) []string {
	var missing []string
	for _, entry := range entries {
		if v, err := c.Get(entry); err == nil && v == "" {
			missing = append(missing, entry)
		}
	}
	return missing
}

// ConfigStore loads and persists the configuration record
type ConfigStore interface {
	// Load reads the stored configuration; a missing store yields the default
	Load() (*Config, error)

	// Store persists the whole configuration record
	Store(config *Config) error

	// Location returns the path of the backing file
	Location() string
}
