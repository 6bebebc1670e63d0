package config

import (
	"encoding/json"
	"os"
	"path/filepath"
)

const (
	// ConfigDir is the directory name under ~/.config
	ConfigDir = "weatheragent"
	// ConfigFile is the config file name
	ConfigFile = "config.json"

	defaultCacheFile = "locations.db"
	defaultLogFile   = "agent.log"
)

// FileSystem abstracts file operations for testability
type FileSystem interface {
	UserHomeDir() (string, error)
	ReadFile(path string) ([]byte, error)
}

// ConfigFileReader implements FileSystem using the real OS for config loading
type ConfigFileReader struct{}

func (ConfigFileReader) UserHomeDir() (string, error) {
	return os.UserHomeDir()
}

func (ConfigFileReader) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

// Loader handles configuration loading with injected dependencies
type Loader struct {
	fs     FileSystem
	getenv func(string) string
}

// NewLoader creates a production Loader using the real filesystem and environment
func NewLoader() *Loader {
	return &Loader{fs: ConfigFileReader{}, getenv: os.Getenv}
}

// NewLoaderWithFS creates a Loader with a custom filesystem and environment (for testing)
func NewLoaderWithFS(fs FileSystem, getenv func(string) string) *Loader {
	return &Loader{fs: fs, getenv: getenv}
}

// Load reads configuration from ~/.config/weatheragent/config.json,
// merges it with defaults and then fills credentials from the environment.
// Returns default config if the dotfile doesn't exist.
// Returns error only for parse errors, permission issues, or validation failures.
//
// NOTE: This implementation unmarshals JSON keys directly over the default configuration.
// This allows explicit zero values (e.g., 0, false, "") in the config file to override defaults.
func (l *Loader) Load() (*Config, error) {
	cfg := DefaultConfig()

	homeDir, err := l.fs.UserHomeDir()
	if err != nil {
		// Without a home dir there is no dotfile and no default state paths.
		FromEnv(cfg, l.getenv)
		if err := cfg.Validate(); err != nil {
			return nil, err
		}
		return cfg, nil
	}

	configDir := filepath.Join(homeDir, ".config", ConfigDir)
	cfg.Cache.Path = filepath.Join(configDir, defaultCacheFile)
	cfg.Log.Path = filepath.Join(configDir, defaultLogFile)

	data, err := l.fs.ReadFile(filepath.Join(configDir, ConfigFile))
	if err != nil && !os.IsNotExist(err) {
		return nil, err // permission issues and friends
	}
	if err == nil {
		if err := json.Unmarshal(data, cfg); err != nil {
			return nil, err
		}
	}

	FromEnv(cfg, l.getenv)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Load is a convenience function using the default loader
func Load() (*Config, error) {
	return NewLoader().Load()
}
