package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// EnvConfigPath overrides the config file location.
const EnvConfigPath = "TFMT_CONFIG"

// Config represents the CLI configuration
type Config struct {
	// Default output format (markdown, json, ndjson, yaml, grid)
	Output string `yaml:"output,omitempty"`

	// Default color mode (auto, always, never)
	Color string `yaml:"color,omitempty"`

	// Default error format (auto, text, json, yaml)
	ErrorFormat string `yaml:"error_format,omitempty"`

	// Log handler for --debug output (text, json)
	LogFormat string `yaml:"log_format,omitempty"`
}

// Keys lists the settable keys in the order they are documented.
var Keys = []string{"output", "color", "error_format", "log_format"}

// configPathFunc is the function used to get the default config path.
// It can be overridden for testing.
var configPathFunc = defaultConfigPath

// SetConfigPathFunc sets the config path function for testing.
// Returns the original function so it can be restored.
func SetConfigPathFunc(fn func() (string, error)) func() (string, error) {
	orig := configPathFunc
	configPathFunc = fn
	return orig
}

// defaultConfigPath returns $TFMT_CONFIG or ~/.config/tablefmt/config.yaml
func defaultConfigPath() (string, error) {
	if p := strings.TrimSpace(os.Getenv(EnvConfigPath)); p != "" {
		return p, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "tablefmt", "config.yaml"), nil
}

// DefaultConfigPath returns the path Load reads from.
func DefaultConfigPath() (string, error) {
	return configPathFunc()
}

// Load loads config from the default path, returns empty config if not found
func Load() (*Config, error) {
	path, err := DefaultConfigPath()
	if err != nil {
		return &Config{}, nil
	}
	return LoadFromPath(path)
}

// LoadFromPath loads config from a specific path
func LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return &Config{}, nil
	}
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("invalid config file: %w", err)
	}
	return &cfg, nil
}

// Save saves config to the default path
func (c *Config) Save() error {
	path, err := DefaultConfigPath()
	if err != nil {
		return err
	}
	return c.SaveToPath(path)
}

// SaveToPath saves config to a specific path
func (c *Config) SaveToPath(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o600)
}

// Get returns the value stored under key.
func (c *Config) Get(key string) (string, error) {
	switch key {
	case "output":
		return c.Output, nil
	case "color":
		return c.Color, nil
	case "error_format":
		return c.ErrorFormat, nil
	case "log_format":
		return c.LogFormat, nil
	default:
		return "", unknownKeyError(key)
	}
}

// Set stores value under key. Values are not validated here; callers check
// them against the flag they default.
func (c *Config) Set(key, value string) error {
	switch key {
	case "output":
		c.Output = value
	case "color":
		c.Color = value
	case "error_format":
		c.ErrorFormat = value
	case "log_format":
		c.LogFormat = value
	default:
		return unknownKeyError(key)
	}
	return nil
}

// IsEmpty reports whether no key is set.
func (c *Config) IsEmpty() bool {
	return *c == Config{}
}

func unknownKeyError(key string) error {
	return fmt.Errorf("unknown config key %q\n\nSupported keys: %s", key, strings.Join(Keys, ", "))
}
