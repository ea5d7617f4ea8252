package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// FileName is the project configuration file looked up by LoadConfig
const FileName = "skelgen.json"

// ErrNotFound is returned when no skelgen.json exists up the directory tree
var ErrNotFound = errors.New("config file not found")

// Config represents the skelgen.json configuration file
type Config struct {
	Input   string      `json:"input"`
	Output  string      `json:"output"`
	Mode    string      `json:"mode"`
	Targets []string    `json:"targets,omitempty"`
	Watch   WatchConfig `json:"watch"`
}

// WatchConfig contains file watching configuration
type WatchConfig struct {
	Patterns []string `json:"patterns"`
	Exclude  []string `json:"exclude"`
}

// Default returns a configuration with every default applied
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// LoadConfig loads skelgen.json from the current directory or a parent
// directory. It returns the directory the file was found in.
func LoadConfig() (*Config, string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return nil, "", fmt.Errorf("failed to get current directory: %w", err)
	}

	return loadConfigFromDir(dir)
}

// LoadConfigFromPath loads the configuration from a specific path
func LoadConfigFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config Config
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	config.applyDefaults()
	return &config, nil
}

// Marshal encodes the configuration as indented JSON with a trailing newline
func (c *Config) Marshal() ([]byte, error) {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode config: %w", err)
	}
	return append(data, '\n'), nil
}

// Save writes the configuration to path
func (c *Config) Save(path string) error {
	data, err := c.Marshal()
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// applyDefaults fills unset fields. Targets stay empty so the pipeline can
// pick them from the input form.
func (c *Config) applyDefaults() {
	if c.Input == "" {
		c.Input = "input.txt"
	}
	if c.Output == "" {
		c.Output = "output.txt"
	}
	if c.Mode == "" {
		c.Mode = "auto"
	}
	if len(c.Watch.Patterns) == 0 {
		c.Watch.Patterns = []string{filepath.Base(c.Input), FileName}
	}
	if len(c.Watch.Exclude) == 0 {
		c.Watch.Exclude = []string{filepath.Base(c.Output), ".git", "*.swp", "*~"}
	}
}

// loadConfigFromDir searches for skelgen.json in the given directory and its parents
func loadConfigFromDir(startDir string) (*Config, string, error) {
	dir := startDir
	for {
		configPath := filepath.Join(dir, FileName)
		if _, err := os.Stat(configPath); err == nil {
			config, err := LoadConfigFromPath(configPath)
			if err != nil {
				return nil, "", err
			}
			return config, dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			// Reached root directory
			break
		}
		dir = parent
	}

	return nil, "", fmt.Errorf("%w: no %s found in %s or any parent directory", ErrNotFound, FileName, startDir)
}
