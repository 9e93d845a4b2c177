package config

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// Config represents the curlparse configuration
type Config struct {
	Output      string `json:"output,omitempty"`      // console, json or yaml
	HistoryPath string `json:"historyPath,omitempty"` // sqlite history database location
	Strict      *bool  `json:"strict,omitempty"`
	Verbose     *bool  `json:"verbose,omitempty"`
	NoColor     *bool  `json:"noColor,omitempty"`
	Save        *bool  `json:"save,omitempty"` // record every parse into history
}

// boolPtr returns a pointer to a bool value
func boolPtr(b bool) *bool {
	return &b
}

// BoolPtr is exported version of boolPtr for external use
func BoolPtr(b bool) *bool {
	return &b
}

// getBool returns the value of a bool pointer, or the default if nil
func getBool(b *bool, defaultVal bool) bool {
	if b == nil {
		return defaultVal
	}
	return *b
}

// GetStrict returns the strict setting, defaulting to false
func (c *Config) GetStrict() bool {
	return getBool(c.Strict, false)
}

// GetVerbose returns the verbose setting, defaulting to false
func (c *Config) GetVerbose() bool {
	return getBool(c.Verbose, false)
}

// GetNoColor returns the no color setting, defaulting to false
func (c *Config) GetNoColor() bool {
	return getBool(c.NoColor, false)
}

// GetSave returns the save setting, defaulting to false
func (c *Config) GetSave() bool {
	return getBool(c.Save, false)
}

// ConfigFilenames contains the possible config file names
var ConfigFilenames = []string{
	".curlparse.config.json",
	"curlparse.config.json",
	".curlparserc",
	".curlparserc.json",
}

// LoadConfig loads configuration from the specified path or searches for config files
func LoadConfig(path string) (*Config, error) {
	if path != "" {
		return loadConfigFromFile(path)
	}

	// Search for config file in current directory
	return FindAndLoadConfig(".")
}

// FindAndLoadConfig searches for a config file in the given directory
func FindAndLoadConfig(dir string) (*Config, error) {
	for _, filename := range ConfigFilenames {
		configPath := filepath.Join(dir, filename)
		if _, err := os.Stat(configPath); err == nil {
			return loadConfigFromFile(configPath)
		}
	}

	// Return defaults if no config file found
	return DefaultConfig(), nil
}

// loadConfigFromFile loads configuration from a specific file
func loadConfigFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	config := DefaultConfig()
	if err := json.Unmarshal(data, config); err != nil {
		return nil, err
	}

	return config, nil
}

// Merge merges another config into this one, with other taking precedence
func (c *Config) Merge(other *Config) *Config {
	if other == nil {
		return c
	}

	result := *c // Copy

	if other.Output != "" {
		result.Output = other.Output
	}
	if other.HistoryPath != "" {
		result.HistoryPath = other.HistoryPath
	}

	// Boolean flags - only override if explicitly set in other config
	if other.Strict != nil {
		result.Strict = other.Strict
	}
	if other.Verbose != nil {
		result.Verbose = other.Verbose
	}
	if other.NoColor != nil {
		result.NoColor = other.NoColor
	}
	if other.Save != nil {
		result.Save = other.Save
	}

	return &result
}

// SaveConfig saves the configuration to a file
func (c *Config) SaveConfig(path string) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}
