package config

import (
	"os"
	"path/filepath"
)

// DefaultConfig returns a configuration with default values
func DefaultConfig() *Config {
	return &Config{
		Output:      "console",
		HistoryPath: "",
		Strict:      boolPtr(false),
		Verbose:     boolPtr(false),
		NoColor:     boolPtr(false),
		Save:        boolPtr(false),
	}
}

// IsDefault returns true if the config matches defaults
func (c *Config) IsDefault() bool {
	defaults := DefaultConfig()
	return c.Output == defaults.Output &&
		c.HistoryPath == defaults.HistoryPath &&
		c.GetStrict() == defaults.GetStrict() &&
		c.GetVerbose() == defaults.GetVerbose() &&
		c.GetNoColor() == defaults.GetNoColor() &&
		c.GetSave() == defaults.GetSave()
}

// DefaultHistoryPath returns the history database location used when the
// config does not name one: ~/.curlparse/history.db, falling back to the
// working directory when the home directory cannot be determined.
func DefaultHistoryPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "history.db"
	}
	return filepath.Join(home, ".curlparse", "history.db")
}

// ResolveHistoryPath returns the configured history path or the default
func (c *Config) ResolveHistoryPath() string {
	if c.HistoryPath != "" {
		return c.HistoryPath
	}
	return DefaultHistoryPath()
}
