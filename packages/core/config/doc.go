// Package config handles configuration loading and management for curlparse.
//
// It provides functionality for:
//   - Loading configuration from .curlparse.config.json and related files
//   - Default configuration values
//   - Merging file configuration with command-line overrides
package config
