package config

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
)

// SupportedFormats lists the config file formats we support
var SupportedFormats = []string{"yaml", "toml", "json"}

// GenerateConfig writes the default configuration into dir.
func GenerateConfig(dir, format string) (string, error) {
	if !slices.Contains(SupportedFormats, format) {
		return "", fmt.Errorf("unsupported format %q, supported: %v", format, SupportedFormats)
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create config directory: %w", err)
	}

	configPath := filepath.Join(dir, fmt.Sprintf("config.%s", format))

	if _, err := os.Stat(configPath); err == nil {
		return configPath, fmt.Errorf("config file already exists: %s", configPath)
	}

	v := NewViperFromConfig(DefaultConfig())
	v.SetConfigType(format)

	if err := v.WriteConfigAs(configPath); err != nil {
		return "", fmt.Errorf("failed to write config file: %w", err)
	}

	return configPath, nil
}

// GenerateConfigIfNotExists creates a default config file in dir if none exists.
// Returns the path to the config file (existing or newly created) and whether it was created
func GenerateConfigIfNotExists(dir, format string) (string, bool, error) {
	for _, ext := range SupportedFormats {
		path := filepath.Join(dir, fmt.Sprintf("config.%s", ext))
		if _, err := os.Stat(path); err == nil {
			return path, false, nil
		}
	}

	path, err := GenerateConfig(dir, format)
	if err != nil {
		return "", false, err
	}

	return path, true, nil
}
