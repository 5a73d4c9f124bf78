package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadDodge loads the game configuration.
// Search order: customPath -> ~/.dodge/configs/dodge.yaml -> ./configs/dodge.yaml -> embedded default.
// Files are layered over the defaults, so omitted keys keep their default values.
func LoadDodge(customPath string) (DodgeConfig, error) {
	// Try custom path first; errors here are reported, not skipped
	if customPath != "" {
		cfg, err := loadFile(customPath)
		if err != nil {
			return DefaultDodgeConfig(), err
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("dodge.yaml"); userCfgPath != "" {
		if cfg, err := loadFile(userCfgPath); err == nil {
			return cfg, nil
		}
	}

	// Try local configs directory
	if cfg, err := loadFile(filepath.Join("configs", "dodge.yaml")); err == nil {
		return cfg, nil
	}

	// Use embedded default YAML
	cfg, err := Parse(defaultDodgeYAML)
	if err != nil {
		return DefaultDodgeConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// Parse decodes YAML over the built-in defaults and validates the result.
func Parse(data []byte) (DodgeConfig, error) {
	cfg := DefaultDodgeConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: cannot parse yaml: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// loadFile reads and parses a single config file.
func loadFile(path string) (DodgeConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return DodgeConfig{}, fmt.Errorf("config: cannot read %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return cfg, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".dodge", "configs", filename)
}
