package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadRush loads the Target Rush configuration.
// Search order: customPath -> ~/.clickrush/configs/rush.yaml ->
// ./configs/rush.yaml -> embedded default. The result is normalized so the
// engine never sees inconsistent values.
func LoadRush(customPath string) (RushConfig, error) {
	var cfg RushConfig

	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		cfg.Normalize()
		return cfg, nil
	}

	if userCfgPath := userConfigPath("rush.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				cfg.Normalize()
				return cfg, nil
			}
		}
	}

	if data, err := os.ReadFile("configs/rush.yaml"); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			cfg.Normalize()
			return cfg, nil
		}
	}

	if err := yaml.Unmarshal(defaultRushYAML, &cfg); err != nil {
		cfg = DefaultRushConfig()
	}
	cfg.Normalize()
	return cfg, nil
}

// userConfigPath returns the path to a user config file, or empty when the
// home directory is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".clickrush", "configs", filename)
}
