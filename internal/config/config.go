package config

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// Config holds the application configuration
type Config struct {
	// Theme settings
	Theme Theme `json:"theme"`
}

// Theme defines color settings for the banner and prompt
type Theme struct {
	Greeting    string `json:"greeting"`
	Label       string `json:"label"`
	Accent      string `json:"accent"`
	Placeholder string `json:"placeholder"`
	Border      string `json:"border"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() Config {
	return Config{
		Theme: Theme{
			Greeting:    "#fafafa",
			Label:       "#40c040",
			Accent:      "#ffaf00",
			Placeholder: "#888888",
			Border:      "#404040",
		},
	}
}

// Load loads configuration from standard paths
func Load() (Config, error) {
	cfg := DefaultConfig()

	// Try paths in order
	paths := []string{
		".greet.json",
		"greet.json",
	}

	// Add home config path
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", "greet", "greet.json"))
	}

	for _, path := range paths {
		if data, err := os.ReadFile(path); err == nil {
			if err := json.Unmarshal(data, &cfg); err != nil {
				return cfg, err
			}
			return cfg, nil
		}
	}

	return cfg, nil
}

// Save saves configuration to the given path
func Save(cfg Config, path string) error {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
