// Package core provides the application glue around a world: configuration,
// frame timing, and the ebiten game loop.
package core

import (
	"encoding/json"
	"fmt"
	"os"
)

// Config holds the application settings. Zero-config callers should start
// from DefaultConfig.
type Config struct {
	WindowTitle  string `json:"window_title"`
	WindowWidth  int    `json:"window_width"`
	WindowHeight int    `json:"window_height"`
	Fullscreen   bool   `json:"fullscreen"`

	VSync     bool `json:"vsync"`
	TargetFPS int  `json:"target_fps"`

	DebugMode   bool `json:"debug_mode"`
	EscapeQuits bool `json:"escape_quits"`
}

// DefaultConfig returns the built-in settings.
func DefaultConfig() *Config {
	return &Config{
		WindowTitle:  "Aftermath",
		WindowWidth:  1280,
		WindowHeight: 720,
		VSync:        true,
		TargetFPS:    60,
		EscapeQuits:  true,
	}
}

// LoadConfig reads settings from a JSON file, overlaying them on the
// defaults. A missing file is not an error: the defaults are returned.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Save writes the settings to a JSON file.
func (c *Config) Save(path string) error {
	data, err := json.MarshalIndent(c, "", "    ")
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
