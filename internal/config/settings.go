// internal/config/settings.go
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Settings holds runtime options read from an optional YAML file.
type Settings struct {
	WindowTitle string `yaml:"windowTitle"`
	AssetsDir   string `yaml:"assetsDir"`  // каталог с картинками
	Seed        int64  `yaml:"seed"`       // 0 — сид от текущего времени
	StorageApp  string `yaml:"storageApp"` // имя приложения для gdata; пусто — рекорд только в памяти
	PprofAddr   string `yaml:"pprofAddr"`  // пусто — pprof выключен
	Fullscreen  bool   `yaml:"fullscreen"`
}

// DefaultSettings returns the settings used when no file is given.
func DefaultSettings() *Settings {
	return &Settings{
		WindowTitle: "Space Shooter",
		AssetsDir:   "images",
		StorageApp:  "go_space_shooter",
	}
}

// LoadSettings reads the YAML file at path on top of the defaults.
// An empty path yields the defaults.
func LoadSettings(path string) (*Settings, error) {
	settings := DefaultSettings()
	if path == "" {
		return settings, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read settings file: %w", err)
	}
	if err := yaml.Unmarshal(data, settings); err != nil {
		return nil, fmt.Errorf("failed to parse settings YAML: %w", err)
	}
	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("invalid settings: %w", err)
	}
	return settings, nil
}

// Validate checks the fields that cannot be defaulted silently.
func (s *Settings) Validate() error {
	if s.WindowTitle == "" {
		return fmt.Errorf("windowTitle cannot be empty")
	}
	if s.AssetsDir == "" {
		return fmt.Errorf("assetsDir cannot be empty")
	}
	if s.Seed < 0 {
		return fmt.Errorf("seed must be >= 0, got %d", s.Seed)
	}
	return nil
}
