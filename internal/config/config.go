package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileName is the config file looked up in the working directory.
const FileName = ".ghannotate.yaml"

// Output formats.
const (
	FormatAuto     = "auto"
	FormatGHA      = "gha"
	FormatSARIF    = "sarif"
	FormatTerminal = "terminal"
)

// Defaults.
const (
	DefaultFormat = FormatAuto
	DefaultTheme  = "default"
)

// FileConfig is the on-disk configuration.
type FileConfig struct {
	Format      string `yaml:"format"`
	ShowBrowser bool   `yaml:"show_browser"`
	Root        string `yaml:"root"`
	Theme       string `yaml:"theme"`
	Debug       bool   `yaml:"debug"`
}

// LoadFile reads and decodes the config file at path.
func LoadFile(path string) (*FileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}
	var cfg FileConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return &cfg, nil
}

// FindFile returns the first config file that exists, searching dir and then
// the user config directory. Returns "" when there is none.
func FindFile(dir string) string {
	local := filepath.Join(dir, FileName)
	if fileExists(local) {
		return local
	}
	configHome, err := os.UserConfigDir()
	if err != nil || configHome == "" {
		return ""
	}
	user := filepath.Join(configHome, "ghannotate", FileName)
	if fileExists(user) {
		return user
	}
	return ""
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// loadOptional loads the explicit path when given, otherwise the discovered
// file, otherwise an empty config. A missing explicit path is an error.
func loadOptional(explicit, dir string) (*FileConfig, string, error) {
	path := explicit
	if path == "" {
		path = FindFile(dir)
		if path == "" {
			return &FileConfig{}, "", nil
		}
	}
	cfg, err := LoadFile(path)
	if err != nil {
		if explicit == "" && errors.Is(err, os.ErrNotExist) {
			return &FileConfig{}, "", nil
		}
		return nil, "", err
	}
	return cfg, path, nil
}
