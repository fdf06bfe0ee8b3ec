package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
)

// ErrUnknownFormat is returned when the resolved output format is not recognized.
var ErrUnknownFormat = errors.New("unknown format")

// Source names recorded on ResolvedConfig.
const (
	SourceCLI     = "cli"
	SourceEnv     = "env"
	SourceFile    = "file"
	SourceDefault = "default"
)

// CLIFlags holds command-line values. The *Set fields record whether the user
// passed the flag, so a flag left at its zero value does not mask lower
// priority sources.
type CLIFlags struct {
	ConfigPath string
	Dir        string // where to look for FileName; "" means "."

	Format         string
	FormatSet      bool
	ShowBrowser    bool
	ShowBrowserSet bool
	Root           string
	RootSet        bool
	Theme          string
	ThemeSet       bool
	Debug          bool
	DebugSet       bool
}

// ResolvedConfig is the final configuration after applying priorities.
type ResolvedConfig struct {
	Format      string
	ShowBrowser bool
	Root        string
	Theme       string
	NoColor     bool
	Debug       bool

	// Resolution metadata, for --debug output.
	ConfigFile        string
	FormatSource      string
	ShowBrowserSource string
}

// Resolve merges flags, environment, config file and defaults.
func Resolve(flags CLIFlags) (*ResolvedConfig, error) {
	dir := flags.Dir
	if dir == "" {
		dir = "."
	}
	file, path, err := loadOptional(flags.ConfigPath, dir)
	if err != nil {
		return nil, err
	}

	resolved := &ResolvedConfig{
		Format:            DefaultFormat,
		Theme:             DefaultTheme,
		ConfigFile:        path,
		FormatSource:      SourceDefault,
		ShowBrowserSource: SourceDefault,
	}

	// File layer.
	if file.Format != "" {
		resolved.Format = file.Format
		resolved.FormatSource = SourceFile
	}
	if file.ShowBrowser {
		resolved.ShowBrowser = true
		resolved.ShowBrowserSource = SourceFile
	}
	if file.Root != "" {
		resolved.Root = file.Root
	}
	if file.Theme != "" {
		resolved.Theme = file.Theme
	}
	resolved.Debug = file.Debug

	// Environment layer.
	if v := os.Getenv("GHANNOTATE_FORMAT"); v != "" {
		resolved.Format = v
		resolved.FormatSource = SourceEnv
	}
	if b := getEnvBool("GHANNOTATE_SHOW_BROWSER"); b != nil {
		resolved.ShowBrowser = *b
		resolved.ShowBrowserSource = SourceEnv
	}
	if v := os.Getenv("GHANNOTATE_ROOT"); v != "" {
		resolved.Root = v
	}
	if v := os.Getenv("GHANNOTATE_THEME"); v != "" {
		resolved.Theme = v
	}
	if b := getEnvBool("GHANNOTATE_DEBUG"); b != nil {
		resolved.Debug = *b
	}
	resolved.NoColor = os.Getenv("NO_COLOR") != ""

	// CLI layer.
	if flags.FormatSet {
		resolved.Format = flags.Format
		resolved.FormatSource = SourceCLI
	}
	if flags.ShowBrowserSet {
		resolved.ShowBrowser = flags.ShowBrowser
		resolved.ShowBrowserSource = SourceCLI
	}
	if flags.RootSet {
		resolved.Root = flags.Root
	}
	if flags.ThemeSet {
		resolved.Theme = flags.Theme
	}
	if flags.DebugSet {
		resolved.Debug = flags.Debug
	}

	if resolved.NoColor {
		resolved.Theme = "mono"
	}

	if err := validate(resolved); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return resolved, nil
}

// getEnvBool reads a boolean from the first set key.
// Returns nil if none are set or the value does not parse.
func getEnvBool(keys ...string) *bool {
	for _, key := range keys {
		if val := os.Getenv(key); val != "" {
			if b, err := strconv.ParseBool(val); err == nil {
				return &b
			}
		}
	}
	return nil
}

func validate(cfg *ResolvedConfig) error {
	switch cfg.Format {
	case FormatAuto, FormatGHA, FormatSARIF, FormatTerminal:
	default:
		return fmt.Errorf("%w %q (expected auto, gha, sarif, terminal)", ErrUnknownFormat, cfg.Format)
	}
	switch cfg.Theme {
	case "default", "mono":
	default:
		return fmt.Errorf("unknown theme %q (expected default, mono)", cfg.Theme)
	}
	return nil
}
