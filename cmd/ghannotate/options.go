package main

import (
	"github.com/spf13/cobra"

	"github.com/dkoosis/ghannotate/internal/config"
	"github.com/dkoosis/ghannotate/internal/logging"
)

// options holds flag values shared by every command.
type options struct {
	configPath  string
	format      string
	showBrowser bool
	root        string
	theme       string
	debug       bool
}

func (o *options) register(cmd *cobra.Command) {
	f := cmd.PersistentFlags()
	f.StringVar(&o.configPath, "config", "", "Config file (default: ./"+config.FileName+")")
	f.StringVarP(&o.format, "format", "f", config.DefaultFormat, "Output format: auto, gha, sarif, terminal")
	f.BoolVar(&o.showBrowser, "show-browser", false, "Prefix each message with the browser name")
	f.StringVar(&o.root, "root", "", "Directory prepended to paths served from Karma's /base/")
	f.StringVar(&o.theme, "theme", config.DefaultTheme, "Terminal theme: default, mono")
	f.BoolVar(&o.debug, "debug", false, "Write debug logs to stderr")
}

// resolve merges the flags with environment and config file, and starts
// debug logging when enabled.
func (a *app) resolve(cmd *cobra.Command) (*config.ResolvedConfig, error) {
	changed := cmd.Flags().Changed
	cfg, err := config.Resolve(config.CLIFlags{
		ConfigPath:     a.opts.configPath,
		Format:         a.opts.format,
		FormatSet:      changed("format"),
		ShowBrowser:    a.opts.showBrowser,
		ShowBrowserSet: changed("show-browser"),
		Root:           a.opts.root,
		RootSet:        changed("root"),
		Theme:          a.opts.theme,
		ThemeSet:       changed("theme"),
		Debug:          a.opts.debug,
		DebugSet:       changed("debug"),
	})
	if err != nil {
		return nil, err
	}

	logging.Init(a.stderr, cfg.Debug)
	logging.Debug("config resolved",
		"file", cfg.ConfigFile,
		"format", cfg.Format, "formatSource", cfg.FormatSource,
		"showBrowser", cfg.ShowBrowser, "showBrowserSource", cfg.ShowBrowserSource,
		"root", cfg.Root)
	return cfg, nil
}
