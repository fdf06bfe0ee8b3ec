// Package config resolves ghannotate settings from flags, environment and a
// YAML file.
//
// # Configuration Precedence
//
// Values are resolved in the following order (highest to lowest priority):
//
//  1. CLI flags (--format, --show-browser, --root, --theme, --debug)
//  2. Environment variables (GHANNOTATE_FORMAT, GHANNOTATE_SHOW_BROWSER,
//     GHANNOTATE_ROOT, GHANNOTATE_THEME, GHANNOTATE_DEBUG, NO_COLOR)
//  3. YAML config file (--config, else .ghannotate.yaml in the working
//     directory, else <user config dir>/ghannotate/.ghannotate.yaml)
//  4. Hardcoded defaults
//
// # File Format
//
//	format: gha          # auto, gha, sarif, terminal
//	show_browser: true
//	root: web/app        # prefix for paths served from Karma's /base/
//	theme: mono          # default, mono
//	debug: false
//
// NO_COLOR follows https://no-color.org: any non-empty value disables color.
package config
