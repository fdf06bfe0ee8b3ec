// Package version holds build metadata for the ghannotate binary.
package version

import "fmt"

// These variables are populated by the Go linker (LDFLAGS) at build time.
var (
	Version    = "dev"
	CommitHash = "unknown"
	BuildDate  = "unknown"
)

// String returns the one-line version banner.
func String() string {
	return fmt.Sprintf("ghannotate %s (commit %s, built %s)", Version, CommitHash, BuildDate)
}
