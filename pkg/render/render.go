// Package render formats parsed spec failures for people reading a terminal.
package render

import (
	"github.com/dkoosis/ghannotate/pkg/annotate"
	"github.com/dkoosis/ghannotate/pkg/stacktrace"
)

// Failure is one failed expectation ready for display.
type Failure struct {
	Browser  annotate.Browser
	FullName string
	Parsed   stacktrace.ParsedError
}

// Renderer converts failures to formatted output.
type Renderer interface {
	Render(failures []Failure) string
}
