// Package stacktrace extracts a failure message and its source location from
// a formatted JavaScript error.
//
// Two frame shapes are recognized:
//
//	    at Bar (test/foo.js:11:15)
//	    at Bar (test/foo.js:11:15 <- test/foo.js:867:5309)
//
// The second is produced by source-mapped builds; the left-hand location is the
// pre-build source position and is the one reported.
package stacktrace

import (
	"regexp"
	"strings"
)

// frameRe matches the first "at <context> (<file>:<line>:<col>" frame that is
// closed by ")" or continued by a " <-" source-map arrow.
var frameRe = regexp.MustCompile(`(?m)^\s*at .*? \(([^:]+):(\d+):(\d+)(\)| <-)`)

// Location is a file position taken verbatim from a stack frame.
// Line and Column are kept as the digits that appeared in the trace.
type Location struct {
	File   string `json:"file"`
	Line   string `json:"line"`
	Column string `json:"column"`
}

// String returns the location as file:line:col.
func (l Location) String() string {
	return l.File + ":" + l.Line + ":" + l.Column
}

// ParsedError is the result of parsing a formatted error.
type ParsedError struct {
	Message  string    `json:"message"`
	Location *Location `json:"location,omitempty"` // nil when no frame matched
}

// HasLocation reports whether a frame location was recovered.
func (e ParsedError) HasLocation() bool {
	return e.Location != nil
}

// Parse splits a formatted error into its message (the first line) and the
// location of the first matching stack frame. Parse never fails: input without
// a usable frame yields a message-only result.
func Parse(formatted string) ParsedError {
	message, _, _ := strings.Cut(formatted, "\n")
	parsed := ParsedError{Message: strings.TrimSuffix(message, "\r")}

	if m := frameRe.FindStringSubmatch(formatted); m != nil {
		parsed.Location = &Location{File: m[1], Line: m[2], Column: m[3]}
	}
	return parsed
}
