// Package karma adapts Karma runner output for the annotation reporter: it
// rewrites served URLs in stack traces back to file paths and reads spec
// failure records.
package karma

import (
	"path"
	"regexp"
)

// servedURLRe matches a URL under Karma's /base/ or /absolute mounts, with an
// optional cache-busting query and up to two :line:col suffixes.
//
//	http://localhost:9876/base/test/foo.js?8a1c2f:11:15
//	/absolute/home/ci/src/util.js:3:7
var servedURLRe = regexp.MustCompile(`(?:https?://[^/\s]+)?/(base/|absolute)((?:[A-Za-z]:)?[^?\s:)]+)(?:\?\w*)?((?::\d+){0,2})`)

// PathFormatter rewrites served URLs into file-system paths.
type PathFormatter struct {
	// Root is prepended to paths served from /base/. Empty leaves them
	// relative to the Karma base path, which is usually the repository root.
	Root string
}

// Format returns raw with every served URL replaced by its file path. Text
// that contains no served URL is returned unchanged.
func (f PathFormatter) Format(raw string) string {
	return servedURLRe.ReplaceAllStringFunc(raw, func(match string) string {
		m := servedURLRe.FindStringSubmatch(match)
		mount, file, position := m[1], m[2], m[3]
		if mount == "base/" && f.Root != "" {
			file = path.Join(f.Root, file)
		}
		return file + position
	})
}
