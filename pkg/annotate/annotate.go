// Package annotate reports spec failures as GitHub Actions workflow commands.
//
// Each failed expectation becomes one line of the form
//
//	::error file=test/foo.js,line=11,col=15::Foo can Bar FAILED: Error: Expected 0 to be 1.
//
// which the Actions runner renders as an inline error marker on the file.
package annotate

import (
	"fmt"
	"os"
	"strings"

	"github.com/dkoosis/ghannotate/pkg/stacktrace"
)

// Browser identifies the browser a spec ran in.
type Browser struct {
	Name string `json:"name"`
}

// Result is a failed spec as delivered by the host test framework.
// Log holds one formatted error per failed expectation.
type Result struct {
	FullName string   `json:"fullName"`
	Log      []string `json:"log"`
}

// FormatFunc turns a raw log entry into a formatted error, resolving served
// URLs into file-system paths.
type FormatFunc func(raw string) string

// Config controls reporter output. It is read once by New.
type Config struct {
	// Output receives each finished annotation line. Defaults to stdout.
	Output func(text string)
	// ShowBrowser prefixes the message with the browser name.
	ShowBrowser bool
}

// Base is the shared reporter behavior supplied by the host framework.
// Reporter embeds it, so the lifecycle hooks below are inherited unchanged.
type Base interface {
	OnRunStart()
	OnBrowserStart(browser Browser)
	OnBrowserComplete(browser Browser)
	OnRunComplete()
}

// NopBase is a Base whose hooks do nothing.
type NopBase struct{}

func (NopBase) OnRunStart()               {}
func (NopBase) OnBrowserStart(Browser)    {}
func (NopBase) OnBrowserComplete(Browser) {}
func (NopBase) OnRunComplete()            {}

// Reporter emits one annotation per failed expectation.
type Reporter struct {
	Base

	format      FormatFunc
	output      func(string)
	showBrowser bool
}

// New composes a Reporter from the host's base behavior, its error formatter
// and the reporter configuration. Nil collaborators fall back to NopBase, the
// identity formatter and stdout respectively.
func New(base Base, format FormatFunc, cfg Config) *Reporter {
	if base == nil {
		base = NopBase{}
	}
	if format == nil {
		format = func(raw string) string { return raw }
	}
	output := cfg.Output
	if output == nil {
		output = writeStdout
	}
	return &Reporter{
		Base:        base,
		format:      format,
		output:      output,
		showBrowser: cfg.ShowBrowser,
	}
}

func writeStdout(text string) {
	fmt.Fprintln(os.Stdout, text)
}

// SpecFailure emits one annotation per entry in result.Log, in order.
func (r *Reporter) SpecFailure(browser Browser, result Result) {
	for _, entry := range result.Log {
		parsed := stacktrace.Parse(r.format(entry))
		r.output(FormatAnnotation(parsed, browser.Name, result.FullName, r.showBrowser))
	}
}

// FormatAnnotation builds the workflow command for a single parsed error.
// The file clause is omitted entirely when no location was recovered.
func FormatAnnotation(parsed stacktrace.ParsedError, browserName, fullName string, showBrowser bool) string {
	var sb strings.Builder
	sb.WriteString("::error")
	if loc := parsed.Location; loc != nil {
		fmt.Fprintf(&sb, " file=%s,line=%s,col=%s", loc.File, loc.Line, loc.Column)
	}
	sb.WriteString("::")
	if showBrowser {
		sb.WriteString(browserName)
		sb.WriteString(" ")
	}
	sb.WriteString(fullName)
	sb.WriteString(" FAILED: ")
	sb.WriteString(parsed.Message)
	return sb.String()
}
