package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/dkoosis/ghannotate/internal/config"
	"github.com/dkoosis/ghannotate/internal/logging"
	"github.com/dkoosis/ghannotate/internal/version"
	"github.com/dkoosis/ghannotate/pkg/annotate"
	"github.com/dkoosis/ghannotate/pkg/karma"
	"github.com/dkoosis/ghannotate/pkg/render"
	"github.com/dkoosis/ghannotate/pkg/sarif"
	"github.com/dkoosis/ghannotate/pkg/stacktrace"
)

func (a *app) newReportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "report [file]",
		Short: "Report failed specs from NDJSON results (default command)",
		Args:  cobra.MaximumNArgs(1),
		RunE:  a.runReport,
	}
}

// sink receives lifecycle hooks and failed specs, and writes whatever it
// buffered when the run ends.
type sink interface {
	annotate.Base
	SpecFailure(browser annotate.Browser, result annotate.Result)
	Finish() error
}

// ghaSink streams workflow commands as failures arrive.
type ghaSink struct {
	*annotate.Reporter
}

func (ghaSink) Finish() error { return nil }

// collectSink parses failures up front and renders them all at the end.
type collectSink struct {
	annotate.Base

	format   annotate.FormatFunc
	failures []render.Failure
	write    func([]render.Failure) error
}

func (c *collectSink) SpecFailure(browser annotate.Browser, result annotate.Result) {
	for _, entry := range result.Log {
		c.failures = append(c.failures, render.Failure{
			Browser:  browser,
			FullName: result.FullName,
			Parsed:   stacktrace.Parse(c.format(entry)),
		})
	}
}

func (c *collectSink) Finish() error {
	return c.write(c.failures)
}

func (a *app) runReport(cmd *cobra.Command, args []string) error {
	cfg, err := a.resolve(cmd)
	if err != nil {
		return err
	}

	in, closeIn, err := a.openInput(args)
	if err != nil {
		return err
	}
	defer closeIn()

	out := a.newSink(cfg, &hostBase{})
	browsers := newBrowserTracker(out)

	out.OnRunStart()
	failed := 0
	malformed, err := karma.ReadRecords(in, func(rec karma.Record) {
		browsers.observe(rec.Browser)
		if !rec.Failed() {
			return
		}
		failed++
		logging.Debug("spec failed", "fullName", rec.FullName, "browser", rec.Browser.Name, "entries", len(rec.Log))
		out.SpecFailure(rec.Browser, rec.Result())
	})
	if err != nil {
		return fmt.Errorf("reading results: %w", err)
	}
	browsers.complete()

	if malformed > 0 {
		fmt.Fprintf(a.stderr, "ghannotate: warning: %d malformed line(s) skipped\n", malformed)
	}
	if err := out.Finish(); err != nil {
		return err
	}

	if failed > 0 {
		a.code = exitFailures
	}
	return nil
}

func (a *app) newSink(cfg *config.ResolvedConfig, host *hostBase) sink {
	format := karma.PathFormatter{Root: cfg.Root}.Format

	switch resolveFormat(cfg.Format, isTTYWriter(a.stdout)) {
	case config.FormatSARIF:
		return &collectSink{Base: host, format: format, write: func(failures []render.Failure) error {
			b := sarif.NewBuilder("ghannotate", version.Version)
			for _, f := range failures {
				b.AddFailure(f.FullName, f.Parsed)
			}
			if _, err := b.WriteTo(a.stdout); err != nil {
				return fmt.Errorf("writing sarif: %w", err)
			}
			return nil
		}}
	case config.FormatTerminal:
		theme := render.ThemeByName(cfg.Theme)
		width := termWidth(a.stdout)
		return &collectSink{Base: host, format: format, write: func(failures []render.Failure) error {
			r := render.NewTerminal(theme, width, cfg.ShowBrowser)
			_, err := io.WriteString(a.stdout, r.Render(failures))
			return err
		}}
	default:
		return ghaSink{annotate.New(host, format, annotate.Config{
			Output:      func(text string) { fmt.Fprintln(a.stdout, text) },
			ShowBrowser: cfg.ShowBrowser,
		})}
	}
}

// resolveFormat picks a concrete format for "auto": workflow commands inside
// GitHub Actions or when piped, styled text on a terminal.
func resolveFormat(format string, tty bool) string {
	if format != config.FormatAuto {
		return format
	}
	if os.Getenv("GITHUB_ACTIONS") == "true" {
		return config.FormatGHA
	}
	if tty {
		return config.FormatTerminal
	}
	return config.FormatGHA
}

// isTTYWriter reports whether w is a terminal.
func isTTYWriter(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// termWidth returns the terminal width for w, defaulting to 80.
func termWidth(w io.Writer) int {
	if f, ok := w.(*os.File); ok {
		if tw, _, err := term.GetSize(int(f.Fd())); err == nil && tw > 0 {
			return tw
		}
	}
	return 80
}
