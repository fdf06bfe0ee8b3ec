// ghannotate turns failed spec results into GitHub Actions error annotations.
//
// Usage:
//
//	karma start --reporters ndjson | ghannotate
//	ghannotate report results.ndjson --show-browser
//	ghannotate report results.ndjson --format sarif > failures.sarif
//	ghannotate parse < error.txt
//
// Input is NDJSON, one spec result per line:
//
//	{"browser":{"name":"Chrome (Linux)"},"fullName":"Foo can Bar","log":["Error: ...\n    at Bar (http://localhost:9876/base/test/foo.js:11:15)"]}
//
// Output formats:
//
//	gha         ::error workflow commands (default in GitHub Actions or when piped)
//	sarif       SARIF 2.1.0 document
//	terminal    styled text (default on a TTY)
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

// Exit codes.
const (
	exitOK       = 0
	exitFailures = 1
	exitUsage    = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// app carries the process streams and the exit code chosen by a command.
type app struct {
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
	code   int
	opts   options
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	a := &app{stdin: stdin, stdout: stdout, stderr: stderr}
	root := a.newRootCmd()
	if args == nil {
		// cobra falls back to os.Args when given nil.
		args = []string{}
	}
	root.SetArgs(args)
	root.SetIn(stdin)
	root.SetOut(stdout)
	root.SetErr(stderr)

	if err := root.Execute(); err != nil {
		fmt.Fprintf(stderr, "ghannotate: %v\n", err)
		return exitUsage
	}
	return a.code
}

func (a *app) newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "ghannotate [file]",
		Short: "Turn failed spec results into GitHub Actions annotations",
		Long: `ghannotate reads spec results as NDJSON and reports every failed
expectation as a GitHub Actions ::error workflow command, pointing at the
file, line and column of the first application frame in its stack trace.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          a.runReport,
	}
	a.opts.register(root)

	root.AddCommand(a.newReportCmd())
	root.AddCommand(a.newParseCmd())
	root.AddCommand(a.newVersionCmd())
	return root
}

// openInput returns the named file, or stdin when no file is given or the
// name is "-". The caller must call the returned close func.
func (a *app) openInput(args []string) (io.Reader, func(), error) {
	if len(args) == 0 || args[0] == "-" {
		return a.stdin, func() {}, nil
	}
	f, err := os.Open(args[0])
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil, fmt.Errorf("input file %s does not exist", args[0])
		}
		return nil, nil, fmt.Errorf("opening input: %w", err)
	}
	return f, func() { _ = f.Close() }, nil
}
