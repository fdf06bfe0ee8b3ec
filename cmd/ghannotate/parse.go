package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/dkoosis/ghannotate/internal/logging"
	"github.com/dkoosis/ghannotate/pkg/karma"
	"github.com/dkoosis/ghannotate/pkg/stacktrace"
)

func (a *app) newParseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "parse [file]",
		Short: "Parse one formatted error and print its message and location as JSON",
		Args:  cobra.MaximumNArgs(1),
		RunE:  a.runParse,
	}
}

func (a *app) runParse(cmd *cobra.Command, args []string) error {
	cfg, err := a.resolve(cmd)
	if err != nil {
		return err
	}

	in, closeIn, err := a.openInput(args)
	if err != nil {
		return err
	}
	defer closeIn()

	data, err := io.ReadAll(in)
	if err != nil {
		return fmt.Errorf("reading input: %w", err)
	}

	parsed := stacktrace.Parse(karma.PathFormatter{Root: cfg.Root}.Format(string(data)))
	logging.Debug("parsed error", "located", parsed.HasLocation())

	enc := json.NewEncoder(a.stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(parsed); err != nil {
		return fmt.Errorf("writing result: %w", err)
	}
	return nil
}
