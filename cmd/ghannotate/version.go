package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dkoosis/ghannotate/internal/version"
)

func (a *app) newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(a.stdout, version.String())
		},
	}
}
