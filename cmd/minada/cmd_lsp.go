package main

import (
	"github.com/dhamidi/minada/workspace"
	"github.com/spf13/cobra"
)

func newLSPCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "lsp",
		Short: "Start the Language Server Protocol server",
		RunE: func(cmd *cobra.Command, args []string) error {
			server := workspace.NewLSPServer(version, a.cfg.Check.Extensions)
			return server.RunStdio()
		},
	}
}
