package main

import (
	"fmt"
	"io"

	"github.com/dhamidi/minada/ada/parser"
	"github.com/spf13/cobra"
)

func newScanCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scan <file>",
		Short: "Print the tokens of a source file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := readSource(args[0])
			if err != nil {
				return err
			}
			return printTokens(cmd.OutOrStdout(), parser.Tokenize(data, args[0]))
		},
	}

	return cmd
}

func printTokens(w io.Writer, tokens []parser.Token) error {
	for _, tok := range tokens {
		if _, err := fmt.Fprintf(w, "%d:%d\t%s\t%q\n", tok.Line, tok.Column, tok.Kind, tok.Text); err != nil {
			return err
		}
	}
	return nil
}
