package main

import (
	"fmt"
	"io"
	"reflect"

	"github.com/dhamidi/minada/ada/grammar"
	"github.com/spf13/cobra"
)

func newGrammarCmd(a *app) *cobra.Command {
	var startProduction string
	var printSource bool

	cmd := &cobra.Command{
		Use:   "grammar",
		Short: "Print and verify the language grammar",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if printSource {
				out.Write(grammar.Source)
				fmt.Fprintln(out)
			}

			g, err := grammar.Verify(startProduction)
			if err != nil {
				printErrors(cmd.ErrOrStderr(), err)
				return errReported
			}

			fmt.Fprintf(out, "grammar ok: %d nonterminals, %d terminals, start %s\n",
				len(grammar.Nonterminals(g)), len(grammar.Terminals(g)), startProduction)
			return nil
		},
	}

	cmd.Flags().StringVar(&startProduction, "start", grammar.Start, "start production for verification")
	cmd.Flags().BoolVarP(&printSource, "print", "p", false, "print the EBNF source")

	return cmd
}

// printErrors prints each error of an error list on its own line.
func printErrors(w io.Writer, err error) {
	v := reflect.ValueOf(err)
	if v.Kind() == reflect.Slice {
		for i := 0; i < v.Len(); i++ {
			fmt.Fprintln(w, v.Index(i).Interface())
		}
	} else {
		fmt.Fprintln(w, err)
	}
}
