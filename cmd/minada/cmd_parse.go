package main

import (
	"fmt"
	"io"
	"os"

	"github.com/dhamidi/minada/ada/parser"
	"github.com/dhamidi/minada/config"
	"github.com/dhamidi/minada/format"
	"github.com/spf13/cobra"
)

func newParseCmd(a *app) *cobra.Command {
	var outputFormat string
	var entry string

	cmd := &cobra.Command{
		Use:   "parse <file>",
		Short: "Parse a source file and print the derivation trace",
		Long: "Parse a source file and print the derivation trace.\n" +
			"Use - as the file name to read from standard input.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if outputFormat == "" {
				outputFormat = a.cfg.Parse.Format
			}
			if entry == "" {
				entry = a.cfg.Parse.Entry
			}
			if !config.ValidFormat(outputFormat) {
				return fmt.Errorf("unknown format: %s", outputFormat)
			}

			filename := args[0]
			data, err := readSource(filename)
			if err != nil {
				return err
			}

			return runParse(a, cmd.OutOrStdout(), cmd.ErrOrStderr(), filename, data, entry, outputFormat)
		},
	}

	cmd.Flags().StringVarP(&outputFormat, "format", "f", "", "output format (text, json, tree, none)")
	cmd.Flags().StringVarP(&entry, "entry", "e", "", "production to start from")

	return cmd
}

func readSource(filename string) ([]byte, error) {
	if filename == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		return data, nil
	}
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}
	return data, nil
}

func runParse(a *app, stdout, stderr io.Writer, filename string, data []byte, entry, outputFormat string) error {
	var tracer parser.Tracer
	var tree *format.TreeBuilder
	var writeErr func() error

	switch outputFormat {
	case "text":
		t := format.NewTextTracer(stdout)
		tracer, writeErr = t, func() error { return t.Err }
	case "json":
		t := format.NewJSONLinesTracer(stdout)
		tracer, writeErr = t, func() error { return t.Err }
	case "tree":
		tree = format.NewTreeBuilder()
		tracer = tree
	default:
		tracer = parser.NopTracer
	}
	if a.verbosity >= 2 {
		tracer = format.Tee(tracer, format.NewLogTracer(log))
	}

	p := parser.New(parser.NewLexer(data, filename), parser.WithFile(filename), parser.WithTracer(tracer))
	err := p.Parse(entry)

	if writeErr != nil {
		if werr := writeErr(); werr != nil {
			return fmt.Errorf("write trace: %w", werr)
		}
	}

	if err != nil {
		if _, ok := parser.AsDiagnostic(err); !ok {
			return err
		}
		format.NewDiagnosticPrinter(stderr, a.cfg.Output.Color && isTerminal(stderr)).Print(filename, err)
		return errReported
	}

	if tree != nil {
		if err := format.NewTreeJSONEncoder(stdout).Encode(tree.Root()); err != nil {
			return fmt.Errorf("encode tree: %w", err)
		}
		fmt.Fprintln(stdout)
	}
	log.Infof("%s: ok", filename)
	return nil
}
