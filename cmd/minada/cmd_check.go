package main

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/dhamidi/minada/format"
	"github.com/dhamidi/minada/workspace"
	"github.com/spf13/cobra"
)

func newCheckCmd(a *app) *cobra.Command {
	var watch bool

	cmd := &cobra.Command{
		Use:   "check <path>...",
		Short: "Check source files and directories for syntax errors",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if watch {
				if len(args) != 1 {
					return fmt.Errorf("--watch takes exactly one directory")
				}
				return runWatch(a, cmd.OutOrStdout(), args[0])
			}
			return runCheck(a, cmd.OutOrStdout(), args)
		},
	}

	cmd.Flags().BoolVarP(&watch, "watch", "w", false, "keep running and recheck files when they change")

	return cmd
}

func runCheck(a *app, out io.Writer, paths []string) error {
	var files []*workspace.FileInfo

	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			return fmt.Errorf("stat %s: %w", path, err)
		}

		if info.IsDir() {
			ws := workspace.New(path, a.cfg.Check.Extensions)
			if err := ws.ScanAll(); err != nil {
				return fmt.Errorf("walk %s: %w", path, err)
			}
			files = append(files, ws.Files()...)
			continue
		}

		ws := workspace.New(filepath.Dir(path), a.cfg.Check.Extensions)
		if err := ws.ScanFile(path); err != nil {
			return fmt.Errorf("read file: %w", err)
		}
		files = append(files, ws.GetFile(path))
	}

	printer := format.NewDiagnosticPrinter(out, a.cfg.Output.Color && isTerminal(out))
	failed := 0
	for _, f := range files {
		printResult(out, printer, f)
		if !f.OK() {
			failed++
		}
	}

	fmt.Fprintf(out, "\n=== CHECK COMPLETE ===\n")
	fmt.Fprintf(out, "Files checked: %d\n", len(files))
	fmt.Fprintf(out, "Errors: %d\n", failed)

	if failed > 0 {
		return errReported
	}
	return nil
}

func printResult(out io.Writer, printer *format.DiagnosticPrinter, f *workspace.FileInfo) {
	if f.OK() {
		fmt.Fprintf(out, "[OK] %s\n", f.Path)
		return
	}
	fmt.Fprintf(out, "[ERROR] ")
	printer.Print(f.Path, f.Err)
}

func runWatch(a *app, out io.Writer, dir string) error {
	info, err := os.Stat(dir)
	if err != nil {
		return fmt.Errorf("stat %s: %w", dir, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%s is not a directory", dir)
	}

	ws := workspace.New(dir, a.cfg.Check.Extensions)
	printer := format.NewDiagnosticPrinter(out, a.cfg.Output.Color && isTerminal(out))

	watcher := workspace.NewFileWatcher(ws, a.cfg.Check.PollInterval.Duration)
	watcher.OnChange = func(f *workspace.FileInfo) {
		printResult(out, printer, f)
	}
	watcher.OnRemove = func(path string) {
		fmt.Fprintf(out, "[REMOVED] %s\n", path)
	}

	log.Infof("watching %s every %s", dir, a.cfg.Check.PollInterval.Duration)
	watcher.Start()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	<-sig

	watcher.Stop()
	return nil
}
