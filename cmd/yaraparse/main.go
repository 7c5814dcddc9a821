// Package main provides the CLI entry point for yaraparse.
//
// Usage:
//
//	yaraparse rule.yar
//	yaraparse --json rule.yar
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/yara-x/goyaracst/syntax"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		jsonOut   bool
		quiet     bool
		maxErrors int
	)

	cmd := &cobra.Command{
		Use:           "yaraparse <file>",
		Short:         "Parse a YARA rule file and print its concrete syntax tree",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runParse(cmd, args[0], jsonOut, quiet, maxErrors)
		},
	}

	cmd.Flags().BoolVar(&jsonOut, "json", false, "emit diagnostics as JSON instead of text")
	cmd.Flags().BoolVar(&quiet, "quiet", false, "suppress the tree dump, print only diagnostics")
	cmd.Flags().IntVar(&maxErrors, "max-errors", 0, "stop reporting after N diagnostics (0 = unlimited)")

	return cmd
}

// runParse reads path, runs the full lex/parse/sink pipeline, and prints the
// tree (unless quiet) followed by the diagnostic list. Per spec.md's CLI
// note, diagnostics are reported, never fatal: the only non-zero exits here
// are for I/O failure or a missing argument (the latter already enforced by
// cobra.ExactArgs).
func runParse(cmd *cobra.Command, path string, jsonOut, quiet bool, maxErrors int) error {
	src, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("cannot read %s: %w", path, err)
	}

	parse := syntax.ParseSourceText(string(src))

	out := cmd.OutOrStdout()
	if !quiet {
		fmt.Fprint(out, parse.DebugDump())
	}

	errs := parse.Errors()
	if maxErrors > 0 && len(errs) > maxErrors {
		errs = errs[:maxErrors]
	}

	if jsonOut {
		return printDiagnosticsJSON(out, path, string(src), errs)
	}
	printDiagnosticsText(out, path, string(src), errs)
	return nil
}
