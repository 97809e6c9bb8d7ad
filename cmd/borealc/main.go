/*
Borealc checks a Boreal source file for lexical, syntax, and semantic errors.

It reads the named source file, runs it through the full analysis pipeline,
and prints every diagnostic produced, in source order, grouped by the stage
that raised it. It exits nonzero if any stage reported an error.

Usage:

	borealc [flags] FILE

The flags are:

	-v, --version
		Give the current version of Borealc and then exit.

	-c, --config FILE
		Load identifier/literal length limits and reserved words from the
		given TOML file instead of the built-in defaults.

	-w, --warnings
		Also print semantic warnings, not just errors.
*/
package main

import (
	"fmt"
	"os"

	"github.com/spf13/pflag"

	"github.com/oxixes/boreal-lang-ext"
	"github.com/oxixes/boreal-lang-ext/internal/config"
	"github.com/oxixes/boreal-lang-ext/internal/diag"
	"github.com/oxixes/boreal-lang-ext/internal/version"
)

const (
	// ExitSuccess indicates the source had no diagnostics at error severity.
	ExitSuccess = iota

	// ExitAnalysisError indicates the source produced one or more error
	// diagnostics.
	ExitAnalysisError

	// ExitInitError indicates a problem reading the source file or loading a
	// configuration file, before analysis could even begin.
	ExitInitError
)

var (
	returnCode  = ExitSuccess
	flagVersion = pflag.BoolP("version", "v", false, "Gives the version info")
	configFile  = pflag.StringP("config", "c", "", "Load limits and reserved words from the given TOML file")
	showWarns   = pflag.BoolP("warnings", "w", false, "Also print semantic warnings")
)

func main() {
	defer func() {
		if panicErr := recover(); panicErr != nil {
			panic(fmt.Sprintf("unrecoverable panic occurred: %v", panicErr))
		} else {
			os.Exit(returnCode)
		}
	}()

	pflag.Parse()

	if *flagVersion {
		fmt.Printf("%s\n", version.Current)
		return
	}

	if pflag.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "ERROR: no source file given")
		returnCode = ExitInitError
		return
	}
	path := pflag.Arg(0)

	cfg := config.Default()
	if *configFile != "" {
		loaded, err := config.Load(*configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "ERROR: %s\n", err.Error())
			returnCode = ExitInitError
			return
		}
		cfg = loaded
	}

	src, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %s\n", err.Error())
		returnCode = ExitInitError
		return
	}

	result := boreal.AnalyzeWithConfig(string(src), cfg)

	printDiagnostics(path, "lexical error", result.LexicalErrors)
	printDiagnostics(path, "syntax error", result.SyntaxErrors)
	printDiagnostics(path, "semantic error", result.SemanticErrors)
	if *showWarns {
		printDiagnostics(path, "warning", result.SemanticWarnings)
	}

	if !result.OK() {
		returnCode = ExitAnalysisError
		return
	}

	fmt.Printf("%s: OK\n", path)
}

func printDiagnostics(path, label string, ds []diag.Diagnostic) {
	for _, d := range ds {
		fmt.Fprintf(os.Stderr, "%s:%d:%d: %s: %s\n", path, d.Span.Line, d.Span.Column, label, d.Message)
	}
}
