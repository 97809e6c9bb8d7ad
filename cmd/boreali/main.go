/*
Boreali is an interactive Boreal checking session.

It reads Boreal source a line at a time using GNU-readline-style input,
accumulating lines into a buffer. Typing a line consisting of just ":check"
(or ":c") runs the full analysis pipeline over everything typed so far and
prints the resulting diagnostics. ":reset" clears the buffer and starts over,
and ":quit" (or Ctrl-D) ends the session.

Usage:

	boreali [flags]

The flags are:

	-v, --version
		Give the current version of Boreali and then exit.

	-d, --direct
		Force reading directly from stdin instead of going through GNU
		readline, even if launched in a tty.
*/
package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/spf13/pflag"

	"github.com/oxixes/boreal-lang-ext"
	"github.com/oxixes/boreal-lang-ext/internal/diag"
	"github.com/oxixes/boreal-lang-ext/internal/version"
)

const (
	ExitSuccess = iota
	ExitInitError
)

var (
	returnCode  = ExitSuccess
	flagVersion = pflag.BoolP("version", "v", false, "Gives the version info")
	forceDirect = pflag.BoolP("direct", "d", false, "Force reading directly from stdin instead of GNU readline")
)

// lineReader is the minimal interface boreali needs from either an
// interactive readline.Instance or a plain buffered stdin reader.
type lineReader interface {
	Readline() (string, error)
	Close() error
}

type directReader struct {
	r *bufio.Reader
}

func (d *directReader) Readline() (string, error) {
	line, err := d.r.ReadString('\n')
	if err != nil && err != io.EOF {
		return "", err
	}
	if line == "" && err == io.EOF {
		return "", io.EOF
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func (d *directReader) Close() error { return nil }

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

	rl, err := newReader(*forceDirect)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %s\n", err.Error())
		returnCode = ExitInitError
		return
	}
	defer rl.Close()

	runSession(rl, os.Stdout)
}

func newReader(direct bool) (lineReader, error) {
	if direct || !readline.IsTerminal(int(os.Stdin.Fd())) {
		return &directReader{r: bufio.NewReader(os.Stdin)}, nil
	}
	inst, err := readline.NewEx(&readline.Config{Prompt: "boreal> "})
	if err != nil {
		return nil, fmt.Errorf("create readline config: %w", err)
	}
	return inst, nil
}

func runSession(rl lineReader, out io.Writer) {
	var buf []string

	fmt.Fprintln(out, "Boreal interactive checker. Type \":check\" to analyze, \":reset\" to clear, \":quit\" to exit.")

	for {
		line, err := rl.Readline()
		if err != nil {
			return
		}

		switch strings.TrimSpace(line) {
		case ":quit", ":q":
			return
		case ":reset", ":r":
			buf = nil
			fmt.Fprintln(out, "buffer cleared")
			continue
		case ":check", ":c":
			runCheck(strings.Join(buf, "\n"), out)
			continue
		}

		buf = append(buf, line)
	}
}

func runCheck(source string, out io.Writer) {
	result := boreal.Analyze(source)

	printDiagnostics(out, "lexical error", result.LexicalErrors)
	printDiagnostics(out, "syntax error", result.SyntaxErrors)
	printDiagnostics(out, "semantic error", result.SemanticErrors)
	printDiagnostics(out, "warning", result.SemanticWarnings)

	if result.OK() {
		fmt.Fprintf(out, "OK (run %s)\n", result.RunID)
	}
}

func printDiagnostics(out io.Writer, label string, ds []diag.Diagnostic) {
	for _, d := range ds {
		fmt.Fprintf(out, "%d:%d: %s: %s\n", d.Span.Line, d.Span.Column, label, d.Message)
	}
}
