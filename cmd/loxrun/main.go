/*
File    : loxrun/cmd/loxrun/main.go

The CLI driver: zero arguments starts the REPL, one argument runs that
file, more than one argument is a usage error. Exit codes follow the
classic Lox convention exactly — 0 clean, 64 misuse, 65 a syntax error
occurred, 70 a runtime error occurred — replacing go-mix's main/main.go
blanket os.Exit(1)-on-any-failure behavior (that file also juggles
--help/--version/server-mode flags this interpreter has no use for, since
its CLI surface is deliberately just "REPL or one file").
*/
package main

import (
	"fmt"
	"os"

	"github.com/loxrun/loxrun/internal/diagnostics"
	"github.com/loxrun/loxrun/internal/host"
	"github.com/loxrun/loxrun/internal/interpreter"
	"github.com/loxrun/loxrun/internal/lexer"
	"github.com/loxrun/loxrun/internal/parser"
	"github.com/loxrun/loxrun/internal/repl"
)

const (
	exitOK          = 0
	exitUsage       = 64
	exitSyntaxError = 65
	exitRuntimeErr  = 70
)

var (
	version = "v0.1.0"
	author  = "loxrun"
	license = "MIT"
	line    = "----------------------------------------------------------------"
	banner  = `  _
 | |____ ___  _ __ _   _ _ __
 | / _ \ \ \ / / '__| | | | '_ \
 | (_) |>  <| |  | |_| | | | |
 |_\___/_/\_\_|   \__,_|_| |_|
`
)

func main() {
	switch len(os.Args) {
	case 1:
		runRepl()
	case 2:
		os.Exit(runFile(os.Args[1]))
	default:
		fmt.Fprintln(os.Stderr, "Usage: lox [script]")
		os.Exit(exitUsage)
	}
}

func runRepl() {
	r := repl.New(banner, version, author, line, license, "> ")
	r.Start(os.Stdout)
}

// runFile reads path, then scans, parses, and interprets it against a
// single fresh interpreter — unlike the REPL, nothing here persists past
// one run. Returns 64 if the file cannot be read, 65 if the parse phase
// reported a syntax error (the interpreter never runs), 70 if the
// interpreter reported a runtime error, 0 otherwise.
func runFile(path string) int {
	source, err := host.ReadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Could not read file '%s': %v\n", path, err)
		return exitUsage
	}

	report := diagnostics.New(os.Stderr)
	toks := lexer.New(source, report).ScanTokens()
	stmts := parser.New(toks, report).Parse()
	if report.HadSyntaxError {
		return exitSyntaxError
	}

	interp := interpreter.New(os.Stdout, report, host.Clock)
	interp.Interpret(stmts)
	if report.HadRuntimeError {
		return exitRuntimeErr
	}
	return exitOK
}
