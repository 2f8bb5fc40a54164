/*
File    : loxrun/internal/repl/repl.go

Package repl implements Lox's interactive Read-Eval-Print Loop: prompt
"> ", an empty line ends the session, and a syntax or runtime error on
one line never exits the process — the diagnostics.Reporter resets every
iteration so one bad line can't poison the next. Grounded on
go-mix/repl/repl.go's Repl{Banner, Version, Author, Line, License,
Prompt} shape and its chzyer/readline + fatih/color usage, narrowed to
this REPL's own prompt/exit rules (go-mix uses ".exit" and colors every
line of output; this REPL colors only the banner decoration — the prompt,
evaluated output and diagnostic text are printed uncolored, since
error-format assertions in tests must see byte-exact diagnostic text).
*/
package repl

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"

	"github.com/loxrun/loxrun/internal/diagnostics"
	"github.com/loxrun/loxrun/internal/host"
	"github.com/loxrun/loxrun/internal/interpreter"
	"github.com/loxrun/loxrun/internal/lexer"
	"github.com/loxrun/loxrun/internal/parser"
)

var (
	blueColor   = color.New(color.FgBlue)
	greenColor  = color.New(color.FgGreen)
	yellowColor = color.New(color.FgYellow)
	cyanColor   = color.New(color.FgCyan)
)

// Repl holds the decorative configuration for an interactive session. None
// of these fields affect evaluated output: Prompt is the text readline shows
// before each line, and the rest only shape the banner printed once at
// startup.
type Repl struct {
	Banner  string
	Version string
	Author  string
	Line    string
	License string
	Prompt  string
}

// New creates a Repl with the given banner configuration.
func New(banner, version, author, line, license, prompt string) *Repl {
	return &Repl{Banner: banner, Version: version, Author: author, Line: line, License: license, Prompt: prompt}
}

func (r *Repl) printBanner(w io.Writer) {
	blueColor.Fprintf(w, "%s\n", r.Line)
	greenColor.Fprintf(w, "%s\n", r.Banner)
	blueColor.Fprintf(w, "%s\n", r.Line)
	yellowColor.Fprintln(w, "Version: "+r.Version+" | Author: "+r.Author+" | License: "+r.License)
	blueColor.Fprintf(w, "%s\n", r.Line)
	cyanColor.Fprintln(w, "Welcome to loxrun!")
	cyanColor.Fprintln(w, "Type a line of Lox and press enter. An empty line exits.")
	cyanColor.Fprintln(w, "Use up/down arrows to navigate command history.")
	blueColor.Fprintf(w, "%s\n", r.Line)
}

// Start runs the loop: print the banner, then repeatedly read a line,
// scan+parse+interpret it against a persistent interpreter (so var/fun
// declarations survive across lines), and print diagnostics to stderr on
// failure. An empty line — not EOF — is the termination signal; EOF
// (Ctrl+D) also ends the session since there is nothing left to read.
func (r *Repl) Start(w io.Writer) {
	r.printBanner(w)

	rl, err := readline.NewEx(&readline.Config{Prompt: r.Prompt, Stdout: w})
	if err != nil {
		panic(err)
	}
	defer rl.Close()

	report := diagnostics.New(os.Stderr)
	interp := interpreter.New(w, report, host.Clock)

	for {
		line, err := rl.Readline()
		if err != nil {
			return
		}
		line = strings.TrimSpace(line)
		if line == "" {
			return
		}
		rl.SaveHistory(line)

		report.Reset()
		toks := lexer.New(line, report).ScanTokens()
		stmts := parser.New(toks, report).Parse()
		if report.HadSyntaxError {
			continue
		}
		interp.Interpret(stmts)
	}
}

// StartWithInput is a test seam: it drives the same loop as Start but over
// a canned input reader instead of an interactive terminal (no readline,
// no banner, and diagnostics go to w alongside the output), so tests can
// exercise the REPL's line-by-line contract without a real TTY.
func StartWithInput(in io.Reader, w io.Writer) {
	scanner := bufio.NewScanner(in)
	report := diagnostics.New(w)
	interp := interpreter.New(w, report, host.Clock)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			return
		}
		report.Reset()
		toks := lexer.New(line, report).ScanTokens()
		stmts := parser.New(toks, report).Parse()
		if report.HadSyntaxError {
			continue
		}
		interp.Interpret(stmts)
	}
}
