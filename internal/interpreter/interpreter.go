/*
File    : loxrun/internal/interpreter/interpreter.go

Package interpreter implements the tree-walking evaluator that executes
a parsed statement list against a chained Environment, reporting
runtime errors through a diagnostics.Reporter. Grounded on
go-mix/eval/evaluator.go's Evaluator{Scp, Errors} shape, replaced at the
dispatch layer: go-mix switches on a NodeVisitor-style tag field, this
walks the ast package's tagged-variant Expr/Stmt trees with a Go type
switch instead.
*/
package interpreter

import (
	"fmt"
	"io"

	"github.com/loxrun/loxrun/internal/ast"
	"github.com/loxrun/loxrun/internal/callable"
	"github.com/loxrun/loxrun/internal/diagnostics"
	"github.com/loxrun/loxrun/internal/environment"
	"github.com/loxrun/loxrun/internal/token"
	"github.com/loxrun/loxrun/internal/value"
)

// Clock is the monotonic-seconds source the globals' clock() native calls.
// Supplied by the host package in production; tests supply a fixed stub so
// assertions stay deterministic.
type Clock func() float64

// Interpreter walks a parsed program, threading a current-environment
// pointer that every block/call temporarily rebinds and restores.
type Interpreter struct {
	globals *environment.Environment
	current *environment.Environment
	report  *diagnostics.Reporter
	stdout  io.Writer
}

// New creates an Interpreter with globals seeded with the native
// functions: clock, str, len, and type. stdout receives Print statement
// output; r receives runtime diagnostics.
func New(stdout io.Writer, r *diagnostics.Reporter, clock Clock) *Interpreter {
	globals := environment.New(nil)
	interp := &Interpreter{globals: globals, current: globals, report: r, stdout: stdout}
	interp.defineNatives(globals, clock)
	return interp
}

// runtimeError carries the token whose line a diagnostic should cite,
// mirroring the book's RuntimeError(token, message) exception — modeled as
// a plain Go error rather than a panic, since ordinary runtime errors
// unwind through normal Go return values (only Return itself uses panic;
// see returnSignal in interpreter_statements.go).
type runtimeError struct {
	tok token.Token
	msg string
}

func (e *runtimeError) Error() string { return e.msg }

func newRuntimeError(tok token.Token, format string, args ...interface{}) error {
	return &runtimeError{tok: tok, msg: fmt.Sprintf(format, args...)}
}

// Interpret runs statements in order. A runtime error aborts the remaining
// statements and is reported through the Reporter; a Return that escapes
// all the way to this top level (i.e. outside any function call) is also
// reported as a runtime error citing its keyword's line.
func (interp *Interpreter) Interpret(statements []ast.Stmt) {
	defer func() {
		if r := recover(); r != nil {
			if sig, ok := r.(returnSignal); ok {
				interp.report.RuntimeError(sig.keyword.Line, "return outside of a function call.")
				return
			}
			panic(r)
		}
	}()

	for _, stmt := range statements {
		if err := interp.execute(stmt); err != nil {
			interp.reportRuntimeError(err)
			return
		}
	}
}

func (interp *Interpreter) reportRuntimeError(err error) {
	if rerr, ok := err.(*runtimeError); ok {
		interp.report.RuntimeError(rerr.tok.Line, rerr.msg)
		return
	}
	interp.report.RuntimeError(0, err.Error())
}

// asCallableInterpreter adapts this Interpreter to the callable package's
// Interpreter struct, letting Function.Call run a body through
// invokeFunctionBody without callable importing this package (which
// imports callable).
func (interp *Interpreter) asCallableInterpreter() callable.Interpreter {
	return callable.Interpreter{ExecuteBlock: interp.invokeFunctionBody}
}

// invokable is the local view of a Callable value that actually carries a
// Call method — value.Callable itself only promises {Kind, GoString,
// Arity} so that package never has to know about callable.Interpreter.
type invokable interface {
	Arity() int
	Call(callable.Interpreter, []value.Value) (value.Value, error)
}
