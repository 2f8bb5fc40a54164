/*
File    : loxrun/internal/interpreter/interpreter_statements.go

Statement execution. Grounded on go-mix/eval/evaluator.go's
per-statement-kind switch, adapted to ast's tagged-variant Stmt nodes.
*/
package interpreter

import (
	"fmt"

	"github.com/loxrun/loxrun/internal/ast"
	"github.com/loxrun/loxrun/internal/callable"
	"github.com/loxrun/loxrun/internal/environment"
	"github.com/loxrun/loxrun/internal/token"
	"github.com/loxrun/loxrun/internal/value"
)

// returnSignal is a host-level unwinding mechanism raised by the Return
// statement and caught at the nearest invokeFunctionBody frame (the
// function-call boundary), or by Interpret when a Return escapes to the
// top level. Chosen over threading a Normal|Returning
// result through every evaluation because Go's multi-value returns make a
// tagged result type awkward next to the ordinary (value, error)
// signatures used everywhere else in this interpreter.
type returnSignal struct {
	keyword token.Token
	value   value.Value
}

func (interp *Interpreter) execute(stmt ast.Stmt) error {
	switch s := stmt.(type) {
	case *ast.Expression:
		_, err := interp.evaluate(s.Expr)
		return err

	case *ast.Print:
		v, err := interp.evaluate(s.Expr)
		if err != nil {
			return err
		}
		fmt.Fprintln(interp.stdout, value.Stringify(v))
		return nil

	case *ast.Var:
		var v value.Value = value.None
		if s.Initializer != nil {
			var err error
			v, err = interp.evaluate(s.Initializer)
			if err != nil {
				return err
			}
		}
		interp.current.Define(s.Name.Lexeme, v)
		return nil

	case *ast.Block:
		_, err := interp.executeBlock(s.Statements, environment.New(interp.current))
		return err

	case *ast.If:
		cond, err := interp.evaluate(s.Cond)
		if err != nil {
			return err
		}
		if value.IsTruthy(cond) {
			return interp.execute(s.Then)
		}
		if s.Else != nil {
			return interp.execute(s.Else)
		}
		return nil

	case *ast.While:
		for {
			cond, err := interp.evaluate(s.Cond)
			if err != nil {
				return err
			}
			if !value.IsTruthy(cond) {
				return nil
			}
			if err := interp.execute(s.Body); err != nil {
				return err
			}
		}

	case *ast.Function:
		fn := &callable.Function{Declaration: s, Closure: interp.current}
		interp.current.Define(s.Name.Lexeme, fn)
		return nil

	case *ast.Return:
		var v value.Value = value.None
		if s.Value != nil {
			var err error
			v, err = interp.evaluate(s.Value)
			if err != nil {
				return err
			}
		}
		panic(returnSignal{keyword: s.Keyword, value: v})

	default:
		return nil
	}
}

// executeBlock runs statements inside env, temporarily making it the
// current environment and restoring the caller's environment on every exit
// path — normal completion, a propagated error, or a returnSignal panic
// unwinding through — via the deferred restore below, which runs whether
// this frame returns normally or panics. It does NOT catch returnSignal
// itself: a Return nested inside an ordinary Block must keep unwinding
// past that block to whichever Function.call frame is waiting for it (or
// to Interpret, if none is). Only invokeFunctionBody (below), the frame
// actually representing the nearest active function call, recovers the
// signal.
func (interp *Interpreter) executeBlock(stmts []ast.Stmt, env *environment.Environment) (result value.Value, err error) {
	previous := interp.current
	interp.current = env
	defer func() { interp.current = previous }()

	for _, stmt := range stmts {
		if execErr := interp.execute(stmt); execErr != nil {
			return value.None, execErr
		}
	}
	return value.None, nil
}

// invokeFunctionBody is the entry point wired into callable.Interpreter so
// that Function.Call runs a call frame through this instead of
// executeBlock directly. It is the one place a returnSignal is recovered
// and translated into an ordinary (value, nil) result: frames unwind
// until the nearest active function call, which catches the signal and
// returns its carried value.
func (interp *Interpreter) invokeFunctionBody(stmts []ast.Stmt, env *environment.Environment) (result value.Value, err error) {
	defer func() {
		if r := recover(); r != nil {
			if sig, ok := r.(returnSignal); ok {
				result, err = sig.value, nil
				return
			}
			panic(r)
		}
	}()
	return interp.executeBlock(stmts, env)
}
