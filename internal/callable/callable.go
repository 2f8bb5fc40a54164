/*
File    : loxrun/internal/callable/callable.go

Package callable implements the uniform {arity, call} Callable protocol:
Function (a user-defined Lox function capturing its declaration
environment) and Native (a host-implemented function like clock) both
satisfy value.Callable, so the interpreter's Call expression handling
never special-cases one over the other — grounded on
go-mix/function/function.go's Function{Name, Params, Body, Scp} closure
struct and go-mix/eval/evaluator.go's IsBuiltin/InvokeBuiltin split,
collapsed here into one interface since Lox has no separate "is this a
builtin name" lookup: every callable lives in the same Environment chain as
an ordinary binding.
*/
package callable

import (
	"fmt"

	"github.com/loxrun/loxrun/internal/ast"
	"github.com/loxrun/loxrun/internal/environment"
	"github.com/loxrun/loxrun/internal/value"
)

// Interpreter is the minimal surface a Callable needs to invoke a
// user-defined function's body: a struct holding the body-running function,
// which *interpreter.Interpreter fills in (see its asCallableInterpreter).
// This package never imports interpreter (which imports this package),
// avoiding an import cycle.
type Interpreter struct {
	ExecuteBlock func(stmts []ast.Stmt, env *environment.Environment) (value.Value, error)
}

// Function is a user-defined Lox function: the parsed declaration plus the
// environment it closed over at definition time. Closure is shared by
// pointer, not copied — see environment/environment.go's doc comment for
// why that matters.
type Function struct {
	Declaration *ast.Function
	Closure     *environment.Environment
}

func (f *Function) Kind() value.Kind { return value.KindCallable }

func (f *Function) GoString() string {
	return fmt.Sprintf("<fn %s>", f.Declaration.Name.Lexeme)
}

func (f *Function) Arity() int {
	return len(f.Declaration.Params)
}

// Call binds args to the declaration's parameters in a fresh environment
// enclosed by the captured closure, then executes the body in it. A
// Return propagated from the body is unwrapped into its carried value by
// the interpreter's ExecuteBlock; anything else (including nil on falling
// off the end of the body) defaults to Nil.
func (f *Function) Call(interp Interpreter, args []value.Value) (value.Value, error) {
	callEnv := environment.New(f.Closure)
	for i, param := range f.Declaration.Params {
		callEnv.Define(param.Lexeme, args[i])
	}
	return interp.ExecuteBlock(f.Declaration.Body, callEnv)
}

// Native is a host-implemented Callable — clock(), str(), len(), type(),
// grounded on go-mix/std/builtins.go's Builtin{Name, Callback} shape and
// archevan-glox/natives.go's GlobalFunctionClock.
type Native struct {
	Name    string
	Arity_  int
	Fn      func(args []value.Value) (value.Value, error)
}

func (n *Native) Kind() value.Kind  { return value.KindCallable }
func (n *Native) GoString() string  { return fmt.Sprintf("<native fn %s>", n.Name) }
func (n *Native) Arity() int        { return n.Arity_ }
func (n *Native) Call(_ Interpreter, args []value.Value) (value.Value, error) {
	return n.Fn(args)
}
