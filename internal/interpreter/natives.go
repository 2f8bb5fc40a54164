/*
File    : loxrun/internal/interpreter/natives.go

The native-function surface beyond the mandatory clock(): str, len, type.
Grounded on go-mix/std's Builtin registration pattern and
archevan-glox/natives.go's GlobalFunctionClock, narrowed to the Value
variants Lox actually defines.
*/
package interpreter

import (
	"github.com/loxrun/loxrun/internal/callable"
	"github.com/loxrun/loxrun/internal/environment"
	"github.com/loxrun/loxrun/internal/value"
)

func (interp *Interpreter) defineNatives(globals *environment.Environment, clock Clock) {
	globals.Define("clock", &callable.Native{
		Name:   "clock",
		Arity_: 0,
		Fn: func(args []value.Value) (value.Value, error) {
			return value.Number{V: clock()}, nil
		},
	})

	globals.Define("str", &callable.Native{
		Name:   "str",
		Arity_: 1,
		Fn: func(args []value.Value) (value.Value, error) {
			return value.String{V: value.Stringify(args[0])}, nil
		},
	})

	globals.Define("len", &callable.Native{
		Name:   "len",
		Arity_: 1,
		Fn: func(args []value.Value) (value.Value, error) {
			s, ok := args[0].(value.String)
			if !ok {
				return nil, newNativeError("Argument to 'len' must be a string.")
			}
			return value.Number{V: float64(len([]rune(s.V)))}, nil
		},
	})

	globals.Define("type", &callable.Native{
		Name:   "type",
		Arity_: 1,
		Fn: func(args []value.Value) (value.Value, error) {
			return value.String{V: args[0].Kind().String()}, nil
		},
	})
}

// newNativeError reports a native-function runtime error with no token to
// cite — the evalCall site reports these at the paren of the call that
// invoked the native, since natives never see the call-site token
// themselves. See evalCall's handling of the error returned here.
type nativeError struct{ msg string }

func (e *nativeError) Error() string { return e.msg }

func newNativeError(msg string) error { return &nativeError{msg: msg} }
