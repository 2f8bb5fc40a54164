/*
File    : loxrun/internal/interpreter/interpreter_expressions.go

Expression evaluation. Literal values arrive from the parser as raw Go
float64/string/bool/nil (ast.Literal.Value is interface{}); this file is
where they get lifted into value.Value, each time the Literal is evaluated.
*/
package interpreter

import (
	"github.com/loxrun/loxrun/internal/ast"
	"github.com/loxrun/loxrun/internal/token"
	"github.com/loxrun/loxrun/internal/value"
)

func (interp *Interpreter) evaluate(expr ast.Expr) (value.Value, error) {
	switch e := expr.(type) {
	case *ast.Literal:
		return literalValue(e.Value), nil

	case *ast.Grouping:
		return interp.evaluate(e.Inner)

	case *ast.Variable:
		v, err := interp.current.Get(e.Name.Lexeme)
		if err != nil {
			return nil, newRuntimeError(e.Name, "%s", err.Error())
		}
		return v, nil

	case *ast.Assign:
		v, err := interp.evaluate(e.Value)
		if err != nil {
			return nil, err
		}
		if err := interp.current.Assign(e.Name.Lexeme, v); err != nil {
			return nil, newRuntimeError(e.Name, "%s", err.Error())
		}
		return v, nil

	case *ast.Unary:
		return interp.evalUnary(e)

	case *ast.Binary:
		return interp.evalBinary(e)

	case *ast.Logical:
		return interp.evalLogical(e)

	case *ast.Call:
		return interp.evalCall(e)

	default:
		return value.None, nil
	}
}

// literalValue lifts a parser-produced raw Go literal into a value.Value.
func literalValue(raw interface{}) value.Value {
	switch v := raw.(type) {
	case nil:
		return value.None
	case bool:
		return value.FromBool(v)
	case float64:
		return value.Number{V: v}
	case string:
		return value.String{V: v}
	default:
		return value.None
	}
}

func (interp *Interpreter) evalUnary(e *ast.Unary) (value.Value, error) {
	right, err := interp.evaluate(e.Right)
	if err != nil {
		return nil, err
	}
	switch e.Op.Kind {
	case token.Minus:
		n, ok := right.(value.Number)
		if !ok {
			return nil, newRuntimeError(e.Op, "Operand must be a number.")
		}
		return value.Number{V: -n.V}, nil
	case token.Bang:
		return value.FromBool(!value.IsTruthy(right)), nil
	}
	return nil, newRuntimeError(e.Op, "Unknown unary operator.")
}

func (interp *Interpreter) evalLogical(e *ast.Logical) (value.Value, error) {
	left, err := interp.evaluate(e.Left)
	if err != nil {
		return nil, err
	}
	if e.Op.Kind == token.Or {
		if value.IsTruthy(left) {
			return left, nil
		}
	} else {
		if !value.IsTruthy(left) {
			return left, nil
		}
	}
	return interp.evaluate(e.Right)
}

func (interp *Interpreter) evalBinary(e *ast.Binary) (value.Value, error) {
	left, err := interp.evaluate(e.Left)
	if err != nil {
		return nil, err
	}
	right, err := interp.evaluate(e.Right)
	if err != nil {
		return nil, err
	}

	switch e.Op.Kind {
	case token.BangEqual:
		return value.FromBool(!value.Equal(left, right)), nil
	case token.EqualEqual:
		return value.FromBool(value.Equal(left, right)), nil

	case token.Plus:
		if ln, lok := left.(value.Number); lok {
			if rn, rok := right.(value.Number); rok {
				return value.Number{V: ln.V + rn.V}, nil
			}
		}
		if ls, lok := left.(value.String); lok {
			if rs, rok := right.(value.String); rok {
				return value.String{V: ls.V + rs.V}, nil
			}
		}
		return nil, newRuntimeError(e.Op, "Operands must be two numbers or two strings.")

	case token.Minus, token.Slash, token.Star,
		token.Greater, token.GreaterEqual, token.Less, token.LessEqual:
		ln, lok := left.(value.Number)
		rn, rok := right.(value.Number)
		if !lok || !rok {
			return nil, newRuntimeError(e.Op, "Operands must be numbers.")
		}
		switch e.Op.Kind {
		case token.Minus:
			return value.Number{V: ln.V - rn.V}, nil
		case token.Slash:
			return value.Number{V: ln.V / rn.V}, nil
		case token.Star:
			return value.Number{V: ln.V * rn.V}, nil
		case token.Greater:
			return value.FromBool(ln.V > rn.V), nil
		case token.GreaterEqual:
			return value.FromBool(ln.V >= rn.V), nil
		case token.Less:
			return value.FromBool(ln.V < rn.V), nil
		case token.LessEqual:
			return value.FromBool(ln.V <= rn.V), nil
		}
	}
	return nil, newRuntimeError(e.Op, "Unknown binary operator.")
}

func (interp *Interpreter) evalCall(e *ast.Call) (value.Value, error) {
	callee, err := interp.evaluate(e.Callee)
	if err != nil {
		return nil, err
	}

	args := make([]value.Value, 0, len(e.Args))
	for _, a := range e.Args {
		v, err := interp.evaluate(a)
		if err != nil {
			return nil, err
		}
		args = append(args, v)
	}

	fn, ok := callee.(invokable)
	if !ok {
		return nil, newRuntimeError(e.Paren, "Can only call functions and classes.")
	}
	if len(args) != fn.Arity() {
		return nil, newRuntimeError(e.Paren, "Expected %d arguments but got %d.", fn.Arity(), len(args))
	}
	result, err := fn.Call(interp.asCallableInterpreter(), args)
	if ne, ok := err.(*nativeError); ok {
		return nil, newRuntimeError(e.Paren, "%s", ne.msg)
	}
	return result, err
}
