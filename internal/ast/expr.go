/*
File    : loxrun/internal/ast/expr.go

Package ast defines the two tagged-variant trees the parser builds and the
interpreter walks. The classic (and go-mix's, see parser/node.go)
forward-declared visitor-interface-per-node-kind style encodes what is
naturally a closed sum type, so this package implements Expr and Stmt as
tagged variants with exhaustive pattern matching instead: each node is a
plain struct implementing a marker interface, and the interpreter
dispatches with a type switch rather than a generated Visit* method per
kind.
*/
package ast

import "github.com/loxrun/loxrun/internal/token"

// Expr is the marker interface implemented by every expression node.
type Expr interface {
	exprNode()
}

// Literal is a literal value baked in at parse time: numbers, strings,
// true/false, and nil all produce one.
type Literal struct {
	Value interface{} // float64, string, bool, or nil
}

// Unary is a prefix operator expression: `-right` or `!right`.
type Unary struct {
	Op    token.Token
	Right Expr
}

// Binary is an infix operator expression over the arithmetic, comparison,
// and equality operators.
type Binary struct {
	Left  Expr
	Op    token.Token
	Right Expr
}

// Logical is `and`/`or`, kept distinct from Binary because it short-circuits
// at evaluation time rather than always evaluating both operands.
type Logical struct {
	Left  Expr
	Op    token.Token
	Right Expr
}

// Grouping is a parenthesized expression, kept as its own node (rather than
// collapsed away at parse time) so diagnostics and any future pretty-printer
// can tell `(a)` apart from `a`.
type Grouping struct {
	Inner Expr
}

// Variable is a reference to a bound name.
type Variable struct {
	Name token.Token
}

// Assign is `name = value`. Name carries the source token so the
// interpreter's "Undefined variable" runtime error can cite a line.
type Assign struct {
	Name  token.Token
	Value Expr
}

// Call is a function-call expression. Paren is the closing `)`, kept for
// error reporting on arity mismatches and non-callable callees.
type Call struct {
	Callee Expr
	Paren  token.Token
	Args   []Expr
}

func (*Literal) exprNode()  {}
func (*Unary) exprNode()    {}
func (*Binary) exprNode()   {}
func (*Logical) exprNode()  {}
func (*Grouping) exprNode() {}
func (*Variable) exprNode() {}
func (*Assign) exprNode()   {}
func (*Call) exprNode()     {}
