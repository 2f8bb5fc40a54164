/*
File    : loxrun/internal/parser/parser_expressions.go

The expression grammar:

  expression  → assignment
  assignment  → IDENT "=" assignment | logic_or
  logic_or    → logic_and ( "or" logic_and )*
  logic_and   → equality ( "and" equality )*
  equality    → comparison ( ( "!=" | "==" ) comparison )*
  comparison  → term ( ( ">" | ">=" | "<" | "<=" ) term )*
  term        → factor ( ( "-" | "+" ) factor )*
  factor      → unary  ( ( "/" | "*" ) unary  )*
  unary       → ( "!" | "-" ) unary | call
  call        → primary ( "(" arguments? ")" )*
  arguments   → expression ( "," expression )*   (≤255; error beyond)
  primary     → "true" | "false" | "nil" | NUMBER | STRING | IDENT
              | "(" expression ")"

Every binary-operator level is a left-associative fold (a loop building up
the left operand) except assignment, which is right-associative by virtue
of being parsed as a single recursive call. Grounded on go-mix's precedence
chain (parser/parser_precedence.go), rewritten as explicit per-level
functions to match this grammar instead of go-mix's Pratt binding-power
table.
*/
package parser

import (
	"github.com/loxrun/loxrun/internal/ast"
	"github.com/loxrun/loxrun/internal/token"
)

func (p *Parser) expression() ast.Expr {
	return p.assignment()
}

// assignment → IDENT "=" assignment | logic_or
//
// After parsing `lhs = rhs`, a non-Variable lhs reports "Invalid assignment
// target." at the `=` token but does not raise a parse error — parsing
// continues with lhs as the result.
func (p *Parser) assignment() ast.Expr {
	expr := p.or()

	if p.match(token.Equal) {
		equals := p.previous()
		value := p.assignment()

		if name, ok := expr.(*ast.Variable); ok {
			return &ast.Assign{Name: name.Name, Value: value}
		}
		p.errorAt(equals, "Invalid assignment target.")
	}
	return expr
}

func (p *Parser) or() ast.Expr {
	expr := p.and()
	for p.match(token.Or) {
		op := p.previous()
		right := p.and()
		expr = &ast.Logical{Left: expr, Op: op, Right: right}
	}
	return expr
}

func (p *Parser) and() ast.Expr {
	expr := p.equality()
	for p.match(token.And) {
		op := p.previous()
		right := p.equality()
		expr = &ast.Logical{Left: expr, Op: op, Right: right}
	}
	return expr
}

func (p *Parser) equality() ast.Expr {
	expr := p.comparison()
	for p.match(token.BangEqual, token.EqualEqual) {
		op := p.previous()
		right := p.comparison()
		expr = &ast.Binary{Left: expr, Op: op, Right: right}
	}
	return expr
}

func (p *Parser) comparison() ast.Expr {
	expr := p.term()
	for p.match(token.Greater, token.GreaterEqual, token.Less, token.LessEqual) {
		op := p.previous()
		right := p.term()
		expr = &ast.Binary{Left: expr, Op: op, Right: right}
	}
	return expr
}

func (p *Parser) term() ast.Expr {
	expr := p.factor()
	for p.match(token.Minus, token.Plus) {
		op := p.previous()
		right := p.factor()
		expr = &ast.Binary{Left: expr, Op: op, Right: right}
	}
	return expr
}

func (p *Parser) factor() ast.Expr {
	expr := p.unary()
	for p.match(token.Slash, token.Star) {
		op := p.previous()
		right := p.unary()
		expr = &ast.Binary{Left: expr, Op: op, Right: right}
	}
	return expr
}

func (p *Parser) unary() ast.Expr {
	if p.match(token.Bang, token.Minus) {
		op := p.previous()
		right := p.unary()
		return &ast.Unary{Op: op, Right: right}
	}
	return p.call()
}

// call → primary ( "(" arguments? ")" )*
func (p *Parser) call() ast.Expr {
	expr := p.primary()
	for {
		if p.match(token.LeftParen) {
			expr = p.finishCall(expr)
		} else {
			break
		}
	}
	return expr
}

func (p *Parser) finishCall(callee ast.Expr) ast.Expr {
	var args []ast.Expr
	if !p.check(token.RightParen) {
		for {
			if len(args) >= maxArgs {
				p.errorAt(p.peek(), "Can't have more than 255 arguments.")
			}
			args = append(args, p.expression())
			if !p.match(token.Comma) {
				break
			}
		}
	}
	paren := p.consume(token.RightParen, "Expect ')' after arguments.")
	return &ast.Call{Callee: callee, Paren: paren, Args: args}
}

// primary → "true" | "false" | "nil" | NUMBER | STRING | IDENT
//         | "(" expression ")"
func (p *Parser) primary() ast.Expr {
	switch {
	case p.match(token.False):
		return &ast.Literal{Value: false}
	case p.match(token.True):
		return &ast.Literal{Value: true}
	case p.match(token.Nil):
		return &ast.Literal{Value: nil}
	case p.match(token.Number, token.String):
		return &ast.Literal{Value: p.previous().Literal}
	case p.match(token.Identifier):
		return &ast.Variable{Name: p.previous()}
	case p.match(token.LeftParen):
		expr := p.expression()
		p.consume(token.RightParen, "Expect ')' after expression.")
		return &ast.Grouping{Inner: expr}
	}
	p.errorAt(p.peek(), "Expect expression.")
	panic(parseError{})
}
