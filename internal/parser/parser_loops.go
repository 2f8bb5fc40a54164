/*
File    : loxrun/internal/parser/parser_loops.go

whileStmt → "while" "(" expression ")" statement
forStmt   → "for" "(" ( varDecl | exprStmt | ";" )
                  expression? ";" expression? ")" statement

forStatement implements the classic for-to-while desugaring: the
initializer, condition, and increment are folded into a Block wrapping a
While, with a missing condition replaced by `true` and the increment
(when present) appended to the end of the loop body so it always runs
after the body on every iteration.
*/
package parser

import (
	"github.com/loxrun/loxrun/internal/ast"
	"github.com/loxrun/loxrun/internal/token"
)

func (p *Parser) whileStatement() ast.Stmt {
	p.consume(token.LeftParen, "Expect '(' after 'while'.")
	cond := p.expression()
	p.consume(token.RightParen, "Expect ')' after condition.")
	body := p.statement()
	return &ast.While{Cond: cond, Body: body}
}

func (p *Parser) forStatement() ast.Stmt {
	p.consume(token.LeftParen, "Expect '(' after 'for'.")

	var initializer ast.Stmt
	switch {
	case p.match(token.Semicolon):
		initializer = nil
	case p.match(token.Var):
		initializer = p.varDeclaration()
	default:
		initializer = p.expressionStatement()
	}

	var cond ast.Expr
	if !p.check(token.Semicolon) {
		cond = p.expression()
	}
	p.consume(token.Semicolon, "Expect ';' after loop condition.")

	var increment ast.Expr
	if !p.check(token.RightParen) {
		increment = p.expression()
	}
	p.consume(token.RightParen, "Expect ')' after for clauses.")

	body := p.statement()

	if increment != nil {
		body = &ast.Block{Statements: []ast.Stmt{body, &ast.Expression{Expr: increment}}}
	}

	if cond == nil {
		cond = &ast.Literal{Value: true}
	}
	body = &ast.While{Cond: cond, Body: body}

	if initializer != nil {
		body = &ast.Block{Statements: []ast.Stmt{initializer, body}}
	}

	return body
}
