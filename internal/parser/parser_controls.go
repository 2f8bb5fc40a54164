/*
File    : loxrun/internal/parser/parser_controls.go

ifStmt → "if" "(" expression ")" statement ( "else" statement )?
*/
package parser

import (
	"github.com/loxrun/loxrun/internal/ast"
	"github.com/loxrun/loxrun/internal/token"
)

func (p *Parser) ifStatement() ast.Stmt {
	p.consume(token.LeftParen, "Expect '(' after 'if'.")
	cond := p.expression()
	p.consume(token.RightParen, "Expect ')' after if condition.")

	thenBranch := p.statement()
	var elseBranch ast.Stmt
	if p.match(token.Else) {
		elseBranch = p.statement()
	}
	return &ast.If{Cond: cond, Then: thenBranch, Else: elseBranch}
}
