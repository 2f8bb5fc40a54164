/*
File    : loxrun/internal/parser/parser_functions.go

funDecl  → "fun" function
function → IDENT "(" params? ")" block
params   → IDENT ( "," IDENT )*          (≤255; error beyond)

kind distinguishes the diagnostic wording ("function") — this grammar
only ever calls function() for top-level fun declarations in this subset
(no methods), but keeping kind as a parameter mirrors go-mix's
parser_functions.go, which reuses its function-body parser for both
function and method declarations.
*/
package parser

import (
	"fmt"

	"github.com/loxrun/loxrun/internal/ast"
	"github.com/loxrun/loxrun/internal/token"
)

func (p *Parser) function(kind string) ast.Stmt {
	name := p.consume(token.Identifier, fmt.Sprintf("Expect %s name.", kind))
	p.consume(token.LeftParen, fmt.Sprintf("Expect '(' after %s name.", kind))

	var params []token.Token
	if !p.check(token.RightParen) {
		for {
			if len(params) >= maxArgs {
				p.errorAt(p.peek(), fmt.Sprintf("Can't have more than %d parameters.", maxArgs))
			}
			params = append(params, p.consume(token.Identifier, "Expect parameter name."))
			if !p.match(token.Comma) {
				break
			}
		}
	}
	p.consume(token.RightParen, "Expect ')' after parameters.")

	p.consume(token.LeftBrace, fmt.Sprintf("Expect '{' before %s body.", kind))
	body := p.block()
	return &ast.Function{Name: name, Params: params, Body: body}
}
