/*
File    : loxrun/internal/parser/parser_helpers.go

Low-level token-stream cursor helpers, grounded on go-mix/parser/parser.go's
advance()/expectNext()/expectAdvance() trio, adapted to the match/check/
consume naming the recursive-descent grammar functions (in
parser_expressions.go, parser_statements.go, etc.) are written against.
*/
package parser

import (
	"github.com/loxrun/loxrun/internal/token"
)

func (p *Parser) check(kind token.Kind) bool {
	if p.isAtEnd() {
		return false
	}
	return p.peek().Kind == kind
}

// match advances and returns true if the current token is one of kinds.
func (p *Parser) match(kinds ...token.Kind) bool {
	for _, k := range kinds {
		if p.check(k) {
			p.advance()
			return true
		}
	}
	return false
}

func (p *Parser) advance() token.Token {
	if !p.isAtEnd() {
		p.current++
	}
	return p.previous()
}

func (p *Parser) isAtEnd() bool {
	return p.peek().Kind == token.Eof
}

func (p *Parser) peek() token.Token {
	return p.tokens[p.current]
}

func (p *Parser) previous() token.Token {
	return p.tokens[p.current-1]
}

// consume advances past an expected token kind, or reports message at the
// current token and raises the panic-mode parseError signal.
func (p *Parser) consume(kind token.Kind, message string) token.Token {
	if p.check(kind) {
		return p.advance()
	}
	p.errorAt(p.peek(), message)
	panic(parseError{})
}

func (p *Parser) errorAt(tok token.Token, message string) {
	p.report.SyntaxErrorAt(tok.Line, tok.Lexeme, tok.Kind == token.Eof, message)
}

// synchronize discards tokens until just past a statement-ending semicolon
// or until the next token starts a new statement/declaration — the
// panic-mode recovery rule that lets parsing resume after an error instead
// of aborting the whole program.
func (p *Parser) synchronize() {
	p.advance()
	for !p.isAtEnd() {
		if p.previous().Kind == token.Semicolon {
			return
		}
		switch p.peek().Kind {
		case token.Class, token.Fun, token.Var, token.For, token.If, token.While, token.Print, token.Return:
			return
		}
		p.advance()
	}
}
