/*
File    : loxrun/internal/parser/parser.go

Package parser implements the recursive-descent parser for Lox: tokens
in, an ordered statement list out, errors reported through a
diagnostics.Reporter with panic-mode recovery at statement boundaries.

Grounded on go-mix/parser/parser.go's overall shape — a Parser struct
holding lexer/token state and an Errors sink, split across parser_*.go
files by grammar concern (go-mix splits parser_expressions.go,
parser_statements.go, parser_controls.go, parser_functions.go,
parser_loops.go, parser_helpers.go; this parser mirrors that file-per-
concern layout) — but the parsing *algorithm* is the classic recursive-
descent-with-explicit-grammar-functions shape
(expression/assignment/logic_or/.../primary), not go-mix's Pratt-style
registered prefix/infix function tables, since Lox's grammar is fixed
precedence-climbing via nested function calls rather than a table of
per-token parse functions.
*/
package parser

import (
	"github.com/loxrun/loxrun/internal/ast"
	"github.com/loxrun/loxrun/internal/diagnostics"
	"github.com/loxrun/loxrun/internal/token"
)

// maxArgs is the parameter/argument ceiling: beyond it the parser reports
// an error but keeps parsing.
const maxArgs = 255

// Parser holds the token stream and reporting sink for one parse.
type Parser struct {
	tokens  []token.Token
	current int
	report  *diagnostics.Reporter
}

// New creates a Parser over an already-scanned token stream.
func New(tokens []token.Token, r *diagnostics.Reporter) *Parser {
	return &Parser{tokens: tokens, report: r}
}

// parseError is the internal panic-mode signal raised by consume() on a
// missing expected token. It unwinds to the nearest declaration() call,
// which recovers by calling synchronize().
type parseError struct{}

// Parse runs the full program → declaration* EOF grammar rule and returns
// the resulting statement list. Declarations that fail to parse are
// dropped (never appended as null placeholders) so downstream consumers
// never have to skip a nil Stmt. A prior syntax error must still suppress
// execution regardless of what the statement list itself contains; the
// diagnostics.Reporter's HadSyntaxError flag handles that independently.
func (p *Parser) Parse() []ast.Stmt {
	var statements []ast.Stmt
	for !p.isAtEnd() {
		if stmt := p.declaration(); stmt != nil {
			statements = append(statements, stmt)
		}
	}
	return statements
}
