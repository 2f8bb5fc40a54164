/*
File    : loxrun/internal/lexer/lexer_test.go
*/
package lexer

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/loxrun/loxrun/internal/diagnostics"
	"github.com/loxrun/loxrun/internal/token"
)

type tokenCase struct {
	Input    string
	Expected []token.Kind
}

func TestScanTokens_Punctuation(t *testing.T) {
	tests := []tokenCase{
		{
			Input:    `(){},.-+;*`,
			Expected: []token.Kind{token.LeftParen, token.RightParen, token.LeftBrace, token.RightBrace, token.Comma, token.Dot, token.Minus, token.Plus, token.Semicolon, token.Star, token.Eof},
		},
		{
			Input:    `! != = == < <= > >=`,
			Expected: []token.Kind{token.Bang, token.BangEqual, token.Equal, token.EqualEqual, token.Less, token.LessEqual, token.Greater, token.GreaterEqual, token.Eof},
		},
	}

	for _, tc := range tests {
		var buf bytes.Buffer
		rep := diagnostics.New(&buf)
		toks := New(tc.Input, rep).ScanTokens()
		require.Len(t, toks, len(tc.Expected))
		for i, k := range tc.Expected {
			assert.Equal(t, k, toks[i].Kind, "token %d of %q", i, tc.Input)
		}
		assert.False(t, rep.HadSyntaxError)
	}
}

func TestScanTokens_LineComment(t *testing.T) {
	var buf bytes.Buffer
	rep := diagnostics.New(&buf)
	toks := New("1 // a comment\n2", rep).ScanTokens()
	require.Len(t, toks, 3)
	assert.Equal(t, token.Number, toks[0].Kind)
	assert.Equal(t, token.Number, toks[1].Kind)
	assert.Equal(t, 2.0, toks[1].Literal)
	assert.Equal(t, 2, toks[1].Line)
}

func TestScanTokens_Strings(t *testing.T) {
	var buf bytes.Buffer
	rep := diagnostics.New(&buf)
	toks := New(`"hello world"`, rep).ScanTokens()
	require.Len(t, toks, 2)
	assert.Equal(t, token.String, toks[0].Kind)
	assert.Equal(t, "hello world", toks[0].Literal)
	assert.False(t, rep.HadSyntaxError)
}

func TestScanTokens_UnterminatedString(t *testing.T) {
	var buf bytes.Buffer
	rep := diagnostics.New(&buf)
	toks := New(`"unterminated`, rep).ScanTokens()
	require.Len(t, toks, 1) // just EOF, no token emitted for the string
	assert.True(t, rep.HadSyntaxError)
	assert.Contains(t, buf.String(), "Unterminated string.")
}

func TestScanTokens_Numbers(t *testing.T) {
	var buf bytes.Buffer
	rep := diagnostics.New(&buf)
	toks := New("123 45.67 .5 5.", rep).ScanTokens()
	// ".5" is NOT a valid number (leading dot), "5." trailing dot has no
	// fractional digit so only "5" is consumed as a number and "." is its
	// own Dot token.
	require.True(t, len(toks) > 0)
	assert.Equal(t, token.Number, toks[0].Kind)
	assert.Equal(t, 123.0, toks[0].Literal)
	assert.Equal(t, token.Number, toks[1].Kind)
	assert.Equal(t, 45.67, toks[1].Literal)
}

func TestScanTokens_IdentifiersAndKeywords(t *testing.T) {
	var buf bytes.Buffer
	rep := diagnostics.New(&buf)
	toks := New("var foo = true and false or nil", rep).ScanTokens()
	kinds := make([]token.Kind, 0, len(toks))
	for _, tk := range toks {
		kinds = append(kinds, tk.Kind)
	}
	assert.Equal(t, []token.Kind{
		token.Var, token.Identifier, token.Equal, token.True, token.And,
		token.False, token.Or, token.Nil, token.Eof,
	}, kinds)
}

func TestScanTokens_UnexpectedCharacter(t *testing.T) {
	var buf bytes.Buffer
	rep := diagnostics.New(&buf)
	toks := New("@", rep).ScanTokens()
	require.Len(t, toks, 1) // only EOF
	assert.True(t, rep.HadSyntaxError)
	assert.Contains(t, buf.String(), "Unexpected character.")
}

// TestScanTokens_RoundTrip verifies the lossless-lexeme property: every
// non-EOF token's lexeme is an exact substring of the source it was
// scanned from.
func TestScanTokens_RoundTrip(t *testing.T) {
	src := `fun add(a, b) { return a + b; }`
	var buf bytes.Buffer
	rep := diagnostics.New(&buf)
	toks := New(src, rep).ScanTokens()
	for _, tk := range toks {
		if tk.Kind == token.Eof {
			continue
		}
		assert.Contains(t, src, tk.Lexeme)
	}
}

// TestScanTokens_Totality verifies tokenization always terminates in Eof
// even when some characters are unrecognized.
func TestScanTokens_Totality(t *testing.T) {
	var buf bytes.Buffer
	rep := diagnostics.New(&buf)
	toks := New("var $ x = @ 1;", rep).ScanTokens()
	require.NotEmpty(t, toks)
	assert.Equal(t, token.Eof, toks[len(toks)-1].Kind)
	assert.True(t, rep.HadSyntaxError)
}
