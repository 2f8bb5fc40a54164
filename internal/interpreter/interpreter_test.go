/*
File    : loxrun/internal/interpreter/interpreter_test.go

Exercises precedence, short-circuiting, scoping, closures, and error
reporting end to end through lexer → parser → interpreter, the way
go-mix's own eval tests run full snippets rather than constructing ASTs
by hand.
*/
package interpreter

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/loxrun/loxrun/internal/diagnostics"
	"github.com/loxrun/loxrun/internal/lexer"
	"github.com/loxrun/loxrun/internal/parser"
)

func run(t *testing.T, src string) (stdout string, stderr string) {
	t.Helper()
	var outBuf, errBuf bytes.Buffer
	rep := diagnostics.New(&errBuf)
	toks := lexer.New(src, rep).ScanTokens()
	stmts := parser.New(toks, rep).Parse()
	require.False(t, rep.HadSyntaxError, "unexpected syntax error: %s", errBuf.String())

	interp := New(&outBuf, rep, func() float64 { return 42 })
	interp.Interpret(stmts)
	return outBuf.String(), errBuf.String()
}

func TestPrecedence(t *testing.T) {
	out, _ := run(t, `print 1 + 2 * 3;`)
	assert.Equal(t, "7\n", out)
	out, _ = run(t, `print (1 + 2) * 3;`)
	assert.Equal(t, "9\n", out)
}

func TestShortCircuit(t *testing.T) {
	out, stderr := run(t, `print false and (1/0);`)
	assert.Equal(t, "false\n", out)
	assert.Empty(t, stderr)

	out, stderr = run(t, `print true or (1/0);`)
	assert.Equal(t, "true\n", out)
	assert.Empty(t, stderr)
}

func TestLogicalOperandReturn(t *testing.T) {
	out, _ := run(t, `print nil or "hi";`)
	assert.Equal(t, "hi\n", out)
	out, _ = run(t, `print 1 and 2;`)
	assert.Equal(t, "2\n", out)
}

func TestTruthiness(t *testing.T) {
	out, _ := run(t, `if (0) print "y"; else print "n";`)
	assert.Equal(t, "y\n", out)
	out, _ = run(t, `if ("") print "y"; else print "n";`)
	assert.Equal(t, "y\n", out)
	out, _ = run(t, `if (nil) print "y"; else print "n";`)
	assert.Equal(t, "n\n", out)
}

func TestEqualityAcrossTypes(t *testing.T) {
	out, stderr := run(t, `print 1 == "1";`)
	assert.Equal(t, "false\n", out)
	assert.Empty(t, stderr)
}

func TestBlockScoping(t *testing.T) {
	out, _ := run(t, `
		var x = "outer";
		{
			var x = "inner";
			print x;
		}
		print x;
	`)
	assert.Equal(t, "inner\nouter\n", out)
}

func TestAssignWritesInnermostEnclosingBinding(t *testing.T) {
	out, _ := run(t, `
		var x = "global";
		{
			x = "changed";
		}
		print x;
	`)
	assert.Equal(t, "changed\n", out)
}

func TestClosureCaptureSharedMutableEnvironment(t *testing.T) {
	out, _ := run(t, `
		fun makeCounter() {
			var i = 0;
			fun count() { i = i + 1; print i; }
			return count;
		}
		var c = makeCounter();
		c(); c(); c();
	`)
	assert.Equal(t, "1\n2\n3\n", out)
}

func TestReturnPropagationFibonacci(t *testing.T) {
	out, _ := run(t, `
		fun f(n) { if (n < 2) return n; return f(n-1) + f(n-2); }
		print f(10);
	`)
	assert.Equal(t, "55\n", out)
}

func TestForDesugaringEquivalence(t *testing.T) {
	out, _ := run(t, `
		var sum = 0;
		for (var i = 1; i <= 5; i = i + 1) sum = sum + i;
		print sum;
	`)
	assert.Equal(t, "15\n", out)
}

func TestRuntimeErrorReportsLineAndStops(t *testing.T) {
	out, stderr := run(t, "print 1;\nprint 1 + \"a\";\nprint 3;")
	assert.Equal(t, "1\n", out)
	assert.Equal(t, "Operands must be two numbers or two strings.\n[line 2]\n", stderr)
}

func TestNumberStringification(t *testing.T) {
	out, _ := run(t, `print 3.0; print 3.25;`)
	assert.Equal(t, "3\n3.25\n", out)
}

func TestStringConcatenation(t *testing.T) {
	out, _ := run(t, `print "foo" + "bar";`)
	assert.Equal(t, "foobar\n", out)
}

func TestNativeClockStrLenType(t *testing.T) {
	out, _ := run(t, `
		print clock();
		print str(3);
		print len("hello");
		print type(3);
		print type("x");
		print type(true);
		print type(nil);
	`)
	assert.Equal(t, "42\n3\n5\nnumber\nstring\nboolean\nnil\n", out)
}

func TestUndefinedVariableIsRuntimeError(t *testing.T) {
	_, stderr := run(t, `print undeclared;`)
	assert.Contains(t, stderr, "Undefined variable 'undeclared'.")
}

func TestCallingNonCallableIsRuntimeError(t *testing.T) {
	_, stderr := run(t, `var x = 1; x();`)
	assert.Contains(t, stderr, "Can only call functions and classes.")
}

func TestArityMismatchIsRuntimeError(t *testing.T) {
	_, stderr := run(t, `fun add(a, b) { return a + b; } add(1);`)
	assert.Contains(t, stderr, "Expected 2 arguments but got 1.")
}

func TestWhileLoop(t *testing.T) {
	out, _ := run(t, `
		var i = 0;
		while (i < 3) {
			print i;
			i = i + 1;
		}
	`)
	assert.Equal(t, "0\n1\n2\n", out)
}
