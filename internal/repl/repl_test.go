/*
File    : loxrun/internal/repl/repl_test.go
*/
package repl

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStartWithInput_EvaluatesEachLine(t *testing.T) {
	var out bytes.Buffer
	in := strings.NewReader("var x = 1;\nprint x + 1;\n")
	StartWithInput(in, &out)
	assert.Equal(t, "2\n", out.String())
}

func TestStartWithInput_EmptyLineEndsSession(t *testing.T) {
	var out bytes.Buffer
	in := strings.NewReader("print 1;\n\nprint 2;\n")
	StartWithInput(in, &out)
	assert.Equal(t, "1\n", out.String())
}

func TestStartWithInput_SyntaxErrorDoesNotEndSession(t *testing.T) {
	var out bytes.Buffer
	in := strings.NewReader("print;\nprint 9;\n")
	StartWithInput(in, &out)
	assert.Contains(t, out.String(), "9\n")
}
