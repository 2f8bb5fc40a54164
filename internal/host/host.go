/*
File    : loxrun/internal/host/host.go

Package host is the thin I/O boundary kept deliberately separate from the
core scan/parse/interpret pipeline: read a file to a string, and a
monotonic clock for the clock() native. Output and diagnostic lines do not
go through this package; the interpreter, diagnostics and REPL write them
straight to their io.Writer. Grounded on go-mix/main/main.go's
runFile (os.ReadFile + string conversion) and go-mix/file/file.go's
os.File wrapping, narrowed to exactly these operations — no
fopen/fseek/fread stateful file handles, since Lox has no construct to
expose them through.
*/
package host

import (
	"os"
	"time"
)

// ReadFile reads an entire source file into a string, the host operation
// the CLI driver's file mode calls before handing source text to the
// scanner.
func ReadFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// clockEpoch is the unspecified epoch Clock measures from (process start).
var clockEpoch = time.Now()

// Clock returns seconds elapsed since an unspecified epoch, as the
// clock() native requires: monotonic and suitable only for measuring
// elapsed time, never wall-clock date arithmetic.
func Clock() float64 {
	return time.Since(clockEpoch).Seconds()
}
