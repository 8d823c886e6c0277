package scrollseq

import (
	"fmt"
	"io"
	"os"
)

// logOutput receives diagnostic lines. It is only written from the
// goroutine driving the sequence.
var logOutput io.Writer = os.Stderr

// SetLogOutput redirects diagnostic output. Passing nil restores stderr.
func SetLogOutput(w io.Writer) {
	if w == nil {
		w = os.Stderr
	}
	logOutput = w
}

func logf(format string, args ...any) {
	_, _ = fmt.Fprintf(logOutput, "[scrollseq] "+format+"\n", args...)
}
