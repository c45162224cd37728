package main

import (
	"io"

	"github.com/programmerjake/quick-shell/pkg/byteinput"
)

// openSource opens args[0] if given, else stdin, returning a diagnostic
// name, the Source to read from, whether EOF on it should be retried (only
// ever true for an interactive stdin), and a closer the caller should
// defer (nil for stdin, which main doesn't own).
func openSource(args []string) (name string, src byteinput.Source, retryAfterEOF bool, closer io.Closer, err error) {
	if len(args) > 0 {
		src, closer, err = byteinput.OpenFile(args[0])
		return args[0], src, false, closer, err
	}
	src, retryAfterEOF = byteinput.Stdin()
	return "<stdin>", src, retryAfterEOF, nil, nil
}
