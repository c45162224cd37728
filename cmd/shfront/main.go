// Command shfront is a dump/diagnostic front end for this module's
// word/escape/comment parser: it only ever prints what was parsed, never
// executes it.
package main

import (
	"errors"
	"os"
)

func main() {
	os.Exit(run())
}

func run() int {
	if err := newRootCommand().Execute(); err != nil {
		if !errors.Is(err, errParseFailed) {
			logger.Error("command failed", "error", err)
		}
		return 1
	}
	return 0
}
