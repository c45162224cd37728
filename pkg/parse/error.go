package parse

import (
	"fmt"

	"github.com/programmerjake/quick-shell/pkg/textinput"
)

// Error is the one error a parse primitive can produce: a single location
// plus a message, formatted "name:line:column: message" (spec.md §6).
// Unlike elves-posixsh's Error, which accumulates a slice of ErrorEntry
// across an entire parse, each call here stops at its first Error — per
// spec.md §7, one error aborts the current top-level command, and
// recovering to try the next one is future work.
type Error struct {
	Location textinput.Location
	Message  string
}

func (e *Error) Error() string {
	return e.Location.String() + ": " + e.Message
}

func errorf(loc textinput.Location, format string, args ...interface{}) *Error {
	return &Error{Location: loc, Message: fmt.Sprintf(format, args...)}
}
