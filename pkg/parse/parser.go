// Package parse implements the word/escape/comment parsing primitives of
// spec.md §4.4, on top of pkg/linecont and pkg/ast. Composition into
// commands, pipelines, and redirections is out of scope (see
// SPEC_FULL.md §6).
package parse

import (
	"github.com/programmerjake/quick-shell/pkg/ast"
	"github.com/programmerjake/quick-shell/pkg/textinput"
)

// Parser holds the mutable state primitives share: a borrowed Arena to
// allocate nodes from. The backquote nesting level is not stored here;
// callers pass it explicitly (WordOptions.BackquoteNestLevel, ParseComment's
// nestLevel). It does not own a cursor itself — every primitive takes
// and (on success) advances a *linecont.Iterator explicitly, following
// elves-posixsh's own convention of passing a *parser by value through the
// grammar rather than hiding cursor movement inside method receivers.
type Parser struct {
	Arena *ast.Arena
}

// NewParser creates a Parser allocating nodes out of arena.
func NewParser(arena *ast.Arena) *Parser {
	return &Parser{Arena: arena}
}

func span(begin, end textinput.Location) textinput.Span {
	return textinput.Span{Input: begin.Input, Begin: begin.Index, End: end.Index}
}
