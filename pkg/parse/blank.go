package parse

import (
	"github.com/programmerjake/quick-shell/pkg/ast"
	"github.com/programmerjake/quick-shell/pkg/linecont"
)

// ParseBlank consumes a maximal run of one or more blank (space/tab) bytes,
// failing if it doesn't sit on at least one.
func (p *Parser) ParseBlank(it *linecont.Iterator) (*ast.Blank, error) {
	begin := it.Location()
	cursor := *it
	for isBlank(cursor) {
		cursor = cursor.Next()
	}
	if cursor.Location().Index == begin.Index {
		return nil, errorf(begin, "expected blank")
	}
	*it = cursor
	return p.Arena.NewBlank(span(begin, it.Location())), nil
}

// ParseBlankOrEmpty consumes a maximal run of zero or more blank bytes; it
// always succeeds, possibly with an empty span.
func (p *Parser) ParseBlankOrEmpty(it *linecont.Iterator) *ast.BlankOrEmpty {
	begin := it.Location()
	for isBlank(*it) {
		*it = it.Next()
	}
	return p.Arena.NewBlankOrEmpty(span(begin, it.Location()))
}
