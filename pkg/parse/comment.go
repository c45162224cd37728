package parse

import (
	"github.com/programmerjake/quick-shell/pkg/ast"
	"github.com/programmerjake/quick-shell/pkg/byteinput"
	"github.com/programmerjake/quick-shell/pkg/dialect"
	"github.com/programmerjake/quick-shell/pkg/linecont"
)

// ParseComment consumes a `#` through the next recognized newline or EOF.
// nestLevel is the enclosing backquote nesting level; when it is >= 1 and
// the dialect's ErrorOnBackquoteEndingComment is set, a backquote inside
// the comment is an error rather than a silent comment terminator (spec.md
// §4.4.6).
func (p *Parser) ParseComment(it *linecont.Iterator, nestLevel int, style dialect.Config) (*ast.Comment, error) {
	begin := it.Location()
	if it.Value() != '#' {
		return nil, errorf(begin, "expected '#'")
	}
	cursor := it.Next()
	for {
		v := cursor.Value()
		if v == byteinput.EOF || isNewline(cursor) {
			break
		}
		if v == '`' && nestLevel >= 1 {
			if style.ErrorOnBackquoteEndingComment {
				return nil, errorf(cursor.Location(), "backquote not allowed inside comment")
			}
			break
		}
		cursor = cursor.Next()
	}
	*it = cursor
	return p.Arena.NewComment(span(begin, it.Location())), nil
}
