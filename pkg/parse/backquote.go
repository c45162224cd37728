package parse

import (
	"github.com/programmerjake/quick-shell/pkg/ast"
	"github.com/programmerjake/quick-shell/pkg/byteinput"
	"github.com/programmerjake/quick-shell/pkg/linecont"
)

// parseBackquoteExpansion scans an old-style `` `...` `` command
// substitution starting at it (which must sit on the opening backquote),
// recording only its span as an ExpansionWordPart — never parsing its
// interior. Per POSIX's rule for old-style substitution, inside the
// backquotes a backslash keeps its escaping meaning only before another
// backquote, a backslash, or a dollar sign; those pairs are skipped over
// rather than treated as the closing delimiter.
func (p *Parser) parseBackquoteExpansion(it *linecont.Iterator, quote ast.QuoteKind) (ast.WordPart, error) {
	begin := it.Location()
	cursor := it.Next()
	for {
		switch cursor.Value() {
		case byteinput.EOF:
			return nil, errorf(begin, "unterminated backquote substitution")
		case '`':
			cursor = cursor.Next()
			*it = cursor
			return p.Arena.NewExpansionWordPart(span(begin, it.Location()), quote, ast.ExpansionBackquote), nil
		case '\\':
			peek := cursor.Next()
			if byteIn(peek.Value(), "`\\$") {
				cursor = peek.Next()
				continue
			}
			cursor = peek
		default:
			cursor = cursor.Next()
		}
	}
}
