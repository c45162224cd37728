package parse

import (
	"github.com/programmerjake/quick-shell/pkg/ast"
	"github.com/programmerjake/quick-shell/pkg/byteinput"
	"github.com/programmerjake/quick-shell/pkg/dialect"
	"github.com/programmerjake/quick-shell/pkg/linecont"
	"github.com/programmerjake/quick-shell/pkg/textinput"
)

// parseSingleQuoted parses a `'...'` region starting at it (which must sit
// on the opening `'`): no escapes are recognized inside, per spec.md §4.4.4.
// Per DESIGN.md's resolution of Open Question 2, the closing QuoteWordPart's
// span includes its own byte, symmetric with the opening one.
func (p *Parser) parseSingleQuoted(it *linecont.Iterator) ([]ast.WordPart, error) {
	openBegin := it.Location()
	*it = it.Next()
	openEnd := it.Location()
	parts := []ast.WordPart{p.Arena.NewQuoteWordPart(span(openBegin, openEnd), ast.SingleQuote, ast.QuoteStart)}

	bodyBegin := it.Location()
	var raw []byte
	for {
		v := it.Value()
		if v == byteinput.EOF {
			return nil, errorf(openBegin, "unterminated single-quoted string")
		}
		if v == '\'' {
			break
		}
		raw = append(raw, byte(v))
		*it = it.Next()
	}
	if len(raw) > 0 {
		parts = append(parts, p.Arena.NewTextWordPart(span(bodyBegin, it.Location()), ast.SingleQuote, raw))
	}

	closeBegin := it.Location()
	*it = it.Next()
	parts = append(parts, p.Arena.NewQuoteWordPart(span(closeBegin, it.Location()), ast.SingleQuote, ast.QuoteStop))
	return parts, nil
}

// parseDoubleQuoted parses a `"..."` region (quote == ast.DoubleQuote) or a
// `$"..."` localized region (quote == ast.LocalizedDoubleQuote) starting at
// it, which must sit on the opening `"`. Inside, only `\$`, `` \` ``, `\\`,
// and `\"` decode; any other `\X` pair is left as literal text, and
// `$`/backquote constructs dispatch to an ExpansionWordPart — except that
// when style.SecureDollarDoubleQuoteStrings is set and quote is
// LocalizedDoubleQuote, expansions are forbidden and treated as literal
// text instead (SPEC_FULL.md §5).
func (p *Parser) parseDoubleQuoted(it *linecont.Iterator, nestLevel int, quote ast.QuoteKind, style dialect.Config) ([]ast.WordPart, error) {
	return p.parseDoubleQuotedFrom(it.Location(), it, nestLevel, quote, style)
}

// parseDoubleQuotedFrom is parseDoubleQuoted with an explicit start location
// for the opening QuoteWordPart's span, so a `$"..."` caller can make the
// marker cover the '$' too, not just the '"'.
func (p *Parser) parseDoubleQuotedFrom(openBegin textinput.Location, it *linecont.Iterator, nestLevel int, quote ast.QuoteKind, style dialect.Config) ([]ast.WordPart, error) {
	*it = it.Next()
	parts := []ast.WordPart{p.Arena.NewQuoteWordPart(span(openBegin, it.Location()), quote, ast.QuoteStart)}

	forbidExpansion := quote == ast.LocalizedDoubleQuote && style.SecureDollarDoubleQuoteStrings

	for {
		v := it.Value()
		if v == byteinput.EOF {
			return nil, errorf(openBegin, "unterminated double-quoted string")
		}
		if v == '"' {
			break
		}
		switch {
		case v == '\\':
			part, err := p.parseDoubleQuoteEscape(it, quote)
			if err != nil {
				return nil, err
			}
			parts = append(parts, part)
		case (v == '$' || v == '`') && !forbidExpansion:
			part, err := p.parseExpansionIntroducer(it, nestLevel, quote)
			if err != nil {
				return nil, err
			}
			parts = append(parts, part)
		default:
			part, err := p.absorbDoubleQuoteRun(it, quote, forbidExpansion)
			if err != nil {
				return nil, err
			}
			parts = append(parts, part)
		}
	}

	closeBegin := it.Location()
	*it = it.Next()
	parts = append(parts, p.Arena.NewQuoteWordPart(span(closeBegin, it.Location()), quote, ast.QuoteStop))
	return parts, nil
}

// doubleQuoteEscapes is the limited decode set recognized inside "..." and
// $"...": everything else after a backslash is left as literal two-byte
// text (spec.md §4.4.4).
const doubleQuoteEscapes = `$` + "`" + `\"`

func (p *Parser) parseDoubleQuoteEscape(it *linecont.Iterator, quote ast.QuoteKind) (ast.WordPart, error) {
	begin := it.Location()
	cursor := it.Next()
	x := cursor.Value()
	if x == byteinput.EOF {
		return nil, errorf(begin, "unterminated double-quoted string")
	}
	if byteIn(x, doubleQuoteEscapes) {
		*it = cursor.Next()
		return p.Arena.NewSimpleEscapeSequenceWordPart(span(begin, it.Location()), quote, byte(x)), nil
	}
	*it = cursor.Next()
	return p.Arena.NewTextWordPart(span(begin, it.Location()), quote, []byte{'\\', byte(x)}), nil
}

// absorbDoubleQuoteRun consumes a maximal run of literal bytes inside a
// double-quoted region: anything but the closing quote, a backslash, or
// (unless expansion is forbidden) a `$`/backquote introducer.
func (p *Parser) absorbDoubleQuoteRun(it *linecont.Iterator, quote ast.QuoteKind, forbidExpansion bool) (ast.WordPart, error) {
	begin := it.Location()
	var raw []byte
	for {
		v := it.Value()
		if v == byteinput.EOF || v == '"' || v == '\\' {
			break
		}
		if (v == '$' || v == '`') && !forbidExpansion {
			break
		}
		raw = append(raw, byte(v))
		*it = it.Next()
	}
	if len(raw) == 0 {
		return nil, errorf(begin, "internal error: empty double-quote run")
	}
	return p.Arena.NewTextWordPart(span(begin, it.Location()), quote, raw), nil
}
