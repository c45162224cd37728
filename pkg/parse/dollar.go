package parse

import (
	"github.com/programmerjake/quick-shell/pkg/ast"
	"github.com/programmerjake/quick-shell/pkg/byteinput"
	"github.com/programmerjake/quick-shell/pkg/linecont"
)

// tryDollarConstruct looks at it (which must sit on '$') and decides what,
// if anything, it introduces. handled is false when '$' turns out to be
// ordinary text (EOF, a metacharacter, or any byte that isn't one of the
// recognized introducers follows it), in which case it is left untouched
// and the caller absorbs '$' itself as a plain run.
func (p *Parser) tryDollarConstruct(it *linecont.Iterator, opts WordOptions) ([]ast.WordPart, bool, error) {
	next := it.Next()
	switch next.Value() {
	case '\'':
		if !opts.Style.AllowDollarSingleQuoteStrings {
			return nil, false, nil
		}
		parts, err := p.parseDollarSingleQuote(it, opts.Style)
		return parts, true, err
	case '"':
		if !opts.Style.AllowDollarDoubleQuoteStrings {
			return nil, false, nil
		}
		dollarBegin := it.Location()
		*it = next
		parts, err := p.parseDoubleQuotedFrom(dollarBegin, it, opts.BackquoteNestLevel, ast.LocalizedDoubleQuote, opts.Style)
		return parts, true, err
	}
	if !isExpansionIntroducerByte(next.Value()) {
		return nil, false, nil
	}
	part, err := p.parseDollarExpansion(it, ast.Unquoted)
	if err != nil {
		return nil, false, err
	}
	return []ast.WordPart{part}, true, nil
}

// parseExpansionIntroducer is tryDollarConstruct's counterpart for use
// inside a double-quoted region (quote is DoubleQuote or
// LocalizedDoubleQuote): it is always "handled", since inside quotes an
// unrecognized '$' is simply literal text rather than something the outer
// word parser needs to absorb separately.
func (p *Parser) parseExpansionIntroducer(it *linecont.Iterator, nestLevel int, quote ast.QuoteKind) (ast.WordPart, error) {
	if it.Value() == '`' {
		return p.parseBackquoteExpansion(it, quote)
	}
	begin := it.Location()
	next := it.Next()
	if !isExpansionIntroducerByte(next.Value()) {
		*it = next
		return p.Arena.NewTextWordPart(span(begin, it.Location()), quote, []byte{'$'}), nil
	}
	return p.parseDollarExpansion(it, quote)
}

// specialParameterBytes holds the single-character parameter names that,
// unlike an ordinary variable name, are exactly one byte long.
const specialParameterBytes = "@*#?-$!0123456789"

func isExpansionIntroducerByte(v int) bool {
	if v == '{' || v == '(' {
		return true
	}
	if isNameStart(v) {
		return true
	}
	return byteIn(v, specialParameterBytes)
}

// parseDollarExpansion scans a `$name`, `$N` (single-char special
// parameter), `${...}`, or `$(...)`/`$((...))` construct starting at it
// (which must sit on '$'), recording only its span and kind as an
// ExpansionWordPart — never parsing or interpreting what's inside, per
// SPEC_FULL.md §5.
func (p *Parser) parseDollarExpansion(it *linecont.Iterator, quote ast.QuoteKind) (ast.WordPart, error) {
	begin := it.Location()
	cursor := it.Next()
	kind := ast.ExpansionVariable

	switch {
	case cursor.Value() == '{':
		end, ok := scanBalancedPair(cursor, '{', '}')
		if !ok {
			return nil, errorf(begin, "unterminated ${...}")
		}
		cursor = end
	case cursor.Value() == '(':
		end, ok := scanBalancedPair(cursor, '(', ')')
		if !ok {
			return nil, errorf(begin, "unterminated $(...)")
		}
		cursor = end
		kind = ast.ExpansionCommandOrArithmeticParen
	case isNameStart(cursor.Value()):
		for isNameContinue(cursor.Value()) {
			cursor = cursor.Next()
		}
	default:
		// a single-character special parameter, e.g. $@, $?, $1
		cursor = cursor.Next()
	}

	*it = cursor
	return p.Arena.NewExpansionWordPart(span(begin, it.Location()), quote, kind), nil
}

// scanBalancedPair scans from it (which must sit on open) to just past its
// matching close, honoring nesting, and returns the iterator positioned
// there. It does not special-case quotes or escapes inside: a `)` inside a
// quoted string within $(...)  is out of scope here, same as the rest of
// an ExpansionWordPart's interior.
func scanBalancedPair(it linecont.Iterator, open, close int) (linecont.Iterator, bool) {
	cursor := it
	depth := 0
	for {
		switch cursor.Value() {
		case byteinput.EOF:
			return it, false
		case open:
			depth++
		case close:
			depth--
		}
		cursor = cursor.Next()
		if depth == 0 {
			return cursor, true
		}
	}
}
