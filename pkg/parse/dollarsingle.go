package parse

import (
	"github.com/programmerjake/quick-shell/pkg/ast"
	"github.com/programmerjake/quick-shell/pkg/byteinput"
	"github.com/programmerjake/quick-shell/pkg/dialect"
	"github.com/programmerjake/quick-shell/pkg/linecont"
	"github.com/programmerjake/quick-shell/pkg/textinput"
)

// dollarSingleSimpleEscapes maps a `$'...'` escape letter directly to its
// decoded byte, covering both the C-style control escapes and the
// backslash-quoted punctuation.
var dollarSingleSimpleEscapes = map[byte]byte{
	'a': 0x07, 'b': 0x08, 'e': 0x1B, 'E': 0x1B, 'f': 0x0C,
	'n': 0x0A, 'r': 0x0D, 't': 0x09, 'v': 0x0B,
	'\\': '\\', '\'': '\'', '"': '"', '?': '?',
}

// parseDollarSingleQuote parses a `$'...'` ANSI-C-style quoted string
// starting at it (which must sit on '$'). Per spec.md §4.4.5, the escape
// decoding inside `$'...'` bypasses line-continuation splicing entirely and
// drives the raw textinput.Iterator directly — a backslash-newline inside
// $'...' is not a splice, it is (depending on what follows 'n' et al.) just
// two more raw bytes to classify.
func (p *Parser) parseDollarSingleQuote(it *linecont.Iterator, style dialect.Config) ([]ast.WordPart, error) {
	dollarBegin := it.Location()
	afterDollar := it.Next() // logically on the opening '\'', splicing already resolved
	raw := afterDollar.BaseIterator().Next()
	openEnd := raw.Location()
	parts := []ast.WordPart{
		p.Arena.NewQuoteWordPart(span(dollarBegin, openEnd), ast.EscapeInterpretingSingleQuote, ast.QuoteStart),
	}

	bodyBegin := raw.Location()
	var run []byte
	flushRun := func() {
		if len(run) > 0 {
			parts = append(parts, p.Arena.NewTextWordPart(span(bodyBegin, raw.Location()), ast.EscapeInterpretingSingleQuote, run))
			run = nil
		}
	}

	for {
		v := raw.Value()
		if v == byteinput.EOF {
			return nil, errorf(dollarBegin, "unterminated $'...' string")
		}
		if v == '\'' {
			flushRun()
			break
		}
		if v != '\\' {
			run = append(run, byte(v))
			raw = raw.Next()
			continue
		}
		flushRun()
		part, next, err := p.decodeDollarSingleEscape(raw, style)
		if err != nil {
			return nil, err
		}
		parts = append(parts, part)
		raw = next
		bodyBegin = raw.Location()
	}

	closeBegin := raw.Location()
	raw = raw.Next()
	parts = append(parts, p.Arena.NewQuoteWordPart(span(closeBegin, raw.Location()), ast.EscapeInterpretingSingleQuote, ast.QuoteStop))
	*it = linecont.New(raw)
	return parts, nil
}

// decodeDollarSingleEscape decodes one `\...` escape inside $'...' starting
// at it (which must sit on the backslash), returning the WordPart it
// decodes to and the iterator positioned just past it.
func (p *Parser) decodeDollarSingleEscape(it textinput.Iterator, style dialect.Config) (ast.WordPart, textinput.Iterator, error) {
	arena := p.Arena
	begin := it.Location()
	cursor := it.Next()
	x := cursor.Value()

	if style.DuplicateDollarSingleQuoteStringBashParsingFlaws && x == 0x01 {
		end := cursor.Next()
		return arena.NewBashBugEscapeSequenceWordPart(span(begin, end.Location()), []byte{'\\', 0x01}), end, nil
	}

	if b, ok := dollarSingleSimpleEscapes[byte(x)]; x != byteinput.EOF && ok {
		end := cursor.Next()
		return arena.NewSimpleEscapeSequenceWordPart(span(begin, end.Location()), ast.EscapeInterpretingSingleQuote, b), end, nil
	}

	switch x {
	case 'x':
		value, count, after := scanRawHex(cursor.Next(), 1, 2)
		if count == 0 {
			return arena.NewTextWordPart(span(begin, cursor.Next().Location()), ast.EscapeInterpretingSingleQuote, []byte("\\x")), cursor.Next(), nil
		}
		return arena.NewHexEscapeSequenceWordPart(span(begin, after.Location()), byte(value)), after, nil
	case '0', '1', '2', '3', '4', '5', '6', '7':
		value, _, after := scanRawOctal(cursor, 1, 3)
		return arena.NewOctalEscapeSequenceWordPart(span(begin, after.Location()), byte(value)), after, nil
	case 'u':
		value, count, after := scanRawHex(cursor.Next(), 1, 4)
		if count == 0 {
			return arena.NewTextWordPart(span(begin, cursor.Next().Location()), ast.EscapeInterpretingSingleQuote, []byte("\\u")), cursor.Next(), nil
		}
		return arena.NewUnicodeEscapeSequenceWordPart(span(begin, after.Location()), rune(value)), after, nil
	case 'U':
		value, count, after := scanRawHex(cursor.Next(), 1, 8)
		if count == 0 {
			return arena.NewTextWordPart(span(begin, cursor.Next().Location()), ast.EscapeInterpretingSingleQuote, []byte("\\U")), cursor.Next(), nil
		}
		return arena.NewUnicodeEscapeSequenceWordPart(span(begin, after.Location()), rune(value)), after, nil
	case 'c':
		ctrl := cursor.Next()
		cv := ctrl.Value()
		if style.DuplicateDollarSingleQuoteStringBashParsingFlaws && cv == 0x01 {
			second := ctrl.Next()
			if second.Value() == 0x01 {
				end := second.Next()
				return arena.NewBashBugEscapeSequenceWordPart(span(begin, end.Location()), []byte{'\\', 'c', 0x01, 0x01}), end, nil
			}
		}
		if cv == byteinput.EOF || cv == '\'' {
			return arena.NewTextWordPart(span(begin, ctrl.Location()), ast.EscapeInterpretingSingleQuote, []byte("\\c")), ctrl, nil
		}
		end := ctrl.Next()
		return arena.NewSimpleEscapeSequenceWordPart(span(begin, end.Location()), ast.EscapeInterpretingSingleQuote, byte(cv)&0x1F), end, nil
	}

	if x == byteinput.EOF {
		return arena.NewTextWordPart(span(begin, cursor.Location()), ast.EscapeInterpretingSingleQuote, []byte("\\")), cursor, nil
	}
	end := cursor.Next()
	return arena.NewTextWordPart(span(begin, end.Location()), ast.EscapeInterpretingSingleQuote, []byte{'\\', byte(x)}), end, nil
}

// scanRawHex scans between minDigits and maxDigits hex digits starting at
// it, returning the accumulated value, how many digits were read, and the
// iterator positioned just past them.
func scanRawHex(it textinput.Iterator, minDigits, maxDigits int) (value int, count int, after textinput.Iterator) {
	return scanRawDigits(it, 16, minDigits, maxDigits)
}

func scanRawOctal(it textinput.Iterator, minDigits, maxDigits int) (value int, count int, after textinput.Iterator) {
	return scanRawDigits(it, 8, minDigits, maxDigits)
}

func scanRawDigits(it textinput.Iterator, base, minDigits, maxDigits int) (value int, count int, after textinput.Iterator) {
	cursor := it
	for count < maxDigits {
		d, ok := digitValue(cursor.Value(), base)
		if !ok {
			break
		}
		value = value*base + d
		cursor = cursor.Next()
		count++
	}
	if count < minDigits {
		return 0, 0, it
	}
	return value, count, cursor
}
