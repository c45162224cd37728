package parse

import (
	"github.com/programmerjake/quick-shell/pkg/byteinput"
	"github.com/programmerjake/quick-shell/pkg/linecont"
	"github.com/programmerjake/quick-shell/pkg/textinput"
)

// assignmentOp distinguishes which operator terminated an assignment
// prefix scan.
type assignmentOp int

const (
	assignNone assignmentOp = iota
	assignEqual
	assignPlusEqual
)

// assignmentName bundles the span and decoded text of a recognized
// assignment name, including any verbatim bracketed subscript.
type assignmentName struct {
	span textinput.Span
	text string
}

// tryAssignmentPrefix attempts, once, to recognize `name=`, `name+=`, or
// `name[sub]=`/`name[sub]+=` at it's current position, per SPEC_FULL.md
// §5's assignment-prefix supplement. On failure it leaves it untouched and
// returns ok = false; it never partially consumes.
func (p *Parser) tryAssignmentPrefix(it *linecont.Iterator) (name assignmentName, op assignmentOp, opSpan textinput.Span, ok bool) {
	save := *it
	begin := it.Location()

	if !isNameStart(it.Value()) {
		return assignmentName{}, assignNone, textinput.Span{}, false
	}
	var buf []byte
	cursor := *it
	for isNameContinue(cursor.Value()) {
		buf = append(buf, byte(cursor.Value()))
		cursor = cursor.Next()
	}

	if cursor.Value() == '[' {
		if sub, next, ok2 := scanBalancedBrackets(cursor); ok2 {
			buf = append(buf, sub...)
			cursor = next
		}
	}

	opBegin := cursor.Location()
	switch cursor.Value() {
	case '=':
		*it = cursor.Next()
		return assignmentName{span: span(begin, opBegin), text: string(buf)},
			assignEqual, span(opBegin, it.Location()), true
	case '+':
		peek := cursor.Next()
		if peek.Value() == '=' {
			*it = peek.Next()
			return assignmentName{span: span(begin, opBegin), text: string(buf)},
				assignPlusEqual, span(opBegin, it.Location()), true
		}
	}

	*it = save
	return assignmentName{}, assignNone, textinput.Span{}, false
}

// scanBalancedBrackets scans a `[...]` subscript starting at it (which must
// sit on '['), allowing nested brackets, and returns the verbatim bytes
// (including both delimiters) and the iterator positioned just past the
// closing ']'. It never parses the subscript's interior.
func scanBalancedBrackets(it linecont.Iterator) ([]byte, linecont.Iterator, bool) {
	cursor := it
	var buf []byte
	depth := 0
	for {
		v := cursor.Value()
		switch v {
		case byteinput.EOF:
			return nil, it, false
		case '[':
			depth++
		case ']':
			depth--
		}
		buf = append(buf, byte(v))
		cursor = cursor.Next()
		if depth == 0 {
			return buf, cursor, true
		}
	}
}
