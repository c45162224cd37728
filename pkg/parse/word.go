package parse

import (
	"github.com/programmerjake/quick-shell/pkg/ast"
	"github.com/programmerjake/quick-shell/pkg/byteinput"
	"github.com/programmerjake/quick-shell/pkg/dialect"
	"github.com/programmerjake/quick-shell/pkg/linecont"
)

// WordOptions configures one ParseWord call, matching the knobs spec.md
// §4.4.3 names for the word parser's Start state.
type WordOptions struct {
	// BackquoteNestLevel is how many enclosing backquote substitutions
	// this word is being parsed inside of; it changes where an unquoted
	// backquote counts as ending the word.
	BackquoteNestLevel int
	// CheckForVariableAssignment enables the one-shot assignment-prefix
	// scan (name=, name+=, name[sub]=) at the very start of the word.
	CheckForVariableAssignment bool
	// CheckForReservedWords enables reserved-word fold-in once the word
	// is complete.
	CheckForReservedWords bool
	// Style is the dialect governing quoting and escape decoding.
	Style dialect.Config
}

// ParseWord parses one Word starting at it, per the Start/Body state
// machine in spec.md §4.4.3.
func (p *Parser) ParseWord(it *linecont.Iterator, opts WordOptions) (*ast.Word, error) {
	begin := it.Location()
	if !isWordStartByte(*it, opts.BackquoteNestLevel) {
		return nil, errorf(begin, "missing word")
	}

	var parts []ast.WordPart

	if opts.CheckForVariableAssignment {
		if name, op, opSpan, ok := p.tryAssignmentPrefix(it); ok {
			parts = append(parts, p.Arena.NewAssignmentVariableNameWordPart(name.span, name.text))
			switch op {
			case assignEqual:
				parts = append(parts, p.Arena.NewAssignmentEqualSignWordPart(opSpan))
			case assignPlusEqual:
				parts = append(parts, p.Arena.NewAssignmentPlusEqualSignWordPart(opSpan))
			}
		}
	}

	for !isWordEnd(*it, opts.BackquoteNestLevel) {
		more, err := p.parseWordPartAt(it, opts)
		if err != nil {
			return nil, err
		}
		parts = append(parts, more...)
	}

	if len(parts) == 0 {
		return nil, errorf(begin, "missing word")
	}

	w := p.Arena.NewWord(span(begin, it.Location()), parts)
	if opts.CheckForReservedWords {
		foldReservedWord(p.Arena, w)
	}
	return w, nil
}

// foldReservedWord replaces w's single TextWordPart with a ReservedWordPart
// in place if w consists of exactly one unquoted TextWordPart whose text
// matches a reserved word exactly.
func foldReservedWord(arena *ast.Arena, w *ast.Word) {
	if len(w.Parts) != 1 {
		return
	}
	text, ok := w.Parts[0].(*ast.TextWordPart)
	if !ok || text.QuoteKind() != ast.Unquoted {
		return
	}
	if rw, ok := lookupReservedWord(string(text.Value)); ok {
		w.Parts[0] = arena.NewReservedWordPart(text.Span(), rw)
	}
}

// parseWordPartAt dispatches one step of the Body state, consuming at
// least one byte on success and returning the WordParts produced — zero
// (the \<EOF> word-terminating case), one, or several (a quoted region
// always produces at least its start and stop markers).
func (p *Parser) parseWordPartAt(it *linecont.Iterator, opts WordOptions) ([]ast.WordPart, error) {
	switch it.Value() {
	case '\\':
		part, err := p.parseUnquotedEscape(it)
		if err != nil || part == nil {
			return nil, err
		}
		return []ast.WordPart{part}, nil
	case '\'':
		return p.parseSingleQuoted(it)
	case '"':
		return p.parseDoubleQuoted(it, opts.BackquoteNestLevel, ast.DoubleQuote, opts.Style)
	case '$':
		parts, handled, err := p.tryDollarConstruct(it, opts)
		if err != nil {
			return nil, err
		}
		if handled {
			return parts, nil
		}
		part, err := p.absorbSimpleRun(it, opts.BackquoteNestLevel, ast.Unquoted)
		return []ast.WordPart{part}, err
	case '`':
		part, err := p.parseBackquoteExpansion(it, ast.Unquoted)
		if err != nil {
			return nil, err
		}
		return []ast.WordPart{part}, nil
	default:
		part, err := p.absorbSimpleRun(it, opts.BackquoteNestLevel, ast.Unquoted)
		if err != nil {
			return nil, err
		}
		return []ast.WordPart{part}, nil
	}
}

// absorbSimpleRun consumes a maximal run of simple word-continue bytes
// (which, per DESIGN.md, includes '#') into a single TextWordPart.
func (p *Parser) absorbSimpleRun(it *linecont.Iterator, nestLevel int, quote ast.QuoteKind) (ast.WordPart, error) {
	begin := it.Location()
	var raw []byte
	for isSimpleWordContinueByte(*it, nestLevel) {
		raw = append(raw, byte(it.Value()))
		*it = it.Next()
	}
	if len(raw) == 0 {
		// Reached only when the dispatching byte itself doesn't qualify —
		// '$' with an unrecognized construct, handled by falling through
		// to here with the '$' still unconsumed, or a '!', which the
		// default dispatch case sends here.
		raw = append(raw, byte(it.Value()))
		*it = it.Next()
	}
	return p.Arena.NewTextWordPart(span(begin, it.Location()), quote, raw), nil
}

// parseUnquotedEscape handles the unquoted `\X` escape: \<EOF> silently
// ends the word (no part is produced), anything else decodes to a single
// SimpleEscapeSequenceWordPart carrying the escaped byte verbatim.
func (p *Parser) parseUnquotedEscape(it *linecont.Iterator) (ast.WordPart, error) {
	begin := it.Location()
	cursor := it.Next()
	x := cursor.Value()
	if x == byteinput.EOF {
		*it = cursor
		return nil, nil
	}
	cursor = cursor.Next()
	*it = cursor
	return p.Arena.NewSimpleEscapeSequenceWordPart(span(begin, it.Location()), ast.Unquoted, byte(x)), nil
}
