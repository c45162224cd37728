// Package ast defines the closed set of AST node types this module
// produces, grounded on spec.md §3 and original_source/ast/word_part.h.
package ast

import "github.com/programmerjake/quick-shell/pkg/textinput"

// WordPart is one contiguous, quote-tagged piece of a Word. The set of
// concrete implementations is closed: TextWordPart, QuoteWordPart, the four
// escape-sequence variants, BashBugEscapeSequenceWordPart, the three
// assignment-marker variants, ReservedWordPart, and ExpansionWordPart.
// Recovering a concrete type from a WordPart is a plain Go type assertion —
// the idiomatic equivalent of the checked downcast spec.md describes.
type WordPart interface {
	Span() textinput.Span
	QuoteKind() QuoteKind
}

// partHeader is embedded by every concrete WordPart to supply the Span and
// QuoteKind accessors.
type partHeader struct {
	span  textinput.Span
	quote QuoteKind
}

func (h partHeader) Span() textinput.Span { return h.span }
func (h partHeader) QuoteKind() QuoteKind { return h.quote }

func newHeader(span textinput.Span, quote QuoteKind) partHeader {
	return partHeader{span: span, quote: quote}
}

// TextWordPart is a run of literal bytes carrying no further structure:
// an unquoted bareword run, the interior of a single- or double-quoted
// string between escapes, or a byte sequence spec.md's regularized escape
// decoding leaves un-decoded (e.g. `\x` with no following hex digit).
type TextWordPart struct {
	partHeader
	Value []byte
}

// QuoteWordPart marks one byte (or, for $'...'/$"..." , two bytes) of
// quoting syntax itself: the opening or closing delimiter of a quoted
// region. Per spec.md's resolution of Open Question 2, the closing
// delimiter's span includes its own byte(s), symmetric with the opening
// delimiter.
type QuoteWordPart struct {
	partHeader
	Boundary QuoteBoundary
}

// SimpleEscapeSequenceWordPart is a backslash escape that decodes to
// exactly one byte: a $'...' table lookup (\a, \n, \\, \', ...) or control
// escape (\cX); in unquoted text, any `\X` pair; in double-quoted text,
// only a backslash before `$`, a backquote, `\`, or `"`.
type SimpleEscapeSequenceWordPart struct {
	partHeader
	Byte byte
}

// HexEscapeSequenceWordPart is a $'...' \xHH escape (1-2 hex digits).
type HexEscapeSequenceWordPart struct {
	partHeader
	Byte byte
}

// OctalEscapeSequenceWordPart is a $'...' \NNN escape (1-3 octal digits,
// low 8 bits kept).
type OctalEscapeSequenceWordPart struct {
	partHeader
	Byte byte
}

// UnicodeEscapeSequenceWordPart is a $'...' \uHHHH or \UHHHHHHHH escape,
// stored as the decoded code point; its UTF-8 encoding is produced on
// demand rather than duplicated here.
type UnicodeEscapeSequenceWordPart struct {
	partHeader
	CodePoint rune
}

// BashBugEscapeSequenceWordPart preserves, byte for byte, one of the two
// documented bash $'...' parsing anomalies (spec.md §4.4.5), reproduced
// only when DuplicateDollarSingleQuoteStringBashParsingFlaws is enabled.
type BashBugEscapeSequenceWordPart struct {
	partHeader
	Raw []byte
}

// AssignmentVariableNameWordPart is the name (and, if present, verbatim
// bracketed subscript — see SPEC_FULL.md §5) preceding an assignment
// operator in a word recognized as an assignment prefix.
type AssignmentVariableNameWordPart struct {
	partHeader
	Name string
}

// AssignmentEqualSignWordPart marks the `=` of a `name=value` assignment
// prefix.
type AssignmentEqualSignWordPart struct {
	partHeader
}

// AssignmentPlusEqualSignWordPart marks the `+=` of a `name+=value`
// assignment prefix.
type AssignmentPlusEqualSignWordPart struct {
	partHeader
}

// ReservedWordPart replaces a whole single-TextWordPart Word with its
// matching reserved word, once reserved-word fold-in is enabled and the
// text matches an entry in the reserved-word table exactly.
type ReservedWordPart struct {
	partHeader
	Word ReservedWord
}

// ExpansionKind distinguishes the different `$`- and backquote-introduced
// constructs an ExpansionWordPart can mark.
type ExpansionKind int

const (
	ExpansionVariable ExpansionKind = iota
	ExpansionCommandOrArithmeticParen
	ExpansionBackquote
)

func (k ExpansionKind) String() string {
	switch k {
	case ExpansionVariable:
		return "ExpansionVariable"
	case ExpansionCommandOrArithmeticParen:
		return "ExpansionCommandOrArithmeticParen"
	case ExpansionBackquote:
		return "ExpansionBackquote"
	default:
		return "ExpansionKind(?)"
	}
}

// ExpansionWordPart marks the syntactic presence of a `$name`, `${...}`,
// `$(...)`, or `` `...` `` construct without parsing or interpreting its
// interior — composition of these into full expansions is out of scope
// (see SPEC_FULL.md §5).
type ExpansionWordPart struct {
	partHeader
	Kind ExpansionKind
}
