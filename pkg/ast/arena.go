package ast

import (
	"github.com/programmerjake/quick-shell/pkg/arena"
	"github.com/programmerjake/quick-shell/pkg/textinput"
)

// Arena is the bulk owner of every AST node produced while parsing one
// chunk of input. It composes one arena.Arena per concrete node type,
// grounded on the typed-sub-arena composition seen in the wider example
// pack's own AST allocators: allocating each concrete type out of its own
// homogeneous arena keeps allocation cache-friendly and needs no interface
// boxing, unlike a single arena.Arena[WordPart] would.
//
// Every New* method returns a *T: a non-owning pointer into storage this
// Arena owns, valid for as long as the Arena itself is reachable. Reset
// drops all of it at once, the Go analogue of the original's bulk arena
// teardown.
type Arena struct {
	words         arena.Arena[Word]
	textParts     arena.Arena[TextWordPart]
	quoteParts    arena.Arena[QuoteWordPart]
	simpleEscapes arena.Arena[SimpleEscapeSequenceWordPart]
	hexEscapes    arena.Arena[HexEscapeSequenceWordPart]
	octalEscapes  arena.Arena[OctalEscapeSequenceWordPart]
	unicodeEscape arena.Arena[UnicodeEscapeSequenceWordPart]
	bashBugs      arena.Arena[BashBugEscapeSequenceWordPart]
	assignNames   arena.Arena[AssignmentVariableNameWordPart]
	assignEquals  arena.Arena[AssignmentEqualSignWordPart]
	assignPlusEq  arena.Arena[AssignmentPlusEqualSignWordPart]
	reservedWords arena.Arena[ReservedWordPart]
	expansions    arena.Arena[ExpansionWordPart]
	blanks        arena.Arena[Blank]
	blankOrEmpty  arena.Arena[BlankOrEmpty]
	comments      arena.Arena[Comment]
}

// NewArena creates an empty Arena.
func NewArena() *Arena {
	return &Arena{
		words:         *arena.New[Word](64),
		textParts:     *arena.New[TextWordPart](256),
		quoteParts:    *arena.New[QuoteWordPart](128),
		simpleEscapes: *arena.New[SimpleEscapeSequenceWordPart](64),
		hexEscapes:    *arena.New[HexEscapeSequenceWordPart](16),
		octalEscapes:  *arena.New[OctalEscapeSequenceWordPart](16),
		unicodeEscape: *arena.New[UnicodeEscapeSequenceWordPart](16),
		bashBugs:      *arena.New[BashBugEscapeSequenceWordPart](4),
		assignNames:   *arena.New[AssignmentVariableNameWordPart](32),
		assignEquals:  *arena.New[AssignmentEqualSignWordPart](32),
		assignPlusEq:  *arena.New[AssignmentPlusEqualSignWordPart](8),
		reservedWords: *arena.New[ReservedWordPart](32),
		expansions:    *arena.New[ExpansionWordPart](64),
		blanks:        *arena.New[Blank](128),
		blankOrEmpty:  *arena.New[BlankOrEmpty](128),
		comments:      *arena.New[Comment](16),
	}
}

// Reset drops every node this Arena owns, for reuse across, e.g., REPL
// iterations. Pointers previously handed out must not be used afterward.
func (a *Arena) Reset() {
	*a = *NewArena()
}

func (a *Arena) NewWord(span textinput.Span, parts []WordPart) *Word {
	return a.words.Allocate(Word{span: span, Parts: parts})
}

func (a *Arena) NewTextWordPart(span textinput.Span, quote QuoteKind, value []byte) *TextWordPart {
	return a.textParts.Allocate(TextWordPart{partHeader: newHeader(span, quote), Value: value})
}

func (a *Arena) NewQuoteWordPart(span textinput.Span, quote QuoteKind, boundary QuoteBoundary) *QuoteWordPart {
	return a.quoteParts.Allocate(QuoteWordPart{partHeader: newHeader(span, quote), Boundary: boundary})
}

func (a *Arena) NewSimpleEscapeSequenceWordPart(span textinput.Span, quote QuoteKind, b byte) *SimpleEscapeSequenceWordPart {
	return a.simpleEscapes.Allocate(SimpleEscapeSequenceWordPart{partHeader: newHeader(span, quote), Byte: b})
}

func (a *Arena) NewHexEscapeSequenceWordPart(span textinput.Span, b byte) *HexEscapeSequenceWordPart {
	return a.hexEscapes.Allocate(HexEscapeSequenceWordPart{partHeader: newHeader(span, EscapeInterpretingSingleQuote), Byte: b})
}

func (a *Arena) NewOctalEscapeSequenceWordPart(span textinput.Span, b byte) *OctalEscapeSequenceWordPart {
	return a.octalEscapes.Allocate(OctalEscapeSequenceWordPart{partHeader: newHeader(span, EscapeInterpretingSingleQuote), Byte: b})
}

func (a *Arena) NewUnicodeEscapeSequenceWordPart(span textinput.Span, cp rune) *UnicodeEscapeSequenceWordPart {
	return a.unicodeEscape.Allocate(UnicodeEscapeSequenceWordPart{partHeader: newHeader(span, EscapeInterpretingSingleQuote), CodePoint: cp})
}

func (a *Arena) NewBashBugEscapeSequenceWordPart(span textinput.Span, raw []byte) *BashBugEscapeSequenceWordPart {
	return a.bashBugs.Allocate(BashBugEscapeSequenceWordPart{partHeader: newHeader(span, EscapeInterpretingSingleQuote), Raw: raw})
}

func (a *Arena) NewAssignmentVariableNameWordPart(span textinput.Span, name string) *AssignmentVariableNameWordPart {
	return a.assignNames.Allocate(AssignmentVariableNameWordPart{partHeader: newHeader(span, Unquoted), Name: name})
}

func (a *Arena) NewAssignmentEqualSignWordPart(span textinput.Span) *AssignmentEqualSignWordPart {
	return a.assignEquals.Allocate(AssignmentEqualSignWordPart{partHeader: newHeader(span, Unquoted)})
}

func (a *Arena) NewAssignmentPlusEqualSignWordPart(span textinput.Span) *AssignmentPlusEqualSignWordPart {
	return a.assignPlusEq.Allocate(AssignmentPlusEqualSignWordPart{partHeader: newHeader(span, Unquoted)})
}

func (a *Arena) NewReservedWordPart(span textinput.Span, word ReservedWord) *ReservedWordPart {
	return a.reservedWords.Allocate(ReservedWordPart{partHeader: newHeader(span, Unquoted), Word: word})
}

func (a *Arena) NewExpansionWordPart(span textinput.Span, quote QuoteKind, kind ExpansionKind) *ExpansionWordPart {
	return a.expansions.Allocate(ExpansionWordPart{partHeader: newHeader(span, quote), Kind: kind})
}

func (a *Arena) NewBlank(span textinput.Span) *Blank {
	return a.blanks.Allocate(Blank{span: span})
}

func (a *Arena) NewBlankOrEmpty(span textinput.Span) *BlankOrEmpty {
	return a.blankOrEmpty.Allocate(BlankOrEmpty{span: span})
}

func (a *Arena) NewComment(span textinput.Span) *Comment {
	return a.comments.Allocate(Comment{span: span})
}
