package ast

// QuoteKind records which quoting form a WordPart appeared inside,
// grounded on original_source/ast/word_part.h's QuoteKind enum.
type QuoteKind int

const (
	Unquoted QuoteKind = iota
	SingleQuote
	DoubleQuote
	EscapeInterpretingSingleQuote // $'...'
	LocalizedDoubleQuote          // $"..."
)

func (q QuoteKind) String() string {
	switch q {
	case Unquoted:
		return "Unquoted"
	case SingleQuote:
		return "SingleQuote"
	case DoubleQuote:
		return "DoubleQuote"
	case EscapeInterpretingSingleQuote:
		return "EscapeInterpretingSingleQuote"
	case LocalizedDoubleQuote:
		return "LocalizedDoubleQuote"
	default:
		return "QuoteKind(?)"
	}
}

// Prefix returns the literal bytes that introduce this quoting form, e.g.
// "$'" for EscapeInterpretingSingleQuote.
func (q QuoteKind) Prefix() string {
	switch q {
	case SingleQuote:
		return "'"
	case DoubleQuote:
		return `"`
	case EscapeInterpretingSingleQuote:
		return "$'"
	case LocalizedDoubleQuote:
		return `$"`
	default:
		return ""
	}
}

// Suffix returns the literal byte that closes this quoting form.
func (q QuoteKind) Suffix() string {
	switch q {
	case SingleQuote, EscapeInterpretingSingleQuote:
		return "'"
	case DoubleQuote, LocalizedDoubleQuote:
		return `"`
	default:
		return ""
	}
}

// QuoteBoundary distinguishes the opening from the closing half of a
// QuoteWordPart.
type QuoteBoundary int

const (
	QuoteStart QuoteBoundary = iota
	QuoteStop
)

func (b QuoteBoundary) String() string {
	if b == QuoteStart {
		return "QuoteStart"
	}
	return "QuoteStop"
}
