package ast

// ReservedWord enumerates the shell reserved words a Word's sole
// TextWordPart can fold into. Built correctly via a sorted table (see
// pkg/parse/reserved.go), unlike the hand-written lookup in
// original_source/parser/parser.h, which contains a copy-paste bug mapping
// "while" to the "until" kind — not reproduced here (see SPEC_FULL.md §5).
type ReservedWord int

const (
	ReservedExclamation ReservedWord = iota
	ReservedLBrace
	ReservedRBrace
	ReservedDoubleLBracket
	ReservedDoubleRBracket
	ReservedCase
	ReservedCoproc
	ReservedDo
	ReservedDone
	ReservedElif
	ReservedElse
	ReservedEsac
	ReservedFi
	ReservedFor
	ReservedFunction
	ReservedIf
	ReservedIn
	ReservedSelect
	ReservedThen
	ReservedTime
	ReservedUntil
	ReservedWhile
)

func (r ReservedWord) String() string {
	switch r {
	case ReservedExclamation:
		return "!"
	case ReservedLBrace:
		return "{"
	case ReservedRBrace:
		return "}"
	case ReservedDoubleLBracket:
		return "[["
	case ReservedDoubleRBracket:
		return "]]"
	case ReservedCase:
		return "case"
	case ReservedCoproc:
		return "coproc"
	case ReservedDo:
		return "do"
	case ReservedDone:
		return "done"
	case ReservedElif:
		return "elif"
	case ReservedElse:
		return "else"
	case ReservedEsac:
		return "esac"
	case ReservedFi:
		return "fi"
	case ReservedFor:
		return "for"
	case ReservedFunction:
		return "function"
	case ReservedIf:
		return "if"
	case ReservedIn:
		return "in"
	case ReservedSelect:
		return "select"
	case ReservedThen:
		return "then"
	case ReservedTime:
		return "time"
	case ReservedUntil:
		return "until"
	case ReservedWhile:
		return "while"
	default:
		return "ReservedWord(?)"
	}
}
