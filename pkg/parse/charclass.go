package parse

import (
	"github.com/programmerjake/quick-shell/pkg/byteinput"
	"github.com/programmerjake/quick-shell/pkg/linecont"
)

// metacharacterBytes holds the punctuation metacharacters; blanks and
// newlines are metacharacters too but are recognized separately since
// newline recognition is dialect-dependent.
const metacharacterBytes = "|&;()<>"

// isBlank reports whether it sits on a space or tab.
func isBlank(it linecont.Iterator) bool {
	v := it.Value()
	return v == ' ' || v == '\t'
}

// isNewline reports whether it sits on a byte sequence the current dialect
// recognizes as a newline, without consuming it.
func isNewline(it linecont.Iterator) bool {
	base := it.BaseIterator()
	return base.In().NewlineLength(base.Index()) > 0
}

// isMetacharacter reports whether it sits on a metacharacter: one of
// metacharacterBytes, a blank, or a recognized newline.
func isMetacharacter(it linecont.Iterator) bool {
	if byteIn(it.Value(), metacharacterBytes) {
		return true
	}
	if isBlank(it) {
		return true
	}
	return isNewline(it)
}

// isMetacharacterOrEOF reports whether it sits on a metacharacter or EOF.
func isMetacharacterOrEOF(it linecont.Iterator) bool {
	return it.Value() == byteinput.EOF || isMetacharacter(it)
}

// isWordEnd reports whether it marks the end of an unquoted word: EOF, a
// metacharacter, or (inside a backquote substitution, nestLevel >= 1) an
// unescaped backquote.
func isWordEnd(it linecont.Iterator, nestLevel int) bool {
	if nestLevel >= 1 && it.Value() == '`' {
		return true
	}
	return isMetacharacterOrEOF(it)
}

// isNameStart reports whether b can start a shell variable/assignment
// name: a letter or underscore.
func isNameStart(v int) bool {
	return v == '_' || (v >= 'a' && v <= 'z') || (v >= 'A' && v <= 'Z')
}

// isNameContinue reports whether b can continue a name once started.
func isNameContinue(v int) bool {
	return isNameStart(v) || (v >= '0' && v <= '9')
}

// isSimpleWordContinueByte reports whether it sits on a byte that belongs
// to an ordinary (non-quoted, non-escape, non-expansion) run of word text:
// not whitespace/EOF/a metacharacter/backquote-at-level, and none of the
// bytes that introduce a quote, escape, or expansion. As resolved in
// DESIGN.md, this (the "continue" set, which admits '#') is used both to
// decide whether the Body state should begin absorbing a plain run and how
// far that run extends, since a '#' can never be the very first byte of a
// whole word (the Start state rejects it) but is ordinary once a word is
// already underway.
func isSimpleWordContinueByte(it linecont.Iterator, nestLevel int) bool {
	switch it.Value() {
	case '\'', '"', '!', '$', '`', '\\':
		return false
	}
	return !isWordEnd(it, nestLevel)
}

// isWordStartByte reports whether v can legally start a whole word: any
// simple word-continue byte, or one of the quote/escape/expansion/negation
// introducers. '#' is deliberately excluded: a word can never begin with a
// bare comment introducer.
func isWordStartByte(it linecont.Iterator, nestLevel int) bool {
	switch it.Value() {
	case '\'', '"', '$', '\\', '!':
		return true
	case '#':
		return false
	case '`':
		return nestLevel == 0
	}
	return isSimpleWordContinueByte(it, nestLevel)
}
