// Package dialect holds the configuration knobs that change how the rest
// of this module tokenizes input, and the preset bundles of them named by
// spec.md §6.
package dialect

// Config selects which newline spellings, quoting forms, and bug
// compatibility behaviors are recognized. The zero Config recognizes no
// newline spelling at all, counts a tab as one column (TabSize 0), and
// allows none of the dollar-prefixed quoting forms.
type Config struct {
	AllowCRLFAsNewLine bool
	AllowCRAsNewLine   bool
	AllowLFAsNewLine   bool

	// TabSize is the tab stop width used for column computation. Zero
	// means a tab advances the column by exactly one, like any other byte.
	TabSize int

	AllowDollarSingleQuoteStrings                    bool
	DuplicateDollarSingleQuoteStringBashParsingFlaws bool

	AllowDollarDoubleQuoteStrings  bool
	SecureDollarDoubleQuoteStrings bool

	ErrorOnBackquoteEndingComment bool
}

// DefaultTabSize is the tab stop width used by every preset below.
const DefaultTabSize = 8

// Posix is the strictest dialect: LF-only newlines, no dollar-prefixed
// quoting, no bug compatibility.
var Posix = Config{
	AllowLFAsNewLine: true,
	TabSize:          DefaultTabSize,
}

// Bash recognizes LF newlines and both dollar-prefixed quoting forms, and
// reproduces the two documented bash $'...' parsing anomalies.
var Bash = Config{
	AllowLFAsNewLine: true,
	TabSize:          DefaultTabSize,
	AllowDollarSingleQuoteStrings:                    true,
	DuplicateDollarSingleQuoteStringBashParsingFlaws: true,
	AllowDollarDoubleQuoteStrings:                     true,
}

// SecureBash is Bash with the bug-compatible $'...' anomalies turned off
// and $"..." restricted against nested expansion, for use on untrusted
// input.
var SecureBash = Config{
	AllowLFAsNewLine:               true,
	TabSize:                        DefaultTabSize,
	AllowDollarSingleQuoteStrings:  true,
	AllowDollarDoubleQuoteStrings:  true,
	SecureDollarDoubleQuoteStrings: true,
}

// QuickShell is the most permissive preset: every newline spelling, both
// dollar-quoting forms in their secure form, and backquotes forbidden from
// ending a comment (since a comment swallowing an unterminated backquote
// would otherwise silently change where the next command starts).
var QuickShell = Config{
	AllowCRLFAsNewLine:             true,
	AllowCRAsNewLine:               true,
	AllowLFAsNewLine:               true,
	TabSize:                        DefaultTabSize,
	AllowDollarSingleQuoteStrings:  true,
	AllowDollarDoubleQuoteStrings:  true,
	SecureDollarDoubleQuoteStrings: true,
	ErrorOnBackquoteEndingComment:  true,
}
