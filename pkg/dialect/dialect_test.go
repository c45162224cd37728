package dialect_test

import (
	"testing"

	"github.com/programmerjake/quick-shell/pkg/dialect"
)

func TestPresetsHaveTabSize(t *testing.T) {
	for name, cfg := range map[string]dialect.Config{
		"Posix":      dialect.Posix,
		"Bash":       dialect.Bash,
		"SecureBash": dialect.SecureBash,
		"QuickShell": dialect.QuickShell,
	} {
		if cfg.TabSize != dialect.DefaultTabSize {
			t.Errorf("%s.TabSize = %d, want %d", name, cfg.TabSize, dialect.DefaultTabSize)
		}
	}
}

func TestPosixIsStrictest(t *testing.T) {
	if dialect.Posix.AllowCRAsNewLine || dialect.Posix.AllowCRLFAsNewLine {
		t.Error("Posix should not recognize CR-based newlines")
	}
	if dialect.Posix.AllowDollarSingleQuoteStrings || dialect.Posix.AllowDollarDoubleQuoteStrings {
		t.Error("Posix should not allow dollar-prefixed quoting forms")
	}
}

func TestBashHasDuplicatedParsingFlaws(t *testing.T) {
	if !dialect.Bash.DuplicateDollarSingleQuoteStringBashParsingFlaws {
		t.Error("Bash should reproduce the documented $'...' parsing anomalies")
	}
	if dialect.SecureBash.DuplicateDollarSingleQuoteStringBashParsingFlaws {
		t.Error("SecureBash should not reproduce the $'...' parsing anomalies")
	}
}

func TestQuickShellRecognizesEveryNewlineSpelling(t *testing.T) {
	c := dialect.QuickShell
	if !c.AllowLFAsNewLine || !c.AllowCRAsNewLine || !c.AllowCRLFAsNewLine {
		t.Error("QuickShell should recognize LF, CR, and CRLF as newlines")
	}
	if !c.ErrorOnBackquoteEndingComment {
		t.Error("QuickShell should error on a backquote ending a comment")
	}
}
