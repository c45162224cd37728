package ast_test

import (
	"testing"

	"github.com/programmerjake/quick-shell/pkg/ast"
)

func TestQuoteKindPrefixSuffix(t *testing.T) {
	tests := []struct {
		kind       ast.QuoteKind
		wantPrefix string
		wantSuffix string
	}{
		{ast.Unquoted, "", ""},
		{ast.SingleQuote, "'", "'"},
		{ast.DoubleQuote, `"`, `"`},
		{ast.EscapeInterpretingSingleQuote, "$'", "'"},
		{ast.LocalizedDoubleQuote, `$"`, `"`},
	}
	for _, tt := range tests {
		if got := tt.kind.Prefix(); got != tt.wantPrefix {
			t.Errorf("%v.Prefix() = %q, want %q", tt.kind, got, tt.wantPrefix)
		}
		if got := tt.kind.Suffix(); got != tt.wantSuffix {
			t.Errorf("%v.Suffix() = %q, want %q", tt.kind, got, tt.wantSuffix)
		}
	}
}

func TestQuoteKindString(t *testing.T) {
	if got, want := ast.DoubleQuote.String(), "DoubleQuote"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
	if got, want := ast.QuoteKind(99).String(), "QuoteKind(?)"; got != want {
		t.Errorf("String() on unknown value = %q, want %q", got, want)
	}
}

func TestQuoteBoundaryString(t *testing.T) {
	if got, want := ast.QuoteStart.String(), "QuoteStart"; got != want {
		t.Errorf("QuoteStart.String() = %q, want %q", got, want)
	}
	if got, want := ast.QuoteStop.String(), "QuoteStop"; got != want {
		t.Errorf("QuoteStop.String() = %q, want %q", got, want)
	}
}
