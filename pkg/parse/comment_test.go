package parse_test

import (
	"testing"

	"github.com/programmerjake/quick-shell/pkg/ast"
	"github.com/programmerjake/quick-shell/pkg/dialect"
	"github.com/programmerjake/quick-shell/pkg/parse"
)

func TestParseCommentStopsAtNewline(t *testing.T) {
	arena := ast.NewArena()
	p := parse.NewParser(arena)
	it := newIterator("# a comment\nnext", dialect.QuickShell)
	c, err := p.ParseComment(&it, 0, dialect.QuickShell)
	if err != nil {
		t.Fatalf("ParseComment error: %v", err)
	}
	if got, want := c.Span().Begin, 0; got != want {
		t.Errorf("span begin = %d, want %d", got, want)
	}
	if got, want := c.Span().End, len("# a comment"); got != want {
		t.Errorf("span end = %d, want %d", got, want)
	}
}

func TestParseCommentRunsToEOF(t *testing.T) {
	arena := ast.NewArena()
	p := parse.NewParser(arena)
	it := newIterator("# no newline here", dialect.QuickShell)
	c, err := p.ParseComment(&it, 0, dialect.QuickShell)
	if err != nil {
		t.Fatalf("ParseComment error: %v", err)
	}
	if got, want := c.Span().End, len("# no newline here"); got != want {
		t.Errorf("span end = %d, want %d", got, want)
	}
}

func TestParseCommentBackquoteEndsCommentWhenNotErroring(t *testing.T) {
	arena := ast.NewArena()
	p := parse.NewParser(arena)
	style := dialect.Bash // ErrorOnBackquoteEndingComment is false
	it := newIterator("# hi `cmd`\nnext", style)
	c, err := p.ParseComment(&it, 1, style)
	if err != nil {
		t.Fatalf("ParseComment error: %v", err)
	}
	if got, want := c.Span().End, len("# hi "); got != want {
		t.Errorf("span end = %d, want %d", got, want)
	}
}

func TestParseCommentBackquoteErrorsWhenConfigured(t *testing.T) {
	arena := ast.NewArena()
	p := parse.NewParser(arena)
	style := dialect.QuickShell // ErrorOnBackquoteEndingComment is true
	it := newIterator("# hi `cmd`\nnext", style)
	_, err := p.ParseComment(&it, 1, style)
	if err == nil {
		t.Fatal("expected an error for a backquote ending a comment inside a backquote substitution")
	}
}

func TestParseBlankRequiresAtLeastOne(t *testing.T) {
	arena := ast.NewArena()
	p := parse.NewParser(arena)
	it := newIterator("x", dialect.QuickShell)
	if _, err := p.ParseBlank(&it); err == nil {
		t.Fatal("expected an error for ParseBlank on a non-blank byte")
	}
}

func TestParseBlankOrEmptyNeverErrors(t *testing.T) {
	arena := ast.NewArena()
	p := parse.NewParser(arena)
	it := newIterator("x", dialect.QuickShell)
	b := p.ParseBlankOrEmpty(&it)
	if b.Span().Begin != b.Span().End {
		t.Errorf("expected an empty span, got [%d,%d)", b.Span().Begin, b.Span().End)
	}
}
