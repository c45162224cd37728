package main

import (
	"testing"

	"github.com/programmerjake/quick-shell/pkg/ast"
	"github.com/programmerjake/quick-shell/pkg/byteinput"
	"github.com/programmerjake/quick-shell/pkg/dialect"
	"github.com/programmerjake/quick-shell/pkg/parse"
	"github.com/programmerjake/quick-shell/pkg/textinput"
)

func tokenizeString(t *testing.T, src string, style dialect.Config) ([]token, error) {
	t.Helper()
	in := textinput.New("t", style, byteinput.FromBytes([]byte(src)), false)
	p := parse.NewParser(ast.NewArena())
	return tokenize(p, in, style)
}

func TestTokenizeSplitsOnBlanksAndNewlines(t *testing.T) {
	tokens, err := tokenizeString(t, "echo  hi\nworld", dialect.QuickShell)
	if err != nil {
		t.Fatalf("tokenize error: %v", err)
	}
	if len(tokens) != 3 {
		t.Fatalf("got %d tokens, want 3", len(tokens))
	}
	for i, want := range []string{"echo", "hi", "world"} {
		if tokens[i].Word == nil {
			t.Fatalf("tokens[%d] is not a word", i)
		}
		if got := string(tokens[i].Word.Span().Bytes()); got != want {
			t.Errorf("tokens[%d] = %q, want %q", i, got, want)
		}
	}
}

func TestTokenizeRecognizesComments(t *testing.T) {
	tokens, err := tokenizeString(t, "a # trailing comment\nb", dialect.QuickShell)
	if err != nil {
		t.Fatalf("tokenize error: %v", err)
	}
	if len(tokens) != 3 {
		t.Fatalf("got %d tokens, want 3: %#v", len(tokens), tokens)
	}
	if tokens[1].Comment == nil {
		t.Fatalf("tokens[1] is not a comment")
	}
	if got, want := string(tokens[1].Comment.Span().Bytes()), "# trailing comment"; got != want {
		t.Errorf("comment = %q, want %q", got, want)
	}
}

func TestTokenizeStopsAtFirstParseError(t *testing.T) {
	tokens, err := tokenizeString(t, "good 'unterminated", dialect.QuickShell)
	if err == nil {
		t.Fatal("expected an error for an unterminated single-quoted string")
	}
	if len(tokens) != 1 {
		t.Fatalf("got %d tokens before the error, want 1", len(tokens))
	}
	if _, ok := err.(*parse.Error); !ok {
		t.Errorf("error is %T, want *parse.Error", err)
	}
}

func TestTokenizeHandlesCRLFUnderQuickShell(t *testing.T) {
	tokens, err := tokenizeString(t, "a\r\nb", dialect.QuickShell)
	if err != nil {
		t.Fatalf("tokenize error: %v", err)
	}
	if len(tokens) != 2 {
		t.Fatalf("got %d tokens, want 2", len(tokens))
	}
}

func TestTokenizeEmptyInputProducesNoTokens(t *testing.T) {
	tokens, err := tokenizeString(t, "", dialect.QuickShell)
	if err != nil {
		t.Fatalf("tokenize error: %v", err)
	}
	if len(tokens) != 0 {
		t.Errorf("got %d tokens, want 0", len(tokens))
	}
}
