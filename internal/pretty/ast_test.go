package pretty_test

import (
	"strings"
	"testing"

	"github.com/programmerjake/quick-shell/internal/pretty"
	"github.com/programmerjake/quick-shell/pkg/ast"
	"github.com/programmerjake/quick-shell/pkg/byteinput"
	"github.com/programmerjake/quick-shell/pkg/dialect"
	"github.com/programmerjake/quick-shell/pkg/linecont"
	"github.com/programmerjake/quick-shell/pkg/parse"
	"github.com/programmerjake/quick-shell/pkg/textinput"
)

func TestDumpASTMatchesPlainDumpModuloStyling(t *testing.T) {
	arena := ast.NewArena()
	p := parse.NewParser(arena)
	in := textinput.New("t", dialect.QuickShell, byteinput.FromBytes([]byte("hello")), false)
	it := linecont.New(in.Begin())
	w, err := p.ParseWord(&it, parse.WordOptions{Style: dialect.QuickShell})
	if err != nil {
		t.Fatalf("ParseWord error: %v", err)
	}

	plain := ast.Dump(w)
	styled := pretty.DumpAST(pretty.NewStyles(false), w)
	if plain != styled {
		t.Errorf("unstyled DumpAST should match ast.Dump exactly:\nplain:  %q\nstyled: %q", plain, styled)
	}

	colored := pretty.DumpAST(pretty.NewStyles(true), w)
	if !strings.Contains(colored, "Word") {
		t.Errorf("colored dump lost the %q type name: %q", "Word", colored)
	}
}
