package linecont_test

import (
	"testing"

	"github.com/programmerjake/quick-shell/pkg/byteinput"
	"github.com/programmerjake/quick-shell/pkg/dialect"
	"github.com/programmerjake/quick-shell/pkg/linecont"
	"github.com/programmerjake/quick-shell/pkg/textinput"
)

func collect(it linecont.Iterator) string {
	var out []byte
	for it.Value() != byteinput.EOF {
		out = append(out, byte(it.Value()))
		it = it.Next()
	}
	return string(out)
}

func TestSpliceIsInvisible(t *testing.T) {
	in := textinput.New("t", dialect.QuickShell, byteinput.FromBytes([]byte("ab\\\ncd")), false)
	it := linecont.New(in.Begin())
	if got := collect(it); got != "abcd" {
		t.Errorf("got %q, want %q", got, "abcd")
	}
}

func TestChainedSplicesElideInOneStep(t *testing.T) {
	in := textinput.New("t", dialect.QuickShell, byteinput.FromBytes([]byte("a\\\n\\\n\\\nb")), false)
	it := linecont.New(in.Begin())
	if got := it.Value(); got != 'a' {
		t.Fatalf("first byte = %q, want 'a'", got)
	}
	it = it.Next()
	if got := it.Value(); got != 'b' {
		t.Errorf("second logical byte = %q, want 'b'", got)
	}
}

func TestBaseIteratorSeesRawBytes(t *testing.T) {
	in := textinput.New("t", dialect.QuickShell, byteinput.FromBytes([]byte("a\\\nb")), false)
	it := linecont.New(in.Begin())
	it = it.Next() // logically at 'b'
	base := it.BaseIterator()
	if base.Value() != 'b' {
		t.Errorf("BaseIterator().Value() = %q, want 'b'", base.Value())
	}
	if base.Index() != 3 {
		t.Errorf("BaseIterator().Index() = %d, want 3", base.Index())
	}
}

func TestTrailingBackslashWithoutNewlineIsNotASplice(t *testing.T) {
	in := textinput.New("t", dialect.QuickShell, byteinput.FromBytes([]byte("a\\b")), false)
	it := linecont.New(in.Begin())
	if got := collect(it); got != "a\\b" {
		t.Errorf("got %q, want %q", got, "a\\b")
	}
}
