package textinput_test

import (
	"testing"

	"github.com/programmerjake/quick-shell/pkg/byteinput"
	"github.com/programmerjake/quick-shell/pkg/dialect"
	"github.com/programmerjake/quick-shell/pkg/textinput"
)

func TestLineAndColumn(t *testing.T) {
	src := "ab\ncd\r\nef"
	in := textinput.New("t", dialect.QuickShell, byteinput.FromBytes([]byte(src)), false)

	tests := []struct {
		index    int
		wantLine int
		wantCol  int
	}{
		{0, 1, 1},  // 'a'
		{1, 1, 2},  // 'b'
		{2, 1, 3},  // '\n'
		{3, 2, 1},  // 'c'
		{4, 2, 2},  // 'd'
		{7, 3, 1},  // 'e' (after \r\n, which QuickShell recognizes as one newline)
		{8, 3, 2},  // 'f'
	}
	for _, tt := range tests {
		line, col := in.LineAndColumn(tt.index)
		if line != tt.wantLine || col != tt.wantCol {
			t.Errorf("LineAndColumn(%d) = (%d,%d), want (%d,%d)", tt.index, line, col, tt.wantLine, tt.wantCol)
		}
	}
}

func TestTabExpandsToNextStop(t *testing.T) {
	// "a\tb": 'a' at column 1, tab advances to column 9 (tab size 8), 'b' at 9.
	style := dialect.QuickShell
	in := textinput.New("t", style, byteinput.FromBytes([]byte("a\tb")), false)
	_, col := in.LineAndColumn(2)
	if col != 9 {
		t.Errorf("column of 'b' = %d, want 9", col)
	}
}

func TestSetStyleInvalidatesLineStarts(t *testing.T) {
	in := textinput.New("t", dialect.Posix, byteinput.FromBytes([]byte("a\rb")), false)
	// Posix doesn't recognize CR as a newline, so both bytes are on line 1.
	line, _ := in.LineAndColumn(2)
	if line != 1 {
		t.Fatalf("line of 'b' under Posix = %d, want 1", line)
	}
	in.SetStyle(dialect.QuickShell) // recognizes CR as a newline
	line, _ = in.LineAndColumn(2)
	if line != 2 {
		t.Errorf("line of 'b' under QuickShell = %d, want 2", line)
	}
}

func TestSpanBytes(t *testing.T) {
	in := textinput.New("t", dialect.QuickShell, byteinput.FromBytes([]byte("hello world")), false)
	sp := textinput.Span{Input: in, Begin: 0, End: 5}
	if got := string(sp.Bytes()); got != "hello" {
		t.Errorf("Span.Bytes() = %q, want %q", got, "hello")
	}
}
