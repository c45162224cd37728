package parse

import (
	"testing"

	"github.com/programmerjake/quick-shell/pkg/ast"
)

func TestLookupReservedWord(t *testing.T) {
	tests := []struct {
		spelling string
		want     ast.ReservedWord
		wantOk   bool
	}{
		{"if", ast.ReservedIf, true},
		{"while", ast.ReservedWhile, true},
		{"until", ast.ReservedUntil, true},
		{"[[", ast.ReservedDoubleLBracket, true},
		{"}", ast.ReservedRBrace, true},
		{"notreserved", 0, false},
		{"", 0, false},
		{"iffy", 0, false},
	}
	for _, tt := range tests {
		got, ok := lookupReservedWord(tt.spelling)
		if ok != tt.wantOk || (ok && got != tt.want) {
			t.Errorf("lookupReservedWord(%q) = (%v, %v), want (%v, %v)", tt.spelling, got, ok, tt.want, tt.wantOk)
		}
	}
}
