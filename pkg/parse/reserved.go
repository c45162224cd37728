package parse

import (
	"sort"

	"github.com/programmerjake/quick-shell/pkg/ast"
)

// reservedWordEntry pairs a reserved word's spelling with its kind.
type reservedWordEntry struct {
	spelling string
	word     ast.ReservedWord
}

// reservedWords must stay sorted by spelling, since lookupReservedWord
// binary-searches it. Built correctly, unlike
// original_source/parser/parser.h's hand-written getReservedWordKind,
// which miswires "while" to ReservedWordKind::Until (see SPEC_FULL.md §5).
var reservedWords = []reservedWordEntry{
	{"!", ast.ReservedExclamation},
	{"[[", ast.ReservedDoubleLBracket},
	{"]]", ast.ReservedDoubleRBracket},
	{"case", ast.ReservedCase},
	{"coproc", ast.ReservedCoproc},
	{"do", ast.ReservedDo},
	{"done", ast.ReservedDone},
	{"elif", ast.ReservedElif},
	{"else", ast.ReservedElse},
	{"esac", ast.ReservedEsac},
	{"fi", ast.ReservedFi},
	{"for", ast.ReservedFor},
	{"function", ast.ReservedFunction},
	{"if", ast.ReservedIf},
	{"in", ast.ReservedIn},
	{"select", ast.ReservedSelect},
	{"then", ast.ReservedThen},
	{"time", ast.ReservedTime},
	{"until", ast.ReservedUntil},
	{"while", ast.ReservedWhile},
	{"{", ast.ReservedLBrace},
	{"}", ast.ReservedRBrace},
}

func init() {
	if !sort.SliceIsSorted(reservedWords, func(i, j int) bool {
		return reservedWords[i].spelling < reservedWords[j].spelling
	}) {
		panic("parse: reservedWords is not sorted")
	}
}

// lookupReservedWord looks up spelling in the reserved-word table via
// binary search.
func lookupReservedWord(spelling string) (ast.ReservedWord, bool) {
	i := sort.Search(len(reservedWords), func(i int) bool {
		return reservedWords[i].spelling >= spelling
	})
	if i < len(reservedWords) && reservedWords[i].spelling == spelling {
		return reservedWords[i].word, true
	}
	return 0, false
}
