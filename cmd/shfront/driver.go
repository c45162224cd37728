package main

import (
	"errors"

	"github.com/programmerjake/quick-shell/pkg/ast"
	"github.com/programmerjake/quick-shell/pkg/byteinput"
	"github.com/programmerjake/quick-shell/pkg/dialect"
	"github.com/programmerjake/quick-shell/pkg/linecont"
	"github.com/programmerjake/quick-shell/pkg/parse"
	"github.com/programmerjake/quick-shell/pkg/textinput"
)

// errParseFailed signals a reported parse.Error to main, distinct from an
// unexpected error worth logging: the diagnostic has already been printed.
var errParseFailed = errors.New("parse failed")

// token is one word or comment tokenize found, in source order.
type token struct {
	Word    *ast.Word
	Comment *ast.Comment
}

// tokenize drives the word/blank/comment primitives over the whole of in,
// skipping blanks and newlines between tokens, stopping at the first
// parse.Error. This loop — not pkg/parse itself — is where "what to do
// between words" lives, since composing words into commands is out of
// scope; tokenize only ever finds the next word or comment, never what
// they mean together.
func tokenize(p *parse.Parser, in *textinput.Input, style dialect.Config) ([]token, error) {
	it := linecont.New(in.Begin())
	var tokens []token
	for {
		p.ParseBlankOrEmpty(&it)
		switch {
		case it.Value() == byteinput.EOF:
			return tokens, nil
		case isNewlineAt(it):
			it = consumeNewline(it)
		case it.Value() == '#':
			c, err := p.ParseComment(&it, 0, style)
			if err != nil {
				return tokens, err
			}
			tokens = append(tokens, token{Comment: c})
		default:
			w, err := p.ParseWord(&it, parse.WordOptions{
				CheckForVariableAssignment: true,
				CheckForReservedWords:      true,
				Style:                      style,
			})
			if err != nil {
				return tokens, err
			}
			tokens = append(tokens, token{Word: w})
		}
	}
}

func isNewlineAt(it linecont.Iterator) bool {
	base := it.BaseIterator()
	return base.In().NewlineLength(base.Index()) > 0
}

func consumeNewline(it linecont.Iterator) linecont.Iterator {
	base := it.BaseIterator()
	n := base.In().NewlineLength(base.Index())
	for i := 0; i < n; i++ {
		it = it.Next()
	}
	return it
}
