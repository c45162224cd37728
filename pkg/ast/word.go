package ast

import "github.com/programmerjake/quick-shell/pkg/textinput"

// Word is an ordered, non-empty sequence of WordParts, together spanning
// exactly the Word's own Span with no gaps or overlaps (spec.md §8,
// invariant 1: span soundness).
type Word struct {
	span  textinput.Span
	Parts []WordPart
}

func (w *Word) Span() textinput.Span { return w.span }

// Blank is a mandatory run of one or more blank (space or tab) bytes.
type Blank struct {
	span textinput.Span
}

func (b *Blank) Span() textinput.Span { return b.span }

// BlankOrEmpty is an optional run of blank bytes; its span may be empty.
type BlankOrEmpty struct {
	span textinput.Span
}

func (b *BlankOrEmpty) Span() textinput.Span { return b.span }

// Comment is a `#` through end-of-line (or EOF) run.
type Comment struct {
	span textinput.Span
}

func (c *Comment) Span() textinput.Span { return c.span }
