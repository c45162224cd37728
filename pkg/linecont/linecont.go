// Package linecont implements the line-continuation splicing iterator:
// a view over a textinput.Input in which every `\<newline>` sequence
// recognized by the input's current dialect is invisible, as if it had
// never been in the source.
package linecont

import "github.com/programmerjake/quick-shell/pkg/textinput"

// Iterator is a forward cursor that never rests on the backslash of a
// splice: constructing one, or advancing one, always elides every
// consecutive `\<newline>` run before returning. Chained splices
// (`\<LF>\<LF>\<LF>A`) are elided in a single Next call, same as a single
// one.
type Iterator struct {
	raw textinput.Iterator
}

// New constructs a spliced Iterator starting from a raw textinput.Iterator,
// immediately eliding any splice sequence raw happens to be sitting on.
func New(raw textinput.Iterator) Iterator {
	return Iterator{raw: normalize(raw)}
}

func normalize(raw textinput.Iterator) textinput.Iterator {
	for raw.Value() == '\\' {
		n := raw.In().NewlineLength(raw.Index() + 1)
		if n == 0 {
			break
		}
		raw = raw.Add(1 + n)
	}
	return raw
}

// Value returns the logical (post-splice) byte at the iterator's position.
func (it Iterator) Value() int { return it.raw.Value() }

// Location returns the logical position, i.e. the position of the byte
// Value() describes, after any splices leading up to it have been elided.
func (it Iterator) Location() textinput.Location { return it.raw.Location() }

// BaseIterator returns the underlying raw textinput.Iterator, positioned at
// the same (already-spliced-past) byte as Value() describes. Used by
// primitives, such as $'...' escape decoding, that need to read raw bytes
// without further splicing.
func (it Iterator) BaseIterator() textinput.Iterator { return it.raw }

// Next returns the iterator advanced one logical step: past the current
// byte, then past any splice sequence that follows.
func (it Iterator) Next() Iterator { return New(it.raw.Next()) }

// Equal reports whether two iterators denote the same logical position.
// Since both operands are always already normalized, this is exactly
// equality of their base iterators.
func (a Iterator) Equal(b Iterator) bool { return a.raw.Equal(b.raw) }
