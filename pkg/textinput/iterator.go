package textinput

import "github.com/programmerjake/quick-shell/pkg/byteinput"

// Iterator is a forward cursor over an Input's raw (unspliced) bytes. Like
// byteinput.Iterator, it is a plain comparable value.
type Iterator struct {
	raw byteinput.Iterator
	in  *Input
}

// Begin returns an Iterator at index 0.
func (in *Input) Begin() Iterator { return Iterator{raw: in.bytes.Begin(), in: in} }

// AtIterator returns an Iterator positioned at index.
func (in *Input) AtIterator(index int) Iterator {
	return Iterator{raw: in.bytes.AtIterator(index), in: in}
}

// In returns the Input this iterator reads from.
func (it Iterator) In() *Input { return it.in }

// Index returns the iterator's byte position.
func (it Iterator) Index() int { return it.raw.Index() }

// Value returns the byte at the iterator's position, or byteinput.EOF.
func (it Iterator) Value() int { return it.raw.Value() }

// Next returns the iterator advanced by one raw byte.
func (it Iterator) Next() Iterator { return Iterator{raw: it.raw.Next(), in: it.in} }

// Add returns the iterator advanced by n raw bytes.
func (it Iterator) Add(n int) Iterator {
	return Iterator{raw: it.in.bytes.AtIterator(it.raw.Index() + n), in: it.in}
}

// Location returns this iterator's position as a diagnostic Location.
func (it Iterator) Location() Location { return Location{Input: it.in, Index: it.raw.Index()} }

// Equal reports whether two iterators denote the same Input and index.
func (a Iterator) Equal(b Iterator) bool { return a.in == b.in && a.raw.Equal(b.raw) }
