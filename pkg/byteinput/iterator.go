package byteinput

// Iterator is a forward, single-pass cursor over an Input. Two iterators
// compare equal exactly when they share an Input and index. Iterator is a
// plain value: copying it (to speculate, then discard or commit) is always
// safe and cheap.
type Iterator struct {
	in    *Input
	index int
}

// Begin returns an Iterator at index 0.
func (in *Input) Begin() Iterator { return in.AtIterator(0) }

// AtIterator returns an Iterator positioned at index.
func (in *Input) AtIterator(index int) Iterator {
	return Iterator{in: in, index: index}
}

// Input returns the Input this iterator reads from.
func (it Iterator) Input() *Input { return it.in }

// Index returns the iterator's current byte position.
func (it Iterator) Index() int { return it.index }

// Value returns the byte at the iterator's position, or EOF.
func (it Iterator) Value() int { return it.in.At(it.index) }

// Next returns the iterator advanced by one byte. Advancing past the end of
// a non-retrying source's data yields further EOF-valued iterators rather
// than panicking or wrapping.
func (it Iterator) Next() Iterator {
	return Iterator{in: it.in, index: it.index + 1}
}

// Equal reports whether two iterators denote the same position of the same
// Input.
func (a Iterator) Equal(b Iterator) bool {
	return a.in == b.in && a.index == b.index
}
