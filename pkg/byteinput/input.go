// Package byteinput implements the chunked, stably-indexed byte storage
// that every other input layer in this module is built on top of.
package byteinput

import "sort"

// EOF is the sentinel value returned by Input.At for a byte position that
// holds an end-of-file marker rather than real data.
const EOF = -1

// chunkSize matches the original C++ implementation's Chunk size: large
// enough to amortize Source.Read calls, small enough that a single
// in-progress line doesn't force allocating the whole remaining input.
const chunkSize = 4096

// Source supplies the raw bytes behind an Input. Read is expected to behave
// like io.ReaderAt except that a short read (n < len(buf), n > 0) is treated
// as a partial fill rather than an error, and n == 0 means EOF at
// startIndex.
type Source interface {
	Read(startIndex int, buf []byte) (n int, err error)
}

// Input is a lazily-filled, chunked byte buffer with stable indexing: once a
// byte at a given index has been read, its value never changes, even as
// later reads extend the buffer. EOF positions are recorded explicitly
// rather than truncating the buffer, so an index can be re-queried.
type Input struct {
	source        Source
	retryAfterEOF bool

	chunks          [][]byte
	validMemorySize int
	eofPositions    []int // sorted ascending
}

// New creates an Input reading from source. retryAfterEOF mirrors the
// original's distinction between interactive sources (a terminal may
// produce more input after an EOF signal, e.g. after the user presses
// Ctrl-D and then keeps typing in some terminal drivers) and sources backed
// by a file or pipe, where EOF is permanent.
func New(source Source, retryAfterEOF bool) *Input {
	return &Input{source: source, retryAfterEOF: retryAfterEOF}
}

// RetryAfterEOF reports whether this Input may still produce bytes after
// having previously signalled EOF.
func (in *Input) RetryAfterEOF() bool { return in.retryAfterEOF }

// ValidMemorySize returns one past the highest index materialized so far.
func (in *Input) ValidMemorySize() int { return in.validMemorySize }

// HasEOF reports whether any EOF position has been recorded yet.
func (in *Input) HasEOF() bool { return len(in.eofPositions) > 0 }

// FirstEOF returns the smallest recorded EOF position. Only meaningful when
// HasEOF is true.
func (in *Input) FirstEOF() int { return in.eofPositions[0] }

func (in *Input) isEOFPosition(index int) bool {
	i := sort.SearchInts(in.eofPositions, index)
	return i < len(in.eofPositions) && in.eofPositions[i] == index
}

// growTo extends validMemorySize at least past targetIndex, or until a
// non-retrying source's first EOF makes further growth pointless.
func (in *Input) growTo(targetIndex int) {
	for in.validMemorySize <= targetIndex {
		if !in.retryAfterEOF && in.HasEOF() && in.validMemorySize >= in.FirstEOF() {
			return
		}
		chunkIndex := in.validMemorySize / chunkSize
		for len(in.chunks) <= chunkIndex {
			in.chunks = append(in.chunks, make([]byte, chunkSize))
		}
		offset := in.validMemorySize % chunkSize
		n, _ := in.source.Read(in.validMemorySize, in.chunks[chunkIndex][offset:])
		if n == 0 {
			in.eofPositions = append(in.eofPositions, in.validMemorySize)
			in.validMemorySize++
			if !in.retryAfterEOF {
				return
			}
			continue
		}
		in.validMemorySize += n
	}
}

// At reads the byte at index, growing the buffer as needed. It returns EOF
// (not a byte value) at any recorded EOF position, and for non-retrying
// sources at or past the first recorded EOF position even if that exact
// index hasn't been materialized.
func (in *Input) At(index int) int {
	if index >= in.validMemorySize {
		if !in.retryAfterEOF && in.HasEOF() && index >= in.FirstEOF() {
			return EOF
		}
		in.growTo(index)
		if index >= in.validMemorySize {
			return EOF
		}
	}
	if in.isEOFPosition(index) {
		return EOF
	}
	return int(in.chunks[index/chunkSize][index%chunkSize])
}

// Touch forces the buffer to materialize up to and including index, without
// caring about the value read. Used by higher layers that need
// ValidMemorySize to reflect a particular index before reasoning about it.
func (in *Input) Touch(index int) { in.At(index) }
