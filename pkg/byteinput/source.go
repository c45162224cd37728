package byteinput

import (
	"io"
	"os"

	"src.elv.sh/pkg/sys"
)

// readerSource adapts a sequential io.Reader to Source.
// Most real sources (files, pipes, a memory buffer) are sequential, so this
// tracks the next expected offset and panics if asked to read somewhere
// else, which growTo never does.
type readerSource struct {
	r      io.Reader
	offset int
}

func (s *readerSource) Read(startIndex int, buf []byte) (int, error) {
	if startIndex != s.offset {
		// growTo only ever reads sequentially; a mismatch means a caller
		// built a Source incorrectly.
		panic("byteinput: non-sequential read")
	}
	n, err := s.r.Read(buf)
	s.offset += n
	if n == 0 {
		return 0, nil
	}
	return n, err
}

// FromReader builds a Source around a sequential io.Reader such as an open
// file or a pipe.
func FromReader(r io.Reader) Source {
	return &readerSource{r: r}
}

// memorySource serves a Source out of an already-materialized byte slice.
type memorySource struct {
	data []byte
}

func (s *memorySource) Read(startIndex int, buf []byte) (int, error) {
	if startIndex >= len(s.data) {
		return 0, nil
	}
	n := copy(buf, s.data[startIndex:])
	return n, nil
}

// FromBytes builds a Source around an in-memory buffer. Because the whole
// buffer is already available, the resulting Input should be constructed
// with retryAfterEOF = false: there is nothing more to retry for.
func FromBytes(data []byte) Source {
	return &memorySource{data: data}
}

// OpenFile opens path and returns a Source reading it sequentially, along
// with a closer the caller should defer. retryAfterEOF is always false for
// a plain file.
func OpenFile(path string) (Source, io.Closer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	return FromReader(f), f, nil
}

// Stdin builds a Source reading os.Stdin, along with whether the caller
// should treat EOF as retryable. A terminal stdin is retryable (the user
// may type more after an EOF keystroke in some line-discipline
// configurations); a redirected file or pipe is not.
func Stdin() (src Source, retryAfterEOF bool) {
	retryAfterEOF = sys.IsATTY(os.Stdin.Fd())
	return FromReader(os.Stdin), retryAfterEOF
}
