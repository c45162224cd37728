package byteinput_test

import (
	"io"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/programmerjake/quick-shell/pkg/byteinput"
)

func TestInputAtAndEOF(t *testing.T) {
	in := byteinput.New(byteinput.FromBytes([]byte("abc")), false)
	want := []int{'a', 'b', 'c', byteinput.EOF, byteinput.EOF}
	var got []int
	for i := 0; i < len(want); i++ {
		got = append(got, in.At(i))
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("At() (-want+got):\n%s", diff)
	}
	if !in.HasEOF() {
		t.Error("HasEOF() = false, want true")
	}
	if in.FirstEOF() != 3 {
		t.Errorf("FirstEOF() = %d, want 3", in.FirstEOF())
	}
}

func TestInputIteratorWalksWholeInput(t *testing.T) {
	in := byteinput.New(byteinput.FromBytes([]byte("hi")), false)
	it := in.Begin()
	var got []byte
	for it.Value() != byteinput.EOF {
		got = append(got, byte(it.Value()))
		it = it.Next()
	}
	if string(got) != "hi" {
		t.Errorf("got %q, want %q", got, "hi")
	}
}

// repeatingReader yields its data and then EOF (via io.EOF), so chunked
// growth across the chunk boundary can be exercised without a 4096-byte
// literal.
type repeatingReader struct {
	data []byte
	pos  int
}

func (r *repeatingReader) Read(p []byte) (int, error) {
	if r.pos >= len(r.data) {
		return 0, io.EOF
	}
	n := copy(p, r.data[r.pos:])
	r.pos += n
	return n, nil
}

func TestInputGrowsAcrossChunkBoundary(t *testing.T) {
	data := make([]byte, 5000)
	for i := range data {
		data[i] = byte('a' + i%26)
	}
	in := byteinput.New(byteinput.FromReader(&repeatingReader{data: data}), false)
	for i, want := range data {
		if got := in.At(i); got != int(want) {
			t.Fatalf("At(%d) = %d, want %d", i, got, want)
		}
	}
	if in.At(len(data)) != byteinput.EOF {
		t.Errorf("At(len(data)) = %d, want EOF", in.At(len(data)))
	}
}
