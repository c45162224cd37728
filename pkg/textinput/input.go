// Package textinput layers line/column accounting and dialect-aware
// newline recognition on top of pkg/byteinput.
package textinput

import (
	"fmt"
	"sort"

	"github.com/programmerjake/quick-shell/pkg/byteinput"
	"github.com/programmerjake/quick-shell/pkg/dialect"
)

// Input is a named byte stream with dialect-aware line/column tracking.
// The name is carried along purely for diagnostics (spec.md §6).
type Input struct {
	name  string
	style dialect.Config
	bytes *byteinput.Input

	// lineStarts[i] holds the byte index where line i+2 begins; line 1
	// always starts at index 0 and is left implicit. Built lazily and
	// invalidated whenever the dialect changes, since newline recognition
	// depends on it.
	lineStarts          []int
	validLineStartIndex int
}

// New wraps src as a text input named name, using style to interpret
// newlines and tabs.
func New(name string, style dialect.Config, src byteinput.Source, retryAfterEOF bool) *Input {
	return &Input{name: name, style: style, bytes: byteinput.New(src, retryAfterEOF)}
}

// Name returns the diagnostic name given to this input.
func (in *Input) Name() string { return in.name }

// Style returns the dialect currently governing this input.
func (in *Input) Style() dialect.Config { return in.style }

// SetStyle changes the dialect governing this input. Since a different
// dialect may recognize different byte sequences as newlines, any
// previously computed line starts are discarded; an index's byte value
// never changes, only how it is interpreted as line structure.
func (in *Input) SetStyle(style dialect.Config) {
	if in.style == style {
		return
	}
	in.style = style
	in.lineStarts = in.lineStarts[:0]
	in.validLineStartIndex = 0
}

// At returns the raw byte at index, or byteinput.EOF.
func (in *Input) At(index int) int { return in.bytes.At(index) }

// NewlineLength returns how many bytes, starting at index, form a newline
// under the current dialect: 2 for a recognized CRLF pair, 1 for a
// recognized lone CR or LF, 0 if index doesn't start a recognized newline.
func (in *Input) NewlineLength(index int) int {
	b0 := in.bytes.At(index)
	if b0 != '\r' && b0 != '\n' {
		return 0
	}
	if in.style.AllowCRLFAsNewLine && b0 == '\r' && in.bytes.At(index+1) == '\n' {
		return 2
	}
	if in.style.AllowCRAsNewLine && b0 == '\r' {
		return 1
	}
	if in.style.AllowLFAsNewLine && b0 == '\n' {
		return 1
	}
	return 0
}

// ensureLineStarts extends lineStarts, if necessary, to cover every
// boundary up to (but not including) index.
func (in *Input) ensureLineStarts(upTo int) {
	idx := in.validLineStartIndex
	for idx < upTo {
		if n := in.NewlineLength(idx); n > 0 {
			in.lineStarts = append(in.lineStarts, idx+n)
			idx += n
			continue
		}
		if in.bytes.At(idx) == byteinput.EOF {
			in.lineStarts = append(in.lineStarts, idx+1)
		}
		idx++
	}
	in.validLineStartIndex = idx
}

// LineAndStartIndex returns the 1-based line number containing index, and
// the byte index where that line starts.
func (in *Input) LineAndStartIndex(index int) (line int, start int) {
	if index >= in.bytes.ValidMemorySize() &&
		!in.bytes.RetryAfterEOF() && in.bytes.HasEOF() && index >= in.bytes.FirstEOF() {
		in.ensureLineStarts(in.bytes.ValidMemorySize())
		return in.lineAndStartFromCounts(index)
	}
	in.bytes.Touch(index)
	in.ensureLineStarts(index)
	return in.lineAndStartFromCounts(index)
}

func (in *Input) lineAndStartFromCounts(index int) (line int, start int) {
	count := sort.SearchInts(in.lineStarts, index+1)
	if count == 0 {
		return 1, 0
	}
	return count + 1, in.lineStarts[count-1]
}

// LineAndColumn returns the 1-based line and column of index, expanding
// tabs according to the current dialect's TabSize.
func (in *Input) LineAndColumn(index int) (line int, column int) {
	line, start := in.LineAndStartIndex(index)
	column = 1
	for i := start; i < index; i++ {
		if in.bytes.At(i) == '\t' {
			column = columnAfterTab(column, in.style.TabSize)
		} else {
			column++
		}
	}
	return line, column
}

// columnAfterTab implements spec.md §4.2's tab-stop formula.
func columnAfterTab(column, tabSize int) int {
	if tabSize == 0 || column == 0 {
		return column + 1
	}
	return column + (tabSize - (column-1)%tabSize)
}

// Location names a single byte position in an Input, for diagnostics.
type Location struct {
	Input *Input
	Index int
}

func (l Location) String() string {
	if l.Input == nil {
		return fmt.Sprintf("<nil>:%d", l.Index)
	}
	line, col := l.Input.LineAndColumn(l.Index)
	return fmt.Sprintf("%s:%d:%d", l.Input.Name(), line, col)
}

// Span names a half-open byte range [Begin, End) in an Input.
type Span struct {
	Input *Input
	Begin int
	End   int
}

func (s Span) String() string {
	name := "<nil>"
	if s.Input != nil {
		name = s.Input.Name()
	}
	return fmt.Sprintf("%s:[%d,%d)", name, s.Begin, s.End)
}

// Bytes returns the raw bytes in the span, reading directly from the
// underlying byteinput.Input (no line-continuation splicing applied).
func (s Span) Bytes() []byte {
	if s.Input == nil {
		return nil
	}
	out := make([]byte, 0, s.End-s.Begin)
	for i := s.Begin; i < s.End; i++ {
		v := s.Input.At(i)
		if v == byteinput.EOF {
			break
		}
		out = append(out, byte(v))
	}
	return out
}
