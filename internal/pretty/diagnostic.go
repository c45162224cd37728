package pretty

import (
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/programmerjake/quick-shell/pkg/byteinput"
	"github.com/programmerjake/quick-shell/pkg/textinput"
)

// Diagnostic renders a "name:line:col: message" header, the offending
// source line, and a caret under the column — the shape elves-posixsh
// draws from src.elv.sh/pkg/diag.ShowCompact, rebuilt here on top of
// pkg/textinput since this module doesn't carry that dependency.
func Diagnostic(w io.Writer, styles *Styles, loc textinput.Location, message string) {
	fmt.Fprintf(w, "%s %s\n", styles.Location.Render(loc.String()+":"), styles.Message.Render(message))
	if loc.Input == nil {
		return
	}
	_, start := loc.Input.LineAndStartIndex(loc.Index)
	_, col := loc.Input.LineAndColumn(loc.Index)
	line := readLine(loc.Input, start)
	text, caretCol := fitToWidth(line, col, terminalWidth(w))
	fmt.Fprintf(w, "  %s\n", styles.SourceLine.Render(text))
	fmt.Fprintf(w, "  %s%s\n", strings.Repeat(" ", caretCol-1), styles.Caret.Render("^"))
}

// readLine reads the bytes of the line starting at start, stopping at the
// first recognized newline or EOF.
func readLine(in *textinput.Input, start int) string {
	var out []byte
	for i := start; ; i++ {
		if in.NewlineLength(i) > 0 {
			break
		}
		v := in.At(i)
		if v == byteinput.EOF {
			break
		}
		out = append(out, byte(v))
	}
	return string(out)
}

// fitToWidth truncates line to fit within width columns, keeping the
// 1-based column col visible, and returns the truncated line along with
// col's new position within it. A non-positive width disables truncation
// (e.g. output isn't a terminal).
func fitToWidth(line string, col, width int) (string, int) {
	if width <= 0 || len(line) <= width {
		return line, col
	}
	half := width / 2
	start := col - 1 - half
	if start < 0 {
		start = 0
	}
	end := start + width
	if end > len(line) {
		end = len(line)
		start = end - width
		if start < 0 {
			start = 0
		}
	}
	prefix, suffix := "", ""
	if start > 0 {
		prefix = "… "
	}
	if end < len(line) {
		suffix = " …"
	}
	visible := prefix + line[start:end] + suffix
	return visible, col - start + len(prefix)
}

// terminalWidth probes w's terminal width, returning 0 if w isn't a
// terminal or the probe fails.
func terminalWidth(w io.Writer) int {
	f, ok := w.(*os.File)
	if !ok {
		return 0
	}
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil {
		return 0
	}
	return width
}
